package dto

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidator(t *testing.T) {
	assert.Same(t, Validator(), Validator())
}

func TestValidate_ConvertRequest(t *testing.T) {
	tests := []struct {
		name       string
		input      ConvertRequest
		wantFields []string
	}{
		{
			name:  "valid",
			input: ConvertRequest{Value: ptr(1.0), From: "km/s", To: "m s-1"},
		},
		{
			name:  "zero value is present",
			input: ConvertRequest{Value: ptr(0.0), From: "au", To: "km"},
		},
		{
			name:  "unknown unit passes validation",
			input: ConvertRequest{Value: ptr(1.0), From: "furlong", To: "m"},
		},
		{
			name:       "missing value",
			input:      ConvertRequest{From: "m", To: "km"},
			wantFields: []string{"value"},
		},
		{
			name:       "blank units",
			input:      ConvertRequest{Value: ptr(1.0), From: " ", To: ""},
			wantFields: []string{"from", "to"},
		},
		{
			name:       "malformed expressions",
			input:      ConvertRequest{Value: ptr(1.0), From: "km/", To: "(m"},
			wantFields: []string{"from", "to"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)

			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)

			got := ValidationErrors(err)
			for _, f := range tt.wantFields {
				assert.Contains(t, got, f)
			}
		})
	}
}

func TestValidate_ForceRequest(t *testing.T) {
	tests := []struct {
		name    string
		input   ForceRequest
		wantErr bool
	}{
		{"empty", ForceRequest{}, false},
		{"target only", ForceRequest{Unit: "dyn"}, false},
		{"operand", ForceRequest{M1: &QuantityRequest{Value: ptr(2.0), Unit: "M_sun"}}, false},
		{"operand without value", ForceRequest{M2: &QuantityRequest{Unit: "kg"}}, true},
		{"operand without unit", ForceRequest{Distance: &QuantityRequest{Value: ptr(1.0)}}, true},
		{"malformed target", ForceRequest{Unit: "N^"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.input)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateNotEmpty(t *testing.T) {
	type named struct {
		Name string `validate:"notempty"`
	}

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"km", false},
		{"  km  ", false},
		{"", true},
		{"   ", true},
		{"\t  \n", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := Validator().Struct(&named{Name: tt.value})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBindAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid", `{"value":1,"from":"au","to":"km"}`, nil},
		{"invalid json", `{invalid}`, ErrBinding},
		{"validation fails", `{"value":1,"from":"","to":"km"}`, ErrValidation},
		{"wrong type", `{"value":"one","from":"au","to":"km"}`, ErrBinding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req ConvertRequest
			err := BindAndValidate(c, &req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.InDelta(t, 1.0, *req.Value, 0)
			assert.Equal(t, "au", req.From)
		})
	}
}

func TestBindQueryAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr error
	}{
		{"pagination", "?limit=10&cursor=abc", nil},
		{"empty", "", nil},
		{"limit out of range", "?limit=501", ErrValidation},
		{"negative limit", "?limit=-1", ErrValidation},
		{"limit not a number", "?limit=ten", ErrBinding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/path"+tt.query, nil)

			var req PaginationRequest
			err := BindQueryAndValidate(c, &req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}

	t.Run("constant query", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/constants/c?unit=km%2Fs", nil)

		var q ConstantQuery
		require.NoError(t, BindQueryAndValidate(c, &q))
		assert.Equal(t, "km/s", q.Unit)
	})
}

func TestValidationErrors(t *testing.T) {
	err := Validate(&ConvertRequest{From: "km/", To: ""})
	require.Error(t, err)

	got := ValidationErrors(err)

	assert.Equal(t, map[string]string{
		"value": "this field is required",
		"from":  "must be a unit expression such as km/s or kg m s-2",
		"to":    "this field is required",
	}, got)

	t.Run("non-validation error returns empty map", func(t *testing.T) {
		assert.Empty(t, ValidationErrors(errors.New("some error")))
	})
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(Validate(&ConvertRequest{})))
	assert.False(t, IsValidationError(errors.New("some error")))
	assert.False(t, IsValidationError(nil))
}

func TestValidationMessage(t *testing.T) {
	type everything struct {
		Name  string  `json:"name"  validate:"required"`
		Unit  string  `json:"unit"  validate:"unitexpr"`
		Count int     `json:"count" validate:"min=1,max=10"`
		Mode  string  `json:"mode"  validate:"oneof=replicate corrected"`
		Text  string  `json:"text"  validate:"min=5"`
		Limit int     `json:"limit" validate:"gte=1,lte=500"`
		Ratio float64 `json:"ratio" validate:"gt=0,lt=1"`
		Label string  `json:"label" validate:"notempty"`
	}

	err := Validator().Struct(&everything{
		Unit:  "m/",
		Count: 20,
		Mode:  "strict",
		Text:  "abc",
		Limit: 501,
		Ratio: 2,
		Label: "  ",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	want := map[string]string{
		"name":  "this field is required",
		"unit":  "must be a unit expression such as km/s or kg m s-2",
		"count": "must be at most 10",
		"mode":  "must be one of: replicate corrected",
		"text":  "must be at least 5 characters",
		"limit": "must be less than or equal to 500",
		"ratio": "must be less than 1",
		"label": "must not be empty",
	}

	got := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		got[fe.Field()] = validationMessage(fe)
	}

	assert.Equal(t, want, got)
}

func TestFieldName(t *testing.T) {
	type tagged struct {
		JSON    string `json:"unit,omitempty"`
		Form    string `form:"cursor"`
		Both    string `json:",omitempty" form:"limit"`
		Skipped string `json:"-"`
		Plain   string
	}

	typ := reflect.TypeFor[tagged]()

	want := []string{"unit", "cursor", "limit", "", "Plain"}
	for i, name := range want {
		assert.Equal(t, name, fieldName(typ.Field(i)), typ.Field(i).Name)
	}
}

func TestValidationMessage_Lengths(t *testing.T) {
	type sized struct {
		Label string `json:"label" validate:"max=3"`
		Items []int  `json:"items" validate:"min=2"`
	}

	got := ValidationErrors(Validate(&sized{Label: "abcd", Items: []int{1}}))

	assert.Equal(t, map[string]string{
		"label": "must be at most 3 characters",
		"items": "must be at least 2",
	}, got)
}

func TestValidationMessageUnknownTag(t *testing.T) {
	type tagged struct {
		Field string `validate:"customtag"`
	}

	v := Validator()
	_ = v.RegisterValidation("customtag", func(validator.FieldLevel) bool {
		return false
	})

	err := v.Struct(&tagged{Field: "value"})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)

	for _, fe := range validationErrs {
		assert.Equal(t, "failed validation: customtag", validationMessage(fe))
	}
}
