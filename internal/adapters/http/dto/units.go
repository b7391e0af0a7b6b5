package dto

// QuantityRequest is a value with a unit expression.
type QuantityRequest struct {
	Value *float64 `json:"value" validate:"required"`
	Unit  string   `json:"unit"  validate:"required,notempty,unitexpr"`
}

// ConvertRequest is the body of POST /api/v1/convert.
type ConvertRequest struct {
	Value *float64 `json:"value" validate:"required"`
	From  string   `json:"from"  validate:"required,notempty,unitexpr"`
	To    string   `json:"to"    validate:"required,notempty,unitexpr"`
}

// ForceRequest is the body of POST /api/v1/force. Omitted operands default
// to three solar masses, 100 kg and 2.2 au; the result defaults to newtons.
type ForceRequest struct {
	M1       *QuantityRequest `json:"m1"`
	M2       *QuantityRequest `json:"m2"`
	Distance *QuantityRequest `json:"distance"`
	Unit     string           `json:"unit" validate:"omitempty,unitexpr"`
}

// ConstantQuery holds the query parameters of GET /api/v1/constants/:abbrev.
type ConstantQuery struct {
	Unit string `form:"unit" validate:"omitempty,unitexpr"`
}

// QuantityResponse is a computed quantity.
type QuantityResponse struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
	// Text is the value and unit as printed by the command line tools.
	Text string `json:"text"`
}

// SystemResponse describes one unit system.
type SystemResponse struct {
	Name        string `json:"name"`
	PublicUnits int    `json:"publicUnits"`
}

// SystemsResponse lists the unit systems.
type SystemsResponse struct {
	Systems []SystemResponse `json:"systems"`
}

// UnitResponse describes a unit expression.
type UnitResponse struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name,omitempty"`
	Scale     float64 `json:"scale"`
	Dimension string  `json:"dimension"`
	SI        string  `json:"si"`
}

// ConstantResponse describes a physical constant. Converted is set when a
// target unit was requested.
type ConstantResponse struct {
	Abbrev      string            `json:"abbrev"`
	Name        string            `json:"name"`
	Value       float64           `json:"value"`
	Unit        string            `json:"unit"`
	Uncertainty float64           `json:"uncertainty"`
	Reference   string            `json:"reference"`
	Converted   *QuantityResponse `json:"converted,omitempty"`
}

// ConstantsResponse lists constants.
type ConstantsResponse struct {
	Constants []ConstantResponse `json:"constants"`
}

// CoordinateResponse is a position parsed from a J designation.
type CoordinateResponse struct {
	Designation string  `json:"designation"`
	Prefix      string  `json:"prefix"`
	RAHours     float64 `json:"raHours"`
	RADeg       float64 `json:"raDeg"`
	DecDeg      float64 `json:"decDeg"`
}
