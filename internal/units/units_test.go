package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rastro/internal/domain"
)

func TestDimension_String(t *testing.T) {
	tests := []struct {
		name     string
		dim      Dimension
		expected string
	}{
		{"dimensionless", Dimension{}, "1"},
		{"length", Dim(DimLength, 1), "L"},
		{"gravitational constant", Newton.Mul(Meter.Pow(2)).Div(Kilogram.Pow(2)).Dimension(), "L3 M-1 T-2"},
		{"velocity", Meter.Div(Second).Dimension(), "L T-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dim.String())
		})
	}
}

func TestDimension_Arithmetic(t *testing.T) {
	length := Dim(DimLength, 100)

	tests := []struct {
		name    string
		op      func() (Dimension, error)
		want    Dimension
		wantErr bool
	}{
		{"mul in range", func() (Dimension, error) { return length.Mul(Dim(DimLength, 27)) }, Dim(DimLength, MaxExponent), false},
		{"mul overflows", func() (Dimension, error) { return length.Mul(length) }, length, true},
		{"div in range", func() (Dimension, error) { return Dim(DimLength, -100).Div(Dim(DimLength, 28)) }, Dim(DimLength, MinExponent), false},
		{"div overflows", func() (Dimension, error) { return Dim(DimLength, -100).Div(length) }, Dim(DimLength, -100), true},
		{"pow in range", func() (Dimension, error) { return Dim(DimTime, -2).Pow(3) }, Dim(DimTime, -6), false},
		{"pow overflows", func() (Dimension, error) { return length.Pow(2) }, length, true},
		{"pow wraps to zero in int8", func() (Dimension, error) { return Dim(DimLength, 1).Pow(256) }, Dim(DimLength, 1), true},
		{"dimensionless to any power", func() (Dimension, error) { return Dimension{}.Pow(1 << 20) }, Dimension{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.op()

			assert.Equal(t, tt.want, got)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err), err)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestUnit_PanicsOnExponentOverflow(t *testing.T) {
	big := MustParse("m^100")

	assert.Panics(t, func() { big.Mul(big) })
	assert.Panics(t, func() { Meter.Pow(200) })
	assert.NotPanics(t, func() { Radian.Pow(200) })
}

func TestQuantity_ExponentOverflowIsAnError(t *testing.T) {
	big := Q(1, MustParse("m^100"))

	_, err := big.Mul(big)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))

	_, err = big.Div(Q(1, MustParse("m^-100")))
	require.Error(t, err)

	_, err = big.Pow(2)
	require.Error(t, err)

	// m^100 m^100 would wrap to m^-56 in int8 exponents.
	_, err = Parse("m^100 m^100")
	require.Error(t, err)

	_, err = big.To(MustParse("m^-56"))
	require.Error(t, err)
	assert.True(t, domain.IsIncompatible(err))
}

func TestUnit_String(t *testing.T) {
	km := MustPrefix("k", Meter)

	tests := []struct {
		name     string
		unit     Unit
		expected string
	}{
		{"named", Newton, "N"},
		{"ratio", km.Div(Second), "km / s"},
		{"gravitational constant", Meter.Pow(3).Div(Kilogram.Mul(Second.Pow(2))), "m3 / (kg s2)"},
		{"inverse", Second.Pow(-1), "1 / s"},
		{"cancelled", Meter.Div(Meter), ""},
		{"product", Kilogram.Mul(Meter), "kg m"},
		{"higher power first", Kilogram.Mul(Meter.Pow(2)), "m2 kg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.unit.String())
		})
	}
}

func TestUnit_ComposedScaleAndDimension(t *testing.T) {
	u := Newton.Mul(Meter).Div(Second)

	assert.Equal(t, Watt.Dimension(), u.Dimension())
	assert.InDelta(t, 1.0, u.Scale(), 1e-15)
	assert.True(t, u.ConvertibleTo(Watt))
	assert.False(t, u.IsNamed())
	assert.Empty(t, u.Name())
	assert.Equal(t, "watt", Watt.Name())
}

func TestUnit_Equal(t *testing.T) {
	assert.True(t, MustPrefix("k", Gram).Equal(Kilogram))
	assert.False(t, Gram.Equal(Kilogram))
	assert.False(t, Alias("foo", Meter).Equal(Meter))
}

func TestQuantity_To(t *testing.T) {
	tests := []struct {
		name     string
		q        Quantity
		target   Unit
		expected float64
	}{
		{"speed of light to km/s", Q(299792458, Meter.Div(Second)), MustPrefix("k", Meter).Div(Second), 299792.458},
		{"au to meters", Q(1, AstronomicalUnit), Meter, 1.495978707e11},
		{"foot to inches", Q(1, Foot), Inch, 12},
		{"erg to joule", Q(1, Erg), Joule, 1e-7},
		{"gauss to tesla", Q(1e4, Gauss), Tesla, 1},
		{"kibibyte to bits", Q(1, MustParse("KiB")), Bit, 8192},
		{"hour to seconds", Q(2, Hour), Second, 7200},
		{"rankine to kelvin", Q(9, Rankine), Kelvin, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.q.To(tt.target)

			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, got.Value, 1e-12)
			assert.Equal(t, tt.target.String(), got.Unit.String())
		})
	}
}

func TestQuantity_To_SpeedOfLightIsExact(t *testing.T) {
	got, err := Q(299792458, Meter.Div(Second)).ToExpr("km/s")

	require.NoError(t, err)
	assert.Equal(t, "299792.458 km / s", got.String())
}

func TestQuantity_To_Incompatible(t *testing.T) {
	_, err := Q(1, Meter).To(Second)

	require.Error(t, err)
	assert.True(t, domain.IsIncompatible(err))

	var incompatible *domain.IncompatibleUnitsError
	require.ErrorAs(t, err, &incompatible)
	assert.Equal(t, "m", incompatible.From)
	assert.Equal(t, "s", incompatible.To)
	assert.Equal(t, "L", incompatible.FromDim)
	assert.Equal(t, "T", incompatible.ToDim)
}

func TestQuantity_GravitationalForce(t *testing.T) {
	g := Q(6.6743e-11, Meter.Pow(3).Div(Kilogram.Mul(Second.Pow(2))))
	mSun := Q(1.988409870698051e30, Kilogram)

	d2, err := Q(2.2, AstronomicalUnit).Pow(2)
	require.NoError(t, err)

	gm, err := g.Scale(3).Mul(mSun)
	require.NoError(t, err)

	gmm, err := gm.Mul(Q(100, Kilogram))
	require.NoError(t, err)

	f, err := gmm.Div(d2)
	require.NoError(t, err)

	got, err := f.To(Newton)

	require.NoError(t, err)
	assert.InEpsilon(t, 0.36756716021608254, got.Value, 1e-9)
	assert.Equal(t, "N", got.Unit.String())
}

func TestQuantity_SI(t *testing.T) {
	v, err := Q(1, Parsec).Div(Q(1, Year))
	require.NoError(t, err)

	got := v.SI()

	assert.InEpsilon(t, 3.0856775814913674e16/(365.25*86400), got.Value, 1e-12)
	assert.Equal(t, "m / s", got.Unit.String())
}

func TestQuantity_Format(t *testing.T) {
	q := Q(0.36756716021608254, Newton)

	assert.Equal(t, "0.36756716021608254 N", q.String())
	assert.Equal(t, "0.3676 N", q.Format(4))
	assert.Equal(t, "3", Q(3, Dimensionless).String())
	assert.True(t, q.IsFinite())

	inf, err := Q(1, Meter).Div(Q(0, Second))
	require.NoError(t, err)
	assert.False(t, inf.IsFinite())
}
