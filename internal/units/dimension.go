package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsamuelsen/rastro/internal/domain"
)

// Base dimension indices, in SI order.
const (
	DimLength = iota
	DimMass
	DimTime
	DimCurrent
	DimTemperature
	DimAmount
	DimLuminosity

	numBaseDimensions
)

var dimensionSymbols = [numBaseDimensions]string{"L", "M", "T", "I", "Θ", "N", "J"}

// Dimension holds the integer exponent of every SI base dimension.
// The zero value is dimensionless.
type Dimension [numBaseDimensions]int8

// Exponent bounds of a Dimension. Arithmetic leaving them fails rather
// than wrapping.
const (
	MinExponent = math.MinInt8
	MaxExponent = math.MaxInt8
)

// Dim returns a dimension with a single base dimension raised to power.
func Dim(base int, power int8) Dimension {
	var d Dimension
	d[base] = power

	return d
}

// Mul adds exponents.
func (d Dimension) Mul(o Dimension) (Dimension, error) {
	return d.combine(func(i int) int { return int(d[i]) + int(o[i]) })
}

// Div subtracts exponents.
func (d Dimension) Div(o Dimension) (Dimension, error) {
	return d.combine(func(i int) int { return int(d[i]) - int(o[i]) })
}

// Pow multiplies every exponent by n.
func (d Dimension) Pow(n int) (Dimension, error) {
	if n < MinExponent || n > MaxExponent {
		if d.IsDimensionless() {
			return d, nil
		}

		return d, exponentError(n)
	}

	return d.combine(func(i int) int { return int(d[i]) * n })
}

func (d Dimension) combine(exp func(i int) int) (Dimension, error) {
	var out Dimension

	for i := range d {
		e := exp(i)
		if e < MinExponent || e > MaxExponent {
			return d, exponentError(e)
		}

		out[i] = int8(e)
	}

	return out, nil
}

func exponentError(e int) error {
	return domain.NewValidationErrorWithValue("unit",
		fmt.Sprintf("exponent %d outside [%d, %d]", e, MinExponent, MaxExponent), e)
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimension{}
}

// String renders the dimension as e.g. "L3 M-1 T-2", or "1" when dimensionless.
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "1"
	}

	parts := make([]string, 0, numBaseDimensions)
	for i, p := range d {
		switch p {
		case 0:
		case 1:
			parts = append(parts, dimensionSymbols[i])
		default:
			parts = append(parts, dimensionSymbols[i]+strconv.Itoa(int(p)))
		}
	}

	return strings.Join(parts, " ")
}
