package units

import (
	"math"
	"strconv"

	"github.com/jsamuelsen/rastro/internal/domain"
)

// Quantity is a value paired with a unit.
type Quantity struct {
	Value float64
	Unit  Unit
}

// Q builds a quantity.
func Q(value float64, u Unit) Quantity {
	return Quantity{Value: value, Unit: u}
}

// Mul multiplies two quantities, combining their units. It fails when a
// combined exponent leaves [MinExponent, MaxExponent].
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	u, err := q.Unit.mul(o.Unit)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: q.Value * o.Value, Unit: u}, nil
}

// Div divides q by o, combining their units. It fails like Mul.
func (q Quantity) Div(o Quantity) (Quantity, error) {
	u, err := q.Unit.div(o.Unit)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: q.Value / o.Value, Unit: u}, nil
}

// Pow raises both value and unit to the integer power n. It fails like Mul.
func (q Quantity) Pow(n int) (Quantity, error) {
	u, err := q.Unit.pow(n)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{Value: math.Pow(q.Value, float64(n)), Unit: u}, nil
}

// Scale multiplies the value by a dimensionless factor.
func (q Quantity) Scale(f float64) Quantity {
	return Quantity{Value: q.Value * f, Unit: q.Unit}
}

// To converts q into the target unit. Units of different dimension yield a
// *domain.IncompatibleUnitsError.
func (q Quantity) To(target Unit) (Quantity, error) {
	if !q.Unit.ConvertibleTo(target) {
		return Quantity{}, domain.NewIncompatibleUnitsError(
			q.Unit.String(), target.String(),
			q.Unit.dim.String(), target.dim.String(),
		)
	}

	return Quantity{Value: q.Value * q.Unit.scale / target.scale, Unit: target}, nil
}

// ToExpr parses target with the Default registry and converts q into it.
func (q Quantity) ToExpr(target string) (Quantity, error) {
	u, err := Default().Parse(target)
	if err != nil {
		return Quantity{}, err
	}

	return q.To(u)
}

// SI decomposes q into coherent SI base units.
func (q Quantity) SI() Quantity {
	return Quantity{Value: q.Value * q.Unit.scale, Unit: siUnitFor(q.Unit.dim)}
}

// IsFinite reports whether the value is neither NaN nor infinite.
func (q Quantity) IsFinite() bool {
	return !math.IsNaN(q.Value) && !math.IsInf(q.Value, 0)
}

// String renders the shortest exact value followed by the unit, e.g.
// "299792.458 km / s".
func (q Quantity) String() string {
	return q.Format(-1)
}

// Format renders the value with prec significant digits (-1 for the
// shortest exact representation).
func (q Quantity) Format(prec int) string {
	v := strconv.FormatFloat(q.Value, 'g', prec, 64)

	u := q.Unit.String()
	if u == "" {
		return v
	}

	return v + " " + u
}

var siBaseUnits = [numBaseDimensions]Unit{
	DimLength:      Meter,
	DimMass:        Kilogram,
	DimTime:        Second,
	DimCurrent:     Ampere,
	DimTemperature: Kelvin,
	DimAmount:      Mole,
	DimLuminosity:  Candela,
}

func siUnitFor(d Dimension) Unit {
	u := Dimensionless
	for i, p := range d {
		if p != 0 {
			u = u.Mul(siBaseUnits[i].Pow(int(p)))
		}
	}

	return u
}
