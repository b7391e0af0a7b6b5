// Package constants provides physical and astronomical constants with
// their units, uncertainties and references (CODATA 2018, IAU 2015).
package constants

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsamuelsen/rastro/internal/units"
)

// Constant is a named physical constant.
type Constant struct {
	Abbrev      string
	Name        string
	Value       float64
	Unit        units.Unit
	Uncertainty float64
	Reference   string
}

// Quantity returns the constant as a quantity in its native unit.
func (c Constant) Quantity() units.Quantity {
	return units.Q(c.Value, c.Unit)
}

// To converts the constant into target.
func (c Constant) To(target units.Unit) (units.Quantity, error) {
	return c.Quantity().To(target)
}

// String renders the multi-line description block:
//
//	  Name   = Gravitational constant
//	  Value  = 6.6743e-11
//	  Uncertainty  = 1.5e-15
//	  Unit  = m3 / (kg s2)
//	  Reference = CODATA 2018
func (c Constant) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "  Name   = %s\n", c.Name)
	fmt.Fprintf(&b, "  Value  = %s\n", formatFloat(c.Value))
	fmt.Fprintf(&b, "  Uncertainty  = %s\n", formatFloat(c.Uncertainty))
	fmt.Fprintf(&b, "  Unit  = %s\n", c.Unit)
	fmt.Fprintf(&b, "  Reference = %s", c.Reference)

	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
