// Package units implements physical units and quantities: dimensions over the
// seven SI base dimensions, named and composed units, SI and binary prefixes,
// unit expression parsing and the statically declared unit systems
// (si, cgs, astrophys, imperial, info).
package units

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// term is one named unit raised to an integer power inside a composed unit.
type term struct {
	symbol string
	power  int
}

// Unit is a multiplicative unit: a scale relative to the coherent SI unit of
// its dimension plus the display terms it was built from.
// Units are immutable values; every operation returns a new Unit.
type Unit struct {
	name  string
	terms []term
	scale float64
	dim   Dimension
}

// Dimensionless is the unit of pure numbers.
var Dimensionless = Unit{scale: 1}

// New declares a named unit with the given SI scale and dimension.
func New(symbol, name string, scale float64, dim Dimension) Unit {
	return Unit{
		name:  name,
		terms: []term{{symbol: symbol, power: 1}},
		scale: scale,
		dim:   dim,
	}
}

// Derive declares a named unit equal to factor times of.
func Derive(symbol, name string, factor float64, of Unit) Unit {
	return New(symbol, name, factor*of.scale, of.dim)
}

// Alias returns u under another symbol with the same scale and dimension.
func Alias(symbol string, u Unit) Unit {
	return New(symbol, u.name, u.scale, u.dim)
}

// Symbol returns the display form of the unit, same as String.
func (u Unit) Symbol() string { return u.String() }

// Name returns the long name of a named unit, or the empty string for
// composed units.
func (u Unit) Name() string {
	if len(u.terms) == 1 && u.terms[0].power == 1 {
		return u.name
	}

	return ""
}

// Scale returns the factor converting one of u into the coherent SI unit.
func (u Unit) Scale() float64 { return u.scale }

// Dimension returns the dimension of u.
func (u Unit) Dimension() Dimension { return u.dim }

// IsNamed reports whether u is a single named unit rather than a product.
func (u Unit) IsNamed() bool {
	return len(u.terms) == 1 && u.terms[0].power == 1
}

// IsDimensionless reports whether u has no dimension.
func (u Unit) IsDimensionless() bool { return u.dim.IsDimensionless() }

// ConvertibleTo reports whether u and o share a dimension.
func (u Unit) ConvertibleTo(o Unit) bool { return u.dim == o.dim }

// Equal reports whether u and o display the same, share a dimension and
// scale to within floating point tolerance.
func (u Unit) Equal(o Unit) bool {
	return u.String() == o.String() && u.dim == o.dim && closeEnough(u.scale, o.scale)
}

// Mul returns the product u*o. It panics if an exponent leaves
// [MinExponent, MaxExponent]; Parse and the Quantity methods report that
// as an error instead.
func (u Unit) Mul(o Unit) Unit { return must(u.mul(o)) }

// Div returns the quotient u/o. It panics like Mul.
func (u Unit) Div(o Unit) Unit { return must(u.div(o)) }

// Pow returns u raised to the integer power n. It panics like Mul.
func (u Unit) Pow(n int) Unit { return must(u.pow(n)) }

func (u Unit) mul(o Unit) (Unit, error) {
	dim, err := u.dim.Mul(o.dim)
	if err != nil {
		return Unit{}, err
	}

	return Unit{terms: mergeTerms(u.terms, o.terms, 1), scale: u.scale * o.scale, dim: dim}, nil
}

func (u Unit) div(o Unit) (Unit, error) {
	dim, err := u.dim.Div(o.dim)
	if err != nil {
		return Unit{}, err
	}

	return Unit{terms: mergeTerms(u.terms, o.terms, -1), scale: u.scale / o.scale, dim: dim}, nil
}

func (u Unit) pow(n int) (Unit, error) {
	if n == 1 {
		return u, nil
	}

	dim, err := u.dim.Pow(n)
	if err != nil {
		return Unit{}, err
	}

	terms := make([]term, 0, len(u.terms))
	if n != 0 {
		for _, t := range u.terms {
			terms = append(terms, term{symbol: t.symbol, power: t.power * n})
		}
	}

	return Unit{terms: terms, scale: math.Pow(u.scale, float64(n)), dim: dim}, nil
}

func must(u Unit, err error) Unit {
	if err != nil {
		panic(err)
	}

	return u
}

// String renders the unit with positive powers first and negative powers
// after a slash, e.g. "m3 / (kg s2)" or "km / s".
// The dimensionless unit renders as the empty string.
func (u Unit) String() string {
	var num, den []term

	for _, t := range u.terms {
		switch {
		case t.power > 0:
			num = append(num, t)
		case t.power < 0:
			den = append(den, term{symbol: t.symbol, power: -t.power})
		}
	}

	// Highest power first above the line, lowest first below it.
	sortTerms(num, true)
	sortTerms(den, false)

	numStr := joinTerms(num)
	if len(den) == 0 {
		return numStr
	}

	if numStr == "" {
		numStr = "1"
	}

	denStr := joinTerms(den)
	if len(den) > 1 {
		denStr = "(" + denStr + ")"
	}

	return numStr + " / " + denStr
}

func mergeTerms(a, b []term, sign int) []term {
	out := make([]term, 0, len(a)+len(b))
	out = append(out, a...)

	for _, t := range b {
		found := false

		for i := range out {
			if out[i].symbol == t.symbol {
				out[i].power += sign * t.power
				found = true

				break
			}
		}

		if !found {
			out = append(out, term{symbol: t.symbol, power: sign * t.power})
		}
	}

	kept := out[:0]
	for _, t := range out {
		if t.power != 0 {
			kept = append(kept, t)
		}
	}

	return kept
}

func sortTerms(ts []term, desc bool) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].power != ts[j].power {
			return (ts[i].power > ts[j].power) == desc
		}

		return ts[i].symbol < ts[j].symbol
	})
}

func joinTerms(ts []term) string {
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		if t.power == 1 {
			parts = append(parts, t.symbol)
		} else {
			parts = append(parts, t.symbol+strconv.Itoa(t.power))
		}
	}

	return strings.Join(parts, " ")
}

func closeEnough(a, b float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}
