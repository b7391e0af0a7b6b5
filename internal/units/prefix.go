package units

import (
	"github.com/jsamuelsen/rastro/internal/domain"
)

// Prefix is a multiplicative unit prefix such as kilo (k) or gibi (Gi).
type Prefix struct {
	Alias  string
	Name   string
	Factor float64
}

// SIPrefixes lists the SI prefixes from quetta down to quecto.
var SIPrefixes = []Prefix{
	{Alias: "Q", Name: "quetta", Factor: 1e30},
	{Alias: "R", Name: "ronna", Factor: 1e27},
	{Alias: "Y", Name: "yotta", Factor: 1e24},
	{Alias: "Z", Name: "zetta", Factor: 1e21},
	{Alias: "E", Name: "exa", Factor: 1e18},
	{Alias: "P", Name: "peta", Factor: 1e15},
	{Alias: "T", Name: "tera", Factor: 1e12},
	{Alias: "G", Name: "giga", Factor: 1e9},
	{Alias: "M", Name: "mega", Factor: 1e6},
	{Alias: "k", Name: "kilo", Factor: 1e3},
	{Alias: "h", Name: "hecto", Factor: 1e2},
	{Alias: "da", Name: "deka", Factor: 1e1},
	{Alias: "d", Name: "deci", Factor: 1e-1},
	{Alias: "c", Name: "centi", Factor: 1e-2},
	{Alias: "m", Name: "milli", Factor: 1e-3},
	{Alias: "u", Name: "micro", Factor: 1e-6},
	{Alias: "n", Name: "nano", Factor: 1e-9},
	{Alias: "p", Name: "pico", Factor: 1e-12},
	{Alias: "f", Name: "femto", Factor: 1e-15},
	{Alias: "a", Name: "atto", Factor: 1e-18},
	{Alias: "z", Name: "zepto", Factor: 1e-21},
	{Alias: "y", Name: "yocto", Factor: 1e-24},
	{Alias: "r", Name: "ronto", Factor: 1e-27},
	{Alias: "q", Name: "quecto", Factor: 1e-30},
}

// BinaryPrefixes lists the IEC binary prefixes from kibi to exbi.
var BinaryPrefixes = []Prefix{
	{Alias: "Ki", Name: "kibi", Factor: 1 << 10},
	{Alias: "Mi", Name: "mebi", Factor: 1 << 20},
	{Alias: "Gi", Name: "gibi", Factor: 1 << 30},
	{Alias: "Ti", Name: "tebi", Factor: 1 << 40},
	{Alias: "Pi", Name: "pebi", Factor: 1 << 50},
	{Alias: "Ei", Name: "exbi", Factor: 1 << 60},
}

// LookupPrefix finds an SI prefix by alias ("k") or name ("kilo").
// "deca" is accepted as a spelling of deka.
func LookupPrefix(s string) (Prefix, error) {
	if s == "deca" {
		s = "deka"
	}

	return lookupPrefix(SIPrefixes, s)
}

// LookupBinaryPrefix finds a binary prefix by alias ("Gi") or name ("gibi").
func LookupBinaryPrefix(s string) (Prefix, error) {
	return lookupPrefix(BinaryPrefixes, s)
}

func lookupPrefix(table []Prefix, s string) (Prefix, error) {
	for _, p := range table {
		if p.Alias == s || p.Name == s {
			return p, nil
		}
	}

	return Prefix{}, domain.NewValidationErrorWithValue("prefix", "invalid prefix: "+s, s)
}

// Apply returns the prefixed variant of a named unit, e.g. k applied to m
// gives km with scale 1000.
func (p Prefix) Apply(u Unit) Unit {
	name := ""
	if u.name != "" {
		name = p.Name + u.name
	}

	return New(p.Alias+u.String(), name, p.Factor*u.scale, u.dim)
}

func prefixesAtLeast(table []Prefix, min float64) []Prefix {
	out := make([]Prefix, 0, len(table))
	for _, p := range table {
		if p.Factor >= min {
			out = append(out, p)
		}
	}

	return out
}
