package units

// Centimeter-gram-second units.
var (
	Centimeter = MustPrefix("c", Meter)

	Galileo     = Derive("Gal", "galileo", 1, Centimeter.Div(Second.Pow(2)))
	Dyne        = Derive("dyn", "dyne", 1, Gram.Mul(Centimeter).Div(Second.Pow(2)))
	Erg         = Derive("erg", "erg", 1, Dyne.Mul(Centimeter))
	Barye       = Derive("Ba", "barye", 1, Dyne.Div(Centimeter.Pow(2)))
	Poise       = Derive("P", "poise", 1, Barye.Mul(Second))
	Stokes      = Derive("St", "stokes", 1, Centimeter.Pow(2).Div(Second))
	Kayser      = Derive("k", "kayser", 1, Centimeter.Pow(-1))
	Statcoulomb = Derive("statC", "statcoulomb", 1/2997924580.0, Coulomb)
	Franklin    = Alias("Fr", Statcoulomb)
	Abcoulomb   = Derive("abC", "abcoulomb", 10, Coulomb)
	Statampere  = Derive("statA", "statampere", 1/2997924580.0, Ampere)
	Abampere    = Derive("abA", "abampere", 10, Ampere)
	Biot        = Alias("Bi", Abampere)
	Gauss       = Derive("G", "gauss", 1e-4, Tesla)
	Maxwell     = Derive("Mx", "maxwell", 1e-8, Weber)
	Debye       = Derive("D", "debye", 1e-18, Statcoulomb.Mul(Centimeter))
)

// MustPrefix applies the SI prefix with the given alias to u. It panics on
// an unknown alias and is meant for static declarations.
func MustPrefix(alias string, u Unit) Unit {
	p, err := LookupPrefix(alias)
	if err != nil {
		panic(err)
	}

	return p.Apply(u)
}

func buildCGS() *Namespace {
	ns := NewNamespace(SystemCGS)

	ns.mustUnit(Centimeter)
	ns.mustUnit(Gram)
	ns.mustUnit(Second)
	ns.mustUnit(Kelvin)
	ns.mustUnit(Mole)
	ns.mustUnit(Candela)
	ns.mustUnit(Radian)
	ns.mustUnit(Steradian)

	for _, u := range []Unit{
		Galileo, Dyne, Erg, Barye, Poise, Stokes, Kayser,
		Statcoulomb, Franklin, Abcoulomb, Statampere, Abampere, Biot,
		Gauss, Maxwell, Debye,
	} {
		ns.mustUnit(u)
	}

	return ns
}
