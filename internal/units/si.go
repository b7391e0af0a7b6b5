package units

import "math"

// SI base units.
var (
	Meter    = New("m", "meter", 1, Dim(DimLength, 1))
	Kilogram = New("kg", "kilogram", 1, Dim(DimMass, 1))
	Second   = New("s", "second", 1, Dim(DimTime, 1))
	Ampere   = New("A", "ampere", 1, Dim(DimCurrent, 1))
	Kelvin   = New("K", "kelvin", 1, Dim(DimTemperature, 1))
	Mole     = New("mol", "mole", 1, Dim(DimAmount, 1))
	Candela  = New("cd", "candela", 1, Dim(DimLuminosity, 1))
)

// Named SI units derived from the base units.
var (
	Gram      = Derive("g", "gram", 1e-3, Kilogram)
	Radian    = New("rad", "radian", 1, Dimension{})
	Steradian = New("sr", "steradian", 1, Dimension{})
	Hertz     = Derive("Hz", "hertz", 1, Second.Pow(-1))
	Newton    = Derive("N", "newton", 1, Kilogram.Mul(Meter).Div(Second.Pow(2)))
	Joule     = Derive("J", "joule", 1, Newton.Mul(Meter))
	Watt      = Derive("W", "watt", 1, Joule.Div(Second))
	Pascal    = Derive("Pa", "pascal", 1, Newton.Div(Meter.Pow(2)))
	Coulomb   = Derive("C", "coulomb", 1, Ampere.Mul(Second))
	Volt      = Derive("V", "volt", 1, Watt.Div(Ampere))
	Farad     = Derive("F", "farad", 1, Coulomb.Div(Volt))
	Ohm       = Derive("Ohm", "ohm", 1, Volt.Div(Ampere))
	Siemens   = Derive("S", "siemens", 1, Ampere.Div(Volt))
	Weber     = Derive("Wb", "weber", 1, Volt.Mul(Second))
	Tesla     = Derive("T", "tesla", 1, Weber.Div(Meter.Pow(2)))
	Henry     = Derive("H", "henry", 1, Weber.Div(Ampere))
	Lumen     = Derive("lm", "lumen", 1, Candela.Mul(Steradian))
	Lux       = Derive("lx", "lux", 1, Lumen.Div(Meter.Pow(2)))
	Becquerel = Derive("Bq", "becquerel", 1, Second.Pow(-1))
	Curie     = Derive("Ci", "curie", 3.7e10, Becquerel)

	Minute   = Derive("min", "minute", 60, Second)
	Hour     = Derive("h", "hour", 3600, Second)
	Day      = Derive("d", "day", 86400, Second)
	Year     = Derive("yr", "year", 365.25, Day)
	Degree   = Derive("deg", "degree", math.Pi/180, Radian)
	Arcmin   = Derive("arcmin", "arc minute", 1.0/60, Degree)
	Arcsec   = Derive("arcsec", "arc second", 1.0/3600, Degree)
	Tonne    = Derive("t", "tonne", 1000, Kilogram)
	Angstrom = Derive("Angstrom", "angstrom", 1e-10, Meter)
	Liter    = Derive("l", "liter", 1e-3, Meter.Pow(3))

	ElectronVolt = Derive("eV", "electronvolt", 1.602176634e-19, Joule)
)

func buildSI() *Namespace {
	ns := NewNamespace(SystemSI)

	// kg is produced by the gram prefixes.
	for _, u := range []Unit{
		Meter, Gram, Second, Ampere, Kelvin, Mole, Candela,
		Radian, Steradian, Hertz, Newton, Joule, Watt, Pascal, Coulomb,
		Volt, Farad, Ohm, Siemens, Weber, Tesla, Henry, Lumen, Lux,
		Becquerel, Curie, Year, ElectronVolt, Liter,
	} {
		ns.mustPrefixed(u, SIPrefixes)
	}

	ns.mustUnit(Minute)
	ns.mustUnit(Hour)
	ns.mustUnit(Day)
	ns.mustUnit(Degree)
	ns.mustUnit(Arcmin)
	ns.mustUnit(Arcsec)
	ns.mustUnit(Tonne)
	ns.mustUnit(Angstrom, "AA")

	return ns
}
