package units

// Astronomical units, IAU 2012/2015 nominal values.
var (
	AstronomicalUnit = Derive("au", "astronomical unit", 1.495978707e11, Meter)
	Parsec           = Derive("pc", "parsec", 3.0856775814913674e16, Meter)
	LightYear        = Derive("lyr", "light year", 299792458*365.25*86400, Meter)

	SolarMass     = Derive("M_sun", "solar mass", 1.988409870698051e30, Kilogram)
	SolarRadius   = Derive("R_sun", "solar radius", 6.957e8, Meter)
	SolarLum      = Derive("L_sun", "solar luminosity", 3.828e26, Watt)
	EarthMass     = Derive("M_earth", "earth mass", 5.972167867791379e24, Kilogram)
	EarthRadius   = Derive("R_earth", "earth radius", 6.3781e6, Meter)
	JupiterMass   = Derive("M_jup", "jupiter mass", 1.8981245973360505e27, Kilogram)
	JupiterRadius = Derive("R_jup", "jupiter radius", 7.1492e7, Meter)

	Jansky = Derive("Jy", "jansky", 1e-26, Watt.Div(Meter.Pow(2)).Div(Hertz))
)

func buildAstrophys() *Namespace {
	ns := NewNamespace(SystemAstrophys)

	ns.mustUnit(AstronomicalUnit, "AU")
	ns.mustPrefixed(Parsec, SIPrefixes)
	ns.mustPrefixed(LightYear, SIPrefixes)
	ns.mustPrefixed(Jansky, SIPrefixes)

	ns.mustUnit(SolarMass, "solMass")
	ns.mustUnit(SolarRadius, "solRad")
	ns.mustUnit(SolarLum, "solLum")
	ns.mustUnit(EarthMass, "earthMass")
	ns.mustUnit(EarthRadius, "earthRad")
	ns.mustUnit(JupiterMass, "jupiterMass")
	ns.mustUnit(JupiterRadius, "jupiterRad")

	return ns
}
