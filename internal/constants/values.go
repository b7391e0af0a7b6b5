package constants

import (
	"github.com/jsamuelsen/rastro/internal/units"
)

const (
	codata2018 = "CODATA 2018"
	iau2015    = "IAU 2015 Resolution B 3"
	iau2012    = "IAU 2012 Resolution B2"
	derived    = "Derived from CODATA 2018 and IAU 2015"
)

var (
	m   = units.Meter
	kg  = units.Kilogram
	s   = units.Second
	k   = units.Kelvin
	mol = units.Mole
)

// CODATA 2018.
var (
	G = Constant{
		Abbrev: "G", Name: "Gravitational constant",
		Value: 6.6743e-11, Uncertainty: 1.5e-15,
		Unit: m.Pow(3).Div(kg.Mul(s.Pow(2))), Reference: codata2018,
	}
	C = Constant{
		Abbrev: "c", Name: "Speed of light in vacuum",
		Value: 299792458, Unit: m.Div(s), Reference: codata2018,
	}
	H = Constant{
		Abbrev: "h", Name: "Planck constant",
		Value: 6.62607015e-34, Unit: units.Joule.Mul(s), Reference: codata2018,
	}
	Hbar = Constant{
		Abbrev: "hbar", Name: "Reduced Planck constant",
		Value: 1.0545718176461565e-34, Unit: units.Joule.Mul(s), Reference: codata2018,
	}
	KB = Constant{
		Abbrev: "k_B", Name: "Boltzmann constant",
		Value: 1.380649e-23, Unit: units.Joule.Div(k), Reference: codata2018,
	}
	NA = Constant{
		Abbrev: "N_A", Name: "Avogadro's number",
		Value: 6.02214076e23, Unit: mol.Pow(-1), Reference: codata2018,
	}
	R = Constant{
		Abbrev: "R", Name: "Gas constant",
		Value: 8.314462618, Unit: units.Joule.Div(k.Mul(mol)), Reference: codata2018,
	}
	E = Constant{
		Abbrev: "e", Name: "Electron charge",
		Value: 1.602176634e-19, Unit: units.Coulomb, Reference: codata2018,
	}
	ME = Constant{
		Abbrev: "m_e", Name: "Electron mass",
		Value: 9.1093837015e-31, Uncertainty: 2.8e-40, Unit: kg, Reference: codata2018,
	}
	MP = Constant{
		Abbrev: "m_p", Name: "Proton mass",
		Value: 1.67262192369e-27, Uncertainty: 5.1e-37, Unit: kg, Reference: codata2018,
	}
	MN = Constant{
		Abbrev: "m_n", Name: "Neutron mass",
		Value: 1.67492749804e-27, Uncertainty: 9.5e-37, Unit: kg, Reference: codata2018,
	}
	U = Constant{
		Abbrev: "u", Name: "Atomic mass",
		Value: 1.6605390666e-27, Uncertainty: 5e-37, Unit: kg, Reference: codata2018,
	}
	SigmaSB = Constant{
		Abbrev: "sigma_sb", Name: "Stefan-Boltzmann constant",
		Value: 5.6703744191844314e-08, Unit: units.Watt.Div(m.Pow(2).Mul(k.Pow(4))), Reference: codata2018,
	}
	A0 = Constant{
		Abbrev: "a0", Name: "Bohr radius",
		Value: 5.29177210903e-11, Uncertainty: 8e-21, Unit: m, Reference: codata2018,
	}
	Alpha = Constant{
		Abbrev: "alpha", Name: "Fine-structure constant",
		Value: 0.0072973525693, Uncertainty: 1.1e-12, Unit: units.Dimensionless, Reference: codata2018,
	}
	Eps0 = Constant{
		Abbrev: "eps0", Name: "Vacuum electric permittivity",
		Value: 8.8541878128e-12, Uncertainty: 1.3e-21, Unit: units.Farad.Div(m), Reference: codata2018,
	}
	Mu0 = Constant{
		Abbrev: "mu0", Name: "Vacuum magnetic permeability",
		Value: 1.25663706212e-06, Uncertainty: 1.9e-16, Unit: units.Newton.Div(units.Ampere.Pow(2)), Reference: codata2018,
	}
	Ryd = Constant{
		Abbrev: "Ryd", Name: "Rydberg constant",
		Value: 10973731.56816, Uncertainty: 2.1e-05, Unit: m.Pow(-1), Reference: codata2018,
	}
	G0 = Constant{
		Abbrev: "g0", Name: "Standard acceleration of gravity",
		Value: 9.80665, Unit: m.Div(s.Pow(2)), Reference: codata2018,
	}
)

// IAU 2015.
var (
	GMSun = Constant{
		Abbrev: "GM_sun", Name: "Nominal solar mass parameter",
		Value: 1.3271244e20, Unit: m.Pow(3).Div(s.Pow(2)), Reference: iau2015,
	}
	MSun = Constant{
		Abbrev: "M_sun", Name: "Solar mass",
		Value: 1.988409870698051e30, Uncertainty: 4.468805426856864e25, Unit: kg, Reference: derived,
	}
	RSun = Constant{
		Abbrev: "R_sun", Name: "Nominal solar radius",
		Value: 6.957e8, Unit: m, Reference: iau2015,
	}
	LSun = Constant{
		Abbrev: "L_sun", Name: "Nominal solar luminosity",
		Value: 3.828e26, Unit: units.Watt, Reference: iau2015,
	}
	GMEarth = Constant{
		Abbrev: "GM_earth", Name: "Nominal Earth mass parameter",
		Value: 3.986004e14, Unit: m.Pow(3).Div(s.Pow(2)), Reference: iau2015,
	}
	MEarth = Constant{
		Abbrev: "M_earth", Name: "Earth mass",
		Value: 5.972167867791379e24, Uncertainty: 1.3422009501651213e20, Unit: kg, Reference: derived,
	}
	REarth = Constant{
		Abbrev: "R_earth", Name: "Nominal Earth equatorial radius",
		Value: 6.3781e6, Unit: m, Reference: iau2015,
	}
	GMJup = Constant{
		Abbrev: "GM_jup", Name: "Nominal Jupiter mass parameter",
		Value: 1.2668653e17, Unit: m.Pow(3).Div(s.Pow(2)), Reference: iau2015,
	}
	MJup = Constant{
		Abbrev: "M_jup", Name: "Jupiter mass",
		Value: 1.8981245973360505e27, Uncertainty: 4.26589589320839e22, Unit: kg, Reference: derived,
	}
	RJup = Constant{
		Abbrev: "R_jup", Name: "Nominal Jupiter equatorial radius",
		Value: 7.1492e7, Unit: m, Reference: iau2015,
	}
	AU = Constant{
		Abbrev: "au", Name: "Astronomical Unit",
		Value: 1.495978707e11, Unit: m, Reference: iau2012,
	}
	PC = Constant{
		Abbrev: "pc", Name: "Parsec",
		Value: 3.0856775814913674e16, Unit: m, Reference: "Derived from au",
	}
)

var builtin = []Constant{
	G, C, H, Hbar, KB, NA, R, E, ME, MP, MN, U, SigmaSB, A0, Alpha, Eps0, Mu0, Ryd, G0,
	GMSun, MSun, RSun, LSun, GMEarth, MEarth, REarth, GMJup, MJup, RJup, AU, PC,
}
