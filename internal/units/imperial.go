package units

// Imperial and US customary units.
var (
	Inch         = Derive("inch", "inch", 0.0254, Meter)
	Foot         = Derive("ft", "foot", 12, Inch)
	Yard         = Derive("yd", "yard", 3, Foot)
	Mile         = Derive("mi", "mile", 5280, Foot)
	Furlong      = Derive("fur", "furlong", 660, Foot)
	NauticalMile = Derive("nmi", "nautical mile", 1852, Meter)

	Pound = Derive("lb", "pound", 0.45359237, Kilogram)
	Ounce = Derive("oz", "ounce", 1.0/16, Pound)
	Stone = Derive("st", "stone", 14, Pound)
	Ton   = Derive("ton", "ton", 2000, Pound)

	// Rankine is an absolute scale, so it converts multiplicatively.
	Rankine = Derive("deg_R", "rankine", 5.0/9, Kelvin)
)

func buildImperial() *Namespace {
	ns := NewNamespace(SystemImperial)

	ns.mustUnit(Inch)
	ns.mustUnit(Foot, "foot")
	ns.mustUnit(Yard)
	ns.mustUnit(Mile)
	ns.mustUnit(Furlong, "furlong")
	ns.mustUnit(NauticalMile)
	ns.mustUnit(Pound)
	ns.mustUnit(Ounce)
	ns.mustUnit(Stone)
	ns.mustUnit(Ton)
	ns.mustUnit(Rankine, "Ra")

	return ns
}
