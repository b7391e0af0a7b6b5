package units

// Information units.
var (
	Bit  = New("bit", "bit", 1, Dimension{})
	Byte = Derive("B", "byte", 8, Bit)
)

func buildInfo() *Namespace {
	ns := NewNamespace(SystemInfo)

	large := prefixesAtLeast(SIPrefixes, 1e3)

	ns.mustPrefixed(Bit, large)
	ns.mustPrefixed(Bit, BinaryPrefixes)
	ns.mustPrefixed(Byte, large)
	ns.mustPrefixed(Byte, BinaryPrefixes)
	ns.mustRegister("byte", Byte)

	return ns
}
