// Package ports defines the interfaces the application layer depends on.
// The built-in unit registry and constant catalog satisfy them; tests and
// alternative catalogs substitute their own.
package ports

import (
	"github.com/jsamuelsen/rastro/internal/constants"
	"github.com/jsamuelsen/rastro/internal/units"
)

// UnitCatalog resolves unit symbols and enumerates unit systems.
//
// Errors use the domain vocabulary: an unknown system or symbol returns
// domain.ErrNotFound, a malformed expression domain.ErrValidation.
type UnitCatalog interface {
	// Systems returns the system names in registration order.
	Systems() []string

	// PublicNames returns the sorted public names of a system.
	PublicNames(system string) ([]string, error)

	// Lookup resolves a single symbol across all systems.
	Lookup(symbol string) (units.Unit, error)

	// Parse parses a unit expression across all systems.
	Parse(expr string) (units.Unit, error)
}

// ConstantCatalog looks up physical constants by abbreviation.
type ConstantCatalog interface {
	// Lookup returns domain.ErrNotFound for an unknown abbreviation.
	Lookup(abbrev string) (constants.Constant, error)

	// All returns every constant in declaration order.
	All() []constants.Constant
}

var (
	_ UnitCatalog     = (*units.Registry)(nil)
	_ ConstantCatalog = (*constants.Catalog)(nil)
)
