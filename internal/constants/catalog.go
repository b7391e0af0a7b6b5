package constants

import (
	"github.com/jsamuelsen/rastro/internal/domain"
)

// Catalog is an ordered set of constants addressed by abbreviation.
type Catalog struct {
	order   []string
	byAbbrv map[string]Constant
}

// NewCatalog builds a catalog. Duplicate abbreviations yield a
// *domain.ConflictError.
func NewCatalog(cs ...Constant) (*Catalog, error) {
	cat := &Catalog{byAbbrv: make(map[string]Constant, len(cs))}

	for _, c := range cs {
		if _, dup := cat.byAbbrv[c.Abbrev]; dup {
			return nil, domain.NewConflictErrorWithDetails("constant", "abbreviation registered twice", c.Abbrev)
		}

		cat.byAbbrv[c.Abbrev] = c
		cat.order = append(cat.order, c.Abbrev)
	}

	return cat, nil
}

// Lookup returns the constant with the given abbreviation.
func (c *Catalog) Lookup(abbrev string) (Constant, error) {
	k, ok := c.byAbbrv[abbrev]
	if !ok {
		return Constant{}, domain.NewNotFoundError("constant", abbrev)
	}

	return k, nil
}

// All returns every constant in declaration order.
func (c *Catalog) All() []Constant {
	out := make([]Constant, 0, len(c.order))
	for _, a := range c.order {
		out = append(out, c.byAbbrv[a])
	}

	return out
}

// Len returns the number of constants.
func (c *Catalog) Len() int { return len(c.order) }

var defaultCatalog = mustCatalog(builtin...)

func mustCatalog(cs ...Constant) *Catalog {
	cat, err := NewCatalog(cs...)
	if err != nil {
		panic(err)
	}

	return cat
}

// Default returns the catalog of built-in constants.
func Default() *Catalog { return defaultCatalog }
