package units

import (
	"sort"
	"strings"

	"github.com/jsamuelsen/rastro/internal/domain"
)

// Namespace maps names to units. Registration order is preserved.
// The shared system namespaces are built at init and must be treated as
// read-only; Register is not safe for concurrent use.
type Namespace struct {
	name  string
	order []string
	units map[string]Unit
}

// NewNamespace creates an empty namespace.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:  name,
		units: make(map[string]Unit),
	}
}

// Name returns the namespace name, e.g. "si".
func (n *Namespace) Name() string { return n.name }

// Len returns the number of registered names, private ones included.
func (n *Namespace) Len() int { return len(n.order) }

// Register binds name to u. Registering an identical unit again is a no-op;
// binding a different unit to a taken name returns a *domain.ConflictError.
func (n *Namespace) Register(name string, u Unit) error {
	if existing, ok := n.units[name]; ok {
		if existing.Equal(u) {
			return nil
		}

		return domain.NewConflictErrorWithDetails("unit",
			"name already registered in "+n.name+" with a different definition", name)
	}

	n.units[name] = u
	n.order = append(n.order, name)

	return nil
}

// RegisterUnit binds a named unit under its own symbol.
func (n *Namespace) RegisterUnit(u Unit) error {
	return n.Register(u.String(), u)
}

// RegisterPrefixed binds u and every prefixed variant of it.
func (n *Namespace) RegisterPrefixed(u Unit, prefixes []Prefix) error {
	if err := n.RegisterUnit(u); err != nil {
		return err
	}

	for _, p := range prefixes {
		if err := n.RegisterUnit(p.Apply(u)); err != nil {
			return err
		}
	}

	return nil
}

// Merge registers every name of others into n, in order.
func (n *Namespace) Merge(others ...*Namespace) error {
	for _, o := range others {
		for _, name := range o.order {
			if err := n.Register(name, o.units[name]); err != nil {
				return err
			}
		}
	}

	return nil
}

// Lookup returns the unit bound to name.
func (n *Namespace) Lookup(name string) (Unit, error) {
	u, ok := n.units[name]
	if !ok {
		return Unit{}, domain.NewNotFoundError("unit", name)
	}

	return u, nil
}

// Names returns every registered name in registration order.
func (n *Namespace) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)

	return out
}

// PublicNames returns the sorted names that do not start with an underscore.
func (n *Namespace) PublicNames() []string {
	out := make([]string, 0, len(n.order))
	for _, name := range n.order {
		if !strings.HasPrefix(name, "_") {
			out = append(out, name)
		}
	}

	sort.Strings(out)

	return out
}

// Parse parses a unit expression against the names of n.
func (n *Namespace) Parse(expr string) (Unit, error) {
	return parse(expr, n.Lookup)
}

func (n *Namespace) mustRegister(name string, u Unit) {
	if err := n.Register(name, u); err != nil {
		panic(err)
	}
}

func (n *Namespace) mustUnit(u Unit, aliases ...string) {
	n.mustRegister(u.String(), u)

	for _, a := range aliases {
		n.mustRegister(a, u)
	}
}

func (n *Namespace) mustPrefixed(u Unit, prefixes []Prefix) {
	if err := n.RegisterPrefixed(u, prefixes); err != nil {
		panic(err)
	}
}
