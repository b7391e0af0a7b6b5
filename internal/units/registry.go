package units

import (
	"github.com/jsamuelsen/rastro/internal/domain"
)

// System names.
const (
	SystemSI        = "si"
	SystemCGS       = "cgs"
	SystemAstrophys = "astrophys"
	SystemImperial  = "imperial"
	SystemInfo      = "info"
)

// Registry groups unit systems and a merged namespace used to resolve
// symbols across all of them.
type Registry struct {
	systems []*Namespace
	byName  map[string]*Namespace
	merged  *Namespace
}

// NewRegistry merges the given systems. A symbol bound to different units
// in two systems yields a *domain.ConflictError.
func NewRegistry(systems ...*Namespace) (*Registry, error) {
	r := &Registry{
		systems: systems,
		byName:  make(map[string]*Namespace, len(systems)),
		merged:  NewNamespace("default"),
	}

	for _, s := range systems {
		if _, dup := r.byName[s.Name()]; dup {
			return nil, domain.NewConflictErrorWithDetails("unit system", "system registered twice", s.Name())
		}

		r.byName[s.Name()] = s
	}

	if err := r.merged.Merge(systems...); err != nil {
		return nil, err
	}

	return r, nil
}

// Systems returns the system names in registration order.
func (r *Registry) Systems() []string {
	out := make([]string, len(r.systems))
	for i, s := range r.systems {
		out[i] = s.Name()
	}

	return out
}

// System returns the namespace of a named system.
func (r *Registry) System(name string) (*Namespace, error) {
	s, ok := r.byName[name]
	if !ok {
		return nil, domain.NewNotFoundError("unit system", name)
	}

	return s, nil
}

// PublicNames returns the public names of a system, sorted.
func (r *Registry) PublicNames(system string) ([]string, error) {
	s, err := r.System(system)
	if err != nil {
		return nil, err
	}

	return s.PublicNames(), nil
}

// Lookup resolves a symbol in any system.
func (r *Registry) Lookup(symbol string) (Unit, error) {
	return r.merged.Lookup(symbol)
}

// Parse parses a unit expression against all systems.
func (r *Registry) Parse(expr string) (Unit, error) {
	return r.merged.Parse(expr)
}

var (
	siNamespace        = buildSI()
	cgsNamespace       = buildCGS()
	astrophysNamespace = buildAstrophys()
	imperialNamespace  = buildImperial()
	infoNamespace      = buildInfo()

	defaultRegistry = mustRegistry(
		siNamespace, cgsNamespace, astrophysNamespace, imperialNamespace, infoNamespace,
	)
)

func mustRegistry(systems ...*Namespace) *Registry {
	r, err := NewRegistry(systems...)
	if err != nil {
		panic(err)
	}

	return r
}

// Default returns the registry of every built-in system.
func Default() *Registry { return defaultRegistry }

// SI returns the SI namespace.
func SI() *Namespace { return siNamespace }

// CGS returns the CGS namespace.
func CGS() *Namespace { return cgsNamespace }

// Astrophys returns the astronomical namespace.
func Astrophys() *Namespace { return astrophysNamespace }

// Imperial returns the imperial namespace.
func Imperial() *Namespace { return imperialNamespace }

// Info returns the information units namespace.
func Info() *Namespace { return infoNamespace }
