package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/rastro/internal/constants"
	"github.com/jsamuelsen/rastro/internal/units"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newRegistry builds a registry with the given names per system.
func newRegistry(t *testing.T, systems map[string][]units.Unit, order ...string) *units.Registry {
	t.Helper()

	nss := make([]*units.Namespace, 0, len(order))
	for _, name := range order {
		ns := units.NewNamespace(name)
		for _, u := range systems[name] {
			require.NoError(t, ns.RegisterUnit(u))
		}

		nss = append(nss, ns)
	}

	r, err := units.NewRegistry(nss...)
	require.NoError(t, err)

	return r
}

func newCatalog(t *testing.T, cs ...constants.Constant) *constants.Catalog {
	t.Helper()

	cat, err := constants.NewCatalog(cs...)
	require.NoError(t, err)

	return cat
}
