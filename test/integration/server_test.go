//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	rastrohttp "github.com/jsamuelsen/rastro/internal/adapters/http"
	"github.com/jsamuelsen/rastro/internal/adapters/http/handlers"
	"github.com/jsamuelsen/rastro/internal/app"
	"github.com/jsamuelsen/rastro/internal/constants"
	"github.com/jsamuelsen/rastro/internal/platform/config"
	"github.com/jsamuelsen/rastro/internal/ports"
	"github.com/jsamuelsen/rastro/internal/units"
)

// newServer starts the full router against the built-in catalogs.
// Callers close the returned server.
func newServer(tb testing.TB) *httptest.Server {
	tb.Helper()

	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	evaluator := app.NewEvaluatorService(app.EvaluatorServiceConfig{
		Units:     units.Default(),
		Constants: constants.Default(),
		Logger:    logger,
	})
	catalog := app.NewCatalogService(app.CatalogServiceConfig{
		Units:  units.Default(),
		Logger: logger,
	})

	registry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{catalog, evaluator} {
		if err := registry.Register(checker); err != nil {
			tb.Fatalf("registering %s: %v", checker.Name(), err)
		}
	}

	healthHandler := handlers.NewHealthHandler(registry, handlers.NewBuildInfo("integration", "none", "now"))

	engine := gin.New()
	rastrohttp.SetupRouter(engine, rastrohttp.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "rastro", Version: "integration", Environment: "test"},
		healthHandler,
		evaluator,
		catalog,
	))

	return httptest.NewServer(engine)
}
