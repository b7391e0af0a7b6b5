package benchmark

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
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

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func healthHandler(checkers ...ports.HealthChecker) *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	for _, c := range checkers {
		_ = registry.Register(c)
	}

	return handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z"))
}

// BenchmarkHealthHandlers measures the probe endpoints, which are hit by
// the orchestrator every few seconds.
func BenchmarkHealthHandlers(b *testing.B) {
	svc := newServices()
	bare := healthHandler()
	checked := healthHandler(svc.catalog, svc.evaluator)

	cases := []struct {
		name    string
		path    string
		handler gin.HandlerFunc
	}{
		{"live", "/-/live", bare.Liveness},
		{"ready_empty", "/-/ready", bare.Readiness},
		{"ready_catalogs", "/-/ready", checked.Readiness},
		{"build", "/-/build", bare.BuildInfoHandler},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			req := httptest.NewRequest(http.MethodGet, tc.path, http.NoBody)

			b.ReportAllocs()

			for b.Loop() {
				c, _ := gin.CreateTestContext(httptest.NewRecorder())
				c.Request = req
				tc.handler(c)
			}
		})
	}
}

// BenchmarkRouter measures full requests through the middleware chain.
func BenchmarkRouter(b *testing.B) {
	router := newRouter()

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"force", http.MethodPost, "/api/v1/force", "{}"},
		{"convert", http.MethodPost, "/api/v1/convert", `{"value":299792458,"from":"m/s","to":"km/s"}`},
		{"constant", http.MethodGet, "/api/v1/constants/c?unit=km/s", ""},
		{"list_units", http.MethodGet, "/api/v1/systems/si/units?limit=100", ""},
		{"describe_unit", http.MethodGet, "/api/v1/units/kg%20m%20s-2", ""},
		{"live", http.MethodGet, "/-/live", ""},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()

			for b.Loop() {
				var body io.Reader = http.NoBody
				if tc.body != "" {
					body = strings.NewReader(tc.body)
				}

				req := httptest.NewRequest(tc.method, tc.path, body)
				req.Header.Set("Content-Type", "application/json")

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				if w.Code != http.StatusOK {
					b.Fatalf("status %d: %s", w.Code, w.Body.String())
				}
			}
		})
	}
}

// BenchmarkGravitationalForce measures the evaluator without HTTP.
func BenchmarkGravitationalForce(b *testing.B) {
	evaluator := newServices().evaluator
	ctx := context.Background()
	in := app.DefaultForceInput()

	b.ReportAllocs()

	for b.Loop() {
		if _, err := evaluator.GravitationalForce(ctx, in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseUnit measures unit expression parsing.
func BenchmarkParseUnit(b *testing.B) {
	registry := units.Default()

	b.ReportAllocs()

	for b.Loop() {
		if _, err := registry.Parse("m3 / (kg s2)"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkListingScript measures the SI/CGS listing.
func BenchmarkListingScript(b *testing.B) {
	catalog := newServices().catalog
	ctx := context.Background()

	b.ReportAllocs()

	for b.Loop() {
		if err := catalog.ListingScript(ctx, io.Discard, app.ListingModeCorrected); err != nil {
			b.Fatal(err)
		}
	}
}

type services struct {
	evaluator *app.EvaluatorService
	catalog   *app.CatalogService
}

func newServices() services {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return services{
		evaluator: app.NewEvaluatorService(app.EvaluatorServiceConfig{
			Units:     units.Default(),
			Constants: constants.Default(),
			Logger:    logger,
		}),
		catalog: app.NewCatalogService(app.CatalogServiceConfig{
			Units:  units.Default(),
			Logger: logger,
		}),
	}
}

func newRouter() *gin.Engine {
	svc := newServices()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine := gin.New()
	rastrohttp.SetupRouter(engine, rastrohttp.NewDefaultRouterConfig(
		logger,
		&config.AppConfig{Name: "rastro", Version: "bench", Environment: "test"},
		healthHandler(svc.catalog, svc.evaluator),
		svc.evaluator,
		svc.catalog,
	))

	return engine
}
