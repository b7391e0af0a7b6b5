package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/handlers"
	"github.com/jsamuelsen/rastro/internal/adapters/http/middleware"
	"github.com/jsamuelsen/rastro/internal/app"
	"github.com/jsamuelsen/rastro/internal/platform/config"
	"github.com/jsamuelsen/rastro/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds every /api/v1 request unless overridden.
const DefaultRequestTimeout = 30 * time.Second

// RouterConfig wires the services into the HTTP routes. A nil service
// leaves its routes out.
type RouterConfig struct {
	Logger        *slog.Logger
	AppConfig     *config.AppConfig
	HealthHandler *handlers.HealthHandler

	// Evaluator backs /force, /convert and /constants.
	Evaluator *app.EvaluatorService
	// Catalog backs /systems and /units.
	Catalog *app.CatalogService

	// Precision is the number of significant digits in rendered
	// quantities, -1 for the shortest exact representation.
	Precision int
	// Timeout is the /api/v1 request deadline; zero disables it.
	Timeout time.Duration
}

// NewDefaultRouterConfig returns a RouterConfig with shortest-exact
// rendering and DefaultRequestTimeout.
func NewDefaultRouterConfig(
	logger *slog.Logger,
	appCfg *config.AppConfig,
	healthHandler *handlers.HealthHandler,
	evaluator *app.EvaluatorService,
	catalog *app.CatalogService,
) RouterConfig {
	return RouterConfig{
		Logger:        logger,
		AppConfig:     appCfg,
		HealthHandler: healthHandler,
		Evaluator:     evaluator,
		Catalog:       catalog,
		Precision:     -1,
		Timeout:       DefaultRequestTimeout,
	}
}

// SetupRouter installs the middleware chain and every route on engine.
//
// Middleware, outermost first: recovery, request and correlation IDs,
// tracing, metrics and trace header, request logging. /api/v1 adds the
// request deadline; the /-/ probes never time out.
//
// Unknown paths answer 404 and known paths with the wrong method 405, both
// with the JSON error envelope.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	engine.NoRoute(noRoute)
	engine.NoMethod(noMethod)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group("/api/v1")
	if cfg.Timeout > 0 {
		api.Use(middleware.SimpleTimeout(cfg.Timeout))
	}

	api.GET("/coordinates/:designation", handlers.ParseCoordinates)

	if cfg.Catalog != nil {
		handlers.NewUnitsHandler(cfg.Catalog).RegisterUnitRoutes(api)
	}

	if cfg.Evaluator != nil {
		handlers.NewEvaluateHandler(cfg.Evaluator, cfg.Precision).RegisterEvaluateRoutes(api)
		handlers.NewConstantsHandler(cfg.Evaluator, cfg.Precision).RegisterConstantRoutes(api)
	}
}
