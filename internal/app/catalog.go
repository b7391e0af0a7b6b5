package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/rastro/internal/domain"
	"github.com/jsamuelsen/rastro/internal/platform/metrics"
	"github.com/jsamuelsen/rastro/internal/ports"
	"github.com/jsamuelsen/rastro/internal/units"
)

// SystemSummary describes one unit system.
type SystemSummary struct {
	Name        string `json:"name"`
	PublicUnits int    `json:"public_units"`
}

// UnitDetails describes a resolved unit expression.
type UnitDetails struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name,omitempty"`
	Scale     float64 `json:"scale"`
	Dimension string  `json:"dimension"`
	SI        string  `json:"si"`
}

// CatalogService enumerates unit systems.
type CatalogService struct {
	units       ports.UnitCatalog
	metrics     *metrics.Recorder
	logger      *slog.Logger
	concurrency int
}

// CatalogServiceConfig contains the dependencies of the catalog service.
type CatalogServiceConfig struct {
	Units   ports.UnitCatalog
	Metrics *metrics.Recorder
	Logger  *slog.Logger
	// Concurrency bounds how many systems are listed at once; zero or
	// negative means unbounded.
	Concurrency int
}

// NewCatalogService creates a catalog service. It panics when the unit
// catalog is missing.
func NewCatalogService(cfg CatalogServiceConfig) *CatalogService {
	if cfg.Units == nil {
		panic("app: catalog service requires a unit catalog")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = -1
	}

	return &CatalogService{
		units:       cfg.Units,
		metrics:     cfg.Metrics,
		logger:      logger.With(slog.String("component", "app.CatalogService")),
		concurrency: concurrency,
	}
}

// PublicNames returns the sorted public names of system.
func (s *CatalogService) PublicNames(ctx context.Context, system string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	names, err := s.units.PublicNames(system)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", system, err)
	}

	s.metrics.ObserveListing(system)
	s.logger.DebugContext(ctx, "listed unit system",
		slog.String("system", system),
		slog.Int("count", len(names)),
	)

	return names, nil
}

// ListSystems lists several systems concurrently. Results follow the order
// of systems; the first failure aborts the rest.
func (s *CatalogService) ListSystems(ctx context.Context, systems ...string) ([][]string, error) {
	return mapLimit(ctx, s.concurrency, systems, s.PublicNames)
}

// Systems summarises every system. A system that fails to list is logged
// and skipped.
func (s *CatalogService) Systems(ctx context.Context) []SystemSummary {
	names := s.units.Systems()

	lists, errs := mapSettled(ctx, s.concurrency, names, s.PublicNames)

	out := make([]SystemSummary, 0, len(names))

	for i, name := range names {
		if errs[i] != nil {
			s.logger.WarnContext(ctx, "skipping unit system",
				slog.String("system", name),
				slog.Any("error", errs[i]),
			)

			continue
		}

		out = append(out, SystemSummary{Name: name, PublicUnits: len(lists[i])})
	}

	return out
}

// Describe resolves a unit expression and reports its scale and dimension.
func (s *CatalogService) Describe(_ context.Context, expr string) (UnitDetails, error) {
	u, err := s.units.Parse(expr)
	if err != nil {
		return UnitDetails{}, err
	}

	return UnitDetails{
		Symbol:    u.String(),
		Name:      u.Name(),
		Scale:     u.Scale(),
		Dimension: u.Dimension().String(),
		SI:        units.Q(1, u).SI().Unit.String(),
	}, nil
}

// Name implements ports.HealthChecker.
func (s *CatalogService) Name() string { return "unit-catalog" }

// Check implements ports.HealthChecker. The catalog is healthy when the SI
// and CGS systems are present and non-empty.
func (s *CatalogService) Check(ctx context.Context) error {
	for _, system := range []string{units.SystemSI, units.SystemCGS} {
		names, err := s.units.PublicNames(system)
		if err != nil {
			return err
		}

		if len(names) == 0 {
			return domain.NewNotFoundError("units in system", system)
		}
	}

	return ctx.Err()
}
