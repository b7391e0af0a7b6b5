package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rastro/internal/adapters/http"
	"github.com/jsamuelsen/rastro/internal/adapters/http/handlers"
	"github.com/jsamuelsen/rastro/internal/platform/telemetry"
	"github.com/jsamuelsen/rastro/internal/ports"
)

func serveCmd(s *state) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the unit, constant and conversion API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("port") {
				s.cfg.Server.Port = port
			}

			return s.serve(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (default server.port)")

	return cmd
}

func (s *state) serve(ctx context.Context) error {
	cfg, logger := s.cfg, s.logger

	logger.Info("starting service",
		slog.String("version", s.build.Version),
		slog.String("commit", s.build.Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// Telemetry is a noop when disabled
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      s.build.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Insecure:     cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	evaluator := s.evaluator()
	catalog := s.catalog()

	healthRegistry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{catalog, evaluator} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering health check: %w", err)
		}
	}

	buildInfo := handlers.NewBuildInfo(s.build.Version, s.build.Commit, s.build.BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)

	gin.SetMode(gin.ReleaseMode)

	server := http.New(&cfg.Server, logger)

	routerCfg := http.NewDefaultRouterConfig(logger, &cfg.App, healthHandler, evaluator, catalog)
	routerCfg.Precision = cfg.Units.Precision
	http.SetupRouter(server.Engine(), routerCfg)

	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a shutdown signal arrives, ctx is done or
// the server fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))

	case <-ctx.Done():
		logger.Info("context done, shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown",
		slog.Duration("timeout", shutdownTimeout),
	)

	// Stop accepting new requests, drain in-flight
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
