// Package cli implements the rastro command line: the force and unit
// listing programs, conversions, constants, coordinates, configuration
// and the HTTP server.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen/rastro/internal/app"
	"github.com/jsamuelsen/rastro/internal/constants"
	"github.com/jsamuelsen/rastro/internal/platform/config"
	"github.com/jsamuelsen/rastro/internal/platform/logging"
	"github.com/jsamuelsen/rastro/internal/platform/metrics"
	"github.com/jsamuelsen/rastro/internal/units"
)

// ProfileEnv names the environment variable holding the config profile.
const ProfileEnv = "RASTRO_PROFILE"

// BuildInfo identifies the binary. Values are injected via ldflags.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// state is shared by every command. Flags fill the first block; load
// fills the rest before a command runs.
type state struct {
	build      BuildInfo
	profile    string
	configFile string
	logLevel   string

	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, build BuildInfo) int {
	cmd := NewRootCmd(build)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		return 1
	}

	return 0
}

// NewRootCmd builds the command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	s := &state{build: build}

	cmd := &cobra.Command{
		Use:           "rastro",
		Short:         "Unit-aware quantities, physical constants and unit systems",
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.load(cmd)
		},
	}

	profile := os.Getenv(ProfileEnv)
	if profile == "" {
		profile = "local"
	}

	cmd.PersistentFlags().StringVarP(&s.profile, "profile", "p", profile, "configuration profile (configs/<profile>.yaml)")
	cmd.PersistentFlags().StringVarP(&s.configFile, "config", "c", "", "user configuration file (default ~/.rastro/config.yaml)")
	cmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "override log.level: trace, debug, info, warn, error")

	cmd.AddCommand(
		forceCmd(s),
		unitsCmd(s),
		convertCmd(s),
		constantsCmd(s),
		coordCmd(s),
		configCmd(s),
		serveCmd(s),
	)

	return cmd
}

// load reads configuration and sets up logging and metrics.
func (s *state) load(cmd *cobra.Command) error {
	files := []string{s.configFile}
	if s.configFile == "" {
		if path, err := config.DefaultFilePath(); err == nil {
			files[0] = path
		}
	}

	cfg, err := config.Load(s.profile, files...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if s.logLevel != "" {
		cfg.Log.Level = s.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	s.cfg = cfg
	s.logger = logging.NewWithWriter(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: s.build.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}, cmd.ErrOrStderr())
	logging.SetDefault(s.logger)

	s.metrics, err = metrics.NewRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("registering metrics: %w", err)
	}

	s.logger.Debug("configuration loaded",
		slog.String("profile", s.profile),
		slog.String("command", cmd.CommandPath()),
	)

	return nil
}

func (s *state) evaluator() *app.EvaluatorService {
	return app.NewEvaluatorService(app.EvaluatorServiceConfig{
		Units:     units.Default(),
		Constants: constants.Default(),
		Metrics:   s.metrics,
		Logger:    s.logger,
	})
}

func (s *state) catalog() *app.CatalogService {
	return app.NewCatalogService(app.CatalogServiceConfig{
		Units:       units.Default(),
		Metrics:     s.metrics,
		Logger:      s.logger,
		Concurrency: s.cfg.Units.Concurrency,
	})
}

// precision returns the --precision flag when set, else the configured one.
func (s *state) precision(cmd *cobra.Command, flag int) int {
	if cmd.Flags().Changed("precision") {
		return flag
	}

	return s.cfg.Units.Precision
}

func (s *state) printer(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), s.cfg.Console)
}
