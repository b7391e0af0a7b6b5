// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults that other packages refer to.
const (
	DefaultServerPort     = 8080
	DefaultMaxRequestSize = 1 << 20

	DefaultLogFileMaxSizeMB  = 100
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28

	// DefaultPrecision prints the shortest representation that round-trips.
	DefaultPrecision = -1

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "RASTRO_"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Console   ConsoleConfig   `koanf:"console"`
	Units     UnitsConfig     `koanf:"units"     validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
	Insecure     bool    `koanf:"insecure"`
}

// ConsoleConfig controls how commands print to the terminal. Negative
// MaxLines and MaxWidth mean no limit.
type ConsoleConfig struct {
	UnicodeOutput bool `koanf:"unicode_output"`
	UseColor      bool `koanf:"use_color"`
	MaxLines      int  `koanf:"max_lines"      validate:"min=-1"`
	MaxWidth      int  `koanf:"max_width"      validate:"min=-1"`
}

// UnitsConfig contains unit catalog settings.
type UnitsConfig struct {
	// DefaultSystems are listed when no system is named.
	DefaultSystems []string `koanf:"default_systems" validate:"required,min=1,dive,oneof=si cgs astrophys imperial info"`
	// Precision is the number of significant digits printed, -1 for shortest.
	Precision int `koanf:"precision" validate:"min=-1,max=17"`
	// Concurrency bounds how many systems are listed at once, 0 for no bound.
	Concurrency int `koanf:"concurrency" validate:"min=0"`
	// ListingMode is replicate or corrected.
	ListingMode string `koanf:"listing_mode" validate:"required,oneof=replicate corrected"`
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "rastro",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/rastro.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "rastro",
		"telemetry.sampling_rate": 1.0,
		"telemetry.insecure":      true,

		"console.unicode_output": false,
		"console.use_color":      true,
		"console.max_lines":      -1,
		"console.max_width":      -1,

		"units.default_systems": []string{"si", "cgs"},
		"units.precision":       DefaultPrecision,
		"units.concurrency":     0,
		"units.listing_mode":    "replicate",
	}
}

// Load builds the configuration from, lowest precedence first: the
// built-in defaults, configs/base.yaml, configs/{profile}.yaml, each of
// files in order, then RASTRO_* environment variables. Missing files are
// skipped; a file that exists but does not parse is an error.
func Load(profile string, files ...string) (*Config, error) {
	k, err := load(profile, files...)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

func load(profile string, files ...string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	paths := []string{"configs/base.yaml"}
	if profile != "" {
		paths = append(paths, "configs/"+profile+".yaml")
	}

	for _, path := range append(paths, files...) {
		if path == "" {
			continue
		}

		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	return k, nil
}

// envKey maps RASTRO_CONSOLE_MAX_LINES to console.max_lines and
// RASTRO_LOG_FILE_MAX_SIZE to log.file.max_size.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}

	if section == "log" && strings.HasPrefix(rest, "file_") {
		return "log.file." + strings.TrimPrefix(rest, "file_")
	}

	return section + "." + rest
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}

// DefaultFilePath returns ~/.rastro/config.yaml.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".rastro", "config.yaml"), nil
}

// Render returns the effective configuration for profile as YAML.
func Render(profile string, files ...string) ([]byte, error) {
	k, err := load(profile, files...)
	if err != nil {
		return nil, err
	}

	out, err := k.Marshal(yaml.Parser())
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}

	return out, nil
}

// WriteFile writes the effective configuration for profile to path,
// creating parent directories. An existing file is only replaced when
// overwrite is set.
func WriteFile(path, profile string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %q already exists", path)
		}
	}

	out, err := Render(profile)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
