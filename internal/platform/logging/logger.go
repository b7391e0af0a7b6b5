// Package logging provides structured logging using Go's slog package.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace is more verbose than debug. The pretty handler prints it as debug.
const LevelTrace = slog.Level(-8)

// Config holds logging configuration.
type Config struct {
	Level   string // trace, debug, info, warn, error
	Format  string // json, text, pretty
	Service string // service name for default attrs
	Version string // service version for default attrs
	File    FileConfig
}

// FileConfig configures an additional rolling JSON log file.
type FileConfig struct {
	Enabled    bool
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New creates a new configured slog.Logger writing to stderr, so command
// output on stdout stays clean.
func New(cfg *Config) *slog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a new configured slog.Logger with a custom writer.
// Includes secret redaction by default. When cfg.File is enabled, records are
// also written as JSON to a rotating file.
func NewWithWriter(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	handler := terminalHandler(cfg.Format, level, w)

	if cfg.File.Enabled && cfg.File.Path != "" {
		handler = Fanout(handler, fileHandler(&cfg.File, level))
	}

	return slog.New(handler).With(
		slog.String("service_name", cfg.Service),
		slog.String("service_version", cfg.Version),
	)
}

func terminalHandler(format string, level slog.Level, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	}

	switch strings.ToLower(format) {
	case "text":
		return slog.NewTextHandler(w, opts)
	case "pretty":
		pretty := log.NewWithOptions(w, log.Options{
			Level:           slogToCharmLevel(level),
			ReportTimestamp: true,
			TimeFormat:      time.Kitchen,
		})

		return redacting{Handler: pretty, replace: opts.ReplaceAttr}
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

func fileHandler(cfg *FileConfig, level slog.Level) slog.Handler {
	rotator := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	return slog.NewJSONHandler(rotator, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: NewReplaceAttr(),
	})
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func slogToCharmLevel(level slog.Level) log.Level {
	switch {
	case level < slog.LevelInfo:
		return log.DebugLevel
	case level < slog.LevelWarn:
		return log.InfoLevel
	case level < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
