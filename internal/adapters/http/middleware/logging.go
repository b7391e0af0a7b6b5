package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/platform/logging"
)

// Logging logs one "request completed" line per API request, at warn for
// 4xx and error for 5xx. Probe paths under /-/ are not logged.
func Logging(logger *slog.Logger) gin.HandlerFunc {
	return LoggingWithSkipPaths(logger, nil)
}

// LoggingWithSkipPaths is Logging that also skips the exact paths given.
func LoggingWithSkipPaths(logger *slog.Logger, skipPaths []string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if p := c.Request.URL.Path; skip[p] || strings.HasPrefix(p, "/-/") {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := logging.FromContextOr(ctx, logger)
		target := c.Request.URL.RequestURI()

		log.Debug("request started",
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("client_ip", c.ClientIP()),
			slog.String("user_agent", c.Request.UserAgent()),
		)

		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", target),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.Int("bytes", c.Writer.Size()),
		}

		if system := c.Param("system"); system != "" {
			attrs = append(attrs, slog.String("unit_system", system))
		}

		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		log.LogAttrs(ctx, statusLevel(status), "request completed", attrs...)
	}
}

func statusLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
