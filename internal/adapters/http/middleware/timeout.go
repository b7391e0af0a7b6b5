package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
	"github.com/jsamuelsen/rastro/internal/platform/logging"
)

// SimpleTimeout bounds the request context by timeout. Services check the
// context between steps; a handler that returns past the deadline without
// writing gets a 504 envelope.
func SimpleTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		traceID := dto.GetTraceID(c)

		logging.FromContext(ctx).Warn("request deadline exceeded",
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.Duration("timeout", timeout),
			slog.String("trace_id", traceID),
		)

		resp := dto.NewErrorResponse(dto.ErrorCodeTimeout, "request timeout exceeded").WithTraceID(traceID)
		c.AbortWithStatusJSON(dto.HTTPStatusFromCode(dto.ErrorCodeTimeout), resp)
	}
}
