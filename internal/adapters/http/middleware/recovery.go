package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/rastro/internal/adapters/http/dto"
	"github.com/jsamuelsen/rastro/internal/platform/logging"
)

// Recovery turns a panic in a later handler into a logged 500 with the
// standard error envelope. gin's own recovery runs underneath, so a client
// that hung up mid-response is not logged as a panic. Install it first.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		traceID := dto.GetTraceID(c)

		logging.FromContextOr(c.Request.Context(), logger).Error("panic recovered",
			slog.Any("error", recovered),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("trace_id", traceID),
			slog.String("stack", string(debug.Stack())),
		)

		if c.Writer.Written() {
			c.Abort()
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred").WithTraceID(traceID))
	})
}
