// Package middleware provides the gin middleware chain of the rastro API.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/rastro/internal/platform/logging"
)

const (
	// HeaderRequestID carries the per-request ID.
	HeaderRequestID = "X-Request-ID"
	// HeaderCorrelationID carries the ID shared by related requests.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyRequestID is the gin context key of the request ID.
	ContextKeyRequestID = "request_id"
	// ContextKeyCorrelationID is the gin context key of the correlation ID.
	ContextKeyCorrelationID = "correlation_id"

	maxIDLength = 128
)

// RequestID tags the request with the X-Request-ID header, or a new UUID
// when the header is missing or unusable. The ID is echoed in the
// response, stored in the gin context and added to the context logger.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := headerID(c, HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(logging.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

// CorrelationID propagates X-Correlation-ID. A request without one starts
// a new correlation named after its request ID, or a new UUID when
// RequestID has not run.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := headerID(c, HeaderCorrelationID)
		if id == "" {
			id = GetRequestID(c)
		}

		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextKeyCorrelationID, id)
		c.Header(HeaderCorrelationID, id)
		c.Request = c.Request.WithContext(logging.WithCorrelationID(c.Request.Context(), id))

		c.Next()
	}
}

// GetRequestID returns the request ID, or "" outside RequestID.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// GetCorrelationID returns the correlation ID, or "" outside CorrelationID.
func GetCorrelationID(c *gin.Context) string {
	return c.GetString(ContextKeyCorrelationID)
}

// headerID returns the trimmed header value if it is short printable
// ASCII, otherwise "". IDs end up in logs and response headers.
func headerID(c *gin.Context, header string) string {
	id := strings.TrimSpace(c.GetHeader(header))
	if len(id) > maxIDLength {
		return ""
	}

	if strings.ContainsFunc(id, func(r rune) bool { return r <= ' ' || r > '~' }) {
		return ""
	}

	return id
}
