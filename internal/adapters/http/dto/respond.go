package dto

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/rastro/internal/domain"
	"github.com/jsamuelsen/rastro/internal/platform/logging"
	"github.com/jsamuelsen/rastro/internal/platform/telemetry"
)

// headerRequestID is consulted when the request carries no trace.
const headerRequestID = "X-Request-ID"

// GetTraceID returns the identifier used to correlate an error response
// with logs: the trace ID stored by the telemetry middleware, the trace ID
// of the span on the request context, or the X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(telemetry.TraceIDKey); ok {
		s, _ := v.(string)
		return s
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return c.GetHeader(headerRequestID)
}

// MapDomainError maps a domain error to an HTTP status code and error response.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewErrorResponse(ErrorCodeConflict, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsIncompatible(err):
		resp := NewErrorResponse(ErrorCodeIncompatible, err.Error())

		var incompatibleErr *domain.IncompatibleUnitsError
		if errors.As(err, &incompatibleErr) && (incompatibleErr.FromDim != "" || incompatibleErr.ToDim != "") {
			resp.Error.Details = map[string]string{
				"from": incompatibleErr.FromDim,
				"to":   incompatibleErr.ToDim,
			}
		}

		return http.StatusUnprocessableEntity, resp

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, "request timeout exceeded")

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, "an internal error occurred")
	}
}

// HandleError writes the error response for err. Internal errors are
// logged with their cause; the client only sees a generic message.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.WithTraceID(GetTraceID(c))

	if status == http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error("internal error",
			"error", err.Error(),
			"trace_id", resp.TraceID,
		)
	}

	c.JSON(status, resp)
}

// HandleBindError writes the response for a failed BindAndValidate or
// BindQueryAndValidate: field details for validation failures, a bare
// 400 for unparseable input.
func HandleBindError(c *gin.Context, err error) {
	if IsValidationError(err) {
		c.JSON(http.StatusBadRequest, NewErrorResponseWithDetails(
			ErrorCodeValidation,
			"request validation failed",
			ValidationErrors(err),
		).WithTraceID(GetTraceID(c)))

		return
	}

	RespondWithCode(c, ErrorCodeBadRequest, "malformed request body or query")
}

// RespondWithCode writes an error response for an adapter-level error code.
func RespondWithCode(c *gin.Context, code, message string) {
	c.JSON(HTTPStatusFromCode(code), NewErrorResponse(code, message).WithTraceID(GetTraceID(c)))
}
