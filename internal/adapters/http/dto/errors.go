// Package dto holds the JSON shapes of the rastro API and the binding,
// validation and error-reporting helpers around them.
package dto

import "net/http"

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	TraceID string      `json:"traceId,omitempty"`
}

// ErrorDetail is the machine-readable Code, a Message for people and,
// for validation and incompatible-unit failures, per-field Details.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Error codes and their HTTP statuses. Codes missing from statusByCode,
// INTERNAL_ERROR included, answer 500.
const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeConflict         = "CONFLICT"
	ErrorCodeValidation       = "VALIDATION_ERROR"
	ErrorCodeBadRequest       = "BAD_REQUEST"
	ErrorCodeIncompatible     = "INCOMPATIBLE_UNITS"
	ErrorCodeTimeout          = "TIMEOUT"
	ErrorCodeTooLarge         = "PAYLOAD_TOO_LARGE"
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrorCodeInternal         = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	ErrorCodeNotFound:         http.StatusNotFound,
	ErrorCodeConflict:         http.StatusConflict,
	ErrorCodeValidation:       http.StatusBadRequest,
	ErrorCodeBadRequest:       http.StatusBadRequest,
	ErrorCodeIncompatible:     http.StatusUnprocessableEntity,
	ErrorCodeTimeout:          http.StatusGatewayTimeout,
	ErrorCodeTooLarge:         http.StatusRequestEntityTooLarge,
	ErrorCodeMethodNotAllowed: http.StatusMethodNotAllowed,
}

// HTTPStatusFromCode returns the status a code is served with.
func HTTPStatusFromCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

func NewErrorResponse(code, message string) *ErrorResponse {
	return NewErrorResponseWithDetails(code, message, nil)
}

func NewErrorResponseWithDetails(code, message string, details map[string]string) *ErrorResponse {
	return &ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Details: details}}
}

// WithTraceID sets the trace ID in place and returns e for chaining.
func (e *ErrorResponse) WithTraceID(traceID string) *ErrorResponse {
	e.TraceID = traceID
	return e
}
