package bankapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error categories reported in the error envelope.
const (
	ErrorTypeNotFound          = "not_found_error"
	ErrorTypeInvalidParameters = "invalid_parameters_error"
	ErrorTypeMalformedRequest  = "malformed_request_error"
	ErrorTypeInvalidAPIKey     = "invalid_api_key_error"
	ErrorTypeInsufficientPerms = "insufficient_permissions_error"
	ErrorTypeRateLimited       = "rate_limited_error"
	ErrorTypeIdempotencyKey    = "idempotency_key_already_used_error"
	ErrorTypeInternalServer    = "internal_server_error"
)

// Static errors.
var (
	ErrEndOfResults          = errors.New("end of results")
	ErrOperationNotSupported = errors.New("operation not supported by resource")
	ErrConfigRequired        = errors.New("config is required")
	ErrBaseURLRequired       = errors.New("base URL is required")
	ErrUnknownEnvironment    = errors.New("unknown environment")
	ErrIDRequired            = errors.New("resource id is required")
)

// InvalidParameter describes one rejected field of a request.
type InvalidParameter struct {
	Field   string `json:"field"   yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// APIError is returned when the server responds with a non-2xx status.
type APIError struct {
	StatusCode int                `json:"-"                  yaml:"-"`
	Type       string             `json:"type"               yaml:"type"`
	Title      string             `json:"title"              yaml:"title"`
	Detail     string             `json:"detail,omitempty"   yaml:"detail,omitempty"`
	Errors     []InvalidParameter `json:"errors,omitempty"   yaml:"errors,omitempty"`
	RawBody    []byte             `json:"-"                  yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Title
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}

	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	if e.Type != "" {
		return fmt.Sprintf("%s (type: %s, status: %d)", msg, e.Type, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", msg, e.StatusCode)
}

// NotFoundError is returned when the server reports the resource absent.
type NotFoundError struct {
	*APIError
}

// Unwrap exposes the underlying APIError.
func (e *NotFoundError) Unwrap() error {
	return e.APIError
}

// ValidationError is returned when the server rejects the payload shape.
type ValidationError struct {
	*APIError
}

// Unwrap exposes the underlying APIError.
func (e *ValidationError) Unwrap() error {
	return e.APIError
}

// ConnectionError is returned when the request never reached the server.
type ConnectionError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap exposes the transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// errorEnvelope accepts both the long and the short error body shapes.
type errorEnvelope struct {
	Type    string             `json:"type"`
	Error   string             `json:"error"`
	Title   string             `json:"title"`
	Message string             `json:"message"`
	Detail  string             `json:"detail"`
	Errors  []InvalidParameter `json:"errors"`
}

// ParseErrorResponse builds the error for a non-2xx response. The returned
// value is a *NotFoundError, *ValidationError or *APIError.
func ParseErrorResponse(statusCode int, body []byte) error {
	apiErr := &APIError{StatusCode: statusCode, RawBody: body}

	var envelope errorEnvelope
	if len(body) > 0 && json.Unmarshal(body, &envelope) == nil {
		apiErr.Type = firstNonEmpty(envelope.Type, envelope.Error)
		apiErr.Title = firstNonEmpty(envelope.Title, envelope.Message)
		apiErr.Detail = envelope.Detail
		apiErr.Errors = envelope.Errors
	}

	switch {
	case statusCode == http.StatusNotFound:
		return &NotFoundError{APIError: apiErr}
	case statusCode == http.StatusUnprocessableEntity,
		apiErr.Type == ErrorTypeInvalidParameters:
		return &ValidationError{APIError: apiErr}
	default:
		return apiErr
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	notFound := &NotFoundError{}

	return errors.As(err, &notFound)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	validation := &ValidationError{}

	return errors.As(err, &validation)
}

// IsConnection checks if the error is a transport-level failure.
func IsConnection(err error) bool {
	connErr := &ConnectionError{}

	return errors.As(err, &connErr)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}
