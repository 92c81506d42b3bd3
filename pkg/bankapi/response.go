package bankapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the raw result of an API call. The body is decoded into T only
// when Parse is called, so callers can inspect the status and headers first.
type Response[T any] struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewResponse wraps a raw HTTP result.
func NewResponse[T any](statusCode int, header http.Header, body []byte) *Response[T] {
	return &Response[T]{
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
	}
}

// Parse decodes the body into the declared shape.
func (r *Response[T]) Parse() (*T, error) {
	var out T

	err := json.Unmarshal(r.Body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %T response: %w", out, err)
	}

	return &out, nil
}

// RequestID returns the server-assigned request identifier, if any.
func (r *Response[T]) RequestID() string {
	if r.Header == nil {
		return ""
	}

	return r.Header.Get(RequestIDHeader)
}
