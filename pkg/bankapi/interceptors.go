package bankapi

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// RequestIDHeader carries the server-assigned request identifier.
const RequestIDHeader = "X-Request-Id"

// InterceptedRequest is an outgoing call as seen by interceptors. Interceptors may
// change Headers and Body before the call is sent.
type InterceptedRequest struct {
	Method string
	Path   string
	// Operation names the call, e.g. "ach_transfers.create".
	Operation string
	Headers   http.Header
	Body      []byte
	// SentAt is stamped by StartTimeInterceptor.
	SentAt time.Time
}

// InterceptedResponse is the outcome of a call. StatusCode is zero when the server
// was never reached; Error then holds the *ConnectionError.
type InterceptedResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestID returns the server-assigned request identifier, if any.
func (r *InterceptedResponse) RequestID() string {
	if r == nil || r.Headers == nil {
		return ""
	}

	return r.Headers.Get(RequestIDHeader)
}

// RequestInterceptor runs before a call is sent. An error aborts the call.
type RequestInterceptor func(ctx context.Context, req *InterceptedRequest) error

// ResponseInterceptor runs once a call has finished, successfully or not.
type ResponseInterceptor func(ctx context.Context, req *InterceptedRequest, resp *InterceptedResponse) error

// InterceptorChain runs interceptors in the order they were added.
// A nil chain runs nothing.
type InterceptorChain struct {
	onRequest  []RequestInterceptor
	onResponse []ResponseInterceptor
}

// NewInterceptorChain returns an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends interceptor and returns the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) *InterceptorChain {
	c.onRequest = append(c.onRequest, interceptor)

	return c
}

// AddResponseInterceptor appends interceptor and returns the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) *InterceptorChain {
	c.onResponse = append(c.onResponse, interceptor)

	return c
}

// ExecuteRequestInterceptors stops at the first failing interceptor.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *InterceptedRequest) error {
	if c == nil {
		return nil
	}

	for i, interceptor := range c.onRequest {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("%s: request interceptor %d: %w", req.Operation, i, err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors stops at the first failing interceptor.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *InterceptedRequest, resp *InterceptedResponse) error {
	if c == nil {
		return nil
	}

	for i, interceptor := range c.onResponse {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("%s: response interceptor %d: %w", req.Operation, i, err)
		}
	}

	return nil
}

// LoggingInterceptor logs each outgoing call at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *InterceptedRequest) error {
		logger.Debug("bankapi request", map[string]interface{}{
			"operation":       req.Operation,
			"method":          req.Method,
			"path":            req.Path,
			"idempotency_key": req.Headers.Get(IdempotencyKeyHeader),
		})

		return nil
	}
}

// LoggingResponseInterceptor logs successes at debug level, API errors at
// warn level and calls that never reached the server at error level.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *InterceptedRequest, resp *InterceptedResponse) error {
		fields := map[string]interface{}{
			"operation":   req.Operation,
			"status_code": resp.StatusCode,
			"request_id":  resp.RequestID(),
		}

		switch {
		case resp.Error == nil:
			logger.Debug("bankapi response", fields)
		case resp.StatusCode == 0:
			fields["error"] = resp.Error.Error()
			logger.Error("bankapi request failed", fields)
		default:
			fields["error"] = resp.Error.Error()
			logger.Warn("bankapi request rejected", fields)
		}

		return nil
	}
}

// HeaderInterceptor adds headers the call has not already set.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *InterceptedRequest) error {
		if req.Headers == nil {
			req.Headers = make(http.Header, len(headers))
		}

		for key, value := range headers {
			if req.Headers.Get(key) == "" {
				req.Headers.Set(key, value)
			}
		}

		return nil
	}
}

// StartTimeInterceptor stamps Request.SentAt for RequestLatency.
func StartTimeInterceptor() RequestInterceptor {
	return func(_ context.Context, req *InterceptedRequest) error {
		req.SentAt = time.Now()

		return nil
	}
}

// RequestLatency reports the time elapsed since req was stamped.
func RequestLatency(req *InterceptedRequest) (time.Duration, bool) {
	if req == nil || req.SentAt.IsZero() {
		return 0, false
	}

	return time.Since(req.SentAt), true
}
