package bankapi

import (
	"time"
)

// IdempotencyKeyHeader carries the caller-supplied idempotency key.
const IdempotencyKeyHeader = "Idempotency-Key"

// RequestOptions are per-call overrides forwarded untouched to the transport.
type RequestOptions struct {
	Headers map[string]string
	Timeout time.Duration
}

// RequestOption mutates RequestOptions.
type RequestOption func(*RequestOptions)

// NewRequestOptions applies opts in order.
func NewRequestOptions(opts ...RequestOption) *RequestOptions {
	options := &RequestOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	return options
}

// WithHeader sets an extra request header.
func WithHeader(key, value string) RequestOption {
	return func(o *RequestOptions) {
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}

		o.Headers[key] = value
	}
}

// WithIdempotencyKey sends the Idempotency-Key header. Deduplication is
// performed by the server only.
func WithIdempotencyKey(key string) RequestOption {
	return WithHeader(IdempotencyKeyHeader, key)
}

// WithTimeout bounds the call, overriding the client default.
func WithTimeout(timeout time.Duration) RequestOption {
	return func(o *RequestOptions) {
		o.Timeout = timeout
	}
}
