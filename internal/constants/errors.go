package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'bankapi configure' or set BANKAPI_API_KEY")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
)

// Validation errors.
var (
	ErrInvalidTimestamp   = errors.New("invalid timestamp, expected RFC 3339")
	ErrInvalidOutput      = errors.New("invalid output format")
	ErrInvalidRetries     = errors.New("retries must be a non-negative integer")
	ErrAccountIDRequired  = errors.New("--account-id flag is required")
	ErrNameRequired       = errors.New("--name flag is required")
	ErrAmountRequired     = errors.New("--amount must be non-zero")
	ErrDescriptorRequired = errors.New("--statement-descriptor flag is required")
	ErrGrantTypeRequired  = errors.New("--grant-type flag is required")
)
