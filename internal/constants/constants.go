package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Hosted API base URLs.
const (
	// ProductionBaseURL serves live traffic.
	ProductionBaseURL = "https://api.bankapi.io"

	// SandboxBaseURL serves test traffic.
	SandboxBaseURL = "https://sandbox.bankapi.io"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 60 * time.Second

	// DefaultUserAgent identifies the client.
	DefaultUserAgent = "bankapi-go/1.0"
)

// Retry limits. Retries are off unless a positive maximum is configured.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 8 * time.Second
)

// Pagination limits.
const (
	// MaxPageLimit is the largest page the server returns.
	MaxPageLimit = 100

	// DefaultCLIPageLimit is the page size used by the CLI when none is given.
	DefaultCLIPageLimit = 25
)

// Display constants.
const (
	// NotAvailable is shown for empty optional values.
	NotAvailable = "N/A"

	// TimestampFormat is used in table output.
	TimestampFormat = "2006-01-02 15:04:05"
)
