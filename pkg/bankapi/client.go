package bankapi

import (
	"context"
	"time"
)

// Retriever fetches one record by id and parses it.
type Retriever[T any] interface {
	Retrieve(ctx context.Context, id string, opts ...RequestOption) (*T, error)
}

// Lister lists records with typed, optional filters.
type Lister[T any, L Fielder] interface {
	List(ctx context.Context, params L, opts ...RequestOption) (*Page[T], error)
	ListPager(ctx context.Context, params L, opts ...RequestOption) (*Pager[T], error)
	ListAutoPaging(ctx context.Context, params L, opts ...RequestOption) *PaginationIterator[T]
}

// Creator creates a record from typed parameters.
type Creator[T any, C Fielder] interface {
	Create(ctx context.Context, params C, opts ...RequestOption) (*T, error)
}

// RawClient issues requests with already-normalized parameters and returns
// the undecoded response. Operations a resource does not support fail with
// ErrOperationNotSupported without sending a request.
type RawClient[T any] interface {
	Retrieve(ctx context.Context, id string, opts ...RequestOption) (*Response[T], error)
	List(ctx context.Context, params Params, opts ...RequestOption) (*Response[Page[T]], error)
	Create(ctx context.Context, params Params, opts ...RequestOption) (*Response[T], error)
}

// AccountsClient manages accounts.
type AccountsClient interface {
	Retriever[Account]
	Lister[Account, *AccountListParams]
	Creator[Account, *AccountCreateParams]
	WithRawResponse() RawClient[Account]
}

// TransactionsClient reads posted transactions.
type TransactionsClient interface {
	Retriever[Transaction]
	Lister[Transaction, *TransactionListParams]
	WithRawResponse() RawClient[Transaction]
}

// EventsClient reads events.
type EventsClient interface {
	Retriever[Event]
	Lister[Event, *EventListParams]
	WithRawResponse() RawClient[Event]
}

// CardPaymentsClient reads card payments.
type CardPaymentsClient interface {
	Retriever[CardPayment]
	Lister[CardPayment, *CardPaymentListParams]
	WithRawResponse() RawClient[CardPayment]
}

// CardsClient manages cards.
type CardsClient interface {
	Retriever[Card]
	Lister[Card, *CardListParams]
	Creator[Card, *CardCreateParams]
	WithRawResponse() RawClient[Card]
}

// ACHTransfersClient manages ACH transfers.
type ACHTransfersClient interface {
	Retriever[ACHTransfer]
	Lister[ACHTransfer, *ACHTransferListParams]
	Creator[ACHTransfer, *ACHTransferCreateParams]
	WithRawResponse() RawClient[ACHTransfer]
}

// OAuthTokensClient exchanges OAuth grants for access tokens.
type OAuthTokensClient interface {
	Creator[OAuthToken, *OAuthTokenCreateParams]
	WithRawResponse() RawClient[OAuthToken]
}

// Client provides access to every resource client.
type Client interface {
	Accounts() AccountsClient
	Transactions() TransactionsClient
	Events() EventsClient
	CardPayments() CardPaymentsClient
	Cards() CardsClient
	ACHTransfers() ACHTransfersClient
	OAuthTokens() OAuthTokensClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Environment selects a hosted API base URL.
type Environment string

const (
	EnvironmentProduction Environment = "production"
	EnvironmentSandbox    Environment = "sandbox"
)

// Config represents client configuration for building a bankapi.Client.
//
// # Base URL
//
// BaseURL wins when set. Otherwise Environment selects the hosted URL, and
// production is used when both are empty.
//
// # Timeouts and retries
//
// Per-call deadlines come from the context or WithTimeout. The client never
// retries on its own: RetryMax defaults to zero, and only a positive value
// enables retries of connection errors, 429 and 5xx responses.
type Config struct {
	// BaseURL overrides the environment URL (e.g. a local stub server).
	BaseURL string `validate:"omitempty,url"`
	// Environment is production or sandbox.
	Environment Environment `validate:"omitempty,oneof=production sandbox"`
	// APIKey is sent as a Bearer token. Requests are unauthenticated when empty.
	APIKey string

	// HTTPTimeout is the default per-request timeout. Zero uses the library default.
	HTTPTimeout time.Duration `validate:"gte=0"`
	// RetryMax enables transport retries when positive.
	RetryMax int `validate:"gte=0"`
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration `validate:"gte=0"`
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration `validate:"gte=0"`

	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives transport logs.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Interceptors run around every request.
	Interceptors *InterceptorChain
}
