package client

import (
	"github.com/fivetwenty-io/bankapi-go/internal/auth"
	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/internal/http"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// Client implements the bankapi.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string

	accounts     *service[bankapi.Account, *bankapi.AccountListParams, *bankapi.AccountCreateParams]
	transactions *service[bankapi.Transaction, *bankapi.TransactionListParams, *bankapi.NoParams]
	events       *service[bankapi.Event, *bankapi.EventListParams, *bankapi.NoParams]
	cardPayments *service[bankapi.CardPayment, *bankapi.CardPaymentListParams, *bankapi.NoParams]
	cards        *service[bankapi.Card, *bankapi.CardListParams, *bankapi.CardCreateParams]
	achTransfers *service[bankapi.ACHTransfer, *bankapi.ACHTransferListParams, *bankapi.ACHTransferCreateParams]
	oauthTokens  *service[bankapi.OAuthToken, *bankapi.NoParams, *bankapi.OAuthTokenCreateParams]
}

// New creates a client from a config whose BaseURL is already resolved.
// The API key, when set, is sent as a bearer token.
func New(config *bankapi.Config) (*Client, error) {
	if config == nil {
		return nil, bankapi.ErrConfigRequired
	}

	var tokenManager auth.TokenManager
	if config.APIKey != "" {
		tokenManager = auth.NewStaticTokenManager(config.APIKey)
	}

	return NewWithTokenManager(config, tokenManager)
}

// NewWithTokenManager creates a client that authenticates through tokenManager.
func NewWithTokenManager(config *bankapi.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config == nil {
		return nil, bankapi.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, bankapi.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.BaseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *bankapi.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients() {
	c.accounts = newService[bankapi.Account, *bankapi.AccountListParams, *bankapi.AccountCreateParams](c.httpClient, accountsEndpoint)
	c.transactions = newService[bankapi.Transaction, *bankapi.TransactionListParams, *bankapi.NoParams](c.httpClient, transactionsEndpoint)
	c.events = newService[bankapi.Event, *bankapi.EventListParams, *bankapi.NoParams](c.httpClient, eventsEndpoint)
	c.cardPayments = newService[bankapi.CardPayment, *bankapi.CardPaymentListParams, *bankapi.NoParams](c.httpClient, cardPaymentsEndpoint)
	c.cards = newService[bankapi.Card, *bankapi.CardListParams, *bankapi.CardCreateParams](c.httpClient, cardsEndpoint)
	c.achTransfers = newService[bankapi.ACHTransfer, *bankapi.ACHTransferListParams, *bankapi.ACHTransferCreateParams](c.httpClient, achTransfersEndpoint)
	c.oauthTokens = newService[bankapi.OAuthToken, *bankapi.NoParams, *bankapi.OAuthTokenCreateParams](c.httpClient, oauthTokensEndpoint)
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TokenManager returns the token manager for this client, or nil.
func (c *Client) TokenManager() auth.TokenManager {
	return c.tokenManager
}

// Accounts implements bankapi.Client.Accounts.
func (c *Client) Accounts() bankapi.AccountsClient {
	return c.accounts
}

// Transactions implements bankapi.Client.Transactions.
func (c *Client) Transactions() bankapi.TransactionsClient {
	return c.transactions
}

// Events implements bankapi.Client.Events.
func (c *Client) Events() bankapi.EventsClient {
	return c.events
}

// CardPayments implements bankapi.Client.CardPayments.
func (c *Client) CardPayments() bankapi.CardPaymentsClient {
	return c.cardPayments
}

// Cards implements bankapi.Client.Cards.
func (c *Client) Cards() bankapi.CardsClient {
	return c.cards
}

// ACHTransfers implements bankapi.Client.ACHTransfers.
func (c *Client) ACHTransfers() bankapi.ACHTransfersClient {
	return c.achTransfers
}

// OAuthTokens implements bankapi.Client.OAuthTokens.
func (c *Client) OAuthTokens() bankapi.OAuthTokensClient {
	return c.oauthTokens
}
