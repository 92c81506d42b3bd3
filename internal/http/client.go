package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/bankapi-go/internal/auth"
	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
	"github.com/hashicorp/go-retryablehttp"
)

// Client performs authenticated JSON requests against the API.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	tokenManager auth.TokenManager
	logger       bankapi.Logger
	debug        bool
	userAgent    string
	timeout      time.Duration
	interceptors *bankapi.InterceptorChain
}

// Request describes one API call.
type Request struct {
	Method string
	Path   string
	// Operation labels the call for logs and metrics, e.g. "accounts.list".
	Operation string
	Query     url.Values
	Body      any
	Headers   map[string]string
	// Timeout overrides the client default when positive.
	Timeout time.Duration
}

// Response is the undecoded result of a call that reached the server.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger bankapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig enables retries of connection errors, 429 and 5xx
// responses. Retries are disabled unless this option sets maxRetries > 0.
func WithRetryConfig(maxRetries int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = maxRetries
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *bankapi.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for baseURL. A nil tokenManager sends
// unauthenticated requests.
func NewClient(baseURL string, tokenManager auth.TokenManager, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.Logger = nil
	// Hand the final response back untouched so its error body can be parsed.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   retryClient,
		tokenManager: tokenManager,
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRetry

	return client
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("Retrying request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}

// Do sends req. Non-2xx responses are returned together with a
// *bankapi.NotFoundError, *bankapi.ValidationError or *bankapi.APIError.
// Failures to reach the server yield a *bankapi.ConnectionError and a nil
// response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}

	if timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	fullURL := c.buildURL(req.Path, req.Query)

	var bodyBytes []byte

	if req.Body != nil {
		var err error

		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	intercepted := &bankapi.InterceptedRequest{
		Method:    req.Method,
		Path:      req.Path,
		Operation: req.Operation,
		Headers:   make(http.Header),
		Body:      bodyBytes,
	}

	err := c.setHeaders(ctx, intercepted.Headers, bodyBytes != nil, req.Headers)
	if err != nil {
		return nil, err
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, fmt.Errorf("intercepting request: %w", err)
		}
	}

	var bodyReader io.Reader
	if intercepted.Body != nil {
		bodyReader = bytes.NewReader(intercepted.Body)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = intercepted.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method":    req.Method,
			"url":       fullURL,
			"operation": req.Operation,
		})
	}

	start := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		connErr := &bankapi.ConnectionError{Method: req.Method, URL: fullURL, Err: err}
		c.intercept(ctx, intercepted, &bankapi.InterceptedResponse{Error: connErr})

		return nil, connErr
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		connErr := &bankapi.ConnectionError{Method: req.Method, URL: fullURL, Err: err}
		c.intercept(ctx, intercepted, &bankapi.InterceptedResponse{Error: connErr})

		return nil, connErr
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status_code": httpResp.StatusCode,
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  httpResp.Header.Get(bankapi.RequestIDHeader),
		})
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	var apiErr error
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		apiErr = bankapi.ParseErrorResponse(httpResp.StatusCode, respBody)
	}

	c.intercept(ctx, intercepted, &bankapi.InterceptedResponse{
		StatusCode: response.StatusCode,
		Headers:    response.Headers,
		Body:       response.Body,
		Error:      apiErr,
	})

	return response, apiErr
}

// intercept runs the response interceptors. Their failures are logged and
// never replace the outcome of the call itself.
func (c *Client) intercept(ctx context.Context, req *bankapi.InterceptedRequest, resp *bankapi.InterceptedResponse) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"operation": req.Operation,
			"error":     err.Error(),
		})
	}
}

func (c *Client) setHeaders(ctx context.Context, headers http.Header, hasBody bool, extra map[string]string) error {
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)

	if hasBody {
		headers.Set("Content-Type", "application/json")
	}

	if c.tokenManager != nil {
		token, err := c.tokenManager.GetToken(ctx)
		if err != nil {
			return fmt.Errorf("getting auth token: %w", err)
		}

		if token != "" {
			headers.Set("Authorization", "Bearer "+token)
		}
	}

	for key, value := range extra {
		headers.Set(key, value)
	}

	return nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	full := c.baseURL + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	return full
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}
