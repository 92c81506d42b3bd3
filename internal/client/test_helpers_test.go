package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// capturedRequest is what a stub server saw for one call.
type capturedRequest struct {
	Method string
	Path   string
	Query  map[string]string
	Header http.Header
	Body   map[string]any
}

// stubServer records every request and answers through respond.
type stubServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
}

func newStubServer(t *testing.T, respond func(req capturedRequest) (int, any)) *stubServer {
	t.Helper()

	stub := &stubServer{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured := capturedRequest{
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  map[string]string{},
			Header: request.Header.Clone(),
		}

		for key := range request.URL.Query() {
			captured.Query[key] = request.URL.Query().Get(key)
		}

		raw, _ := io.ReadAll(request.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &captured.Body)
		}

		stub.mu.Lock()
		stub.requests = append(stub.requests, captured)
		stub.mu.Unlock()

		status, body := respond(captured)

		writer.Header().Set("Content-Type", "application/json")
		writer.Header().Set("X-Request-Id", "req_test")
		writer.WriteHeader(status)

		switch typed := body.(type) {
		case nil:
		case string:
			_, _ = writer.Write([]byte(typed))
		default:
			_ = json.NewEncoder(writer).Encode(typed)
		}
	}))
	t.Cleanup(stub.Close)

	return stub
}

func (s *stubServer) Requests() []capturedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]capturedRequest(nil), s.requests...)
}

func (s *stubServer) LastRequest(t *testing.T) capturedRequest {
	t.Helper()

	requests := s.Requests()
	require.NotEmpty(t, requests)

	return requests[len(requests)-1]
}

// NewTestClient creates a client pointed at baseURL with a test API key.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&bankapi.Config{BaseURL: baseURL, APIKey: "test-key"})
	require.NoError(t, err)

	return client
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	return keys
}
