package commands_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// subcommandNames lists the names of cmd's subcommands.
func subcommandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	return names
}

type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]any
}

// apiStub serves canned JSON and records every request.
type apiStub struct {
	mu       sync.Mutex
	requests []recordedRequest
	server   *httptest.Server
}

func newAPIStub(t *testing.T, respond func(r *http.Request) (int, any)) *apiStub {
	t.Helper()

	stub := &apiStub{}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		}

		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		}

		stub.mu.Lock()
		stub.requests = append(stub.requests, rec)
		stub.mu.Unlock()

		status, body := respond(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(stub.server.Close)

	return stub
}

func (s *apiStub) Requests() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]recordedRequest(nil), s.requests...)
}

// useStub points the global viper configuration at stub.
func useStub(t *testing.T, stub *apiStub, output string) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("api_key", "test-key")
	viper.Set("base_url", stub.server.URL)
	viper.Set("output", output)
}

// execute runs cmd with args and returns its stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func mustJSON(t *testing.T, out string, v any) {
	t.Helper()

	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}
