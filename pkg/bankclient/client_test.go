package bankclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := bankclient.New(nil)
		require.ErrorIs(t, err, bankapi.ErrConfigRequired)
	})

	t.Run("defaults to production", func(t *testing.T) {
		t.Parallel()

		client, err := bankclient.NewWithAPIKey("secret_key")
		require.NoError(t, err)
		assert.NotNil(t, client.Accounts())
	})

	t.Run("sandbox", func(t *testing.T) {
		t.Parallel()

		client, err := bankclient.NewSandbox("secret_key")
		require.NoError(t, err)
		assert.NotNil(t, client.Events())
	})

	t.Run("rejects unknown environment", func(t *testing.T) {
		t.Parallel()

		_, err := bankclient.New(&bankapi.Config{Environment: "staging"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validating config")
	})

	t.Run("rejects malformed base url", func(t *testing.T) {
		t.Parallel()

		_, err := bankclient.New(&bankapi.Config{BaseURL: "not a url"})
		require.Error(t, err)
	})

	t.Run("rejects negative retries", func(t *testing.T) {
		t.Parallel()

		_, err := bankclient.New(&bankapi.Config{RetryMax: -1})
		require.Error(t, err)
	})

	t.Run("does not modify config", func(t *testing.T) {
		t.Parallel()

		config := &bankapi.Config{Environment: bankapi.EnvironmentSandbox}
		_, err := bankclient.New(config)
		require.NoError(t, err)
		assert.Empty(t, config.BaseURL)
	})
}

func TestResolveBaseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		baseURL  string
		env      bankapi.Environment
		expected string
		wantErr  bool
	}{
		{name: "explicit base url wins", baseURL: "http://localhost:4010", env: bankapi.EnvironmentSandbox, expected: "http://localhost:4010"},
		{name: "empty is production", expected: "https://api.bankapi.io"},
		{name: "production", env: bankapi.EnvironmentProduction, expected: "https://api.bankapi.io"},
		{name: "sandbox", env: bankapi.EnvironmentSandbox, expected: "https://sandbox.bankapi.io"},
		{name: "unknown", env: "staging", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := bankclient.ResolveBaseURL(tt.baseURL, tt.env)
			if tt.wantErr {
				require.ErrorIs(t, err, bankapi.ErrUnknownEnvironment)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/accounts/account_1", request.URL.Path)
		assert.Equal(t, "Bearer secret_key", request.Header.Get("Authorization"))
		assert.Equal(t, "integration-test", request.Header.Get("User-Agent"))

		_, _ = writer.Write([]byte(`{"id":"account_1","name":"Operating","status":"open"}`))
	}))
	defer server.Close()

	client, err := bankclient.New(&bankapi.Config{
		BaseURL:   server.URL,
		APIKey:    "secret_key",
		UserAgent: "integration-test",
	})
	require.NoError(t, err)

	account, err := client.Accounts().Retrieve(context.Background(), "account_1")
	require.NoError(t, err)
	assert.Equal(t, "Operating", account.Name)
}
