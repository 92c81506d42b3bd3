package bankapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

func TestMetrics_ResponseInterceptor(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics, err := bankapi.NewPrometheusMetrics("bankapi", reg)
	require.NoError(t, err)

	chain := bankapi.NewInterceptorChain()
	metrics.Attach(chain)

	ctx := context.Background()
	send := func(operation string, status int) {
		req := &bankapi.InterceptedRequest{Method: http.MethodGet, Operation: operation}
		require.NoError(t, chain.ExecuteRequestInterceptors(ctx, req))
		require.NoError(t, chain.ExecuteResponseInterceptors(ctx, req, &bankapi.InterceptedResponse{StatusCode: status}))
	}

	send("accounts.list", http.StatusOK)
	send("accounts.list", http.StatusOK)
	send("accounts.retrieve", http.StatusNotFound)
	send("events.list", 0)

	for name, expected := range map[string]int{
		"bankapi_api_requests_total":           2,
		"bankapi_api_connection_errors_total":  1,
		"bankapi_api_request_duration_seconds": 3,
	} {
		count, err := testutil.GatherAndCount(reg, name)
		require.NoError(t, err)
		assert.Equal(t, expected, count, name)
	}
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	_, err := bankapi.NewPrometheusMetrics("bankapi", reg)
	require.NoError(t, err)

	_, err = bankapi.NewPrometheusMetrics("bankapi", reg)
	require.Error(t, err)
}
