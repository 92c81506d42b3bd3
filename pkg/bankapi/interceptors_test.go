package bankapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

var errRejected = errors.New("rejected")

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	t.Parallel()

	chain := bankapi.NewInterceptorChain()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *bankapi.InterceptedRequest) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *bankapi.InterceptedRequest) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &bankapi.InterceptedRequest{Method: http.MethodGet, Path: "/accounts"})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_StopsOnError(t *testing.T) {
	t.Parallel()

	chain := bankapi.NewInterceptorChain()
	called := false

	chain.AddRequestInterceptor(func(ctx context.Context, req *bankapi.InterceptedRequest) error {
		return errRejected
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *bankapi.InterceptedRequest) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &bankapi.InterceptedRequest{})
	require.ErrorIs(t, err, errRejected)
	assert.False(t, called)

	chain.AddResponseInterceptor(func(ctx context.Context, req *bankapi.InterceptedRequest, resp *bankapi.InterceptedResponse) error {
		return errRejected
	})

	err = chain.ExecuteResponseInterceptors(context.Background(), &bankapi.InterceptedRequest{}, &bankapi.InterceptedResponse{})
	require.ErrorIs(t, err, errRejected)
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	intercept := bankapi.HeaderInterceptor(map[string]string{"X-Team": "payments", "Idempotency-Key": "from-chain"})

	req := &bankapi.InterceptedRequest{}
	require.NoError(t, intercept(context.Background(), req))
	assert.Equal(t, "payments", req.Headers.Get("X-Team"))

	// Headers set by the call itself win.
	req = &bankapi.InterceptedRequest{Headers: http.Header{"Idempotency-Key": []string{"from-call"}}}
	require.NoError(t, intercept(context.Background(), req))
	assert.Equal(t, "from-call", req.Headers.Get(bankapi.IdempotencyKeyHeader))
	assert.Equal(t, "payments", req.Headers.Get("X-Team"))
}

func TestStartTimeInterceptor(t *testing.T) {
	t.Parallel()

	req := &bankapi.InterceptedRequest{}

	_, ok := bankapi.RequestLatency(req)
	assert.False(t, ok)

	_, ok = bankapi.RequestLatency(nil)
	assert.False(t, ok)

	require.NoError(t, bankapi.StartTimeInterceptor()(context.Background(), req))
	time.Sleep(time.Millisecond)

	latency, ok := bankapi.RequestLatency(req)
	assert.True(t, ok)
	assert.Positive(t, latency)
}

func TestNilChainRunsNothing(t *testing.T) {
	t.Parallel()

	var chain *bankapi.InterceptorChain

	require.NoError(t, chain.ExecuteRequestInterceptors(context.Background(), &bankapi.InterceptedRequest{}))
	require.NoError(t, chain.ExecuteResponseInterceptors(context.Background(), &bankapi.InterceptedRequest{}, &bankapi.InterceptedResponse{}))
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := bankapi.NewZapLogger(zap.New(core))
	ctx := context.Background()

	req := &bankapi.InterceptedRequest{
		Method:    http.MethodPost,
		Path:      "/cards",
		Operation: "cards.create",
		Headers:   http.Header{"Idempotency-Key": []string{"key-1"}},
	}

	require.NoError(t, bankapi.LoggingInterceptor(logger)(ctx, req))
	require.NoError(t, bankapi.LoggingResponseInterceptor(logger)(ctx, req, &bankapi.InterceptedResponse{
		StatusCode: http.StatusOK,
		Headers:    http.Header{"X-Request-Id": []string{"req_1"}},
	}))
	require.NoError(t, bankapi.LoggingResponseInterceptor(logger)(ctx, req, &bankapi.InterceptedResponse{
		StatusCode: http.StatusNotFound,
		Error:      errRejected,
	}))
	require.NoError(t, bankapi.LoggingResponseInterceptor(logger)(ctx, req, &bankapi.InterceptedResponse{
		Error: errRejected,
	}))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, "bankapi request", entries[0].Message)
	assert.Equal(t, "cards.create", entries[0].ContextMap()["operation"])
	assert.Equal(t, "key-1", entries[0].ContextMap()["idempotency_key"])

	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "req_1", entries[1].ContextMap()["request_id"])

	assert.Equal(t, "bankapi request rejected", entries[2].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "rejected", entries[2].ContextMap()["error"])

	assert.Equal(t, "bankapi request failed", entries[3].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}
