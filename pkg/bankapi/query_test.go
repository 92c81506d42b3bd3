package bankapi_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

func TestParams_ToValues(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 4, 5, 6, 7, 0, time.FixedZone("EST", -5*60*60))

	params := bankapi.Params{
		"limit":      10,
		"amount":     int64(250),
		"archived":   false,
		"account_id": "account_1",
		"status":     map[string]any{"in": []string{"open", "closed"}},
		"created_at": bankapi.Params{"after": created},
		"skipped":    nil,
		"empty":      []string{},
	}

	values := params.ToValues()

	assert.Equal(t, "10", values.Get("limit"))
	assert.Equal(t, "250", values.Get("amount"))
	assert.Equal(t, "false", values.Get("archived"))
	assert.Equal(t, "account_1", values.Get("account_id"))
	assert.Equal(t, "open,closed", values.Get("status.in"))
	assert.Equal(t, "2024-03-04T10:06:07Z", values.Get("created_at.after"))
	assert.NotContains(t, values, "skipped")
	assert.NotContains(t, values, "empty")
	assert.Len(t, values, 6)
}

func TestParams_ToValuesKeepsFractionalSeconds(t *testing.T) {
	t.Parallel()

	after := time.Date(2024, 1, 2, 3, 4, 5, 500_000_000, time.UTC)
	values := bankapi.Params{"created_at": bankapi.Params{"after": after}}.ToValues()

	assert.Equal(t, "2024-01-02T03:04:05.5Z", values.Get("created_at.after"))

	encoded, err := json.Marshal(after)
	require.NoError(t, err)
	assert.Equal(t, `"`+values.Get("created_at.after")+`"`, string(encoded))
}

func TestParams_ToValuesEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, bankapi.NewParams().ToValues())

	var nilParams bankapi.Params
	assert.Empty(t, nilParams.ToValues())
}

func TestParams_ToValuesStringer(t *testing.T) {
	t.Parallel()

	values := bankapi.Params{"duration": 2 * time.Second, "funding": bankapi.ACHFundingChecking}.ToValues()
	assert.Equal(t, "2s", values.Get("duration"))
	assert.Equal(t, "checking", values.Get("funding"))
}

func TestParams_CloneAndWith(t *testing.T) {
	t.Parallel()

	original := bankapi.NewParams().With("account_id", "account_1")
	clone := original.Clone().With("cursor", "c1")

	assert.Equal(t, bankapi.Params{"account_id": "account_1"}, original)
	assert.Equal(t, bankapi.Params{"account_id": "account_1", "cursor": "c1"}, clone)
}
