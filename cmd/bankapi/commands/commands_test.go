package commands_test

import (
	"net/http"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/bankapi-go/cmd/bankapi/commands"
	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

func TestResourceCommandTree(t *testing.T) {
	t.Parallel()

	tests := []struct {
		use         string
		newCmd      func() *cobra.Command
		subcommands []string
	}{
		{"accounts", commands.NewAccountsCommand, []string{"create", "get", "list"}},
		{"transactions", commands.NewTransactionsCommand, []string{"get", "list"}},
		{"events", commands.NewEventsCommand, []string{"get", "list"}},
		{"card-payments", commands.NewCardPaymentsCommand, []string{"get", "list"}},
		{"cards", commands.NewCardsCommand, []string{"create", "get", "list"}},
		{"ach-transfers", commands.NewACHTransfersCommand, []string{"create", "get", "list"}},
		{"oauth-tokens", commands.NewOAuthTokensCommand, []string{"create"}},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			t.Parallel()

			cmd := tt.newCmd()
			assert.Equal(t, tt.use, cmd.Use)
			assert.NotEmpty(t, cmd.Short)
			assert.ElementsMatch(t, tt.subcommands, subcommandNames(cmd))

			list := findSubcommand(cmd, "list")
			if list == nil {
				return
			}

			for _, flag := range []string{"limit", "cursor", "all", "created-after", "created-before"} {
				assert.NotNil(t, list.Flags().Lookup(flag), flag)
			}

			assert.Equal(t, "25", list.Flags().Lookup("limit").DefValue)
		})
	}
}

func TestConfigCommandTree(t *testing.T) {
	t.Parallel()

	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.ElementsMatch(t, []string{"show", "set", "unset"}, subcommandNames(cmd))

	configure := commands.NewConfigureCommand()
	assert.NotNil(t, configure.Flags().Lookup("key"))
	assert.NotNil(t, configure.Flags().Lookup("env"))
}

//nolint:paralleltest // mutates global viper state
func TestVersionCommandJSON(t *testing.T) {
	stub := newAPIStub(t, func(*http.Request) (int, any) { return http.StatusOK, nil })
	useStub(t, stub, "json")

	out, err := execute(t, commands.NewVersionCommand("1.2.3", "abc", "today"))
	require.NoError(t, err)

	var info commands.VersionInfo
	mustJSON(t, out, &info)
	assert.Equal(t, commands.VersionInfo{Version: "1.2.3", Commit: "abc", Built: "today"}, info)
	assert.Empty(t, stub.Requests())
}

//nolint:paralleltest // mutates global viper state
func TestAccountsListSendsFilters(t *testing.T) {
	stub := newAPIStub(t, func(*http.Request) (int, any) {
		return http.StatusOK, map[string]any{
			"data": []map[string]any{
				{"id": "account_1", "name": "Ops", "status": "open"},
				{"id": "account_2", "name": "Payroll", "status": "open"},
			},
			"next_cursor": "c1",
		}
	})
	useStub(t, stub, "json")

	out, err := execute(t, commands.NewAccountsCommand(),
		"list", "--limit", "2", "--status", "open", "--created-after", "2024-01-01T00:00:00Z")
	require.NoError(t, err)

	var result struct {
		Data       []bankapi.Account `json:"data"`
		NextCursor *string           `json:"next_cursor"`
	}
	mustJSON(t, out, &result)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "account_2", result.Data[1].ID)
	require.NotNil(t, result.NextCursor)
	assert.Equal(t, "c1", *result.NextCursor)

	requests := stub.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/accounts", requests[0].Path)
	assert.Equal(t, "2", requests[0].Query.Get("limit"))
	assert.Equal(t, "open", requests[0].Query.Get("status.in"))
	assert.Equal(t, "2024-01-01T00:00:00Z", requests[0].Query.Get("created_at.after"))
	assert.Equal(t, "Bearer test-key", requests[0].Header.Get("Authorization"))
}

//nolint:paralleltest // mutates global viper state
func TestTransactionsListAllFollowsCursors(t *testing.T) {
	stub := newAPIStub(t, func(r *http.Request) (int, any) {
		if r.URL.Query().Get("cursor") == "" {
			return http.StatusOK, map[string]any{
				"data":        []map[string]any{{"id": "transaction_1", "amount": 100}},
				"next_cursor": "c1",
			}
		}

		return http.StatusOK, map[string]any{
			"data":        []map[string]any{{"id": "transaction_2", "amount": -50}},
			"next_cursor": nil,
		}
	})
	useStub(t, stub, "json")

	out, err := execute(t, commands.NewTransactionsCommand(), "list", "--all", "--account-id", "account_1")
	require.NoError(t, err)

	var result struct {
		Data []bankapi.Transaction `json:"data"`
	}
	mustJSON(t, out, &result)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "transaction_2", result.Data[1].ID)

	requests := stub.Requests()
	require.Len(t, requests, 2)

	for _, req := range requests {
		assert.Equal(t, "account_1", req.Query.Get("account_id"))
	}

	assert.Equal(t, "c1", requests[1].Query.Get("cursor"))
}

//nolint:paralleltest // mutates global viper state
func TestCardsListTableOutput(t *testing.T) {
	stub := newAPIStub(t, func(*http.Request) (int, any) {
		return http.StatusOK, map[string]any{
			"data": []map[string]any{
				{"id": "card_1", "account_id": "account_1", "last4": "4242", "status": "active", "expiration_month": 7, "expiration_year": 2029},
			},
			"next_cursor": "c9",
		}
	})
	useStub(t, stub, "table")

	out, err := execute(t, commands.NewCardsCommand(), "list")
	require.NoError(t, err)

	assert.Contains(t, out, "card_1")
	assert.Contains(t, out, "4242")
	assert.Contains(t, out, "07/2029")
	assert.Contains(t, out, "Next cursor: c9")
}

//nolint:paralleltest // mutates global viper state
func TestEmptyListTableOutput(t *testing.T) {
	stub := newAPIStub(t, func(*http.Request) (int, any) {
		return http.StatusOK, map[string]any{"data": []any{}, "next_cursor": nil}
	})
	useStub(t, stub, "table")

	out, err := execute(t, commands.NewEventsCommand(), "list")
	require.NoError(t, err)
	assert.Equal(t, "No events found\n", out)
}

//nolint:paralleltest // mutates global viper state
func TestACHTransferCreate(t *testing.T) {
	stub := newAPIStub(t, func(*http.Request) (int, any) {
		return http.StatusOK, map[string]any{
			"id":                   "ach_transfer_1",
			"account_id":           "account_1",
			"amount":               1250,
			"currency":             "USD",
			"statement_descriptor": "Rent",
			"status":               "pending_approval",
		}
	})
	useStub(t, stub, "json")

	out, err := execute(t, commands.NewACHTransfersCommand(), "create",
		"--account-id", "account_1",
		"--amount", "1250",
		"--statement-descriptor", "Rent",
		"--external-account-id", "external_account_1",
		"--require-approval",
		"--idempotency-key", "key-1")
	require.NoError(t, err)

	var transfer bankapi.ACHTransfer
	mustJSON(t, out, &transfer)
	assert.Equal(t, bankapi.ACHTransferStatusPendingApproval, transfer.Status)

	requests := stub.Requests()
	require.Len(t, requests, 1)

	req := requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/ach_transfers", req.Path)
	assert.Equal(t, "key-1", req.Header.Get(bankapi.IdempotencyKeyHeader))
	assert.Equal(t, map[string]any{
		"account_id":           "account_1",
		"amount":               float64(1250),
		"statement_descriptor": "Rent",
		"external_account_id":  "external_account_1",
		"require_approval":     true,
	}, req.Body)
}

//nolint:paralleltest // mutates global viper state
func TestACHTransferCreateDebit(t *testing.T) {
	stub := newAPIStub(t, func(*http.Request) (int, any) {
		return http.StatusOK, map[string]any{"id": "ach_transfer_2", "amount": -500, "currency": "USD"}
	})
	useStub(t, stub, "json")

	_, err := execute(t, commands.NewACHTransfersCommand(), "create",
		"--account-id", "account_1",
		"--amount=-500",
		"--statement-descriptor", "Refund",
		"--external-account-id", "external_account_1")
	require.NoError(t, err)

	requests := stub.Requests()
	require.Len(t, requests, 1)
	assert.InDelta(t, float64(-500), requests[0].Body["amount"], 0)
}

//nolint:paralleltest // mutates global viper state
func TestCreateValidatesFlagsBeforeCalling(t *testing.T) {
	stub := newAPIStub(t, func(*http.Request) (int, any) { return http.StatusOK, map[string]any{} })
	useStub(t, stub, "json")

	tests := []struct {
		name    string
		newCmd  func() *cobra.Command
		args    []string
		wantErr error
	}{
		{"account name", commands.NewAccountsCommand, []string{"create"}, constants.ErrNameRequired},
		{"card account", commands.NewCardsCommand, []string{"create"}, constants.ErrAccountIDRequired},
		{"ach amount", commands.NewACHTransfersCommand, []string{"create", "--account-id", "a"}, constants.ErrAmountRequired},
		{"ach descriptor", commands.NewACHTransfersCommand, []string{"create", "--account-id", "a", "--amount", "5"}, constants.ErrDescriptorRequired},
		{"oauth grant", commands.NewOAuthTokensCommand, []string{"create"}, constants.ErrGrantTypeRequired},
		{"bad timestamp", commands.NewCardPaymentsCommand, []string{"list", "--created-before", "soon"}, constants.ErrInvalidTimestamp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.newCmd(), tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Empty(t, stub.Requests())
}

//nolint:paralleltest // mutates global viper state
func TestGetNotFound(t *testing.T) {
	stub := newAPIStub(t, func(*http.Request) (int, any) {
		return http.StatusNotFound, map[string]any{"type": "object_not_found_error", "title": "Not found"}
	})
	useStub(t, stub, "json")

	_, err := execute(t, commands.NewCardsCommand(), "get", "card_missing")
	require.Error(t, err)
	assert.True(t, bankapi.IsNotFound(err))

	requests := stub.Requests()
	require.Len(t, requests, 1)
	assert.Equal(t, "/cards/card_missing", requests[0].Path)
}
