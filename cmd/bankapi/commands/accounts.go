package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// NewAccountsCommand creates the accounts command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account", "acct"},
		Short:   "Manage accounts",
		Long:    "List, inspect and open bank accounts",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsGetCommand())
	cmd.AddCommand(newAccountsCreateCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	var (
		list      listFlags
		createdAt createdAtFlags
		entityID  string
		programID string
		statuses  []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			created, err := createdAt.timeRange()
			if err != nil {
				return err
			}

			params := &bankapi.AccountListParams{
				ListOptions: list.options(),
				EntityID:    optString(entityID),
				ProgramID:   optString(programID),
				Status:      enumFilter[bankapi.AccountStatus](statuses),
				CreatedAt:   created,
			}

			result, err := fetchList(cmd.Context(), &list,
				func(ctx context.Context) (*bankapi.Page[bankapi.Account], error) {
					return client.Accounts().List(ctx, params)
				},
				func(ctx context.Context) *bankapi.PaginationIterator[bankapi.Account] {
					return client.Accounts().ListAutoPaging(ctx, params)
				},
			)
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return printList(cmd, result, "No accounts found",
				[]string{"ID", "Name", "Status", "Currency", "Bank", "Created"},
				func(a bankapi.Account) []string {
					return []string{a.ID, a.Name, string(a.Status), a.Currency, a.Bank, formatTime(a.CreatedAt)}
				})
		},
	}

	list.register(cmd)
	createdAt.register(cmd)
	cmd.Flags().StringVar(&entityID, "entity-id", "", "filter by entity")
	cmd.Flags().StringVar(&programID, "program-id", "", "filter by program")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status (open, closed)")

	return cmd
}

func newAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <account-id>",
		Short: "Get account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			account, err := client.Accounts().Retrieve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return printAccount(cmd, account)
		},
	}
}

func newAccountsCreateCommand() *cobra.Command {
	var (
		name           string
		entityID       string
		programID      string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return constants.ErrNameRequired
			}

			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			account, err := client.Accounts().Create(cmd.Context(), &bankapi.AccountCreateParams{
				Name:      name,
				EntityID:  optString(entityID),
				ProgramID: optString(programID),
			}, requestOptions(resolveIdempotencyKey(idempotencyKey))...)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			return printAccount(cmd, account)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "account name")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "owning entity")
	cmd.Flags().StringVar(&programID, "program-id", "", "program the account belongs to")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "idempotency key, or \"auto\" to generate one")

	return cmd
}

func printAccount(cmd *cobra.Command, a *bankapi.Account) error {
	return printDetails(cmd.OutOrStdout(), a, [][2]string{
		{"ID", a.ID},
		{"Name", a.Name},
		{"Status", string(a.Status)},
		{"Bank", a.Bank},
		{"Currency", a.Currency},
		{"Entity ID", formatOptional(a.EntityID)},
		{"Program ID", valueOrNA(a.ProgramID)},
		{"Interest Rate", valueOrNA(a.InterestRate)},
		{"Created", formatTime(a.CreatedAt)},
	})
}
