package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// NewTransactionsCommand creates the transactions command group.
func NewTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"transaction", "txn"},
		Short:   "View transactions",
		Long:    "List and inspect posted transactions",
	}

	cmd.AddCommand(newTransactionsListCommand())
	cmd.AddCommand(newTransactionsGetCommand())

	return cmd
}

func newTransactionsListCommand() *cobra.Command {
	var (
		list       listFlags
		createdAt  createdAtFlags
		accountID  string
		routeID    string
		categories []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
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

			params := &bankapi.TransactionListParams{
				ListOptions: list.options(),
				AccountID:   optString(accountID),
				RouteID:     optString(routeID),
				Category:    enumFilter[bankapi.TransactionSourceCategory](categories),
				CreatedAt:   created,
			}

			result, err := fetchList(cmd.Context(), &list,
				func(ctx context.Context) (*bankapi.Page[bankapi.Transaction], error) {
					return client.Transactions().List(ctx, params)
				},
				func(ctx context.Context) *bankapi.PaginationIterator[bankapi.Transaction] {
					return client.Transactions().ListAutoPaging(ctx, params)
				},
			)
			if err != nil {
				return fmt.Errorf("failed to list transactions: %w", err)
			}

			return printList(cmd, result, "No transactions found",
				[]string{"ID", "Account", "Amount", "Category", "Description", "Created"},
				func(t bankapi.Transaction) []string {
					return []string{
						t.ID, t.AccountID, formatAmount(t.Amount, t.Currency),
						string(t.Source.Category), t.Description, formatTime(t.CreatedAt),
					}
				})
		},
	}

	list.register(cmd)
	createdAt.register(cmd)
	cmd.Flags().StringVar(&accountID, "account-id", "", "filter by account")
	cmd.Flags().StringVar(&routeID, "route-id", "", "filter by account number or card")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "filter by source category")

	return cmd
}

func newTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <transaction-id>",
		Short: "Get transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			t, err := client.Transactions().Retrieve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}

			return printDetails(cmd.OutOrStdout(), t, [][2]string{
				{"ID", t.ID},
				{"Account ID", t.AccountID},
				{"Amount", formatAmount(t.Amount, t.Currency)},
				{"Description", valueOrNA(t.Description)},
				{"Category", string(t.Source.Category)},
				{"Route ID", formatOptional(t.RouteID)},
				{"Route Type", formatOptional(t.RouteType)},
				{"Created", formatTime(t.CreatedAt)},
			})
		},
	}
}
