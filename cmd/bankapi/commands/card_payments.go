package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// NewCardPaymentsCommand creates the card-payments command group.
func NewCardPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "card-payments",
		Aliases: []string{"card-payment", "cp"},
		Short:   "View card payments",
		Long:    "List and inspect card payments and their authorization and settlement history",
	}

	cmd.AddCommand(newCardPaymentsListCommand())
	cmd.AddCommand(newCardPaymentsGetCommand())

	return cmd
}

func newCardPaymentsListCommand() *cobra.Command {
	var (
		list      listFlags
		createdAt createdAtFlags
		accountID string
		cardID    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List card payments",
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

			params := &bankapi.CardPaymentListParams{
				ListOptions: list.options(),
				AccountID:   optString(accountID),
				CardID:      optString(cardID),
				CreatedAt:   created,
			}

			result, err := fetchList(cmd.Context(), &list,
				func(ctx context.Context) (*bankapi.Page[bankapi.CardPayment], error) {
					return client.CardPayments().List(ctx, params)
				},
				func(ctx context.Context) *bankapi.PaginationIterator[bankapi.CardPayment] {
					return client.CardPayments().ListAutoPaging(ctx, params)
				},
			)
			if err != nil {
				return fmt.Errorf("failed to list card payments: %w", err)
			}

			return printList(cmd, result, "No card payments found",
				[]string{"ID", "Account", "Card", "Authorized", "Settled", "Created"},
				func(p bankapi.CardPayment) []string {
					return []string{
						p.ID, p.AccountID, p.CardID,
						formatInt(p.State.AuthorizedAmount), formatInt(p.State.SettledAmount),
						formatTime(p.CreatedAt),
					}
				})
		},
	}

	list.register(cmd)
	createdAt.register(cmd)
	cmd.Flags().StringVar(&accountID, "account-id", "", "filter by account")
	cmd.Flags().StringVar(&cardID, "card-id", "", "filter by card")

	return cmd
}

func newCardPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <card-payment-id>",
		Short: "Get card payment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			p, err := client.CardPayments().Retrieve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get card payment: %w", err)
			}

			return printDetails(cmd.OutOrStdout(), p, [][2]string{
				{"ID", p.ID},
				{"Account ID", p.AccountID},
				{"Card ID", p.CardID},
				{"Authorized", formatInt(p.State.AuthorizedAmount)},
				{"Incremented", formatInt(p.State.IncrementedAmount)},
				{"Reversed", formatInt(p.State.ReversedAmount)},
				{"Settled", formatInt(p.State.SettledAmount)},
				{"Elements", strconv.Itoa(len(p.Elements))},
				{"Created", formatTime(p.CreatedAt)},
			})
		},
	}
}
