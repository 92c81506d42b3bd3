package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// NewCardsCommand creates the cards command group.
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Manage cards",
		Long:    "List, inspect and issue payment cards",
	}

	cmd.AddCommand(newCardsListCommand())
	cmd.AddCommand(newCardsGetCommand())
	cmd.AddCommand(newCardsCreateCommand())

	return cmd
}

func newCardsListCommand() *cobra.Command {
	var (
		list      listFlags
		createdAt createdAtFlags
		accountID string
		statuses  []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards",
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

			params := &bankapi.CardListParams{
				ListOptions: list.options(),
				AccountID:   optString(accountID),
				Status:      enumFilter[bankapi.CardStatus](statuses),
				CreatedAt:   created,
			}

			result, err := fetchList(cmd.Context(), &list,
				func(ctx context.Context) (*bankapi.Page[bankapi.Card], error) {
					return client.Cards().List(ctx, params)
				},
				func(ctx context.Context) *bankapi.PaginationIterator[bankapi.Card] {
					return client.Cards().ListAutoPaging(ctx, params)
				},
			)
			if err != nil {
				return fmt.Errorf("failed to list cards: %w", err)
			}

			return printList(cmd, result, "No cards found",
				[]string{"ID", "Account", "Last 4", "Status", "Expires", "Created"},
				func(c bankapi.Card) []string {
					return []string{c.ID, c.AccountID, c.Last4, string(c.Status), cardExpiry(c), formatTime(c.CreatedAt)}
				})
		},
	}

	list.register(cmd)
	createdAt.register(cmd)
	cmd.Flags().StringVar(&accountID, "account-id", "", "filter by account")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status (active, disabled, canceled)")

	return cmd
}

func newCardsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <card-id>",
		Short: "Get card details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			card, err := client.Cards().Retrieve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get card: %w", err)
			}

			return printCard(cmd, card)
		},
	}
}

func newCardsCreateCommand() *cobra.Command {
	var (
		accountID      string
		description    string
		entityID       string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			if accountID == "" {
				return constants.ErrAccountIDRequired
			}

			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			card, err := client.Cards().Create(cmd.Context(), &bankapi.CardCreateParams{
				AccountID:   accountID,
				Description: optString(description),
				EntityID:    optString(entityID),
			}, requestOptions(resolveIdempotencyKey(idempotencyKey))...)
			if err != nil {
				return fmt.Errorf("failed to create card: %w", err)
			}

			return printCard(cmd, card)
		},
	}

	cmd.Flags().StringVar(&accountID, "account-id", "", "account the card draws from")
	cmd.Flags().StringVarP(&description, "description", "d", "", "card description")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "cardholder entity")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "idempotency key, or \"auto\" to generate one")

	return cmd
}

func cardExpiry(c bankapi.Card) string {
	if c.ExpirationMonth == 0 {
		return constants.NotAvailable
	}

	return fmt.Sprintf("%02d/%d", c.ExpirationMonth, c.ExpirationYear)
}

func printCard(cmd *cobra.Command, c *bankapi.Card) error {
	return printDetails(cmd.OutOrStdout(), c, [][2]string{
		{"ID", c.ID},
		{"Account ID", c.AccountID},
		{"Description", formatOptional(c.Description)},
		{"Last 4", c.Last4},
		{"Status", string(c.Status)},
		{"Expires", cardExpiry(*c)},
		{"Created", formatTime(c.CreatedAt)},
	})
}
