package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// NewACHTransfersCommand creates the ach-transfers command group.
func NewACHTransfersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ach-transfers",
		Aliases: []string{"ach-transfer", "ach"},
		Short:   "Manage ACH transfers",
		Long:    "List, inspect and originate ACH transfers",
	}

	cmd.AddCommand(newACHTransfersListCommand())
	cmd.AddCommand(newACHTransfersGetCommand())
	cmd.AddCommand(newACHTransfersCreateCommand())

	return cmd
}

func newACHTransfersListCommand() *cobra.Command {
	var (
		list              listFlags
		createdAt         createdAtFlags
		accountID         string
		externalAccountID string
		statuses          []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ACH transfers",
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

			params := &bankapi.ACHTransferListParams{
				ListOptions:       list.options(),
				AccountID:         optString(accountID),
				ExternalAccountID: optString(externalAccountID),
				Status:            enumFilter[bankapi.ACHTransferStatus](statuses),
				CreatedAt:         created,
			}

			result, err := fetchList(cmd.Context(), &list,
				func(ctx context.Context) (*bankapi.Page[bankapi.ACHTransfer], error) {
					return client.ACHTransfers().List(ctx, params)
				},
				func(ctx context.Context) *bankapi.PaginationIterator[bankapi.ACHTransfer] {
					return client.ACHTransfers().ListAutoPaging(ctx, params)
				},
			)
			if err != nil {
				return fmt.Errorf("failed to list ACH transfers: %w", err)
			}

			return printList(cmd, result, "No ACH transfers found",
				[]string{"ID", "Account", "Amount", "Status", "Descriptor", "Created"},
				func(t bankapi.ACHTransfer) []string {
					return []string{
						t.ID, t.AccountID, formatAmount(t.Amount, t.Currency),
						string(t.Status), t.StatementDescriptor, formatTime(t.CreatedAt),
					}
				})
		},
	}

	list.register(cmd)
	createdAt.register(cmd)
	cmd.Flags().StringVar(&accountID, "account-id", "", "filter by account")
	cmd.Flags().StringVar(&externalAccountID, "external-account-id", "", "filter by external account")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "filter by status, e.g. pending_approval")

	return cmd
}

func newACHTransfersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <ach-transfer-id>",
		Short: "Get ACH transfer details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			transfer, err := client.ACHTransfers().Retrieve(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get ACH transfer: %w", err)
			}

			return printACHTransfer(cmd, transfer)
		},
	}
}

func newACHTransfersCreateCommand() *cobra.Command {
	var (
		params          bankapi.ACHTransferCreateParams
		accountNumber   string
		routingNumber   string
		externalAccount string
		individualName  string
		companyName     string
		funding         string
		requireApproval bool
		idempotencyKey  string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Originate an ACH transfer",
		Long: `Originate an ACH transfer. Amounts are in minor units; a positive amount
credits the counterparty and a negative amount debits it. Identify the
counterparty with --external-account-id or with --account-number and
--routing-number.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case params.AccountID == "":
				return constants.ErrAccountIDRequired
			case params.Amount == 0:
				return constants.ErrAmountRequired
			case params.StatementDescriptor == "":
				return constants.ErrDescriptorRequired
			}

			params.AccountNumber = optString(accountNumber)
			params.RoutingNumber = optString(routingNumber)
			params.ExternalAccountID = optString(externalAccount)
			params.IndividualName = optString(individualName)
			params.CompanyName = optString(companyName)

			if funding != "" {
				params.Funding = bankapi.Some(bankapi.ACHFunding(funding))
			}

			if cmd.Flags().Changed("require-approval") {
				params.RequireApproval = bankapi.Some(requireApproval)
			}

			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			transfer, err := client.ACHTransfers().Create(cmd.Context(), &params,
				requestOptions(resolveIdempotencyKey(idempotencyKey))...)
			if err != nil {
				return fmt.Errorf("failed to create ACH transfer: %w", err)
			}

			return printACHTransfer(cmd, transfer)
		},
	}

	cmd.Flags().StringVar(&params.AccountID, "account-id", "", "originating account")
	cmd.Flags().Int64Var(&params.Amount, "amount", 0, "amount in minor units")
	cmd.Flags().StringVar(&params.StatementDescriptor, "statement-descriptor", "", "text shown on the counterparty statement")
	cmd.Flags().StringVar(&accountNumber, "account-number", "", "counterparty account number")
	cmd.Flags().StringVar(&routingNumber, "routing-number", "", "counterparty routing number")
	cmd.Flags().StringVar(&externalAccount, "external-account-id", "", "saved counterparty account")
	cmd.Flags().StringVar(&individualName, "individual-name", "", "counterparty individual name")
	cmd.Flags().StringVar(&companyName, "company-name", "", "counterparty company name")
	cmd.Flags().StringVar(&funding, "funding", "", "counterparty account type (checking, savings)")
	cmd.Flags().BoolVar(&requireApproval, "require-approval", false, "hold the transfer for approval")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "idempotency key, or \"auto\" to generate one")

	return cmd
}

func printACHTransfer(cmd *cobra.Command, t *bankapi.ACHTransfer) error {
	return printDetails(cmd.OutOrStdout(), t, [][2]string{
		{"ID", t.ID},
		{"Account ID", t.AccountID},
		{"Amount", formatAmount(t.Amount, t.Currency)},
		{"Status", string(t.Status)},
		{"Statement Descriptor", t.StatementDescriptor},
		{"Account Number", valueOrNA(t.AccountNumber)},
		{"Routing Number", valueOrNA(t.RoutingNumber)},
		{"External Account ID", formatOptional(t.ExternalAccountID)},
		{"Created", formatTime(t.CreatedAt)},
	})
}
