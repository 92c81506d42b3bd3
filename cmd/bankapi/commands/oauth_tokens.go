package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// NewOAuthTokensCommand creates the oauth-tokens command group.
func NewOAuthTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "oauth-tokens",
		Aliases: []string{"oauth-token", "oauth"},
		Short:   "Issue OAuth tokens",
		Long:    "Exchange an authorization code or production token for an OAuth access token",
	}

	cmd.AddCommand(newOAuthTokensCreateCommand())

	return cmd
}

func newOAuthTokensCreateCommand() *cobra.Command {
	var (
		grantType       string
		clientID        string
		clientSecret    string
		code            string
		productionToken string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an OAuth token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if grantType == "" {
				return constants.ErrGrantTypeRequired
			}

			client, closeClient, err := createClient()
			if err != nil {
				return err
			}

			defer closeClient()

			token, err := client.OAuthTokens().Create(cmd.Context(), &bankapi.OAuthTokenCreateParams{
				GrantType:       bankapi.OAuthGrantType(grantType),
				ClientID:        optString(clientID),
				ClientSecret:    optString(clientSecret),
				Code:            optString(code),
				ProductionToken: optString(productionToken),
			})
			if err != nil {
				return fmt.Errorf("failed to create OAuth token: %w", err)
			}

			return printDetails(cmd.OutOrStdout(), token, [][2]string{
				{"Access Token", token.AccessToken},
				{"Token Type", token.TokenType},
				{"Group ID", valueOrNA(token.GroupID)},
			})
		},
	}

	cmd.Flags().StringVar(&grantType, "grant-type", "", "authorization_code or production_token")
	cmd.Flags().StringVar(&clientID, "client-id", "", "OAuth application client id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "OAuth application client secret")
	cmd.Flags().StringVar(&code, "code", "", "authorization code")
	cmd.Flags().StringVar(&productionToken, "production-token", "", "sandbox production token")

	return cmd
}
