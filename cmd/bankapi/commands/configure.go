package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/bankapi-go/internal/constants"
)

// NewConfigureCommand creates the configure command.
func NewConfigureCommand() *cobra.Command {
	var (
		apiKey      string
		environment string
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Store API credentials",
		Long:  "Prompt for an API key and environment and save them to the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if apiKey == "" {
				_, _ = fmt.Fprint(out, "API key: ")

				key, err := term.ReadPassword(int(syscall.Stdin)) //nolint:unconvert
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				_, _ = fmt.Fprintln(out)
				apiKey = strings.TrimSpace(string(key))
			}

			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			if environment == "" && !cmd.Flags().Changed("env") {
				_, _ = fmt.Fprint(out, "Environment [production]: ")

				line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
				environment = strings.TrimSpace(line)
			}

			config := loadConfig()

			err := setConfigValue(config, "api_key", apiKey)
			if err != nil {
				return err
			}

			if environment != "" {
				err = setConfigValue(config, "environment", environment)
				if err != nil {
					return err
				}
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(out, "Saved credentials to %s\n", configFilePath())

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted when omitted)")
	cmd.Flags().StringVar(&environment, "env", "", "environment (production, sandbox)")

	return cmd
}
