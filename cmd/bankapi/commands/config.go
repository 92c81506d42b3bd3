package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankclient"
)

const maskedValue = "***"

// Config is the persisted CLI configuration.
type Config struct {
	APIKey      string `json:"api_key,omitempty"     yaml:"api_key,omitempty"`
	Environment string `json:"environment,omitempty" yaml:"environment,omitempty"`
	BaseURL     string `json:"base_url,omitempty"    yaml:"base_url,omitempty"`
	Output      string `json:"output,omitempty"      yaml:"output,omitempty"`
	Retries     int    `json:"retries,omitempty"     yaml:"retries,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the bankapi config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			if config.APIKey != "" {
				config.APIKey = maskedValue
			}

			baseURL, err := bankclient.ResolveBaseURL(config.BaseURL, bankapi.Environment(config.Environment))
			if err != nil {
				baseURL = constants.NotAvailable
			}

			return printDetails(cmd.OutOrStdout(), config, [][2]string{
				{"API Key", valueOrNA(config.APIKey)},
				{"Environment", valueOrNA(config.Environment)},
				{"Base URL", baseURL},
				{"Output", valueOrNA(config.Output)},
				{"Retries", strconv.Itoa(config.Retries)},
				{"Config File", valueOrNA(configFilePath())},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set one of: api_key, environment, base_url, output, retries",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := unsetConfigValue(config, args[0])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

// loadConfig reads the effective configuration from viper.
func loadConfig() *Config {
	return &Config{
		APIKey:      viper.GetString("api_key"),
		Environment: viper.GetString("environment"),
		BaseURL:     viper.GetString("base_url"),
		Output:      viper.GetString("output"),
		Retries:     viper.GetInt("retries"),
	}
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api_key":
		if value == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = value
	case "environment":
		_, err := bankclient.ResolveBaseURL("", bankapi.Environment(value))
		if err != nil {
			return err
		}

		config.Environment = value
	case "base_url":
		config.BaseURL = value
	case "output":
		switch value {
		case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		default:
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}

		config.Output = value
	case "retries":
		retries, err := strconv.Atoi(value)
		if err != nil || retries < 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidRetries, value)
		}

		config.Retries = retries
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, value)

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case "api_key":
		config.APIKey = ""
	case "environment":
		config.Environment = ""
	case "base_url":
		config.BaseURL = ""
	case "output":
		config.Output = ""
	case "retries":
		config.Retries = 0
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	viper.Set(key, "")

	return nil
}

// configFilePath returns the file the configuration is written to.
func configFilePath() string {
	if path := viper.GetString("config"); path != "" {
		return path
	}

	if path := viper.ConfigFileUsed(); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".bankapi", "config.yml")
}

func saveConfigStruct(config *Config) error {
	configFile := configFilePath()
	if configFile == "" {
		return fmt.Errorf("failed to locate config file: %w", os.ErrNotExist)
	}

	err := os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
