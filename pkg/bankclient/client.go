// Package bankclient provides the main entry point for creating API clients.
package bankclient

import (
	"fmt"

	"github.com/go-playground/validator"

	"github.com/fivetwenty-io/bankapi-go/internal/client"
	"github.com/fivetwenty-io/bankapi-go/internal/constants"
	"github.com/fivetwenty-io/bankapi-go/pkg/bankapi"
)

// New validates config, resolves the base URL and creates a client.
// config is not modified.
func New(config *bankapi.Config) (bankapi.Client, error) {
	if config == nil {
		return nil, bankapi.ErrConfigRequired
	}

	err := validator.New().Struct(config)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	resolved := *config

	resolved.BaseURL, err = ResolveBaseURL(config.BaseURL, config.Environment)
	if err != nil {
		return nil, err
	}

	c, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a production client authenticated with apiKey.
func NewWithAPIKey(apiKey string) (bankapi.Client, error) {
	return New(&bankapi.Config{APIKey: apiKey})
}

// NewSandbox creates a sandbox client authenticated with apiKey.
func NewSandbox(apiKey string) (bankapi.Client, error) {
	return New(&bankapi.Config{APIKey: apiKey, Environment: bankapi.EnvironmentSandbox})
}

// ResolveBaseURL returns baseURL when set, otherwise the hosted URL of env.
// An empty env selects production.
func ResolveBaseURL(baseURL string, env bankapi.Environment) (string, error) {
	if baseURL != "" {
		return baseURL, nil
	}

	switch env {
	case "", bankapi.EnvironmentProduction:
		return constants.ProductionBaseURL, nil
	case bankapi.EnvironmentSandbox:
		return constants.SandboxBaseURL, nil
	default:
		return "", fmt.Errorf("%w: %q", bankapi.ErrUnknownEnvironment, env)
	}
}
