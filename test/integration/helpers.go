//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey     string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:     os.Getenv("BANKAPI_SANDBOX_API_KEY"),
		BaseURL:    os.Getenv("BANKAPI_SANDBOX_BASE_URL"),
		BinaryPath: binaryPath(),
		Verbose:    os.Getenv("BANKAPI_VERBOSE") == "true",
	}
}

func binaryPath() string {
	if path := os.Getenv("BANKAPI_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../bankapi", "./bankapi", "../bankapi"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "bankapi"
}

// SkipIfMissingConfig skips the test without sandbox credentials or a CLI binary.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("BANKAPI_SANDBOX_API_KEY not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("bankapi binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the bankapi CLI against the sandbox.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a bankapi command with JSON output and returns stdout and stderr.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	full := append([]string{"--environment", "sandbox", "--output", "json"}, args...)
	if runner.config.BaseURL != "" {
		full = append([]string{"--base-url", runner.config.BaseURL}, full...)
	}

	cmd := exec.Command(runner.config.BinaryPath, full...) // #nosec G204
	cmd.Env = append(os.Environ(), "BANKAPI_API_KEY="+runner.config.APIKey)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(full, " "))
	}

	err = cmd.Run()

	return stdoutBuf.String(), stderrBuf.String(), err
}

// RunJSON executes a command and decodes its JSON output into v.
func (runner *CommandRunner) RunJSON(v any, args ...string) {
	runner.t.Helper()

	stdout, stderr, err := runner.Run(args...)
	require.NoError(runner.t, err, "bankapi %s: %s", strings.Join(args, " "), stderr)
	require.NoError(runner.t, json.Unmarshal([]byte(stdout), v), stdout)
}

// GenerateTestName returns a name unique to this run.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
