//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Domain    string
	APIKey    string
	KeyName   string
	GeoPath   string
	Verbose   bool
	Latitude  string
	Longitude string
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Domain:    os.Getenv("GEO_API_DOMAIN"),
		APIKey:    os.Getenv("GEO_API_KEY"),
		KeyName:   os.Getenv("GEO_API_KEY_NAME"),
		GeoPath:   getGeoPath(),
		Verbose:   os.Getenv("GEO_VERBOSE") == "true",
		Latitude:  envOr("GEO_TEST_LATITUDE", "48.8566"),
		Longitude: envOr("GEO_TEST_LONGITUDE", "2.3522"),
	}
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}

	return fallback
}

// getGeoPath determines the path to the geo binary
func getGeoPath() string {
	if path := os.Getenv("GEO_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../geo",
		"./geo",
		"../geo",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "geo" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Domain == "" {
		t.Skip("GEO_API_DOMAIN not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the geo binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.GeoPath); err != nil {
		t.Skipf("geo binary not found at %s, skipping integration test", config.GeoPath)
	}
}

// CommandRunner provides utilities for running geo commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a geo command against the configured domain and returns output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	full := []string{"--domain", runner.config.Domain, "--output", "json"}
	if runner.config.APIKey != "" {
		full = append(full, "--token", runner.config.APIKey)

		if runner.config.KeyName != "" {
			full = append(full, "--token-name", runner.config.KeyName, "--token-in-query")
		}
	}

	full = append(full, args...)

	cmd := exec.Command(runner.config.GeoPath, full...) // #nosec G204
	cmd.Env = append(os.Environ(), "HOME="+runner.t.TempDir())

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.GeoPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
