package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dbsmedya/pedeps/internal/config"
	"github.com/dbsmedya/pedeps/internal/logger"
)

// outputWriter is used for printing output, can be overridden in tests
var outputWriter io.Writer = os.Stdout

// setOutputWriter sets the output writer (used for testing)
func setOutputWriter(w io.Writer) {
	outputWriter = w
}

// resetOutputWriter resets output to stdout (used for testing)
func resetOutputWriter() {
	outputWriter = os.Stdout
}

// printLines writes display lines to the output writer.
func printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(outputWriter, line)
	}
}

// loadRuntime loads configuration, applies CLI overrides, validates the
// result, and builds the logger. Shared by every analysis command.
func loadRuntime() (*config.Config, *logger.Logger, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.MaxDepth, overrides.ExtraPaths)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

// checkTargetFile verifies the analyzed file is accessible. This is the only
// fatal condition in the resolver: everything below it is encoded as node
// status.
func checkTargetFile(path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file %q: %w", path, err)
	}
	if stat.IsDir() {
		return fmt.Errorf("%q is a directory, not a PE file", path)
	}
	return nil
}
