package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile    string
	logLevel   string
	logFormat  string
	maxDepth   int
	extraPaths []string
)

var rootCmd = &cobra.Command{
	Use:   "pedeps",
	Short: "PE Import Table & DLL Dependency Analyzer",
	Long: `A CLI tool for inspecting the import tables of Windows executables
and shared libraries, and for resolving their full transitive DLL
dependency graph against a configurable search path.

Features:
  - Import and delay-load import table dumps with symbol detail
  - Recursive dependency tree with cycle and depth protection
  - Flat recursive dependency list with found/not-found partition
  - Configurable extra and system search directories`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "pedeps.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Search overrides
	rootCmd.PersistentFlags().StringArrayVarP(&extraPaths, "path", "p", nil,
		"Additional module search directory (can be used multiple times)")
	rootCmd.PersistentFlags().IntVar(&maxDepth, "max-depth", 0,
		"Override maximum dependency tree depth")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel   string
	LogFormat  string
	MaxDepth   int
	ExtraPaths []string
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:   logLevel,
		LogFormat:  logFormat,
		MaxDepth:   maxDepth,
		ExtraPaths: extraPaths,
	}
}
