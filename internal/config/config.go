// Package config provides configuration structures and loading for pedeps.
package config

// Config represents the complete application configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search" mapstructure:"search"`
	Resolve ResolveConfig `yaml:"resolve" mapstructure:"resolve"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SearchConfig controls where modules are looked up.
type SearchConfig struct {
	// Paths are extra search directories, consulted after the target's own
	// directory and before the system paths.
	Paths []string `yaml:"paths" mapstructure:"paths"`
	// SystemPaths replace the built-in platform defaults when set.
	SystemPaths []string `yaml:"system_paths" mapstructure:"system_paths"`
}

// ResolveConfig controls recursive resolution behavior.
type ResolveConfig struct {
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultMaxDepth bounds tree-mode recursion when not configured.
const DefaultMaxDepth = 10

// DefaultSystemPaths returns the built-in Windows loader directories,
// consulted last when locating a module.
func DefaultSystemPaths() []string {
	return []string{
		`C:\Windows\System32`,
		`C:\Windows\SysWOW64`,
		`C:\Windows`,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			SystemPaths: DefaultSystemPaths(),
		},
		Resolve: ResolveConfig{
			MaxDepth: DefaultMaxDepth,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			// Diagnostics default to stderr so report output owns stdout.
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied. Extra search paths given on
// the command line are appended after paths from the config file.
func (c *Config) ApplyOverrides(logLevel, logFormat string, maxDepth int, extraPaths []string) {
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
	if maxDepth > 0 {
		c.Resolve.MaxDepth = maxDepth
	}
	if len(extraPaths) > 0 {
		c.Search.Paths = append(c.Search.Paths, extraPaths...)
	}
}
