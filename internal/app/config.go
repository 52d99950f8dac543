package app

import (
	"io"

	"appcolors/internal/config"
)

// Config holds the application configuration assembled from command-line
// flags. Empty fields fall back to the loaded configuration files.
type Config struct {
	// Debug forces debug logging regardless of LogLevel.
	Debug bool
	// LogLevel overrides globalSettings.logLevel when set.
	LogLevel string
	// RegistryRoot overrides registry.root when set.
	RegistryRoot string
	// LogOutput receives CLI logs. Defaults to stderr so stdout stays
	// reserved for command output.
	LogOutput io.Writer

	// AppColorsConfig is the merged configuration, set by NewApplication.
	AppColorsConfig *config.AppColorsConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug bool, logLevel, registryRoot string) *Config {
	return &Config{
		Debug:        debug,
		LogLevel:     logLevel,
		RegistryRoot: registryRoot,
	}
}
