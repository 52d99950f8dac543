package app

import (
	"fmt"
	"os"

	"appcolors/internal/color"
	"appcolors/internal/config"
	"appcolors/pkg/logging"
)

// For mocking in tests
var loadConfig = config.LoadConfig

// Application is the main application structure that bootstraps appcolors
type Application struct {
	config   *Config
	services *Services
	logLevel logging.LogLevel
}

// NewApplication loads the configuration, applies the flag overrides,
// initializes CLI logging and builds the services.
func NewApplication(cfg *Config) (*Application, error) {
	appColorsCfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load appcolors configuration: %w", err)
	}

	if cfg.RegistryRoot != "" {
		appColorsCfg.Registry.Root = cfg.RegistryRoot
	}
	if cfg.LogLevel != "" {
		appColorsCfg.GlobalSettings.LogLevel = cfg.LogLevel
	}
	if cfg.Debug {
		appColorsCfg.GlobalSettings.LogLevel = "debug"
	}

	level, err := logging.ParseLevel(appColorsCfg.GlobalSettings.LogLevel)
	if err != nil {
		return nil, err
	}
	output := cfg.LogOutput
	if output == nil {
		output = os.Stderr
	}
	logging.InitForCLI(level, output, appColorsCfg.GlobalSettings.LogFormat)

	cfg.AppColorsConfig = &appColorsCfg
	logging.Debug("Bootstrap", "Using registry %s", appColorsCfg.Registry.Root)

	return &Application{
		config:   cfg,
		services: InitializeServices(appColorsCfg),
		logLevel: level,
	}, nil
}

// Services returns the initialized services.
func (a *Application) Services() *Services {
	return a.services
}

// DefaultFallback returns the configured fallback color, if any.
func (a *Application) DefaultFallback() (*color.RGB, error) {
	raw := a.config.AppColorsConfig.GlobalSettings.DefaultFallback
	if raw == "" {
		return nil, nil
	}
	c, err := color.ParseHex(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid default fallback: %w", err)
	}
	return &c, nil
}
