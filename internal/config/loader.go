package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"appcolors/internal/color"
	"appcolors/internal/palette"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/appcolors"
	projectConfigDir = ".appcolors"
	configFileName   = "config.yaml"
)

// LoadConfig loads the appcolors configuration by layering default, user, and project settings.
func LoadConfig() (AppColorsConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayFile(config, userConfigPath); err != nil {
		return AppColorsConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayFile(config, projectConfigPath); err != nil {
		return AppColorsConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	if err := Validate(config); err != nil {
		return AppColorsConfig{}, err
	}
	return config, nil
}

// overlayFile merges the file at path over config if it exists.
func overlayFile(config AppColorsConfig, path string) (AppColorsConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return config, err
	}
	return mergeConfigs(config, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads an AppColorsConfig from a YAML file.
func loadConfigFromFile(filePath string) (AppColorsConfig, error) {
	var config AppColorsConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return AppColorsConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return AppColorsConfig{}, err
	}
	config.Registry.Root = expandHome(config.Registry.Root)
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
func mergeConfigs(base, overlay AppColorsConfig) AppColorsConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}
	if overlay.GlobalSettings.LogFormat != "" {
		merged.GlobalSettings.LogFormat = overlay.GlobalSettings.LogFormat
	}
	if overlay.GlobalSettings.DefaultFallback != "" {
		merged.GlobalSettings.DefaultFallback = overlay.GlobalSettings.DefaultFallback
	}

	if overlay.Registry.Root != "" {
		merged.Registry.Root = overlay.Registry.Root
	}

	if overlay.Palette.IconSize != 0 {
		merged.Palette.IconSize = overlay.Palette.IconSize
	}
	if overlay.Palette.MaxColors != 0 {
		merged.Palette.MaxColors = overlay.Palette.MaxColors
	}

	return merged
}

// Validate reports the first invalid setting in config.
func Validate(config AppColorsConfig) error {
	switch strings.ToLower(config.GlobalSettings.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid globalSettings.logLevel %q", config.GlobalSettings.LogLevel)
	}
	switch strings.ToLower(config.GlobalSettings.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid globalSettings.logFormat %q", config.GlobalSettings.LogFormat)
	}
	if fb := config.GlobalSettings.DefaultFallback; fb != "" {
		if _, err := color.ParseHex(fb); err != nil {
			return fmt.Errorf("invalid globalSettings.defaultFallback: %w", err)
		}
	}
	if config.Palette.IconSize < 1 {
		return fmt.Errorf("palette.iconSize must be positive, got %d", config.Palette.IconSize)
	}
	if config.Palette.MaxColors < 2 {
		return fmt.Errorf("palette.maxColors must be at least 2, got %d", config.Palette.MaxColors)
	}
	return nil
}

// Generator returns the palette generator configured by config.
func (c AppColorsConfig) Generator() palette.Generator {
	return palette.NewMedianCut(c.Palette.MaxColors)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := osUserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
