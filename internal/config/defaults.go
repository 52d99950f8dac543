package config

import (
	"path/filepath"

	"appcolors/internal/palette"
)

const defaultRegistryDir = ".local/share/appcolors/packages"

// GetDefaultConfig returns the built-in configuration. The registry root
// defaults to a directory under the user's home, or a relative "packages"
// directory when the home directory is unknown.
func GetDefaultConfig() AppColorsConfig {
	root := "packages"
	if home, err := osUserHomeDir(); err == nil {
		root = filepath.Join(home, defaultRegistryDir)
	}
	return AppColorsConfig{
		GlobalSettings: GlobalSettings{
			LogLevel:  "info",
			LogFormat: "text",
		},
		Registry: RegistryConfig{
			Root: root,
		},
		Palette: PaletteConfig{
			IconSize:  palette.DefaultIconSize,
			MaxColors: palette.DefaultMaxColors,
		},
	}
}
