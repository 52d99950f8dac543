package config

// AppColorsConfig is the top-level configuration structure for appcolors.
type AppColorsConfig struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	Registry       RegistryConfig `yaml:"registry"`
	Palette        PaletteConfig  `yaml:"palette"`
}

// GlobalSettings holds settings that apply to every command.
type GlobalSettings struct {
	LogLevel  string `yaml:"logLevel,omitempty"`  // debug, info, warn, error
	LogFormat string `yaml:"logFormat,omitempty"` // text or json
	// DefaultFallback is used by resolve when no --fallback is given.
	// Empty means no fallback.
	DefaultFallback string `yaml:"defaultFallback,omitempty"`
}

// RegistryConfig locates the package registry.
type RegistryConfig struct {
	// Root is the directory holding one subdirectory per package.
	Root string `yaml:"root,omitempty"`
}

// PaletteConfig tunes icon palette extraction.
type PaletteConfig struct {
	IconSize  int `yaml:"iconSize,omitempty"`
	MaxColors int `yaml:"maxColors,omitempty"`
}
