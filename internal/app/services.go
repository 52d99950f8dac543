package app

import (
	"appcolors/internal/config"
	"appcolors/internal/palette"
	"appcolors/internal/registry"
	"appcolors/internal/resolver"
)

// Services holds the collaborators built from the configuration.
type Services struct {
	Registry  *registry.Filesystem
	Generator palette.Generator
	Resolver  *resolver.Resolver
	IconSize  int
}

// InitializeServices creates the registry, palette generator and resolver.
func InitializeServices(cfg config.AppColorsConfig) *Services {
	reg := registry.NewFilesystem(cfg.Registry.Root)
	gen := cfg.Generator()
	return &Services{
		Registry:  reg,
		Generator: gen,
		Resolver: resolver.New(reg, resolver.Options{
			IconSize:  cfg.Palette.IconSize,
			Generator: gen,
		}),
		IconSize: cfg.Palette.IconSize,
	}
}
