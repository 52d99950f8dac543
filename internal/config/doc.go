// Package config provides configuration management for appcolors.
//
// Configuration is loaded from YAML files and merged in order, with later
// sources overriding earlier ones:
//
//  1. Default configuration (built into the binary)
//  2. User configuration (~/.config/appcolors/config.yaml)
//  3. Project configuration (./.appcolors/config.yaml)
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: info          # debug, info, warn, error
//	  logFormat: text         # text or json
//	  defaultFallback: "#607D8B"
//
//	registry:
//	  root: ~/.local/share/appcolors/packages
//
//	palette:
//	  iconSize: 112
//	  maxColors: 16
//
// Only fields set in a later layer override earlier ones. Command-line flags
// are applied by the cmd package on top of the loaded configuration.
//
// # Usage
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	reg := registry.NewFilesystem(cfg.Registry.Root)
package config
