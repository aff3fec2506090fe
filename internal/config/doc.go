// Package config provides configuration management for tvibe.
//
// Configuration is loaded from up to three sources and merged in order, with
// later sources overriding earlier ones:
//
//  1. Default Configuration (compiled in)
//     - Alacritty target enabled, Neovim target disabled
//     - Palette factors matching the collection defaults
//
//  2. User Configuration (~/.config/tvibe/config.yaml)
//     - Optional; ignored when the file does not exist
//
//  3. Explicit Configuration (--config FILE)
//     - Must exist when given
//
// Only keys present in a layer override the layer below; font directories
// replace the inherited list as a whole.
//
// # Configuration Structure
//
//	logLevel: info
//	filter: dark            # any, dark or light
//	palette:
//	  dimShade: -0.15
//	  commentBlend: 0.4
//	  codeSelectionBlend: 0.15
//	targets:
//	  alacritty:
//	    enabled: true
//	    path: ~/.config/alacritty/alacritty.toml
//	  nvim:
//	    enabled: true
//	    path: ${XDG_CONFIG_HOME}/nvim/colors/tvibe.lua
//	fonts:
//	  dirs:
//	    - ~/.local/share/fonts
//
// Paths support environment variable expansion and a leading "~" (see
// ExpandPath).
//
// # Usage Example
//
//	cfg, err := config.LoadConfig("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	theme.Prepare(cfg.DeriveParams())
//	if cfg.Targets.Alacritty.IsEnabled() {
//	    path := config.ExpandPath(cfg.Targets.Alacritty.Path)
//	    ...
//	}
package config
