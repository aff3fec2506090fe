package config

import "tvibe/internal/collection"

func boolPtr(b bool) *bool { return &b }
func floatPtr(f float64) *float64 { return &f }

// GetDefaultConfig returns the configuration used when no file overrides it.
func GetDefaultConfig() TvibeConfig {
	return TvibeConfig{
		LogLevel: "info",
		Filter:   "any",
		Palette: PaletteConfig{
			DimShade:           floatPtr(collection.DefaultDimShade),
			CommentBlend:       floatPtr(collection.DefaultCommentBlend),
			CodeSelectionBlend: floatPtr(collection.DefaultCodeSelectionBlend),
		},
		Targets: TargetsConfig{
			Alacritty: TargetConfig{
				Enabled: boolPtr(true),
				Path:    "~/.config/alacritty/alacritty.toml",
			},
			Nvim: TargetConfig{
				Enabled: boolPtr(false),
				Path:    "~/.config/nvim/colors/tvibe.lua",
			},
		},
		Fonts: FontsConfig{
			Dirs: []string{
				"~/.local/share/fonts",
				"/usr/share/fonts",
				"~/Library/Fonts",
			},
		},
	}
}
