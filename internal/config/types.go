package config

// TvibeConfig is the top-level configuration structure for tvibe.
type TvibeConfig struct {
	LogLevel string        `yaml:"logLevel,omitempty"` // debug, info, warn or error
	Filter   string        `yaml:"filter,omitempty"`   // any, dark or light
	Palette  PaletteConfig `yaml:"palette,omitempty"`
	Targets  TargetsConfig `yaml:"targets,omitempty"`
	Fonts    FontsConfig   `yaml:"fonts,omitempty"`
}

// PaletteConfig holds the factors for the derived palette colors.
type PaletteConfig struct {
	DimShade           *float64 `yaml:"dimShade,omitempty"`           // -1..1, negative darkens
	CommentBlend       *float64 `yaml:"commentBlend,omitempty"`       // 0..1, foreground toward background
	CodeSelectionBlend *float64 `yaml:"codeSelectionBlend,omitempty"` // 0..1, background toward foreground
}

// TargetsConfig lists the configuration files a theme is applied to.
type TargetsConfig struct {
	Alacritty TargetConfig `yaml:"alacritty,omitempty"`
	Nvim      TargetConfig `yaml:"nvim,omitempty"`
}

// TargetConfig describes one output file.
type TargetConfig struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// IsEnabled reports whether the target is switched on. Unset means off.
func (t TargetConfig) IsEnabled() bool {
	return t.Enabled != nil && *t.Enabled
}

// FontsConfig lists where Nerd Fonts are searched for.
type FontsConfig struct {
	Dirs []string `yaml:"dirs,omitempty"`
}
