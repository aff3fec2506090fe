package app

import (
	"io"

	"tvibe/internal/collection"
	"tvibe/internal/config"
)

// Options are the per-invocation choices made on the command line.
type Options struct {
	// Theme is a fuzzy theme name. Empty means no name was given.
	Theme string
	// Rand picks a random theme when Theme is empty.
	Rand bool
	// Filter restricts the candidates. Nil falls back to the configured filter.
	Filter *collection.Filter

	// Font is a fuzzy Nerd Font family name.
	Font string
	// FontRand picks a random installed Nerd Font when Font is empty.
	FontRand bool

	// Show prints the palette instead of applying the theme.
	Show bool
	// ShowTOML prints the Alacritty colors table.
	ShowTOML bool
	// ShowFmt prints the fully derived palette as YAML.
	ShowFmt bool
	// Copy puts the shown output on the clipboard.
	Copy bool
}

func (o Options) showing() bool {
	return o.Show || o.ShowTOML || o.ShowFmt
}

func (o Options) wantsTheme() bool {
	return o.Theme != "" || o.Rand
}

func (o Options) wantsFont() bool {
	return o.Font != "" || o.FontRand
}

// Config holds the application configuration
type Config struct {
	// ConfigPath is an explicit configuration file from --config.
	ConfigPath string
	// LogLevel overrides the configured level when not empty.
	LogLevel string

	Options Options

	// Stdout receives previews and listings. Logs go to stderr.
	Stdout io.Writer
	// Rand is the random source for theme and font picks. Nil uses the
	// process-wide source.
	Rand collection.RandSource

	// TvibeConfig is filled in by NewApplication.
	TvibeConfig *config.TvibeConfig
}

// NewConfig creates a new application configuration
func NewConfig(configPath, logLevel string, opts Options, stdout io.Writer) *Config {
	return &Config{
		ConfigPath: configPath,
		LogLevel:   logLevel,
		Options:    opts,
		Stdout:     stdout,
	}
}
