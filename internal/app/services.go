package app

import (
	"fmt"
	"sync"

	"tvibe/internal/collection"
	"tvibe/internal/config"
	"tvibe/internal/fonts"
)

// Services holds the data sources the application reads from.
type Services struct {
	Collection *collection.Collection

	fontDirs  []string
	fontsOnce sync.Once
	families  []string
	fontsErr  error
}

// embeddedCollection is swapped in tests.
var embeddedCollection = collection.Embedded

// scanFonts is swapped in tests.
var scanFonts = fonts.Scan

// InitializeServices opens the theme collection. Fonts are scanned on first
// use.
func InitializeServices(cfg *Config) (*Services, error) {
	col, err := embeddedCollection()
	if err != nil {
		return nil, fmt.Errorf("failed to open theme collection: %w", err)
	}

	var dirs []string
	if cfg.TvibeConfig != nil {
		for _, d := range cfg.TvibeConfig.Fonts.Dirs {
			dirs = append(dirs, config.ExpandPath(d))
		}
	}

	return &Services{
		Collection: col,
		fontDirs:   dirs,
	}, nil
}

// FontFamilies returns the installed Nerd Font families.
func (s *Services) FontFamilies() ([]string, error) {
	s.fontsOnce.Do(func() {
		s.families, s.fontsErr = scanFonts(s.fontDirs)
	})
	return s.families, s.fontsErr
}
