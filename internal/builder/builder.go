package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"tvibe/internal/collection"
	"tvibe/internal/color"
	"tvibe/internal/utils"
	"tvibe/pkg/logging"
)

const themeExt = ".toml"

// slotKeys maps every canonical slot to its key path in an Alacritty config.
var slotKeys = [collection.NumColors][]string{
	collection.SlotBackground:          {"colors", "primary", "background"},
	collection.SlotForeground:          {"colors", "primary", "foreground"},
	collection.SlotSelectionBackground: {"colors", "selection", "background"},
	collection.SlotSelectionForeground: {"colors", "selection", "text"},
	collection.SlotCursorBackground:    {"colors", "cursor", "cursor"},
	collection.SlotCursorForeground:    {"colors", "cursor", "text"},
}

func init() {
	for i, name := range collection.AnsiNames {
		slotKeys[int(collection.SlotNormalBlack)+i] = []string{"colors", "normal", name}
		slotKeys[int(collection.SlotBrightBlack)+i] = []string{"colors", "bright", name}
	}
}

// MissingFieldError reports a required key absent from a theme file.
type MissingFieldError struct {
	Theme string
	Path  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("theme %q: missing field %s", e.Theme, e.Path)
}

// ParseTheme reads one Alacritty theme file. The theme is named after the
// file stem.
func ParseTheme(path string) (*collection.Theme, error) {
	name := strings.TrimSuffix(filepath.Base(path), themeExt)
	if len(name) > collection.MaxNameLen {
		return nil, fmt.Errorf("theme %q: %w", name, collection.ErrNameTooLong)
	}

	var raw map[string]any
	md, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}

	var colors [collection.NumColors]color.Color
	for slot, key := range slotKeys {
		dotted := strings.Join(key, ".")
		if !md.IsDefined(key...) {
			return nil, &MissingFieldError{Theme: name, Path: dotted}
		}
		s, ok := lookup(raw, key).(string)
		if !ok {
			return nil, fmt.Errorf("theme %q: field %s is not a string", name, dotted)
		}
		c, err := color.ParseCSS(normalizeHex(s))
		if err != nil {
			return nil, fmt.Errorf("theme %q: field %s: %w", name, dotted, err)
		}
		colors[slot] = c
	}

	return collection.NewTheme(name, collection.NewColorScheme(colors)), nil
}

func lookup(m map[string]any, key []string) any {
	var v any = m
	for _, k := range key {
		table, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = table[k]
	}
	return v
}

// normalizeHex accepts the "0xrrggbb" spelling of older Alacritty configs.
func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return "#" + s[2:]
	}
	return s
}

// BuildDir parses every theme file in dir in file name order. The first
// error aborts the build.
func BuildDir(dir string) ([]*collection.Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme directory: %w", err)
	}

	var themes []*collection.Theme
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), themeExt) {
			continue
		}
		theme, err := ParseTheme(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		logging.Debug("Builder", "Parsed %s (light=%t)", theme.Name, theme.IsLight)
		themes = append(themes, theme)
	}
	return themes, nil
}

// WriteBlob builds dir into a collection container at out. The file is
// replaced atomically. It returns the number of themes written.
func WriteBlob(dir, out string) (int, error) {
	themes, err := BuildDir(dir)
	if err != nil {
		return 0, err
	}
	blob, err := collection.Pack(themes)
	if err != nil {
		return 0, err
	}

	if err := utils.WriteFileAtomic(out, blob, 0o644); err != nil {
		return 0, err
	}

	logging.Info("Builder", "Wrote %d themes (%d bytes) to %s", len(themes), len(blob), out)
	return len(themes), nil
}
