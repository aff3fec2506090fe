package alacritty

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"

	"tvibe/internal/collection"
	"tvibe/internal/utils"
	"tvibe/pkg/logging"
)

// Colors is the [colors] table of an Alacritty configuration.
type Colors struct {
	Primary       Primary        `toml:"primary"`
	Cursor        Cursor         `toml:"cursor"`
	Selection     Selection      `toml:"selection"`
	Normal        Ansi           `toml:"normal"`
	Bright        Ansi           `toml:"bright"`
	Dim           Ansi           `toml:"dim"`
	IndexedColors []IndexedColor `toml:"indexed_colors"`
}

// Primary is the colors.primary table.
type Primary struct {
	Background       string `toml:"background"`
	Foreground       string `toml:"foreground"`
	DimForeground    string `toml:"dim_foreground"`
	BrightForeground string `toml:"bright_foreground"`
}

// Cursor is the colors.cursor table.
type Cursor struct {
	Text   string `toml:"text"`
	Cursor string `toml:"cursor"`
}

// Selection is the colors.selection table.
type Selection struct {
	Text       string `toml:"text"`
	Background string `toml:"background"`
}

// Ansi is one of the colors.normal, colors.bright or colors.dim tables.
type Ansi struct {
	Black   string `toml:"black"`
	Red     string `toml:"red"`
	Green   string `toml:"green"`
	Yellow  string `toml:"yellow"`
	Blue    string `toml:"blue"`
	Magenta string `toml:"magenta"`
	Cyan    string `toml:"cyan"`
	White   string `toml:"white"`
}

// IndexedColor is one colors.indexed_colors entry.
type IndexedColor struct {
	Index int    `toml:"index"`
	Color string `toml:"color"`
}

func ansi(a collection.AnsiColors) Ansi {
	return Ansi{
		Black:   a.Black,
		Red:     a.Red,
		Green:   a.Green,
		Yellow:  a.Yellow,
		Blue:    a.Blue,
		Magenta: a.Magenta,
		Cyan:    a.Cyan,
		White:   a.White,
	}
}

// ColorsFor maps a scheme onto Alacritty's color table. The dim set uses the
// scheme's cached dim colors, so call Prepare first to apply custom factors.
func ColorsFor(cs *collection.ColorScheme) Colors {
	return Colors{
		Primary: Primary{
			Background:       cs.Background[1],
			Foreground:       cs.Foreground[1],
			DimForeground:    cs.Foreground[2],
			BrightForeground: cs.Foreground[0],
		},
		Cursor:    Cursor{Cursor: cs.Cursor.Bg, Text: cs.Cursor.Fg},
		Selection: Selection{Background: cs.Selection.Bg, Text: cs.Selection.Fg},
		Normal:    ansi(cs.Base),
		Bright:    ansi(cs.Bright),
		Dim:       ansi(cs.Dim(collection.DefaultDimShade)),
		IndexedColors: []IndexedColor{
			{Index: 16, Color: cs.Base.Orange},
			{Index: 17, Color: cs.Base.Pink},
		},
	}
}

// WriteColors renders the [colors] table of cs as TOML.
func WriteColors(w io.Writer, cs *collection.ColorScheme) error {
	return toml.NewEncoder(w).Encode(struct {
		Colors Colors `toml:"colors"`
	}{ColorsFor(cs)})
}

// Apply replaces the colors of the Alacritty configuration at path and, when
// font is not empty, sets font.normal.family. A nil theme leaves the colors
// alone. Every other key is kept. A missing file is created.
func Apply(path string, theme *collection.Theme, font string) error {
	config := map[string]any{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logging.Info("Alacritty", "Creating %s", path)
	case err != nil:
		return fmt.Errorf("failed to read alacritty config: %w", err)
	default:
		if _, err := toml.Decode(string(data), &config); err != nil {
			return fmt.Errorf("failed to parse alacritty config %s: %w", path, err)
		}
	}

	if theme != nil {
		config["colors"] = ColorsFor(theme.Colors)
	}
	if font != "" {
		setFontFamily(config, font)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("failed to encode alacritty config: %w", err)
	}
	if err := utils.WriteFileAtomic(path, buf.Bytes(), utils.FileMode(path, 0o644)); err != nil {
		return err
	}

	if theme != nil {
		logging.Info("Alacritty", "Applied %s to %s", theme.Name, path)
	}
	if font != "" {
		logging.Info("Alacritty", "Set font %s in %s", font, path)
	}
	return nil
}

func setFontFamily(config map[string]any, family string) {
	fontTable, _ := config["font"].(map[string]any)
	if fontTable == nil {
		fontTable = map[string]any{}
	}
	normal, _ := fontTable["normal"].(map[string]any)
	if normal == nil {
		normal = map[string]any{}
	}
	normal["family"] = family
	fontTable["normal"] = normal
	config["font"] = fontTable
}
