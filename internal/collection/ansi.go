package collection

import "tvibe/internal/color"

// AnsiCount is the number of colors in one ANSI set.
const AnsiCount = 8

// NumColors is the number of canonical input colors of a scheme.
const NumColors = 1 + 1 + 2 + 2 + AnsiCount*2

// PaletteSize is the encoded size of a scheme in bytes.
const PaletteSize = NumColors * 3

// Slot is a position in the canonical color ordering. The same table drives
// encoding, decoding, derivation and the offline builder; changing it changes
// the binary format.
type Slot int

const (
	SlotBackground Slot = iota
	SlotForeground
	SlotSelectionBackground
	SlotSelectionForeground
	SlotCursorBackground
	SlotCursorForeground
	SlotNormalBlack
	SlotNormalRed
	SlotNormalGreen
	SlotNormalYellow
	SlotNormalBlue
	SlotNormalMagenta
	SlotNormalCyan
	SlotNormalWhite
	SlotBrightBlack
	SlotBrightRed
	SlotBrightGreen
	SlotBrightYellow
	SlotBrightBlue
	SlotBrightMagenta
	SlotBrightCyan
	SlotBrightWhite
)

// AnsiNames lists the ANSI color names in slot order.
var AnsiNames = [AnsiCount]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}

var slotNames = [NumColors]string{
	"background",
	"foreground",
	"selection.background",
	"selection.foreground",
	"cursor.background",
	"cursor.foreground",
	"normal.black", "normal.red", "normal.green", "normal.yellow",
	"normal.blue", "normal.magenta", "normal.cyan", "normal.white",
	"bright.black", "bright.red", "bright.green", "bright.yellow",
	"bright.blue", "bright.magenta", "bright.cyan", "bright.white",
}

// String returns the logical name of the slot, e.g. "normal.green".
func (s Slot) String() string {
	if s < 0 || int(s) >= NumColors {
		return "unknown"
	}
	return slotNames[s]
}

// Slots returns every slot in canonical order.
func Slots() []Slot {
	s := make([]Slot, NumColors)
	for i := range s {
		s[i] = Slot(i)
	}
	return s
}

// AnsiColors is one named ANSI set as CSS hex strings. Orange and Pink are
// derived from the other eight.
type AnsiColors struct {
	Black   string `yaml:"black" json:"black"`
	Red     string `yaml:"red" json:"red"`
	Green   string `yaml:"green" json:"green"`
	Yellow  string `yaml:"yellow" json:"yellow"`
	Blue    string `yaml:"blue" json:"blue"`
	Magenta string `yaml:"magenta" json:"magenta"`
	Cyan    string `yaml:"cyan" json:"cyan"`
	White   string `yaml:"white" json:"white"`

	Orange string `yaml:"orange" json:"orange"`
	Pink   string `yaml:"pink" json:"pink"`
}

// NewAnsiColors builds a set from colors in AnsiNames order.
func NewAnsiColors(c [AnsiCount]color.Color) AnsiColors {
	return AnsiColors{
		Black:   c[0].CSS(),
		Red:     c[1].CSS(),
		Green:   c[2].CSS(),
		Yellow:  c[3].CSS(),
		Blue:    c[4].CSS(),
		Magenta: c[5].CSS(),
		Cyan:    c[6].CSS(),
		White:   c[7].CSS(),

		Orange: c[1].Blend(c[3], 0.5).CSS(),
		Pink:   c[1].Blend(c[7], 0.5).CSS(),
	}
}

// Colors returns the eight base colors in AnsiNames order.
func (a AnsiColors) Colors() [AnsiCount]color.Color {
	return [AnsiCount]color.Color{
		color.FromCSS(a.Black),
		color.FromCSS(a.Red),
		color.FromCSS(a.Green),
		color.FromCSS(a.Yellow),
		color.FromCSS(a.Blue),
		color.FromCSS(a.Magenta),
		color.FromCSS(a.Cyan),
		color.FromCSS(a.White),
	}
}

// Map applies f to each of the eight base colors and re-derives orange and pink.
func (a AnsiColors) Map(f func(color.Color) color.Color) AnsiColors {
	c := a.Colors()
	for i := range c {
		c[i] = f(c[i])
	}
	return NewAnsiColors(c)
}

// Named returns the eight base colors keyed by name.
func (a AnsiColors) Named() map[string]string {
	return map[string]string{
		"black":   a.Black,
		"red":     a.Red,
		"green":   a.Green,
		"yellow":  a.Yellow,
		"blue":    a.Blue,
		"magenta": a.Magenta,
		"cyan":    a.Cyan,
		"white":   a.White,
	}
}
