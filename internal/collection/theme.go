package collection

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"tvibe/internal/color"
)

var (
	// ErrCorruptData is returned when a record or container is truncated or malformed.
	ErrCorruptData = errors.New("corrupt theme data")
	// ErrNameTooLong is returned when a theme name does not fit the one-byte length prefix.
	ErrNameTooLong = errors.New("theme name longer than 255 bytes")
	// ErrTooManyThemes is returned when a container would exceed the u16 count.
	ErrTooManyThemes = errors.New("too many themes")
)

// MaxNameLen is the longest encodable theme name in bytes.
const MaxNameLen = 255

// Theme is a named color scheme.
//
// Encoded form: [name_len u8][name][is_light u8][NumColors x 3 RGB bytes].
type Theme struct {
	Name    string
	IsLight bool
	Colors  *ColorScheme
}

// NewTheme names a scheme and classifies it by its base background.
func NewTheme(name string, cs *ColorScheme) *Theme {
	return &Theme{
		Name:    name,
		IsLight: isLightBackground(cs.Background[1]),
		Colors:  cs,
	}
}

// isLightBackground treats a lightness of exactly 50 as dark.
func isLightBackground(css string) bool {
	_, _, l := color.FromCSS(css).HSL()
	return l > 50
}

// Size returns the encoded size in bytes.
func (t *Theme) Size() int {
	return 2 + len(t.Name) + PaletteSize
}

// MarshalBinary encodes the theme record.
func (t *Theme) MarshalBinary() ([]byte, error) {
	if len(t.Name) > MaxNameLen {
		return nil, fmt.Errorf("%w: %q is %d bytes", ErrNameTooLong, t.Name, len(t.Name))
	}
	buf := make([]byte, 0, t.Size())
	buf = append(buf, byte(len(t.Name)))
	buf = append(buf, t.Name...)
	if t.IsLight {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	for _, c := range t.Colors.Colors() {
		rgb := c.Bytes()
		buf = append(buf, rgb[:]...)
	}
	return buf, nil
}

// WriteTo writes the encoded record to w.
func (t *Theme) WriteTo(w io.Writer) (int64, error) {
	b, err := t.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// UnmarshalBinary decodes a record. Trailing bytes are ignored. On error t is
// left unchanged.
func (t *Theme) UnmarshalBinary(b []byte) error {
	rec, err := parseRecord(b)
	if err != nil {
		return err
	}
	*t = *rec.theme(DefaultSteps)
	return nil
}

// DecodeTheme decodes a record into a new Theme.
func DecodeTheme(b []byte) (*Theme, error) {
	var t Theme
	if err := t.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return &t, nil
}

// Prepare fills the scheme's derived fields.
func (t *Theme) Prepare(p DeriveParams) *Theme {
	t.Colors.Prepare(p)
	return t
}

// Palette returns the preview strip: base background, base foreground, then
// the eight normal ANSI colors.
func (t *Theme) Palette() []color.Color {
	p := make([]color.Color, 0, AnsiCount+2)
	p = append(p, color.FromCSS(t.Colors.Background[1]), color.FromCSS(t.Colors.Foreground[1]))
	base := t.Colors.Base.Colors()
	return append(p, base[:]...)
}

// record is a parsed view into an encoded theme. It aliases the source bytes.
type record struct {
	name    []byte
	isLight bool
	palette []byte
}

func parseRecord(b []byte) (record, error) {
	if len(b) < 2 {
		return record{}, fmt.Errorf("%w: record of %d bytes", ErrCorruptData, len(b))
	}
	n := int(b[0])
	need := 1 + n + 1 + PaletteSize
	if len(b) < need {
		return record{}, fmt.Errorf("%w: record needs %d bytes, have %d", ErrCorruptData, need, len(b))
	}
	name := b[1 : 1+n]
	if !utf8.Valid(name) {
		return record{}, fmt.Errorf("%w: name is not valid UTF-8", ErrCorruptData)
	}
	return record{
		name:    name,
		isLight: b[1+n] != 0,
		palette: b[2+n : need],
	}, nil
}

func (r record) theme(st Steps) *Theme {
	var c [NumColors]color.Color
	for i := range c {
		c[i] = color.FromRGB(r.palette[i*3], r.palette[i*3+1], r.palette[i*3+2])
	}
	return &Theme{
		Name:    string(r.name),
		IsLight: r.isLight,
		Colors:  NewColorSchemeSteps(c, st),
	}
}

// Snapshot is the fully derived palette of a theme in a serializable form.
type Snapshot struct {
	Name          string     `yaml:"name" json:"name"`
	IsLight       bool       `yaml:"is_light" json:"is_light"`
	Background    [5]string  `yaml:"background,flow" json:"background"`
	Foreground    [4]string  `yaml:"foreground,flow" json:"foreground"`
	Selection     Pair       `yaml:"selection" json:"selection"`
	Cursor        Pair       `yaml:"cursor" json:"cursor"`
	Normal        AnsiColors `yaml:"normal" json:"normal"`
	Bright        AnsiColors `yaml:"bright" json:"bright"`
	Dim           AnsiColors `yaml:"dim" json:"dim"`
	Comment       string     `yaml:"comment" json:"comment"`
	Diff          DiffColors `yaml:"diff" json:"diff"`
	CodeSelection [2]string  `yaml:"code_selection,flow" json:"code_selection"`
}

// Snapshot prepares the scheme with p and returns every derived color.
func (t *Theme) Snapshot(p DeriveParams) Snapshot {
	cs := t.Colors.Prepare(p)
	return Snapshot{
		Name:          t.Name,
		IsLight:       t.IsLight,
		Background:    cs.Background,
		Foreground:    cs.Foreground,
		Selection:     cs.Selection,
		Cursor:        cs.Cursor,
		Normal:        cs.Base,
		Bright:        cs.Bright,
		Dim:           cs.Dim(p.DimShade),
		Comment:       cs.Comment(p.CommentBlend),
		Diff:          cs.Diff(),
		CodeSelection: cs.CodeSelection(p.CodeSelectionBlend),
	}
}
