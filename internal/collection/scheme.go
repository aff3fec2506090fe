package collection

import "tvibe/internal/color"

// Steps holds the HSV value offsets used to derive the background and
// foreground ramps, plus the margin used by the extreme-shade guards.
type Steps struct {
	// Backgrounds are the offsets for bg0, bg2, bg3 and bg4.
	Backgrounds [4]float64
	// Foregrounds are the offsets for fg0, fg2 and fg3.
	Foregrounds [3]float64
	Gap         float64
}

// DefaultSteps is used for every scheme decoded from a collection.
var DefaultSteps = Steps{
	Backgrounds: [4]float64{-4.3, 6, 12, 23},
	Foregrounds: [3]float64{6, -23, -44},
	Gap:         2,
}

const (
	DefaultDimShade           = -0.15
	DefaultCommentBlend       = 0.4
	DefaultCodeSelectionBlend = 0.15
)

// DeriveParams are the factors for the lazily derived fields.
type DeriveParams struct {
	DimShade           float64
	CommentBlend       float64
	CodeSelectionBlend float64
}

// DefaultDeriveParams returns the factors used when none are configured.
func DefaultDeriveParams() DeriveParams {
	return DeriveParams{
		DimShade:           DefaultDimShade,
		CommentBlend:       DefaultCommentBlend,
		CodeSelectionBlend: DefaultCodeSelectionBlend,
	}
}

// Pair is a background/foreground pair.
type Pair struct {
	Bg string `yaml:"bg" json:"bg"`
	Fg string `yaml:"fg" json:"fg"`
}

// DiffColors are the editor diff highlight colors.
type DiffColors struct {
	Add    string `yaml:"add" json:"add"`
	Delete string `yaml:"delete" json:"delete"`
	Change string `yaml:"change" json:"change"`
	Text   string `yaml:"text" json:"text"`
}

// ColorScheme is the palette derived from the canonical colors.
//
// Background is [extreme, base, +1, +2, +3] and Foreground is
// [extreme, base, +1, +2]. The dim, comment, diff and code selection fields
// are computed on first access and cached; a ColorScheme must not be derived
// from concurrently.
type ColorScheme struct {
	Background [5]string
	Foreground [4]string
	Selection  Pair
	Cursor     Pair
	Base       AnsiColors
	Bright     AnsiColors

	dim           *AnsiColors
	comment       *string
	diff          *DiffColors
	codeSelection *[2]string
}

// NewColorScheme derives a scheme from colors in slot order using DefaultSteps.
func NewColorScheme(c [NumColors]color.Color) *ColorScheme {
	return NewColorSchemeSteps(c, DefaultSteps)
}

// NewColorSchemeSteps derives a scheme from colors in slot order.
func NewColorSchemeSteps(c [NumColors]color.Color, st Steps) *ColorScheme {
	bg := c[SlotBackground]
	fg := c[SlotForeground]

	var base, bright [AnsiCount]color.Color
	copy(base[:], c[SlotNormalBlack:SlotNormalBlack+AnsiCount])
	copy(bright[:], c[SlotBrightBlack:SlotBrightBlack+AnsiCount])

	_, _, bgL := bg.HSL()
	_, _, fgL := fg.HSL()
	light := bgL > 50

	m, z := 1.0, 100.0
	if light {
		m, z = -1, 0
	}

	bs, fs := st.Backgrounds, st.Foregrounds

	// Step away from the base on the far side when the near side would clip.
	bg0 := bg.Brighten(-bs[0] * m)
	if (bgL+bs[0]*m-z)*(-m)-st.Gap < 100 {
		bg0 = bg.Brighten(bs[0] * m)
	}
	fg0 := fg.Brighten(-fs[0] * m)
	if (fgL+fs[0]*m-z)*(-m)-st.Gap > 0 {
		fg0 = fg.Brighten(fs[0] * m)
	}

	return &ColorScheme{
		Background: [5]string{
			bg0.CSS(),
			bg.CSS(),
			bg.Brighten(bs[1] * m).CSS(),
			bg.Brighten(bs[2] * m).CSS(),
			bg.Brighten(bs[3] * m).CSS(),
		},
		Foreground: [4]string{
			fg0.CSS(),
			fg.CSS(),
			fg.Brighten(fs[1] * m).CSS(),
			fg.Brighten(fs[2] * m).CSS(),
		},
		Selection: Pair{Bg: c[SlotSelectionBackground].CSS(), Fg: c[SlotSelectionForeground].CSS()},
		Cursor:    Pair{Bg: c[SlotCursorBackground].CSS(), Fg: c[SlotCursorForeground].CSS()},
		Base:      NewAnsiColors(base),
		Bright:    NewAnsiColors(bright),
	}
}

// Colors returns the canonical colors in slot order.
func (cs *ColorScheme) Colors() [NumColors]color.Color {
	var c [NumColors]color.Color
	c[SlotBackground] = color.FromCSS(cs.Background[1])
	c[SlotForeground] = color.FromCSS(cs.Foreground[1])
	c[SlotSelectionBackground] = color.FromCSS(cs.Selection.Bg)
	c[SlotSelectionForeground] = color.FromCSS(cs.Selection.Fg)
	c[SlotCursorBackground] = color.FromCSS(cs.Cursor.Bg)
	c[SlotCursorForeground] = color.FromCSS(cs.Cursor.Fg)
	base := cs.Base.Colors()
	bright := cs.Bright.Colors()
	copy(c[SlotNormalBlack:], base[:])
	copy(c[SlotBrightBlack:], bright[:])
	return c
}

func (cs *ColorScheme) bg() color.Color { return color.FromCSS(cs.Background[1]) }
func (cs *ColorScheme) fg() color.Color { return color.FromCSS(cs.Foreground[1]) }

// Dim returns the base set shaded by shade. Only the first call's factor is used.
func (cs *ColorScheme) Dim(shade float64) AnsiColors {
	if cs.dim == nil {
		d := cs.Base.Map(func(c color.Color) color.Color { return c.Shade(shade) })
		cs.dim = &d
	}
	return *cs.dim
}

// Comment returns the base foreground blended toward the base background.
// Only the first call's factor is used.
func (cs *ColorScheme) Comment(blend float64) string {
	if cs.comment == nil {
		c := cs.fg().Blend(cs.bg(), blend).CSS()
		cs.comment = &c
	}
	return *cs.comment
}

// Diff returns the diff highlight colors.
func (cs *ColorScheme) Diff() DiffColors {
	if cs.diff == nil {
		bg := cs.bg()
		cs.diff = &DiffColors{
			Add:    color.FromCSS(cs.Base.Green).Blend(bg, 0.2).CSS(),
			Delete: color.FromCSS(cs.Base.Red).Blend(bg, 0.2).CSS(),
			Change: color.FromCSS(cs.Base.Blue).Blend(bg, 0.2).CSS(),
			Text:   color.FromCSS(cs.Base.Magenta).Blend(bg, 0.3).CSS(),
		}
	}
	return *cs.diff
}

// CodeSelection returns the editor visual-selection and search highlight
// backgrounds. Only the first call's factor is used.
func (cs *ColorScheme) CodeSelection(blend float64) [2]string {
	if cs.codeSelection == nil {
		bg := cs.bg()
		cs.codeSelection = &[2]string{
			bg.Blend(cs.fg(), blend).CSS(),
			bg.Blend(color.FromCSS(cs.Cursor.Bg), blend*1.6).CSS(),
		}
	}
	return *cs.codeSelection
}

// Prepare fills every derived field.
func (cs *ColorScheme) Prepare(p DeriveParams) *ColorScheme {
	cs.Dim(p.DimShade)
	cs.Comment(p.CommentBlend)
	cs.Diff()
	cs.CodeSelection(p.CodeSelectionBlend)
	return cs
}

// Prepared reports whether every derived field has been computed.
func (cs *ColorScheme) Prepared() bool {
	return cs.dim != nil && cs.comment != nil && cs.diff != nil && cs.codeSelection != nil
}
