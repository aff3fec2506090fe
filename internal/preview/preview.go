package preview

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"tvibe/internal/collection"
	"tvibe/internal/color"
)

const (
	swatch       = "    "
	frameColor   = "#5a5a5a"
	defaultWidth = 80
	columnGap    = 2
)

// Printer renders palettes for one output.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer
}

// NewPrinter returns a printer whose color support is detected from w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w, r: lipgloss.NewRenderer(w)}
}

// NewPrinterWithProfile returns a printer with a fixed color profile.
func NewPrinterWithProfile(w io.Writer, p termenv.Profile) *Printer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(p)
	return &Printer{w: w, r: r}
}

func (p *Printer) strip(colors []color.Color, fill func(color.Color) string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(p.r.NewStyle().Background(lipgloss.Color(fill(c))).Render(swatch))
	}
	return b.String()
}

// Palette prints a grey frame row, two rows of swatches and another frame row.
func (p *Printer) Palette(colors []color.Color) error {
	frame := p.strip(colors, func(color.Color) string { return frameColor })
	row := p.strip(colors, color.Color.CSS)
	_, err := fmt.Fprintf(p.w, "%s\n%s\n%s\n%s\n", frame, row, row, frame)
	return err
}

// Swatches renders a single row of swatches with the default renderer.
func Swatches(colors []color.Color) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.CSS())).Render(swatch))
	}
	return b.String()
}

// YAML writes the fully derived palette of theme.
func YAML(w io.Writer, theme *collection.Theme, params collection.DeriveParams) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(theme.Snapshot(params)); err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	return enc.Close()
}

// Columns lists names in as many left-aligned columns as fit in width,
// filling each column top to bottom.
func Columns(w io.Writer, names []string, width int) error {
	if len(names) == 0 {
		return nil
	}
	if width <= 0 {
		width = defaultWidth
	}

	cell := 0
	for _, n := range names {
		cell = max(cell, runewidth.StringWidth(n))
	}
	cell += columnGap

	cols := max(1, (width+columnGap)/cell)
	rows := (len(names) + cols - 1) / cols

	var b strings.Builder
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			i := c*rows + r
			if i >= len(names) {
				break
			}
			line.WriteString(runewidth.FillRight(names[i], cell))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// TerminalWidth returns the width of the terminal behind f, or 80 when f is
// not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return defaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
