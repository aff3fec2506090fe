// Package nvim renders derived palettes as Neovim Lua colorschemes.
package nvim

import (
	"bytes"
	"fmt"
	"io"
	"text/template"

	"tvibe/internal/collection"
	"tvibe/internal/utils"
	"tvibe/pkg/logging"
)

// palette is the data handed to the colorscheme template.
type palette struct {
	Name          string
	Background    string // "dark" or "light"
	Bg            [5]string
	Fg            [4]string
	Selection     collection.Pair
	Cursor        collection.Pair
	Base          collection.AnsiColors
	Dim           collection.AnsiColors
	Comment       string
	Diff          collection.DiffColors
	CodeSelection [2]string
	Terminal      [16]string
}

func newPalette(theme *collection.Theme) palette {
	cs := theme.Colors
	p := palette{
		Name:          theme.Name,
		Background:    "dark",
		Bg:            cs.Background,
		Fg:            cs.Foreground,
		Selection:     cs.Selection,
		Cursor:        cs.Cursor,
		Base:          cs.Base,
		Dim:           cs.Dim(collection.DefaultDimShade),
		Comment:       cs.Comment(collection.DefaultCommentBlend),
		Diff:          cs.Diff(),
		CodeSelection: cs.CodeSelection(collection.DefaultCodeSelectionBlend),
	}
	if theme.IsLight {
		p.Background = "light"
	}
	base, bright := cs.Base.Named(), cs.Bright.Named()
	for i, name := range collection.AnsiNames {
		p.Terminal[i] = base[name]
		p.Terminal[i+collection.AnsiCount] = bright[name]
	}
	return p
}

var colorscheme = template.Must(template.New("colorscheme").Parse(`-- {{.Name}}, generated by tvibe
vim.cmd("highlight clear")
if vim.fn.exists("syntax_on") == 1 then
  vim.cmd("syntax reset")
end
vim.o.background = "{{.Background}}"
vim.o.termguicolors = true
vim.g.colors_name = "tvibe"

local hl = function(group, opts)
  vim.api.nvim_set_hl(0, group, opts)
end

hl("Normal", { fg = "{{index .Fg 1}}", bg = "{{index .Bg 1}}" })
hl("NormalFloat", { fg = "{{index .Fg 1}}", bg = "{{index .Bg 2}}" })
hl("NormalNC", { fg = "{{index .Fg 1}}", bg = "{{index .Bg 1}}" })
hl("FloatBorder", { fg = "{{index .Fg 3}}", bg = "{{index .Bg 2}}" })
hl("SignColumn", { bg = "{{index .Bg 1}}" })
hl("EndOfBuffer", { fg = "{{index .Bg 3}}" })
hl("LineNr", { fg = "{{index .Fg 3}}" })
hl("CursorLineNr", { fg = "{{index .Fg 0}}", bold = true })
hl("CursorLine", { bg = "{{index .Bg 2}}" })
hl("ColorColumn", { bg = "{{index .Bg 2}}" })
hl("Cursor", { fg = "{{.Cursor.Fg}}", bg = "{{.Cursor.Bg}}" })
hl("Visual", { bg = "{{index .CodeSelection 0}}" })
hl("Search", { bg = "{{index .CodeSelection 1}}" })
hl("IncSearch", { fg = "{{.Selection.Fg}}", bg = "{{.Selection.Bg}}" })
hl("Pmenu", { fg = "{{index .Fg 1}}", bg = "{{index .Bg 2}}" })
hl("PmenuSel", { fg = "{{.Selection.Fg}}", bg = "{{.Selection.Bg}}" })
hl("PmenuSbar", { bg = "{{index .Bg 3}}" })
hl("PmenuThumb", { bg = "{{index .Bg 4}}" })
hl("StatusLine", { fg = "{{index .Fg 1}}", bg = "{{index .Bg 3}}" })
hl("StatusLineNC", { fg = "{{index .Fg 2}}", bg = "{{index .Bg 2}}" })
hl("WinSeparator", { fg = "{{index .Bg 4}}" })
hl("TabLine", { fg = "{{index .Fg 2}}", bg = "{{index .Bg 2}}" })
hl("TabLineSel", { fg = "{{index .Fg 0}}", bg = "{{index .Bg 1}}" })
hl("TabLineFill", { bg = "{{index .Bg 0}}" })
hl("NonText", { fg = "{{index .Bg 4}}" })
hl("Whitespace", { fg = "{{index .Bg 3}}" })
hl("MatchParen", { fg = "{{.Base.Orange}}", bold = true })

hl("Comment", { fg = "{{.Comment}}", italic = true })
hl("Constant", { fg = "{{.Base.Orange}}" })
hl("String", { fg = "{{.Base.Green}}" })
hl("Character", { fg = "{{.Base.Green}}" })
hl("Number", { fg = "{{.Base.Orange}}" })
hl("Boolean", { fg = "{{.Base.Orange}}" })
hl("Identifier", { fg = "{{.Base.Blue}}" })
hl("Function", { fg = "{{.Base.Blue}}" })
hl("Statement", { fg = "{{.Base.Magenta}}" })
hl("Keyword", { fg = "{{.Base.Magenta}}" })
hl("Operator", { fg = "{{.Base.Cyan}}" })
hl("PreProc", { fg = "{{.Base.Pink}}" })
hl("Type", { fg = "{{.Base.Yellow}}" })
hl("Special", { fg = "{{.Base.Cyan}}" })
hl("Delimiter", { fg = "{{index .Fg 2}}" })
hl("Todo", { fg = "{{index .Bg 1}}", bg = "{{.Base.Yellow}}", bold = true })
hl("Error", { fg = "{{.Base.Red}}" })

hl("DiffAdd", { bg = "{{.Diff.Add}}", fg = "{{index .Bg 1}}" })
hl("DiffDelete", { bg = "{{.Diff.Delete}}", fg = "{{index .Bg 1}}" })
hl("DiffChange", { bg = "{{.Diff.Change}}", fg = "{{index .Bg 1}}" })
hl("DiffText", { bg = "{{.Diff.Text}}", fg = "{{index .Bg 1}}" })

hl("DiagnosticError", { fg = "{{.Base.Red}}" })
hl("DiagnosticWarn", { fg = "{{.Base.Yellow}}" })
hl("DiagnosticInfo", { fg = "{{.Base.Blue}}" })
hl("DiagnosticHint", { fg = "{{.Base.Cyan}}" })
hl("DiagnosticUnnecessary", { fg = "{{.Dim.White}}" })
{{range $i, $c := .Terminal}}
vim.g.terminal_color_{{$i}} = "{{$c}}"
{{- end}}
`))

// Render writes a Lua colorscheme for theme. Derived colors come from the
// scheme's cache, so call Prepare first to apply custom factors.
func Render(w io.Writer, theme *collection.Theme) error {
	if err := colorscheme.Execute(w, newPalette(theme)); err != nil {
		return fmt.Errorf("failed to render colorscheme: %w", err)
	}
	return nil
}

// Apply renders theme to path, creating parent directories as needed.
func Apply(path string, theme *collection.Theme) error {
	var buf bytes.Buffer
	if err := Render(&buf, theme); err != nil {
		return err
	}
	if err := utils.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logging.Info("Nvim", "Wrote colorscheme %s to %s", theme.Name, path)
	return nil
}
