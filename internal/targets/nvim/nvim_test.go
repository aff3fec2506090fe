package nvim

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tvibe/internal/collection"
	"tvibe/internal/color"
)

var draculaHex = [collection.NumColors]string{
	"#282a36", "#f8f8f2", "#44475a", "#f8f8f2", "#f8f8f2", "#282a36",
	"#21222c", "#ff5555", "#50fa7b", "#f1fa8c", "#bd93f9", "#ff79c6", "#8be9fd", "#f8f8f2",
	"#6272a4", "#ff6e6e", "#69ff94", "#ffffa5", "#d6acff", "#ff92df", "#a4ffff", "#ffffff",
}

func theme(bg string) *collection.Theme {
	var c [collection.NumColors]color.Color
	for i, h := range draculaHex {
		c[i] = color.FromCSS(h)
	}
	c[collection.SlotBackground] = color.FromCSS(bg)
	return collection.NewTheme("Dracula", collection.NewColorScheme(c))
}

func TestRender(t *testing.T) {
	th := theme("#282a36").Prepare(collection.DefaultDeriveParams())

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, th))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "-- Dracula, generated by tvibe\n"))
	assert.Contains(t, out, `vim.o.background = "dark"`)
	assert.Contains(t, out, `hl("Normal", { fg = "#f8f8f2", bg = "#282a36" })`)
	assert.Contains(t, out, `hl("Comment", { fg = "`+th.Colors.Comment(0)+`", italic = true })`)
	assert.Contains(t, out, `hl("Visual", { bg = "`+th.Colors.CodeSelection(0)[0]+`" })`)
	assert.Contains(t, out, `hl("DiffAdd", { bg = "`+th.Colors.Diff().Add+`"`)
	assert.Contains(t, out, `vim.g.terminal_color_0 = "#21222c"`)
	assert.Contains(t, out, `vim.g.terminal_color_15 = "#ffffff"`)
	assert.NotContains(t, out, "<no value>")
	assert.NotContains(t, out, "terminal_color_16")
}

func TestRenderLight(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, theme("#fdf6e3")))
	assert.Contains(t, buf.String(), `vim.o.background = "light"`)
}

func TestApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nvim", "colors", "tvibe.lua")
	th := theme("#282a36")

	require.NoError(t, Apply(path, th))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, th))
	assert.Equal(t, buf.String(), string(data))
}
