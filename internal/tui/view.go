package tui

import (
	"fmt"
	"strings"

	"tvibe/internal/collection"
	"tvibe/internal/preview"
	"tvibe/pkg/logging"
)

func (m model) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(filterStyle.Render(m.filter.String()))
	b.WriteString(" ")
	b.WriteString(countStyle.Render(fmt.Sprintf("%d/%d", len(m.matches), len(m.all))))
	b.WriteString("\n\n")

	m.renderList(&b)
	b.WriteString("\n")

	if lt, ok := m.selected(); ok {
		row := preview.Swatches(lt.Theme().Palette())
		b.WriteString(row + "\n" + row + "\n")
	} else {
		b.WriteString("\n\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) renderList(b *strings.Builder) {
	h := m.listHeight()
	if len(m.matches) == 0 {
		b.WriteString(emptyStyle.Render("no themes match"))
		b.WriteString(strings.Repeat("\n", h))
		return
	}

	end := min(m.offset+h, len(m.matches))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderItem(i, m.matches[i]))
		b.WriteString("\n")
	}
	// Keep the layout steady when the list is short.
	b.WriteString(strings.Repeat("\n", h-(end-m.offset)))
}

func (m model) renderItem(i int, lt collection.LazyTheme) string {
	tag := "dark"
	if lt.IsLight() {
		tag = "light"
	}
	if i == m.cursor {
		return cursorStyle.Render("▌ ") + selectedStyle.Render(lt.Name()) + " " + tagStyle.Render(tag)
	}
	return itemStyle.Render(lt.Name()) + " " + tagStyle.Render(tag)
}

func (m model) renderStatus() string {
	switch {
	case m.statusLevel >= logging.LevelError:
		return statusErrorStyle.Render(m.status)
	case m.statusLevel >= logging.LevelWarn:
		return statusWarnStyle.Render(m.status)
	}
	return statusStyle.Render(m.status)
}
