package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"

	"tvibe/internal/collection"
	"tvibe/internal/fuzzy"
	"tvibe/pkg/logging"
)

type model struct {
	all     []collection.LazyTheme // storage order
	matches []collection.LazyTheme
	filter  collection.Filter

	input textinput.Model
	help  help.Model
	keys  KeyMap

	cursor int
	offset int
	width  int
	height int

	status      string
	statusLevel logging.LogLevel
	logCh       <-chan logging.LogEntry

	chosen    *collection.LazyTheme
	cancelled bool
}

func newModel(col *collection.Collection, filter collection.Filter, logCh <-chan logging.LogEntry) model {
	ti := textinput.New()
	ti.Placeholder = "theme name"
	ti.Prompt = "> "
	ti.PromptStyle = promptStyle
	ti.CharLimit = collection.MaxNameLen
	ti.Focus()

	m := model{
		filter: filter,
		input:  ti,
		help:   help.New(),
		keys:   DefaultKeyMap(),
		logCh:  logCh,
	}
	for lt := range col.Seq(collection.FilterNone) {
		m.all = append(m.all, lt)
	}
	m.refresh()
	return m
}

// refresh recomputes the visible list from the filter and query and moves
// the cursor back to the top.
func (m *model) refresh() {
	candidates := make([]collection.LazyTheme, 0, len(m.all))
	for _, lt := range m.all {
		if m.filter.Match(lt.IsLight()) {
			candidates = append(candidates, lt)
		}
	}

	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.matches = candidates
	} else {
		names := make([]string, len(candidates))
		for i, lt := range candidates {
			names[i] = lt.Name()
		}
		ranked := fuzzy.Rank(names, query)
		m.matches = make([]collection.LazyTheme, len(ranked))
		for i, r := range ranked {
			m.matches[i] = candidates[r.Index]
		}
	}
	m.cursor = 0
	m.offset = 0
}

func (m model) listHeight() int {
	if m.height == 0 {
		return defaultListHeight
	}
	return max(1, m.height-reservedLines)
}

// move shifts the cursor by delta, clamped to the list, and scrolls so the
// cursor stays visible.
func (m *model) move(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.matches)-1)
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	} else if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m model) selected() (collection.LazyTheme, bool) {
	if m.cursor < 0 || m.cursor >= len(m.matches) {
		return collection.LazyTheme{}, false
	}
	return m.matches[m.cursor], true
}
