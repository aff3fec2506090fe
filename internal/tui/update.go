package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"tvibe/pkg/logging"
)

// logEntryMsg carries one entry from the logging channel.
type logEntryMsg struct {
	Entry logging.LogEntry
}

// logClosedMsg reports that the logging channel was closed.
type logClosedMsg struct{}

// listenForLogs waits for the next log entry.
func listenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logClosedMsg{}
		}
		return logEntryMsg{Entry: entry}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, listenForLogs(m.logCh))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.move(0)
		return m, nil

	case logEntryMsg:
		m.setStatus(msg.Entry)
		return m, listenForLogs(m.logCh)

	case logClosedMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Select):
			if lt, ok := m.selected(); ok {
				m.chosen = &lt
				logging.Debug("Picker", "Selected %s", lt.Name())
				return m, tea.Quit
			}
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.move(-m.listHeight())
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.move(m.listHeight())
			return m, nil
		case key.Matches(msg, m.keys.Filter):
			m.filter = m.filter.Next()
			m.refresh()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *model) setStatus(e logging.LogEntry) {
	line := fmt.Sprintf("[%s] %s", e.Subsystem, e.Message)
	if e.Err != nil {
		line = fmt.Sprintf("%s: %v", line, e.Err)
	}
	width := maxStatusWidth
	if m.width > 0 {
		width = min(width, m.width)
	}
	m.status = runewidth.Truncate(line, width, "…")
	m.statusLevel = e.Level
}
