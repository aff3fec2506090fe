package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tvibe/internal/collection"
	"tvibe/pkg/logging"
)

// ErrCancelled is returned when the picker is closed without a selection.
var ErrCancelled = errors.New("no theme selected")

// Pick runs the picker on the alternate screen until the user selects a
// theme or cancels. Entries from logCh are shown in the status line.
func Pick(col *collection.Collection, filter collection.Filter, logCh <-chan logging.LogEntry) (collection.LazyTheme, error) {
	p := tea.NewProgram(newModel(col, filter, logCh), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return collection.LazyTheme{}, fmt.Errorf("picker failed: %w", err)
	}
	m, ok := final.(model)
	if !ok || m.chosen == nil {
		return collection.LazyTheme{}, ErrCancelled
	}
	return *m.chosen, nil
}
