// Package tui provides the interactive theme picker.
//
// The picker is a Bubble Tea program: a query line backed by a bubbles
// textinput, the theme list ranked by fuzzy score (storage order while the
// query is empty), a swatch preview of the highlighted theme, a status line
// fed by the logging channel, and a help footer.
//
// # Keys
//
//   - type to search, ↑/↓ (ctrl+p/ctrl+n) to move, pgup/pgdn to page
//   - tab cycles the filter: any, dark, light
//   - enter applies the highlighted theme, esc or ctrl+c cancels
//
// # Usage
//
//	logCh := logging.InitForTUI(logging.LevelInfo)
//	defer logging.CloseTUIChannel()
//	lt, err := tui.Pick(col, collection.FilterNone, logCh)
//	if errors.Is(err, tui.ErrCancelled) {
//		return nil
//	}
package tui
