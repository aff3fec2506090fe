package tui

import "github.com/charmbracelet/lipgloss"

const (
	// reservedLines are the rows outside the theme list: query, blank,
	// preview (4), blank, status, help.
	reservedLines     = 9
	defaultListHeight = 12
	maxStatusWidth    = 120
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	colorError  = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}

	promptStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	tagStyle      = lipgloss.NewStyle().Foreground(colorMuted).Faint(true)
	countStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	filterStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}).
			Background(colorAccent).
			Padding(0, 1)
	statusStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	statusWarnStyle  = lipgloss.NewStyle().Foreground(colorWarn)
	statusErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	emptyStyle       = lipgloss.NewStyle().Foreground(colorMuted).Italic(true).PaddingLeft(2)
)
