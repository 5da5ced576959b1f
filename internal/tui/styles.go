package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	textColor    = lipgloss.Color("#FFFFFF")
	mutedColor   = lipgloss.Color("241") // Gray
	successColor = lipgloss.Color("76")  // Green
	warningColor = lipgloss.Color("214") // Orange

	// Base styles
	labelStyle = lipgloss.NewStyle().Foreground(textColor)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // Bright cyan

	// Timer specific
	timeLeftStyle     = lipgloss.NewStyle().Bold(true).Foreground(textColor).Padding(1, 4)
	lengthStyle       = lipgloss.NewStyle().Bold(true).Foreground(textColor)
	arrowStyle        = lipgloss.NewStyle().Foreground(textColor)
	arrowMutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	timerRunningStyle = lipgloss.NewStyle().Bold(true).Foreground(successColor)
	timerStoppedStyle = lipgloss.NewStyle().Bold(true).Foreground(warningColor)
)

// Theme colors follow the phase: red for sessions, teal for breaks.
type Theme struct {
	Panel    lipgloss.Color
	Backdrop lipgloss.Color
}

var (
	sessionTheme = Theme{Panel: lipgloss.Color("#c15c5c"), Backdrop: lipgloss.Color("#ba4949")}
	breakTheme   = Theme{Panel: lipgloss.Color("#4c9196"), Backdrop: lipgloss.Color("#38858a")}
)

// ThemeFor picks the theme for the on-break flag.
func ThemeFor(onBreak bool) Theme {
	if onBreak {
		return breakTheme
	}
	return sessionTheme
}

func (t Theme) panelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(textColor).
		Background(t.Panel).
		Padding(1, 3)
}
