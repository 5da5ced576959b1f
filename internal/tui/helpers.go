package tui

import (
	"github.com/andy/pomodoro/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// renderLength renders a length adjuster: "▼ 05:00 ▲", with muted arrows
// while adjustments are disabled.
func renderLength(label string, seconds int, enabled bool) string {
	arrows := arrowStyle
	if !enabled {
		arrows = arrowMutedStyle
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		arrows.Render("▼ "),
		lengthStyle.Render(domain.FormatClock(seconds)),
		arrows.Render(" ▲"),
	)
	return lipgloss.JoinVertical(lipgloss.Center, labelStyle.Render(label), row)
}

// runStateBadge renders the running/stopped indicator
func runStateBadge(state domain.TimerState) string {
	if state.Running() {
		return timerRunningStyle.Render("▶ RUNNING")
	}
	return timerStoppedStyle.Render("■ STOPPED")
}
