package tui

import (
	"fmt"

	"github.com/andy/pomodoro/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// renderClock renders the panel contents: both length adjusters, the
// phase label, time left, progress and the completed session count.
func (m Model) renderClock(theme Theme) string {
	s := m.state
	enabled := s.ControlsEnabled()

	lengths := lipgloss.JoinHorizontal(lipgloss.Top,
		renderLength("Break Length", s.BreakLength, enabled),
		"      ",
		renderLength("Session Length", s.SessionLength, enabled),
	)

	bar := m.progress
	bar.FullColor = string(textColor)
	bar.EmptyColor = string(theme.Backdrop)

	parts := []string{
		lengths,
		"",
		labelStyle.Bold(true).Render(s.Phase.Label()),
		timeLeftStyle.Render(domain.FormatClock(s.TimeLeft)),
		bar.ViewAs(s.Progress()),
		"",
		runStateBadge(s),
		"",
		labelStyle.Render(fmt.Sprintf("Complete sessions: %d", s.CompletedSessions)),
	}
	if m.statusMsg != "" {
		parts = append(parts, labelStyle.Italic(true).Render(m.statusMsg))
	}

	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
