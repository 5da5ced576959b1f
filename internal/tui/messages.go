package tui

import (
	"github.com/andy/pomodoro/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// engineEventMsg carries an event from the engine subscription
type engineEventMsg struct {
	event service.Event
}

// engineClosedMsg reports that the engine closed its subscription
type engineClosedMsg struct{}

// waitForEvent blocks on the subscription; re-issue it after every event
func waitForEvent(events <-chan service.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return engineClosedMsg{}
		}
		return engineEventMsg{event: ev}
	}
}
