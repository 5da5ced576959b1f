package tui

import (
	"fmt"

	"github.com/andy/pomodoro/internal/app"
	"github.com/andy/pomodoro/internal/domain"
	"github.com/andy/pomodoro/internal/logging"
	"github.com/andy/pomodoro/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Engine is the part of the timer engine the TUI drives
type Engine interface {
	State() domain.TimerState
	Subscribe(buffer int) <-chan service.Event
	AdjustSession(delta int)
	AdjustBreak(delta int)
	Toggle()
	Reset()
}

// eventBuffer bounds the subscription; the model always re-reads the
// engine state, so dropped events only delay a repaint.
const eventBuffer = 16

// Model is the root Bubble Tea model
type Model struct {
	engine Engine
	events <-chan service.Event
	logger *logging.Logger

	state    domain.TimerState
	keys     KeyMap
	help     help.Model
	progress progress.Model

	width  int
	height int

	statusMsg string
	closed    bool
}

// New creates a new root model subscribed to the engine
func New(engine Engine, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.NopLogger()
	}
	m := Model{
		engine:   engine,
		events:   engine.Subscribe(eventBuffer),
		logger:   logger,
		keys:     DefaultKeyMap,
		help:     help.New(),
		progress: progress.New(progress.WithoutPercentage(), progress.WithWidth(36)),
	}
	m.refresh()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tea.SetWindowTitle(m.state.Title()))
}

// refresh pulls the latest snapshot and derives key availability from it
func (m *Model) refresh() {
	m.state = m.engine.State()
	m.keys.SetAdjustEnabled(m.state.ControlsEnabled())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case engineEventMsg:
		if msg.event.Type == service.EventBoundary {
			b := msg.event.Boundary
			m.statusMsg = fmt.Sprintf("%s complete", b.Completed.Label())
			m.logger.Debug("boundary shown", "phase", string(b.Completed))
		}
		m.refresh()
		return m, tea.Batch(waitForEvent(m.events), tea.SetWindowTitle(m.state.Title()))

	case engineClosedMsg:
		m.closed = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.StartStop):
		m.statusMsg = ""
		m.engine.Toggle()

	case key.Matches(msg, m.keys.Reset):
		m.statusMsg = ""
		m.engine.Reset()

	case key.Matches(msg, m.keys.SessionUp):
		m.engine.AdjustSession(domain.LengthStep)

	case key.Matches(msg, m.keys.SessionDown):
		m.engine.AdjustSession(-domain.LengthStep)

	case key.Matches(msg, m.keys.BreakUp):
		m.engine.AdjustBreak(domain.LengthStep)

	case key.Matches(msg, m.keys.BreakDown):
		m.engine.AdjustBreak(-domain.LengthStep)

	default:
		return m, nil
	}

	m.refresh()
	return m, tea.SetWindowTitle(m.state.Title())
}

// View implements tea.Model
func (m Model) View() string {
	theme := ThemeFor(m.state.OnBreak())
	panel := theme.panelStyle().Render(m.renderClock(theme))
	body := lipgloss.JoinVertical(lipgloss.Center, panel, "", helpStyle.Render(m.help.View(m.keys)))

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(theme.Backdrop))
}

// Run starts the TUI
func Run(a *app.App) error {
	var opts []tea.ProgramOption
	if a.Config.TUI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(New(a.Engine, a.Logger.With("component", "tui")), opts...)
	_, err := p.Run()
	return err
}
