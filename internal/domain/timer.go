package domain

import "fmt"

// Phase identifies which configured length governs the countdown.
type Phase string

const (
	PhaseSession Phase = "session"
	PhaseBreak   Phase = "break"
)

// Next returns the phase that follows p in the Session/Break cycle.
func (p Phase) Next() Phase {
	if p == PhaseSession {
		return PhaseBreak
	}
	return PhaseSession
}

// Label returns the capitalized display name of the phase
func (p Phase) Label() string {
	if p == PhaseBreak {
		return "Break"
	}
	return "Session"
}

type RunState string

const (
	RunStateStopped RunState = "stopped"
	RunStateRunning RunState = "running"
)

// Lengths are whole seconds.
const (
	MinLength          = 60
	MaxLength          = 3600
	LengthStep         = 60
	DefaultSession     = 1500
	DefaultBreak       = 300
	BoundaryDelayUnits = 2
)

// TimerState is a read-only snapshot of the engine.
type TimerState struct {
	SessionLength     int
	BreakLength       int
	TimeLeft          int
	Phase             Phase
	RunState          RunState
	CompletedSessions int
}

// NewTimerState returns the initial state: a stopped session at default lengths
func NewTimerState() TimerState {
	return TimerState{
		SessionLength: DefaultSession,
		BreakLength:   DefaultBreak,
		TimeLeft:      DefaultSession,
		Phase:         PhaseSession,
		RunState:      RunStateStopped,
	}
}

// Running reports whether the tick source may decrement TimeLeft
func (s TimerState) Running() bool {
	return s.RunState == RunStateRunning
}

// OnBreak drives the break color theme.
func (s TimerState) OnBreak() bool {
	return s.Phase == PhaseBreak
}

// ControlsEnabled reports whether length adjustments are accepted.
func (s TimerState) ControlsEnabled() bool {
	return !s.Running()
}

// ActiveLength returns the configured length of the current phase
func (s TimerState) ActiveLength() int {
	if s.Phase == PhaseBreak {
		return s.BreakLength
	}
	return s.SessionLength
}

// Progress returns the elapsed fraction of the active phase in [0, 1].
func (s TimerState) Progress() float64 {
	total := s.ActiveLength()
	if total <= 0 {
		return 1
	}
	progress := float64(total-s.TimeLeft) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// Title formats the window title, e.g. "24:59 [Session] - Pomodoro Clock"
func (s TimerState) Title() string {
	return fmt.Sprintf("%s [%s] - Pomodoro Clock", FormatClock(s.TimeLeft), s.Phase.Label())
}

// BoundaryEvent is emitted once each time the countdown reaches zero.
type BoundaryEvent struct {
	// Completed is the phase that just ended.
	Completed         Phase
	CompletedSessions int
}

// FormatClock renders seconds as zero-padded mm:ss. Minutes are not
// wrapped, so 3600 renders as "60:00".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// ClampLength limits a length to [MinLength, MaxLength]
func ClampLength(length int) int {
	if length < MinLength {
		return MinLength
	}
	if length > MaxLength {
		return MaxLength
	}
	return length
}
