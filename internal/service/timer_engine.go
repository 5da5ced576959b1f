package service

import (
	"sync"
	"time"

	"github.com/andy/pomodoro/internal/clock"
	"github.com/andy/pomodoro/internal/domain"
	"github.com/andy/pomodoro/internal/logging"
)

// Renderer receives a snapshot after every state mutation.
type Renderer interface {
	Render(state domain.TimerState)
}

// Notifier receives phase boundary events. Implementations must not block
// for long and must handle their own failures.
type Notifier interface {
	BoundaryReached(event domain.BoundaryEvent)
}

// TickSource is the external periodic driver. The engine activates it when
// it starts running and deactivates it when it stops; while active the
// source calls Tick once per time unit.
type TickSource interface {
	Activate()
	Deactivate()
}

// EventType defines the kind of engine event.
type EventType string

const (
	EventState    EventType = "state"
	EventBoundary EventType = "boundary"
)

// Event is delivered to subscribers.
type Event struct {
	Type     EventType
	State    domain.TimerState
	Boundary domain.BoundaryEvent
	At       time.Time
}

// Options contains runtime settings for TimerEngine.
type Options struct {
	// Unit is the wall-clock length of one time unit.
	Unit  time.Duration
	Clock clock.Clock

	// CancelPendingOnStop makes Stop during the boundary delay suppress the
	// automatic restart. The phase still flips when the delay expires.
	CancelPendingOnStop bool
	// FullReset makes Reset also restore the session phase, zero the
	// completed session count and cancel a pending phase flip.
	FullReset bool

	Logger *logging.Logger
}

// TimerEngine owns the pomodoro timer state and enforces its transitions.
//
// Collaborators are invoked after the state lock is released but one
// mutation at a time, in mutation order. They must not call back into the
// engine synchronously.
type TimerEngine struct {
	mu       sync.Mutex
	dispatch sync.Mutex

	options   Options
	state     domain.TimerState
	pending   *pendingFlip
	ticks     TickSource
	renderers []Renderer
	notifiers []Notifier
	events    []chan Event
	closed    bool
}

// pendingFlip is the deferred phase flip scheduled at a boundary.
type pendingFlip struct {
	timer     clock.Timer
	autoStart bool
}

// effects collects collaborator calls produced by one mutation.
type effects struct {
	activate   bool
	deactivate bool
	render     bool
	boundary   *domain.BoundaryEvent
	state      domain.TimerState
}

// NewTimerEngine creates an engine in the default stopped session state.
func NewTimerEngine(options Options) *TimerEngine {
	if options.Unit <= 0 {
		options.Unit = time.Second
	}
	if options.Clock == nil {
		options.Clock = clock.System
	}
	if options.Logger == nil {
		options.Logger = logging.NopLogger()
	}

	return &TimerEngine{
		options: options,
		state:   domain.NewTimerState(),
	}
}

// SetTickSource injects the periodic driver.
func (e *TimerEngine) SetTickSource(ticks TickSource) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ticks = ticks
}

func (e *TimerEngine) AddRenderer(r Renderer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderers = append(e.renderers, r)
}

func (e *TimerEngine) AddNotifier(n Notifier) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notifiers = append(e.notifiers, n)
}

// Subscribe registers an observer channel. Events are dropped for a
// subscriber whose buffer is full.
func (e *TimerEngine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		close(ch)
		return ch
	}
	e.events = append(e.events, ch)
	return ch
}

// State returns a copy of the current state.
func (e *TimerEngine) State() domain.TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// BoundaryDelay is the pause between reaching zero and the phase flip.
func (e *TimerEngine) BoundaryDelay() time.Duration {
	return domain.BoundaryDelayUnits * e.options.Unit
}

// AdjustSession changes the session length by delta seconds while stopped.
func (e *TimerEngine) AdjustSession(delta int) {
	e.adjust(domain.PhaseSession, delta)
}

// AdjustBreak changes the break length by delta seconds while stopped.
func (e *TimerEngine) AdjustBreak(delta int) {
	e.adjust(domain.PhaseBreak, delta)
}

// adjust applies a clamped length change. Deltas are truncated to whole
// steps so lengths stay multiples of domain.LengthStep.
func (e *TimerEngine) adjust(phase domain.Phase, delta int) {
	delta -= delta % domain.LengthStep

	e.mu.Lock()
	if e.state.Running() || delta == 0 {
		e.mu.Unlock()
		return
	}

	length := &e.state.SessionLength
	if phase == domain.PhaseBreak {
		length = &e.state.BreakLength
	}
	updated := domain.ClampLength(*length + delta)
	if updated == *length {
		e.mu.Unlock()
		return
	}
	*length = updated
	if e.state.Phase == phase {
		e.state.TimeLeft = updated
	}

	e.options.Logger.Debug("length adjusted", "phase", string(phase), "length", updated)
	e.commitLocked(effects{render: true})
}

// Start begins the countdown. It is a no-op while already running.
func (e *TimerEngine) Start() {
	e.mu.Lock()
	if e.state.Running() {
		e.mu.Unlock()
		return
	}
	e.state.RunState = domain.RunStateRunning
	e.options.Logger.Debug("timer started", "phase", string(e.state.Phase), "time_left", e.state.TimeLeft)
	e.commitLocked(effects{activate: true, render: true})
}

// Stop pauses the countdown without changing the time left. It is a no-op
// while stopped, except that with CancelPendingOnStop it also suppresses
// the automatic restart of a pending phase flip.
func (e *TimerEngine) Stop() {
	e.mu.Lock()
	if e.options.CancelPendingOnStop && e.pending != nil {
		e.pending.autoStart = false
	}
	if !e.state.Running() {
		e.mu.Unlock()
		return
	}
	e.state.RunState = domain.RunStateStopped
	e.options.Logger.Debug("timer stopped", "phase", string(e.state.Phase), "time_left", e.state.TimeLeft)
	e.commitLocked(effects{deactivate: true, render: true})
}

// Toggle starts a stopped timer or stops a running one.
func (e *TimerEngine) Toggle() {
	if e.State().Running() {
		e.Stop()
		return
	}
	e.Start()
}

// Reset stops the countdown and restores the default lengths. Phase,
// completed sessions and a pending phase flip are left alone unless
// FullReset is set.
func (e *TimerEngine) Reset() {
	e.mu.Lock()
	fx := effects{render: true}
	if e.state.Running() {
		fx.deactivate = true
	}
	e.state.RunState = domain.RunStateStopped
	e.state.SessionLength = domain.DefaultSession
	e.state.BreakLength = domain.DefaultBreak
	e.state.TimeLeft = domain.DefaultSession

	if e.options.FullReset {
		e.state.Phase = domain.PhaseSession
		e.state.CompletedSessions = 0
		if e.pending != nil {
			e.pending.timer.Stop()
			e.pending = nil
		}
	}

	e.options.Logger.Info("timer reset", "phase", string(e.state.Phase))
	e.commitLocked(fx)
}

// Tick advances the countdown by one unit. Ticks while stopped are ignored.
// Reaching zero stops the timer, emits a boundary event and schedules the
// phase flip after BoundaryDelay.
func (e *TimerEngine) Tick() {
	e.mu.Lock()
	if !e.state.Running() {
		e.mu.Unlock()
		return
	}

	fx := effects{render: true}
	if e.state.TimeLeft > 1 {
		e.state.TimeLeft--
		e.commitLocked(fx)
		return
	}

	reached := e.state.TimeLeft == 1
	e.state.TimeLeft = 0
	e.state.RunState = domain.RunStateStopped
	fx.deactivate = true

	if reached {
		if e.state.Phase == domain.PhaseSession {
			e.state.CompletedSessions++
		}
		fx.boundary = &domain.BoundaryEvent{
			Completed:         e.state.Phase,
			CompletedSessions: e.state.CompletedSessions,
		}
		e.scheduleFlipLocked()
		e.options.Logger.Info("boundary reached",
			"phase", string(e.state.Phase),
			"completed_sessions", e.state.CompletedSessions,
		)
	}

	e.commitLocked(fx)
}

func (e *TimerEngine) scheduleFlipLocked() {
	if e.pending != nil {
		e.pending.timer.Stop()
	}
	flip := &pendingFlip{autoStart: true}
	flip.timer = e.options.Clock.AfterFunc(e.BoundaryDelay(), func() {
		e.completeBoundary(flip)
	})
	e.pending = flip
}

// completeBoundary flips the phase, loads the new phase length and restarts
// the countdown.
func (e *TimerEngine) completeBoundary(flip *pendingFlip) {
	e.mu.Lock()
	if e.pending != flip || e.closed {
		e.mu.Unlock()
		return
	}
	e.pending = nil

	e.state.Phase = e.state.Phase.Next()
	e.state.TimeLeft = e.state.ActiveLength()

	fx := effects{render: true}
	if flip.autoStart && !e.state.Running() {
		e.state.RunState = domain.RunStateRunning
		fx.activate = true
	}

	e.options.Logger.Info("phase started",
		"phase", string(e.state.Phase),
		"time_left", e.state.TimeLeft,
		"auto_start", flip.autoStart,
	)
	e.commitLocked(fx)
}

// Close cancels any pending phase flip, deactivates the tick source and
// closes subscriber channels.
func (e *TimerEngine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.pending != nil {
		e.pending.timer.Stop()
		e.pending = nil
	}
	ticks := e.ticks
	events := e.events
	e.events = nil
	e.mu.Unlock()

	e.dispatch.Lock()
	defer e.dispatch.Unlock()
	if ticks != nil {
		ticks.Deactivate()
	}
	for _, ch := range events {
		close(ch)
	}
}

// commitLocked releases the state lock and runs the collaborator calls
// for a mutation. The dispatch lock is taken before the state lock is
// released so effects run in mutation order.
func (e *TimerEngine) commitLocked(fx effects) {
	fx.state = e.state
	ticks := e.ticks
	renderers := append([]Renderer(nil), e.renderers...)
	notifiers := append([]Notifier(nil), e.notifiers...)
	events := append([]chan Event(nil), e.events...)

	e.dispatch.Lock()
	e.mu.Unlock()
	defer e.dispatch.Unlock()

	if ticks != nil {
		if fx.deactivate {
			ticks.Deactivate()
		}
		if fx.activate {
			ticks.Activate()
		}
	}

	now := e.options.Clock.Now()
	if fx.boundary != nil {
		for _, n := range notifiers {
			n.BoundaryReached(*fx.boundary)
		}
		publish(events, Event{Type: EventBoundary, State: fx.state, Boundary: *fx.boundary, At: now})
	}
	if fx.render {
		for _, r := range renderers {
			r.Render(fx.state)
		}
		publish(events, Event{Type: EventState, State: fx.state, At: now})
	}
}

func publish(events []chan Event, event Event) {
	for _, ch := range events {
		select {
		case ch <- event:
		default:
		}
	}
}
