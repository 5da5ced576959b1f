// Package ticker drives a timer engine from a wall-clock ticker.
package ticker

import (
	"sync"
	"time"
)

// Target receives one Tick per interval while the source is active.
type Target interface {
	Tick()
}

// Source is a repeating tick stream that can be switched on and off.
// At most one stream is live at a time. A stream checks that it is still
// current before each tick, so once deactivated it delivers at most the one
// tick that had already passed that check.
type Source struct {
	mu       sync.Mutex
	target   Target
	interval time.Duration
	gen      uint64
	active   bool
	stopCh   chan struct{}
}

// New creates an inactive Source. A non-positive interval means one second.
func New(target Target, interval time.Duration) *Source {
	if interval <= 0 {
		interval = time.Second
	}
	return &Source{target: target, interval: interval}
}

// Activate starts the stream unless it is already running.
func (s *Source) Activate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	s.gen++
	s.stopCh = make(chan struct{})
	go s.run(s.gen, s.stopCh)
}

// Deactivate stops the stream. It never waits for the stream goroutine,
// so it is safe to call from within Tick.
func (s *Source) Deactivate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	close(s.stopCh)
	s.stopCh = nil
}

// Active reports whether a stream is live.
func (s *Source) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *Source) run(gen uint64, stopCh <-chan struct{}) {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-t.C:
			if !s.current(gen) {
				return
			}
			s.target.Tick()
		}
	}
}

func (s *Source) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active && s.gen == gen
}
