package ticker

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingTarget struct {
	ticks atomic.Int64
}

func (c *countingTarget) Tick() {
	c.ticks.Add(1)
}

// stoppingTarget deactivates its source from inside Tick, as an engine
// does when the countdown reaches zero.
type stoppingTarget struct {
	source *Source
	after  int64
	ticks  atomic.Int64
}

func (s *stoppingTarget) Tick() {
	if s.ticks.Add(1) >= s.after {
		s.source.Deactivate()
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestSourceTicksWhileActive(t *testing.T) {
	target := &countingTarget{}
	s := New(target, 2*time.Millisecond)

	s.Activate()
	if !s.Active() {
		t.Fatal("expected active after Activate")
	}
	waitFor(t, func() bool { return target.ticks.Load() >= 3 })

	s.Deactivate()
	if s.Active() {
		t.Fatal("expected inactive after Deactivate")
	}
	stopped := target.ticks.Load()
	time.Sleep(20 * time.Millisecond)

	// one tick may already be in flight when Deactivate returns
	if got := target.ticks.Load(); got > stopped+1 {
		t.Errorf("ticks continued after deactivate: %d -> %d", stopped, got)
	}
}

func TestSourceActivateIsIdempotent(t *testing.T) {
	s := New(&countingTarget{}, time.Hour)
	s.Activate()
	s.Activate()
	defer s.Deactivate()

	if s.gen != 1 {
		t.Errorf("expected a single stream, got generation %d", s.gen)
	}
}

func TestSourceDeactivateIsIdempotent(t *testing.T) {
	s := New(&countingTarget{}, time.Hour)
	s.Deactivate()
	s.Activate()
	s.Deactivate()
	s.Deactivate()

	if s.Active() {
		t.Error("expected inactive")
	}
}

func TestSourceDeactivateFromTick(t *testing.T) {
	target := &stoppingTarget{after: 2}
	s := New(target, 2*time.Millisecond)
	target.source = s

	s.Activate()
	waitFor(t, func() bool { return !s.Active() })

	time.Sleep(20 * time.Millisecond)
	if got := target.ticks.Load(); got != 2 {
		t.Errorf("expected exactly 2 ticks, got %d", got)
	}
}

func TestNewDefaultsInterval(t *testing.T) {
	s := New(&countingTarget{}, 0)
	if s.interval != time.Second {
		t.Errorf("expected 1s default interval, got %v", s.interval)
	}
}

func TestReplacedStreamExitsWithoutTicking(t *testing.T) {
	target := &countingTarget{}
	s := New(target, time.Millisecond)
	// a newer stream owns the source; the old one still has an open stop channel
	s.gen = 2
	s.active = true

	done := make(chan struct{})
	go func() {
		s.run(1, make(chan struct{}))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("replaced stream did not exit")
	}
	if got := target.ticks.Load(); got != 0 {
		t.Errorf("replaced stream delivered %d ticks", got)
	}
}
