package clock

import (
	"testing"
	"time"
)

func TestFakeAdvanceFiresDueCallbacksInOrder(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	var order []string

	c.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	c.AfterFunc(1*time.Second, func() { order = append(order, "a") })
	c.AfterFunc(5*time.Second, func() { order = append(order, "c") })

	c.Advance(2 * time.Second)

	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("unexpected firing order %v", order)
	}
	if c.Pending() != 1 {
		t.Errorf("expected 1 pending callback, got %d", c.Pending())
	}
	if got := c.Now(); !got.Equal(time.Unix(2, 0)) {
		t.Errorf("expected clock at 2s, got %v", got)
	}
}

func TestFakeStop(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Fatal("expected first Stop to report true")
	}
	if timer.Stop() {
		t.Error("expected second Stop to report false")
	}

	c.Advance(time.Minute)
	if fired {
		t.Error("stopped callback fired")
	}
}

func TestFakeStopAfterFire(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	timer := c.AfterFunc(time.Second, func() {})
	c.Advance(time.Second)

	if timer.Stop() {
		t.Error("expected Stop after fire to report false")
	}
}

func TestFakeNestedScheduling(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	count := 0
	var schedule func()
	schedule = func() {
		count++
		if count < 3 {
			c.AfterFunc(time.Second, schedule)
		}
	}
	c.AfterFunc(time.Second, schedule)

	c.Advance(10 * time.Second)
	if count != 3 {
		t.Errorf("expected 3 nested firings, got %d", count)
	}
}
