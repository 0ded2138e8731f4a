package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStep(tps int) (*FixedStep, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(tps)
	fs.now = clock.now
	return fs, clock
}

func TestFixedStepFirstCallSteps(t *testing.T) {
	fs, _ := newTestStep(10)
	if !fs.ShouldStep() {
		t.Fatalf("a fresh FixedStep should step immediately")
	}
	if fs.ShouldStep() {
		t.Fatalf("second immediate call should not step at 10 TPS")
	}
}

func TestFixedStepDefaultsInvalidRate(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.step != time.Second/60 {
		t.Fatalf("step = %v, expected %v", fs.step, time.Second/60)
	}
	if fs.TPS() != 60 {
		t.Fatalf("TPS = %d, expected 60", fs.TPS())
	}
}

func TestFixedStepAccumulates(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.Steps(10)

	clock.advance(250 * time.Millisecond)
	if n := fs.Steps(10); n != 2 {
		t.Fatalf("Steps after 250ms = %d, expected 2", n)
	}
	// The leftover 50ms carries into the next call.
	clock.advance(50 * time.Millisecond)
	if n := fs.Steps(10); n != 1 {
		t.Fatalf("Steps after carry = %d, expected 1", n)
	}
}

func TestFixedStepDropsBacklogBeyondLimit(t *testing.T) {
	fs, clock := newTestStep(10)
	fs.Steps(1)

	clock.advance(5 * time.Second)
	if n := fs.Steps(3); n != 3 {
		t.Fatalf("Steps = %d, expected limit 3", n)
	}
	if n := fs.Steps(3); n != 0 {
		t.Fatalf("backlog should be dropped, got %d", n)
	}
}

func TestFixedStepReset(t *testing.T) {
	fs, clock := newTestStep(2)
	fs.ShouldStep()
	clock.advance(100 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatalf("should not step before 500ms")
	}
	fs.Reset()
	if !fs.ShouldStep() {
		t.Fatalf("Reset should make the next call step")
	}
}
