package core

import "time"

// FixedStep paces playback at a steady number of ticks per second,
// independent of the frame rate driving it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting tps ticks per second. The
// first call to Steps or ShouldStep always ticks.
func NewFixedStep(tps int) *FixedStep {
	f := &FixedStep{now: time.Now}
	f.SetTPS(tps)
	f.Reset()
	return f
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return int(time.Second / f.step) }

// Reset forgets elapsed time so the next call ticks once and pacing
// restarts from there.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// Steps returns how many ticks are due since the previous call, at most
// limit. Time owed beyond limit is dropped so a stalled frame does not
// trigger a burst afterwards.
func (f *FixedStep) Steps(limit int) int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	if n > limit {
		f.accumulator = 0
		return limit
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// ShouldStep reports whether at least one tick is due, consuming it.
func (f *FixedStep) ShouldStep() bool { return f.Steps(1) == 1 }
