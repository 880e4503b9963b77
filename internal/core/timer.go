package core

import "time"

// FixedStep paces simulation ticks independently of the frame rate. The
// window draws every frame while the rules advance once per interval.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep fires immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Advance(time.Now())
}

// Advance feeds the controller a timestamp and reports whether a tick is due.
// At most one tick is reported per call so a stalled frame does not burst.
func (f *FixedStep) Advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
