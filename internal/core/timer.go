package core

import "time"

// Clock reports the current time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// WallClock reads time.Now.
type WallClock struct{}

// Now returns the current wall-clock time.
func (WallClock) Now() time.Time { return time.Now() }

// Stopwatch measures the real time elapsed between consecutive laps so the
// simulation advances in seconds rather than frames.
type Stopwatch struct {
	clock Clock
	last  time.Time
	max   time.Duration
}

// NewStopwatch starts a stopwatch on the given clock. Laps longer than max are
// truncated to max so a stalled frame cannot launch entities across the strip;
// a zero max disables truncation.
func NewStopwatch(clock Clock, max time.Duration) *Stopwatch {
	if clock == nil {
		clock = WallClock{}
	}
	return &Stopwatch{clock: clock, last: clock.Now(), max: max}
}

// Lap returns the seconds elapsed since the previous lap (or construction).
func (s *Stopwatch) Lap() float64 {
	now := s.clock.Now()
	delta := now.Sub(s.last)
	s.last = now
	if delta < 0 {
		delta = 0
	}
	if s.max > 0 && delta > s.max {
		delta = s.max
	}
	return delta.Seconds()
}

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	clock       Clock
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{clock: WallClock{}}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// WithClock replaces the time source and returns f.
func (f *FixedStep) WithClock(c Clock) *FixedStep {
	if c != nil {
		f.clock = c
	}
	return f
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Step reports the configured tick length in seconds.
func (f *FixedStep) Step() float64 { return f.step.Seconds() }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.clock.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
