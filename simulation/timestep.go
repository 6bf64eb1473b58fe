package simulation

import "time"

// FixedTimeStep turns variable frame times into a whole number of fixed
// simulation steps.
type FixedTimeStep struct {
	Step     time.Duration
	MaxSteps int // per Advance call; the remainder is dropped

	accumulated time.Duration
	dropped     time.Duration
}

// NewFixedTimeStep creates a stepper running hz steps per second.
func NewFixedTimeStep(hz float64, maxSteps int) *FixedTimeStep {
	if hz <= 0 {
		hz = 60
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &FixedTimeStep{
		Step:     time.Duration(float64(time.Second) / hz),
		MaxSteps: maxSteps,
	}
}

// Advance adds dt to the accumulator and returns how many steps are due.
// After a long stall (window drag, breakpoint) at most MaxSteps are
// returned and the backlog is discarded.
func (ts *FixedTimeStep) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	ts.accumulated += dt

	n := int(ts.accumulated / ts.Step)
	if n > ts.MaxSteps {
		ts.dropped += ts.accumulated - time.Duration(ts.MaxSteps)*ts.Step
		ts.accumulated = 0
		return ts.MaxSteps
	}
	ts.accumulated -= time.Duration(n) * ts.Step
	return n
}

// Dropped reports the total simulation time discarded so far.
func (ts *FixedTimeStep) Dropped() time.Duration {
	return ts.dropped
}

func (ts *FixedTimeStep) Reset() {
	ts.accumulated = 0
	ts.dropped = 0
}
