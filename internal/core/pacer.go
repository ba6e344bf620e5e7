package core

import "time"

const (
	minTPS = 1
	maxTPS = 240
)

// StepPacer decouples simulation stepping from the render frame rate,
// advancing the automaton at a steady generations-per-second rate.
type StepPacer struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewStepPacer constructs a pacer targeting the given generations per second.
func NewStepPacer(tps int) *StepPacer {
	p := &StepPacer{}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the step rate, clamped to a sane range.
func (p *StepPacer) SetTPS(tps int) {
	if tps < minTPS {
		tps = minTPS
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	p.tps = tps
	p.step = time.Second / time.Duration(tps)
}

// TPS returns the current step rate.
func (p *StepPacer) TPS() int { return p.tps }

// Faster doubles the step rate.
func (p *StepPacer) Faster() { p.SetTPS(p.tps * 2) }

// Slower halves the step rate.
func (p *StepPacer) Slower() { p.SetTPS(p.tps / 2) }

// ShouldStep reports whether the simulation should advance by one
// generation. Call once per frame from the main loop.
func (p *StepPacer) ShouldStep() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	p.accumulator += delta
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}

// Reset drops any accumulated time, e.g. after a pause.
func (p *StepPacer) Reset() {
	p.accumulator = 0
	p.last = time.Time{}
}
