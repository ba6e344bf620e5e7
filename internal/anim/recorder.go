// Package anim captures board frames during a simulation run and exports
// them as animated GIF or MJPEG AVI files.
package anim

import (
	"lifelab/internal/core"
	"lifelab/internal/life"
)

// Recorder collects board snapshots for later animation export. It
// implements life.Observer so it can be subscribed to an engine; it can
// also be fed directly through Capture.
type Recorder struct {
	interval int
	frames   []*core.Board
}

// NewRecorder returns a recorder capturing every interval-th step.
// Intervals below one capture every step.
func NewRecorder(interval int) *Recorder {
	if interval < 1 {
		interval = 1
	}
	return &Recorder{interval: interval}
}

// Capture stores a copy of the board as a frame.
func (r *Recorder) Capture(b *core.Board) {
	r.frames = append(r.frames, b.Clone())
}

// StepCompleted captures the board on every interval-th step.
func (r *Recorder) StepCompleted(step int, board *core.Board) {
	if step%r.interval == 0 {
		r.Capture(board)
	}
}

// LoopDetected implements life.Observer.
func (r *Recorder) LoopDetected(step, loopLength int) {}

// RunFinalized implements life.Observer.
func (r *Recorder) RunFinalized(rec life.Record) {}

// Frames exposes the captured snapshots.
func (r *Recorder) Frames() []*core.Board { return r.frames }

// Len returns the number of captured frames.
func (r *Recorder) Len() int { return len(r.frames) }
