package life

import (
	"runtime"
	"time"

	"github.com/google/uuid"

	"lifelab/internal/core"
)

// HostInfo describes the machine a run executed on. Informational only;
// it never affects simulation behavior.
type HostInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUs      int    `json:"cpus"`
	GoVersion string `json:"go_version"`
}

// Record aggregates the statistics and metadata of one simulation run.
// It is the sole externally consumed output of a run.
type Record struct {
	ID           string    `json:"id"`
	Rows         int       `json:"rows"`
	Cols         int       `json:"cols"`
	MaxSteps     int       `json:"max_steps"`
	StepCount    int       `json:"step_count"`
	Seed         int64     `json:"seed"`
	StartedAt    time.Time `json:"started_at"`
	Elapsed      float64   `json:"execution_seconds"`
	AlivePercent []float64 `json:"alive_percent"`
	MaxAlive     int       `json:"max_alive_cells"`
	MinAlive     int       `json:"min_alive_cells"`
	LoopDetected bool      `json:"loop_detected"`
	LoopLength   int       `json:"loop_length"`
	Host         HostInfo  `json:"host"`
}

// Tracker accumulates per-step statistics without influencing the
// simulation itself.
type Tracker struct {
	rec       Record
	initial   *core.Board
	started   time.Time
	finalized bool
}

// NewTracker records the run's fixed metadata and takes a defensive copy
// of the initial board, so later mutation of the live board never alters
// the record of where the run began.
func NewTracker(rows, cols, maxSteps int, seed int64, initial *core.Board) *Tracker {
	now := time.Now()
	return &Tracker{
		rec: Record{
			ID:        uuid.NewString(),
			Rows:      rows,
			Cols:      cols,
			MaxSteps:  maxSteps,
			Seed:      seed,
			StartedAt: now,
			// First observed step can only lower the minimum.
			MinAlive: rows * cols,
			Host: HostInfo{
				OS:        runtime.GOOS,
				Arch:      runtime.GOARCH,
				CPUs:      runtime.NumCPU(),
				GoVersion: runtime.Version(),
			},
		},
		initial: initial.Clone(),
		started: now,
	}
}

// ObserveStep folds a freshly computed board into the running statistics
// and returns its live-cell count.
func (t *Tracker) ObserveStep(b *core.Board) int {
	alive := b.AliveCount()
	total := t.rec.Rows * t.rec.Cols
	t.rec.AlivePercent = append(t.rec.AlivePercent, float64(alive)/float64(total)*100)
	if alive > t.rec.MaxAlive {
		t.rec.MaxAlive = alive
	}
	if alive < t.rec.MinAlive {
		t.rec.MinAlive = alive
	}
	return alive
}

// Finalize records the terminal statistics. Only the first call has any
// effect, so a record is finalized exactly once.
func (t *Tracker) Finalize(steps, loopLength int, loopDetected bool) {
	if t.finalized {
		return
	}
	t.finalized = true
	t.rec.StepCount = steps
	t.rec.Elapsed = time.Since(t.started).Seconds()
	t.rec.LoopDetected = loopDetected
	t.rec.LoopLength = loopLength
}

// Finalized reports whether Finalize has run.
func (t *Tracker) Finalized() bool { return t.finalized }

// InitialBoard returns the defensive copy taken at construction.
func (t *Tracker) InitialBoard() *core.Board { return t.initial }

// Snapshot returns a copy of the record as accumulated so far. Before
// finalization the step count and elapsed time reflect progress to date.
func (t *Tracker) Snapshot() Record {
	rec := t.rec
	rec.AlivePercent = append([]float64(nil), t.rec.AlivePercent...)
	if !t.finalized {
		rec.StepCount = len(t.rec.AlivePercent)
		rec.Elapsed = time.Since(t.started).Seconds()
	}
	return rec
}
