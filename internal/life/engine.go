package life

import (
	"fmt"
	"log/slog"

	"lifelab/internal/core"
)

// Observer receives simulation lifecycle events. The board handed to
// StepCompleted is the engine's live board; observers must not mutate it
// and must copy it if they retain it.
type Observer interface {
	StepCompleted(step int, board *core.Board)
	LoopDetected(step, loopLength int)
	RunFinalized(rec Record)
}

type engineState int

const (
	stateCreated engineState = iota
	stateRunning
	stateFinalized
)

// Engine orchestrates the transition rule, cycle detector, and execution
// tracker over one bounded run. Engines are single-use: once finalized,
// further stepping is rejected. A single goroutine owns an engine;
// concurrent use without external synchronization is unsupported.
type Engine struct {
	cfg       Config
	seed      int64
	cur, nxt  *core.Board
	detector  *Detector
	tracker   *Tracker
	logger    *slog.Logger
	observers []Observer
	state     engineState
	steps     int
}

// New validates the configuration eagerly and constructs an engine. A nil
// logger falls back to slog.Default.
func New(cfg Config, logger *slog.Logger) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "engine"))

	if cfg.Rows <= 0 || cfg.Cols <= 0 {
		return nil, fmt.Errorf("dimensions must be positive, got %dx%d: %w", cfg.Rows, cfg.Cols, ErrInvalidInput)
	}
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("max steps must be non-negative, got %d: %w", cfg.MaxSteps, ErrInvalidInput)
	}

	seed := int64(0)
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = core.DrawSeed()
	}

	var cur *core.Board
	if cfg.InitialBoard != nil {
		ib := cfg.InitialBoard
		if ib.Rows != cfg.Rows || ib.Cols != cfg.Cols {
			return nil, fmt.Errorf("initial board is %dx%d, want %dx%d: %w",
				ib.Rows, ib.Cols, cfg.Rows, cfg.Cols, ErrInvalidInput)
		}
		if !ib.Binary() {
			return nil, fmt.Errorf("initial board contains values outside {0,1}: %w", ErrInvalidInput)
		}
		cur = ib.Clone()
	} else {
		board, err := core.NewBoard(cfg.Rows, cfg.Cols)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrInvalidInput)
		}
		core.NewRNG(seed).FillBinary(board)
		cur = board
	}

	nxt, _ := core.NewBoard(cfg.Rows, cfg.Cols)
	e := &Engine{
		cfg:      cfg,
		seed:     seed,
		cur:      cur,
		nxt:      nxt,
		detector: NewDetector(cfg.HistoryDepth, cfg.Compare),
		tracker:  NewTracker(cfg.Rows, cfg.Cols, cfg.MaxSteps, seed, cur),
		logger:   logger,
	}
	logger.Debug("engine created",
		slog.Int("rows", cfg.Rows),
		slog.Int("cols", cfg.Cols),
		slog.Int("max_steps", cfg.MaxSteps),
		slog.Int64("seed", seed))
	return e, nil
}

// Subscribe registers an observer for lifecycle events.
func (e *Engine) Subscribe(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

// Board exposes the live board so renderers can poll it after each step.
// Callers must treat it as read-only.
func (e *Engine) Board() *core.Board { return e.cur }

// InitialBoard returns the recorded starting state of the run.
func (e *Engine) InitialBoard() *core.Board { return e.tracker.InitialBoard() }

// Seed returns the seed the run is reproducible from.
func (e *Engine) Seed() int64 { return e.seed }

// StepCount returns the number of generations executed so far.
func (e *Engine) StepCount() int { return e.steps }

// Step advances the board by exactly one generation and feeds the new
// state to the tracker. It never consults the cycle detector; Run layers
// that on top for callers that want early termination.
func (e *Engine) Step() error {
	if e.state == stateFinalized {
		return fmt.Errorf("step: %w", ErrFinalized)
	}
	e.state = stateRunning
	step(e.cur, e.nxt)
	e.cur, e.nxt = e.nxt, e.cur
	e.steps++
	alive := e.tracker.ObserveStep(e.cur)
	e.logger.Debug("step completed", slog.Int("step", e.steps), slog.Int("alive", alive))
	for _, o := range e.observers {
		o.StepCompleted(e.steps, e.cur)
	}
	return nil
}

// Run executes Step until the step budget is exhausted or the cycle
// detector reports a repeated state, then finalizes the record exactly
// once. Detecting a cycle is a normal terminal condition, not an error.
func (e *Engine) Run() error {
	if e.state == stateFinalized {
		return fmt.Errorf("run: %w", ErrFinalized)
	}
	e.logger.Info("run started",
		slog.Int("rows", e.cfg.Rows),
		slog.Int("cols", e.cfg.Cols),
		slog.Int("max_steps", e.cfg.MaxSteps),
		slog.Int64("seed", e.seed))

	loopLength := 0
	loopFound := false
	for e.steps < e.cfg.MaxSteps {
		if err := e.Step(); err != nil {
			return err
		}
		if n, found := e.detector.Observe(e.cur); found {
			loopLength, loopFound = n, true
			e.logger.Info("loop detected", slog.Int("step", e.steps), slog.Int("loop_length", n))
			for _, o := range e.observers {
				o.LoopDetected(e.steps, n)
			}
			break
		}
	}
	e.finalize(loopLength, loopFound)
	return nil
}

func (e *Engine) finalize(loopLength int, loopFound bool) {
	e.tracker.Finalize(e.steps, loopLength, loopFound)
	e.state = stateFinalized
	rec := e.tracker.Snapshot()
	e.logger.Info("run finalized",
		slog.String("run_id", rec.ID),
		slog.Int("steps", rec.StepCount),
		slog.Bool("loop_detected", rec.LoopDetected))
	for _, o := range e.observers {
		o.RunFinalized(rec)
	}
}

// Stats returns the current tracker snapshot. Valid before, during, and
// after Run; mid-run it reflects progress so far.
func (e *Engine) Stats() Record { return e.tracker.Snapshot() }
