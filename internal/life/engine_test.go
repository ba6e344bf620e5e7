package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelab/internal/core"
)

type eventLog struct {
	steps     int
	loopStep  int
	loopLen   int
	finalized []Record
}

func (l *eventLog) StepCompleted(step int, board *core.Board) { l.steps = step }
func (l *eventLog) LoopDetected(step, loopLength int)         { l.loopStep, l.loopLen = step, loopLength }
func (l *eventLog) RunFinalized(rec Record)                   { l.finalized = append(l.finalized, rec) }

func TestNewRejectsInvalidInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows = 0
	_, err := New(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	cfg = DefaultConfig()
	cfg.MaxSteps = -1
	_, err = New(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	cfg = DefaultConfig()
	wrongShape, _ := core.NewBoard(3, 3)
	cfg.InitialBoard = wrongShape
	_, err = New(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidInput)

	cfg = DefaultConfig()
	nonBinary, _ := core.NewBoard(cfg.Rows, cfg.Cols)
	nonBinary.Cells()[0] = 2
	cfg.InitialBoard = nonBinary
	_, err = New(cfg, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestZeroStepRun(t *testing.T) {
	cfg := DefaultConfig().WithSeed(7)
	cfg.MaxSteps = 0
	e, err := New(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, e.Run())

	rec := e.Stats()
	assert.Equal(t, 0, rec.StepCount)
	assert.False(t, rec.LoopDetected)
	assert.True(t, e.Board().Equal(e.InitialBoard()), "board must equal the initial board")
}

func TestSeedReproducibility(t *testing.T) {
	cfg := DefaultConfig().WithSeed(20240131)
	cfg.Rows, cfg.Cols = 24, 32
	cfg.MaxSteps = 10

	a, err := New(cfg, nil)
	require.NoError(t, err)
	b, err := New(cfg, nil)
	require.NoError(t, err)
	require.True(t, a.Board().Equal(b.Board()), "same seed must generate the same initial board")

	for i := 0; i < 10; i++ {
		require.NoError(t, a.Step())
		require.NoError(t, b.Step())
		require.True(t, a.Board().Equal(b.Board()), "trajectories diverged at step %d", i+1)
	}
}

func TestDrawnSeedIsRecordedAndReproducible(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = nil
	a, err := New(cfg, nil)
	require.NoError(t, err)

	replay, err := New(cfg.WithSeed(a.Seed()), nil)
	require.NoError(t, err)
	assert.Equal(t, a.Seed(), a.Stats().Seed)
	assert.True(t, a.Board().Equal(replay.Board()), "recorded seed must reproduce the board")
}

func TestBlockRunDetectsLoopLengthOne(t *testing.T) {
	board, err := PresetBoard(PresetBlock, 6, 6, 0)
	require.NoError(t, err)

	cfg := DefaultConfig().WithSeed(1)
	cfg.Rows, cfg.Cols = 6, 6
	cfg.MaxSteps = 50
	cfg.InitialBoard = board

	e, err := New(cfg, nil)
	require.NoError(t, err)

	events := &eventLog{}
	e.Subscribe(events)
	require.NoError(t, e.Run())

	rec := e.Stats()
	assert.True(t, rec.LoopDetected)
	assert.Equal(t, 1, rec.LoopLength)
	assert.Equal(t, 2, rec.StepCount, "still life repeats its first post-step state at step 2")
	assert.Equal(t, 2, events.loopStep)
	assert.Equal(t, 1, events.loopLen)
	assert.Len(t, events.finalized, 1)
	assert.Equal(t, rec.ID, events.finalized[0].ID)
}

func TestBlinkerRunDetectsLoopLengthTwo(t *testing.T) {
	board, err := PresetBoard(PresetBlinker, 7, 7, 0)
	require.NoError(t, err)

	cfg := DefaultConfig().WithSeed(1)
	cfg.Rows, cfg.Cols = 7, 7
	cfg.MaxSteps = 50
	cfg.InitialBoard = board

	e, err := New(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, e.Run())

	rec := e.Stats()
	assert.True(t, rec.LoopDetected)
	assert.Equal(t, 2, rec.LoopLength)
	assert.Equal(t, 3, rec.StepCount)
}

func TestEngineIsSingleUse(t *testing.T) {
	cfg := DefaultConfig().WithSeed(3)
	cfg.MaxSteps = 2
	cfg.HistoryDepth = 1 // tiny window, let the run exhaust its budget
	e, err := New(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, e.Run())

	assert.ErrorIs(t, e.Run(), ErrFinalized)
	assert.ErrorIs(t, e.Step(), ErrFinalized)
}

func TestStatsMidRun(t *testing.T) {
	cfg := DefaultConfig().WithSeed(11)
	cfg.Rows, cfg.Cols = 16, 16
	cfg.MaxSteps = 100
	e, err := New(cfg, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, e.Step())
	}
	rec := e.Stats()
	assert.Equal(t, 5, rec.StepCount)
	assert.Len(t, rec.AlivePercent, 5)
	assert.Equal(t, 100, rec.MaxSteps)
}

func TestStepDoesNotTerminateOnCycles(t *testing.T) {
	// The plain stepper never consults the detector, so a still life can
	// be stepped indefinitely.
	board, err := PresetBoard(PresetBlock, 5, 5, 0)
	require.NoError(t, err)

	cfg := DefaultConfig().WithSeed(1)
	cfg.Rows, cfg.Cols = 5, 5
	cfg.InitialBoard = board
	e, err := New(cfg, nil)
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		require.NoError(t, e.Step())
	}
	assert.Equal(t, 20, e.StepCount())
	assert.False(t, e.Stats().LoopDetected)
}
