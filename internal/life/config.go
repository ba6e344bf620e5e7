package life

import "lifelab/internal/core"

// Config controls a single simulation run.
type Config struct {
	Rows int
	Cols int

	// MaxSteps bounds the number of generations Run will execute.
	MaxSteps int

	// Seed drives initial board generation and is recorded for
	// reproducibility. Nil means draw a fresh seed.
	Seed *int64

	// InitialBoard, when set, must match Rows x Cols and contain only
	// 0/1 values. When nil the board is generated from the seed with
	// each cell independently alive with probability 0.5.
	InitialBoard *core.Board

	// HistoryDepth bounds the cycle detector's window. Zero means
	// DefaultHistoryDepth.
	HistoryDepth int

	// Compare selects the cycle detector's comparison strategy.
	Compare Strategy
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:         10,
		Cols:         10,
		MaxSteps:     100,
		HistoryDepth: DefaultHistoryDepth,
	}
}

// WithSeed returns a copy of the config pinned to the given seed.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = &seed
	return c
}
