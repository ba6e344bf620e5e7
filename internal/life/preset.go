package life

import (
	"fmt"

	"lifelab/internal/core"
)

// Preset pattern names accepted by PresetBoard.
const (
	PresetBlock   = "block"
	PresetBlinker = "blinker"
	PresetGlider  = "glider"
	PresetRandom  = "random"
)

var presets = map[string][][]uint8{
	PresetBlock: {
		{1, 1},
		{1, 1},
	},
	PresetBlinker: {
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	},
	PresetGlider: {
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	},
}

// PresetBoard returns a rows x cols board with the named classic pattern
// centered on it. The "random" preset fills the board from the seed.
func PresetBoard(name string, rows, cols int, seed int64) (*core.Board, error) {
	b, err := core.NewBoard(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %v: %w", name, err, ErrInvalidInput)
	}
	if name == "" || name == PresetRandom {
		core.NewRNG(seed).FillBinary(b)
		return b, nil
	}
	pattern, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q: %w", name, ErrInvalidInput)
	}
	if len(pattern) > rows || len(pattern[0]) > cols {
		return nil, fmt.Errorf("preset %q needs a board of at least %dx%d: %w",
			name, len(pattern), len(pattern[0]), ErrInvalidInput)
	}
	r0 := (rows - len(pattern)) / 2
	c0 := (cols - len(pattern[0])) / 2
	for r, row := range pattern {
		for c, v := range row {
			b.Set(r0+r, c0+c, v)
		}
	}
	return b, nil
}
