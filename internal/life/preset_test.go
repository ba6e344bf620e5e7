package life

import (
	"errors"
	"testing"
)

func TestPresetBoardCentersPattern(t *testing.T) {
	b, err := PresetBoard(PresetBlock, 4, 4, 0)
	if err != nil {
		t.Fatalf("PresetBoard: %v", err)
	}
	for _, p := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		if b.Get(p[0], p[1]) != 1 {
			t.Fatalf("cell (%d,%d) should be alive", p[0], p[1])
		}
	}
	if b.AliveCount() != 4 {
		t.Fatalf("block board has %d live cells, want 4", b.AliveCount())
	}
}

func TestPresetBoardUnknownName(t *testing.T) {
	_, err := PresetBoard("toad", 10, 10, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown preset should wrap ErrInvalidInput, got %v", err)
	}
}

func TestPresetBoardTooSmall(t *testing.T) {
	_, err := PresetBoard(PresetGlider, 2, 2, 0)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("undersized board should wrap ErrInvalidInput, got %v", err)
	}
}

func TestPresetBoardRandomIsSeeded(t *testing.T) {
	a, err := PresetBoard(PresetRandom, 12, 12, 99)
	if err != nil {
		t.Fatalf("PresetBoard: %v", err)
	}
	b, _ := PresetBoard(PresetRandom, 12, 12, 99)
	if !a.Equal(b) {
		t.Fatal("same seed must generate the same random preset")
	}
	c, _ := PresetBoard(PresetRandom, 12, 12, 100)
	if a.Equal(c) {
		t.Fatal("different seeds should generate different boards")
	}
}
