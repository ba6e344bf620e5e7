package life

import (
	"crypto/sha256"

	"lifelab/internal/core"
)

// DefaultHistoryDepth bounds the cycle detector's history window.
const DefaultHistoryDepth = 100

// Strategy selects how the cycle detector compares observed board states.
type Strategy int

const (
	// CompareCells compares boards cell by cell. No false positives.
	CompareCells Strategy = iota
	// CompareHashes compares content hashes instead of cells. Cheaper on
	// large boards, with a residual hash-collision risk.
	CompareHashes
)

// Detector keeps a bounded FIFO window of recently seen board states and
// reports when a new state repeats one inside the window. Rebuilt fresh
// for every run; a single goroutine owns it.
type Detector struct {
	bound    int
	strategy Strategy
	boards   []*core.Board
	hashes   [][sha256.Size]byte
}

// NewDetector constructs a detector with the given window bound. A bound
// of zero or less falls back to DefaultHistoryDepth.
func NewDetector(bound int, strategy Strategy) *Detector {
	if bound <= 0 {
		bound = DefaultHistoryDepth
	}
	return &Detector{bound: bound, strategy: strategy}
}

// Observe checks whether the board repeats a state inside the window. On a
// match it reports how many steps back that state last occurred and leaves
// the window untouched; otherwise the state enters the window, evicting
// the oldest entry once the bound is exceeded.
func (d *Detector) Observe(b *core.Board) (loopLength int, found bool) {
	if d.strategy == CompareHashes {
		h := b.Hash()
		for i, prev := range d.hashes {
			if prev == h {
				return len(d.hashes) - i, true
			}
		}
		d.hashes = append(d.hashes, h)
		if len(d.hashes) > d.bound {
			copy(d.hashes, d.hashes[1:])
			d.hashes = d.hashes[:d.bound]
		}
		return 0, false
	}

	for i, prev := range d.boards {
		if prev.Equal(b) {
			return len(d.boards) - i, true
		}
	}
	d.boards = append(d.boards, b.Clone())
	if len(d.boards) > d.bound {
		copy(d.boards, d.boards[1:])
		d.boards = d.boards[:d.bound]
	}
	return 0, false
}

// Len returns the current window size.
func (d *Detector) Len() int {
	if d.strategy == CompareHashes {
		return len(d.hashes)
	}
	return len(d.boards)
}

// Bound returns the configured window bound.
func (d *Detector) Bound() int { return d.bound }
