package core

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
)

// Board stores a 2D grid of binary cell values in row-major order. Cell
// values are strictly 0 or 1; the grid wraps toroidally at all edges.
type Board struct {
	Rows, Cols int
	cells      []uint8
}

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(rows, cols int) (*Board, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("board dimensions must be positive, got %dx%d", rows, cols)
	}
	return &Board{Rows: rows, Cols: cols, cells: make([]uint8, rows*cols)}, nil
}

// BoardFromRows builds a board from a 2D slice, validating that every row
// has the same length and every value is 0 or 1.
func BoardFromRows(rows [][]uint8) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("board rows must be non-empty")
	}
	cols := len(rows[0])
	b, err := NewBoard(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", r, len(row), cols)
		}
		for c, v := range row {
			if v > 1 {
				return nil, fmt.Errorf("cell (%d,%d) has value %d, want 0 or 1", r, c, v)
			}
			b.cells[r*cols+c] = v
		}
	}
	return b, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []uint8 { return b.cells }

// Index returns the linear slice index for the cell at (row, col).
func (b *Board) Index(row, col int) int { return row*b.Cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(row, col int) (int, int) {
	row = (row%b.Rows + b.Rows) % b.Rows
	col = (col%b.Cols + b.Cols) % b.Cols
	return row, col
}

// Get returns the cell value at (row, col) without wrapping.
func (b *Board) Get(row, col int) uint8 { return b.cells[row*b.Cols+col] }

// Set writes the cell value at (row, col) without wrapping.
func (b *Board) Set(row, col int, v uint8) { b.cells[row*b.Cols+col] = v }

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]uint8, len(b.cells))
	copy(cells, b.cells)
	return &Board{Rows: b.Rows, Cols: b.Cols, cells: cells}
}

// Equal reports whether two boards have identical dimensions and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Rows != other.Rows || b.Cols != other.Cols {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// AliveCount returns the number of live cells.
func (b *Board) AliveCount() int {
	n := 0
	for _, v := range b.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Binary reports whether every cell value is 0 or 1.
func (b *Board) Binary() bool {
	for _, v := range b.cells {
		if v > 1 {
			return false
		}
	}
	return true
}

// Hash returns a content hash of the board. Dimensions are mixed in so
// boards of different shapes with the same cell bytes do not collide.
func (b *Board) Hash() [sha256.Size]byte {
	h := sha256.New()
	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(b.Rows))
	binary.LittleEndian.PutUint32(dims[4:8], uint32(b.Cols))
	h.Write(dims[:])
	h.Write(b.cells)
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// Clear fills the board with dead cells.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = 0
	}
}
