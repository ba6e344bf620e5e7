// Package life implements Conway's Game of Life on a toroidal board,
// together with cycle detection and per-run execution statistics.
package life

import "lifelab/internal/core"

// CountNeighbors returns, per cell in row-major order, the number of live
// cells among its eight toroidally wrapped neighbors. Pure function of the
// input board; values are always in [0, 8].
func CountNeighbors(b *core.Board) []uint8 {
	rows, cols := b.Rows, b.Cols
	cells := b.Cells()
	counts := make([]uint8, len(cells))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := uint8(0)
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr := (r + dr + rows) % rows
					nc := (c + dc + cols) % cols
					n += cells[nr*cols+nc]
				}
			}
			counts[r*cols+c] = n
		}
	}
	return counts
}

// Next applies the classical Conway rule: a live cell with two or three
// live neighbors survives, a dead cell with exactly three comes alive,
// everything else dies. Pure function; the input board is not modified.
func Next(b *core.Board, counts []uint8) *core.Board {
	next, _ := core.NewBoard(b.Rows, b.Cols)
	src := b.Cells()
	dst := next.Cells()
	for i, n := range counts {
		alive := src[i] == 1
		if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
			dst[i] = 1
		}
	}
	return next
}

// step advances src into dst in a single fused pass, reusing dst's
// storage. src and dst must share dimensions and must not alias.
func step(src, dst *core.Board) {
	rows, cols := src.Rows, src.Cols
	in := src.Cells()
	out := dst.Cells()
	for r := 0; r < rows; r++ {
		up := ((r - 1 + rows) % rows) * cols
		mid := r * cols
		down := ((r + 1) % rows) * cols
		for c := 0; c < cols; c++ {
			left := (c - 1 + cols) % cols
			right := (c + 1) % cols
			n := in[up+left] + in[up+c] + in[up+right] +
				in[mid+left] + in[mid+right] +
				in[down+left] + in[down+c] + in[down+right]
			alive := in[mid+c] == 1
			out[mid+c] = 0
			if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
				out[mid+c] = 1
			}
		}
	}
}
