//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifelab/internal/core"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	rows, cols int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a rows x cols board.
func NewGridPainter(rows, cols int) *GridPainter {
	gp := &GridPainter{rows: rows, cols: cols, buf: make([]byte, 4*rows*cols)}
	gp.img = ebiten.NewImage(cols, rows)
	return gp
}

// Blit uploads the board's cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *core.Board, on, off color.Color, scale int) {
	if b.Rows != gp.rows || b.Cols != gp.cols {
		return
	}
	FillBinaryRGBA(gp.buf, b.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the painter's board dimensions.
func (gp *GridPainter) Size() (rows, cols int) { return gp.rows, gp.cols }
