package render

import (
	"image"
	"image/color"

	"lifelab/internal/core"
)

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
// buf must hold 4 bytes per cell.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// BoardRGBA draws a board into a fresh RGBA image, expanding each cell to
// a scale x scale pixel block.
func BoardRGBA(b *core.Board, on, off color.Color, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, b.Cols*scale, b.Rows*scale))
	if scale == 1 {
		FillBinaryRGBA(img.Pix, b.Cells(), on, off)
		return img
	}

	row := make([]byte, 4*b.Cols)
	for r := 0; r < b.Rows; r++ {
		FillBinaryRGBA(row, b.Cells()[r*b.Cols:(r+1)*b.Cols], on, off)
		for y := r * scale; y < (r+1)*scale; y++ {
			dst := img.Pix[y*img.Stride:]
			for c := 0; c < b.Cols; c++ {
				src := row[c*4 : c*4+4]
				for x := c * scale; x < (c+1)*scale; x++ {
					copy(dst[x*4:x*4+4], src)
				}
			}
		}
	}
	return img
}
