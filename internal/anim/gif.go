package anim

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"

	"lifelab/internal/core"
)

// ErrNoFrames is returned when exporting a recorder that captured nothing.
var ErrNoFrames = errors.New("no frames recorded")

// GIFOptions controls animated GIF encoding.
type GIFOptions struct {
	Colors ColorPair
	// Scale is the square pixel size of one cell. Below one means 1.
	Scale int
	// DelayMS is the per-frame delay in milliseconds. Zero means 200.
	DelayMS int
}

func (o GIFOptions) normalized() GIFOptions {
	if o.Colors == (ColorPair{}) {
		o.Colors = DefaultColors
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.DelayMS <= 0 {
		o.DelayMS = 200
	}
	return o
}

// EncodeGIF writes the captured frames as a looping animated GIF. Frames
// share a two-color palette, one entry per cell state.
func (r *Recorder) EncodeGIF(w io.Writer, opts GIFOptions) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	opts = opts.normalized()
	palette := color.Palette{opts.Colors.Dead, opts.Colors.Alive}
	delay := opts.DelayMS / 10 // gif delays count hundredths of a second

	out := &gif.GIF{}
	for _, frame := range r.frames {
		out.Image = append(out.Image, palettedFrame(frame, palette, opts.Scale))
		out.Delay = append(out.Delay, delay)
	}
	return gif.EncodeAll(w, out)
}

func palettedFrame(b *core.Board, palette color.Palette, scale int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, b.Cols*scale, b.Rows*scale), palette)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if b.Get(row, col) == 0 {
				continue
			}
			for y := row * scale; y < (row+1)*scale; y++ {
				for x := col * scale; x < (col+1)*scale; x++ {
					img.SetColorIndex(x, y, 1)
				}
			}
		}
	}
	return img
}
