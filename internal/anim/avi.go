package anim

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"lifelab/internal/render"
)

// AVIOptions controls MJPEG AVI encoding.
type AVIOptions struct {
	Colors ColorPair
	// Scale is the square pixel size of one cell. Below one means 1.
	Scale int
	// FPS is the playback frame rate. Zero means 5.
	FPS int
	// Quality is the JPEG quality in [1, 100]. Zero means 90.
	Quality int
}

func (o AVIOptions) normalized() AVIOptions {
	if o.Colors == (ColorPair{}) {
		o.Colors = DefaultColors
	}
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.FPS <= 0 {
		o.FPS = 5
	}
	if o.Quality <= 0 {
		o.Quality = 90
	}
	return o
}

// EncodeAVI writes the captured frames to path as an MJPEG AVI.
func (r *Recorder) EncodeAVI(path string, opts AVIOptions) error {
	if len(r.frames) == 0 {
		return ErrNoFrames
	}
	opts = opts.normalized()
	first := r.frames[0]
	width := int32(first.Cols * opts.Scale)
	height := int32(first.Rows * opts.Scale)

	aw, err := mjpeg.New(path, width, height, int32(opts.FPS))
	if err != nil {
		return fmt.Errorf("create avi writer: %w", err)
	}

	var buf bytes.Buffer
	jpegOpts := &jpeg.Options{Quality: opts.Quality}
	for i, frame := range r.frames {
		buf.Reset()
		img := render.BoardRGBA(frame, opts.Colors.Alive, opts.Colors.Dead, opts.Scale)
		if err := jpeg.Encode(&buf, img, jpegOpts); err != nil {
			aw.Close()
			return fmt.Errorf("encode frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			aw.Close()
			return fmt.Errorf("write frame %d: %w", i, err)
		}
	}
	return aw.Close()
}
