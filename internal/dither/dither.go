// Package dither prepares images for binary display: it resizes to a
// bounded pixel area, grayscales, rescales intensity, and quantizes either
// into gray bands or to pure black/white via Floyd-Steinberg error
// diffusion. The result carries a content-and-parameter hash.
package dither

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"lifelab/internal/core"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Algorithm names the quantization stage applied after level correction.
type Algorithm string

const (
	// AlgorithmBanding quantizes into fixed-width grayscale bands.
	AlgorithmBanding Algorithm = ""
	// AlgorithmFloydSteinberg thresholds each pixel to black/white and
	// diffuses the quantization error to unprocessed neighbors.
	AlgorithmFloydSteinberg Algorithm = "floyd_steinberg"
)

const (
	// DefaultMaxArea bounds the resized image to roughly 256x256 pixels.
	DefaultMaxArea = 256 * 256
	// Default light-correction output range.
	DefaultLevelLow  = 20
	DefaultLevelHigh = 235

	bandWidth = 32
	threshold = 127
)

// Options parameterizes one filter application. The zero value selects
// the defaults with banding quantization.
type Options struct {
	// MaxArea bounds the resized pixel area. Zero means DefaultMaxArea.
	MaxArea int
	// LevelLow and LevelHigh bound the linear intensity rescale.
	// Both zero means the default range [20, 235].
	LevelLow  uint8
	LevelHigh uint8
	Algorithm Algorithm
}

func (o Options) withDefaults() Options {
	if o.MaxArea <= 0 {
		o.MaxArea = DefaultMaxArea
	}
	if o.LevelHigh <= o.LevelLow {
		o.LevelLow = DefaultLevelLow
		o.LevelHigh = DefaultLevelHigh
	}
	return o
}

// ImageError wraps a load or processing failure with the stage it
// occurred in. No partial result accompanies one.
type ImageError struct {
	Op  string
	Err error
}

func (e *ImageError) Error() string { return fmt.Sprintf("image %s: %v", e.Op, e.Err) }
func (e *ImageError) Unwrap() error { return e.Err }

// Meta describes how a Result was produced.
type Meta struct {
	OriginalWidth  int      `json:"original_width"`
	OriginalHeight int      `json:"original_height"`
	ResizedWidth   int      `json:"resized_width"`
	ResizedHeight  int      `json:"resized_height"`
	OriginalPixels int      `json:"original_pixel_count"`
	ResizedPixels  int      `json:"resized_pixel_count"`
	FilterSteps    []string `json:"filter_steps"`
	Hash           string   `json:"hash"`
}

// Result bundles the source image, the processed grayscale image, and the
// run's metadata.
type Result struct {
	Original  image.Image
	Processed *image.Gray
	Meta      Meta
}

// NewDimensions computes resized dimensions whose total pixel area is
// close to maxArea while preserving the source aspect ratio.
func NewDimensions(width, height, maxArea int) (int, int) {
	aspect := float64(width) / float64(height)
	newH := int(math.Sqrt(float64(maxArea) / aspect))
	if newH < 1 {
		newH = 1
	}
	newW := maxArea / newH
	if newW < 1 {
		newW = 1
	}
	return newW, newH
}

// Open decodes the image at path and applies the filter.
func Open(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageError{Op: "open", Err: err}
	}
	defer f.Close()
	return Decode(f, opts)
}

// Decode decodes an image from r and applies the filter.
func Decode(r io.Reader, opts Options) (*Result, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &ImageError{Op: "decode", Err: err}
	}
	return Apply(img, opts), nil
}

// Apply runs the filter stages in order: resize, grayscale, linear level
// correction, then banding or error diffusion, and hashes the output.
func Apply(img image.Image, opts Options) *Result {
	opts = opts.withDefaults()
	bounds := img.Bounds()
	ow, oh := bounds.Dx(), bounds.Dy()
	nw, nh := NewDimensions(ow, oh, opts.MaxArea)

	resized := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, xdraw.Src, nil)

	// Grayscale into a float workspace, tracking the observed range.
	pix := make([]float32, nw*nh)
	lo, hi := float32(255), float32(0)
	for y := 0; y < nh; y++ {
		for x := 0; x < nw; x++ {
			g := color.GrayModel.Convert(resized.At(x, y)).(color.Gray)
			v := float32(g.Y)
			pix[y*nw+x] = v
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}

	// Rescale observed [lo, hi] linearly into the requested range.
	outLo := float32(opts.LevelLow)
	outHi := float32(opts.LevelHigh)
	scale := float32(0)
	if hi > lo {
		scale = (outHi - outLo) / (hi - lo)
	}
	for i, v := range pix {
		pix[i] = outLo + (v-lo)*scale
	}

	steps := []string{"grayscale", "level correction"}
	processed := image.NewGray(image.Rect(0, 0, nw, nh))
	if opts.Algorithm == AlgorithmFloydSteinberg {
		diffuse(pix, nw, nh)
		steps = append(steps, string(AlgorithmFloydSteinberg))
	} else {
		for i, v := range pix {
			pix[i] = float32(int(v/bandWidth) * bandWidth)
		}
		steps = append(steps, "banding")
	}
	for i, v := range pix {
		processed.Pix[i] = uint8(clamp(v))
	}

	return &Result{
		Original:  img,
		Processed: processed,
		Meta: Meta{
			OriginalWidth:  ow,
			OriginalHeight: oh,
			ResizedWidth:   nw,
			ResizedHeight:  nh,
			OriginalPixels: ow * oh,
			ResizedPixels:  nw * nh,
			FilterSteps:    steps,
			Hash:           hashResult(processed, opts),
		},
	}
}

// diffuse applies Floyd-Steinberg error diffusion in row-major order:
// 7/16 right, 3/16 below-left, 5/16 below, 1/16 below-right, each only
// when in bounds.
func diffuse(pix []float32, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			old := pix[i]
			var quantized float32
			if old > threshold {
				quantized = 255
			}
			pix[i] = quantized
			err := old - quantized
			if x+1 < w {
				pix[i+1] += err * 7 / 16
			}
			if y+1 < h {
				if x > 0 {
					pix[i+w-1] += err * 3 / 16
				}
				pix[i+w] += err * 5 / 16
				if x+1 < w {
					pix[i+w+1] += err * 1 / 16
				}
			}
		}
	}
}

func clamp(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// hashResult digests the processed pixel bytes followed by every filter
// parameter serialized as key:value in key order, so identical inputs and
// parameters always produce the same hash and any parameter change
// changes it.
func hashResult(processed *image.Gray, opts Options) string {
	params := map[string]string{
		"max_area":               strconv.Itoa(opts.MaxArea),
		"light_correction_range": fmt.Sprintf("(%d,%d)", opts.LevelLow, opts.LevelHigh),
		"dithering_algorithm":    string(opts.Algorithm),
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	h.Write(processed.Pix)
	for _, k := range keys {
		h.Write([]byte(k + ":" + params[k]))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// BinaryCells converts a fully binarized processed image into a 0/1 board
// suitable for seeding a simulation. Dark pixels become live cells. Only
// Floyd-Steinberg output qualifies; banded images are rejected.
func (r *Result) BinaryCells() (*core.Board, error) {
	w, h := r.Meta.ResizedWidth, r.Meta.ResizedHeight
	b, err := core.NewBoard(h, w)
	if err != nil {
		return nil, &ImageError{Op: "binarize", Err: err}
	}
	cells := b.Cells()
	for i, v := range r.Processed.Pix {
		switch v {
		case 0:
			cells[i] = 1
		case 255:
			cells[i] = 0
		default:
			return nil, &ImageError{Op: "binarize",
				Err: fmt.Errorf("pixel %d has value %d, want 0 or 255", i, v)}
		}
	}
	return b, nil
}
