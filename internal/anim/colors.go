package anim

import (
	"image/color"

	"lifelab/internal/core"
)

// ColorPair holds the live and dead cell colors for rendering.
type ColorPair struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// DefaultColors is white cells on a black background.
var DefaultColors = ColorPair{
	Alive: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Dead:  color.RGBA{A: 255},
}

var palettes = []ColorPair{
	// green on black
	{Alive: color.RGBA{G: 255, A: 255}, Dead: color.RGBA{A: 255}},
	// blue on near-black blue
	{Alive: color.RGBA{B: 255, A: 255}, Dead: color.RGBA{R: 10, G: 10, B: 30, A: 255}},
	// orange on dark brown
	{Alive: color.RGBA{R: 255, G: 165, A: 255}, Dead: color.RGBA{R: 30, G: 15, B: 5, A: 255}},
	// red on dark red
	{Alive: color.RGBA{R: 255, A: 255}, Dead: color.RGBA{R: 50, A: 255}},
	// white on black
	{Alive: color.RGBA{R: 255, G: 255, B: 255, A: 255}, Dead: color.RGBA{A: 255}},
	// pastel on deep blue
	{Alive: color.RGBA{R: 255, G: 223, B: 186, A: 255}, Dead: color.RGBA{R: 34, G: 34, B: 59, A: 255}},
}

// RandomPair picks one of the predefined stylistic palettes.
func RandomPair(rng *core.RNG) ColorPair {
	return palettes[rng.IntN(len(palettes))]
}

// ComplementaryPair draws a random base color and pairs it with its
// complement.
func ComplementaryPair(rng *core.RNG) ColorPair {
	base := color.RGBA{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
		A: 255,
	}
	comp := color.RGBA{R: 255 - base.R, G: 255 - base.G, B: 255 - base.B, A: 255}
	return ColorPair{Alive: base, Dead: comp}
}

// Invert swaps the live and dead colors.
func (p ColorPair) Invert() ColorPair {
	return ColorPair{Alive: p.Dead, Dead: p.Alive}
}
