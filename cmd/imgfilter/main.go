// Command imgfilter applies the grayscale/dithering filter to an image
// and writes the processed result plus its metadata.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"lifelab/internal/dither"
)

// levelRange validates the light correction bounds before they are
// narrowed to bytes, so out-of-range flag values fail loudly instead of
// wrapping around.
func levelRange(low, high int) (uint8, uint8, error) {
	if low < 0 || low > 255 || high < 0 || high > 255 {
		return 0, 0, fmt.Errorf("light correction bounds must be within [0, 255], got (%d, %d)", low, high)
	}
	return uint8(low), uint8(high), nil
}

func main() {
	out := flag.String("o", "processed.png", "output image path")
	maxArea := flag.Int("max-area", dither.DefaultMaxArea, "pixel area budget for the resized image")
	low := flag.Int("level-low", dither.DefaultLevelLow, "lower bound of the light correction range")
	high := flag.Int("level-high", dither.DefaultLevelHigh, "upper bound of the light correction range")
	floyd := flag.Bool("floyd-steinberg", false, "apply Floyd-Steinberg dithering instead of banding")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <image>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	lo, hi, err := levelRange(*low, *high)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := dither.Options{
		MaxArea:   *maxArea,
		LevelLow:  lo,
		LevelHigh: hi,
	}
	if *floyd {
		opts.Algorithm = dither.AlgorithmFloydSteinberg
	}

	res, err := dither.Open(flag.Arg(0), opts)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, res.Processed); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	meta, err := json.MarshalIndent(res.Meta, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(meta))
}
