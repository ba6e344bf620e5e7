// Command lifesim runs a Game of Life simulation headlessly, prints the
// execution record as JSON, and optionally exports the run as an animated
// GIF, an MJPEG AVI, or an alive-percentage chart.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"lifelab/internal/anim"
	"lifelab/internal/core"
	"lifelab/internal/dither"
	"lifelab/internal/life"
	"lifelab/internal/report"
)

func main() {
	rows := flag.Int("rows", 48, "board rows")
	cols := flag.Int("cols", 64, "board columns")
	steps := flag.Int("steps", 200, "maximum generations to run")
	seed := flag.Int64("seed", -1, "seed for reproducible runs; negative draws a fresh one")
	preset := flag.String("preset", "", "initial pattern: block, blinker, glider, or random")
	imagePath := flag.String("image", "", "seed the board from a dithered image instead")
	maxArea := flag.Int("max-area", 64*64, "pixel area budget when dithering the seed image")
	history := flag.Int("history", life.DefaultHistoryDepth, "cycle detector window bound")
	useHashes := flag.Bool("hash", false, "compare board hashes instead of cells (faster, collision-risked)")
	gifPath := flag.String("gif", "", "write the run as an animated GIF to this path")
	aviPath := flag.String("avi", "", "write the run as an MJPEG AVI to this path")
	chartPath := flag.String("chart", "", "write an alive-percentage PNG chart to this path")
	scale := flag.Int("cell-size", 4, "pixel size per cell in exported frames")
	fps := flag.Int("fps", 10, "frame rate for exported animations")
	interval := flag.Int("interval", 1, "capture every Nth step in exported animations")
	randomColors := flag.Bool("random-colors", false, "use a random complementary color pair")
	verbose := flag.Bool("v", false, "log each simulation step")
	flag.Parse()

	if *fps < 1 {
		*fps = 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := life.DefaultConfig()
	cfg.Rows, cfg.Cols = *rows, *cols
	cfg.MaxSteps = *steps
	cfg.HistoryDepth = *history
	if *useHashes {
		cfg.Compare = life.CompareHashes
	}
	if *seed >= 0 {
		cfg = cfg.WithSeed(*seed)
	}

	switch {
	case *imagePath != "":
		res, err := dither.Open(*imagePath, dither.Options{
			MaxArea:   *maxArea,
			Algorithm: dither.AlgorithmFloydSteinberg,
		})
		if err != nil {
			logger.Error("dithering seed image failed", slog.String("path", *imagePath), slog.String("error", err.Error()))
			os.Exit(1)
		}
		board, err := res.BinaryCells()
		if err != nil {
			logger.Error("seed image not binarizable", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("board seeded from image",
			slog.String("path", *imagePath),
			slog.Int("rows", board.Rows),
			slog.Int("cols", board.Cols),
			slog.String("hash", res.Meta.Hash))
		cfg.Rows, cfg.Cols = board.Rows, board.Cols
		cfg.InitialBoard = board
	case *preset != "":
		presetSeed := *seed
		if presetSeed < 0 {
			presetSeed = core.DrawSeed()
		}
		board, err := life.PresetBoard(*preset, *rows, *cols, presetSeed)
		if err != nil {
			logger.Error("building preset board failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg.InitialBoard = board
	}

	engine, err := life.New(cfg, logger)
	if err != nil {
		logger.Error("engine construction failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var recorder *anim.Recorder
	if *gifPath != "" || *aviPath != "" {
		recorder = anim.NewRecorder(*interval)
		recorder.Capture(engine.Board())
		engine.Subscribe(recorder)
	}

	if err := engine.Run(); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rec := engine.Stats()
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		logger.Error("encoding record failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))

	colors := anim.DefaultColors
	if *randomColors {
		colors = anim.ComplementaryPair(core.NewRNG(rec.Seed))
	}

	if *gifPath != "" {
		f, err := os.Create(*gifPath)
		if err != nil {
			logger.Error("creating gif failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		encErr := recorder.EncodeGIF(f, anim.GIFOptions{
			Colors:  colors,
			Scale:   *scale,
			DelayMS: 1000 / *fps,
		})
		if closeErr := f.Close(); encErr == nil {
			encErr = closeErr
		}
		if encErr != nil {
			logger.Error("encoding gif failed", slog.String("error", encErr.Error()))
			os.Exit(1)
		}
		logger.Info("gif written", slog.String("path", *gifPath), slog.Int("frames", recorder.Len()))
	}

	if *aviPath != "" {
		if err := recorder.EncodeAVI(*aviPath, anim.AVIOptions{
			Colors: colors,
			Scale:  *scale,
			FPS:    *fps,
		}); err != nil {
			logger.Error("encoding avi failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("avi written", slog.String("path", *aviPath), slog.Int("frames", recorder.Len()))
	}

	if *chartPath != "" {
		data, err := report.AliveChart(rec)
		if err != nil {
			logger.Error("rendering chart failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := os.WriteFile(*chartPath, data, 0o644); err != nil {
			logger.Error("writing chart failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("chart written", slog.String("path", *chartPath))
	}
}
