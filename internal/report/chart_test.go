package report

import (
	"bytes"
	"image/png"
	"testing"

	"lifelab/internal/life"
)

func TestAliveChartRendersPNG(t *testing.T) {
	cfg := life.DefaultConfig().WithSeed(17)
	cfg.Rows, cfg.Cols = 16, 16
	cfg.MaxSteps = 20
	engine, err := life.New(cfg, nil)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	if err := engine.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := AliveChart(engine.Stats())
	if err != nil {
		t.Fatalf("AliveChart: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 400 {
		t.Fatalf("chart is %dx%d, want 800x400", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestAliveChartNeedsSamples(t *testing.T) {
	rec := life.Record{AlivePercent: []float64{50}}
	if _, err := AliveChart(rec); err == nil {
		t.Fatal("single-sample record should be rejected")
	}
}
