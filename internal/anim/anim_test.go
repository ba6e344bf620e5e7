package anim

import (
	"bytes"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"lifelab/internal/core"
	"lifelab/internal/life"
)

func TestRecorderCaptureInterval(t *testing.T) {
	cfg := life.DefaultConfig().WithSeed(8)
	cfg.Rows, cfg.Cols = 8, 8
	engine, err := life.New(cfg, nil)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}

	rec := NewRecorder(3)
	engine.Subscribe(rec)
	for i := 0; i < 10; i++ {
		if err := engine.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	// Steps 3, 6, and 9 are captured.
	if rec.Len() != 3 {
		t.Fatalf("captured %d frames, want 3", rec.Len())
	}
}

func TestRecorderCopiesFrames(t *testing.T) {
	rec := NewRecorder(1)
	b, _ := core.NewBoard(4, 4)
	rec.Capture(b)
	b.Set(0, 0, 1)
	if rec.Frames()[0].Get(0, 0) != 0 {
		t.Fatal("recorded frame must be a snapshot, not a reference")
	}
}

func TestEncodeGIFRoundTrip(t *testing.T) {
	rec := NewRecorder(1)
	a, _ := core.NewBoard(6, 5)
	a.Set(1, 1, 1)
	b, _ := core.NewBoard(6, 5)
	b.Set(2, 2, 1)
	rec.Capture(a)
	rec.Capture(b)

	var buf bytes.Buffer
	if err := rec.EncodeGIF(&buf, GIFOptions{Scale: 2, DelayMS: 100}); err != nil {
		t.Fatalf("EncodeGIF: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decoding produced gif: %v", err)
	}
	if len(decoded.Image) != 2 {
		t.Fatalf("gif has %d frames, want 2", len(decoded.Image))
	}
	bounds := decoded.Image[0].Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 12 {
		t.Fatalf("frame is %dx%d, want 10x12", bounds.Dx(), bounds.Dy())
	}
	if decoded.Delay[0] != 10 {
		t.Fatalf("delay = %d, want 10 hundredths", decoded.Delay[0])
	}
}

func TestEncodeGIFNoFrames(t *testing.T) {
	rec := NewRecorder(1)
	if err := rec.EncodeGIF(&bytes.Buffer{}, GIFOptions{}); !errors.Is(err, ErrNoFrames) {
		t.Fatalf("want ErrNoFrames, got %v", err)
	}
}

func TestEncodeAVIWritesFile(t *testing.T) {
	rec := NewRecorder(1)
	for i := 0; i < 3; i++ {
		b, _ := core.NewBoard(8, 8)
		b.Set(i, i, 1)
		rec.Capture(b)
	}

	path := filepath.Join(t.TempDir(), "run.avi")
	if err := rec.EncodeAVI(path, AVIOptions{Scale: 4, FPS: 10}); err != nil {
		t.Fatalf("EncodeAVI: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("avi file is empty")
	}
}

func TestComplementaryPair(t *testing.T) {
	pair := ComplementaryPair(core.NewRNG(5))
	if pair.Alive.R+pair.Dead.R != 255 ||
		pair.Alive.G+pair.Dead.G != 255 ||
		pair.Alive.B+pair.Dead.B != 255 {
		t.Fatalf("colors are not complementary: %+v", pair)
	}
}

func TestInvert(t *testing.T) {
	pair := DefaultColors
	inverted := pair.Invert()
	if inverted.Alive != pair.Dead || inverted.Dead != pair.Alive {
		t.Fatal("Invert must swap the pair")
	}
	if inverted.Invert() != pair {
		t.Fatal("double inversion must restore the pair")
	}
}

func TestRandomPairIsSeeded(t *testing.T) {
	a := RandomPair(core.NewRNG(42))
	b := RandomPair(core.NewRNG(42))
	if a != b {
		t.Fatal("same seed must select the same palette")
	}
}
