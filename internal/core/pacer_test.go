package core

import "testing"

func TestStepPacerClampsTPS(t *testing.T) {
	p := NewStepPacer(0)
	if p.TPS() != minTPS {
		t.Fatalf("TPS = %d, want clamp to %d", p.TPS(), minTPS)
	}
	p.SetTPS(100000)
	if p.TPS() != maxTPS {
		t.Fatalf("TPS = %d, want clamp to %d", p.TPS(), maxTPS)
	}
}

func TestStepPacerSpeedControls(t *testing.T) {
	p := NewStepPacer(30)
	p.Faster()
	if p.TPS() != 60 {
		t.Fatalf("Faster: TPS = %d, want 60", p.TPS())
	}
	p.Slower()
	p.Slower()
	if p.TPS() != 15 {
		t.Fatalf("Slower: TPS = %d, want 15", p.TPS())
	}
}

func TestStepPacerFirstCallSteps(t *testing.T) {
	// The accumulator is primed so a fresh pacer fires immediately.
	p := NewStepPacer(1)
	if !p.ShouldStep() {
		t.Fatal("fresh pacer should allow the first step")
	}
	if p.ShouldStep() {
		t.Fatal("second call within the same instant should wait")
	}
}
