//go:build ebiten

package app

import (
	"fmt"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifelab/internal/anim"
	"lifelab/internal/core"
	"lifelab/internal/life"
	"lifelab/internal/render"
)

// stagnationTicks is how many consecutive repeated states it takes before
// the viewer flips its palette and pauses.
const stagnationTicks = 60

// Game adapts a simulation engine to the ebiten.Game interface. The
// engine is used in plain-stepper mode; the viewer layers its own cycle
// detector on top to notice stagnation without ending the session.
type Game struct {
	cfg      *Config
	engine   *life.Engine
	detector *life.Detector
	painter  *render.GridPainter
	pacer    *core.StepPacer
	colors   anim.ColorPair

	seed       int64
	paused     bool
	tickOnce   bool
	loopStreak int
	loopLength int
	inverted   bool
}

// New constructs a Game for the provided configuration.
func New(cfg *Config) (*Game, error) {
	g := &Game{
		cfg:     cfg,
		painter: render.NewGridPainter(cfg.Rows, cfg.Cols),
		pacer:   core.NewStepPacer(cfg.TPS),
		colors:  anim.DefaultColors,
	}
	if cfg.RandomColors {
		g.colors = anim.RandomPair(core.NewRNG(cfg.Seed))
	}
	if err := g.Reset(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset replaces the engine with a fresh one for the provided seed.
// Engines are single-use, so restarting means rebuilding.
func (g *Game) Reset(seed int64) error {
	ecfg := life.DefaultConfig().WithSeed(seed)
	ecfg.Rows, ecfg.Cols = g.cfg.Rows, g.cfg.Cols
	ecfg.MaxSteps = math.MaxInt32 // the viewer steps until the user quits
	if g.cfg.Preset != "" {
		board, err := life.PresetBoard(g.cfg.Preset, g.cfg.Rows, g.cfg.Cols, seed)
		if err != nil {
			return err
		}
		ecfg.InitialBoard = board
	}
	engine, err := life.New(ecfg, nil)
	if err != nil {
		return err
	}
	g.engine = engine
	g.detector = life.NewDetector(life.DefaultHistoryDepth, life.CompareCells)
	g.seed = seed
	g.loopStreak = 0
	g.loopLength = 0
	if g.inverted {
		g.colors = g.colors.Invert()
		g.inverted = false
	}
	g.tickOnce = false
	return nil
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.pacer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.pacer.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.pacer.Slower()
	}

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.tickOnce = false
		if err := g.engine.Step(); err != nil {
			return err
		}
		if n, found := g.detector.Observe(g.engine.Board()); found {
			g.loopStreak++
			g.loopLength = n
		} else {
			g.loopStreak = 0
			g.loopLength = 0
		}
		if g.loopStreak >= stagnationTicks && !g.inverted {
			g.colors = g.colors.Invert()
			g.inverted = true
			g.paused = true
		}
	}
	return nil
}

// Draw renders the current board and a one-line stats readout.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.engine.Board(), g.colors.Alive, g.colors.Dead, g.cfg.Scale)

	status := fmt.Sprintf("gen %d  alive %d  %d tps",
		g.engine.StepCount(), g.engine.Board().AliveCount(), g.pacer.TPS())
	if g.loopLength > 0 {
		status += fmt.Sprintf("  loop %d", g.loopLength)
	}
	if g.paused {
		status += "  [paused]"
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, g.colors.Alive)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Cols * g.cfg.Scale, g.cfg.Rows * g.cfg.Scale
}
