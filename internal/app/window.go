//go:build ebiten

package app

import (
	"errors"

	"cellm/internal/core"
	"cellm/internal/engine"
	"cellm/internal/render"
	"cellm/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowSupported reports whether this build can open a window.
const WindowSupported = true

const (
	hudWidth = 220
	maxTPS   = 240
)

// Game adapts a Processor to the ebiten.Game interface.
type Game struct {
	proc    *engine.Processor
	setup   Setup
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	ticker  *core.FixedStep

	cell     int
	tps      int
	paused   bool
	tickOnce bool
}

// NewGame constructs a Game for the provided processor.
func NewGame(p *engine.Processor, setup Setup, tps int, title string) *Game {
	if tps <= 0 {
		tps = NewConfig().TPS
	}
	size := p.Size()
	rr := p.RenderRules()
	palette := render.Palette(rr, p.RuleSet().States())
	return &Game{
		proc:    p,
		setup:   setup,
		painter: render.NewGridPainter(size.W, size.H, palette),
		overlay: ui.NewOverlay(size, rr.CellSize),
		hud:     ui.NewHUD(p, title, hudWidth),
		ticker:  core.NewFixedStep(tps),
		cell:    rr.CellSize,
		tps:     tps,
	}
}

// Update handles input and advances the rules once per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := Populate(g.proc, g.setup); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setTPS(g.tps * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setTPS(g.tps / 2)
	}

	due := g.ticker.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		if err := g.proc.Step(); err != nil {
			return err
		}
	}
	g.hud.Update()
	return nil
}

func (g *Game) setTPS(tps int) {
	if tps < 1 {
		tps = 1
	}
	if tps > maxTPS {
		tps = maxTPS
	}
	g.tps = tps
	g.ticker.SetTPS(tps)
}

// Draw renders the grid, the grid lines and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.proc.Cells(), g.cell)
	g.overlay.Draw(screen)
	size := g.proc.Size()
	g.hud.Draw(screen, size.W*g.cell, size.H*g.cell)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.proc.Size()
	return s.W*g.cell + g.hud.Width(), s.H * g.cell
}

// RunWindow opens a window and runs p until it is closed.
func RunWindow(p *engine.Processor, setup Setup, tps int, title string) error {
	game := NewGame(p, setup, tps, title)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("cellm: " + title)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
