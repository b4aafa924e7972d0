//go:build ebiten

package app

import (
	"image/color"
	"log/slog"

	"graph-forest/internal/core"
	"graph-forest/internal/render"
	"graph-forest/internal/sims/wildfire"
	"graph-forest/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a wildfire World to the ebiten.Game interface. The run ends
// when the tick budget is spent or the window is closed.
type Game struct {
	world   *wildfire.World
	painter *render.GraphPainter
	hud     *ui.HUD
	chart   *ui.Chart
	pacer   *core.FixedStep

	budget   int
	paused   bool
	tickOnce bool
	finished bool
	onFinish func()
}

// New constructs a Game for a reset world. onFinish, when non-nil, runs once
// as soon as the tick budget is exhausted.
func New(s *Setup, o *Options, onFinish func()) *Game {
	w := s.World
	return &Game{
		world:    w,
		painter:  render.NewGraphPainter(w.Graph(), s.Layout, o.Width, o.Height),
		hud:      ui.NewHUD(w, o.HUDWidth),
		pacer:    core.NewFixedStep(o.TPS),
		budget:   w.Config().Ticks,
		onFinish: onFinish,
	}
}

// Finished reports whether the tick budget has been spent.
func (g *Game) Finished() bool { return g.finished }

// Update handles per-frame logic and advances the simulation.
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
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.pacer.SetTPS(g.pacer.TPS() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && g.pacer.TPS() > 1 {
		g.pacer.SetTPS(g.pacer.TPS() - 1)
	}

	w, _ := g.painter.Size()
	g.hud.Update(w)

	if g.finished {
		return nil
	}
	due := g.pacer.ShouldStep()
	if (!g.paused && due) || g.tickOnce {
		g.tickOnce = false
		if err := g.world.Step(); err != nil {
			return err
		}
		if g.world.Tick() >= g.budget {
			g.finish()
		}
	}
	return nil
}

func (g *Game) finish() {
	g.finished = true
	g.chart = ui.NewChart(g.world.History())
	last, _ := g.world.History().Last()
	slog.Info("tick budget spent", "ticks", g.world.Tick(), "burning", last.Burning, "forest", last.Forest, "rock", last.Rock)
	if g.onFinish != nil {
		g.onFinish()
	}
}

// Draw renders the graph, HUD and, once finished, the population chart.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})
	g.painter.Draw(screen, g.world.Intensity(), g.world.Positions())
	w, h := g.painter.Size()
	g.hud.Draw(screen, w, h)
	if g.chart != nil {
		g.chart.Draw(screen, w, h)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w + g.hud.Width(), h
}
