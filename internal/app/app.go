//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"eca-density/internal/automaton"
	"eca-density/internal/core"
	"eca-density/internal/render"
)

// Game adapts an automaton to the ebiten.Game interface, scrolling its
// space-time diagram downwards.
type Game struct {
	eca     *automaton.Automaton
	history *core.SpaceTime
	painter *render.HistoryPainter
	pacer   *core.FixedStep
	logger  *slog.Logger

	onColor    color.Color
	offColor   color.Color
	emptyColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     uint64
}

// New constructs a Game showing rows generations of eca.
func New(eca *automaton.Automaton, rows, scale, sps int, seed uint64, logger *slog.Logger) *Game {
	g := &Game{
		eca:        eca,
		history:    core.NewSpaceTime(eca.Size(), rows),
		painter:    render.NewHistoryPainter(eca.Size(), rows),
		pacer:      core.NewFixedStep(sps),
		logger:     logger,
		onColor:    color.White,
		offColor:   color.Black,
		emptyColor: color.RGBA{R: 24, G: 24, B: 32, A: 255},
		scale:      scale,
	}
	g.Reset(seed)
	return g
}

// Reset installs the configuration drawn from seed and clears the history.
func (g *Game) Reset(seed uint64) {
	g.seed = seed
	g.eca.Randomize(seed)
	g.history.Clear()
	g.history.Push(g.eca.Configuration())
	g.tickOnce = false
	g.logger.Info("reset", "seed", seed, "density", g.eca.Density())
}

// Update handles per-frame logic and advances the automaton.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(uint64(time.Now().UnixNano()))
	}

	if (!g.paused && g.pacer.ShouldStep()) || g.tickOnce {
		g.tickOnce = false
		if err := g.eca.Step(); err != nil {
			return err
		}
		g.history.Push(g.eca.Configuration())
		if g.eca.AllZeros() || g.eca.AllOnes() {
			g.paused = true
			g.logger.Info("converged", "seed", g.seed, "all_ones", g.eca.AllOnes())
		}
	}
	return nil
}

// Draw renders the history.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.history, g.onColor, g.offColor, g.emptyColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.history.W * g.scale, g.history.H * g.scale
}
