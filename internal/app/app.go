//go:build ebiten

package app

import (
	"fmt"
	"image"
	"log"

	"slopelight/internal/core"
	"slopelight/internal/render"
	"slopelight/internal/strip"
	"slopelight/internal/terrain"
	"slopelight/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	viewWidth  = 960
	viewHeight = 360
	hudWidth   = 240
)

// Game adapts a pattern and its strip to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	strip   *strip.Buffer
	sink    *strip.FrameSink
	painter *render.LEDPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	logger  *log.Logger

	watch    *core.Stopwatch
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for sim on path.
func New(sim core.Sim, path *terrain.Path, seed int64, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	sink := &strip.FrameSink{}
	points := render.Project(path, viewWidth, viewHeight, 24)
	return &Game{
		sim:     sim,
		strip:   strip.New(path.Len(), sink),
		sink:    sink,
		painter: render.NewLEDPainter(points, 3),
		overlay: ui.NewOverlay(path, points, sim),
		hud:     ui.NewHUD(sim, hudWidth),
		logger:  logger,
		watch:   core.NewStopwatch(core.WallClock{}, MaxFrameDelta),
		seed:    seed,
	}
}

// Reset reinitializes the pattern with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input, advances the pattern and renders the strip.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if s, ok := g.sim.(core.ManualSpawner); ok {
			s.SpawnManual()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if s, ok := g.sim.(core.Describer); ok {
			for _, line := range s.Describe() {
				g.logger.Print(line)
			}
		}
	}

	g.overlay.Update()
	g.hud.Update(viewWidth)

	dt := g.watch.Lap()
	if g.tickOnce {
		dt = 1 / float64(ebiten.TPS())
	}
	if !g.paused || g.tickOnce {
		if err := g.sim.Step(dt); err != nil {
			return fmt.Errorf("step %s: %w", g.sim.Name(), err)
		}
		g.tickOnce = false
	}
	if err := Render(g.sim, g.strip); err != nil {
		return err
	}
	status := fmt.Sprintf("%.0f fps", ebiten.ActualFPS())
	if g.paused {
		status += "  paused"
	}
	g.hud.SetStatus(status)
	return nil
}

// Draw renders the latest strip frame, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	view := screen.SubImage(image.Rect(0, 0, viewWidth, viewHeight)).(*ebiten.Image)
	g.painter.Draw(view, g.sink.Latest())
	g.overlay.Draw(view)
	g.hud.Draw(screen, viewWidth, viewHeight)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewWidth + hudWidth, viewHeight
}

// WindowSize returns the window size for the given scale.
func WindowSize(scale int) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return (viewWidth + hudWidth) * scale, viewHeight * scale
}
