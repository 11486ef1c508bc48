//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"slopelight/internal/core"
	"slopelight/internal/render"
	"slopelight/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type extremaProvider interface {
	Valleys() []int
	Peaks() []int
}

// Overlay draws optional debugging visuals on top of the strip view.
type Overlay struct {
	sim    core.Sim
	points []render.Point
	shade  []float64

	showPath    bool
	showExtrema bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the projected path.
func NewOverlay(path *terrain.Path, points []render.Point, sim core.Sim) *Overlay {
	o := &Overlay{sim: sim, points: points, showExtrema: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)

	heights := path.Heights()
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, h := range heights {
		lo, hi = math.Min(lo, h), math.Max(hi, h)
	}
	o.shade = make([]float64, len(heights))
	if hi > lo {
		for i, h := range heights {
			o.shade[i] = (h - lo) / (hi - lo)
		}
	}
	return o
}

// Update toggles overlay layers: 1 for the path, 2 for launcher sites.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showPath = !o.showPath
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showExtrema = !o.showExtrema
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showPath {
		for i := 1; i < len(o.points); i++ {
			a, b := o.points[i-1], o.points[i]
			o.drawLine(screen, a.X, a.Y, b.X, b.Y, 1, render.ElevationColor(o.shade[i]))
		}
	}
	if !o.showExtrema {
		return
	}
	provider, ok := o.sim.(extremaProvider)
	if !ok {
		return
	}
	for _, idx := range provider.Valleys() {
		o.drawMarker(screen, idx, 8, color.RGBA{R: 90, G: 120, B: 255, A: 200})
	}
	for _, idx := range provider.Peaks() {
		o.drawMarker(screen, idx, -8, color.RGBA{R: 255, G: 90, B: 70, A: 200})
	}
}

// drawMarker places a small tick offset dy pixels from LED idx.
func (o *Overlay) drawMarker(screen *ebiten.Image, idx int, dy float64, col color.RGBA) {
	if idx < 0 || idx >= len(o.points) {
		return
	}
	p := o.points[idx]
	o.drawLine(screen, p.X, p.Y+dy*0.5, p.X, p.Y+dy, 2, col)
	o.drawPoint(screen, p.X, p.Y+dy, 4, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
