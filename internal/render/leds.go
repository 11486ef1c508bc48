//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LEDPainter draws a strip frame as dots at the LEDs' physical positions.
type LEDPainter struct {
	points []Point
	radius float32
	floor  uint8
}

// NewLEDPainter prepares a painter for the projected LED positions.
func NewLEDPainter(points []Point, radius float32) *LEDPainter {
	if radius <= 0 {
		radius = 2
	}
	return &LEDPainter{points: points, radius: radius, floor: 18}
}

// Draw paints one dot per LED. Frames shorter than the layout leave the
// remaining LEDs dark.
func (p *LEDPainter) Draw(dst *ebiten.Image, frame []color.RGBA) {
	dst.Fill(color.RGBA{R: 6, G: 6, B: 10, A: 255})
	for i, pt := range p.points {
		var c color.RGBA
		if i < len(frame) {
			c = frame[i]
		}
		vector.DrawFilledCircle(dst, float32(pt.X), float32(pt.Y), p.radius, Lit(c, p.floor), true)
	}
}
