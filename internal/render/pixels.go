package render

import (
	"image/color"
	"math"

	"slopelight/internal/terrain"
)

// Point is a screen-space position in pixels.
type Point struct {
	X, Y float64
}

// Project fits the path into a w*h viewport with pad pixels of margin on
// every side, keeping the aspect ratio. Screen y grows downward like the
// heightmap's, so no flip is needed.
func Project(path *terrain.Path, w, h, pad float64) []Point {
	vs := path.Vertices()
	out := make([]Point, len(vs))
	minX, minY, maxX, maxY := path.Bounds()
	spanX, spanY := maxX-minX, maxY-minY
	availW, availH := math.Max(w-2*pad, 0), math.Max(h-2*pad, 0)

	scale := math.Inf(1)
	if spanX > 0 {
		scale = availW / spanX
	}
	if spanY > 0 {
		scale = math.Min(scale, availH/spanY)
	}
	if math.IsInf(scale, 1) {
		scale = 0
	}
	offX := pad + (availW-spanX*scale)/2
	offY := pad + (availH-spanY*scale)/2
	for i, v := range vs {
		out[i] = Point{X: offX + (v.X-minX)*scale, Y: offY + (v.Y-minY)*scale}
	}
	return out
}

// Cells rounds projected points onto a character grid.
func Cells(points []Point) [][2]int {
	out := make([][2]int, len(points))
	for i, p := range points {
		out[i] = [2]int{int(math.Round(p.X)), int(math.Round(p.Y))}
	}
	return out
}

// Lit applies a brightness floor so dark LEDs remain visible as outlines on
// screen. Fully black pixels map to the floor grey.
func Lit(c color.RGBA, floor uint8) color.RGBA {
	return color.RGBA{R: max(c.R, floor), G: max(c.G, floor), B: max(c.B, floor), A: 255}
}

// ElevationColor maps t in [0,1] from deep blue through green to snow.
func ElevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
