package strip

import (
	"math"

	"github.com/crazy3lf/colorconv"
)

// HSVToRGB converts a hue in [0,1) and saturation/value in [0,1] into
// floating point RGB. Hue wraps; saturation and value are clamped.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if math.IsNaN(h) || math.IsNaN(s) || math.IsNaN(v) {
		return 0, 0, 0
	}
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	r8, g8, b8, err := colorconv.HSVToRGB(h*360, clamp01(s), clamp01(v))
	if err != nil {
		return 0, 0, 0
	}
	return float64(r8) / 255, float64(g8) / 255, float64(b8) / 255
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
