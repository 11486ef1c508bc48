package heightmap

import (
	"fmt"
	"math"
	"strconv"

	"slopelight/internal/core"
	"slopelight/internal/terrain"
)

// Config holds parameters for the heightmap pattern.
type Config struct {
	// Drift rotates every hue by this many turns per second.
	Drift      float64
	Brightness float64
}

// DefaultConfig returns a static, full-brightness map.
func DefaultConfig() Config {
	return Config{Drift: 0, Brightness: 1}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["drift"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			c.Drift = parsed
		}
	}
	if v, ok := cfg["brightness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Brightness = parsed
		}
	}
	return c
}

// Heightmap colours each LED by its vertical position on the path, which
// makes a freshly measured layout easy to verify by eye.
type Heightmap struct {
	cfg    Config
	hues   []float64
	offset float64
}

// New precomputes the per-LED hues for path.
func New(path *terrain.Path, cfg Config) (*Heightmap, error) {
	if path == nil {
		return nil, fmt.Errorf("%w: nil path", terrain.ErrMalformedGeometry)
	}
	return &Heightmap{cfg: cfg, hues: Hues(path)}, nil
}

// Hues maps each vertex y onto [0,1] between the path's extremes. A level
// path maps to 0 everywhere.
func Hues(path *terrain.Path) []float64 {
	vs := path.Vertices()
	out := make([]float64, len(vs))
	_, minY, _, maxY := path.Bounds()
	span := maxY - minY
	if span <= 0 {
		return out
	}
	for i, v := range vs {
		out[i] = (v.Y - minY) / span
	}
	return out
}

// Name returns the simulation identifier.
func (h *Heightmap) Name() string { return "heightmap" }

// Reset clears the hue drift.
func (h *Heightmap) Reset(int64) { h.offset = 0 }

// Step advances the hue drift.
func (h *Heightmap) Step(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("heightmap: invalid frame delta %v", dt)
	}
	h.offset = math.Mod(h.offset+h.cfg.Drift*dt, 1)
	return nil
}

// Paint writes one sample per LED.
func (h *Heightmap) Paint(s core.Strip) {
	for i, hue := range h.hues {
		s.AddHSV(float64(i), hue+h.offset, 1, h.cfg.Brightness)
	}
}

// Parameters exposes the pattern's tunables for the HUD.
func (h *Heightmap) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Heightmap",
		Params: []core.Parameter{
			core.IntParam("leds", "LEDs", len(h.hues)),
			core.FloatParam("drift", "Hue drift", h.cfg.Drift),
			core.FloatParam("brightness", "Brightness", h.cfg.Brightness),
		},
	}}}
}

func init() {
	core.Register("heightmap", func(path *terrain.Path, cfg map[string]string) (core.Sim, error) {
		h, err := New(path, FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return h, nil
	})
}
