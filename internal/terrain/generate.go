package terrain

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
)

// GenerateConfig describes a synthetic strip draped over rolling terrain.
type GenerateConfig struct {
	Count     int
	Spacing   float64 // metres between LEDs along x
	Amplitude float64 // peak height in metres
	Roughness float64 // noise frequency per metre
	Octaves   int32
	Seed      int64
}

// DefaultGenerateConfig returns a 300 LED strip at 60 LEDs per metre.
func DefaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Count:     300,
		Spacing:   1.0 / 60,
		Amplitude: 0.4,
		Roughness: 0.6,
		Octaves:   3,
		Seed:      7,
	}
}

// Generate produces a heightmap whose heights follow 1D Perlin noise. The
// same config always yields the same vertices.
func Generate(cfg GenerateConfig) ([]Vertex, error) {
	if cfg.Count < 2 {
		return nil, fmt.Errorf("%w: cannot generate %d vertices", ErrMalformedGeometry, cfg.Count)
	}
	if cfg.Spacing <= 0 {
		return nil, fmt.Errorf("terrain: spacing must be positive, got %v", cfg.Spacing)
	}
	octaves := cfg.Octaves
	if octaves <= 0 {
		octaves = 1
	}
	noise := perlin.NewPerlin(2, 2, octaves, cfg.Seed)
	vs := make([]Vertex, cfg.Count)
	for i := range vs {
		x := float64(i) * cfg.Spacing
		h := cfg.Amplitude * noise.Noise1D(x*cfg.Roughness)
		if math.IsNaN(h) {
			h = 0
		}
		vs[i] = Vertex{Index: i, X: x, Y: -h}
	}
	return vs, nil
}

// Flat returns n colinear vertices spaced one unit apart.
func Flat(n int) []Vertex {
	vs := make([]Vertex, n)
	for i := range vs {
		vs[i] = Vertex{Index: i, X: float64(i)}
	}
	return vs
}
