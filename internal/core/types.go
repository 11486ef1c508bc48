package core

import (
	"sort"

	"slopelight/internal/terrain"
)

//go:generate go tool mockgen -destination=./mocks/strip_mock.go -package=mocks . Strip

// Strip is the addressable LED strip a pattern paints into. Positions are
// fractional pixel indices; samples are blended additively and clamped only
// when the strip transmits.
type Strip interface {
	Len() int
	Clear()
	AddHSV(pos, h, s, v float64)
	AddRGB(pos, r, g, b float64)
	Transmit() error
}

// Sim defines the minimal contract a light pattern must implement.
type Sim interface {
	Name() string
	Reset(seed int64)
	// Step advances the pattern by dt seconds of wall-clock time.
	Step(dt float64) error
	Paint(s Strip)
}

// ManualSpawner is implemented by patterns that accept hand-injected entities.
type ManualSpawner interface {
	SpawnManual()
}

// Describer is implemented by patterns that can dump their live state.
type Describer interface {
	Describe() []string
}

// Factory constructs a Sim on top of the strip geometry using an optional
// configuration map.
type Factory func(path *terrain.Path, cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames returns the registered names in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
