package gravity

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"slopelight/internal/core"
	"slopelight/internal/terrain"
)

// LaunchListener is told about every launcher that fires.
type LaunchListener interface {
	Launched(pos, hue float64)
}

// World owns the current generation of entities on one strip path.
type World struct {
	cfg  Config
	path *terrain.Path
	env  Env

	valleys []int
	peaks   []int

	entities []Entity
	rng      *core.RNG
	age      float64
	listener LaunchListener
}

// New returns a gravity world on the path using the default configuration.
func New(path *terrain.Path) (*World, error) {
	return NewWithConfig(path, DefaultConfig())
}

// NewWithConfig returns a world configured from the provided options. The
// path is smoothed once to choose launcher sites.
func NewWithConfig(path *terrain.Path, cfg Config) (*World, error) {
	if path == nil {
		return nil, fmt.Errorf("%w: nil path", terrain.ErrMalformedGeometry)
	}
	cfg.sanitize()
	valleys, peaks, err := terrain.FindExtrema(path, cfg.Params.SmoothWindow, cfg.Params.SmoothOrder)
	if err != nil {
		return nil, fmt.Errorf("gravity: place launchers: %w", err)
	}
	w := &World{
		cfg:     cfg,
		path:    path,
		valleys: valleys,
		peaks:   peaks,
	}
	w.syncEnv()
	w.Reset(0)
	return w, nil
}

func (w *World) syncEnv() {
	w.env = Env{Path: w.path, Physics: w.cfg.Physics, Look: w.cfg.Look, Params: w.cfg.Params}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "gravity" }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Path returns the strip geometry.
func (w *World) Path() *terrain.Path { return w.path }

// Age returns the simulated seconds since the last reset.
func (w *World) Age() float64 { return w.age }

// Valleys returns the LED indices that carry valley launchers.
func (w *World) Valleys() []int { return slices.Clone(w.valleys) }

// Peaks returns the LED indices that carry peak launchers.
func (w *World) Peaks() []int { return slices.Clone(w.peaks) }

// Entities returns a copy of the current generation in paint order.
func (w *World) Entities() []Entity { return slices.Clone(w.entities) }

// SetLaunchListener registers l to hear about launches. A nil l disables it.
func (w *World) SetLaunchListener(l LaunchListener) { w.listener = l }

// Reset rebuilds the launcher set with a fresh RNG. A zero seed falls back to
// the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.age = 0
	w.entities = w.entities[:0]
	p := w.cfg.Params
	for _, idx := range w.valleys {
		w.entities = append(w.entities, w.newLauncher(float64(idx), RoleValley, p.ValleyHue, p.ValleyMass, p.ValleyRadius))
	}
	for _, idx := range w.peaks {
		w.entities = append(w.entities, w.newLauncher(float64(idx), RolePeak, p.PeakHue, p.PeakMass, p.PeakRadius))
	}
}

func (w *World) newLauncher(pos float64, role Role, hue, mass, radius float64) *Launcher {
	p := w.cfg.Params
	return &Launcher{
		Body: Body{
			Position: pos,
			Hue:      hue,
			Mass:     mass,
			Radius:   radius,
			TTL:      w.cfg.Physics.DefaultTTL,
		},
		Role:        role,
		Cooldown:    p.FireRate * w.rng.Uniform(0.5, 1),
		FireRate:    p.FireRate,
		LaunchSpeed: p.LaunchSpeed,
		ParticleTTL: p.ParticleTTL,
	}
}

// Add appends entities to the current generation. They are ticked from the
// next Step on.
func (w *World) Add(es ...Entity) { w.entities = append(w.entities, es...) }

// Step advances every entity by dt seconds and replaces the live set with
// the next generation.
func (w *World) Step(dt float64) error {
	if !finite(dt) || dt < 0 {
		return fmt.Errorf("%w: frame delta %v", ErrInvalidSimulationState, dt)
	}
	w.age += dt
	w.spawn(dt)

	slices.SortStableFunc(w.entities, func(a, b Entity) int {
		return cmp.Compare(a.State().Position, b.State().Position)
	})

	length := w.path.Len()
	current := w.entities
	next := make([]Entity, 0, len(current)+2)
	for _, e := range current {
		if err := e.Tick(dt, &w.env); err != nil {
			return fmt.Errorf("gravity: %s %s: %w", e.Kind(), e, err)
		}
		if e.Alive(length) {
			next = append(next, e)
		}
		born := e.Spawn(w.rng, &w.env)
		if len(born) == 0 {
			continue
		}
		if e.Kind() == KindLauncher && w.listener != nil {
			b := e.State()
			w.listener.Launched(b.Position, b.Hue)
		}
		next = append(next, born...)
	}
	w.entities = next
	return nil
}

// spawn injects particles at the strip ends at EdgeSpawnRate per second.
func (w *World) spawn(dt float64) {
	p := w.cfg.Params
	if p.EdgeSpawnRate <= 0 {
		return
	}
	if w.rng.Float64() >= p.EdgeSpawnRate*dt {
		return
	}
	pos, dir := 1.0, 1.0
	if w.rng.Bool() {
		pos, dir = float64(w.path.Len()-2), -1
	}
	body := Body{
		Position: pos,
		Velocity: dir * w.rng.Uniform(p.LaunchSpeed/2, p.LaunchSpeed),
		Hue:      w.rng.Float64(),
		Mass:     1,
		Radius:   1,
		TTL:      w.cfg.Physics.DefaultTTL,
	}
	w.entities = append(w.entities, NewParticle(body, p.EdgeSpawnTTL))
}

// SpawnManual injects a test particle with a random direction and hue.
func (w *World) SpawnManual() {
	p := w.cfg.Params
	pos := math.Max(math.Min(p.ManualPosition, float64(w.path.Len()-2)), 0)
	body := Body{
		Position: pos,
		Velocity: w.rng.Uniform(-p.ManualSpeed, p.ManualSpeed),
		Hue:      w.rng.Float64(),
		Mass:     1,
		Radius:   1,
		TTL:      w.cfg.Physics.DefaultTTL,
	}
	w.Add(NewParticle(body, p.ManualTTL))
}

// Describe returns one line per live entity.
func (w *World) Describe() []string {
	out := make([]string, len(w.entities))
	for i, e := range w.entities {
		out[i] = e.String()
	}
	return out
}

// Paint draws every entity additively in generation order.
func (w *World) Paint(s core.Strip) {
	for _, e := range w.entities {
		e.Paint(s, &w.env)
	}
}

func init() {
	core.Register("gravity", func(path *terrain.Path, cfg map[string]string) (core.Sim, error) {
		w, err := NewWithConfig(path, FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return w, nil
	})
}
