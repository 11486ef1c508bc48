package gravity

import (
	"errors"
	"fmt"
	"math"

	"slopelight/internal/core"
	"slopelight/internal/terrain"
)

// ErrInvalidSimulationState reports a body whose state can no longer be
// trusted: a non-finite position or velocity, or a slope lookup that falls
// off the path. The frame loop must stop rather than paint it.
var ErrInvalidSimulationState = errors.New("gravity: invalid simulation state")

// Kind tags the closed set of entity variants.
type Kind uint8

const (
	KindParticle Kind = iota
	KindLauncher
	KindDebris
)

func (k Kind) String() string {
	switch k {
	case KindParticle:
		return "particle"
	case KindLauncher:
		return "launcher"
	case KindDebris:
		return "debris"
	default:
		return "unknown"
	}
}

// Env is everything an entity may consult while ticking, spawning or
// painting. It is passed explicitly on every call.
type Env struct {
	Path    *terrain.Path
	Physics Physics
	Look    Look
	Params  Params
}

// Entity is implemented only by *Particle, *Launcher and *Debris.
type Entity interface {
	Kind() Kind
	State() *Body
	// Tick advances the entity by dt seconds.
	Tick(dt float64, env *Env) error
	// Alive reports whether the entity belongs in the next generation of a
	// strip with length LEDs.
	Alive(length int) bool
	// Spawn returns the entities born this tick. They join the next
	// generation without being ticked.
	Spawn(rng *core.RNG, env *Env) []Entity
	Paint(s core.Strip, env *Env)
	String() string

	sealed()
}

// Body is the state shared by every entity variant.
type Body struct {
	Position float64 // fractional LED index
	Velocity float64
	Hue      float64
	Mass     float64 // sign picks downhill (+) or uphill (-) rolling
	Radius   float64
	TTL      float64 // seconds left while resting
	History  History
}

func (b *Body) inBounds(length int) bool {
	return b.Position >= 0 && b.Position < float64(length)
}

// roll advances the body along the path: teleport-wrap, slope gravity minus
// linear drag, semi-implicit Euler, resting decay and history.
func (b *Body) roll(dt float64, env *Env) error {
	n := env.Path.Len()
	if !finite(b.Position) || !finite(b.Velocity) {
		return fmt.Errorf("%w: pos=%v v=%v before tick", ErrInvalidSimulationState, b.Position, b.Velocity)
	}
	// Off-track bodies reappear at the opposite end. This is a simplification
	// of the track, not a modelled collision.
	if b.Position < 0 {
		b.Position = float64(n - 2)
	}
	if b.Position >= float64(n-1) {
		b.Position = 1
	}

	i := int(math.Floor(b.Position))
	theta, err := env.Path.TangentAngle(i)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSimulationState, err)
	}

	p := env.Physics
	a := p.Gravity*b.Mass*math.Sin(theta) - p.AirResistance/p.ReferenceMass*b.Velocity
	v := b.Velocity + a*dt
	pos := b.Position + v*dt*p.DistanceScale
	if !finite(v) || !finite(pos) {
		return fmt.Errorf("%w: pos=%v v=%v after tick", ErrInvalidSimulationState, pos, v)
	}
	b.Velocity = v
	b.Position = pos

	if math.Abs(b.Velocity) < p.RestingThreshold {
		b.TTL -= dt
	} else {
		b.TTL = p.DefaultTTL
	}
	b.History.Push(b.Position)
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func describe(tag string, b *Body) string {
	return fmt.Sprintf("%s: pos=%.2f v=%.2f h=%.2f", tag, b.Position, b.Velocity, b.Hue)
}
