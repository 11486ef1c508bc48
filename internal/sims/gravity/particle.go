package gravity

import (
	"math"

	"slopelight/internal/core"
)

// TrailStride selects every n-th history entry for the fading trail.
const TrailStride = 5

// Particle rolls along the path until it leaves the strip, rests for too
// long, or its own lifetime runs out.
type Particle struct {
	Body
	// Lifetime counts down regardless of motion.
	Lifetime float64

	lifetime0 float64
	burst     bool
}

// NewParticle creates a particle with the given body and hard lifetime.
func NewParticle(body Body, lifetime float64) *Particle {
	return &Particle{Body: body, Lifetime: lifetime, lifetime0: lifetime}
}

func (p *Particle) Kind() Kind   { return KindParticle }
func (p *Particle) State() *Body { return &p.Body }
func (p *Particle) sealed()      {}

func (p *Particle) Tick(dt float64, env *Env) error {
	if err := p.roll(dt, env); err != nil {
		return err
	}
	p.Lifetime -= dt
	return nil
}

func (p *Particle) Alive(length int) bool {
	return p.inBounds(length) && p.TTL >= 0 && p.Lifetime > 0
}

// Spawn bursts a dead particle into debris once, when debris is enabled and
// the particle died on the strip.
func (p *Particle) Spawn(rng *core.RNG, env *Env) []Entity {
	count := env.Params.DebrisPerDeath
	if count <= 0 || p.burst || !p.inBounds(env.Path.Len()) || p.Alive(env.Path.Len()) {
		return nil
	}
	p.burst = true
	out := make([]Entity, 0, count)
	for range count {
		body := Body{
			Position: p.Position,
			Velocity: rng.Uniform(-1, 1) * env.Params.DebrisSpeed,
			Hue:      p.Hue,
			Mass:     p.Mass,
			Radius:   p.Radius,
			TTL:      env.Physics.DefaultTTL,
		}
		out = append(out, NewDebris(body, env.Params.DebrisTTL))
	}
	return out
}

func (p *Particle) Paint(s core.Strip, env *Env) {
	look := env.Look
	speed := math.Min(math.Abs(p.Velocity)/look.FullBrightSpeed, 1)
	life := 1.0
	if p.lifetime0 > 0 {
		life = clamp(p.Lifetime/p.lifetime0, 0, 1)
	}
	value := clamp(life*(0.5+0.5*speed), look.MinBrightness, 1)
	s.AddHSV(p.Position, p.Hue, 1, value)

	n := p.History.Len()
	for i := 0; i < n; i += TrailStride {
		s.AddHSV(p.History.At(i), p.Hue, 1, look.TrailBrightness/float64(n)*float64(i))
	}
}

func (p *Particle) String() string { return describe("P", &p.Body) }
