package gravity

import (
	"math"

	"slopelight/internal/core"
)

// Debris is a short-lived fragment of a particle. It rolls like a particle,
// fades while it flies, and never spawns anything.
type Debris struct {
	Body
	Lifetime   float64
	Brightness float64
}

// NewDebris creates a fragment with the given body and hard lifetime.
func NewDebris(body Body, lifetime float64) *Debris {
	return &Debris{Body: body, Lifetime: lifetime, Brightness: 1}
}

func (d *Debris) Kind() Kind   { return KindDebris }
func (d *Debris) State() *Body { return &d.Body }
func (d *Debris) sealed()      {}

func (d *Debris) Tick(dt float64, env *Env) error {
	if err := d.roll(dt, env); err != nil {
		return err
	}
	d.Lifetime -= dt
	d.Brightness *= math.Pow(env.Params.DebrisFadePerSecond, dt)
	return nil
}

func (d *Debris) Alive(length int) bool {
	return d.inBounds(length) && d.TTL >= 0 && d.Lifetime > 0
}

func (d *Debris) Spawn(*core.RNG, *Env) []Entity { return nil }

func (d *Debris) Paint(s core.Strip, env *Env) {
	s.AddHSV(d.Position, d.Hue, 1, clamp(d.Brightness, 0, 1))
}

func (d *Debris) String() string { return describe("D", &d.Body) }
