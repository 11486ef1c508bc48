package gravity

import "slopelight/internal/core"

// Role records which terrain feature a launcher was placed on.
type Role uint8

const (
	RoleValley Role = iota
	RolePeak
)

// Launcher sits still and periodically fires a pair of particles in opposite
// directions. Launchers never die.
type Launcher struct {
	Body
	Role        Role
	Cooldown    float64
	FireRate    float64
	LaunchSpeed float64
	ParticleTTL float64
}

func (l *Launcher) Kind() Kind   { return KindLauncher }
func (l *Launcher) State() *Body { return &l.Body }
func (l *Launcher) sealed()      {}

// Tick only counts down the cooldown.
func (l *Launcher) Tick(dt float64, _ *Env) error {
	l.Cooldown -= dt
	return nil
}

func (l *Launcher) Alive(int) bool { return true }

// Spawn fires once the cooldown has gone negative and re-arms it with a
// jittered interval in [FireRate/2, FireRate).
func (l *Launcher) Spawn(rng *core.RNG, env *Env) []Entity {
	if l.Cooldown >= 0 {
		return nil
	}
	l.Cooldown = l.FireRate * rng.Uniform(0.5, 1)
	speed := rng.Uniform(l.LaunchSpeed/2, l.LaunchSpeed)
	out := make([]Entity, 0, 2)
	for _, dir := range [2]float64{1, -1} {
		body := Body{
			Position: l.Position,
			Velocity: dir * speed,
			Hue:      l.Hue,
			Mass:     l.Mass,
			Radius:   l.Radius,
			TTL:      env.Physics.DefaultTTL,
		}
		out = append(out, NewParticle(body, l.ParticleTTL))
	}
	return out
}

func (l *Launcher) Paint(s core.Strip, env *Env) {
	s.AddHSV(l.Position, l.Hue, 1, env.Look.LauncherBrightness)
}

func (l *Launcher) String() string { return describe("L", &l.Body) }
