package gravity

import (
	"slopelight/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	c := w.cfg
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("leds", "LEDs", w.path.Len()),
				core.IntParam("entities", "Entities", len(w.entities)),
				core.IntParam("valleys", "Valley launchers", len(w.valleys)),
				core.IntParam("peaks", "Peak launchers", len(w.peaks)),
			},
		},
		{
			Name: "Physics",
			Params: []core.Parameter{
				core.FloatParam("gravity", "Gravity", c.Physics.Gravity),
				core.FloatParam("air_resistance", "Air resistance", c.Physics.AirResistance),
				core.FloatParam("distance_scale", "Distance scale", c.Physics.DistanceScale),
				core.FloatParam("resting_threshold", "Resting threshold", c.Physics.RestingThreshold),
				core.FloatParam("default_ttl", "Resting TTL", c.Physics.DefaultTTL),
			},
		},
		{
			Name: "Launchers",
			Params: []core.Parameter{
				core.FloatParam("fire_rate", "Fire rate", c.Params.FireRate),
				core.FloatParam("launch_speed", "Launch speed", c.Params.LaunchSpeed),
				core.FloatParam("particle_ttl", "Particle TTL", c.Params.ParticleTTL),
				core.FloatParam("edge_spawn_rate", "Edge spawn rate", c.Params.EdgeSpawnRate),
			},
		},
		{
			Name: "Debris",
			Params: []core.Parameter{
				core.IntParam("debris_per_death", "Debris per death", c.Params.DebrisPerDeath),
				core.FloatParam("debris_speed", "Debris speed", c.Params.DebrisSpeed),
				core.FloatParam("debris_ttl", "Debris TTL", c.Params.DebrisTTL),
			},
		},
		{
			Name: "Look",
			Params: []core.Parameter{
				core.FloatParam("min_brightness", "Min brightness", c.Look.MinBrightness),
				core.FloatParam("trail_brightness", "Trail brightness", c.Look.TrailBrightness),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var parameterControls = []core.ParameterControl{
	{Key: "gravity", Label: "Gravity", Step: 0.5, Min: 0, HasMin: true, Max: 40, HasMax: true},
	{Key: "air_resistance", Label: "Air resistance", Step: 0.05, Min: 0, HasMin: true, Max: 5, HasMax: true},
	{Key: "distance_scale", Label: "Distance scale", Step: 1, Min: 1, HasMin: true, Max: 100, HasMax: true},
	{Key: "fire_rate", Label: "Fire rate", Step: 0.1, Min: minFireRate, HasMin: true, Max: 10, HasMax: true},
	{Key: "launch_speed", Label: "Launch speed", Step: 0.25, Min: 0, HasMin: true, Max: 10, HasMax: true},
	{Key: "particle_ttl", Label: "Particle TTL", Step: 0.1, Min: 0.1, HasMin: true, Max: 20, HasMax: true},
	{Key: "edge_spawn_rate", Label: "Edge spawn rate", Step: 0.1, Min: 0, HasMin: true, Max: 5, HasMax: true},
	{Key: "trail_brightness", Label: "Trail brightness", Step: 0.01, Min: 0, HasMin: true, Max: 1, HasMax: true},
}

// ParameterControls lists the tunables adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return parameterControls
}

// SetFloatParameter updates a tunable, clamping to the HUD bounds when the
// key has a control. Launcher settings apply to existing launchers too.
func (w *World) SetFloatParameter(key string, value float64) bool {
	f := w.cfg.floatField(key)
	if f == nil || !finite(value) {
		return false
	}
	for _, ctrl := range parameterControls {
		if ctrl.Key == key {
			value = ctrl.Clamp(value)
			break
		}
	}
	*f = value
	w.cfg.sanitize()
	w.syncEnv()
	for _, e := range w.entities {
		if l, ok := e.(*Launcher); ok {
			l.FireRate = w.cfg.Params.FireRate
			l.LaunchSpeed = w.cfg.Params.LaunchSpeed
			l.ParticleTTL = w.cfg.Params.ParticleTTL
		}
	}
	return true
}
