package gravity

import (
	"strconv"

	"slopelight/internal/terrain"
)

// Physics holds the constants of the slope-driven motion model.
type Physics struct {
	Gravity          float64
	AirResistance    float64
	ReferenceMass    float64
	DistanceScale    float64 // converts slope acceleration into LED indices
	RestingThreshold float64
	DefaultTTL       float64
}

// Look holds the brightness tunables used while painting.
type Look struct {
	MinBrightness      float64
	FullBrightSpeed    float64
	TrailBrightness    float64
	LauncherBrightness float64
}

// Params holds the spawning tunables.
type Params struct {
	FireRate    float64
	LaunchSpeed float64
	ParticleTTL float64

	ValleyMass   float64
	ValleyRadius float64
	ValleyHue    float64
	PeakMass     float64
	PeakRadius   float64
	PeakHue      float64

	EdgeSpawnRate float64 // expected edge injections per second
	EdgeSpawnTTL  float64

	ManualPosition float64
	ManualSpeed    float64
	ManualTTL      float64

	DebrisPerDeath      int
	DebrisSpeed         float64
	DebrisTTL           float64
	DebrisFadePerSecond float64

	SmoothWindow int
	SmoothOrder  int
}

// Config controls the gravity simulation.
type Config struct {
	Seed    int64
	Physics Physics
	Look    Look
	Params  Params
}

// DefaultConfig returns the tuning used on the 300 LED installation.
func DefaultConfig() Config {
	return Config{
		Seed: 1337,
		Physics: Physics{
			Gravity:          9.81,
			AirResistance:    0.6,
			ReferenceMass:    1,
			DistanceScale:    20,
			RestingThreshold: 0.2,
			DefaultTTL:       2,
		},
		Look: Look{
			MinBrightness:      0.15,
			FullBrightSpeed:    2,
			TrailBrightness:    0.05,
			LauncherBrightness: 0.6,
		},
		Params: Params{
			FireRate:    1.2,
			LaunchSpeed: 2,
			ParticleTTL: 1,

			ValleyMass:   -0.1,
			ValleyRadius: -0.003,
			ValleyHue:    2.0 / 3,
			PeakMass:     0.5,
			PeakRadius:   0.01,
			PeakHue:      0,

			EdgeSpawnRate: 0,
			EdgeSpawnTTL:  4,

			ManualPosition: 81,
			ManualSpeed:    3,
			ManualTTL:      80,

			DebrisPerDeath:      0,
			DebrisSpeed:         2,
			DebrisTTL:           0.6,
			DebrisFadePerSecond: 0.12,

			SmoothWindow: terrain.DefaultSmoothWindow,
			SmoothOrder:  terrain.DefaultSmoothOrder,
		},
	}
}

func (c *Config) floatField(key string) *float64 {
	switch key {
	case "gravity":
		return &c.Physics.Gravity
	case "air_resistance":
		return &c.Physics.AirResistance
	case "reference_mass":
		return &c.Physics.ReferenceMass
	case "distance_scale":
		return &c.Physics.DistanceScale
	case "resting_threshold":
		return &c.Physics.RestingThreshold
	case "default_ttl":
		return &c.Physics.DefaultTTL
	case "min_brightness":
		return &c.Look.MinBrightness
	case "full_bright_speed":
		return &c.Look.FullBrightSpeed
	case "trail_brightness":
		return &c.Look.TrailBrightness
	case "launcher_brightness":
		return &c.Look.LauncherBrightness
	case "fire_rate":
		return &c.Params.FireRate
	case "launch_speed":
		return &c.Params.LaunchSpeed
	case "particle_ttl":
		return &c.Params.ParticleTTL
	case "valley_mass":
		return &c.Params.ValleyMass
	case "valley_radius":
		return &c.Params.ValleyRadius
	case "valley_hue":
		return &c.Params.ValleyHue
	case "peak_mass":
		return &c.Params.PeakMass
	case "peak_radius":
		return &c.Params.PeakRadius
	case "peak_hue":
		return &c.Params.PeakHue
	case "edge_spawn_rate":
		return &c.Params.EdgeSpawnRate
	case "edge_spawn_ttl":
		return &c.Params.EdgeSpawnTTL
	case "manual_position":
		return &c.Params.ManualPosition
	case "manual_speed":
		return &c.Params.ManualSpeed
	case "manual_ttl":
		return &c.Params.ManualTTL
	case "debris_speed":
		return &c.Params.DebrisSpeed
	case "debris_ttl":
		return &c.Params.DebrisTTL
	case "debris_fade":
		return &c.Params.DebrisFadePerSecond
	}
	return nil
}

func (c *Config) intField(key string) *int {
	switch key {
	case "debris_per_death":
		return &c.Params.DebrisPerDeath
	case "smooth_window":
		return &c.Params.SmoothWindow
	case "smooth_order":
		return &c.Params.SmoothOrder
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	for key, v := range cfg {
		if f := c.floatField(key); f != nil {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*f = parsed
			}
			continue
		}
		if n := c.intField(key); n != nil {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*n = parsed
			}
		}
	}
	c.sanitize()
	return c
}

// sanitize repairs values that would make the model divide by zero or stall.
func (c *Config) sanitize() {
	if c.Physics.ReferenceMass == 0 {
		c.Physics.ReferenceMass = 1
	}
	if c.Physics.DefaultTTL <= 0 {
		c.Physics.DefaultTTL = DefaultConfig().Physics.DefaultTTL
	}
	if c.Params.FireRate < minFireRate {
		c.Params.FireRate = minFireRate
	}
	if c.Params.LaunchSpeed < 0 {
		c.Params.LaunchSpeed = -c.Params.LaunchSpeed
	}
	if c.Params.ParticleTTL <= 0 {
		c.Params.ParticleTTL = DefaultConfig().Params.ParticleTTL
	}
	if c.Look.FullBrightSpeed <= 0 {
		c.Look.FullBrightSpeed = DefaultConfig().Look.FullBrightSpeed
	}
}

const minFireRate = 0.05
