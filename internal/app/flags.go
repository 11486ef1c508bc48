package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"slopelight/internal/core"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Pattern   string
	Heightmap string
	Seed      int64
	TPS       int
	Scale     int
	Sleep     time.Duration
	Chime     bool
	Profile   string
	LogFile   string

	overrides kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Pattern: "gravity", Seed: 1337, Scale: 1, Sleep: DefaultFrameSleep}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern to run ("+strings.Join(core.SimNames(), ", ")+")")
	fs.StringVar(&c.Heightmap, "heightmap", c.Heightmap, "LED layout file (.json or .msgpack); empty generates a perlin terrain")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for terrain generation and pattern resets")
	fs.IntVar(&c.TPS, "tps", c.TPS, "fixed ticks per second; 0 follows the wall clock")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.DurationVar(&c.Sleep, "sleep", c.Sleep, "pause between frames")
	fs.BoolVar(&c.Chime, "chime", c.Chime, "play a tone whenever a launcher fires")
	fs.StringVar(&c.Profile, "profile", c.Profile, "write a cpu or mem profile to the working directory")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append log output to this file")
	fs.Var(&c.overrides, "set", "pattern parameter override in key=value form (repeatable)")
}

// Options returns the -set overrides keyed by parameter name, with the seed
// folded in unless it was overridden explicitly.
func (c *Config) Options() (map[string]string, error) {
	opts, bad := core.ParseOverrides(c.overrides)
	if len(bad) > 0 {
		return nil, fmt.Errorf("malformed -set value(s): %s", strings.Join(bad, ", "))
	}
	if _, ok := opts["seed"]; !ok {
		opts["seed"] = fmt.Sprint(c.Seed)
	}
	return opts, nil
}
