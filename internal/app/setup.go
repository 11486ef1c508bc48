package app

import (
	"fmt"
	"io"
	"log"
	"os"

	"slopelight/internal/core"
	"slopelight/internal/terrain"

	"github.com/pkg/profile"
)

// LoadPath reads the configured heightmap, or generates one from the seed
// when no file was given.
func LoadPath(cfg *Config) (*terrain.Path, error) {
	if cfg.Heightmap != "" {
		return terrain.Load(cfg.Heightmap)
	}
	gen := terrain.DefaultGenerateConfig()
	gen.Seed = cfg.Seed
	vs, err := terrain.Generate(gen)
	if err != nil {
		return nil, err
	}
	return terrain.NewPath(vs)
}

// BuildSim looks up the configured pattern and constructs it on path.
func BuildSim(cfg *Config, path *terrain.Path) (core.Sim, error) {
	factory, ok := core.Sims()[cfg.Pattern]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q (have %v)", cfg.Pattern, core.SimNames())
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	sim, err := factory(path, opts)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", cfg.Pattern, err)
	}
	return sim, nil
}

// StartProfile starts a cpu or mem profile written to the working directory.
// An empty mode profiles nothing. The returned func stops the profile.
func StartProfile(mode string) (func(), error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfileAllocs
	default:
		return nil, fmt.Errorf("unknown profile mode %q (want cpu or mem)", mode)
	}
	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
	return p.Stop, nil
}

// OpenLog returns a logger appending to name, or one that discards output
// when name is empty. The close func is always safe to call.
func OpenLog(name string) (*log.Logger, func() error, error) {
	if name == "" {
		return log.New(io.Discard, "", 0), func() error { return nil }, nil
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "", log.LstdFlags|log.Lmicroseconds), f.Close, nil
}
