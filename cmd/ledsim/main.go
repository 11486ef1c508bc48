//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"slopelight/internal/app"
	"slopelight/internal/audio"
	"slopelight/internal/sims/gravity"
	_ "slopelight/internal/sims/heightmap"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	path, err := app.LoadPath(cfg)
	if err != nil {
		log.Fatalf("load heightmap: %v", err)
	}
	sim, err := app.BuildSim(cfg, path)
	if err != nil {
		log.Fatal(err)
	}
	if w, ok := sim.(*gravity.World); ok && cfg.Chime {
		chime := audio.NewChime(0.3)
		if err := chime.Init(); err != nil {
			log.Printf("chime disabled: %v", err)
		} else {
			defer chime.Close()
			w.SetLaunchListener(chime)
		}
	}

	game := app.New(sim, path, cfg.Seed, log.Default())
	ebiten.SetWindowTitle("slopelight — " + sim.Name())
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowSize(app.WindowSize(cfg.Scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
