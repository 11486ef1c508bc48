package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"slopelight/internal/app"
	"slopelight/internal/audio"
	"slopelight/internal/core"
	"slopelight/internal/sims/gravity"
	_ "slopelight/internal/sims/heightmap"
	"slopelight/internal/strip"
	"slopelight/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closeLog, err := app.OpenLog(cfg.LogFile)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()

	stopProfile, err := app.StartProfile(cfg.Profile)
	if err != nil {
		log.Fatal(err)
	}
	defer stopProfile()

	path, err := app.LoadPath(cfg)
	if err != nil {
		log.Fatalf("load heightmap: %v", err)
	}
	sim, err := app.BuildSim(cfg, path)
	if err != nil {
		log.Fatal(err)
	}
	if w, ok := sim.(*gravity.World); ok {
		logger.Printf("%d LEDs, valleys %v, peaks %v", path.Len(), w.Valleys(), w.Peaks())
		if cfg.Chime {
			chime := audio.NewChime(0.3)
			if err := chime.Init(); err != nil {
				logger.Printf("chime disabled: %v", err)
			} else {
				defer chime.Close()
				w.SetLaunchListener(chime)
			}
		}
	}

	screen, err := term.Open()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := app.NewDriver(sim, strip.New(path.Len(), term.NewSink(screen, path)), term.NewInput(screen), core.WallClock{}, logger)
	d.FrameSleep = cfg.Sleep
	if cfg.TPS > 0 {
		d.UseFixedStep(cfg.TPS, core.WallClock{})
	}
	runErr := d.Run(ctx)
	screen.Fini()
	if runErr != nil {
		if errors.Is(runErr, gravity.ErrInvalidSimulationState) {
			logger.Printf("aborting: %v", runErr)
		}
		log.Fatal(runErr)
	}
}
