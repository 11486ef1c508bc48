package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"slopelight/internal/core"
)

const (
	// DefaultFrameSleep is the pause between frames.
	DefaultFrameSleep = 10 * time.Millisecond
	// MaxFrameDelta caps a single simulated step after a stall.
	MaxFrameDelta = 250 * time.Millisecond
)

// ErrQuit is returned by Frame when the user asked to leave.
var ErrQuit = errors.New("app: quit requested")

// Command is a user request read from an InputSource.
type Command uint8

const (
	CommandNone Command = iota
	CommandInject
	CommandDump
	CommandReset
	CommandQuit
)

// InputSource is polled once per frame and must never block.
type InputSource interface {
	Poll() (Command, error)
}

// Render clears the strip, paints the pattern into it and transmits the frame.
func Render(sim core.Sim, s core.Strip) error {
	s.Clear()
	sim.Paint(s)
	return s.Transmit()
}

// Driver runs the measure, simulate, render loop.
type Driver struct {
	Sim   core.Sim
	Strip core.Strip
	Input InputSource
	Log   *log.Logger
	// FrameSleep is the pause after each frame.
	FrameSleep time.Duration

	watch *core.Stopwatch
	fixed *core.FixedStep
}

// NewDriver measures frame deltas on clock. A nil input never produces
// commands and a nil logger discards output.
func NewDriver(sim core.Sim, strip core.Strip, input InputSource, clock core.Clock, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Driver{
		Sim:        sim,
		Strip:      strip,
		Input:      input,
		Log:        logger,
		FrameSleep: DefaultFrameSleep,
		watch:      core.NewStopwatch(clock, MaxFrameDelta),
	}
}

// UseFixedStep switches the driver to constant ticks of 1/tps seconds,
// paced by clock. Frames between ticks are rendered without stepping.
func (d *Driver) UseFixedStep(tps int, clock core.Clock) {
	d.fixed = core.NewFixedStep(tps).WithClock(clock)
}

// Frame runs one iteration: input, simulate, render.
func (d *Driver) Frame() error {
	if err := d.handleInput(); err != nil {
		return err
	}
	dt := d.watch.Lap()
	if d.fixed != nil {
		dt = 0
		if d.fixed.ShouldStep() {
			dt = d.fixed.Step()
		}
	}
	if dt > 0 {
		if err := d.Sim.Step(dt); err != nil {
			return fmt.Errorf("step %s: %w", d.Sim.Name(), err)
		}
	}
	if err := Render(d.Sim, d.Strip); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (d *Driver) handleInput() error {
	if d.Input == nil {
		return nil
	}
	cmd, err := d.Input.Poll()
	if err != nil {
		// Input errors count as no input.
		return nil
	}
	switch cmd {
	case CommandInject:
		if s, ok := d.Sim.(core.ManualSpawner); ok {
			s.SpawnManual()
			d.Log.Printf("injected particle")
		}
	case CommandDump:
		if s, ok := d.Sim.(core.Describer); ok {
			lines := s.Describe()
			d.Log.Printf("%d entities", len(lines))
			for _, line := range lines {
				d.Log.Print(line)
			}
		}
	case CommandReset:
		d.Sim.Reset(0)
		d.Log.Printf("reset %s", d.Sim.Name())
	case CommandQuit:
		return ErrQuit
	}
	return nil
}

// Run loops until ctx is cancelled, the user quits, or a frame fails.
// Cancellation and quitting return nil.
func (d *Driver) Run(ctx context.Context) error {
	var timer *time.Timer
	if d.FrameSleep > 0 {
		timer = time.NewTimer(d.FrameSleep)
		defer timer.Stop()
	}
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := d.Frame(); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		if timer == nil {
			continue
		}
		timer.Reset(d.FrameSleep)
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
	}
}
