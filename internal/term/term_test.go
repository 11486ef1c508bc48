package term

import (
	"image/color"
	"testing"
	"time"

	"slopelight/internal/app"
	"slopelight/internal/terrain"

	"github.com/gdamore/tcell/v2"
)

func simScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		ev   tcell.Event
		want app.Command
	}{
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), app.CommandInject},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), app.CommandDump},
		{tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), app.CommandReset},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), app.CommandQuit},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.CommandQuit},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), app.CommandQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), app.CommandNone},
		{tcell.NewEventResize(10, 10), app.CommandNone},
	}
	for i, tc := range cases {
		if got := Translate(tc.ev); got != tc.want {
			t.Fatalf("case %d: got %v want %v", i, got, tc.want)
		}
	}
}

func TestInputPollNeverBlocks(t *testing.T) {
	screen := simScreen(t, 20, 5)
	in := NewInput(screen)
	if cmd, err := in.Poll(); err != nil || cmd != app.CommandNone {
		t.Fatalf("idle poll returned %v %v", cmd, err)
	}
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		cmd, err := in.Poll()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cmd == app.CommandInject {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("injected key never arrived")
}

func TestSinkDrawsLEDsAlongPath(t *testing.T) {
	screen := simScreen(t, 12, 4)
	path, err := terrain.NewPath(terrain.Flat(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sink := NewSink(screen, path)
	frame := []color.RGBA{{R: 255, A: 255}, {G: 255, A: 255}, {B: 255, A: 255}}
	if err := sink.Show(frame); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	drawn := 0
	for _, cell := range sink.cells {
		r, _, _, _ := screen.GetContent(cell[0], cell[1])
		if r == ledRune {
			drawn++
		}
	}
	if drawn != 3 {
		t.Fatalf("expected 3 LEDs on screen, found %d", drawn)
	}
	if sink.cells[0][0] >= sink.cells[2][0] {
		t.Fatalf("LEDs should run left to right: %v", sink.cells)
	}
}
