// Package term shows the strip in a terminal and reads keyboard commands.
package term

import (
	"errors"
	"image/color"

	"slopelight/internal/app"
	"slopelight/internal/render"
	"slopelight/internal/terrain"

	"github.com/gdamore/tcell/v2"
)

// ErrClosed is returned by Poll once the event pump has stopped.
var ErrClosed = errors.New("term: screen closed")

const ledRune = '●'

// Open initialises the controlling terminal.
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// Sink draws strip frames as coloured dots laid out like the physical strip.
type Sink struct {
	screen tcell.Screen
	path   *terrain.Path
	cells  [][2]int
	w, h   int
	floor  uint8
}

// NewSink returns a sink drawing path onto screen.
func NewSink(screen tcell.Screen, path *terrain.Path) *Sink {
	return &Sink{screen: screen, path: path, floor: 24}
}

// Show implements strip.Sink.
func (s *Sink) Show(frame []color.RGBA) error {
	w, h := s.screen.Size()
	if w != s.w || h != s.h || s.cells == nil {
		s.w, s.h = w, h
		// Terminal cells are roughly twice as tall as wide.
		pts := render.Project(s.path, float64(w), float64(h)*2, 1)
		for i := range pts {
			pts[i].Y /= 2
		}
		s.cells = render.Cells(pts)
	}
	s.screen.Clear()
	for i, cell := range s.cells {
		var c color.RGBA
		if i < len(frame) {
			c = frame[i]
		}
		c = render.Lit(c, s.floor)
		fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		s.screen.SetContent(cell[0], cell[1], ledRune, nil, tcell.StyleDefault.Foreground(fg))
	}
	s.screen.Show()
	return nil
}

// Input pumps terminal events into a buffered channel and maps them to
// driver commands without blocking.
type Input struct {
	events chan tcell.Event
	done   chan struct{}
}

// NewInput starts the event pump. It stops when the screen is finalised.
func NewInput(screen tcell.Screen) *Input {
	in := &Input{events: make(chan tcell.Event, 64), done: make(chan struct{})}
	go func() {
		defer close(in.done)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case in.events <- ev:
			default:
			}
		}
	}()
	return in
}

// Poll implements app.InputSource.
func (in *Input) Poll() (app.Command, error) {
	for {
		select {
		case ev := <-in.events:
			if cmd := Translate(ev); cmd != app.CommandNone {
				return cmd, nil
			}
		case <-in.done:
			return app.CommandNone, ErrClosed
		default:
			return app.CommandNone, nil
		}
	}
}

// Translate maps a terminal event to a command.
func Translate(ev tcell.Event) app.Command {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return app.CommandNone
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return app.CommandQuit
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			return app.CommandInject
		case 'd', 'D':
			return app.CommandDump
		case 'r', 'R':
			return app.CommandReset
		case 'q', 'Q':
			return app.CommandQuit
		}
	}
	return app.CommandNone
}
