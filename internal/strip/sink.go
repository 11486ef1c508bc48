package strip

import (
	"image/color"
	"slices"
)

// Discard drops every frame.
type Discard struct{}

// Show implements Sink.
func (Discard) Show([]color.RGBA) error { return nil }

// FrameSink keeps a copy of the most recent frame for a renderer that draws
// on its own schedule. It is not safe for concurrent use.
type FrameSink struct {
	frame  []color.RGBA
	frames int
}

// Show implements Sink.
func (f *FrameSink) Show(frame []color.RGBA) error {
	f.frame = append(f.frame[:0], frame...)
	f.frames++
	return nil
}

// Frame returns a copy of the latest frame.
func (f *FrameSink) Frame() []color.RGBA { return slices.Clone(f.frame) }

// Latest returns the latest frame without copying. The slice is reused by
// the next Show.
func (f *FrameSink) Latest() []color.RGBA { return f.frame }

// Frames reports how many frames have been shown.
func (f *FrameSink) Frames() int { return f.frames }
