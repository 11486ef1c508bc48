package strip

import (
	"fmt"
	"image/color"
	"math"
)

// Sink receives every transmitted frame, one colour per LED.
type Sink interface {
	Show(frame []color.RGBA) error
}

// Buffer accumulates additive samples for a strip of n LEDs and flushes
// clamped colours to its Sink on Transmit.
type Buffer struct {
	r, g, b []float64
	frame   []color.RGBA
	sink    Sink
}

// New allocates a buffer for n LEDs. A nil sink discards frames.
func New(n int, sink Sink) *Buffer {
	if n < 0 {
		n = 0
	}
	if sink == nil {
		sink = Discard{}
	}
	return &Buffer{
		r:     make([]float64, n),
		g:     make([]float64, n),
		b:     make([]float64, n),
		frame: make([]color.RGBA, n),
		sink:  sink,
	}
}

// Len returns the number of LEDs.
func (s *Buffer) Len() int { return len(s.r) }

// Clear zeroes every accumulator.
func (s *Buffer) Clear() {
	for i := range s.r {
		s.r[i], s.g[i], s.b[i] = 0, 0, 0
	}
}

// AddRGB blends a sample at a fractional position, splitting it linearly
// between the two nearest LEDs. Parts that land off the strip are dropped.
func (s *Buffer) AddRGB(pos, r, g, b float64) {
	if math.IsNaN(pos) || math.IsInf(pos, 0) {
		return
	}
	base := math.Floor(pos)
	frac := pos - base
	i := int(base)
	s.add(i, r*(1-frac), g*(1-frac), b*(1-frac))
	if frac > 0 {
		s.add(i+1, r*frac, g*frac, b*frac)
	}
}

// AddHSV converts to RGB and blends like AddRGB.
func (s *Buffer) AddHSV(pos, h, sat, v float64) {
	r, g, b := HSVToRGB(h, sat, v)
	s.AddRGB(pos, r, g, b)
}

func (s *Buffer) add(i int, r, g, b float64) {
	if i < 0 || i >= len(s.r) {
		return
	}
	s.r[i] += r
	s.g[i] += g
	s.b[i] += b
}

// RGB returns the unclamped accumulator of LED i.
func (s *Buffer) RGB(i int) (r, g, b float64) {
	if i < 0 || i >= len(s.r) {
		return 0, 0, 0
	}
	return s.r[i], s.g[i], s.b[i]
}

// Transmit clamps the accumulators to [0,1] and hands the frame to the sink.
func (s *Buffer) Transmit() error {
	for i := range s.frame {
		s.frame[i] = color.RGBA{R: to8(s.r[i]), G: to8(s.g[i]), B: to8(s.b[i]), A: 255}
	}
	if err := s.sink.Show(s.frame); err != nil {
		return fmt.Errorf("strip: transmit: %w", err)
	}
	return nil
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
