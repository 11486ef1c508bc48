// Package audio plays a short tone for every launcher that fires.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	blipLength = 60 * time.Millisecond
	baseFreq   = 220.0
)

// Chime implements gravity.LaunchListener. Until Init succeeds every call is
// a no-op.
type Chime struct {
	mixer  *beep.Mixer
	ready  bool
	volume float64
}

// NewChime returns a silent chime.
func NewChime(volume float64) *Chime {
	return &Chime{mixer: &beep.Mixer{}, volume: math.Max(0, math.Min(volume, 1))}
}

// Init opens the audio device and starts the mixer.
func (c *Chime) Init() error {
	if c.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.ready = true
	return nil
}

// Launched queues one blip pitched by hue.
func (c *Chime) Launched(_, hue float64) {
	if !c.ready {
		return
	}
	s := beep.Take(sampleRate.N(blipLength), NewBlip(sampleRate, Pitch(hue), c.volume))
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences queued blips.
func (c *Chime) Close() {
	if !c.ready {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.ready = false
}

// Pitch spreads hues in [0,1) over two octaves above 220 Hz.
func Pitch(hue float64) float64 {
	hue -= math.Floor(hue)
	return baseFreq * math.Pow(2, 2*hue)
}

// Blip is a sine tone with a linear attack and an exponential tail.
type Blip struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
}

// NewBlip creates an endless blip stream; wrap it in beep.Take.
func NewBlip(sr beep.SampleRate, freq, volume float64) *Blip {
	return &Blip{sr: sr, freq: freq, volume: volume}
}

func (b *Blip) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)
		env := math.Min(t/0.005, 1) * math.Exp(-t/0.02)
		v := b.volume * env * math.Sin(2*math.Pi*b.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *Blip) Err() error { return nil }
