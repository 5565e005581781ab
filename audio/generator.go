// Package audio plays the looping ambient pad behind the game.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// padChord is A major add9, voiced low.
var padChord = []float64{110.00, 164.81, 220.00, 277.18, 246.94}

// padGenerator is an endless soft chord with a slow tremolo.
type padGenerator struct {
	rate   beep.SampleRate
	freqs  []float64
	phases []float64
	lfo    float64 // tremolo phase in cycles
	lfoHz  float64
}

// NewPad creates an endless ambient pad streamer.
func NewPad(rate beep.SampleRate) beep.Streamer {
	return &padGenerator{
		rate:   rate,
		freqs:  padChord,
		phases: make([]float64, len(padChord)),
		lfoHz:  0.15,
	}
}

func (g *padGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	sr := float64(g.rate)
	norm := 1 / float64(len(g.freqs))
	for i := range samples {
		var val float64
		for j, f := range g.freqs {
			val += math.Sin(2 * math.Pi * g.phases[j])
			g.phases[j] += f / sr
			if g.phases[j] >= 1 {
				g.phases[j]--
			}
		}

		// Tremolo between 0.6 and 1.0
		trem := 0.8 + 0.2*math.Sin(2*math.Pi*g.lfo)
		g.lfo += g.lfoHz / sr
		if g.lfo >= 1 {
			g.lfo--
		}

		val *= norm * trem
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

func (g *padGenerator) Err() error {
	return nil
}

// fadeIn ramps a streamer linearly from silence to full gain.
type fadeIn struct {
	streamer beep.Streamer
	length   int
	position int
}

// NewFadeIn wraps s so its first d of audio rises from silence.
func NewFadeIn(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fadeIn{streamer: s, length: rate.N(d)}
}

func (f *fadeIn) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n && f.position < f.length; i++ {
		gain := float64(f.position) / float64(f.length)
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fadeIn) Err() error { return f.streamer.Err() }

// newVolume applies a linear gain. math.Log2(0) is -Inf, so 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
