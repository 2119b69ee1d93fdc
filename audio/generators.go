package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// envelope is a short attack followed by an exponential release over the sound's length
func envelope(pos, total int, sr beep.SampleRate) float64 {
	attack := sr.N(5 * time.Millisecond)
	if pos < attack {
		return float64(pos) / float64(attack)
	}
	if total <= 0 {
		return 0
	}
	return math.Exp(-5 * float64(pos-attack) / float64(total))
}

// ChimeGenerator is a bright sine with a soft octave partial; it ends after its duration
type ChimeGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewChimeGenerator creates a chime of freq Hz lasting d
func NewChimeGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		s := 0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*2*t)
		s *= 0.25 * envelope(g.pos, g.total, g.sr)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error { return nil }

// BuzzGenerator is a harsh low tone built from odd-ish harmonics
type BuzzGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewBuzzGenerator creates a buzz of freq Hz lasting d
func NewBuzzGenerator(sr beep.SampleRate, freq float64, d time.Duration) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		s := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*2*t) +
			0.075*math.Sin(2*math.Pi*g.freq*3*t)
		s *= 0.6 * envelope(g.pos, g.total, g.sr)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error { return nil }

// SweepGenerator glides from one frequency to another; used for game over
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

// NewSweepGenerator creates a glide from one frequency to another over d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		s := 0.2 * math.Sin(g.phase) * (1 - progress)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error { return nil }
