package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// BlipGenerator produces the short rising chirp played when an apple is
// eaten: a sine sweep with a fast decay envelope.
type BlipGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewBlipGenerator creates a blip generator.
func NewBlipGenerator(sr beep.SampleRate) *BlipGenerator {
	return &BlipGenerator{sr: sr}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sweep 600Hz -> 1000Hz over the burst.
		freq := 600 + 4000*t
		envelope := math.Exp(-t * 25)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// CrashGenerator produces the game-over sound: a harsh low buzz falling
// in pitch as it fades.
type CrashGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewCrashGenerator creates a crash generator.
func NewCrashGenerator(sr beep.SampleRate) *CrashGenerator {
	return &CrashGenerator{sr: sr}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Falling fundamental with two harmonics for harshness.
		freq := 220 * math.Exp(-t*2)
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*freq*3*t)

		envelope := math.Min(t/0.02, 1.0) * math.Exp(-t*4)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
