package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	chimeDuration = 120 * time.Millisecond
	buzzDuration  = 400 * time.Millisecond
	fadeIn        = 5 * time.Millisecond
)

// toneGenerator is a sine tone with harmonics and a short fade in.
// It streams forever; callers bound it with beep.Take.
type toneGenerator struct {
	sr        beep.SampleRate
	freq      float64
	harmonics []float64
	pos       int
}

func newToneGenerator(sr beep.SampleRate, freq float64, harmonics ...float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq, harmonics: harmonics}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := float64(g.sr.N(fadeIn))
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := math.Sin(2 * math.Pi * g.freq * t)
		for k, amp := range g.harmonics {
			sample += amp * math.Sin(2*math.Pi*g.freq*float64(k+2)*t)
		}
		sample /= float64(1 + len(g.harmonics))

		if env := float64(g.pos) / attack; env < 1 {
			sample *= env
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error {
	return nil
}

// chime is the food pickup sound: two quick rising notes.
func chime(sr beep.SampleRate, volume float64) beep.Streamer {
	half := sr.N(chimeDuration / 2)
	notes := beep.Seq(
		beep.Take(half, newToneGenerator(sr, 987.77)),
		beep.Take(half, newToneGenerator(sr, 1318.51)),
	)
	return withVolume(notes, volume)
}

// buzz is the crash sound: a low tone rich in harmonics.
func buzz(sr beep.SampleRate, volume float64) beep.Streamer {
	tone := beep.Take(sr.N(buzzDuration), newToneGenerator(sr, 110, 0.5, 0.25))
	return withVolume(tone, volume)
}

// withVolume scales s linearly; zero or less is silent.
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}
