// Package audio plays short synthesized tones for match events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Tone lengths
const (
	hitDuration      = 60 * time.Millisecond
	wallDuration     = 30 * time.Millisecond
	scoreDuration    = 220 * time.Millisecond
	gameOverNoteTime = 160 * time.Millisecond
)

// square is a fixed-length square wave, the classic paddle blip.
type square struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	length   int
}

// NewSquare returns a square wave of the given frequency and duration.
func NewSquare(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &square{freq: freq, rate: rate, length: rate.N(d)}
}

func (s *square) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.length {
			return i, i > 0
		}
		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }

// fade applies a linear release over the last part of a stream.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	release  int
}

// NewFade shapes s so it decays to silence over its final release samples.
func NewFade(s beep.Streamer, total, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(total), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	start := f.total - f.release
	for i := 0; i < n; i++ {
		if f.position >= start && f.release > 0 {
			vol := float64(f.total-f.position) / float64(f.release)
			if vol < 0 {
				vol = 0
			}
			samples[i][0] *= vol
			samples[i][1] *= vol
		}
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// withVolume scales s by a linear volume in [0, 1].
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func blip(freq float64, d time.Duration, rate beep.SampleRate, vol float64) beep.Streamer {
	return withVolume(NewFade(NewSquare(freq, d, rate), d, d/3, rate), vol)
}

// HitTone is the paddle contact sound. The player paddle sounds higher.
func HitTone(player bool, rate beep.SampleRate, vol float64) beep.Streamer {
	freq := 440.0
	if player {
		freq = 520.0
	}
	return blip(freq, hitDuration, rate, vol)
}

// WallTone is the side wall bounce sound.
func WallTone(rate beep.SampleRate, vol float64) beep.Streamer {
	return blip(260, wallDuration, rate, vol*0.6)
}

// ScoreTone is played when a point is scored. A lost point sounds lower.
func ScoreTone(playerScored bool, rate beep.SampleRate, vol float64) beep.Streamer {
	freq := 196.0
	if playerScored {
		freq = 660.0
	}
	return blip(freq, scoreDuration, rate, vol)
}

// GameOverTone is a three note phrase, rising for a player win.
func GameOverTone(playerWon bool, rate beep.SampleRate, vol float64) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99}
	if !playerWon {
		notes = []float64{392.00, 311.13, 261.63}
	}
	seq := make([]beep.Streamer, len(notes))
	for i, f := range notes {
		seq[i] = blip(f, gameOverNoteTime, rate, vol)
	}
	return beep.Seq(seq...)
}
