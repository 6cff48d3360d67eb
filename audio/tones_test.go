package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/systems"
)

// drain reads a streamer to the end and returns its samples.
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func TestSquareLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name string
		d    time.Duration
	}{
		{"short", 10 * time.Millisecond},
		{"hit", hitDuration},
		{"score", scoreDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			samples := drain(NewSquare(440, tt.d, rate))
			if len(samples) != rate.N(tt.d) {
				t.Errorf("got %d samples, want %d", len(samples), rate.N(tt.d))
			}
			for i, s := range samples {
				if math.Abs(s[0]) != 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v, want mono +-1", i, s)
				}
			}
		})
	}
}

func TestFadeEndsNearSilence(t *testing.T) {
	rate := beep.SampleRate(44100)
	d := 50 * time.Millisecond

	samples := drain(NewFade(NewSquare(440, d, rate), d, d/2, rate))
	if len(samples) == 0 {
		t.Fatal("no samples")
	}
	if first := math.Abs(samples[0][0]); first != 1 {
		t.Errorf("first sample %v, want full volume before release", first)
	}
	if last := math.Abs(samples[len(samples)-1][0]); last > 0.01 {
		t.Errorf("last sample %v, want near silence", last)
	}
}

func TestGameOverToneIsThreeNotes(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, won := range []bool{true, false} {
		samples := drain(GameOverTone(won, rate, 0.5))
		if want := 3 * rate.N(gameOverNoteTime); len(samples) != want {
			t.Errorf("won=%v: got %d samples, want %d", won, len(samples), want)
		}
	}
}

func TestSilentVolume(t *testing.T) {
	rate := beep.SampleRate(22050)
	for _, s := range drain(HitTone(true, rate, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %v, want silence at volume 0", s)
		}
	}
}

func TestSoundManagerWithoutDevice(t *testing.T) {
	sm := NewSoundManager(config.AudioConfig{SampleRate: 44100, Volume: 0.4})

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("sound calls panicked without initialization: %v", r)
		}
	}()

	sm.PlayContacts(systems.Contacts{PlayerHit: true})
	sm.PlayContacts(systems.Contacts{WallBounce: true})
	sm.PlayContacts(systems.Contacts{Scored: components.SideComputer})
	sm.PlayGameOver(components.SidePlayer)
	sm.Cleanup()
}
