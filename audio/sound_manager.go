package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/systems"
)

// SoundManager mixes match event tones onto the speaker.
// Every method is safe to call when audio failed to initialize.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager from the audio config.
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	rate := beep.SampleRate(cfg.SampleRate)
	if rate <= 0 {
		rate = 44100
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: cfg.Volume,
	}
}

// Initialize opens the speaker. Callers treat failure as non-fatal.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sm.rate, sm.rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayContacts plays the tones for one frame's contacts.
func (sm *SoundManager) PlayContacts(c systems.Contacts) {
	switch {
	case c.Scored != components.SideNone:
		sm.play(ScoreTone(c.Scored == components.SidePlayer, sm.rate, sm.volume))
	case c.PlayerHit || c.OpponentHit:
		sm.play(HitTone(c.PlayerHit, sm.rate, sm.volume))
	case c.WallBounce:
		sm.play(WallTone(sm.rate, sm.volume))
	}
}

// PlayGameOver plays the closing phrase for the winner.
func (sm *SoundManager) PlayGameOver(winner components.Side) {
	sm.play(GameOverTone(winner == components.SidePlayer, sm.rate, sm.volume))
}
