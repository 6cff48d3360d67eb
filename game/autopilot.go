package game

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/pong/config"
)

// Autopilot is a scripted player for the near paddle. It watches frames,
// chases the ball with a reaction lag and aim error, and publishes pointer
// positions like a mouse would.
type Autopilot struct {
	*PointerHub

	rng     *rand.Rand
	lag     int
	jitter  float64
	maxStep float64

	history []float64 // Recent ball X, oldest first
	aim     float64   // Current aim error
	x       float64   // Last published pointer X
}

// NewAutopilot creates an autopilot starting at pointer position startX.
func NewAutopilot(cfg config.AutopilotConfig, seed int64, startX float64) *Autopilot {
	return &Autopilot{
		PointerHub: NewPointerHub(),
		rng:        rand.New(rand.NewSource(seed)),
		lag:        max(cfg.ReactionTicks, 0),
		jitter:     cfg.Jitter,
		maxStep:    cfg.MaxStep,
		x:          startX,
	}
}

// Observe reacts to one stepped frame and publishes the next pointer X.
func (a *Autopilot) Observe(f Frame) {
	a.history = append(a.history, f.BallX)
	if len(a.history) > a.lag+1 {
		a.history = a.history[len(a.history)-a.lag-1:]
	}
	seen := a.history[0]

	// The aim error is locked in once the ball heads toward the player
	if f.SpeedY < 0 {
		a.aim = (a.rng.Float64()*2 - 1) * a.jitter
	}

	target := seen + a.aim
	diff := target - a.x
	if a.maxStep > 0 && math.Abs(diff) > a.maxStep {
		diff = math.Copysign(a.maxStep, diff)
	}
	a.x += diff

	if f.IsGameOver {
		return
	}
	a.Publish(a.x)
}

// Reseed resets the random aim stream and reaction history.
func (a *Autopilot) Reseed(seed int64, startX float64) {
	a.rng.Seed(seed)
	a.history = a.history[:0]
	a.aim = 0
	a.x = startX
}
