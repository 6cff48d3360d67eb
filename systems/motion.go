package systems

import "github.com/pthm-cable/pong/components"

// IntegrateBall advances the ball by one fixed frame step.
// There is no delta-time scaling: one call is one display refresh.
func IntegrateBall(s *components.MatchState) {
	s.BallY += s.SpeedY

	// Horizontal motion only exists once a paddle has imparted spin
	if s.SpeedX != 0 {
		s.BallX += s.SpeedX
	}
}
