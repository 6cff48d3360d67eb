package systems

import "github.com/pthm-cable/pong/components"

// NewMatchState returns a fresh match: ball centered and serving toward the
// opponent, paddles centered, scores zero.
func NewMatchState(r Rules) components.MatchState {
	s := components.MatchState{
		PlayerPaddleX:   (r.Width - r.PaddleWidth) / 2,
		OpponentPaddleX: (r.Width - r.PaddleWidth) / 2,
	}
	ResetBall(&s, r)
	return s
}

// ResetBall re-serves the ball from the center with the initial velocity.
func ResetBall(s *components.MatchState, r Rules) {
	s.BallX = r.Width / 2
	s.BallY = r.Height / 2
	s.SpeedY = r.InitialSpeedY
	s.SpeedX = 0
}
