package systems

import "github.com/pthm-cable/pong/components"

// StepCap returns the opponent's maximum per-frame displacement.
// It grows by one unit every ScoreDivisor points the opponent has scored.
func StepCap(r Rules, opponentScore int) float64 {
	return r.BaseShift + float64(opponentScore/r.ScoreDivisor)
}

// SteerOpponent moves the far paddle toward the ball, at most StepCap per frame.
// It is a pure function of the current state and returns the applied displacement.
func SteerOpponent(s *components.MatchState, r Rules) float64 {
	if r.WaitForPointer && !s.PointerMoved {
		return 0
	}

	target := s.BallX - r.LeadOffset
	center := s.OpponentPaddleX + r.PaddleWidth/2
	diff := target - center

	move := sign(diff) * min(abs(diff), StepCap(r, s.OpponentScore))

	before := s.OpponentPaddleX
	s.OpponentPaddleX = clamp(s.OpponentPaddleX+move, 0, r.PaddleRange())
	return s.OpponentPaddleX - before
}
