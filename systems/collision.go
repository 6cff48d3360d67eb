package systems

import "github.com/pthm-cable/pong/components"

// Contacts reports what the collision pass resolved during one frame.
type Contacts struct {
	WallBounce  bool
	PlayerHit   bool
	OpponentHit bool
	Scored      components.Side // Side awarded a point, SideNone if no miss

	// Ball position at the moment of contact, before any reset
	X, Y float64
}

// Any reports whether anything happened this frame.
func (c Contacts) Any() bool {
	return c.WallBounce || c.PlayerHit || c.OpponentHit || c.Scored != components.SideNone
}

// ResolveWalls reflects the ball off the left and right walls.
// The top and bottom edges are scoring edges and never reflect.
func ResolveWalls(s *components.MatchState, r Rules) bool {
	if (s.BallX <= 0 && s.SpeedX < 0) || (s.BallX >= r.Width && s.SpeedX > 0) {
		s.SpeedX = -s.SpeedX
		return true
	}
	return false
}

// InSpan is the paddle hit test. The span is open on both ends:
// a ball exactly on either paddle edge is a miss.
func InSpan(ballX, paddleX, paddleWidth float64) bool {
	return ballX > paddleX && ballX < paddleX+paddleWidth
}

// ResolvePaddles evaluates the near edge, then the far edge.
// Each edge yields exactly one of hit, miss or neither.
func ResolvePaddles(s *components.MatchState, r Rules) Contacts {
	var c Contacts
	resolveNearEdge(s, r, &c)
	resolveFarEdge(s, r, &c)
	return c
}

// resolveNearEdge handles the player paddle at y close to Height.
func resolveNearEdge(s *components.MatchState, r Rules, c *Contacts) {
	if s.BallY <= r.Height-r.PaddleInset {
		return
	}

	// Only a ball travelling toward the edge can be returned; one already
	// bouncing out of the zone must not be hit twice.
	if s.SpeedY > 0 && InSpan(s.BallX, s.PlayerPaddleX, r.PaddleWidth) {
		c.PlayerHit = true
		c.X, c.Y = s.BallX, s.BallY

		IncreaseSpeedOnHit(s, r)
		s.SpeedY = -s.SpeedY

		// Off-center contact adds spin
		center := s.PlayerPaddleX + r.PaddleWidth/2
		s.SpeedX = (s.BallX - center) * r.Deflection
		return
	}

	if s.BallY > r.Height {
		c.Scored = components.SideComputer
		c.X, c.Y = s.BallX, s.BallY
		s.OpponentScore++
		ResetBall(s, r)
	}
}

// resolveFarEdge handles the opponent paddle at y close to 0.
// The opponent returns the ball without deflection.
func resolveFarEdge(s *components.MatchState, r Rules, c *Contacts) {
	if s.BallY >= r.PaddleInset {
		return
	}

	if s.SpeedY < 0 && InSpan(s.BallX, s.OpponentPaddleX, r.PaddleWidth) {
		c.OpponentHit = true
		c.X, c.Y = s.BallX, s.BallY

		IncreaseSpeedOnHit(s, r)
		s.SpeedY = -s.SpeedY
		return
	}

	if s.BallY < 0 {
		c.Scored = components.SidePlayer
		c.X, c.Y = s.BallX, s.BallY
		s.PlayerScore++
		ResetBall(s, r)
	}
}
