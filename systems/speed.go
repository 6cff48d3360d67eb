package systems

import "github.com/pthm-cable/pong/components"

// IncreaseSpeedOnHit grows |SpeedY| by one unit in the current direction of
// travel. Travel toward +y is bounded by MaxSpeedY, toward -y by MinSpeedY.
// Called before the bounce negates SpeedY.
func IncreaseSpeedOnHit(s *components.MatchState, r Rules) {
	switch {
	case s.SpeedY > 0:
		s.SpeedY += 1
		if s.SpeedY > r.MaxSpeedY {
			s.SpeedY = r.MaxSpeedY
		}
	case s.SpeedY < 0:
		s.SpeedY -= 1
		if s.SpeedY < r.MinSpeedY {
			s.SpeedY = r.MinSpeedY
		}
	}
}
