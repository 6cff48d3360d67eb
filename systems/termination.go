package systems

import "github.com/pthm-cable/pong/components"

// CheckWinner ends the match once either score reaches the winning threshold.
// It returns the winning side on the frame the match ends and SideNone otherwise,
// including on every call after the match is already over.
func CheckWinner(s *components.MatchState, r Rules) components.Side {
	if s.IsGameOver {
		return components.SideNone
	}

	// Player is evaluated first and takes precedence
	var winner components.Side
	switch {
	case s.PlayerScore >= r.WinningScore:
		winner = components.SidePlayer
	case s.OpponentScore >= r.WinningScore:
		winner = components.SideComputer
	default:
		return components.SideNone
	}

	s.IsGameOver = true
	s.Winner = winner
	return winner
}
