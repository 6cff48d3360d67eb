// Package components defines the plain data records the match is built from.
package components

import "fmt"

// Side identifies one end of the court.
type Side uint8

const (
	SideNone     Side = iota
	SidePlayer        // Near edge, pointer controlled
	SideComputer      // Far edge, heuristic controlled
)

// String returns the literal carried by the game-over notification.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "Player"
	case SideComputer:
		return "Computer"
	default:
		return "None"
	}
}

// MarshalText lets Side appear as its literal in JSON, YAML and CSV output.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses the literal form produced by MarshalText.
func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "Player":
		*s = SidePlayer
	case "Computer":
		*s = SideComputer
	case "None":
		*s = SideNone
	default:
		return fmt.Errorf("unknown side %q", b)
	}
	return nil
}

// MatchState is the authoritative mutable record of one running match.
// It is owned by a single match instance and replaced wholesale on restart.
type MatchState struct {
	BallX, BallY   float64
	SpeedX, SpeedY float64 // Per-tick displacement; negative SpeedY travels toward y=0

	PlayerPaddleX   float64 // Left edge of the near paddle
	OpponentPaddleX float64 // Left edge of the far paddle

	PlayerScore   int
	OpponentScore int

	IsGameOver   bool
	Winner       Side
	PointerMoved bool

	Tick int32 // Frames stepped since the match started
}

// Score returns the score of the given side.
func (s *MatchState) Score(side Side) int {
	switch side {
	case SidePlayer:
		return s.PlayerScore
	case SideComputer:
		return s.OpponentScore
	default:
		return 0
	}
}
