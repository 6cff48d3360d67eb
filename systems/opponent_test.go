package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/pong/components"
)

func TestStepCap(t *testing.T) {
	r := testRules(t)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 3},
		{1, 3},
		{2, 4},
		{3, 4},
		{4, 5},
		{6, 6},
	}

	for _, tt := range tests {
		if got := StepCap(r, tt.score); got != tt.want {
			t.Errorf("StepCap(score=%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestSteerOpponentCappedByScore(t *testing.T) {
	r := testRules(t)
	s := components.MatchState{
		BallX: 480, OpponentPaddleX: 0, OpponentScore: 4, PointerMoved: true,
	}

	moved := SteerOpponent(&s, r)

	// Cap = 3 + floor(4/2) = 5
	if math.Abs(moved) > 5 {
		t.Errorf("moved %v, want |move| <= 5", moved)
	}
	if moved != 5 {
		t.Errorf("moved %v, want full step 5 toward a distant target", moved)
	}
}

func TestSteerOpponentStopsOnTarget(t *testing.T) {
	r := testRules(t)
	// target = 252 - 25 = 227, center = 200 + 25 = 225 -> 2 units away
	s := components.MatchState{BallX: 252, OpponentPaddleX: 200, PointerMoved: true}

	moved := SteerOpponent(&s, r)

	if moved != 2 {
		t.Errorf("moved %v, want 2 (distance to target)", moved)
	}
	if s.OpponentPaddleX != 202 {
		t.Errorf("paddle at %v, want 202", s.OpponentPaddleX)
	}
}

func TestSteerOpponentMovesLeft(t *testing.T) {
	r := testRules(t)
	s := components.MatchState{BallX: 30, OpponentPaddleX: 300, PointerMoved: true}

	moved := SteerOpponent(&s, r)

	if moved != -3 {
		t.Errorf("moved %v, want -3", moved)
	}
}

func TestSteerOpponentClampedToCourt(t *testing.T) {
	r := testRules(t)

	s := components.MatchState{BallX: 0, OpponentPaddleX: 1, PointerMoved: true}
	SteerOpponent(&s, r)
	if s.OpponentPaddleX != 0 {
		t.Errorf("paddle at %v, want clamped to 0", s.OpponentPaddleX)
	}

	s = components.MatchState{BallX: 500, OpponentPaddleX: 448, PointerMoved: true}
	r.LeadOffset = -100 // Target beyond the right wall
	SteerOpponent(&s, r)
	if s.OpponentPaddleX != 450 {
		t.Errorf("paddle at %v, want clamped to 450", s.OpponentPaddleX)
	}
}

func TestSteerOpponentWaitsForPointer(t *testing.T) {
	r := testRules(t)
	s := components.MatchState{BallX: 480, OpponentPaddleX: 100}

	if moved := SteerOpponent(&s, r); moved != 0 {
		t.Errorf("moved %v before pointer input, want 0", moved)
	}

	r.WaitForPointer = false
	if moved := SteerOpponent(&s, r); moved == 0 {
		t.Error("expected movement once waiting is disabled")
	}
}
