package systems

import "testing"

func TestNewMatchState(t *testing.T) {
	r := testRules(t)
	s := NewMatchState(r)

	if s.BallX != 250 || s.BallY != 350 {
		t.Errorf("ball at (%v, %v), want (250, 350)", s.BallX, s.BallY)
	}
	if s.SpeedY != -3 || s.SpeedX != 0 {
		t.Errorf("speed = (%v, %v), want (0, -3)", s.SpeedX, s.SpeedY)
	}
	if s.PlayerPaddleX != 225 || s.OpponentPaddleX != 225 {
		t.Errorf("paddles at %v/%v, want 225/225", s.PlayerPaddleX, s.OpponentPaddleX)
	}
	if s.PlayerScore != 0 || s.OpponentScore != 0 {
		t.Errorf("scores = %d/%d, want 0/0", s.PlayerScore, s.OpponentScore)
	}
	if s.IsGameOver || s.PointerMoved {
		t.Error("fresh match must not be over or have pointer input")
	}
}

func TestResetBallAlwaysServesFromCenter(t *testing.T) {
	r := testRules(t)
	s := NewMatchState(r)

	// Mess up the ball in several ways and reset each time
	perturb := []func(){
		func() { s.BallX, s.BallY = 12, 690 },
		func() { s.SpeedX, s.SpeedY = -7.5, 5 },
		func() { s.BallX, s.SpeedX, s.SpeedY = 499, 3, -5 },
	}

	for i, p := range perturb {
		p()
		ResetBall(&s, r)
		if s.BallX != 250 || s.BallY != 350 || s.SpeedY != -3 || s.SpeedX != 0 {
			t.Errorf("case %d: reset gave ball=(%v,%v) speed=(%v,%v), want (250,350) (0,-3)",
				i, s.BallX, s.BallY, s.SpeedX, s.SpeedY)
		}
	}
}
