package systems

import "github.com/pthm-cable/pong/components"

// MovePlayerPaddle centers the near paddle on a pointer X in court units.
// Out-of-court pointers are clamped, never rejected. Input after game over is ignored.
func MovePlayerPaddle(s *components.MatchState, r Rules, pointerX float64) {
	if s.IsGameOver {
		return
	}
	s.PointerMoved = true
	s.PlayerPaddleX = clamp(pointerX-r.PaddleWidth/2, 0, r.PaddleRange())
}
