package game

import "github.com/pthm-cable/pong/components"

// Frame is a read-only copy of everything a renderer needs for one frame.
type Frame struct {
	BallX, BallY   float64
	SpeedX, SpeedY float64

	PlayerPaddleX   float64
	OpponentPaddleX float64

	PlayerScore   int
	OpponentScore int

	Tick       int32
	IsGameOver bool
	Winner     components.Side

	// Geometry, fixed for the match
	CourtWidth, CourtHeight   float64
	PaddleWidth, PaddleHeight float64
	PaddleInset               float64
	BallRadius                float64
}

// View returns the current frame.
func (g *Game) View() Frame {
	s := g.state
	r := g.rules
	return Frame{
		BallX:           s.BallX,
		BallY:           s.BallY,
		SpeedX:          s.SpeedX,
		SpeedY:          s.SpeedY,
		PlayerPaddleX:   s.PlayerPaddleX,
		OpponentPaddleX: s.OpponentPaddleX,
		PlayerScore:     s.PlayerScore,
		OpponentScore:   s.OpponentScore,
		Tick:            s.Tick,
		IsGameOver:      s.IsGameOver,
		Winner:          s.Winner,
		CourtWidth:      r.Width,
		CourtHeight:     r.Height,
		PaddleWidth:     r.PaddleWidth,
		PaddleHeight:    r.PaddleHeight,
		PaddleInset:     r.PaddleInset,
		BallRadius:      r.BallRadius,
	}
}
