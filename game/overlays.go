package game

import rl "github.com/gen2brain/raylib-go/raylib"

// drawHitZones shades the bands where paddle contact is tested and marks
// the open span of each paddle.
func (a *App) drawHitZones(f Frame) {
	zone := rl.Color{R: 80, G: 160, B: 255, A: 40}
	span := rl.Color{R: 255, G: 200, B: 80, A: 160}

	a.drawCourtRect(0, 0, f.CourtWidth, f.PaddleInset, zone)
	a.drawCourtRect(0, f.CourtHeight-f.PaddleInset, f.CourtWidth, f.PaddleInset, zone)

	a.drawSpan(f.OpponentPaddleX, f.PaddleWidth, f.PaddleInset, span)
	a.drawSpan(f.PlayerPaddleX, f.PaddleWidth, f.CourtHeight-f.PaddleInset, span)
}

// drawSpan marks both ends of a paddle span. The ends themselves are misses.
func (a *App) drawSpan(x, w, y float64, color rl.Color) {
	for _, edge := range []float64{x, x + w} {
		sx, sy := a.viewport.CourtToScreen(float32(edge), float32(y))
		rl.DrawLineEx(rl.Vector2{X: sx, Y: sy - 6}, rl.Vector2{X: sx, Y: sy + 6}, 1, color)
	}
}
