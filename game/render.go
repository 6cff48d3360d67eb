package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/telemetry"
	"github.com/pthm-cable/pong/ui"
)

var (
	courtColor    = rl.Black
	paddleColor   = rl.White
	ballColor     = rl.White
	centerColor   = rl.Gray
	borderColor   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	hitSparkColor = rl.Color{R: 255, G: 220, B: 120, A: 255}
	wallSparkCol  = rl.Color{R: 140, G: 180, B: 255, A: 255}
	pointSparkCol = rl.Color{R: 255, G: 90, B: 90, A: 255}
)

// Draw renders one frame and returns the game-over screen action, if any.
func (a *App) Draw() ui.Action {
	frame := a.session.View()

	var perf telemetry.PerfStats
	showPerf := a.overlays.IsEnabled(ui.OverlayPerf)
	a.session.WithGame(func(g *Game) {
		g.Perf().RecordFrame()
		if frame.IsGameOver {
			// The session has stopped stepping, so let sparks fade out here
			g.UpdateEffects()
		}
		if showPerf {
			perf = g.Perf().Stats()
		}
	})

	rl.BeginDrawing()
	rl.ClearBackground(borderColor)

	cx, cy, cw, ch := a.viewport.CourtRect()
	rl.DrawRectangle(int32(cx), int32(cy), int32(cw), int32(ch), courtColor)

	a.drawCenterLine(frame)
	if a.overlays.IsEnabled(ui.OverlayHitZones) {
		a.drawHitZones(frame)
	}
	a.drawPaddles(frame)
	a.drawBall(frame)
	if a.overlays.IsEnabled(ui.OverlaySparks) {
		a.drawSparks()
	}

	a.hud.Draw(ui.HUDData{
		PlayerScore:   frame.PlayerScore,
		OpponentScore: frame.OpponentScore,
		Tick:          frame.Tick,
		FPS:           rl.GetFPS(),
		Paused:        a.paused,
		CourtX:        cx,
		CourtY:        cy,
		CourtW:        cw,
		CourtH:        ch,
	})

	a.drawPanels(perf)

	action := ui.ActionNone
	if frame.IsGameOver {
		action = a.gameOver.Draw(frame.Winner, cx, cy, cw, ch)
	}

	rl.EndDrawing()
	return action
}

// drawCenterLine draws the dashed half-court line.
func (a *App) drawCenterLine(f Frame) {
	const dash, gap = 12.0, 8.0
	y := f.CourtHeight / 2
	for x := 0.0; x < f.CourtWidth; x += dash + gap {
		x0, y0 := a.viewport.CourtToScreen(float32(x), float32(y))
		x1, _ := a.viewport.CourtToScreen(float32(min(x+dash, f.CourtWidth)), float32(y))
		rl.DrawLineEx(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y0}, 2, centerColor)
	}
}

// drawPaddles draws both paddles just inside their scoring edges.
func (a *App) drawPaddles(f Frame) {
	a.drawCourtRect(f.OpponentPaddleX, f.PaddleInset-f.PaddleHeight, f.PaddleWidth, f.PaddleHeight, paddleColor)
	a.drawCourtRect(f.PlayerPaddleX, f.CourtHeight-f.PaddleInset, f.PaddleWidth, f.PaddleHeight, paddleColor)
}

func (a *App) drawBall(f Frame) {
	x, y := a.viewport.CourtToScreen(float32(f.BallX), float32(f.BallY))
	r, _ := a.viewport.CourtLen(float32(f.BallRadius), 0)
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, max(r, 2), ballColor)
}

// drawSparks draws the effect particles from the ECS world.
func (a *App) drawSparks() {
	a.session.WithGame(func(g *Game) {
		g.Sparks().Each(func(pos *components.Position, s *components.Spark) {
			x, y := a.viewport.CourtToScreen(pos.X, pos.Y)
			size, _ := a.viewport.CourtLen(s.Size, 0)
			rl.DrawCircleV(rl.Vector2{X: x, Y: y}, max(size, 1), rl.Fade(sparkColor(s.Kind), s.Alpha()))
		})
	})
}

func sparkColor(kind components.SparkKind) rl.Color {
	switch kind {
	case components.SparkWallBounce:
		return wallSparkCol
	case components.SparkPoint:
		return pointSparkCol
	default:
		return hitSparkColor
	}
}

// drawPanels draws the optional side panels in the top-right corner.
func (a *App) drawPanels(perf telemetry.PerfStats) {
	x := int32(a.screenWidth) - 230
	y := int32(10)
	if a.overlays.IsEnabled(ui.OverlayControls) {
		y = a.controls.Draw(x+50, y, a.overlays) + 10
	}
	if a.overlays.IsEnabled(ui.OverlayPerf) {
		a.perfPanel.Draw(x, y, perf)
	}
}

// drawCourtRect fills a rectangle given in court units.
func (a *App) drawCourtRect(x, y, w, h float64, color rl.Color) {
	sx, sy := a.viewport.CourtToScreen(float32(x), float32(y))
	sw, sh := a.viewport.CourtLen(float32(w), float32(h))
	rl.DrawRectangleRec(rl.Rectangle{X: sx, Y: sy, Width: sw, Height: sh}, color)
}
