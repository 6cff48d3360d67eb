package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pong/game"
)

var (
	styleCourt  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleCenter = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
	styleScore  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorSilver)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// draw renders one frame of the court in terminal cells.
func (a *termApp) draw(f game.Frame) {
	s := a.screen
	s.Clear()

	cx, cy, cw, ch := a.viewport.CourtRect()
	x0, y0 := int(math.Floor(float64(cx))), int(math.Floor(float64(cy)))
	x1, y1 := int(math.Ceil(float64(cx+cw))), int(math.Ceil(float64(cy+ch)))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ' ', nil, styleCourt)
		}
	}
	for x := x0 - 1; x <= x1; x++ {
		s.SetContent(x, y0-1, '─', nil, styleBorder)
		s.SetContent(x, y1, '─', nil, styleBorder)
	}

	// Dashed center line
	_, my := a.viewport.CourtToScreen(0, float32(f.CourtHeight/2))
	for x := x0; x < x1; x++ {
		if (x-x0)%4 < 2 {
			s.SetContent(x, int(my), '╌', nil, styleCenter)
		}
	}

	a.drawPaddle(f.OpponentPaddleX, f.PaddleInset-f.PaddleHeight, f)
	a.drawPaddle(f.PlayerPaddleX, f.CourtHeight-f.PaddleInset, f)

	bx, by := a.viewport.CourtToScreen(float32(f.BallX), float32(f.BallY))
	s.SetContent(int(bx), int(by), '●', nil, styleCourt)

	putString(s, x0+1, int(my)-2, fmt.Sprintf("%d", f.OpponentScore), styleScore)
	putString(s, x0+1, int(my)+2, fmt.Sprintf("%d", f.PlayerScore), styleScore)

	if f.IsGameOver {
		banner := f.Winner.String() + " Wins!"
		hint := "r: play again  q: quit"
		mid := (x0 + x1) / 2
		putString(s, mid-len(banner)/2, int(my)-1, banner, styleBanner)
		putString(s, mid-len(hint)/2, int(my)+1, hint, styleScore)
	}

	s.Show()
}

// drawPaddle fills the cells covered by a paddle given in court units.
func (a *termApp) drawPaddle(x, y float64, f game.Frame) {
	sx, sy := a.viewport.CourtToScreen(float32(x), float32(y))
	sw, _ := a.viewport.CourtLen(float32(f.PaddleWidth), float32(f.PaddleHeight))
	row := int(sy)
	for c := int(sx); c < int(sx+max(sw, 1)); c++ {
		a.screen.SetContent(c, row, '█', nil, styleCourt)
	}
}

func putString(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
