package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/components"
)

// Action is the user's choice on the game-over screen.
type Action int

const (
	ActionNone Action = iota
	ActionPlayAgain
	ActionQuit
)

// GameOverScreen shows the winner and offers a rematch.
type GameOverScreen struct {
	renderer *Renderer
}

// NewGameOverScreen creates a new game-over screen.
func NewGameOverScreen() *GameOverScreen {
	return &GameOverScreen{renderer: NewRenderer()}
}

// BannerText returns the headline for the given winner.
func BannerText(winner components.Side) string {
	return winner.String() + " Wins!"
}

// Draw renders the screen centered in the court rectangle and returns the
// button the user pressed this frame, if any.
func (s *GameOverScreen) Draw(winner components.Side, courtX, courtY, courtW, courtH float32) Action {
	t := s.renderer.Theme

	rl.DrawRectangle(int32(courtX), int32(courtY), int32(courtW), int32(courtH), rl.Fade(rl.Black, 0.7))

	cx := courtX + courtW/2
	cy := courtY + courtH/2
	s.renderer.DrawCentered(BannerText(winner), int32(cx), int32(cy)-t.BannerFontSize*2, t.BannerFontSize, t.BannerColor)

	const btnW, btnH = 140, 36
	if gui.Button(rl.Rectangle{X: cx - btnW/2, Y: cy - btnH/2, Width: btnW, Height: btnH}, "Play Again") {
		return ActionPlayAgain
	}
	if gui.Button(rl.Rectangle{X: cx - btnW/2, Y: cy + btnH, Width: btnW, Height: btnH}, "Quit") {
		return ActionQuit
	}
	return ActionNone
}
