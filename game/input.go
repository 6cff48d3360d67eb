package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard and mouse input.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.restart()
	}

	a.overlays.HandleInput()
	a.handlePointer()
}

// handlePointer publishes the mouse X in court units whenever the mouse moves.
func (a *App) handlePointer() {
	if a.paused {
		return
	}
	delta := rl.GetMouseDelta()
	if delta.X == 0 && delta.Y == 0 {
		return
	}
	pos := rl.GetMousePosition()
	x, _ := a.viewport.ScreenToCourt(pos.X, pos.Y)
	a.pointer.Publish(float64(x))
}

// handleResize checks for window resize and refits the court.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == a.screenWidth && h == a.screenHeight {
		return
	}
	a.screenWidth = w
	a.screenHeight = h
	a.viewport.Resize(w, h)
}
