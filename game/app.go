package game

import (
	"context"
	"errors"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/camera"
	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/ui"
)

// App is the graphical front end. Its methods must run on the thread that
// opened the raylib window; the session steps on its own goroutine, paced
// by the frames App draws.
type App struct {
	session *Session
	pointer *PointerHub
	clock   *FrameClock

	viewport *camera.Viewport
	overlays *ui.OverlayRegistry
	registry *systems.SystemRegistry

	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	controls  *ui.ControlsPanel
	gameOver  *ui.GameOverScreen

	screenWidth, screenHeight float32
	paused                    bool
	quit                      bool

	cancel context.CancelFunc
	done   chan error
}

// NewApp creates the front end for g. The raylib window must already be open.
func NewApp(g *Game) *App {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	r := g.Rules()

	pointer := NewPointerHub()
	registry := systems.NewSystemRegistry()

	return &App{
		session:      NewSession(g, pointer),
		pointer:      pointer,
		clock:        NewFrameClock(),
		viewport:     camera.New(w, h, float32(r.Width), float32(r.Height)),
		overlays:     ui.NewOverlayRegistry(),
		registry:     registry,
		hud:          ui.NewHUD(),
		perfPanel:    ui.NewPerfPanel(registry, 220),
		controls:     ui.NewControlsPanel(180),
		gameOver:     ui.NewGameOverScreen(),
		screenWidth:  w,
		screenHeight: h,
	}
}

// Run drives the window until it is closed or the player quits.
func (a *App) Run() {
	a.start()
	defer a.session.Close()
	defer a.stop()

	for !a.quit && !rl.WindowShouldClose() {
		a.handleInput()

		if !a.paused {
			a.clock.Frame()
		}

		action := a.Draw()
		switch action {
		case ui.ActionPlayAgain:
			a.restart()
		case ui.ActionQuit:
			a.quit = true
		}
	}
}

// start launches the session loop for the current match.
func (a *App) start() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	a.cancel = cancel
	a.done = done

	go func() {
		done <- a.session.Run(ctx, a.clock)
	}()
}

// stop cancels the session loop and waits for it to return.
func (a *App) stop() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	if err := <-a.done; err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("session stopped", "error", err)
	}
	a.cancel = nil
	a.done = nil
}

// restart begins a new match from scratch.
func (a *App) restart() {
	a.stop()
	a.session.Restart()
	a.paused = false
	a.start()
}
