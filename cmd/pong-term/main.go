// Package main is a terminal front end: the court drawn with tcell and the
// near paddle following the mouse.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pong/camera"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/game"
)

// Terminal cells are roughly twice as tall as they are wide
const cellAspect = 2

type termApp struct {
	screen   tcell.Screen
	session  *game.Session
	pointer  *game.PointerHub
	viewport *camera.Viewport
	interval time.Duration

	cancel context.CancelFunc
	done   chan error
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	// The terminal owns stdout, so logs go to stderr and only warnings show
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	g, err := game.NewGame(cfg, game.Options{Seed: rngSeed})
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		slog.Error("failed to create screen", "error", err)
		g.Close()
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		slog.Error("failed to init screen", "error", err)
		g.Close()
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	w, h := screen.Size()
	r := g.Rules()
	pointer := game.NewPointerHub()

	app := &termApp{
		screen:   screen,
		session:  game.NewSession(g, pointer),
		pointer:  pointer,
		viewport: camera.NewWithAspect(float32(w), float32(h), float32(r.Width), float32(r.Height), cellAspect),
		interval: time.Duration(cfg.Derived.DT * float64(time.Second)),
	}
	app.run()
}

// run owns the terminal: it polls events, redraws at the tick rate and
// restarts or quits on request.
func (a *termApp) run() {
	a.start()
	defer a.session.Close()
	defer a.stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	redraw := time.NewTicker(a.interval)
	defer redraw.Stop()

	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}
		case <-redraw.C:
			a.draw(a.session.View())
		}
	}
}

func (a *termApp) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				a.restart()
			}
		}
	case *tcell.EventMouse:
		mx, my := ev.Position()
		x, _ := a.viewport.ScreenToCourt(float32(mx)+0.5, float32(my)+0.5)
		a.pointer.Publish(float64(x))
	case *tcell.EventResize:
		a.screen.Sync()
		w, h := a.screen.Size()
		a.viewport.Resize(float32(w), float32(h))
	}
	return true
}

func (a *termApp) start() {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	a.cancel = cancel
	a.done = done

	clock := game.NewTickerClock(a.interval)
	go func() {
		defer clock.Stop()
		done <- a.session.Run(ctx, clock)
	}()
}

func (a *termApp) stop() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	if err := <-a.done; err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("session stopped", "error", err)
	}
	a.cancel = nil
}

func (a *termApp) restart() {
	a.stop()
	a.session.Restart()
	a.start()
}
