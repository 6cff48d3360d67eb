package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/audio"
	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, autopilot on the near paddle")
	matches := flag.Int("matches", 1, "Matches to play in headless mode")
	maxTicks := flag.Int("max-ticks", 0, "Cut a headless match off after N ticks (0 = unlimited)")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for snapshot files")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	sound := flag.Bool("sound", false, "Enable sound (overrides config)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	if *sound {
		cfg.Audio.Enabled = true
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:        rngSeed,
		LogStats:    *logStats,
		OutputDir:   *outputDir,
		SnapshotDir: *snapshotDir,
	}

	g, err := game.NewGame(cfg, opts)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	if *headless {
		slog.Info("starting headless matches",
			"seed", rngSeed,
			"matches", *matches,
			"max_ticks", *maxTicks,
		)

		records, err := game.RunMatches(context.Background(), g, cfg.Autopilot, *matches, *maxTicks)
		if err != nil {
			slog.Error("headless run failed", "error", err)
			g.Close() // os.Exit skips deferred calls
			os.Exit(1)
		}

		wins := 0
		for _, r := range records {
			if r.Winner == components.SidePlayer.String() {
				wins++
			}
		}
		slog.Info("headless run complete", "matches", len(records), "player_wins", wins)
		return
	}

	// Graphical mode
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio)
		if err := sm.Initialize(); err != nil {
			// Non-fatal, the game runs without sound
			slog.Warn("audio initialization failed", "error", err)
		} else {
			defer sm.Cleanup()
			g.OnContact(sm.PlayContacts)
			g.OnGameOver(sm.PlayGameOver)
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Derived.ScreenW32), int32(cfg.Derived.ScreenH32), "Pong")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	game.NewApp(g).Run()
}
