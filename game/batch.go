package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/telemetry"
)

// RunMatches plays matches back to back with the autopilot on the near paddle.
// Match i is seeded with the game's seed plus i. A match still running after
// maxTicks steps (0 = unlimited) is cut off and recorded without a winner.
func RunMatches(ctx context.Context, g *Game, ap config.AutopilotConfig, matches, maxTicks int) ([]telemetry.MatchRecord, error) {
	base := g.seed
	startX := g.rules.Width / 2

	pilot := NewAutopilot(ap, base, startX)
	session := NewSession(g, pilot)
	defer session.Close()

	records := make([]telemetry.MatchRecord, 0, matches)
	for i := 0; i < matches; i++ {
		if i > 0 {
			seed := base + int64(i)
			g.Reseed(seed)
			pilot.Reseed(seed, startX)
			session.Restart()
		}

		var clock Clock = ImmediateClock{}
		if maxTicks > 0 {
			clock = &LimitClock{Clock: clock, Max: maxTicks}
		}

		err := session.Run(ctx, clock)
		switch {
		case errors.Is(err, ErrTickLimit):
			slog.Warn("match cut off", "match", i+1, "ticks", maxTicks)
		case err != nil:
			return records, err
		}

		records = append(records, g.Record())
	}
	return records, nil
}
