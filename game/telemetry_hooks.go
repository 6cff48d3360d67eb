package game

import (
	"log/slog"

	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/telemetry"
)

// recordContacts feeds one frame's contacts to the collectors.
func (g *Game) recordContacts(c systems.Contacts) {
	s := &g.state
	for _, e := range telemetry.EventsFromContacts(s.Tick, c, s.SpeedY) {
		g.collector.Record(e)

		rally, ended := g.tracker.Record(e)
		if !ended {
			continue
		}

		slog.Debug("point_scored",
			"match", g.tracker.Match(),
			"tick", e.Tick,
			"side", e.Side.String(),
			"score", []int{s.PlayerScore, s.OpponentScore},
			"rally_ticks", rally,
		)

		g.highlights.TrackScore(s.PlayerScore, s.OpponentScore)
		if h := g.highlights.CheckRally(g.tracker.Match(), e.Tick, rally); h != nil {
			g.handleHighlight(*h)
		}
	}
}

// flushTelemetry flushes the stats window when it is due, or unconditionally
// when force is set (at match end).
func (g *Game) flushTelemetry(force bool) {
	tick := g.state.Tick
	if !force && !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, g.state.PlayerScore, g.state.OpponentScore)
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.output.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// handleHighlight logs, records and optionally snapshots a highlight.
func (g *Game) handleHighlight(h telemetry.Highlight) {
	g.tracker.AddHighlights(1)

	if g.logStats {
		h.LogHighlight()
	}
	if err := g.output.WriteHighlight(h); err != nil {
		slog.Error("failed to write highlight", "error", err)
	}
	// Match-end highlights share one snapshot taken by finishMatch
	if g.snapshotDir != "" && h.Type == telemetry.HighlightLongRally {
		g.saveSnapshot(&h)
	}
}

// saveSnapshot creates and saves a snapshot to disk.
func (g *Game) saveSnapshot(h *telemetry.Highlight) {
	snapshot := &telemetry.Snapshot{
		Version:     telemetry.SnapshotVersion,
		Seed:        g.seed,
		Match:       g.tracker.Match(),
		CourtWidth:  g.rules.Width,
		CourtHeight: g.rules.Height,
		State:       telemetry.StateToJSON(g.state),
		Highlight:   h,
	}

	path, err := telemetry.SaveSnapshot(snapshot, g.snapshotDir)
	if err != nil {
		slog.Error("failed to save snapshot", "error", err)
		return
	}

	slog.Info("snapshot saved", "path", path, "tick", g.state.Tick)
}
