// Package game runs Pong matches: the frame stepper, scheduling and front ends.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/pong/components"
	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/telemetry"
)

// Game holds one match and everything observing it.
// It is not safe for concurrent use; Session serializes access.
type Game struct {
	cfg   *config.Config
	rules systems.Rules
	state components.MatchState

	seed int64
	rng  *rand.Rand

	sparks *systems.SparkSystem

	// Telemetry
	perf        *telemetry.PerfCollector
	collector   *telemetry.Collector
	tracker     *telemetry.MatchTracker
	highlights  *telemetry.HighlightDetector
	output      *telemetry.OutputManager
	logStats    bool
	snapshotDir string
	lastRecord  *telemetry.MatchRecord
	closed      bool

	gameOverFired    bool
	gameOverHandlers []func(components.Side)
	contactHandlers  []func(systems.Contacts)
}

// NewGame validates the configured rules and creates a match ready to step.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	rules := systems.RulesFromConfig(cfg)
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config: %w", err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g := &Game{
		cfg:    cfg,
		rules:  rules,
		state:  systems.NewMatchState(rules),
		seed:   opts.Seed,
		rng:    rng,
		sparks: systems.NewSparkSystem(cfg.Effects.MaxSparks, cfg.Effects.SparkLife, rng),

		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Derived.DT),
		tracker:   telemetry.NewMatchTracker(opts.Seed),
		highlights: telemetry.NewHighlightDetector(
			cfg.Telemetry.HighlightHistory,
			cfg.Telemetry.LongRallyMultiplier,
			cfg.Telemetry.MinLongRally,
			cfg.Telemetry.ComebackDeficit,
		),
		output:      output,
		logStats:    opts.LogStats,
		snapshotDir: opts.SnapshotDir,
	}
	g.collector.StartMatch(0)

	return g, nil
}

// Step advances the match by exactly one frame. It is a no-op once the match is over.
func (g *Game) Step() {
	if g.state.IsGameOver {
		return
	}
	s := &g.state
	s.Tick++

	g.perf.StartTick()

	g.perf.StartPhase(systems.PhaseMotion)
	systems.IntegrateBall(s)

	g.perf.StartPhase(systems.PhaseWalls)
	wallX, wallY := s.BallX, s.BallY
	bounced := systems.ResolveWalls(s, g.rules)

	g.perf.StartPhase(systems.PhasePaddles)
	contacts := systems.ResolvePaddles(s, g.rules)
	if bounced {
		contacts.WallBounce = true
		if !contacts.PlayerHit && !contacts.OpponentHit && contacts.Scored == components.SideNone {
			contacts.X, contacts.Y = wallX, wallY
		}
	}

	g.perf.StartPhase(systems.PhaseOpponent)
	systems.SteerOpponent(s, g.rules)

	g.perf.StartPhase(systems.PhaseTermination)
	winner := systems.CheckWinner(s, g.rules)

	g.perf.StartPhase(systems.PhaseSparks)
	g.sparks.Emit(contacts)
	g.sparks.Update()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.recordContacts(contacts)
	g.flushTelemetry(false)

	g.perf.EndTick()

	if contacts.Any() {
		for _, fn := range g.contactHandlers {
			fn(contacts)
		}
	}
	if winner != components.SideNone {
		g.finishMatch()
	}
}

// MovePointer feeds a pointer X position in court coordinates.
func (g *Game) MovePointer(x float64) {
	systems.MovePlayerPaddle(&g.state, g.rules, x)
}

// UpdateEffects ages visual effects without stepping the match.
// Used by front ends while paused or after game over.
func (g *Game) UpdateEffects() {
	g.sparks.Update()
}

// Restart replaces the match state wholesale and re-arms the game-over event.
func (g *Game) Restart() {
	g.state = systems.NewMatchState(g.rules)
	g.sparks.Clear()
	g.gameOverFired = false
	g.lastRecord = nil

	g.tracker.Next(g.seed)
	g.collector.StartMatch(0)
	g.highlights.ResetMatch()
}

// Reseed changes the seed used for effects and recorded with the next match.
func (g *Game) Reseed(seed int64) {
	g.seed = seed
	g.rng.Seed(seed)
}

// OnGameOver registers fn to be called exactly once per match with the winner.
func (g *Game) OnGameOver(fn func(components.Side)) {
	g.gameOverHandlers = append(g.gameOverHandlers, fn)
}

// OnContact registers fn to be called on every frame with a hit, bounce or point.
func (g *Game) OnContact(fn func(systems.Contacts)) {
	g.contactHandlers = append(g.contactHandlers, fn)
}

// finishMatch records the result and fires the game-over handlers once.
func (g *Game) finishMatch() {
	if g.gameOverFired {
		return
	}
	g.gameOverFired = true

	g.flushTelemetry(true)

	var last *telemetry.Highlight
	for _, h := range g.highlights.CheckMatchEnd(g.tracker.Match(), g.state) {
		g.handleHighlight(h)
		last = &h
	}

	rec := g.tracker.Finish(g.state)
	g.lastRecord = &rec
	if err := g.output.WriteMatch(rec); err != nil {
		slog.Error("failed to write match", "error", err)
	}
	slog.Info("match_over", "result", rec)
	if g.logStats {
		logMatchSummary(rec)
	}
	if g.snapshotDir != "" {
		g.saveSnapshot(last)
	}

	winner := g.state.Winner
	for _, fn := range g.gameOverHandlers {
		fn(winner)
	}
}

// Over reports whether the match has ended.
func (g *Game) Over() bool {
	return g.state.IsGameOver
}

// Winner returns the winning side, or SideNone while the match runs.
func (g *Game) Winner() components.Side {
	return g.state.Winner
}

// Rules returns the rules the match was created with.
func (g *Game) Rules() systems.Rules {
	return g.rules
}

// Sparks returns the effect system for rendering.
func (g *Game) Sparks() *systems.SparkSystem {
	return g.sparks
}

// Perf returns the frame timing collector.
func (g *Game) Perf() *telemetry.PerfCollector {
	return g.perf
}

// Record returns the record of the current match so far.
// After game over it is the record that was written to matches.csv.
func (g *Game) Record() telemetry.MatchRecord {
	if g.lastRecord != nil {
		return *g.lastRecord
	}
	return g.tracker.Finish(g.state)
}

// Close writes any partial telemetry window and closes output.
// Calls after the first are no-ops.
func (g *Game) Close() error {
	if g.closed {
		return nil
	}
	g.closed = true
	if g.collector.Pending(g.state.Tick) {
		g.flushTelemetry(true)
	}
	return g.output.Close()
}
