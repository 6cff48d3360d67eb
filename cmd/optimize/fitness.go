package main

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/game"
	"github.com/pthm-cable/pong/telemetry"
)

// Fitness weights. Balance dominates; rally length separates balanced configs.
const (
	weightBalance = 1.0
	weightRally   = 0.3

	rallyScale = 600.0 // Ticks at which the rally score reaches 1-1/e
)

// FitnessEvaluator runs headless matches against the autopilot and scores
// how even and lively they are.
type FitnessEvaluator struct {
	params     *ParamVector
	matches    int
	maxTicks   int
	seeds      []int64
	baseConfig *config.Config

	mu         sync.Mutex
	lastResult Result
}

// Result summarizes one evaluation across all seeds.
type Result struct {
	Fitness    float64
	WinRate    float64 // Player share of finished matches
	MeanRally  float64 // Ticks per point
	Unfinished int
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, matches, maxTicks int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		matches:    matches,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
	}
}

// LastResult returns the summary of the most recent Evaluate call.
func (fe *FitnessEvaluator) LastResult() Result {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastResult
}

// Evaluate computes fitness for a parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	// Run all seeds in parallel
	results := make([][]telemetry.MatchRecord, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSeed(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var all []telemetry.MatchRecord
	for _, r := range results {
		all = append(all, r...)
	}

	res := Score(all)
	fe.mu.Lock()
	fe.lastResult = res
	fe.mu.Unlock()
	return res.Fitness
}

// runSeed plays one batch of matches. Invalid parameter combinations score
// as if no match finished.
func (fe *FitnessEvaluator) runSeed(cfg *config.Config, seed int64) []telemetry.MatchRecord {
	g, err := game.NewGame(cfg, game.Options{Seed: seed})
	if err != nil {
		slog.Warn("rejected parameters", "error", err)
		return nil
	}
	defer g.Close()

	records, err := game.RunMatches(context.Background(), g, cfg.Autopilot, fe.matches, fe.maxTicks)
	if err != nil {
		slog.Warn("batch failed", "seed", seed, "error", err)
	}
	return records
}

// Score turns match records into a fitness. A perfect score has the player
// winning half the matches with long rallies.
func Score(records []telemetry.MatchRecord) Result {
	var wins, finished float64
	var res Result
	rallies := make([]float64, 0, len(records))

	for _, r := range records {
		if r.Winner == "None" {
			res.Unfinished++
			continue
		}
		finished++
		if r.Winner == "Player" {
			wins++
		}
		points := float64(r.PlayerScore + r.ComputerScore)
		if points > 0 {
			rallies = append(rallies, float64(r.Ticks)/points)
		}
	}

	if finished == 0 {
		res.Fitness = weightBalance
		return res
	}

	res.WinRate = wins / finished
	if len(rallies) > 0 {
		res.MeanRally = stat.Mean(rallies, nil)
	}

	balance := 2 * math.Abs(res.WinRate-0.5)
	rally := 1 - math.Exp(-res.MeanRally/rallyScale)
	unfinished := float64(res.Unfinished) / float64(len(records))

	res.Fitness = weightBalance*(balance+unfinished) - weightRally*rally
	return res
}
