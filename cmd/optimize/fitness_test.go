package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/pong/config"
	"github.com/pthm-cable/pong/telemetry"
)

func TestScore(t *testing.T) {
	rec := func(winner string, p, c int, ticks int32) telemetry.MatchRecord {
		return telemetry.MatchRecord{Winner: winner, PlayerScore: p, ComputerScore: c, Ticks: ticks}
	}

	tests := []struct {
		name    string
		records []telemetry.MatchRecord
		winRate float64
		better  bool // Fitness below the one-sided case
	}{
		{"no matches", nil, 0, false},
		{"one sided", []telemetry.MatchRecord{rec("Player", 7, 0, 700), rec("Player", 7, 1, 800)}, 1, false},
		{"balanced", []telemetry.MatchRecord{rec("Player", 7, 5, 1200), rec("Computer", 6, 7, 1300)}, 0.5, true},
	}

	oneSided := Score(tests[1].records).Fitness
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Score(tt.records)
			if res.WinRate != tt.winRate {
				t.Errorf("win rate = %v, want %v", res.WinRate, tt.winRate)
			}
			if tt.better && res.Fitness >= oneSided {
				t.Errorf("fitness %v not better than one-sided %v", res.Fitness, oneSided)
			}
		})
	}
}

func TestScoreCountsUnfinished(t *testing.T) {
	res := Score([]telemetry.MatchRecord{
		{Winner: "None", Ticks: 1000},
		{Winner: "Player", PlayerScore: 7, ComputerScore: 6, Ticks: 1300},
	})
	if res.Unfinished != 1 {
		t.Errorf("unfinished = %d, want 1", res.Unfinished)
	}
	if math.Abs(res.MeanRally-100) > 1e-9 {
		t.Errorf("mean rally = %v, want 100", res.MeanRally)
	}
}

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	got := pv.Denormalize(pv.Normalize(pv.ExtractFromConfig(cfg)))
	for i, want := range pv.DefaultVector() {
		if math.Abs(got[i]-want) > 1e-9 {
			t.Errorf("%s = %v, want %v", pv.Specs[i].Name, got[i], want)
		}
	}

	pv.ApplyToConfig(cfg, []float64{-10, 100, 2.6})
	if cfg.Opponent.LeadOffset != 0 || cfg.Opponent.BaseShift != 8 || cfg.Opponent.ScoreDivisor != 3 {
		t.Errorf("applied %+v, want clamped and rounded", cfg.Opponent)
	}
}
