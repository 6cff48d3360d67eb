package game

import (
	"context"
	"testing"
)

func TestRunMatchesPlaysToCompletion(t *testing.T) {
	g := newTestGame(t, nil)

	records, err := RunMatches(context.Background(), g, g.cfg.Autopilot, 3, 200000)
	if err != nil {
		t.Fatalf("RunMatches: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	for i, r := range records {
		if r.Match != i+1 {
			t.Errorf("record %d has match index %d", i, r.Match)
		}
		// newTestGame seeds the first match with 1
		if r.Seed != 1+int64(i) {
			t.Errorf("record %d seed = %d, want %d", i, r.Seed, 1+int64(i))
		}
		if r.Winner != "Player" && r.Winner != "Computer" {
			t.Errorf("record %d winner = %q", i, r.Winner)
		}
		if max(r.PlayerScore, r.ComputerScore) != 7 {
			t.Errorf("record %d score %d-%d, want a side on 7", i, r.PlayerScore, r.ComputerScore)
		}
	}
}

func TestRunMatchesCutsOffLongMatches(t *testing.T) {
	g := newTestGame(t, nil)

	records, err := RunMatches(context.Background(), g, g.cfg.Autopilot, 1, 50)
	if err != nil {
		t.Fatalf("RunMatches: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records", len(records))
	}
	if r := records[0]; r.Winner != "None" || r.Ticks != 51 {
		t.Errorf("record = %+v, want unfinished after 51 ticks", r)
	}
}
