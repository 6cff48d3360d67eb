package telemetry

import (
	"testing"

	"github.com/pthm-cable/pong/components"
)

func TestMatchTracker(t *testing.T) {
	mt := NewMatchTracker(7)

	events := []Event{
		{Type: EventPlayerHit, Tick: 40},
		{Type: EventOpponentHit, Tick: 90},
		{Type: EventWallBounce, Tick: 100},
		{Type: EventPoint, Tick: 150, Side: components.SidePlayer},
		{Type: EventPlayerHit, Tick: 300},
		{Type: EventPoint, Tick: 500, Side: components.SideComputer},
	}

	var rallies []int32
	for _, e := range events {
		if r, ended := mt.Record(e); ended {
			rallies = append(rallies, r)
		}
	}

	if len(rallies) != 2 || rallies[0] != 150 || rallies[1] != 350 {
		t.Errorf("rallies = %v, want [150 350]", rallies)
	}

	mt.AddHighlights(2)
	rec := mt.Finish(components.MatchState{
		PlayerScore: 1, OpponentScore: 7, Tick: 4000,
		IsGameOver: true, Winner: components.SideComputer,
	})

	want := MatchRecord{
		Match: 1, Seed: 7, Winner: "Computer",
		PlayerScore: 1, ComputerScore: 7, Ticks: 4000,
		PlayerHits: 2, OpponentHits: 1, WallBounces: 1,
		LongestRally: 350, Highlights: 2,
	}
	if rec != want {
		t.Errorf("record = %+v\nwant %+v", rec, want)
	}

	mt.Next(8)
	if mt.Match() != 2 {
		t.Errorf("match = %d, want 2", mt.Match())
	}
	if rec := mt.Finish(components.MatchState{}); rec.PlayerHits != 0 || rec.Seed != 8 {
		t.Errorf("tracker not reset: %+v", rec)
	}
}
