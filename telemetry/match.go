package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/pong/components"
)

// MatchRecord is one row of matches.csv.
type MatchRecord struct {
	Match         int    `csv:"match"`
	Seed          int64  `csv:"seed"`
	Winner        string `csv:"winner"`
	PlayerScore   int    `csv:"player_score"`
	ComputerScore int    `csv:"computer_score"`
	Ticks         int32  `csv:"ticks"`
	PlayerHits    int    `csv:"player_hits"`
	OpponentHits  int    `csv:"opponent_hits"`
	WallBounces   int    `csv:"wall_bounces"`
	LongestRally  int32  `csv:"longest_rally"`
	Highlights    int    `csv:"highlights"`
}

// LogValue implements slog.LogValuer for structured logging.
func (r MatchRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("match", r.Match),
		slog.Int64("seed", r.Seed),
		slog.String("winner", r.Winner),
		slog.String("score", scoreLine(r.PlayerScore, r.ComputerScore)),
		slog.Int("ticks", int(r.Ticks)),
		slog.Int("player_hits", r.PlayerHits),
		slog.Int("opponent_hits", r.OpponentHits),
		slog.Int("longest_rally", int(r.LongestRally)),
	)
}

// MatchTracker accumulates per-match statistics over the life of one match.
type MatchTracker struct {
	match int
	seed  int64

	rallyStart   int32
	playerHits   int
	opponentHits int
	wallBounces  int
	longestRally int32
	highlights   int
}

// NewMatchTracker creates a tracker for the first match.
func NewMatchTracker(seed int64) *MatchTracker {
	return &MatchTracker{match: 1, seed: seed}
}

// Match returns the 1-based index of the current match.
func (mt *MatchTracker) Match() int {
	return mt.match
}

// Record counts an event. For a point it returns the finished rally length.
func (mt *MatchTracker) Record(e Event) (rallyTicks int32, ended bool) {
	switch e.Type {
	case EventPlayerHit:
		mt.playerHits++
	case EventOpponentHit:
		mt.opponentHits++
	case EventWallBounce:
		mt.wallBounces++
	case EventPoint:
		rallyTicks = e.Tick - mt.rallyStart
		mt.rallyStart = e.Tick
		if rallyTicks > mt.longestRally {
			mt.longestRally = rallyTicks
		}
		return rallyTicks, true
	}
	return 0, false
}

// AddHighlights counts highlights attributed to the current match.
func (mt *MatchTracker) AddHighlights(n int) {
	mt.highlights += n
}

// Finish builds the record for the finished match.
func (mt *MatchTracker) Finish(s components.MatchState) MatchRecord {
	return MatchRecord{
		Match:         mt.match,
		Seed:          mt.seed,
		Winner:        s.Winner.String(),
		PlayerScore:   s.PlayerScore,
		ComputerScore: s.OpponentScore,
		Ticks:         s.Tick,
		PlayerHits:    mt.playerHits,
		OpponentHits:  mt.opponentHits,
		WallBounces:   mt.wallBounces,
		LongestRally:  mt.longestRally,
		Highlights:    mt.highlights,
	}
}

// Next advances to a new match with the given seed.
func (mt *MatchTracker) Next(seed int64) {
	*mt = MatchTracker{match: mt.match + 1, seed: seed}
}
