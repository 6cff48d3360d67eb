package game

import (
	"fmt"
	"io"
	"os"

	"github.com/pthm-cable/pong/telemetry"
)

// logWriter is the destination for human-readable match summaries.
var logWriter io.Writer = os.Stdout

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log line.
func Logf(format string, args ...interface{}) {
	fmt.Fprintf(logWriter, format+"\n", args...)
}

// logMatchSummary prints a short box-free summary of a finished match.
func logMatchSummary(r telemetry.MatchRecord) {
	Logf("=== Match %d (seed %d) ===", r.Match, r.Seed)
	Logf("Winner: %s  %d-%d after %d ticks", r.Winner, r.PlayerScore, r.ComputerScore, r.Ticks)
	Logf("Hits: player=%d opponent=%d | Walls: %d | Longest rally: %d ticks",
		r.PlayerHits, r.OpponentHits, r.WallBounces, r.LongestRally)
	if r.Highlights > 0 {
		Logf("Highlights: %d", r.Highlights)
	}
	Logf("")
}
