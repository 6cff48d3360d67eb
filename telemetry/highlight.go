package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/pong/components"
)

// HighlightType identifies the type of highlight.
type HighlightType string

const (
	HighlightLongRally HighlightType = "long_rally"
	HighlightComeback  HighlightType = "comeback"
	HighlightShutout   HighlightType = "shutout"
)

// Highlight represents an automatically detected moment worth keeping.
type Highlight struct {
	Type        HighlightType `csv:"type" json:"type"`
	Match       int           `csv:"match" json:"match"`
	Tick        int32         `csv:"tick" json:"tick"`
	Description string        `csv:"description" json:"description"`
}

// LogHighlight logs the highlight using slog.
func (h Highlight) LogHighlight() {
	slog.Info("highlight",
		"type", string(h.Type),
		"match", h.Match,
		"tick", h.Tick,
		"description", h.Description,
	)
}

// HighlightDetector detects interesting moments across rallies and matches.
type HighlightDetector struct {
	// Rolling rally history (circular buffer)
	history     []float64
	historySize int
	historyIdx  int
	historyFull bool

	longRallyMultiplier float64
	minLongRally        int32
	comebackDeficit     int

	// Largest deficit each side faced during the current match
	playerDeficit   int
	computerDeficit int
}

// NewHighlightDetector creates a detector with the given rally history size.
func NewHighlightDetector(historySize int, longRallyMultiplier float64, minLongRally, comebackDeficit int) *HighlightDetector {
	if historySize < 3 {
		historySize = 3
	}
	if comebackDeficit < 1 {
		comebackDeficit = 1
	}
	return &HighlightDetector{
		history:             make([]float64, historySize),
		historySize:         historySize,
		longRallyMultiplier: longRallyMultiplier,
		minLongRally:        int32(minLongRally),
		comebackDeficit:     comebackDeficit,
	}
}

// CheckRally checks a finished rally against the rolling average.
// Needs at least three prior rallies before anything is flagged.
func (hd *HighlightDetector) CheckRally(match int, tick, rallyTicks int32) *Highlight {
	var h *Highlight

	history := hd.getHistory()
	if len(history) >= 3 && rallyTicks >= hd.minLongRally {
		avg := stat.Mean(history, nil)
		if avg > 0 && float64(rallyTicks) > avg*hd.longRallyMultiplier {
			h = &Highlight{
				Type:        HighlightLongRally,
				Match:       match,
				Tick:        tick,
				Description: fmt.Sprintf("Rally of %d ticks is %.1fx average (%.0f)", rallyTicks, float64(rallyTicks)/avg, avg),
			}
		}
	}

	hd.history[hd.historyIdx] = float64(rallyTicks)
	hd.historyIdx = (hd.historyIdx + 1) % hd.historySize
	if hd.historyIdx == 0 {
		hd.historyFull = true
	}

	return h
}

func (hd *HighlightDetector) getHistory() []float64 {
	if hd.historyFull {
		return hd.history
	}
	return hd.history[:hd.historyIdx]
}

// TrackScore records the deficit each side is facing after a point.
func (hd *HighlightDetector) TrackScore(playerScore, computerScore int) {
	if d := computerScore - playerScore; d > hd.playerDeficit {
		hd.playerDeficit = d
	}
	if d := playerScore - computerScore; d > hd.computerDeficit {
		hd.computerDeficit = d
	}
}

// CheckMatchEnd returns match-level highlights and resets per-match tracking.
func (hd *HighlightDetector) CheckMatchEnd(match int, s components.MatchState) []Highlight {
	defer hd.ResetMatch()

	if !s.IsGameOver {
		return nil
	}

	var highlights []Highlight

	deficit := hd.playerDeficit
	loserScore := s.OpponentScore
	if s.Winner == components.SideComputer {
		deficit = hd.computerDeficit
		loserScore = s.PlayerScore
	}

	if deficit >= hd.comebackDeficit {
		highlights = append(highlights, Highlight{
			Type:        HighlightComeback,
			Match:       match,
			Tick:        s.Tick,
			Description: fmt.Sprintf("%s won %s after trailing by %d", s.Winner, scoreLine(s.PlayerScore, s.OpponentScore), deficit),
		})
	}

	if loserScore == 0 {
		highlights = append(highlights, Highlight{
			Type:        HighlightShutout,
			Match:       match,
			Tick:        s.Tick,
			Description: fmt.Sprintf("%s won %s without conceding", s.Winner, scoreLine(s.PlayerScore, s.OpponentScore)),
		})
	}

	return highlights
}

// ResetMatch clears per-match deficit tracking. Rally history is kept.
func (hd *HighlightDetector) ResetMatch() {
	hd.playerDeficit = 0
	hd.computerDeficit = 0
}
