package telemetry

import (
	"log/slog"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Events during window
	PlayerHits     int `csv:"player_hits"`
	OpponentHits   int `csv:"opponent_hits"`
	WallBounces    int `csv:"wall_bounces"`
	PlayerPoints   int `csv:"player_points"`
	ComputerPoints int `csv:"computer_points"`

	// Rally length distribution in ticks
	Rallies   int     `csv:"rallies"`
	RallyMean float64 `csv:"rally_mean"`
	RallyStd  float64 `csv:"rally_std"`
	RallyP10  float64 `csv:"rally_p10"`
	RallyP50  float64 `csv:"rally_p50"`
	RallyP90  float64 `csv:"rally_p90"`
	RallyMax  float64 `csv:"rally_max"`

	PeakSpeed float64 `csv:"peak_speed"` // Largest |speedY| seen

	// Scores at window end
	PlayerScore   int `csv:"player_score"`
	ComputerScore int `csv:"computer_score"`
}

// RallyStats summarizes a set of rally lengths.
type RallyStats struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// ComputeRallyStats calculates mean, sample std, empirical quantiles and max.
// Returns zero values for an empty slice; Std is zero for a single sample.
func ComputeRallyStats(values []float64) RallyStats {
	n := len(values)
	if n == 0 {
		return RallyStats{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	var rs RallyStats
	if n == 1 {
		rs.Mean = sorted[0]
	} else {
		rs.Mean, rs.Std = stat.MeanStdDev(sorted, nil)
	}
	rs.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	rs.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	rs.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	rs.Max = floats.Max(sorted)
	return rs
}

// HitRate returns the share of hits among all paddle contacts and points.
func (s WindowStats) HitRate() float64 {
	hits := s.PlayerHits + s.OpponentHits
	total := hits + s.PlayerPoints + s.ComputerPoints
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("player_hits", s.PlayerHits),
		slog.Int("opponent_hits", s.OpponentHits),
		slog.Int("wall_bounces", s.WallBounces),
		slog.Int("player_points", s.PlayerPoints),
		slog.Int("computer_points", s.ComputerPoints),
		slog.Int("rallies", s.Rallies),
		slog.Float64("rally_mean", s.RallyMean),
		slog.Float64("rally_std", s.RallyStd),
		slog.Float64("rally_p50", s.RallyP50),
		slog.Float64("rally_max", s.RallyMax),
		slog.Float64("peak_speed", s.PeakSpeed),
		slog.String("score", scoreLine(s.PlayerScore, s.ComputerScore)),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}

// scoreLine formats a score as "player-computer".
func scoreLine(player, computer int) string {
	return strconv.Itoa(player) + "-" + strconv.Itoa(computer)
}
