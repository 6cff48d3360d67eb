package telemetry

import (
	"math"
	"testing"
)

func TestComputeRallyStats(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   RallyStats
	}{
		{"empty", nil, RallyStats{}},
		{"single", []float64{120}, RallyStats{Mean: 120, P10: 120, P50: 120, P90: 120, Max: 120}},
		{
			"unsorted five",
			[]float64{40, 10, 50, 30, 20},
			RallyStats{Mean: 30, Std: math.Sqrt(250), P10: 10, P50: 30, P90: 50, Max: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeRallyStats(tt.values)
			check := func(field string, got, want float64) {
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("%s = %v, want %v", field, got, want)
				}
			}
			check("mean", got.Mean, tt.want.Mean)
			check("std", got.Std, tt.want.Std)
			check("p10", got.P10, tt.want.P10)
			check("p50", got.P50, tt.want.P50)
			check("p90", got.P90, tt.want.P90)
			check("max", got.Max, tt.want.Max)
		})
	}
}

func TestComputeRallyStatsDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeRallyStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestWindowStatsHitRate(t *testing.T) {
	s := WindowStats{PlayerHits: 5, OpponentHits: 4, PlayerPoints: 1}
	if got := s.HitRate(); math.Abs(got-0.9) > 1e-9 {
		t.Errorf("HitRate = %v, want 0.9", got)
	}
	if got := (WindowStats{}).HitRate(); got != 0 {
		t.Errorf("empty HitRate = %v, want 0", got)
	}
}
