package telemetry

import "github.com/pthm-cable/pong/components"

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	dt                  float64

	windowStartTick int32
	rallyStartTick  int32

	// Event counters for the current window
	playerHits     int
	opponentHits   int
	wallBounces    int
	playerPoints   int
	computerPoints int
	peakSpeed      float64

	// Completed rally lengths in ticks
	rallies []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec is the window length in match seconds; dt converts ticks to seconds.
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// Record counts a single event.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventPlayerHit:
		c.playerHits++
	case EventOpponentHit:
		c.opponentHits++
	case EventWallBounce:
		c.wallBounces++
	case EventPoint:
		if e.Side == components.SidePlayer {
			c.playerPoints++
		} else {
			c.computerPoints++
		}
		c.rallies = append(c.rallies, float64(e.Tick-c.rallyStartTick))
		c.rallyStartTick = e.Tick
	}

	if s := abs(e.SpeedY); s > c.peakSpeed {
		c.peakSpeed = s
	}
}

// StartMatch resets rally timing for a fresh match starting at tick.
// Window counters are kept so a window may span a restart.
func (c *Collector) StartMatch(tick int32) {
	c.rallyStartTick = tick
	c.windowStartTick = tick
}

// Pending reports whether ticks have elapsed since the window started.
func (c *Collector) Pending(currentTick int32) bool {
	return currentTick > c.windowStartTick
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, playerScore, computerScore int) WindowStats {
	rally := ComputeRallyStats(c.rallies)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		PlayerHits:     c.playerHits,
		OpponentHits:   c.opponentHits,
		WallBounces:    c.wallBounces,
		PlayerPoints:   c.playerPoints,
		ComputerPoints: c.computerPoints,

		Rallies:   len(c.rallies),
		RallyMean: rally.Mean,
		RallyStd:  rally.Std,
		RallyP10:  rally.P10,
		RallyP50:  rally.P50,
		RallyP90:  rally.P90,
		RallyMax:  rally.Max,

		PeakSpeed:     c.peakSpeed,
		PlayerScore:   playerScore,
		ComputerScore: computerScore,
	}

	c.windowStartTick = currentTick
	c.playerHits = 0
	c.opponentHits = 0
	c.wallBounces = 0
	c.playerPoints = 0
	c.computerPoints = 0
	c.peakSpeed = 0
	c.rallies = c.rallies[:0]

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
