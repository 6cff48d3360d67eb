package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pong/systems"
	"github.com/pthm-cable/pong/telemetry"
)

// HUDData holds everything the in-match HUD shows.
type HUDData struct {
	PlayerScore   int
	OpponentScore int
	Tick          int32
	FPS           int32
	Paused        bool

	// Court rectangle on screen
	CourtX, CourtY, CourtW, CourtH float32
}

// HUD renders scores and match status.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD. Scores sit at the left margin, the opponent's above the
// center line and the player's below it.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme
	x := int32(data.CourtX) + t.Padding
	midY := int32(data.CourtY + data.CourtH/2)

	rl.DrawText(fmt.Sprintf("%d", data.OpponentScore), x, midY-t.ScoreFontSize-8, t.ScoreFontSize, t.ScoreColor)
	rl.DrawText(fmt.Sprintf("%d", data.PlayerScore), x, midY+8, t.ScoreFontSize, t.ScoreColor)

	status := fmt.Sprintf("Tick: %d | FPS: %d", data.Tick, data.FPS)
	rl.DrawText(status, int32(data.CourtX)+t.Padding, int32(data.CourtY)+t.Padding, t.FontSize, rl.Gray)

	if data.Paused {
		h.renderer.DrawCentered("PAUSED", int32(data.CourtX+data.CourtW/2), midY-t.HeaderFontSize*3, t.BannerFontSize/2, rl.Yellow)
	}
}

// PerfPanel renders per-phase frame timings.
type PerfPanel struct {
	renderer *Renderer
	registry *systems.SystemRegistry
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(registry *systems.SystemRegistry, width int32) *PerfPanel {
	return &PerfPanel{renderer: NewRenderer(), registry: registry, width: width}
}

// Draw renders the panel at (x, y).
func (p *PerfPanel) Draw(x, y int32, stats telemetry.PerfStats) {
	r := p.renderer
	padding := r.Theme.Padding

	phases := p.registry.All()
	height := int32(len(phases)+2)*r.Theme.LineHeight + padding*2
	r.DrawPanel(x, y, p.width, height)

	cy := y + padding
	rl.DrawText("Frame Timing", x+padding, cy, r.Theme.HeaderFontSize, rl.White)
	cy += r.Theme.LineHeight

	cy = r.DrawLabelValue(x+padding, cy, "Step", stats.AvgTickDuration.Round(time.Microsecond).String())

	for _, info := range phases {
		pct := stats.PhasePct[info.ID]
		color := r.Theme.ValueColor
		if pct > 40 {
			color = rl.Orange
		}
		rl.DrawText(info.Name+":", x+padding, cy, r.Theme.FontSize, r.Theme.LabelColor)
		rl.DrawText(fmt.Sprintf("%5.1f%%", pct), x+padding+r.Theme.LabelWidth, cy, r.Theme.FontSize, color)
		cy += r.Theme.LineHeight
	}
}
