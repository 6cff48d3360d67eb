package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel lists overlay toggles and key bindings.
type ControlsPanel struct {
	renderer *Renderer
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), width: width}
}

// Draw renders the panel at (x, y) and returns the Y below it.
func (c *ControlsPanel) Draw(x, y int32, overlays *OverlayRegistry) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	rows := 2 // Title and the pause/restart line
	for _, cat := range categories {
		rows += len(overlays.ByCategory(cat)) + 1
	}
	height := int32(rows)*lineHeight + padding*2
	r.DrawPanel(x, y, c.width, height)

	cy := y + padding
	rl.DrawText("Controls", x+padding, cy, r.Theme.HeaderFontSize, rl.White)
	cy += lineHeight

	for _, cat := range categories {
		rl.DrawText(categoryLabel(cat), x+padding, cy, r.Theme.FontSize, r.Theme.SectionHeader)
		cy += lineHeight
		for _, desc := range overlays.ByCategory(cat) {
			c.drawToggle(x+padding, cy, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			cy += lineHeight
		}
	}

	rl.DrawText("[Space] pause  [R] restart", x+padding, cy, r.Theme.FontSize, r.Theme.LabelColor)
	return y + height
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Gray)
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
