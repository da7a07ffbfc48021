// Package hud draws the in-game health readout.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/gridcrawl/internal/render"
)

// HUD shows the player's health in the top-left corner.
type HUD struct {
	maxHealth int

	X, Y      int
	BarWidth  int
	BarHeight int
}

// New creates a HUD for a player starting at maxHealth.
func New(maxHealth int) *HUD {
	return &HUD{
		maxHealth: maxHealth,
		X:         10,
		Y:         10,
		BarWidth:  150,
		BarHeight: 10,
	}
}

// HealthText is the readout line, e.g. "Health: 80".
func HealthText(health int) string {
	return fmt.Sprintf("Health: %d", health)
}

// BarFill returns the filled width of the health bar and its colour.
func (h *HUD) BarFill(health int) (int, color.RGBA) {
	if h.maxHealth <= 0 || health <= 0 {
		return 0, color.RGBA{}
	}
	healthPct := float64(health) / float64(h.maxHealth)
	if healthPct > 1 {
		healthPct = 1
	}
	fillWidth := int(float64(h.BarWidth-2) * healthPct)
	if fillWidth < 1 {
		fillWidth = 1
	}

	// Color based on health percentage
	var fillColor color.RGBA
	if healthPct > 0.6 {
		fillColor = color.RGBA{50, 180, 50, 255} // Green
	} else if healthPct > 0.3 {
		fillColor = color.RGBA{200, 180, 50, 255} // Yellow
	} else {
		fillColor = color.RGBA{200, 50, 50, 255} // Red
	}
	return fillWidth, fillColor
}

// Draw renders the readout and a bar beneath it.
func (h *HUD) Draw(screen render.Image, r render.Renderer, health int) {
	text := HealthText(health)
	r.DrawText(screen, text, h.X, h.Y, color.White, 2)

	_, th := r.MeasureText(text, 2)
	barY := h.Y + th + 4
	r.FillRect(screen, float32(h.X), float32(barY), float32(h.BarWidth), float32(h.BarHeight), color.RGBA{60, 20, 20, 255})

	if fill, clr := h.BarFill(health); fill > 0 {
		r.FillRect(screen, float32(h.X+1), float32(barY+1), float32(fill), float32(h.BarHeight-2), clr)
	}
}
