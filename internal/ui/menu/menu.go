// Package menu lays out and draws the main menu: a title and three buttons
// (start, sound toggle, exit).
package menu

import (
	"image/color"

	"chosenoffset.com/gridcrawl/internal/config"
	"chosenoffset.com/gridcrawl/internal/render"
)

// Title is shown above the buttons.
const Title = "DUNGEON CRAWLER"

// Button identifies a menu button.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonSound
	ButtonExit
)

func (b Button) String() string {
	switch b {
	case ButtonStart:
		return "start"
	case ButtonSound:
		return "sound"
	case ButtonExit:
		return "exit"
	default:
		return "none"
	}
}

// Layout holds the pixel rectangles of the buttons.
type Layout struct {
	Start config.Rect
	Sound config.Rect
	Exit  config.Rect
}

// NewLayout builds a layout from config.
func NewLayout(cfg config.MenuConfig) Layout {
	return Layout{Start: cfg.Start, Sound: cfg.Sound, Exit: cfg.Exit}
}

// ButtonAt returns the button under (x, y), or ButtonNone. Rectangles include
// their top-left edge and exclude the bottom-right one.
func (l Layout) ButtonAt(x, y int) Button {
	switch {
	case pointInRect(x, y, l.Start):
		return ButtonStart
	case pointInRect(x, y, l.Sound):
		return ButtonSound
	case pointInRect(x, y, l.Exit):
		return ButtonExit
	default:
		return ButtonNone
	}
}

// Rect returns the rectangle of b.
func (l Layout) Rect(b Button) (config.Rect, bool) {
	switch b {
	case ButtonStart:
		return l.Start, true
	case ButtonSound:
		return l.Sound, true
	case ButtonExit:
		return l.Exit, true
	default:
		return config.Rect{}, false
	}
}

// Center returns the centre pixel of b, used to press buttons without a mouse.
func (l Layout) Center(b Button) (x, y int, ok bool) {
	r, ok := l.Rect(b)
	if !ok {
		return 0, 0, false
	}
	return r.X + r.W/2, r.Y + r.H/2, true
}

// Label returns the caption drawn on b.
func Label(b Button, soundOn bool) string {
	switch b {
	case ButtonStart:
		return "START"
	case ButtonSound:
		if soundOn {
			return "SOUND: ON"
		}
		return "SOUND: OFF"
	case ButtonExit:
		return "EXIT"
	default:
		return ""
	}
}

func pointInRect(x, y int, r config.Rect) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

var (
	backgroundColor = color.RGBA{20, 20, 40, 255}
	buttonColor     = color.RGBA{60, 60, 100, 255}
	soundOnColor    = color.RGBA{60, 100, 60, 255}
	soundOffColor   = color.RGBA{100, 60, 60, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
)

// Draw renders the menu.
func Draw(screen render.Image, r render.Renderer, l Layout, soundOn bool) {
	screen.Fill(backgroundColor)
	w, _ := screen.Size()

	tw, th := r.MeasureText(Title, 4)
	r.DrawText(screen, Title, w/2-tw/2, 100-th/2, textColor, 4)

	for _, b := range []Button{ButtonStart, ButtonSound, ButtonExit} {
		rect, _ := l.Rect(b)

		fill := buttonColor
		if b == ButtonSound {
			fill = soundOffColor
			if soundOn {
				fill = soundOnColor
			}
		}
		r.FillRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), fill)
		r.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 1, textColor)

		label := Label(b, soundOn)
		lw, lh := r.MeasureText(label, 2)
		r.DrawText(screen, label, rect.X+rect.W/2-lw/2, rect.Y+rect.H/2-lh/2, textColor, 2)
	}
}
