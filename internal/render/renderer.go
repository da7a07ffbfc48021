// Package render is the boundary between the game and a graphics engine. The
// game only sees these interfaces; internal/render/ebiten provides them.
package render

import (
	"errors"
	"image"
	"image/color"
)

// ErrTerminate is returned from Game.Update to stop the loop without an error.
var ErrTerminate = errors.New("render: terminate")

// Renderer draws shapes and text onto images.
type Renderer interface {
	// NewImageFromImage uploads a CPU-side image so it can be drawn.
	NewImageFromImage(src image.Image) Image

	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height, strokeWidth float32, clr color.Color)

	// DrawText places the top-left corner of text at (x, y).
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a drawable surface.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	DrawImage(src Image, opts *DrawImageOptions)
}

// DrawImageOptions positions a source image on its destination.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM is a placement transform. Only translation is needed by the game.
type GeoM interface {
	Translate(tx, ty float64)
	Reset()
}

// NewGeoM returns an identity transform. The backend package sets it.
var NewGeoM func() GeoM

// InputManager reports keyboard and mouse edges for the current frame.
type InputManager interface {
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonJustPressed(button MouseButton) bool
}

// Key is a keyboard key the game listens to.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
)

// MouseButton is a mouse button the game listens to.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
)

// Game is driven by an Engine: Update once per tick, Draw once per frame.
type Game interface {
	// Update advances one tick. ErrTerminate ends the loop cleanly.
	Update() error
	Draw(screen Image)
	// Layout maps the window size to the logical screen size used for
	// drawing and cursor coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and the loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)
	SetTPS(tps int)
	// RunGame blocks until the game ends.
	RunGame(game Game) error
}
