// Package ebiten backs the render interfaces with Ebitengine.
package ebiten

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/gridcrawl/internal/render"
)

func init() {
	render.NewGeoM = func() render.GeoM {
		return &geoM{}
	}
}

// Renderer draws with ebiten's vector and text packages using the 7x13
// bitmap face.
type Renderer struct {
	face text.Face
}

// NewRenderer creates a renderer.
func NewRenderer() render.Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	return &Image{img: ebiten.NewImageFromImage(src)}
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, false)
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(unwrap(dst), x, y, width, height, strokeWidth, clr, false)
}

func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(unwrap(dst), str, r.face, op)
}

func (r *Renderer) MeasureText(str string, scale float64) (width, height int) {
	w, h := text.Measure(str, r.face, 0)
	return int(w * scale), int(h * scale)
}

// Image wraps an *ebiten.Image.
type Image struct {
	img *ebiten.Image
}

func unwrap(i render.Image) *ebiten.Image {
	return i.(*Image).img
}

func (i *Image) Size() (width, height int) {
	b := i.img.Bounds()
	return b.Dx(), b.Dy()
}

func (i *Image) Fill(clr color.Color) {
	i.img.Fill(clr)
}

func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	var op ebiten.DrawImageOptions
	if opts != nil && opts.GeoM != nil {
		op.GeoM = opts.GeoM.(*geoM).m
	}
	i.img.DrawImage(unwrap(src), &op)
}

type geoM struct {
	m ebiten.GeoM
}

func (g *geoM) Translate(tx, ty float64) { g.m.Translate(tx, ty) }
func (g *geoM) Reset()                   { g.m.Reset() }

// Input reads the keyboard and mouse through inpututil, so every query is
// an edge for the current tick.
type Input struct{}

// NewInputManager creates an input reader.
func NewInputManager() render.InputManager {
	return &Input{}
}

var keys = map[render.Key]ebiten.Key{
	render.KeyW:      ebiten.KeyW,
	render.KeyA:      ebiten.KeyA,
	render.KeyS:      ebiten.KeyS,
	render.KeyD:      ebiten.KeyD,
	render.KeyUp:     ebiten.KeyArrowUp,
	render.KeyDown:   ebiten.KeyArrowDown,
	render.KeyLeft:   ebiten.KeyArrowLeft,
	render.KeyRight:  ebiten.KeyArrowRight,
	render.KeySpace:  ebiten.KeySpace,
	render.KeyEscape: ebiten.KeyEscape,
}

func (in *Input) IsKeyJustPressed(key render.Key) bool {
	k, ok := keys[key]
	return ok && inpututil.IsKeyJustPressed(k)
}

func (in *Input) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	if button != render.MouseButtonLeft {
		return false
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Engine runs a render.Game in an ebiten window.
type Engine struct{}

// NewEngine creates an engine.
func NewEngine() render.Engine {
	return &Engine{}
}

func (e *Engine) SetWindowSize(width, height int) { ebiten.SetWindowSize(width, height) }
func (e *Engine) SetWindowTitle(title string)     { ebiten.SetWindowTitle(title) }
func (e *Engine) SetTPS(tps int)                  { ebiten.SetTPS(tps) }

func (e *Engine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

func (e *Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(&adapter{game: game})
}

// adapter turns a render.Game into an ebiten.Game.
type adapter struct {
	game render.Game
}

func (a *adapter) Update() error {
	err := a.game.Update()
	if errors.Is(err, render.ErrTerminate) {
		return ebiten.Termination
	}
	return err
}

func (a *adapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Image{img: screen})
}

func (a *adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
