// Package sprites draws the in-memory placeholder art for every sprite
// identifier the game asks for. Identifiers follow "<name>_<mode><frame>",
// e.g. "hero_idle1" or "goblin_move2"; anything else gets a fallback disc.
package sprites

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
)

// Palette holds the colours of the dungeon.
var Palette = struct {
	Background color.RGBA
	Floor      color.RGBA
	Wall       color.RGBA
	GridLine   color.RGBA

	Hero     color.RGBA
	HeroCore color.RGBA

	Enemy     color.RGBA
	EnemyCore color.RGBA

	Fallback color.RGBA
}{
	Background: color.RGBA{20, 20, 40, 255},
	Floor:      color.RGBA{40, 40, 60, 255},
	Wall:       color.RGBA{100, 50, 30, 255},
	GridLine:   color.RGBA{80, 80, 100, 255},

	Hero:     color.RGBA{0, 0, 255, 255},   // Blue
	HeroCore: color.RGBA{0, 255, 255, 255}, // Cyan

	Enemy:     color.RGBA{255, 0, 0, 255},   // Red
	EnemyCore: color.RGBA{255, 165, 0, 255}, // Orange

	Fallback: color.RGBA{255, 0, 255, 255}, // Magenta, easy to spot
}

// kindOutline rims each enemy kind so they can be told apart.
var kindOutline = map[string]color.RGBA{
	"skeleton": {230, 225, 210, 255},
	"orc":      {60, 160, 60, 255},
	"goblin":   {210, 200, 60, 255},
}

// ID is a parsed sprite identifier.
type ID struct {
	Name  string // "hero" or an enemy kind
	Mode  string // "idle" or "move"
	Frame int    // 1-based
}

// Parse splits an identifier such as "orc_move2". It reports false when the
// identifier does not follow the naming scheme.
func Parse(id string) (ID, bool) {
	i := strings.LastIndex(id, "_")
	if i <= 0 || i == len(id)-1 {
		return ID{}, false
	}
	name, rest := id[:i], id[i+1:]

	j := strings.IndexAny(rest, "0123456789")
	if j <= 0 {
		return ID{}, false
	}
	frame, err := strconv.Atoi(rest[j:])
	if err != nil || frame < 1 {
		return ID{}, false
	}
	return ID{Name: name, Mode: rest[:j], Frame: frame}, true
}

// Generate draws the sprite for id on a transparent size x size canvas.
func Generate(id string, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	parsed, ok := Parse(id)
	if !ok {
		fillCircle(img, size*10/32, Palette.Fallback)
		return img
	}

	// The second frame of each pair breathes in by a pixel.
	shrink := 0
	if parsed.Frame%2 == 0 {
		shrink = 1
	}

	if parsed.Name == "hero" {
		fillCircle(img, size*14/32-shrink, Palette.Hero)
		if parsed.Mode == "move" {
			fillCircle(img, size*10/32-shrink, Palette.HeroCore)
		}
		return img
	}

	outline, ok := kindOutline[parsed.Name]
	if !ok {
		outline = Darken(Palette.Enemy, 0.5)
	}
	body := size*12/32 - shrink
	fillCircle(img, body+1, outline)
	fillCircle(img, body, Palette.Enemy)
	if parsed.Mode == "move" {
		fillCircle(img, size*8/32-shrink, Palette.EnemyCore)
	}
	return img
}

// Floor draws a passable tile with its grid outline.
func Floor(size int) *image.RGBA {
	return borderedTile(size, Palette.Floor, Palette.GridLine)
}

// Wall draws an impassable tile with its grid outline.
func Wall(size int) *image.RGBA {
	return borderedTile(size, Palette.Wall, Palette.GridLine)
}

func borderedTile(size int, fill, border color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)

	for i := 0; i < size; i++ {
		img.Set(i, 0, border)
		img.Set(i, size-1, border)
		img.Set(0, i, border)
		img.Set(size-1, i, border)
	}
	return img
}

// fillCircle paints a disc of the given radius centred on the canvas.
func fillCircle(img *image.RGBA, radius int, clr color.RGBA) {
	size := img.Bounds().Dx()
	center := size / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := x - center
			dy := y - center
			if dx*dx+dy*dy <= radius*radius {
				img.Set(x, y, clr)
			}
		}
	}
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
