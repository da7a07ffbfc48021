// Package grid provides the static collision map the dungeon is played on,
// together with the cell and world coordinate types shared by all entities.
package grid

import (
	"chosenoffset.com/gridcrawl/internal/core/rng"
)

// borderBand is how far random obstacles stay from the map edge.
const borderBand = 2

// Map is a read-only view of a grid.
type Map interface {
	Width() int
	Height() int
	IsPassable(x, y int) bool
	IsPassablePoint(p Point) bool
}

// CollisionGrid is a width x height passability map indexed [y][x].
type CollisionGrid struct {
	width   int
	height  int
	blocked [][]bool
}

// New creates a grid with every cell passable.
func New(width, height int) *CollisionGrid {
	blocked := make([][]bool, height)
	for y := range blocked {
		blocked[y] = make([]bool, width)
	}
	return &CollisionGrid{width: width, height: height, blocked: blocked}
}

// NewWalled creates a grid whose outer ring of cells is impassable.
func NewWalled(width, height int) *CollisionGrid {
	g := New(width, height)
	for x := 0; x < width; x++ {
		g.blocked[0][x] = true
		g.blocked[height-1][x] = true
	}
	for y := 0; y < height; y++ {
		g.blocked[y][0] = true
		g.blocked[y][width-1] = true
	}
	return g
}

// Generate builds a walled grid and scatters obstacles over random interior
// cells. Obstacles may land on the same cell more than once.
func Generate(width, height, obstacles int, src rng.Source) *CollisionGrid {
	g := NewWalled(width, height)
	for i := 0; i < obstacles; i++ {
		x := rng.IntRange(src, borderBand, width-borderBand-1)
		y := rng.IntRange(src, borderBand, height-borderBand-1)
		g.blocked[y][x] = true
	}
	return g
}

// RandomInterior returns a random cell inside the obstacle band.
func (g *CollisionGrid) RandomInterior(src rng.Source) Point {
	return Point{
		X: rng.IntRange(src, borderBand, g.width-borderBand-1),
		Y: rng.IntRange(src, borderBand, g.height-borderBand-1),
	}
}

// FreeInterior lists the passable cells inside the obstacle band in row order.
func (g *CollisionGrid) FreeInterior() []Point {
	var out []Point
	for y := borderBand; y <= g.height-borderBand-1; y++ {
		for x := borderBand; x <= g.width-borderBand-1; x++ {
			if !g.blocked[y][x] {
				out = append(out, Point{x, y})
			}
		}
	}
	return out
}

// Width returns the number of columns.
func (g *CollisionGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *CollisionGrid) Height() int { return g.height }

// InBounds reports whether (x, y) lies on the grid.
func (g *CollisionGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsPassable reports whether (x, y) can be entered. Cells off the grid are
// never passable.
func (g *CollisionGrid) IsPassable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return !g.blocked[y][x]
}

// IsPassablePoint is IsPassable for a Point.
func (g *CollisionGrid) IsPassablePoint(p Point) bool {
	return g.IsPassable(p.X, p.Y)
}

// SetBlocked marks a cell impassable or passable. Out-of-range cells are ignored.
func (g *CollisionGrid) SetBlocked(x, y int, blocked bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.blocked[y][x] = blocked
}

// BlockedCount returns the number of impassable cells.
func (g *CollisionGrid) BlockedCount() int {
	n := 0
	for _, row := range g.blocked {
		for _, b := range row {
			if b {
				n++
			}
		}
	}
	return n
}

// View returns a Map over g that cannot be used to change it.
func (g *CollisionGrid) View() Map {
	return view{g}
}

type view struct {
	g *CollisionGrid
}

func (v view) Width() int                   { return v.g.width }
func (v view) Height() int                  { return v.g.height }
func (v view) IsPassable(x, y int) bool     { return v.g.IsPassable(x, y) }
func (v view) IsPassablePoint(p Point) bool { return v.g.IsPassable(p.X, p.Y) }
