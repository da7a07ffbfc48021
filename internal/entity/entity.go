// Package entity provides the real-time movers of the dungeon: the player and
// the enemies. Both share Entity, which turns a one-cell move request into a
// smooth glide across the grid and picks the sprite to draw.
package entity

import (
	"math"

	"chosenoffset.com/gridcrawl/internal/core/anim"
	"chosenoffset.com/gridcrawl/internal/world/grid"
)

// Params holds the movement and animation tuning for an entity.
type Params struct {
	Speed     float64 // Cells per second
	CellSize  float64 // Pixels per cell
	IdleFrame float64 // Seconds per idle frame
	MoveFrame float64 // Seconds per moving frame
}

// snapEpsilon is the arrival tolerance as a fraction of a cell.
const snapEpsilon = 1e-9

// Entity is the state shared by every creature on the grid.
type Entity struct {
	Name string // Sprite base name, e.g. "hero" or "orc"

	// Grid is the authoritative cell. It only changes when a move completes.
	Grid grid.Point
	// Target is the cell being moved toward; equal to Grid when idle.
	Target grid.Point
	// World is the render position in pixels.
	World grid.Vec

	Moving   bool
	Speed    float64
	CellSize float64

	idle *anim.Animator
	move *anim.Animator
}

// NewEntity places an idle entity on a cell.
func NewEntity(name string, pos grid.Point, p Params) *Entity {
	return &Entity{
		Name:     name,
		Grid:     pos,
		Target:   pos,
		World:    pos.World(p.CellSize),
		Speed:    p.Speed,
		CellSize: p.CellSize,
		idle:     anim.New(anim.SpriteFrames(name, "idle", 2), p.IdleFrame),
		move:     anim.New(anim.SpriteFrames(name, "move", 2), p.MoveFrame),
	}
}

// RequestMove starts a move toward target. It is ignored while a move is in
// progress. The caller is responsible for checking that target is legal.
func (e *Entity) RequestMove(target grid.Point) {
	if e.Moving {
		return
	}
	e.Target = target
	e.Moving = true
}

// Tick advances the glide toward the target and the active animation.
func (e *Entity) Tick(dt float64) {
	if e.Moving {
		target := e.Target.World(e.CellSize)
		dx := target.X - e.World.X
		dy := target.Y - e.World.Y
		step := e.Speed * e.CellSize * dt
		// Absorbs rounding when dt does not divide the cell exactly, e.g. 1/60.
		reach := step + snapEpsilon*e.CellSize

		if math.Abs(dx) <= reach && math.Abs(dy) <= reach {
			e.World = target
			e.Grid = e.Target
			e.Moving = false
		} else {
			e.World.X += stepToward(dx, step)
			e.World.Y += stepToward(dy, step)
		}
	}

	if e.Moving {
		e.move.Advance(dt)
	} else {
		e.idle.Advance(dt)
	}
}

// stepToward returns a signed step of at most step along a remaining distance d.
func stepToward(d, step float64) float64 {
	switch {
	case d > 0:
		return math.Min(d, step)
	case d < 0:
		return -math.Min(-d, step)
	default:
		return 0
	}
}

// CurrentSprite returns the sprite name of the active animation frame.
func (e *Entity) CurrentSprite() string {
	if e.Moving {
		return e.move.CurrentFrame()
	}
	return e.idle.CurrentFrame()
}

// Occupies reports whether the entity's logical cell is p. An entity that is
// gliding away still occupies the cell it started from.
func (e *Entity) Occupies(p grid.Point) bool {
	return e.Grid == p
}
