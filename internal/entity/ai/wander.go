// Package ai drives enemy behaviour. Enemies wander: every few seconds an idle
// enemy steps to a random free neighbouring cell inside its patrol area. There
// is no pathfinding and no awareness of the player.
package ai

import (
	"chosenoffset.com/gridcrawl/internal/core/rng"
	"chosenoffset.com/gridcrawl/internal/entity"
	"chosenoffset.com/gridcrawl/internal/world/grid"
)

// Passability answers whether a cell can be entered. *grid.CollisionGrid
// satisfies it; out-of-range cells must report false.
type Passability interface {
	IsPassable(x, y int) bool
}

// Wanderer decides when and where idle enemies move.
type Wanderer struct {
	MinInterval float64 // Shortest wait between decisions, in seconds
	MaxInterval float64 // Longest wait between decisions, in seconds
}

// DefaultWanderer waits between one and three seconds between steps.
func DefaultWanderer() Wanderer {
	return Wanderer{MinInterval: 1.0, MaxInterval: 3.0}
}

// NextInterval draws a fresh decision interval.
func (w Wanderer) NextInterval(src rng.Source) float64 {
	return rng.Uniform(src, w.MinInterval, w.MaxInterval)
}

// Update runs one tick of the controller for e. It only acts while e is
// standing still; a moving enemy is left to its motion model.
func (w Wanderer) Update(e *entity.Enemy, dt float64, g Passability, src rng.Source) {
	if e.Moving {
		return
	}
	e.MoveTimer += dt
	if e.MoveTimer < e.MoveInterval {
		return
	}
	e.MoveTimer = 0
	e.MoveInterval = w.NextInterval(src)
	w.TryRandomMove(e, g, src)
}

// TryRandomMove steps e to a random valid neighbour. It reports whether a move
// was issued; with no valid neighbour the enemy stays put.
func (w Wanderer) TryRandomMove(e *entity.Enemy, g Passability, src rng.Source) bool {
	candidates := Candidates(e, g)
	if len(candidates) == 0 {
		return false
	}
	e.RequestMove(rng.Pick(src, candidates))
	return true
}

// Candidates lists the neighbouring cells e may wander into: inside its patrol
// radius and passable. The order is stable for a given state.
func Candidates(e *entity.Enemy, g Passability) []grid.Point {
	var out []grid.Point
	for _, off := range grid.Neighbors {
		p := e.Grid.Add(off.X, off.Y)
		if !e.InPatrolArea(p) {
			continue
		}
		if !g.IsPassable(p.X, p.Y) {
			continue
		}
		out = append(out, p)
	}
	return out
}
