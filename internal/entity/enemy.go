package entity

import "chosenoffset.com/gridcrawl/internal/world/grid"

// Enemy is a wandering monster tethered to its spawn cell.
type Enemy struct {
	Entity

	Kind         string     // Cosmetic variant, e.g. "skeleton"
	PatrolCenter grid.Point // Spawn cell; wander targets stay near it
	PatrolRadius float64    // Max Euclidean distance from PatrolCenter

	MoveTimer    float64 // Seconds spent idle since the last decision
	MoveInterval float64 // Seconds to wait before the next decision
}

// NewEnemy creates an idle enemy of the given kind on pos.
func NewEnemy(kind string, pos grid.Point, patrolRadius, interval float64, p Params) *Enemy {
	return &Enemy{
		Entity:       *NewEntity(kind, pos, p),
		Kind:         kind,
		PatrolCenter: pos,
		PatrolRadius: patrolRadius,
		MoveInterval: interval,
	}
}

// InPatrolArea reports whether p is within the enemy's patrol radius.
func (e *Enemy) InPatrolArea(p grid.Point) bool {
	return p.DistanceTo(e.PatrolCenter) <= e.PatrolRadius
}
