package entity

import "chosenoffset.com/gridcrawl/internal/world/grid"

// PlayerSprite is the sprite base name of the player character.
const PlayerSprite = "hero"

// Player is the character steered by the user.
type Player struct {
	Entity

	Health int
	Alive  bool
}

// NewPlayer creates a living player on pos.
func NewPlayer(pos grid.Point, health int, p Params) *Player {
	return &Player{
		Entity: *NewEntity(PlayerSprite, pos, p),
		Health: health,
		Alive:  true,
	}
}

// TakeDamage reduces health and reports whether the hit was fatal. Health is
// clamped at zero and a dead player stays dead.
func (pl *Player) TakeDamage(amount int) bool {
	if !pl.Alive {
		return false
	}
	pl.Health -= amount
	if pl.Health <= 0 {
		pl.Health = 0
		pl.Alive = false
		return true
	}
	return false
}
