package game

import (
	"errors"
	"log"

	"chosenoffset.com/gridcrawl/internal/config"
	"chosenoffset.com/gridcrawl/internal/core/rng"
	"chosenoffset.com/gridcrawl/internal/entity"
	"chosenoffset.com/gridcrawl/internal/entity/ai"
	"chosenoffset.com/gridcrawl/internal/ui/menu"
	"chosenoffset.com/gridcrawl/internal/world/grid"
)

// ErrQuit is returned when the player picks "exit" on the menu.
var ErrQuit = errors.New("game: quit requested")

// State is the top-level mode of a session.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session owns everything in one run of the game: the grid, the player, the
// enemies and the menu flags. It is driven by a single loop and is not safe
// for concurrent use.
type Session struct {
	cfg    *config.Config
	rng    rng.Source
	layout menu.Layout
	wander ai.Wanderer

	playerParams entity.Params
	enemyParams  entity.Params

	state        State
	soundEnabled bool
	musicEnabled bool

	grid    *grid.CollisionGrid
	player  *entity.Player
	enemies []*entity.Enemy
}

// NewSession creates a session on the menu with a freshly generated world.
// cfg must already be valid.
func NewSession(cfg *config.Config, src rng.Source) *Session {
	cell := float64(cfg.Grid.CellSize)
	s := &Session{
		cfg:    cfg,
		rng:    src,
		layout: menu.NewLayout(cfg.Menu),
		wander: ai.Wanderer{MinInterval: cfg.Enemies.WanderMin, MaxInterval: cfg.Enemies.WanderMax},
		playerParams: entity.Params{
			Speed:     cfg.Player.Speed,
			CellSize:  cell,
			IdleFrame: cfg.Animation.IdleFrame,
			MoveFrame: cfg.Animation.MoveFrame,
		},
		enemyParams: entity.Params{
			Speed:     cfg.Enemies.Speed,
			CellSize:  cell,
			IdleFrame: cfg.Animation.IdleFrame,
			MoveFrame: cfg.Animation.MoveFrame,
		},
		state:        StateMenu,
		soundEnabled: true,
		musicEnabled: true,
	}
	s.reset()
	return s
}

// reset rebuilds the world: a new grid, a full-health player on the spawn
// cell and a new set of enemies.
func (s *Session) reset() {
	s.grid = grid.Generate(s.cfg.Grid.Width, s.cfg.Grid.Height, s.cfg.Grid.Obstacles, s.rng)

	spawn := grid.Point{X: s.cfg.Player.Spawn.X, Y: s.cfg.Player.Spawn.Y}
	s.player = entity.NewPlayer(spawn, s.cfg.Player.Health, s.playerParams)

	s.enemies = make([]*entity.Enemy, 0, s.cfg.Enemies.Count)
	for i := 0; i < s.cfg.Enemies.Count; i++ {
		pos, ok := s.enemySpawn(spawn)
		if !ok {
			log.Printf("No free cell for enemy %d of %d, spawning %d", i+1, s.cfg.Enemies.Count, i)
			break
		}
		kind := rng.Pick(s.rng, s.cfg.Enemies.Kinds)
		s.enemies = append(s.enemies, entity.NewEnemy(kind, pos, s.cfg.Enemies.PatrolRadius, s.wander.NextInterval(s.rng), s.enemyParams))
	}
}

// spawnRerolls caps the random draws for an enemy cell before falling back to
// a scan of the band.
const spawnRerolls = 1000

// enemySpawn picks a random passable interior cell other than avoid. Enemies
// may share a cell. It reports false when no such cell exists.
func (s *Session) enemySpawn(avoid grid.Point) (grid.Point, bool) {
	for i := 0; i < spawnRerolls; i++ {
		p := s.grid.RandomInterior(s.rng)
		if s.grid.IsPassablePoint(p) && p != avoid {
			return p, true
		}
	}

	free := s.grid.FreeInterior()
	cells := free[:0]
	for _, p := range free {
		if p != avoid {
			cells = append(cells, p)
		}
	}
	if len(cells) == 0 {
		return grid.Point{}, false
	}
	return rng.Pick(s.rng, cells), true
}

// HandleActivation presses whatever menu button lies under (x, y). It only
// acts on the menu and returns ErrQuit for the exit button.
func (s *Session) HandleActivation(x, y int) error {
	if s.state != StateMenu {
		return nil
	}

	switch s.layout.ButtonAt(x, y) {
	case menu.ButtonStart:
		s.reset()
		s.state = StatePlaying
		log.Printf("Session started: %d enemies, %d blocked cells on a %dx%d grid",
			len(s.enemies), s.grid.BlockedCount(), s.grid.Width(), s.grid.Height())
	case menu.ButtonSound:
		s.soundEnabled = !s.soundEnabled
		log.Printf("Sound enabled: %v", s.soundEnabled)
	case menu.ButtonExit:
		log.Printf("Exit requested")
		return ErrQuit
	}
	return nil
}

// HandleDirectionalInput moves the player one cell. The input is dropped
// unless the game is running, the player is alive and idle, and the target
// cell is passable. Entering a cell held by enemies costs health per enemy.
func (s *Session) HandleDirectionalInput(dir grid.Direction) {
	if s.state != StatePlaying || !s.player.Alive || s.player.Moving {
		return
	}
	dx, dy := dir.Delta()
	if dx == 0 && dy == 0 {
		return
	}
	target := s.player.Grid.Add(dx, dy)
	if !s.grid.IsPassablePoint(target) {
		return
	}

	s.player.RequestMove(target)

	for _, e := range s.enemies {
		if !e.Occupies(target) {
			continue
		}
		if s.player.TakeDamage(s.cfg.Combat.CollisionDamage) {
			s.state = StateGameOver
			log.Printf("Player killed by a %s at (%d, %d)", e.Kind, target.X, target.Y)
			return
		}
	}
}

// HandleConfirm returns to the menu from the game-over screen.
func (s *Session) HandleConfirm() {
	if s.state == StateGameOver {
		s.state = StateMenu
	}
}

// Tick advances the world by dt seconds. Nothing moves outside of play.
func (s *Session) Tick(dt float64) {
	if s.state != StatePlaying {
		return
	}
	s.player.Tick(dt)
	for _, e := range s.enemies {
		e.Tick(dt)
		s.wander.Update(e, dt, s.grid, s.rng)
	}
}

// State returns the current mode.
func (s *Session) State() State { return s.state }

// SoundEnabled reports the sound toggle.
func (s *Session) SoundEnabled() bool { return s.soundEnabled }

// MusicEnabled reports the music flag. Nothing toggles it yet.
func (s *Session) MusicEnabled() bool { return s.musicEnabled }

// Grid returns a read-only view of the collision grid.
func (s *Session) Grid() grid.Map { return s.grid.View() }

// Layout returns the menu button layout.
func (s *Session) Layout() menu.Layout { return s.layout }

// PlayerView is a read-only copy of the player's state.
type PlayerView struct {
	Grid   grid.Point
	World  grid.Vec
	Moving bool
	Sprite string
	Health int
	Alive  bool
}

// EnemyView is a read-only copy of an enemy's state.
type EnemyView struct {
	Kind   string
	Grid   grid.Point
	World  grid.Vec
	Moving bool
	Sprite string
}

// Snapshot bundles everything a frontend needs to draw a frame.
type Snapshot struct {
	State        State
	SoundEnabled bool
	MusicEnabled bool
	Grid         grid.Map
	Player       PlayerView
	Enemies      []EnemyView
}

// Player returns a view of the player.
func (s *Session) Player() PlayerView {
	p := s.player
	return PlayerView{
		Grid:   p.Grid,
		World:  p.World,
		Moving: p.Moving,
		Sprite: p.CurrentSprite(),
		Health: p.Health,
		Alive:  p.Alive,
	}
}

// Enemies returns views of the enemies in update order.
func (s *Session) Enemies() []EnemyView {
	views := make([]EnemyView, len(s.enemies))
	for i, e := range s.enemies {
		views[i] = EnemyView{
			Kind:   e.Kind,
			Grid:   e.Grid,
			World:  e.World,
			Moving: e.Moving,
			Sprite: e.CurrentSprite(),
		}
	}
	return views
}

// Snapshot returns the full drawable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.state,
		SoundEnabled: s.soundEnabled,
		MusicEnabled: s.musicEnabled,
		Grid:         s.grid.View(),
		Player:       s.Player(),
		Enemies:      s.Enemies(),
	}
}
