package game

import (
	"errors"
	"math/rand"
	"testing"

	"chosenoffset.com/gridcrawl/internal/config"
	"chosenoffset.com/gridcrawl/internal/entity"
	"chosenoffset.com/gridcrawl/internal/ui/menu"
	"chosenoffset.com/gridcrawl/internal/world/grid"
)

// newArena returns a playing session on an open 25x18 room with the player on
// (5,5) and a single orc on (6,5) that never wanders.
func newArena(t *testing.T) *Session {
	t.Helper()
	s := NewSession(config.DefaultConfig(), rand.New(rand.NewSource(1)))
	s.state = StatePlaying
	s.grid = grid.NewWalled(25, 18)
	s.player = entity.NewPlayer(grid.Point{X: 5, Y: 5}, 100, s.playerParams)
	s.enemies = []*entity.Enemy{
		entity.NewEnemy("orc", grid.Point{X: 6, Y: 5}, 3, 1e9, s.enemyParams),
	}
	return s
}

func tickUntilIdle(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 1000 && s.player.Moving; i++ {
		s.Tick(1.0 / 60)
	}
	if s.player.Moving {
		t.Fatal("Player never finished moving")
	}
}

func press(t *testing.T, s *Session, b menu.Button) error {
	t.Helper()
	x, y, ok := s.layout.Center(b)
	if !ok {
		t.Fatalf("No button %v", b)
	}
	return s.HandleActivation(x, y)
}

func TestNewSessionStartsOnMenu(t *testing.T) {
	s := NewSession(config.DefaultConfig(), rand.New(rand.NewSource(7)))
	if s.State() != StateMenu {
		t.Errorf("Expected menu, got %v", s.State())
	}
	if !s.SoundEnabled() || !s.MusicEnabled() {
		t.Error("Sound and music should start enabled")
	}
	if s.Grid() == nil || len(s.Enemies()) != 6 {
		t.Errorf("Expected a world with 6 enemies, got %d", len(s.Enemies()))
	}
}

func TestMenuTransitions(t *testing.T) {
	s := NewSession(config.DefaultConfig(), rand.New(rand.NewSource(7)))

	if err := press(t, s, menu.ButtonSound); err != nil {
		t.Fatalf("Sound toggle returned error: %v", err)
	}
	if s.SoundEnabled() || s.State() != StateMenu {
		t.Errorf("Expected sound off on the menu, got sound=%v state=%v", s.SoundEnabled(), s.State())
	}
	press(t, s, menu.ButtonSound)
	if !s.SoundEnabled() {
		t.Error("Second toggle should turn sound back on")
	}

	if err := s.HandleActivation(10, 10); err != nil || s.State() != StateMenu {
		t.Errorf("Click on empty space changed state to %v (err %v)", s.State(), err)
	}

	if err := press(t, s, menu.ButtonExit); !errors.Is(err, ErrQuit) {
		t.Errorf("Expected ErrQuit from exit, got %v", err)
	}

	if err := press(t, s, menu.ButtonStart); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if s.State() != StatePlaying {
		t.Errorf("Expected playing, got %v", s.State())
	}

	// Buttons are dead outside the menu.
	if err := press(t, s, menu.ButtonExit); err != nil {
		t.Errorf("Exit should be ignored while playing, got %v", err)
	}
	press(t, s, menu.ButtonSound)
	if !s.SoundEnabled() {
		t.Error("Sound toggled while playing")
	}
}

func TestCollisionDamageAndGameOver(t *testing.T) {
	s := newArena(t)

	s.HandleDirectionalInput(grid.DirRight)
	if got := s.Player().Health; got != 80 {
		t.Fatalf("Expected health 80 after the first collision, got %d", got)
	}
	if s.State() != StatePlaying {
		t.Fatalf("Expected to keep playing, got %v", s.State())
	}

	for hit := 2; hit <= 5; hit++ {
		tickUntilIdle(t, s)
		s.HandleDirectionalInput(grid.DirLeft)
		tickUntilIdle(t, s)
		if got := s.Player().Health; got != 100-20*(hit-1) {
			t.Fatalf("Stepping away should not hurt: health %d", got)
		}
		s.HandleDirectionalInput(grid.DirRight)
		if got := s.Player().Health; got != 100-20*hit {
			t.Fatalf("Collision %d: expected health %d, got %d", hit, 100-20*hit, got)
		}
	}

	if s.State() != StateGameOver {
		t.Errorf("Expected game over, got %v", s.State())
	}
	if p := s.Player(); p.Alive || p.Health != 0 {
		t.Errorf("Expected a dead player at 0 health, got %+v", p)
	}

	// The world freezes and input is dropped.
	before := s.Player().World
	s.Tick(1)
	if s.Player().World != before {
		t.Error("World advanced after game over")
	}
	s.HandleDirectionalInput(grid.DirLeft)
	if s.Player().Grid != (grid.Point{X: 5, Y: 5}) || s.Player().Health != 0 {
		t.Errorf("Input accepted after game over: %+v", s.Player())
	}

	s.HandleConfirm()
	if s.State() != StateMenu {
		t.Errorf("Expected menu after confirm, got %v", s.State())
	}
}

func TestDamagePerOccupyingEnemy(t *testing.T) {
	s := newArena(t)
	s.enemies = append(s.enemies, entity.NewEnemy("goblin", grid.Point{X: 6, Y: 5}, 3, 1e9, s.enemyParams))

	s.HandleDirectionalInput(grid.DirRight)
	if got := s.Player().Health; got != 60 {
		t.Errorf("Two enemies on the cell should deal 40, health %d", got)
	}
}

func TestDamageStopsAtDeath(t *testing.T) {
	s := newArena(t)
	s.player.Health = 30
	s.enemies = append(s.enemies, entity.NewEnemy("goblin", grid.Point{X: 6, Y: 5}, 3, 1e9, s.enemyParams))

	s.HandleDirectionalInput(grid.DirRight)
	if p := s.Player(); p.Alive || p.Health != 0 {
		t.Errorf("Expected death at 0 health, got %+v", p)
	}
	if s.State() != StateGameOver {
		t.Errorf("Expected game over, got %v", s.State())
	}
}

func TestCollisionUsesLogicalCell(t *testing.T) {
	s := newArena(t)
	orc := s.enemies[0]
	orc.Grid = grid.Point{X: 5, Y: 4}
	orc.Target = grid.Point{X: 6, Y: 5}
	orc.Moving = true

	// The orc is gliding toward (6,5) but still holds (5,4).
	s.HandleDirectionalInput(grid.DirRight)
	if got := s.Player().Health; got != 100 {
		t.Errorf("Entering a cell an enemy is only heading to should not hurt, health %d", got)
	}
}

func TestIllegalMovesIgnored(t *testing.T) {
	s := newArena(t)
	s.enemies = nil
	s.grid.SetBlocked(4, 5, true)

	s.HandleDirectionalInput(grid.DirLeft)
	if s.Player().Moving {
		t.Error("Moved into an obstacle")
	}
	s.HandleDirectionalInput(grid.DirNone)
	if s.Player().Moving {
		t.Error("DirNone started a move")
	}

	s.player = entity.NewPlayer(grid.Point{X: 1, Y: 1}, 100, s.playerParams)
	s.HandleDirectionalInput(grid.DirUp)
	if s.Player().Moving {
		t.Error("Moved into the border wall")
	}

	s.HandleDirectionalInput(grid.DirDown)
	s.HandleDirectionalInput(grid.DirRight)
	if s.player.Target != (grid.Point{X: 1, Y: 2}) {
		t.Errorf("Second input during a move changed target to %v", s.player.Target)
	}
	tickUntilIdle(t, s)
	if s.Player().Grid != (grid.Point{X: 1, Y: 2}) {
		t.Errorf("Expected to land on (1,2), got %v", s.Player().Grid)
	}
	if s.Player().World != (grid.Vec{X: 32, Y: 64}) {
		t.Errorf("Expected world (32,64), got %v", s.Player().World)
	}
}

func TestInputIgnoredOnMenu(t *testing.T) {
	s := NewSession(config.DefaultConfig(), rand.New(rand.NewSource(3)))
	s.HandleDirectionalInput(grid.DirDown)
	if s.Player().Moving {
		t.Error("Player moved while on the menu")
	}
	s.HandleConfirm()
	if s.State() != StateMenu {
		t.Errorf("Confirm on the menu changed state to %v", s.State())
	}
}

func TestTickOnlyWhilePlaying(t *testing.T) {
	s := newArena(t)
	s.enemies = nil
	s.HandleDirectionalInput(grid.DirDown)

	s.state = StateMenu
	s.Tick(0.1)
	if s.Player().World != (grid.Vec{X: 160, Y: 160}) {
		t.Errorf("Player moved on the menu: %v", s.Player().World)
	}

	s.state = StatePlaying
	s.Tick(0.1)
	if s.Player().World == (grid.Vec{X: 160, Y: 160}) {
		t.Error("Player did not move while playing")
	}
}

func TestStartReinitialises(t *testing.T) {
	s := newArena(t)
	arena := s.grid
	s.player.Health = 20
	s.HandleDirectionalInput(grid.DirRight)
	if s.State() != StateGameOver {
		t.Fatalf("Expected game over, got %v", s.State())
	}
	s.HandleConfirm()

	if err := press(t, s, menu.ButtonStart); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	p := s.Player()
	if !p.Alive || p.Health != 100 || p.Grid != (grid.Point{X: 5, Y: 5}) || p.Moving {
		t.Errorf("Expected a fresh player on (5,5), got %+v", p)
	}
	if len(s.Enemies()) != 6 {
		t.Errorf("Expected 6 fresh enemies, got %d", len(s.Enemies()))
	}
	if s.grid == arena {
		t.Error("Expected a regenerated grid")
	}
}

func TestEnemySpawns(t *testing.T) {
	cfg := config.DefaultConfig()
	spawn := grid.Point{X: cfg.Player.Spawn.X, Y: cfg.Player.Spawn.Y}
	kinds := map[string]bool{"skeleton": true, "orc": true, "goblin": true}

	for seed := int64(1); seed <= 50; seed++ {
		s := NewSession(cfg, rand.New(rand.NewSource(seed)))
		g := s.Grid()
		for _, e := range s.enemies {
			if e.Grid == spawn {
				t.Fatalf("seed %d: enemy spawned on the player", seed)
			}
			if !g.IsPassablePoint(e.Grid) {
				t.Fatalf("seed %d: enemy spawned on an obstacle at %v", seed, e.Grid)
			}
			if e.Grid.X < 2 || e.Grid.X > 22 || e.Grid.Y < 2 || e.Grid.Y > 15 {
				t.Fatalf("seed %d: enemy spawned outside the interior band at %v", seed, e.Grid)
			}
			if !kinds[e.Kind] {
				t.Fatalf("seed %d: unexpected kind %q", seed, e.Kind)
			}
			if e.PatrolCenter != e.Grid {
				t.Fatalf("seed %d: patrol centre %v differs from spawn %v", seed, e.PatrolCenter, e.Grid)
			}
			if e.MoveInterval < 1 || e.MoveInterval >= 3 {
				t.Fatalf("seed %d: interval %v outside [1, 3)", seed, e.MoveInterval)
			}
		}
	}
}

func TestEnemySpawnOnFullBand(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Obstacles = 5, 5, 1
	cfg.Player.Spawn = config.Cell{X: 1, Y: 1}
	cfg.Enemies.Count = 2

	// The only band cell, (2,2), always takes the obstacle.
	s := NewSession(cfg, rand.New(rand.NewSource(4)))
	if n := len(s.Enemies()); n != 0 {
		t.Errorf("Expected no enemies without a free cell, got %d", n)
	}

	cfg.Grid.Obstacles = 0
	cfg.Player.Spawn = config.Cell{X: 2, Y: 2}
	s = NewSession(cfg, rand.New(rand.NewSource(4)))
	if n := len(s.Enemies()); n != 0 {
		t.Errorf("Expected no enemies when the player holds the only cell, got %d", n)
	}
}

func TestEnemySpawnNarrowBand(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.Obstacles = 6, 5, 0
	cfg.Player.Spawn = config.Cell{X: 2, Y: 2}
	cfg.Enemies.Count = 3

	for seed := int64(1); seed <= 20; seed++ {
		s := NewSession(cfg, rand.New(rand.NewSource(seed)))
		if len(s.enemies) != 3 {
			t.Fatalf("seed %d: expected 3 enemies, got %d", seed, len(s.enemies))
		}
		for _, e := range s.enemies {
			if e.Grid != (grid.Point{X: 3, Y: 2}) {
				t.Fatalf("seed %d: expected every enemy on (3,2), got %v", seed, e.Grid)
			}
		}
	}
}

func TestEnemiesWanderDuringTick(t *testing.T) {
	s := newArena(t)
	s.rng = rand.New(rand.NewSource(3))
	s.grid.SetBlocked(11, 10, true)
	s.grid.SetBlocked(10, 11, true)
	e := entity.NewEnemy("goblin", grid.Point{X: 10, Y: 10}, 2, 0.5, s.enemyParams)
	s.enemies = []*entity.Enemy{e}

	const dt = 1.0 / 60
	moves := 0
	for i := 0; i < 6000 && moves < 10; i++ {
		from := e.Grid
		wasMoving := e.Moving
		s.Tick(dt)

		if !wasMoving && e.Moving {
			// Motion runs before the controller, so the glide starts next tick.
			if e.World != from.World(32) {
				t.Fatalf("Enemy left %v on the tick it decided to move: %v", from, e.World)
			}
			dx, dy := e.Target.X-from.X, e.Target.Y-from.Y
			if e.Target == from || dx < -1 || dx > 1 || dy < -1 || dy > 1 {
				t.Fatalf("Target %v is not a neighbour of %v", e.Target, from)
			}
			if !e.InPatrolArea(e.Target) {
				t.Fatalf("Target %v is outside the patrol area around %v", e.Target, e.PatrolCenter)
			}
			if !s.grid.IsPassablePoint(e.Target) {
				t.Fatalf("Target %v is blocked", e.Target)
			}
		}

		switch {
		case e.Moving && e.Grid != from:
			t.Fatalf("Grid changed to %v mid-move", e.Grid)
		case wasMoving && !e.Moving:
			if e.Grid != e.Target || e.World != e.Target.World(32) {
				t.Fatalf("Move finished at grid %v world %v, target %v", e.Grid, e.World, e.Target)
			}
			moves++
		case !wasMoving && !e.Moving && e.Grid != from:
			t.Fatalf("Idle enemy jumped from %v to %v", from, e.Grid)
		}
	}
	if moves < 10 {
		t.Errorf("Expected at least 10 completed moves, got %d", moves)
	}
	if s.player.Grid != (grid.Point{X: 5, Y: 5}) || s.player.Moving {
		t.Errorf("Player should not have moved, got %v", s.player.Grid)
	}
}

func TestGridIsReadOnly(t *testing.T) {
	s := newArena(t)
	type blocker interface{ SetBlocked(x, y int, blocked bool) }

	if _, ok := s.Grid().(blocker); ok {
		t.Error("Grid exposes SetBlocked")
	}
	if _, ok := s.Snapshot().Grid.(blocker); ok {
		t.Error("Snapshot grid exposes SetBlocked")
	}
	if !s.Grid().IsPassable(5, 5) || s.Grid().IsPassable(0, 0) {
		t.Error("Grid view disagrees with the arena")
	}
}

func TestSnapshot(t *testing.T) {
	s := newArena(t)
	snap := s.Snapshot()

	if snap.State != StatePlaying || snap.Grid != s.grid.View() {
		t.Errorf("Unexpected snapshot header: %+v", snap)
	}
	if snap.Player.Sprite != "hero_idle1" || snap.Player.World != (grid.Vec{X: 160, Y: 160}) {
		t.Errorf("Unexpected player view: %+v", snap.Player)
	}
	if len(snap.Enemies) != 1 || snap.Enemies[0].Kind != "orc" || snap.Enemies[0].Sprite != "orc_idle1" {
		t.Errorf("Unexpected enemy views: %+v", snap.Enemies)
	}

	s.HandleDirectionalInput(grid.DirDown)
	s.Tick(0.01)
	if got := s.Player().Sprite; got != "hero_move1" {
		t.Errorf("Expected hero_move1 while moving, got %s", got)
	}
}

func TestStateString(t *testing.T) {
	if StateGameOver.String() != "game over" || State(42).String() != "unknown" {
		t.Error("Unexpected state names")
	}
}
