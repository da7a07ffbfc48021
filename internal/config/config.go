// Package config provides the tuning for a dungeon session: grid size,
// movement and animation timing, enemy behaviour, combat and menu layout.
// Values are loaded from YAML on top of built-in defaults so a config file
// only has to name what it changes.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all tuning for the game
type Config struct {
	Screen         ScreenConfig    `yaml:"screen"`
	Grid           GridConfig      `yaml:"grid"`
	Player         PlayerConfig    `yaml:"player"`
	Enemies        EnemyConfig     `yaml:"enemies"`
	Combat         CombatConfig    `yaml:"combat"`
	Animation      AnimationConfig `yaml:"animation"`
	Menu           MenuConfig      `yaml:"menu"`
	TicksPerSecond int             `yaml:"ticks_per_second"`
}

// ScreenConfig is the logical window size in pixels
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the collision grid
type GridConfig struct {
	Width     int `yaml:"width"`     // Columns
	Height    int `yaml:"height"`    // Rows
	CellSize  int `yaml:"cell_size"` // Pixels per cell
	Obstacles int `yaml:"obstacles"` // Random interior walls per session
}

// Cell is a grid coordinate in config files
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlayerConfig defines the player character
type PlayerConfig struct {
	Spawn  Cell    `yaml:"spawn"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"` // Cells per second
}

// EnemyConfig defines the wandering enemies
type EnemyConfig struct {
	Count        int      `yaml:"count"`
	Kinds        []string `yaml:"kinds"`
	PatrolRadius float64  `yaml:"patrol_radius"`
	Speed        float64  `yaml:"speed"`      // Cells per second
	WanderMin    float64  `yaml:"wander_min"` // Shortest idle wait, seconds
	WanderMax    float64  `yaml:"wander_max"` // Longest idle wait, seconds
}

// CombatConfig defines contact damage
type CombatConfig struct {
	CollisionDamage int `yaml:"collision_damage"`
}

// AnimationConfig defines sprite frame timing in seconds per frame
type AnimationConfig struct {
	IdleFrame float64 `yaml:"idle_frame"`
	MoveFrame float64 `yaml:"move_frame"`
}

// Rect is a pixel rectangle
type Rect struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// MenuConfig places the main menu buttons
type MenuConfig struct {
	Start Rect `yaml:"start"`
	Sound Rect `yaml:"sound"`
	Exit  Rect `yaml:"exit"`
}

// DefaultConfig returns the classic 800x600 dungeon
func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{Width: 800, Height: 600},
		Grid: GridConfig{
			Width:     25,
			Height:    18,
			CellSize:  32,
			Obstacles: 20,
		},
		Player: PlayerConfig{
			Spawn:  Cell{X: 5, Y: 5},
			Health: 100,
			Speed:  4.0,
		},
		Enemies: EnemyConfig{
			Count:        6,
			Kinds:        []string{"skeleton", "orc", "goblin"},
			PatrolRadius: 3,
			Speed:        4.0,
			WanderMin:    1.0,
			WanderMax:    3.0,
		},
		Combat: CombatConfig{CollisionDamage: 20},
		Animation: AnimationConfig{
			IdleFrame: 0.5,
			MoveFrame: 0.3,
		},
		Menu: MenuConfig{
			Start: Rect{X: 300, Y: 200, W: 200, H: 50},
			Sound: Rect{X: 300, Y: 270, W: 200, H: 50},
			Exit:  Rect{X: 300, Y: 340, W: 200, H: 50},
		},
		TicksPerSecond: 60,
	}
}

// LoadConfig loads a config from a YAML file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that a session can be built from the config
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", c.Screen.Width, c.Screen.Height)
	}

	// Obstacles are placed in [2, dim-3], so each axis needs at least one such cell.
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		return fmt.Errorf("grid must be at least 5x5, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("invalid cell size: %d", c.Grid.CellSize)
	}
	if c.Grid.Obstacles < 0 {
		return fmt.Errorf("invalid obstacle count: %d", c.Grid.Obstacles)
	}

	spawn := c.Player.Spawn
	if spawn.X <= 0 || spawn.X >= c.Grid.Width-1 || spawn.Y <= 0 || spawn.Y >= c.Grid.Height-1 {
		return fmt.Errorf("player spawn (%d, %d) is not inside the walls", spawn.X, spawn.Y)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("invalid player health: %d", c.Player.Health)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("invalid player speed: %v", c.Player.Speed)
	}

	if c.Enemies.Count < 0 {
		return fmt.Errorf("invalid enemy count: %d", c.Enemies.Count)
	}
	if c.Enemies.Count > 0 {
		if len(c.Enemies.Kinds) == 0 {
			return errors.New("enemy kinds must not be empty")
		}
		// Counting every obstacle as distinct and the spawn as inside the
		// band leaves at least one free band cell for enemies.
		interior := (c.Grid.Width - 4) * (c.Grid.Height - 4)
		if interior <= c.Grid.Obstacles+1 {
			return fmt.Errorf("no room for enemies: %d interior cells, %d obstacles", interior, c.Grid.Obstacles)
		}
	}
	if c.Enemies.Speed <= 0 {
		return fmt.Errorf("invalid enemy speed: %v", c.Enemies.Speed)
	}
	if c.Enemies.PatrolRadius < 0 {
		return fmt.Errorf("invalid patrol radius: %v", c.Enemies.PatrolRadius)
	}
	if c.Enemies.WanderMin <= 0 || c.Enemies.WanderMin > c.Enemies.WanderMax {
		return fmt.Errorf("invalid wander interval: [%v, %v]", c.Enemies.WanderMin, c.Enemies.WanderMax)
	}

	if c.Combat.CollisionDamage <= 0 {
		return fmt.Errorf("invalid collision damage: %d", c.Combat.CollisionDamage)
	}
	if c.Animation.IdleFrame <= 0 || c.Animation.MoveFrame <= 0 {
		return fmt.Errorf("invalid frame durations: idle %v, move %v", c.Animation.IdleFrame, c.Animation.MoveFrame)
	}

	for name, r := range map[string]Rect{"start": c.Menu.Start, "sound": c.Menu.Sound, "exit": c.Menu.Exit} {
		if r.W <= 0 || r.H <= 0 {
			return fmt.Errorf("menu button %q has empty size %dx%d", name, r.W, r.H)
		}
	}

	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("invalid ticks per second: %d", c.TicksPerSecond)
	}
	return nil
}

// TickDuration returns the fixed simulation step in seconds
func (c *Config) TickDuration() float64 {
	return 1.0 / float64(c.TicksPerSecond)
}
