package game

import (
	"errors"
	"log"

	"chosenoffset.com/gridcrawl/internal/config"
	"chosenoffset.com/gridcrawl/internal/render"
	"chosenoffset.com/gridcrawl/internal/ui/hud"
	"chosenoffset.com/gridcrawl/internal/world/grid"
)

// directionKeys maps both WASD and the arrow keys; earlier entries win when
// several keys go down on the same frame.
var directionKeys = []struct {
	key render.Key
	dir grid.Direction
}{
	{render.KeyUp, grid.DirUp},
	{render.KeyW, grid.DirUp},
	{render.KeyDown, grid.DirDown},
	{render.KeyS, grid.DirDown},
	{render.KeyLeft, grid.DirLeft},
	{render.KeyA, grid.DirLeft},
	{render.KeyRight, grid.DirRight},
	{render.KeyD, grid.DirRight},
}

// Manager adapts a Session to the render.Game loop: it turns input into
// session events, steps the session at a fixed rate and draws it.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Session      *Session
	Renderer     render.Renderer
	InputMgr     render.InputManager

	cfg *config.Config
	hud *hud.HUD

	sprites   map[string]render.Image
	floorTile render.Image
	wallTile  render.Image
}

// NewManager creates a new game manager.
func NewManager(cfg *config.Config, session *Session, r render.Renderer, input render.InputManager) *Manager {
	return &Manager{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Session:      session,
		Renderer:     r,
		InputMgr:     input,
		cfg:          cfg,
		hud:          hud.New(cfg.Player.Health),
		sprites:      make(map[string]render.Image),
	}
}

// Update handles this frame's input and advances the session by one tick.
// Escape closes the window from any screen.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Printf("Escape pressed, closing")
		return render.ErrTerminate
	}

	switch m.Session.State() {
	case StateMenu:
		if m.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
			x, y := m.InputMgr.GetCursorPosition()
			if err := m.Session.HandleActivation(x, y); err != nil {
				if errors.Is(err, ErrQuit) {
					return render.ErrTerminate
				}
				return err
			}
		}
	case StatePlaying:
		if dir := m.pressedDirection(); dir != grid.DirNone {
			m.Session.HandleDirectionalInput(dir)
		}
	case StateGameOver:
		if m.InputMgr.IsKeyJustPressed(render.KeySpace) {
			m.Session.HandleConfirm()
		}
	}

	m.Session.Tick(m.cfg.TickDuration())
	return nil
}

func (m *Manager) pressedDirection() grid.Direction {
	for _, dk := range directionKeys {
		if m.InputMgr.IsKeyJustPressed(dk.key) {
			return dk.dir
		}
	}
	return grid.DirNone
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
