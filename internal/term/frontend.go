// Package term plays a session in a terminal with tcell. The dungeon is drawn
// two columns per grid cell; the menu is laid out by scaling the pixel button
// rectangles down to character cells, so mouse clicks go through the same
// hit test as the window frontend.
package term

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/gridcrawl/internal/game"
	"chosenoffset.com/gridcrawl/internal/ui/menu"
	"chosenoffset.com/gridcrawl/internal/world/grid"
)

// Frontend runs a session on a tcell screen.
type Frontend struct {
	screen  tcell.Screen
	session *game.Session

	tickRate time.Duration
	dt       float64
	cellSize float64 // Pixels per grid cell

	mouseDown bool
}

// New creates a frontend. The screen must already be initialised; the caller
// keeps ownership and calls Fini.
func New(screen tcell.Screen, session *game.Session, ticksPerSecond, cellSize int) *Frontend {
	return &Frontend{
		screen:   screen,
		session:  session,
		tickRate: time.Second / time.Duration(ticksPerSecond),
		dt:       1.0 / float64(ticksPerSecond),
		cellSize: float64(cellSize),
	}
}

// Run drives the session until ctx is cancelled or the player quits. Quitting
// returns nil.
func (f *Frontend) Run(ctx context.Context) error {
	ticker := time.NewTicker(f.tickRate)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	log.Printf("Terminal frontend started at %v per tick", f.tickRate)
	f.Draw()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Terminal frontend stopped: %v", ctx.Err())
			return nil

		case ev := <-events:
			if err := f.HandleEvent(ev); err != nil {
				if errors.Is(err, game.ErrQuit) {
					log.Printf("Terminal frontend quit")
					return nil
				}
				return err
			}

		case <-ticker.C:
			f.session.Tick(f.dt)
			f.Draw()
		}
	}
}

// HandleEvent routes one terminal event into the session. It returns
// game.ErrQuit when the program should end.
func (f *Frontend) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, dir := KeyAction(ev)
		if action == ActionQuit {
			return game.ErrQuit
		}
		return f.handleAction(action, dir)

	case *tcell.EventMouse:
		// Drags and held buttons repeat; only the press itself clicks.
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasDown := f.mouseDown
		f.mouseDown = pressed
		if !pressed || wasDown {
			return nil
		}
		col, row := ev.Position()
		x, y := PixelAt(col, row)
		return f.session.HandleActivation(x, y)

	case *tcell.EventResize:
		f.screen.Sync()
	}
	return nil
}

func (f *Frontend) handleAction(action Action, dir grid.Direction) error {
	switch f.session.State() {
	case game.StateMenu:
		switch action {
		case ActionConfirm:
			return f.press(menu.ButtonStart)
		case ActionSound:
			return f.press(menu.ButtonSound)
		case ActionExit:
			return f.press(menu.ButtonExit)
		}
	case game.StatePlaying:
		if action == ActionMove {
			f.session.HandleDirectionalInput(dir)
		}
	case game.StateGameOver:
		if action == ActionConfirm {
			f.session.HandleConfirm()
		}
	}
	return nil
}

// press activates a menu button as if it had been clicked.
func (f *Frontend) press(b menu.Button) error {
	x, y, ok := f.session.Layout().Center(b)
	if !ok {
		return nil
	}
	return f.session.HandleActivation(x, y)
}
