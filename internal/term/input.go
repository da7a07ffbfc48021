package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/gridcrawl/internal/world/grid"
)

// Action is a decoded keyboard command.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionConfirm // Space or Enter
	ActionSound   // 'm' toggles sound on the menu
	ActionExit    // 'q' presses the exit button on the menu
	ActionQuit    // Esc or Ctrl-C leaves immediately
)

// KeyAction decodes a key press. Moves carry their direction.
func KeyAction(ev *tcell.EventKey) (Action, grid.Direction) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit, grid.DirNone
	case tcell.KeyEnter:
		return ActionConfirm, grid.DirNone
	case tcell.KeyUp:
		return ActionMove, grid.DirUp
	case tcell.KeyDown:
		return ActionMove, grid.DirDown
	case tcell.KeyLeft:
		return ActionMove, grid.DirLeft
	case tcell.KeyRight:
		return ActionMove, grid.DirRight
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return ActionMove, grid.DirUp
		case 's':
			return ActionMove, grid.DirDown
		case 'a':
			return ActionMove, grid.DirLeft
		case 'd':
			return ActionMove, grid.DirRight
		case ' ':
			return ActionConfirm, grid.DirNone
		case 'm':
			return ActionSound, grid.DirNone
		case 'q':
			return ActionExit, grid.DirNone
		}
	}
	return ActionNone, grid.DirNone
}

// Cell metrics map the logical pixel screen onto terminal cells: an 800x600
// screen becomes 80x24.
const (
	cellPixelsX = 10
	cellPixelsY = 25
)

// PixelAt returns the logical pixel at the centre of terminal cell (col, row).
func PixelAt(col, row int) (x, y int) {
	return col*cellPixelsX + cellPixelsX/2, row*cellPixelsY + cellPixelsY/2
}
