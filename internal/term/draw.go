package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/gridcrawl/internal/game"
	"chosenoffset.com/gridcrawl/internal/ui/hud"
	"chosenoffset.com/gridcrawl/internal/ui/menu"
	"chosenoffset.com/gridcrawl/internal/world/grid"
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(20, 20, 40))
	styleText       = styleBackground.Foreground(tcell.ColorWhite)
	styleTitle      = styleText.Bold(true)
	styleWall       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(100, 50, 30)).Background(tcell.NewRGBColor(100, 50, 30))
	styleFloor      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(80, 80, 100)).Background(tcell.NewRGBColor(40, 40, 60))
	styleButton     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(60, 60, 100))
	styleSoundOn    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(60, 100, 60))
	styleSoundOff   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(100, 60, 60))
	styleGameOver   = tcell.StyleDefault.Background(tcell.NewRGBColor(40, 20, 20))
)

// entityStyle colours a creature on its floor tile; the core colour shows
// while it is moving.
func entityStyle(body, core tcell.Color, moving bool) tcell.Style {
	fg := body
	if moving {
		fg = core
	}
	return styleFloor.Foreground(fg).Bold(true)
}

// Draw renders the current state and shows it.
func (f *Frontend) Draw() {
	f.screen.SetStyle(styleBackground)
	f.screen.Clear()

	snap := f.session.Snapshot()
	switch snap.State {
	case game.StateMenu:
		f.drawMenu(snap.SoundEnabled)
	case game.StatePlaying:
		f.drawWorld(snap)
	case game.StateGameOver:
		f.drawGameOver()
	}

	f.screen.Show()
}

func (f *Frontend) drawMenu(soundOn bool) {
	w, h := f.screen.Size()
	layout := f.session.Layout()

	f.drawCentered(100/cellPixelsY, menu.Title, styleTitle)

	// A cell belongs to a button when its centre pixel hits it, so the drawn
	// box and the clickable area are the same cells.
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			x, y := PixelAt(col, row)
			switch layout.ButtonAt(x, y) {
			case menu.ButtonStart, menu.ButtonExit:
				f.screen.SetContent(col, row, ' ', nil, styleButton)
			case menu.ButtonSound:
				st := styleSoundOff
				if soundOn {
					st = styleSoundOn
				}
				f.screen.SetContent(col, row, ' ', nil, st)
			}
		}
	}

	for _, b := range []menu.Button{menu.ButtonStart, menu.ButtonSound, menu.ButtonExit} {
		x, y, _ := layout.Center(b)
		col, row := x/cellPixelsX, y/cellPixelsY
		label := menu.Label(b, soundOn)

		st := styleButton
		if b == menu.ButtonSound {
			st = styleSoundOff
			if soundOn {
				st = styleSoundOn
			}
		}
		f.drawString(col-len(label)/2, row, label, st)
	}

	f.drawCentered(h-1, "click or: Enter start, m sound, q exit", styleText)
}

// worldCell converts a render position to the nearest terminal cell. The map
// starts on row 1, below the HUD line.
func (f *Frontend) worldCell(v grid.Vec) (col, row int) {
	gx := int(math.Round(v.X / f.cellSize))
	gy := int(math.Round(v.Y / f.cellSize))
	return gx * 2, gy + 1
}

func (f *Frontend) drawWorld(snap game.Snapshot) {
	g := snap.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.IsPassable(x, y) {
				f.screen.SetContent(x*2, y+1, '.', nil, styleFloor)
				f.screen.SetContent(x*2+1, y+1, ' ', nil, styleFloor)
			} else {
				f.screen.SetContent(x*2, y+1, '█', nil, styleWall)
				f.screen.SetContent(x*2+1, y+1, '█', nil, styleWall)
			}
		}
	}

	for _, e := range snap.Enemies {
		col, row := f.worldCell(e.World)
		glyph := '?'
		if e.Kind != "" {
			glyph = []rune(e.Kind)[0]
		}
		f.screen.SetContent(col, row, glyph, nil, entityStyle(tcell.ColorRed, tcell.ColorOrange, e.Moving))
	}

	if snap.Player.Alive {
		col, row := f.worldCell(snap.Player.World)
		f.screen.SetContent(col, row, '@', nil, entityStyle(tcell.ColorBlue, tcell.ColorAqua, snap.Player.Moving))
	}

	f.drawString(0, 0, hud.HealthText(snap.Player.Health), styleText)
}

func (f *Frontend) drawGameOver() {
	w, h := f.screen.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			f.screen.SetContent(col, row, ' ', nil, styleGameOver)
		}
	}
	f.drawCentered(250/cellPixelsY, "GAME OVER", styleGameOver.Foreground(tcell.ColorRed).Bold(true))
	f.drawCentered(350/cellPixelsY, "Press SPACE to return to menu", styleGameOver.Foreground(tcell.ColorWhite))
}

func (f *Frontend) drawCentered(row int, s string, st tcell.Style) {
	w, _ := f.screen.Size()
	f.drawString((w-len(s))/2, row, s, st)
}

func (f *Frontend) drawString(col, row int, s string, st tcell.Style) {
	for i, r := range []rune(s) {
		f.screen.SetContent(col+i, row, r, nil, st)
	}
}
