package game

import (
	"image/color"

	"chosenoffset.com/gridcrawl/internal/render"
	"chosenoffset.com/gridcrawl/internal/render/sprites"
	"chosenoffset.com/gridcrawl/internal/ui/menu"
	"chosenoffset.com/gridcrawl/internal/world/grid"
)

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.Session.State() {
	case StateMenu:
		menu.Draw(screen, m.Renderer, m.Session.Layout(), m.Session.SoundEnabled())
	case StatePlaying:
		m.drawWorld(screen)
	case StateGameOver:
		m.drawGameOver(screen)
	}
}

func (m *Manager) drawWorld(screen render.Image) {
	screen.Fill(sprites.Palette.Background)
	snap := m.Session.Snapshot()

	m.drawTiles(screen, snap.Grid)
	for _, e := range snap.Enemies {
		m.drawSprite(screen, e.Sprite, e.World)
	}
	if snap.Player.Alive {
		m.drawSprite(screen, snap.Player.Sprite, snap.Player.World)
	}

	m.hud.Draw(screen, m.Renderer, snap.Player.Health)
}

func (m *Manager) drawTiles(screen render.Image, g grid.Map) {
	cell := m.cfg.Grid.CellSize
	if m.floorTile == nil {
		m.floorTile = m.Renderer.NewImageFromImage(sprites.Floor(cell))
		m.wallTile = m.Renderer.NewImageFromImage(sprites.Wall(cell))
	}

	geoM := render.NewGeoM()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			tile := m.floorTile
			if !g.IsPassable(x, y) {
				tile = m.wallTile
			}
			geoM.Reset()
			geoM.Translate(float64(x*cell), float64(y*cell))
			screen.DrawImage(tile, &render.DrawImageOptions{GeoM: geoM})
		}
	}
}

// drawSprite draws a sprite with its top-left corner at pos, building and
// caching the image the first time id is seen.
func (m *Manager) drawSprite(screen render.Image, id string, pos grid.Vec) {
	img, ok := m.sprites[id]
	if !ok {
		img = m.Renderer.NewImageFromImage(sprites.Generate(id, m.cfg.Grid.CellSize))
		m.sprites[id] = img
	}

	geoM := render.NewGeoM()
	geoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, &render.DrawImageOptions{GeoM: geoM})
}

func (m *Manager) drawGameOver(screen render.Image) {
	screen.Fill(color.RGBA{40, 20, 20, 255})
	w, _ := screen.Size()

	m.drawCentered(screen, "GAME OVER", w/2, 250, color.RGBA{255, 0, 0, 255}, 5)
	m.drawCentered(screen, "Press SPACE to return to menu", w/2, 350, color.White, 2)
}

func (m *Manager) drawCentered(screen render.Image, text string, cx, cy int, clr color.Color, scale float64) {
	tw, th := m.Renderer.MeasureText(text, scale)
	m.Renderer.DrawText(screen, text, cx-tw/2, cy-th/2, clr, scale)
}
