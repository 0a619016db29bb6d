package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// View is the state a frame is drawn from.
type View struct {
	Grid   *world.Grid
	Player *entity.Player
	Fog    bool   // Hide tiles that have never been seen
	Status string // Bottom line text
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the grid, entities and player, scrolled so the player stays
// on screen, with the status text on the last row.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	width, height := r.screen.Size()
	mapHeight := height - 1
	offX := cameraOffset(v.Player.X, width, v.Grid.Size)
	offY := cameraOffset(v.Player.Y, mapHeight, v.Grid.Size)

	for sy := 0; sy < mapHeight; sy++ {
		for sx := 0; sx < width; sx++ {
			tile := v.Grid.Tile(sx+offX, sy+offY)
			if tile == nil {
				continue
			}
			def := r.cell(tile, v.Fog)
			r.screen.SetContent(sx, sy, def.Rune(), r.palette.Style(def))
		}
	}

	// Draw player on top
	player := r.palette.Entity(entity.KindPlayer.String())
	r.screen.SetContent(v.Player.X-offX, v.Player.Y-offY, v.Player.Symbol, r.palette.Style(player))

	r.RenderMessage(v.Status, height-1)
	r.screen.Show()
}

// cell picks the palette entry for a tile.
func (r *Renderer) cell(tile *world.Tile, fog bool) gamedata.GlyphDef {
	switch {
	case fog && !tile.Seen:
		return r.palette.Tile(gamedata.TileUnseen)
	case tile.Solid && tile.IsWall:
		return r.palette.Tile(gamedata.TileWall)
	case tile.Solid:
		return r.palette.Tile(gamedata.TileRock)
	case tile.Occupant != nil:
		return r.palette.Entity(tile.Occupant.Kind().String())
	default:
		return r.palette.Tile(gamedata.TileFloor)
	}
}

// cameraOffset returns the first visible coordinate on one axis.
func cameraOffset(pos, view, size int) int {
	if view <= 0 || size <= view {
		return 0
	}
	off := pos - view/2
	return max(0, min(off, size-view))
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
