package world

import "github.com/samdwyer/dungeoncrawl/internal/entity"

// Grid is the square tile map of a single level, stored row-major as Tiles[y][x].
//
// Carving and revealing are one-way: a grid exposes no operation that makes
// a tile solid again or forgets that it was seen.
type Grid struct {
	Size  int
	Tiles [][]Tile
}

// NewGrid creates a size x size grid of solid, unseen, empty tiles.
func NewGrid(size int) *Grid {
	if size <= 0 {
		panic("world: grid size must be positive")
	}
	tiles := make([][]Tile, size)
	for y := range tiles {
		tiles[y] = make([]Tile, size)
		for x := range tiles[y] {
			tiles[y][x] = Tile{X: x, Y: y, Solid: true}
		}
	}
	return &Grid{Size: size, Tiles: tiles}
}

// InBounds returns true if (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// Tile returns the tile at (x, y), or nil when out of range.
func (g *Grid) Tile(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return &g.Tiles[y][x]
}

// At is Tile for a Point.
func (g *Grid) At(p Point) *Tile {
	return g.Tile(p.X, p.Y)
}

// IsSolid returns true for solid tiles and for anything off the grid.
func (g *Grid) IsSolid(x, y int) bool {
	t := g.Tile(x, y)
	return t == nil || t.Solid
}

// Carve makes the tile at (x, y) walkable. It returns true if the tile was
// solid before the call.
func (g *Grid) Carve(x, y int) bool {
	t := g.Tile(x, y)
	if t == nil || !t.Solid {
		return false
	}
	t.Solid = false
	return true
}

// MarkWall flags (x, y) as a wall-adjacency tile.
func (g *Grid) MarkWall(x, y int) {
	if t := g.Tile(x, y); t != nil {
		t.IsWall = true
	}
}

// Reveal marks (x, y) as seen and returns true if it was unseen before.
func (g *Grid) Reveal(x, y int) bool {
	t := g.Tile(x, y)
	if t == nil || t.Seen {
		return false
	}
	t.Seen = true
	return true
}

// Place puts occ on the tile at (x, y), replacing any previous occupant.
// Solid and out-of-range tiles are refused.
func (g *Grid) Place(x, y int, occ entity.Occupant) bool {
	t := g.Tile(x, y)
	if t == nil || t.Solid {
		return false
	}
	t.Occupant = occ
	return true
}

// ForEachTile calls fn for every tile in row-major order.
func (g *Grid) ForEachTile(fn func(t *Tile)) {
	for y := range g.Tiles {
		for x := range g.Tiles[y] {
			fn(&g.Tiles[y][x])
		}
	}
}

// Counts returns the number of open and seen tiles.
func (g *Grid) Counts() (open, seen int) {
	g.ForEachTile(func(t *Tile) {
		if !t.Solid {
			open++
		}
		if t.Seen {
			seen++
		}
	})
	return open, seen
}
