// Package world provides dungeon generation and map management.
package world

import "github.com/samdwyer/dungeoncrawl/internal/entity"

// Tile is one cell of the grid.
type Tile struct {
	X, Y   int
	Solid  bool // Impassable; true until carved
	Seen   bool // Lit at least once by the player
	IsWall bool // Outward neighbour of a room perimeter

	// Occupant is the monster or treasure on this tile, nil when empty.
	Occupant entity.Occupant
}

// IsPassable returns true if the tile can be walked on.
func (t *Tile) IsPassable() bool {
	return !t.Solid
}

// Blocked reports whether an actor may not step onto the tile.
func (t *Tile) Blocked() bool {
	return t.Solid || entity.IsMonster(t.Occupant)
}
