package entity

import "github.com/google/uuid"

// Player is the single long-lived actor controlled by the user.
// It survives level regeneration; only its position is reset.
type Player struct {
	ID     uuid.UUID
	X, Y   int  // Current position on the grid
	Symbol rune // Display symbol
	Stats  Stats
}

// NewPlayer creates a player with the starting stats at the given position.
func NewPlayer(id uuid.UUID, x, y int) *Player {
	return &Player{
		ID:     id,
		X:      x,
		Y:      y,
		Symbol: '@',
		Stats: Stats{
			HP:      100,
			Attack:  10,
			Defense: 0,
		},
	}
}

// MoveTo places the player at an absolute position.
func (p *Player) MoveTo(x, y int) {
	p.X = x
	p.Y = y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}
