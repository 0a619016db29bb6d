package entity

import (
	"math/rand"

	"github.com/google/uuid"
)

// Treasure is a loot drop placed on a room tile.
type Treasure struct {
	ID        uuid.UUID
	X, Y      int
	RoomIndex int
	DropCount int // Number of drops awarded, in [1, floor]
}

// NewTreasure creates a treasure with a drop count uniform in [1, floor].
func NewTreasure(rng *rand.Rand, x, y, roomIndex, floor int) *Treasure {
	if floor < 1 {
		floor = 1
	}
	return &Treasure{
		ID:        NewID(rng),
		X:         x,
		Y:         y,
		RoomIndex: roomIndex,
		DropCount: 1 + rng.Intn(floor),
	}
}

func (t *Treasure) EntityID() uuid.UUID  { return t.ID }
func (t *Treasure) Kind() Kind           { return KindTreasure }
func (t *Treasure) Position() (int, int) { return t.X, t.Y }
func (t *Treasure) occupant()            {}
