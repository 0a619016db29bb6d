package entity

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Base monster stats before the difficulty modifier is applied.
const (
	monsterBaseHP      = 20
	monsterBaseAttack  = 5
	monsterBaseDefense = 2
)

// Monster is a hostile creature placed on a room tile.
type Monster struct {
	ID        uuid.UUID
	X, Y      int     // Position in the dungeon
	RoomIndex int     // Index of the room this monster was placed in
	Modifier  float64 // Difficulty modifier the stats were scaled by
	Stats     Stats
}

// NewMonster creates a monster whose stats are scaled by a random modifier
// in [0, 2*floor).
func NewMonster(rng *rand.Rand, x, y, roomIndex, floor int) *Monster {
	modifier := rng.Float64() * 2 * float64(floor)
	return &Monster{
		ID:        NewID(rng),
		X:         x,
		Y:         y,
		RoomIndex: roomIndex,
		Modifier:  modifier,
		Stats: Stats{
			HP:      scale(monsterBaseHP, modifier),
			Attack:  scale(monsterBaseAttack, modifier),
			Defense: scale(monsterBaseDefense, modifier),
		},
	}
}

func scale(base int, modifier float64) int {
	return int(math.Round(float64(base) * modifier))
}

// EntityID returns the monster's unique identifier.
func (m *Monster) EntityID() uuid.UUID { return m.ID }

// Kind returns KindMonster.
func (m *Monster) Kind() Kind { return KindMonster }

// Position returns the monster's current x, y coordinates.
func (m *Monster) Position() (int, int) { return m.X, m.Y }

func (m *Monster) occupant() {}
