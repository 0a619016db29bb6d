// Package entity provides the player, monsters and treasure that live on a level.
package entity

import (
	"io"

	"github.com/google/uuid"
)

// Kind identifies the variant of an entity.
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
	KindTreasure
)

// String returns the kind name, also used as its palette key.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindTreasure:
		return "treasure"
	default:
		return "unknown"
	}
}

// Stats holds combat numbers. They are carried for the collaborator to show;
// nothing in the core resolves combat.
type Stats struct {
	HP      int
	Attack  int
	Defense int
}

// Occupant is a non-player entity that can sit on a tile.
// A nil Occupant means the tile is empty.
type Occupant interface {
	EntityID() uuid.UUID
	Kind() Kind
	Position() (int, int)

	// occupant seals the interface to this package's types.
	occupant()
}

// IsMonster reports whether occ holds a monster.
func IsMonster(occ Occupant) bool {
	return occ != nil && occ.Kind() == KindMonster
}

// NewID draws a version 4 UUID from r. Passing the level's seeded
// *rand.Rand keeps ids reproducible across replays.
func NewID(r io.Reader) uuid.UUID {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.New()
	}
	return id
}
