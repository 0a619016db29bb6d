package world

import (
	"math/rand"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
)

// Population holds every entity generated for a level. Entities that were
// overwritten on their tile by a later placement are still listed.
type Population struct {
	Treasures []*entity.Treasure
	Monsters  []*entity.Monster
}

// Populate drops treasures, then monsters, each on a random tile of a random
// room. A later entity replaces whatever occupied its tile before.
func Populate(rng *rand.Rand, g *Grid, rooms []Room, treasures, monsters, floor int) Population {
	var pop Population
	if len(rooms) == 0 {
		return pop
	}

	for i := 0; i < treasures; i++ {
		room, x, y := randomRoomTile(rng, rooms)
		t := entity.NewTreasure(rng, x, y, room.ID, floor)
		g.Place(x, y, t)
		pop.Treasures = append(pop.Treasures, t)
	}
	for i := 0; i < monsters; i++ {
		room, x, y := randomRoomTile(rng, rooms)
		m := entity.NewMonster(rng, x, y, room.ID, floor)
		g.Place(x, y, m)
		pop.Monsters = append(pop.Monsters, m)
	}
	return pop
}

// RandomPointInRoom returns a uniformly chosen tile of room.
func RandomPointInRoom(rng *rand.Rand, room Room) Point {
	b := room.Bounds()
	return Point{
		X: b.StartX + rng.Intn(b.Width()),
		Y: b.StartY + rng.Intn(b.Height()),
	}
}

func randomRoomTile(rng *rand.Rand, rooms []Room) (Room, int, int) {
	room := rooms[rng.Intn(len(rooms))]
	p := RandomPointInRoom(rng, room)
	return room, p.X, p.Y
}
