package world

import (
	"fmt"
	"math/rand"
)

// DefaultMaxAttempts is the number of samples tried for one room before the
// size bound is lowered.
const DefaultMaxAttempts = 500

// PlaceRooms places a number of non-overlapping rooms, drawn once from count,
// on a gridSize x gridSize grid by rejection sampling.
//
// Each room's width and height come from size, and its centre is chosen so the
// rectangle stays inside [1, gridSize-2]. A candidate is rejected while its
// padded rectangle overlaps the padded rectangle of an accepted room. After
// maxAttempts rejections the upper size bound drops by one for the rest of the
// run. Once the bound reaches size.Min and still nothing fits, the rooms placed
// so far are returned with an error wrapping ErrGenerationExhausted.
func PlaceRooms(rng *rand.Rand, gridSize int, count, size Range, maxAttempts int) ([]Room, error) {
	if size.Min < 2 || !size.Valid() {
		return nil, fmt.Errorf("invalid room size range %s", size)
	}
	if gridSize < size.Min+4 {
		return nil, fmt.Errorf("grid size %d too small for rooms of size %d", gridSize, size.Min)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	target := count.Sample(rng)
	rooms := make([]Room, 0, target)
	padded := make([]Rect, 0, target)
	bound := size

	for len(rooms) < target {
		room, ok := tryPlace(rng, gridSize, bound, padded, maxAttempts)
		if ok {
			room.ID = len(rooms)
			rooms = append(rooms, room)
			padded = append(padded, room.Bounds().Padded())
			continue
		}
		if bound.Max > bound.Min {
			bound.Max--
			continue
		}
		return rooms, fmt.Errorf("%w: placed %d of %d rooms on a %dx%d grid",
			ErrGenerationExhausted, len(rooms), target, gridSize, gridSize)
	}

	return rooms, nil
}

// tryPlace samples up to attempts rooms and returns the first that fits.
func tryPlace(rng *rand.Rand, gridSize int, size Range, placed []Rect, attempts int) (Room, bool) {
	for i := 0; i < attempts; i++ {
		room, ok := sampleRoom(rng, gridSize, size)
		if !ok {
			continue
		}
		if !collides(room.Bounds().Padded(), placed) {
			return room, true
		}
	}
	return Room{}, false
}

// sampleRoom draws a room size and a centre that keeps it on the grid.
func sampleRoom(rng *rand.Rand, gridSize int, size Range) (Room, bool) {
	w := size.Sample(rng)
	h := size.Sample(rng)
	xs, ok := centreRange(gridSize, w)
	if !ok {
		return Room{}, false
	}
	ys, ok := centreRange(gridSize, h)
	if !ok {
		return Room{}, false
	}
	return Room{X: xs.Sample(rng), Y: ys.Sample(rng), Width: w, Height: h}, true
}

// centreRange returns the valid centre coordinates for an edge of length n.
func centreRange(gridSize, n int) (Range, bool) {
	half := (n + 1) / 2
	r := Range{Min: 1 + half, Max: gridSize - half - 1}
	return r, r.Valid()
}

func collides(r Rect, placed []Rect) bool {
	for _, p := range placed {
		if r.Intersects(p) {
			return true
		}
	}
	return false
}
