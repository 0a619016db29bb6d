package world

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPlaceRoomsNoOverlap(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rng := rand.New(rand.NewSource(seed))
		rooms, err := PlaceRooms(rng, 50, Range{6, 9}, Range{5, 8}, DefaultMaxAttempts)
		if err != nil {
			t.Fatalf("seed %d: PlaceRooms() error = %v", seed, err)
		}
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				pi, pj := rooms[i].Bounds().Padded(), rooms[j].Bounds().Padded()
				if pi.Intersects(pj) {
					t.Errorf("seed %d: rooms %d and %d padded rects overlap: %+v %+v", seed, i, j, pi, pj)
				}
			}
		}
	}
}

func TestPlaceRoomsInsideGrid(t *testing.T) {
	const size = 40
	rng := rand.New(rand.NewSource(7))
	rooms, err := PlaceRooms(rng, size, Range{5, 8}, Range{4, 9}, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("PlaceRooms() error = %v", err)
	}
	for _, r := range rooms {
		b := r.Bounds()
		if b.StartX < 1 || b.StartY < 1 || b.EndX > size-1 || b.EndY > size-1 {
			t.Errorf("room %d bounds %+v leave [1,%d]", r.ID, b, size-2)
		}
	}
}

func TestPlaceRoomsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	rooms, err := PlaceRooms(rng, 50, Range{4, 7}, Range{5, 7}, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("PlaceRooms() error = %v", err)
	}
	if len(rooms) < 4 || len(rooms) > 7 {
		t.Errorf("len(rooms) = %d, want within [4,7]", len(rooms))
	}
	for i, r := range rooms {
		if r.ID != i {
			t.Errorf("rooms[%d].ID = %d, want %d", i, r.ID, i)
		}
	}
}

func TestPlaceRoomsReproducibility(t *testing.T) {
	seed := int64(12345)
	rng1 := rand.New(rand.NewSource(seed))
	rng2 := rand.New(rand.NewSource(seed))

	r1, err1 := PlaceRooms(rng1, 50, Range{6, 9}, Range{5, 8}, DefaultMaxAttempts)
	r2, err2 := PlaceRooms(rng2, 50, Range{6, 9}, Range{5, 8}, DefaultMaxAttempts)
	if err1 != nil || err2 != nil {
		t.Fatalf("PlaceRooms() errors = %v, %v", err1, err2)
	}
	if len(r1) != len(r2) {
		t.Fatalf("Room count mismatch: %d != %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Errorf("Room %d mismatch: %+v != %+v", i, r1[i], r2[i])
		}
	}
}

func TestPlaceRoomsExhausted(t *testing.T) {
	// A 12x12 grid holds a single 6x6 room; the second can never fit.
	rng := rand.New(rand.NewSource(1))
	rooms, err := PlaceRooms(rng, 12, Range{3, 3}, Range{6, 6}, 50)
	if !errors.Is(err, ErrGenerationExhausted) {
		t.Fatalf("PlaceRooms() error = %v, want ErrGenerationExhausted", err)
	}
	if len(rooms) != 1 {
		t.Errorf("len(rooms) = %d, want 1 partial room", len(rooms))
	}
}

func TestPlaceRoomsShrinksBeforeGivingUp(t *testing.T) {
	// A large first room can crowd out a second one until the size bound drops.
	rng := rand.New(rand.NewSource(3))
	rooms, err := PlaceRooms(rng, 26, Range{2, 2}, Range{4, 10}, 200)
	if err != nil {
		t.Fatalf("PlaceRooms() error = %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("len(rooms) = %d, want 2", len(rooms))
	}
}

func TestPlaceRoomsInvalidInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := PlaceRooms(rng, 50, Range{1, 2}, Range{1, 4}, 10); err == nil {
		t.Error("PlaceRooms() with room size 1 should fail")
	}
	if _, err := PlaceRooms(rng, 8, Range{1, 2}, Range{6, 6}, 10); err == nil {
		t.Error("PlaceRooms() on a too-small grid should fail")
	}
}
