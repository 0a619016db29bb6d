package world

import (
	"math/rand"
	"testing"
)

// buildLevel places, carves and connects rooms on a 50x50 grid.
func buildLevel(t *testing.T, seed int64, finder PathFinder) (*Grid, []Room, ConnectReport) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rooms, err := PlaceRooms(rng, 50, Range{6, 9}, Range{6, 10}, DefaultMaxAttempts)
	if err != nil {
		t.Fatalf("PlaceRooms() error = %v", err)
	}
	g := NewGrid(50)
	walls := CarveRooms(g, rooms)
	report := ConnectRooms(rng, g, rooms, walls, ConnectOptions{HallDensity: 1, Finder: finder})
	return g, rooms, report
}

func TestLevelReproducibility(t *testing.T) {
	g1, r1, rep1 := buildLevel(t, 12345, nil)
	g2, r2, rep2 := buildLevel(t, 12345, nil)

	if len(r1) != len(r2) {
		t.Fatalf("Room count mismatch: %d != %d", len(r1), len(r2))
	}
	if rep1.Carved != rep2.Carved {
		t.Errorf("Carved mismatch: %d != %d", rep1.Carved, rep2.Carved)
	}
	for y := 0; y < g1.Size; y++ {
		for x := 0; x < g1.Size; x++ {
			if g1.Tiles[y][x] != g2.Tiles[y][x] {
				t.Errorf("Tile mismatch at (%d,%d): %+v != %+v", x, y, g1.Tiles[y][x], g2.Tiles[y][x])
			}
		}
	}
}

func TestLevelDifferentSeeds(t *testing.T) {
	_, r1, _ := buildLevel(t, 12345, nil)
	_, r2, _ := buildLevel(t, 54321, nil)

	identical := len(r1) == len(r2)
	for i := 0; identical && i < len(r1); i++ {
		if r1[i].X != r2[i].X || r1[i].Y != r2[i].Y {
			identical = false
		}
	}
	if identical {
		t.Error("Levels with different seeds should not be identical")
	}
}

func TestRoutedPairsReachable(t *testing.T) {
	for _, algo := range []string{AlgorithmBidirectional, AlgorithmAstar} {
		finder, _ := NewFinder(algo, false)
		for seed := int64(1); seed <= 10; seed++ {
			g, rooms, report := buildLevel(t, seed, finder)
			for _, pair := range report.Routed() {
				from, to := rooms[pair.From].Center(), rooms[pair.To].Center()
				if !Reachable(g, from, to) {
					t.Errorf("%s seed %d: room %d not reachable from room %d", algo, seed, pair.To, pair.From)
				}
				for _, p := range pair.Path {
					if g.IsSolid(p.X, p.Y) {
						t.Errorf("%s seed %d: corridor tile %v is solid", algo, seed, p)
					}
				}
			}
		}
	}
}

func TestDistances(t *testing.T) {
	g := NewGrid(6)
	for x := 0; x < 6; x++ {
		g.Carve(x, 2)
	}
	d := Distances(g, Point{0, 2})
	if got := d[Point{5, 2}]; got != 5 {
		t.Errorf("distance to (5,2) = %d, want 5", got)
	}
	if _, ok := d[Point{0, 0}]; ok {
		t.Error("solid tile (0,0) should be absent from the distance map")
	}
	if Reachable(g, Point{0, 2}, Point{0, 3}) {
		t.Error("Reachable() to a solid tile = true, want false")
	}
	if got := FloodFill(g, Point{3, 2}).Size(); got != 6 {
		t.Errorf("FloodFill() size = %d, want 6", got)
	}
}
