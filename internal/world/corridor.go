package world

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

// ConnectOptions controls corridor routing.
type ConnectOptions struct {
	HallDensity int        // Endpoints sampled per room
	Finder      PathFinder // Defaults to a 4-way BidirectionalFinder
}

// Pair is one corridor request between two rooms' wall candidates.
type Pair struct {
	From, To   int // Room IDs
	Start, End Point
	Path       []Point // Carved path, nil when routing failed
}

// ConnectReport summarises a ConnectRooms pass.
type ConnectReport struct {
	Pairs  []Pair
	Failed []Pair
	Carved int // Tiles newly opened by corridors
}

// Routed returns the pairs that were joined by a corridor.
func (r ConnectReport) Routed() []Pair {
	routed := make([]Pair, 0, len(r.Pairs))
	for _, p := range r.Pairs {
		if p.Path != nil {
			routed = append(routed, p)
		}
	}
	return routed
}

// Err returns an error wrapping ErrPartialConnectivity when any pair failed.
func (r ConnectReport) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d corridors unroutable", ErrPartialConnectivity, len(r.Failed), len(r.Pairs))
}

// ConnectRooms links rooms with corridors.
//
// Each room keeps HallDensity randomly chosen wall candidates. The k-th
// candidate of a room is paired with the nearest k-th candidate of any other
// room. Every pair is then routed over a walkability matrix where only
// unchosen wall tiles block, so corridors tunnel through rock and breach a
// room exclusively at a chosen candidate. Carved cells are opened in the
// matrix before the next pair is routed. Unroutable pairs are skipped and
// listed in the report.
func ConnectRooms(rng *rand.Rand, g *Grid, rooms []Room, walls []WallAdjacency, opts ConnectOptions) ConnectReport {
	finder := opts.Finder
	if finder == nil {
		finder = BidirectionalFinder{}
	}

	candidates := sampleCandidates(rng, walls, opts.HallDensity)
	pairs := pairRooms(rooms, candidates)
	m := walkability(g, candidates)

	report := ConnectReport{Pairs: pairs}
	for i := range report.Pairs {
		pair := &report.Pairs[i]
		path := finder.FindPath(m, pair.Start, pair.End)
		if path == nil {
			report.Failed = append(report.Failed, *pair)
			continue
		}
		for _, p := range path {
			if g.Carve(p.X, p.Y) {
				report.Carved++
			}
			m.SetWalkable(p, true)
		}
		pair.Path = path
	}
	return report
}

// sampleCandidates shuffles a copy of each room's walls and keeps up to density.
func sampleCandidates(rng *rand.Rand, walls []WallAdjacency, density int) [][]Point {
	if density < 1 {
		density = 1
	}
	out := make([][]Point, len(walls))
	for i, w := range walls {
		c := make([]Point, len(w))
		copy(c, w)
		rng.Shuffle(len(c), func(a, b int) { c[a], c[b] = c[b], c[a] })
		if len(c) > density {
			c = c[:density]
		}
		out[i] = c
	}
	return out
}

// pairRooms matches every kept candidate with the closest candidate at the
// same index in another room. Ties go to the lowest room index.
func pairRooms(rooms []Room, candidates [][]Point) []Pair {
	var pairs []Pair
	for i := range candidates {
		for k, start := range candidates[i] {
			best, bestDist := -1, 0
			for j := range candidates {
				if j == i || len(candidates[j]) <= k {
					continue
				}
				d := start.Manhattan(candidates[j][k])
				if best < 0 || d < bestDist {
					best, bestDist = j, d
				}
			}
			if best < 0 {
				continue
			}
			pairs = append(pairs, Pair{
				From:  rooms[i].ID,
				To:    rooms[best].ID,
				Start: start,
				End:   candidates[best][k],
			})
		}
	}
	return pairs
}

// walkability blocks every wall tile that was not kept as a candidate.
func walkability(g *Grid, candidates [][]Point) *Matrix {
	keep := mapset.New[Point]()
	for _, cs := range candidates {
		for _, p := range cs {
			keep.Put(p)
		}
	}
	m := NewMatrix(g.Size)
	g.ForEachTile(func(t *Tile) {
		p := Point{X: t.X, Y: t.Y}
		if t.IsWall && !keep.Has(p) {
			m.SetWalkable(p, false)
		}
	})
	return m
}
