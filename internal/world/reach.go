package world

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// gridPather exposes the open tiles of a Grid as a gruid Pather.
type gridPather struct {
	g   *Grid
	nbs paths.Neighbors
}

func (gp *gridPather) Neighbors(p gruid.Point) []gruid.Point {
	return gp.nbs.Cardinal(p, func(q gruid.Point) bool {
		return !gp.g.IsSolid(q.X, q.Y)
	})
}

// Distances returns the 4-way walking distance from src to every reachable
// open tile. Unreachable tiles are absent from the map.
func Distances(g *Grid, src Point) map[Point]int {
	if g.IsSolid(src.X, src.Y) {
		return nil
	}
	pr := paths.NewPathRange(gruid.NewRange(0, 0, g.Size, g.Size))
	nodes := pr.BreadthFirstMap(&gridPather{g: g}, []gruid.Point{toGruid(src)}, g.Size*g.Size)
	dist := make(map[Point]int, len(nodes))
	for _, n := range nodes {
		dist[Point{X: n.P.X, Y: n.P.Y}] = n.Cost
	}
	return dist
}

// Reachable reports whether a 4-way path over open tiles joins from and to.
func Reachable(g *Grid, from, to Point) bool {
	if g.IsSolid(to.X, to.Y) {
		return false
	}
	if from == to {
		return true
	}
	_, ok := Distances(g, from)[to]
	return ok
}

// FloodFill returns every open tile 4-connected to start.
func FloodFill(g *Grid, start Point) mapset.Set[Point] {
	seen := mapset.New[Point]()
	if g.IsSolid(start.X, start.Y) {
		return seen
	}
	q := queue.New[Point]()
	q.Enqueue(start)
	seen.Put(start)
	for !q.Empty() {
		p := q.Dequeue()
		for _, d := range cardinalSteps {
			n := p.Add(d.X, d.Y)
			if seen.Has(n) || g.IsSolid(n.X, n.Y) {
				continue
			}
			seen.Put(n)
			q.Enqueue(n)
		}
	}
	return seen
}
