package world

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"github.com/zyedidia/generic/queue"
)

// Path algorithm names accepted by NewFinder.
const (
	AlgorithmBidirectional = "bidirectional"
	AlgorithmAstar         = "astar"
)

// Matrix is the binary walkability map corridors are routed over.
type Matrix struct {
	Size    int
	blocked []bool
}

// NewMatrix creates a size x size matrix with every cell walkable.
func NewMatrix(size int) *Matrix {
	return &Matrix{Size: size, blocked: make([]bool, size*size)}
}

// InBounds returns true if p lies inside the matrix.
func (m *Matrix) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Size && p.Y >= 0 && p.Y < m.Size
}

// Walkable returns true if p is inside the matrix and not blocked.
func (m *Matrix) Walkable(p Point) bool {
	return m.InBounds(p) && !m.blocked[p.Y*m.Size+p.X]
}

// SetWalkable opens or blocks p.
func (m *Matrix) SetWalkable(p Point, walkable bool) {
	if m.InBounds(p) {
		m.blocked[p.Y*m.Size+p.X] = !walkable
	}
}

func (m *Matrix) index(p Point) int { return p.Y*m.Size + p.X }

func (m *Matrix) point(i int) Point { return Point{X: i % m.Size, Y: i / m.Size} }

var (
	cardinalSteps = []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	diagonalSteps = []Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
)

func neighbourSteps(diagonal bool) []Point {
	if !diagonal {
		return cardinalSteps
	}
	steps := make([]Point, 0, 8)
	steps = append(steps, cardinalSteps...)
	return append(steps, diagonalSteps...)
}

// PathFinder finds a shortest path between two walkable cells. The returned
// path includes both endpoints; it is nil when no path exists.
type PathFinder interface {
	FindPath(m *Matrix, from, to Point) []Point
}

// NewFinder returns the finder registered under name.
func NewFinder(name string, diagonal bool) (PathFinder, error) {
	switch name {
	case "", AlgorithmBidirectional:
		return BidirectionalFinder{Diagonal: diagonal}, nil
	case AlgorithmAstar:
		return &AstarFinder{Diagonal: diagonal}, nil
	}
	return nil, fmt.Errorf("unknown path algorithm %q", name)
}

// BidirectionalFinder runs breadth-first search from both endpoints at once,
// one full layer at a time, and joins the two trees where they meet.
type BidirectionalFinder struct {
	Diagonal bool
}

// search is one side of a bidirectional search.
type search struct {
	dist     []int
	parent   []int
	frontier *queue.Queue[Point]
}

func newSearch(m *Matrix, start Point) *search {
	n := m.Size * m.Size
	s := &search{
		dist:     make([]int, n),
		parent:   make([]int, n),
		frontier: queue.New[Point](),
	}
	for i := range s.dist {
		s.dist[i] = -1
		s.parent[i] = -1
	}
	s.dist[m.index(start)] = 0
	s.frontier.Enqueue(start)
	return s
}

// FindPath implements PathFinder.
func (f BidirectionalFinder) FindPath(m *Matrix, from, to Point) []Point {
	if !m.Walkable(from) || !m.Walkable(to) {
		return nil
	}
	if from == to {
		return []Point{from}
	}

	steps := neighbourSteps(f.Diagonal)
	fwd := newSearch(m, from)
	bwd := newSearch(m, to)

	for !fwd.frontier.Empty() && !bwd.frontier.Empty() {
		if meet, ok := expandLayer(m, steps, fwd, bwd); ok {
			return joinPaths(m, fwd, bwd, meet)
		}
		if meet, ok := expandLayer(m, steps, bwd, fwd); ok {
			return joinPaths(m, fwd, bwd, meet)
		}
	}
	return nil
}

// expandLayer advances s by one whole BFS layer. It returns the cell with the
// lowest combined distance among those that other has already reached.
func expandLayer(m *Matrix, steps []Point, s, other *search) (int, bool) {
	next := queue.New[Point]()
	best, bestCost := -1, 0
	for !s.frontier.Empty() {
		p := s.frontier.Dequeue()
		pi := m.index(p)
		for _, d := range steps {
			q := p.Add(d.X, d.Y)
			if !m.Walkable(q) {
				continue
			}
			qi := m.index(q)
			if s.dist[qi] >= 0 {
				continue
			}
			s.dist[qi] = s.dist[pi] + 1
			s.parent[qi] = pi
			if other.dist[qi] >= 0 {
				cost := s.dist[qi] + other.dist[qi]
				if best < 0 || cost < bestCost {
					best, bestCost = qi, cost
				}
			}
			next.Enqueue(q)
		}
	}
	s.frontier = next
	return best, best >= 0
}

// joinPaths walks both parent chains out from the meeting cell.
func joinPaths(m *Matrix, fwd, bwd *search, meet int) []Point {
	var head []Point
	for i := meet; i >= 0; i = fwd.parent[i] {
		head = append(head, m.point(i))
	}
	for l, r := 0, len(head)-1; l < r; l, r = l+1, r-1 {
		head[l], head[r] = head[r], head[l]
	}
	for i := bwd.parent[meet]; i >= 0; i = bwd.parent[i] {
		head = append(head, m.point(i))
	}
	return head
}

// AstarFinder routes paths with gruid's A* implementation, using a Manhattan
// estimate for 4-way movement and Chebyshev for 8-way.
type AstarFinder struct {
	Diagonal bool

	pr *paths.PathRange
}

// FindPath implements PathFinder.
func (f *AstarFinder) FindPath(m *Matrix, from, to Point) []Point {
	if !m.Walkable(from) || !m.Walkable(to) {
		return nil
	}
	if from == to {
		return []Point{from}
	}
	rg := gruid.NewRange(0, 0, m.Size, m.Size)
	if f.pr == nil {
		f.pr = paths.NewPathRange(rg)
	} else if f.pr.Range() != rg {
		f.pr.SetRange(rg)
	}
	gp := f.pr.AstarPath(&matrixPather{m: m, diagonal: f.Diagonal}, toGruid(from), toGruid(to))
	if len(gp) == 0 {
		return nil
	}
	path := make([]Point, len(gp))
	for i, p := range gp {
		path[i] = Point{X: p.X, Y: p.Y}
	}
	return path
}

// matrixPather adapts a Matrix to gruid's Astar interface.
type matrixPather struct {
	m        *Matrix
	diagonal bool
	nbs      paths.Neighbors
}

func (mp *matrixPather) Neighbors(p gruid.Point) []gruid.Point {
	keep := func(q gruid.Point) bool {
		return mp.m.Walkable(Point{X: q.X, Y: q.Y})
	}
	if mp.diagonal {
		return mp.nbs.All(p, keep)
	}
	return mp.nbs.Cardinal(p, keep)
}

func (mp *matrixPather) Cost(p, q gruid.Point) int {
	return 1
}

func (mp *matrixPather) Estimation(p, q gruid.Point) int {
	if mp.diagonal {
		return paths.DistanceChebyshev(p, q)
	}
	return paths.DistanceManhattan(p, q)
}

func toGruid(p Point) gruid.Point {
	return gruid.Point{X: p.X, Y: p.Y}
}
