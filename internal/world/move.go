package world

// Move resolves one step of an actor at pos in direction dir.
//
// Each direction has its own bounds guard on the moving axis:
//
//	up:    0 < y < size
//	down: -1 < y < size-1
//	left:  0 < x < size
//	right: -1 < x < size-1
//
// The step is taken only if the guard passes and the destination tile is
// neither solid nor holding a monster; otherwise pos is returned unchanged.
// Either way the neighbourhood of the resulting position is revealed with the
// given radius. The bool reports whether the actor moved.
func Move(g *Grid, pos Point, dir Direction, radius int) (Point, bool) {
	next, moved := step(g, pos, dir)
	Reveal(g, next, radius)
	return next, moved
}

func step(g *Grid, pos Point, dir Direction) (Point, bool) {
	size := g.Size
	var ok bool
	switch dir {
	case Up:
		ok = 0 < pos.Y && pos.Y < size
	case Down:
		ok = -1 < pos.Y && pos.Y < size-1
	case Left:
		ok = 0 < pos.X && pos.X < size
	case Right:
		ok = -1 < pos.X && pos.X < size-1
	}
	if !ok {
		return pos, false
	}

	dx, dy := dir.Delta()
	target := pos.Add(dx, dy)
	t := g.At(target)
	if t == nil || t.Blocked() {
		return pos, false
	}
	return target, true
}
