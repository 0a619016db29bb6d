package world

// Room is a rectangular room placed around a centre point.
type Room struct {
	ID            int // Index in placement order
	X, Y          int // Centre position
	Width, Height int // Sampled edge lengths; the rectangle is one tile shorter
}

// Rect is a half-open rectangle [StartX, EndX) x [StartY, EndY).
type Rect struct {
	StartX, StartY int
	EndX, EndY     int
}

// span returns the half-open interval a centred edge of length n covers.
// Even lengths sit one tile toward the lower index.
func span(c, n int) (start, end int) {
	if n%2 == 0 {
		return c - (n/2 - 1), c + n/2
	}
	return c - (n-1)/2, c + (n-1)/2
}

// Bounds returns the room's rectangle.
func (r Room) Bounds() Rect {
	sx, ex := span(r.X, r.Width)
	sy, ey := span(r.Y, r.Height)
	return Rect{StartX: sx, StartY: sy, EndX: ex, EndY: ey}
}

// Center returns the centre coordinates of the room.
func (r Room) Center() Point {
	return Point{X: r.X, Y: r.Y}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return r.Bounds().Contains(x, y)
}

// Intersects returns true if the padded rectangles of the two rooms overlap.
func (r Room) Intersects(other Room) bool {
	return r.Bounds().Padded().Intersects(other.Bounds().Padded())
}

// Width returns EndX - StartX.
func (r Rect) Width() int { return r.EndX - r.StartX }

// Height returns EndY - StartY.
func (r Rect) Height() int { return r.EndY - r.StartY }

// Contains returns true if (x, y) is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.StartX && x < r.EndX && y >= r.StartY && y < r.EndY
}

// Padded returns the rectangle grown by one tile on each side.
func (r Rect) Padded() Rect {
	return Rect{StartX: r.StartX - 1, StartY: r.StartY - 1, EndX: r.EndX + 1, EndY: r.EndY + 1}
}

// Intersects returns true if the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.StartX < other.EndX &&
		r.EndX > other.StartX &&
		r.StartY < other.EndY &&
		r.EndY > other.StartY
}
