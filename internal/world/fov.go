package world

// DefaultVisibilityRadius is the lit radius around the player.
const DefaultVisibilityRadius = 3

// Reveal marks the tiles around pos as seen and returns how many were unseen
// before.
//
// The footprint is the (2r+1)-square centred on pos with each row narrowed by
// its distance from pos: a row dy rows away loses |dy| columns on each side.
// The result is then clipped to the grid, so a footprint near an edge is cut
// rather than reshaped. Tiles are never un-seen.
func Reveal(g *Grid, pos Point, radius int) int {
	if radius < 0 || !g.InBounds(pos.X, pos.Y) {
		return 0
	}

	revealed := 0
	for dy := -radius; dy <= radius; dy++ {
		y := pos.Y + dy
		if y < 0 || y >= g.Size {
			continue
		}
		reach := radius - abs(dy)
		startX, endX := max(pos.X-reach, 0), min(pos.X+reach+1, g.Size)
		for x := startX; x < endX; x++ {
			if g.Reveal(x, y) {
				revealed++
			}
		}
	}
	return revealed
}
