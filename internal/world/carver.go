package world

// WallAdjacency lists the tiles just outside a room's perimeter, the only
// places a corridor may break into the room.
type WallAdjacency []Point

// CarveRooms opens every tile inside each room and records, per room, the
// outward neighbour of every perimeter tile. The result is indexed by room ID.
//
// Neighbours are listed along the top and bottom edges left to right, then
// along the left and right edges top to bottom. A tile may belong to more
// than one room's list.
func CarveRooms(g *Grid, rooms []Room) []WallAdjacency {
	walls := make([]WallAdjacency, len(rooms))
	for i, room := range rooms {
		b := room.Bounds()
		for y := b.StartY; y < b.EndY; y++ {
			for x := b.StartX; x < b.EndX; x++ {
				g.Carve(x, y)
			}
		}
		walls[i] = markWalls(g, b)
	}
	return walls
}

func markWalls(g *Grid, b Rect) WallAdjacency {
	var adj WallAdjacency
	add := func(x, y int) {
		if !g.InBounds(x, y) {
			return
		}
		g.MarkWall(x, y)
		adj = append(adj, Point{X: x, Y: y})
	}
	for x := b.StartX; x < b.EndX; x++ {
		add(x, b.StartY-1)
		add(x, b.EndY)
	}
	for y := b.StartY; y < b.EndY; y++ {
		add(b.StartX-1, y)
		add(b.EndX, y)
	}
	return adj
}
