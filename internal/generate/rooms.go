package generate

import "robo-rebellion/internal/gamemap"

const (
	// maxPlacementAttempts is how many positions are tried per room before
	// the room is dropped.
	maxPlacementAttempts = 100
	// roomBuffer is the margin a candidate must keep inside the grid. Only
	// the unexpanded rectangle is checked for collisions.
	roomBuffer = 2
)

// placeRooms rejection-samples up to cfg.RoomCount rooms. Rooms that find no
// valid position are skipped without error.
func (g *generator) placeRooms() {
	cfg := &g.cfg
	for i := 0; i < cfg.RoomCount; i++ {
		w := cfg.RoomSizeMin + cfg.Rand.Intn(cfg.RoomSizeMax-cfg.RoomSizeMin+1)
		h := cfg.RoomSizeMin + cfg.Rand.Intn(cfg.RoomSizeMax-cfg.RoomSizeMin+1)

		// Positions start at 1 and leave room for the far edge.
		spanX := cfg.Width - w - 2
		spanY := cfg.Height - h - 2
		if spanX <= 0 || spanY <= 0 {
			continue
		}

		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			r := gamemap.Rect{
				X: 1 + cfg.Rand.Intn(spanX),
				Y: 1 + cfg.Rand.Intn(spanY),
				W: w,
				H: h,
			}
			if !g.validRoomPosition(r) {
				continue
			}
			g.grid.Fill(r, gamemap.CellRoom)
			g.rooms = append(g.rooms, Room{
				Index:  len(g.rooms),
				Rect:   r,
				Center: r.Center(),
			})
			break
		}
	}
}

// validRoomPosition accepts r when its buffered rectangle fits the grid and
// r itself covers only empty cells.
func (g *generator) validRoomPosition(r gamemap.Rect) bool {
	if !g.grid.RectInBounds(r.Expand(roomBuffer)) {
		return false
	}
	return g.grid.IsClear(r)
}
