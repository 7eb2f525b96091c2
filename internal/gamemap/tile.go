package gamemap

// Cell identifies what occupies one grid cell. The numeric values are part
// of the wire format: consumers read the grid as plain integers.
type Cell uint8

const (
	CellEmpty    Cell = iota // 0: solid rock
	CellRoom                 // 1: room floor
	CellCorridor             // 2: corridor floor
)

// Walkable reports whether the cell is any kind of floor.
func (c Cell) Walkable() bool {
	return c == CellRoom || c == CellCorridor
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellRoom:
		return "room"
	case CellCorridor:
		return "corridor"
	}
	return "unknown"
}
