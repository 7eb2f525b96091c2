package gamemap

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Rect is an axis-aligned rectangle covering [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Center returns the floored center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// Expand returns r grown by n cells on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Grid holds the cell tags for one dungeon, indexed [y][x].
type Grid struct {
	Width, Height int
	Cells         [][]Cell
}

// New creates a Grid with every cell empty.
func New(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (x, y) is within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// RectInBounds reports whether every cell of r lies inside the grid.
func (g *Grid) RectInBounds(r Rect) bool {
	return r.X >= 0 && r.Y >= 0 && r.X+r.W <= g.Width && r.Y+r.H <= g.Height
}

// At returns the cell at (x, y). Out-of-bounds reads return CellEmpty.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return CellEmpty
	}
	return g.Cells[y][x]
}

// Set replaces the cell at (x, y). Panics if out of bounds.
func (g *Grid) Set(x, y int, c Cell) {
	g.Cells[y][x] = c
}

// Fill tags every cell of r with c. r must be in bounds.
func (g *Grid) Fill(r Rect, c Cell) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			g.Cells[y][x] = c
		}
	}
}

// IsClear reports whether every cell of r is in bounds and empty.
func (g *Grid) IsClear(r Rect) bool {
	if !g.RectInBounds(r) {
		return false
	}
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if g.Cells[y][x] != CellEmpty {
				return false
			}
		}
	}
	return true
}

// IsWalkable returns true when (x, y) is in bounds and a floor cell.
func (g *Grid) IsWalkable(x, y int) bool {
	return g.At(x, y).Walkable()
}

// Count returns how many cells carry tag c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.Cells {
		for _, v := range row {
			if v == c {
				n++
			}
		}
	}
	return n
}

// Ints copies the grid into plain integer rows, the form consumers read.
func (g *Grid) Ints() [][]int {
	out := make([][]int, g.Height)
	for y, row := range g.Cells {
		out[y] = make([]int, len(row))
		for x, v := range row {
			out[y][x] = int(v)
		}
	}
	return out
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := New(g.Width, g.Height)
	for y := range g.Cells {
		copy(c.Cells[y], g.Cells[y])
	}
	return c
}
