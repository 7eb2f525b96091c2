package gamemap

import "testing"

func TestInBounds(t *testing.T) {
	g := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := g.InBounds(c.x, c.y)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIsWalkable(t *testing.T) {
	g := New(5, 5)
	// all empty initially
	if g.IsWalkable(2, 2) {
		t.Error("empty cell should not be walkable")
	}
	g.Set(2, 2, CellRoom)
	g.Set(3, 2, CellCorridor)
	if !g.IsWalkable(2, 2) || !g.IsWalkable(3, 2) {
		t.Error("room and corridor cells should be walkable")
	}
	// out of bounds
	if g.IsWalkable(-1, 0) {
		t.Error("out-of-bounds should not be walkable")
	}
}

func TestRectCenter(t *testing.T) {
	cases := []struct {
		r    Rect
		want Point
	}{
		{Rect{X: 0, Y: 0, W: 5, H: 5}, Point{2, 2}},
		{Rect{X: 3, Y: 4, W: 6, H: 7}, Point{6, 7}},
		{Rect{X: 10, Y: 1, W: 1, H: 1}, Point{10, 1}},
	}
	for _, c := range cases {
		if got := c.r.Center(); got != c.want {
			t.Errorf("%+v.Center() = %v, want %v", c.r, got, c.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 5, 5}
	b := Rect{4, 4, 4, 4}
	c := Rect{5, 5, 5, 5}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c only touch corners; should not intersect")
	}
	if !b.Intersects(a) {
		t.Error("Intersects should be symmetric")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("corners should be inside")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) || r.Contains(1, 3) {
		t.Error("cells past the edge should be outside")
	}
}

func TestFillAndIsClear(t *testing.T) {
	g := New(10, 10)
	r := Rect{X: 2, Y: 2, W: 3, H: 3}
	if !g.IsClear(r) {
		t.Fatal("fresh grid should be clear")
	}
	g.Fill(r, CellRoom)
	if g.IsClear(r) {
		t.Error("filled rect should not be clear")
	}
	if got := g.Count(CellRoom); got != 9 {
		t.Errorf("Count(CellRoom) = %d; want 9", got)
	}
	if g.IsClear(Rect{X: 8, Y: 8, W: 3, H: 1}) {
		t.Error("rect leaving the grid should not be clear")
	}
}

func TestAtOutOfBounds(t *testing.T) {
	g := New(3, 3)
	if g.At(-1, 5) != CellEmpty {
		t.Error("out-of-bounds At should read as empty")
	}
}

func TestIntsAndClone(t *testing.T) {
	g := New(3, 2)
	g.Set(1, 0, CellRoom)
	g.Set(2, 1, CellCorridor)
	want := [][]int{{0, 1, 0}, {0, 0, 2}}
	got := g.Ints()
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Fatalf("Ints()[%d][%d] = %d; want %d", y, x, got[y][x], want[y][x])
			}
		}
	}
	c := g.Clone()
	c.Set(0, 0, CellCorridor)
	if g.At(0, 0) != CellEmpty {
		t.Error("mutating the clone changed the original")
	}
}
