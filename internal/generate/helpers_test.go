package generate

import (
	"testing"

	"robo-rebellion/internal/gamemap"
)

// seqRand replays scripted draws. Intn and Float64 have separate queues;
// an exhausted queue yields 0.
type seqRand struct {
	t      *testing.T
	ints   []int
	floats []float64
}

func (s *seqRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted Intn value %d out of range [0,%d)", v, n)
	}
	return v
}

func (s *seqRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// makeDungeon builds a Dungeon from the given rectangles, stamping each as
// room floor. No room is marked safe.
func makeDungeon(width, height int, rects ...gamemap.Rect) *Dungeon {
	d := &Dungeon{
		Width:    width,
		Height:   height,
		Grid:     gamemap.New(width, height),
		SafeRoom: -1,
	}
	for i, r := range rects {
		d.Grid.Fill(r, gamemap.CellRoom)
		d.Rooms = append(d.Rooms, Room{Index: i, Rect: r, Center: r.Center()})
	}
	return d
}

// markSafe flags room i as the safe room.
func markSafe(d *Dungeon, i int) {
	d.Rooms[i].IsSafeRoom = true
	d.SafeRoom = i
}
