package generate

import (
	"github.com/zyedidia/generic/mapset"

	"robo-rebellion/internal/gamemap"
)

// PlayerStart returns the spawn point: the safe room's center, falling back
// to the first room. ok is false for an empty dungeon.
func (d *Dungeon) PlayerStart() (p gamemap.Point, ok bool) {
	if room := d.Safe(); room != nil {
		return room.Center, true
	}
	if len(d.Rooms) > 0 {
		return d.Rooms[0].Center, true
	}
	return gamemap.Point{}, false
}

// RoomAt returns the index of the room containing (x, y), or -1.
func (d *Dungeon) RoomAt(x, y int) int {
	for i := range d.Rooms {
		if d.Rooms[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// EnemiesInRoom returns the enemies spawned in room i.
func (d *Dungeon) EnemiesInRoom(i int) []Placement {
	return inRoom(d.Enemies, i)
}

// LootInRoom returns the loot placed in room i.
func (d *Dungeon) LootInRoom(i int) []Placement {
	return inRoom(d.Loot, i)
}

func inRoom(ps []Placement, i int) []Placement {
	var out []Placement
	for _, p := range ps {
		if p.RoomIndex == i {
			out = append(out, p)
		}
	}
	return out
}

// Reachable collects every room reachable from room from by following
// corridor connections, including from itself.
func (d *Dungeon) Reachable(from int) mapset.Set[int] {
	visited := mapset.New[int]()
	if from < 0 || from >= len(d.Rooms) {
		return visited
	}
	queue := []int{from}
	visited.Put(from)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range d.Rooms[cur].Connections {
			if !visited.Has(next) {
				visited.Put(next)
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// Cell returns the grid tag at (x, y); out-of-bounds reads are empty.
func (d *Dungeon) Cell(x, y int) gamemap.Cell {
	return d.Grid.At(x, y)
}
