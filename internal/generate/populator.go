package generate

import (
	"robo-rebellion/assets"
	"robo-rebellion/internal/gamemap"
)

// PlaceEnemies fills every non-safe room with one enemy per
// assets.EnemyDensity cells of area, typed by the room's biome table.
func PlaceEnemies(d *Dungeon, tables map[string][]assets.WeightedEntry, rng Rand) []Placement {
	var enemies []Placement
	for i := range d.Rooms {
		room := &d.Rooms[i]
		if room.IsSafeRoom {
			continue
		}
		count := room.W * room.H / assets.EnemyDensity
		for j := 0; j < count; j++ {
			p := randomInRoom(room, rng)
			enemies = append(enemies, Placement{
				X:         p.X,
				Y:         p.Y,
				Type:      pickWeighted(tables[room.Biome], rng),
				RoomIndex: i,
			})
		}
	}
	return enemies
}

// PlaceLoot puts a health pack at the center of the safe room and gives
// every other room an assets.LootChance of one random item.
func PlaceLoot(d *Dungeon, lootTypes []string, rng Rand) []Placement {
	var loot []Placement
	for i := range d.Rooms {
		room := &d.Rooms[i]
		if room.IsSafeRoom {
			c := room.Center
			loot = append(loot, Placement{X: c.X, Y: c.Y, Type: assets.SafeRoomLoot, RoomIndex: i})
			continue
		}
		if rng.Float64() >= assets.LootChance || len(lootTypes) == 0 {
			continue
		}
		p := randomInRoom(room, rng)
		loot = append(loot, Placement{
			X:         p.X,
			Y:         p.Y,
			Type:      lootTypes[rng.Intn(len(lootTypes))],
			RoomIndex: i,
		})
	}
	return loot
}

// PlaceBoss marks the room furthest from the safe room as the boss room and
// puts a boss at its center. It returns nil with fewer than two rooms or no
// safe room.
func PlaceBoss(d *Dungeon, bossTypes []string, rng Rand) *Placement {
	safe := d.Safe()
	if len(d.Rooms) <= 1 || safe == nil || len(bossTypes) == 0 {
		return nil
	}

	furthest := -1
	maxDistance := -1.0
	for i := range d.Rooms {
		if i == d.SafeRoom {
			continue
		}
		if dist := centerDistance(&d.Rooms[i], safe); dist > maxDistance {
			maxDistance = dist
			furthest = i
		}
	}
	if furthest < 0 {
		return nil
	}

	room := &d.Rooms[furthest]
	room.IsBossRoom = true
	c := room.Center
	return &Placement{
		X:         c.X,
		Y:         c.Y,
		Type:      bossTypes[rng.Intn(len(bossTypes))],
		RoomIndex: furthest,
	}
}

// pickWeighted walks table with a single uniform draw. An empty table
// yields assets.DefaultEnemy without drawing.
func pickWeighted(table []assets.WeightedEntry, rng Rand) string {
	if len(table) == 0 {
		return assets.DefaultEnemy
	}
	r := rng.Float64()
	acc := 0.0
	for _, e := range table {
		acc += e.Weight
		if r < acc {
			return e.Type
		}
	}
	return table[len(table)-1].Type
}

func randomInRoom(room *Room, rng Rand) gamemap.Point {
	return gamemap.Point{X: room.X + rng.Intn(room.W), Y: room.Y + rng.Intn(room.H)}
}
