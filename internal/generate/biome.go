package generate

import "robo-rebellion/assets"

// assignBiomes splits the width into one equal band per biome and gives each
// room the biome of the band holding its center.
func (g *generator) assignBiomes() {
	biomes := g.cfg.Biomes
	if len(biomes) == 0 {
		return
	}
	regionWidth := max(ceilDiv(g.cfg.Width, len(biomes)), 1)
	for i := range g.rooms {
		room := &g.rooms[i]
		region := min(room.Center.X/regionWidth, len(biomes)-1)
		room.Biome = biomes[region]
	}
}

// selectSafeRoom marks the room with the fewest connections as the spawn
// room. The earliest room wins ties.
func (g *generator) selectSafeRoom() {
	if len(g.rooms) == 0 {
		return
	}
	best := 0
	for i := 1; i < len(g.rooms); i++ {
		if len(g.rooms[i].Connections) < len(g.rooms[best].Connections) {
			best = i
		}
	}
	room := &g.rooms[best]
	room.IsSafeRoom = true
	room.Biome = assets.BiomeSafeZone
	g.safeRoom = best
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
