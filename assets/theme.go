package assets

// Biome names. Rooms take the biome of the vertical band containing their
// center; the safe room always reports BiomeSafeZone.
const (
	BiomeFactory    = "Factory"
	BiomeServerCore = "Server Core"
	BiomeJunkyard   = "Junkyard"
	BiomeSafeZone   = "Safe Zone"
)

// DefaultBiomes is the band order used when no biome list is configured.
var DefaultBiomes = []string{BiomeFactory, BiomeServerCore, BiomeJunkyard}

// Enemy type names.
const (
	EnemyScoutDrone  = "Scout Drone"
	EnemyHeavySentry = "Heavy Sentry"
	EnemySniperBot   = "Sniper Bot"
)

// DefaultEnemy spawns in rooms whose biome has no table.
const DefaultEnemy = EnemyScoutDrone

// WeightedEntry is one row of a probability table. Weights within a table
// sum to 1.
type WeightedEntry struct {
	Type   string
	Weight float64
}

// EnemyTables maps each biome to the enemy types that spawn there.
// Rows are tested in order against a single uniform draw.
var EnemyTables = map[string][]WeightedEntry{
	BiomeFactory: {
		{Type: EnemyScoutDrone, Weight: 0.7},
		{Type: EnemyHeavySentry, Weight: 0.3},
	},
	BiomeServerCore: {
		{Type: EnemySniperBot, Weight: 0.6},
		{Type: EnemyScoutDrone, Weight: 0.4},
	},
	BiomeJunkyard: {
		{Type: EnemyHeavySentry, Weight: 0.8},
		{Type: EnemySniperBot, Weight: 0.2},
	},
}

// Glyphs used by the room report.
const (
	GlyphSafeRoom = "🛡️"
	GlyphBoss     = "👑"
	GlyphEnemy    = "🤖"
	GlyphLoot     = "📦"
)

// BiomeGlyphs gives each biome a marker for the room report.
var BiomeGlyphs = map[string]string{
	BiomeFactory:    "🏭",
	BiomeServerCore: "💾",
	BiomeJunkyard:   "🗑️",
	BiomeSafeZone:   "🟢",
}
