package generate

import (
	"math/rand"

	"robo-rebellion/assets"
)

// Rand is the random source every generation phase draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Config drives procedural generation for one dungeon.
type Config struct {
	Width, Height int
	RoomSizeMin   int // inclusive
	RoomSizeMax   int // inclusive
	RoomCount     int // target; fewer rooms are placed under contention
	CorridorWidth int // nominal; the carved width is 2*(CorridorWidth/2)+1
	Biomes        []string

	EnemyTables map[string][]assets.WeightedEntry
	LootTypes   []string
	BossTypes   []string

	// Seed seeds a fresh source when Rand is nil.
	Seed int64
	Rand Rand
}

// DefaultConfig returns the stock 50×50, ten-room layout.
func DefaultConfig() Config {
	return Config{
		Width:         50,
		Height:        50,
		RoomSizeMin:   5,
		RoomSizeMax:   15,
		RoomCount:     10,
		CorridorWidth: 2,
		Biomes:        append([]string(nil), assets.DefaultBiomes...),
		EnemyTables:   assets.EnemyTables,
		LootTypes:     assets.LootTypes,
		BossTypes:     assets.BossTypes,
	}
}

// normalized returns a copy of cfg with out-of-range values clamped and
// missing tables filled in. A nil Biomes list means the default bands; an
// empty non-nil list leaves rooms without a biome.
func (cfg Config) normalized() Config {
	cfg.Width = max(cfg.Width, 0)
	cfg.Height = max(cfg.Height, 0)
	cfg.RoomSizeMin = max(cfg.RoomSizeMin, 1)
	cfg.RoomSizeMax = max(cfg.RoomSizeMax, cfg.RoomSizeMin)
	cfg.RoomCount = max(cfg.RoomCount, 0)
	cfg.CorridorWidth = max(cfg.CorridorWidth, 0)
	if cfg.Biomes == nil {
		cfg.Biomes = append([]string(nil), assets.DefaultBiomes...)
	}
	if cfg.EnemyTables == nil {
		cfg.EnemyTables = assets.EnemyTables
	}
	if len(cfg.LootTypes) == 0 {
		cfg.LootTypes = assets.LootTypes
	}
	if len(cfg.BossTypes) == 0 {
		cfg.BossTypes = assets.BossTypes
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	return cfg
}
