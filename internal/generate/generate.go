package generate

import "robo-rebellion/internal/gamemap"

// Room is one placed rectangle. Index is its position in Dungeon.Rooms and
// is the id used by Connections and placements.
type Room struct {
	gamemap.Rect
	Index       int
	Center      gamemap.Point
	Connections []int
	Biome       string
	IsSafeRoom  bool
	IsBossRoom  bool
}

// Corridor is an L-shaped path: start, elbow, end.
type Corridor struct {
	Points [3]gamemap.Point
	Width  int
}

// Placement is a spawn record for an enemy, loot item or boss.
type Placement struct {
	X, Y      int
	Type      string
	RoomIndex int
}

// Dungeon is the result of one generation run. Nothing mutates it after
// Generate returns.
type Dungeon struct {
	Width, Height int
	Seed          int64
	Grid          *gamemap.Grid
	Rooms         []Room
	Corridors     []Corridor
	SafeRoom      int // index into Rooms, -1 when there are no rooms
	Enemies       []Placement
	Loot          []Placement
	Boss          *Placement

	// Requested is the configured room count; compare with len(Rooms).
	Requested int
	// LoopAttempts and LoopsAdded report the extra-corridor pass.
	LoopAttempts int
	LoopsAdded   int
}

// generator owns the mutable state of one run.
type generator struct {
	cfg          Config
	grid         *gamemap.Grid
	rooms        []Room
	corridors    []Corridor
	safeRoom     int
	loopAttempts int
	loopsAdded   int
}

// Generate builds a dungeon: rooms, corridors, biomes, the safe room, then
// enemies, loot and the boss. It never fails; degenerate configurations
// produce fewer (possibly zero) rooms.
func Generate(cfg *Config) *Dungeon {
	g := &generator{cfg: cfg.normalized(), safeRoom: -1}
	g.grid = gamemap.New(g.cfg.Width, g.cfg.Height)

	g.placeRooms()
	g.connectRooms()
	g.assignBiomes()
	g.selectSafeRoom()

	d := &Dungeon{
		Width:        g.cfg.Width,
		Height:       g.cfg.Height,
		Seed:         g.cfg.Seed,
		Grid:         g.grid,
		Rooms:        g.rooms,
		Corridors:    g.corridors,
		SafeRoom:     g.safeRoom,
		Requested:    g.cfg.RoomCount,
		LoopAttempts: g.loopAttempts,
		LoopsAdded:   g.loopsAdded,
	}
	d.Enemies = PlaceEnemies(d, g.cfg.EnemyTables, g.cfg.Rand)
	d.Loot = PlaceLoot(d, g.cfg.LootTypes, g.cfg.Rand)
	d.Boss = PlaceBoss(d, g.cfg.BossTypes, g.cfg.Rand)
	return d
}

// Safe returns the safe room, or nil when there is none.
func (d *Dungeon) Safe() *Room {
	if d.SafeRoom < 0 || d.SafeRoom >= len(d.Rooms) {
		return nil
	}
	return &d.Rooms[d.SafeRoom]
}

// Shortfall is how many requested rooms could not be placed.
func (d *Dungeon) Shortfall() int {
	return d.Requested - len(d.Rooms)
}
