package assets

// Loot type names.
const (
	LootHealthPack    = "Health Pack"
	LootEnergyCell    = "Energy Cell"
	LootWeaponUpgrade = "Weapon Upgrade"
	LootShieldBoost   = "Shield Boost"
)

// LootTypes are drawn uniformly for every non-safe room that rolls loot.
var LootTypes = []string{LootHealthPack, LootEnergyCell, LootWeaponUpgrade, LootShieldBoost}

// SafeRoomLoot is always placed at the center of the safe room.
const SafeRoomLoot = LootHealthPack

// LootChance is the probability that a non-safe room holds one loot item.
const LootChance = 0.7

// Boss type names.
const (
	BossCoreGuardian   = "Core Guardian"
	BossNanoSwarmQueen = "Nano Swarm Queen"
)

// BossTypes are drawn uniformly for the boss room.
var BossTypes = []string{BossCoreGuardian, BossNanoSwarmQueen}

// EnemyDensity is the room area per enemy: a room spawns area/EnemyDensity
// enemies, rounded down.
const EnemyDensity = 20
