package main

// BossArchetype identifies which encounter a session is fighting
type BossArchetype int

const (
	BossSentinel BossArchetype = 0
	BossVoidmaw  BossArchetype = 1
)

// BossDef holds the resolved balance numbers for a boss archetype. The
// simulation consumes these as plain values; nothing here is loaded from
// config files.
type BossDef struct {
	Name       string
	MaxHP      float64
	Speed      float64 // base movement speed, pixels/s
	Radius     float64
	Thresholds [3]float64 // health fractions entering phases 2, 3, 4

	ProjDamage    float64
	ProjSpeed     float64
	ContactDamage float64 // touching the boss
}

var BossDefs = [2]BossDef{
	// Sentinel: slow bruiser, pylon-protection phase at half health
	{
		Name: "The Sentinel", MaxHP: 2400, Speed: 110, Radius: 46,
		Thresholds: [3]float64{0.75, 0.50, 0.25},
		ProjDamage: 10, ProjSpeed: 420, ContactDamage: 18,
	},
	// Voidmaw: mobile kiter, arena collapse in its final third
	{
		Name: "Voidmaw", MaxHP: 2000, Speed: 170, Radius: 38,
		Thresholds: [3]float64{0.70, 0.40, 0.10},
		ProjDamage: 8, ProjSpeed: 480, ContactDamage: 14,
	},
}

// GetBossDef returns the definition for an archetype
func GetBossDef(archetype BossArchetype) BossDef {
	if archetype < 0 || int(archetype) >= len(BossDefs) {
		return BossDefs[BossSentinel]
	}
	return BossDefs[archetype]
}

// Boss is the mutable boss entity, owned by the world and mutated in place
// by its phase controller every tick.
type Boss struct {
	ID        string
	Archetype BossArchetype
	X, Y      float64
	VX, VY    float64
	Health    float64
	MaxHealth float64
	Speed     float64
	Radius    float64

	// Invulnerable is toggled by phase-entry hooks (pylon protection)
	Invulnerable bool
}

// NewBoss spawns a boss of the given archetype at the arena's boss spawn
func NewBoss(id string, archetype BossArchetype) *Boss {
	def := GetBossDef(archetype)
	return &Boss{
		ID:        id,
		Archetype: archetype,
		X:         ArenaWidth / 2,
		Y:         260,
		Health:    def.MaxHP,
		MaxHealth: def.MaxHP,
		Speed:     def.Speed,
		Radius:    def.Radius,
	}
}

// HealthFraction returns remaining health in [0, 1]
func (b *Boss) HealthFraction() float64 {
	if b.MaxHealth <= 0 {
		return 0
	}
	return b.Health / b.MaxHealth
}

// Alive reports whether the boss still has health
func (b *Boss) Alive() bool {
	return b.Health > 0
}
