package main

// Difficulty tiers for the boss select screen
const (
	TierNormal    = 0
	TierHard      = 1
	TierNightmare = 2
)

// CatalogEntry describes one boss on the select screen
type CatalogEntry struct {
	ID       int    `json:"id"` // BossArchetype
	Name     string `json:"name"`
	Tier     int    `json:"tier"`
	Phases   int    `json:"phases"`
	BaseXP   int    `json:"xp"`
	Color1   string `json:"color1"` // primary accent (hex)
	Color2   string `json:"color2"` // secondary accent (hex)
	Tagline  string `json:"tagline"`
	Mechanic string `json:"mechanic"` // headline mechanic for the card
}

// BossCatalog is the full boss roster
var BossCatalog = []CatalogEntry{
	{ID: int(BossSentinel), Name: "The Sentinel", Tier: TierNormal, Phases: 4, BaseXP: 120,
		Color1: "#ffcc33", Color2: "#aa7700",
		Tagline: "An ancient construct that guards the vault",
		Mechanic: "Destroy its four pylons to break the shield"},
	{ID: int(BossVoidmaw), Name: "Voidmaw", Tier: TierHard, Phases: 4, BaseXP: 180,
		Color1: "#aa44ff", Color2: "#330066",
		Tagline: "A hunger at the edge of the world",
		Mechanic: "The arena collapses — stay ahead of the void"},
}

// BossCatalogMap provides O(1) lookup by archetype id
var BossCatalogMap map[int]CatalogEntry

func init() {
	BossCatalogMap = make(map[int]CatalogEntry, len(BossCatalog))
	for _, entry := range BossCatalog {
		BossCatalogMap[entry.ID] = entry
	}
}

// EncounterXP returns the XP earned for one encounter. Defeats still pay
// out for progress: a quarter of base per phase reached past the first.
func EncounterXP(archetype BossArchetype, victory bool, maxPhase int, duration float64) int {
	entry, ok := BossCatalogMap[int(archetype)]
	if !ok {
		return 0
	}
	if !victory {
		return entry.BaseXP / 4 * (maxPhase - 1)
	}
	xp := entry.BaseXP
	// Speed bonus: full clear under three minutes
	if duration < 180 {
		xp += entry.BaseXP / 2
	}
	return xp
}
