package main

const (
	ArenaWidth   = 1600.0
	ArenaHeight  = 1200.0
	ArenaPadding = 6.0 // extra inset beyond entity radius when clamping

	maxProjectilesPerEncounter = 400
	maxMinionsPerEncounter     = 24
)

// DamageEvent is an immutable record of a hit, appended for the presentation
// layer and the post-encounter log. The simulation never reads these back.
type DamageEvent struct {
	Kind      string  // source kind, e.g. "void_zone", "beam", "minion"
	Amount    float64
	X, Y      float64
	Timestamp float64 // StartTime + GameTime at the moment of the hit
}

// World is the shared mutable state of one encounter. Exactly one instance
// exists per encounter and exactly one goroutine (the encounter loop) mutates
// it, once per tick. It is not safe for concurrent use.
type World struct {
	Player *Player
	Boss   *Boss

	Bounds    Rect
	Obstacles []Rect

	StartTime float64 // unix seconds at encounter start
	GameTime  float64 // seconds elapsed since encounter start

	Projectiles []*Projectile
	Minions     []*Minion
	Pickups     []*Pickup

	Events []DamageEvent

	IsGameOver bool
	Victory    bool
}

// NewWorld creates the world for one encounter with the standard arena
func NewWorld(player *Player, boss *Boss, startTime float64) *World {
	bounds := Rect{X: 0, Y: 0, W: ArenaWidth, H: ArenaHeight}
	return &World{
		Player:    player,
		Boss:      boss,
		Bounds:    bounds,
		Obstacles: defaultObstacles(),
		StartTime: startTime,
	}
}

// defaultObstacles returns the fixed pillar layout of the arena
func defaultObstacles() []Rect {
	return []Rect{
		{X: 340, Y: 260, W: 120, H: 120},
		{X: ArenaWidth - 460, Y: 260, W: 120, H: 120},
		{X: 340, Y: ArenaHeight - 380, W: 120, H: 120},
		{X: ArenaWidth - 460, Y: ArenaHeight - 380, W: 120, H: 120},
	}
}

// PlayerVulnerable reports whether the player can currently be damaged.
// This is the caller-side invulnerability guard: every hazard and collision
// site must check it before calling ApplyPlayerDamage. The pipeline itself
// does not re-check, so a call that skips the guard lands as real damage.
func (w *World) PlayerVulnerable() bool {
	return w.Player.InvulnUntil < w.GameTime
}

// ArenaCenter returns the center point of the arena bounds
func (w *World) ArenaCenter() (float64, float64) {
	return w.Bounds.CenterX(), w.Bounds.CenterY()
}

// AddProjectile appends a projectile to the world collection. Ownership
// transfers to the world; the spawning controller is done with it.
func (w *World) AddProjectile(p *Projectile) {
	if len(w.Projectiles) >= maxProjectilesPerEncounter {
		return
	}
	w.Projectiles = append(w.Projectiles, p)
}

// AddMinion appends a minion to the world collection
func (w *World) AddMinion(m *Minion) {
	if len(w.Minions) >= maxMinionsPerEncounter {
		return
	}
	w.Minions = append(w.Minions, m)
}
