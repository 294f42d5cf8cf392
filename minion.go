package main

import "math"

const (
	MinionRadius     = 14.0
	MinionMaxHP      = 40.0
	MinionSpeed      = 200.0
	MinionAccel      = 500.0
	MinionFriction   = 0.94
	MinionContactDmg = 8.0
	MinionHitRearm   = 0.8 // seconds between contact hits from one minion
	MinionRepelDist  = 36.0
	MinionRepelForce = 140.0
)

// Minion is an add spawned by boss phase behavior. Minions chase the hero
// and deal contact damage; the boss controller's responsibility ends at
// spawning them into the world's enemy collection.
type Minion struct {
	ID     string
	X, Y   float64
	VX, VY float64
	Health    float64
	MaxHealth float64
	Radius    float64
	LastHit   float64 // absolute GameTime of the last contact hit
	Alive     bool
}

// NewMinion spawns a minion at the given position
func NewMinion(x, y float64) *Minion {
	return &Minion{
		ID:        GenerateID(4),
		X:         x,
		Y:         y,
		Health:    MinionMaxHP,
		MaxHealth: MinionMaxHP,
		Radius:    MinionRadius,
		Alive:     true,
	}
}

// Update steers the minion toward the player and resolves contact damage.
// Minions nudge each other apart so packs don't collapse into one point.
func (m *Minion) Update(w *World, dt float64) {
	if !m.Alive {
		return
	}

	p := w.Player
	nx, ny := Normalize(p.X-m.X, p.Y-m.Y)
	m.VX += nx * MinionAccel * dt
	m.VY += ny * MinionAccel * dt

	for _, other := range w.Minions {
		if other == m || !other.Alive {
			continue
		}
		d2 := DistanceSq(m.X, m.Y, other.X, other.Y)
		if d2 > 0 && d2 < MinionRepelDist*MinionRepelDist {
			rx, ry := Normalize(m.X-other.X, m.Y-other.Y)
			m.VX += rx * MinionRepelForce * dt
			m.VY += ry * MinionRepelForce * dt
		}
	}

	m.VX *= MinionFriction
	m.VY *= MinionFriction
	speed := math.Sqrt(m.VX*m.VX + m.VY*m.VY)
	if speed > MinionSpeed {
		scale := MinionSpeed / speed
		m.VX *= scale
		m.VY *= scale
	}

	m.X, m.Y = MoveActor(w, m.X, m.Y, m.VX, m.VY, m.Radius, dt)

	if CheckCollision(m.X, m.Y, m.Radius, p.X, p.Y, p.Radius) &&
		w.GameTime-m.LastHit >= MinionHitRearm && w.PlayerVulnerable() {
		ApplyPlayerDamage(w, MinionContactDmg, m.X, m.Y, "minion")
		m.LastHit = w.GameTime
	}
}

// TakeDamage reduces health and returns true if the minion died
func (m *Minion) TakeDamage(dmg float64) bool {
	if !m.Alive {
		return false
	}
	m.Health -= dmg
	if m.Health <= 0 {
		m.Health = 0
		m.Alive = false
		return true
	}
	return false
}
