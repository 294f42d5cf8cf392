package main

import "math"

const (
	PlayerRadius   = 15.0
	PlayerMaxHP    = 100.0
	PlayerAccel    = 1400.0 // pixels/s²
	PlayerMaxSpeed = 320.0  // pixels/s
	PlayerFriction = 0.90   // velocity multiplier per tick
	FireCooldown   = 0.25   // seconds between shots
	PlayerTurnSpeed = 10.0  // radians/s max turn rate

	// Hit invulnerability window re-armed by discrete hazard hits
	InvulnDuration = 0.5

	DodgeCooldown = 1.5
	DodgeImpulse  = 520.0
	DodgeInvuln   = 0.35 // seconds of immunity after a dodge roll
)

// Player is the hero fighting the boss. Health is float64 because hazards
// deal fractional damage-per-second ticks.
type Player struct {
	ID       string
	Name     string
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Health    float64
	MaxHealth float64
	Radius    float64

	InvulnUntil float64 // absolute GameTime until which damage is guarded off

	// Input state, written by the client handler between ticks
	TargetX, TargetY float64 // pointer position in world coords
	Firing           bool
	Dodging          bool

	FireCD  float64
	DodgeCD float64
}

// NewPlayer creates the hero at the arena's player spawn
func NewPlayer(id, name string) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		X:         ArenaWidth / 2,
		Y:         ArenaHeight - 200,
		Health:    PlayerMaxHP,
		MaxHealth: PlayerMaxHP,
		Radius:    PlayerRadius,
	}
}

// Alive reports whether the hero still has health
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Steer advances facing, velocity and cooldowns from the current input
// state. Position integration happens separately through MoveActor so that
// obstacle and bounds resolution stay in one place.
func (p *Player) Steer(w *World, dt float64) {
	if !p.Alive() {
		return
	}

	if p.FireCD > 0 {
		p.FireCD -= dt
	}
	if p.DodgeCD > 0 {
		p.DodgeCD -= dt
	}

	dx := p.TargetX - p.X
	dy := p.TargetY - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	// Face the pointer when it is far enough to give a stable angle
	if dist > 5 {
		desired := math.Atan2(dy, dx)
		diff := NormalizeAngle(desired - p.Rotation)
		maxTurn := PlayerTurnSpeed * dt
		if diff > maxTurn {
			diff = maxTurn
		} else if diff < -maxTurn {
			diff = -maxTurn
		}
		p.Rotation += diff
	}

	// Accelerate toward the pointer, dead zone near the cursor
	const deadZone = 30.0
	if dist > deadZone {
		nx, ny := Normalize(dx, dy)
		p.VX += nx * PlayerAccel * dt
		p.VY += ny * PlayerAccel * dt
	}

	// Dodge roll: burst of speed plus a short immunity window
	if p.Dodging && p.DodgeCD <= 0 && dist > deadZone {
		nx, ny := Normalize(dx, dy)
		p.VX += nx * DodgeImpulse
		p.VY += ny * DodgeImpulse
		p.DodgeCD = DodgeCooldown
		p.InvulnUntil = w.GameTime + DodgeInvuln
	}
	p.Dodging = false

	p.VX *= PlayerFriction
	p.VY *= PlayerFriction

	speed := math.Sqrt(p.VX*p.VX + p.VY*p.VY)
	maxSpd := PlayerMaxSpeed + DodgeImpulse*0.4 // headroom for dodge bursts
	if speed > maxSpd {
		scale := maxSpd / speed
		p.VX *= scale
		p.VY *= scale
	}
}

// CanFire returns true if the hero can fire a projectile this tick
func (p *Player) CanFire() bool {
	return p.Alive() && p.Firing && p.FireCD <= 0
}
