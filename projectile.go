package main

import "math"

const (
	ProjectileRadius   = 5.0
	ProjectileLifetime = 3.0
	ProjectileOffset   = 24.0 // spawn distance from the shooter's center

	PlayerProjSpeed  = 700.0
	PlayerProjDamage = 12.0

	HomingSpeed    = 300.0
	HomingDamage   = 9.0
	HomingLifetime = 5.0
	HomingTurnRate = 3.5 // radians/s
)

// Projectile is a world-owned bullet. Controllers and pylons append them to
// the world's collection and have no further responsibility for them.
type Projectile struct {
	ID       string
	OwnerID  string
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Life     float64
	Damage   float64
	Hostile  bool // true when it hurts the player, false when it hurts the boss
	Homing   bool
	Alive    bool
}

// NewPlayerProjectile fires a bullet from the hero toward their facing
func NewPlayerProjectile(p *Player) *Projectile {
	return &Projectile{
		ID:       GenerateID(3),
		OwnerID:  p.ID,
		X:        p.X + math.Cos(p.Rotation)*ProjectileOffset,
		Y:        p.Y + math.Sin(p.Rotation)*ProjectileOffset,
		VX:       math.Cos(p.Rotation) * PlayerProjSpeed,
		VY:       math.Sin(p.Rotation) * PlayerProjSpeed,
		Rotation: p.Rotation,
		Life:     ProjectileLifetime,
		Damage:   PlayerProjDamage,
		Alive:    true,
	}
}

// NewBossProjectile fires a straight bullet from the boss at the given angle
func NewBossProjectile(b *Boss, angle float64, w *World) *Projectile {
	def := GetBossDef(b.Archetype)
	return &Projectile{
		ID:       GenerateID(3),
		OwnerID:  b.ID,
		X:        b.X + math.Cos(angle)*(b.Radius+ProjectileOffset),
		Y:        b.Y + math.Sin(angle)*(b.Radius+ProjectileOffset),
		VX:       math.Cos(angle) * def.ProjSpeed,
		VY:       math.Sin(angle) * def.ProjSpeed,
		Rotation: angle,
		Life:     ProjectileLifetime,
		Damage:   def.ProjDamage,
		Hostile:  true,
		Alive:    true,
	}
}

// NewHomingProjectile fires a player-seeking missile, aimed at the player's
// current position on spawn
func NewHomingProjectile(x, y float64, ownerID string, w *World) *Projectile {
	angle := math.Atan2(w.Player.Y-y, w.Player.X-x)
	return &Projectile{
		ID:       GenerateID(3),
		OwnerID:  ownerID,
		X:        x,
		Y:        y,
		VX:       math.Cos(angle) * HomingSpeed,
		VY:       math.Sin(angle) * HomingSpeed,
		Rotation: angle,
		Life:     HomingLifetime,
		Damage:   HomingDamage,
		Hostile:  true,
		Homing:   true,
		Alive:    true,
	}
}

// Update moves the projectile one tick. Homing shots steer toward the
// player at a capped turn rate; everything flies straight otherwise.
// Projectiles die on lifetime expiry or on leaving the arena.
func (p *Projectile) Update(w *World, dt float64) {
	if !p.Alive {
		return
	}
	p.Life -= dt
	if p.Life <= 0 {
		p.Alive = false
		return
	}

	if p.Homing {
		desired := math.Atan2(w.Player.Y-p.Y, w.Player.X-p.X)
		diff := NormalizeAngle(desired - p.Rotation)
		maxTurn := HomingTurnRate * dt
		if diff > maxTurn {
			diff = maxTurn
		} else if diff < -maxTurn {
			diff = -maxTurn
		}
		p.Rotation += diff
		p.VX = math.Cos(p.Rotation) * HomingSpeed
		p.VY = math.Sin(p.Rotation) * HomingSpeed
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt

	margin := ProjectileRadius * 2
	if p.X < w.Bounds.X-margin || p.X > w.Bounds.X+w.Bounds.W+margin ||
		p.Y < w.Bounds.Y-margin || p.Y > w.Bounds.Y+w.Bounds.H+margin {
		p.Alive = false
	}
}
