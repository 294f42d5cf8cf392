package main

const (
	PickupRadius  = 12.0
	PickupHeal    = 20.0
	PickupTimeout = 20.0
)

// Pickup is a heal orb that restores player health on contact
type Pickup struct {
	ID    string
	X, Y  float64
	Life  float64
	Alive bool
}

// NewPickup spawns a heal orb away from the arena edges
func NewPickup() *Pickup {
	return &Pickup{
		ID:    GenerateID(4),
		X:     100 + randFloat()*(ArenaWidth-200),
		Y:     100 + randFloat()*(ArenaHeight-200),
		Life:  PickupTimeout,
		Alive: true,
	}
}

// Update ticks the orb lifetime and applies the heal on contact
func (pk *Pickup) Update(w *World, dt float64) {
	if !pk.Alive {
		return
	}
	pk.Life -= dt
	if pk.Life <= 0 {
		pk.Alive = false
		return
	}
	p := w.Player
	if p.Alive() && CheckCollision(pk.X, pk.Y, PickupRadius, p.X, p.Y, p.Radius) {
		HealPlayer(w, PickupHeal)
		pk.Alive = false
	}
}
