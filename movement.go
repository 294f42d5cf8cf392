package main

// MoveActor integrates one entity's position by its velocity, resolving
// arena obstacles per axis and clamping to the arena bounds.
//
// The X axis is resolved first: if the X-advanced position overlaps any
// obstacle, only the X move is reverted. Y is then tested against the
// already-resolved X, so an entity sliding along a pillar keeps the free
// axis of its motion.
func MoveActor(w *World, x, y, vx, vy, radius, dt float64) (float64, float64) {
	nx := x + vx*dt
	ny := y + vy*dt

	if blockedByObstacle(w, nx, y, radius) {
		nx = x
	}
	if blockedByObstacle(w, nx, ny, radius) {
		ny = y
	}

	inset := radius + ArenaPadding
	nx = Clamp(nx, w.Bounds.X+inset, w.Bounds.X+w.Bounds.W-inset)
	ny = Clamp(ny, w.Bounds.Y+inset, w.Bounds.Y+w.Bounds.H-inset)
	return nx, ny
}

func blockedByObstacle(w *World, x, y, radius float64) bool {
	for _, obs := range w.Obstacles {
		if CircleRectOverlap(x, y, radius, obs) {
			return true
		}
	}
	return false
}

// ShrinkingArena is the collapsing safe-circle variant of containment. The
// radius decays at a constant rate down to a floor; a player outside the
// circle takes continuous damage and is pushed back in proportionally to
// how far they overshot.
type ShrinkingArena struct {
	Active bool
	CX, CY float64
	Radius float64
	Floor  float64
	Rate   float64 // radius shrink in pixels/s
	DPS    float64
	Push   float64 // inward push per unit of overshoot, per second
}

// Tick shrinks the circle and punishes players caught outside it. Damage
// goes through the standard pipeline, gated by the invulnerability guard
// like any hazard.
func (s *ShrinkingArena) Tick(w *World, dt float64) {
	if !s.Active {
		return
	}
	s.Radius -= s.Rate * dt
	if s.Radius < s.Floor {
		s.Radius = s.Floor
	}

	p := w.Player
	dist := Distance(p.X, p.Y, s.CX, s.CY)
	if dist <= s.Radius {
		return
	}

	overshoot := dist - s.Radius
	nx, ny := Normalize(s.CX-p.X, s.CY-p.Y)
	p.X += nx * overshoot * s.Push * dt
	p.Y += ny * overshoot * s.Push * dt

	if w.PlayerVulnerable() {
		ApplyPlayerDamage(w, s.DPS*dt, p.X, p.Y, "collapse")
	}
}
