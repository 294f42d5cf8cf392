package main

// HazardKind selects the tick policy for a hazard
type HazardKind int

const (
	HazardVoidZone HazardKind = iota // timed zone: warning, then damaging circle
	HazardPuddle                     // transient puddle with ticking damage and a pop burst
	HazardBeam                       // rotating beam pivoting on the boss
	HazardPylon                      // destructible turret firing homing shots
	HazardRift                       // rotating beam pivoting on the arena center, continuous damage
	HazardWell                       // gravity well pulling the player inward
)

// HazardStage is the lifecycle position of a hazard. Transitions only move
// forward: Warning -> Active -> (Popped ->) Expired.
type HazardStage int

const (
	StageWarning HazardStage = iota
	StageActive
	StagePopped
	StageExpired
)

// PuddlePopWindow is how long before expiry a puddle's pop burst fires
const PuddlePopWindow = 0.25

// Hazard is the variant record for every transient danger a boss spawns.
// Which fields are meaningful depends on Kind; the per-kind tick policies
// in hazardPolicies are the only readers.
type Hazard struct {
	ID   string
	Kind HazardKind

	X, Y     float64 // center (zone/puddle/pylon/well) or pivot (rift)
	Angle    float64 // degrees, beam/rift
	Length   float64 // beam/rift reach
	Width    float64 // beam/rift half-thickness
	Radius   float64 // zone/puddle/pylon hit circle
	RotSpeed float64 // degrees/s

	Damage         float64 // DPS (zone/rift), per-hit (beam), rate (puddle)
	PopDamage      float64 // puddle burst amount
	DamageInterval float64 // puddle tick spacing
	LastDamageTick float64 // absolute GameTime of the last puddle tick

	Elapsed    float64
	WarnTime   float64
	ActiveTime float64
	MaxLife    float64
	Stage      HazardStage

	Health    float64 // pylon
	MaxHealth float64

	FireInterval float64 // pylon shot spacing
	LastFired    float64 // absolute GameTime

	PullRadius   float64
	PullStrength float64
}

// hazardTick advances one hazard by dt and reports whether it survives the
// frame. Any damage the hazard owes is dealt before the expiry decision, so
// a final burst still lands on the removal frame.
type hazardTick func(h *Hazard, w *World, dt float64) bool

var hazardPolicies = map[HazardKind]hazardTick{
	HazardVoidZone: tickVoidZone,
	HazardPuddle:   tickPuddle,
	HazardBeam:     tickBeam,
	HazardPylon:    tickPylon,
	HazardRift:     tickRift,
	HazardWell:     tickWell,
}

// TickHazards runs the filter-map lifecycle pass over one hazard collection,
// reusing the backing array. Expired hazards are dropped deterministically
// the frame their terminal threshold is crossed.
func TickHazards(list []*Hazard, w *World, dt float64) []*Hazard {
	out := list[:0]
	for _, h := range list {
		if hazardPolicies[h.Kind](h, w, dt) {
			out = append(out, h)
		} else {
			h.Stage = StageExpired
		}
	}
	return out
}

// DamageHazardByID applies damage to a pylon-like hazard in the list.
// Unknown ids and hazards without health pools are ignored, so the external
// collision system can call it blindly.
func DamageHazardByID(list []*Hazard, id string, amount float64) bool {
	for _, h := range list {
		if h.ID != id || h.Kind != HazardPylon {
			continue
		}
		if h.Health <= 0 {
			return false
		}
		h.Health -= amount
		if h.Health < 0 {
			h.Health = 0
		}
		return true
	}
	return false
}

// CountPylonsAlive returns how many gating pylons still stand
func CountPylonsAlive(list []*Hazard) int {
	n := 0
	for _, h := range list {
		if h.Kind == HazardPylon && h.Health > 0 {
			n++
		}
	}
	return n
}

func tickVoidZone(h *Hazard, w *World, dt float64) bool {
	h.Elapsed += dt
	if h.Elapsed < h.WarnTime {
		return true
	}
	if h.Stage == StageWarning {
		h.Stage = StageActive
	}

	p := w.Player
	if Distance(p.X, p.Y, h.X, h.Y) < h.Radius && w.PlayerVulnerable() {
		ApplyPlayerDamage(w, h.Damage*dt, h.X, h.Y, "void_zone")
	}
	return h.Elapsed < h.WarnTime+h.ActiveTime
}

func tickPuddle(h *Hazard, w *World, dt float64) bool {
	h.Elapsed += dt
	p := w.Player
	inside := Distance(p.X, p.Y, h.X, h.Y) < h.Radius

	if h.Stage == StageWarning && h.Elapsed >= h.WarnTime {
		h.Stage = StageActive
		h.LastDamageTick = w.GameTime
	}

	// Discretized ticking: damage lands in damageInterval-sized packets,
	// not per frame
	if h.Stage == StageActive && inside && w.PlayerVulnerable() &&
		w.GameTime-h.LastDamageTick >= h.DamageInterval {
		ApplyPlayerDamage(w, h.Damage*h.DamageInterval, h.X, h.Y, "puddle")
		h.LastDamageTick = w.GameTime
	}

	// The pop burst fires at most once per instance, even if several frames
	// straddle the pop window
	if h.Stage != StagePopped && h.Elapsed >= h.MaxLife-PuddlePopWindow {
		if inside && w.PlayerVulnerable() {
			ApplyPlayerDamage(w, h.PopDamage, h.X, h.Y, "puddle_pop")
		}
		h.Stage = StagePopped
	}
	return h.Elapsed < h.MaxLife
}

func tickBeam(h *Hazard, w *World, dt float64) bool {
	h.Elapsed += dt
	h.Angle = WrapDegrees(h.Angle + h.RotSpeed*dt)

	b := w.Boss
	ax, ay := b.X, b.Y
	bx, by := beamEndpoint(ax, ay, h.Angle, h.Length)

	p := w.Player
	if w.PlayerVulnerable() &&
		PointSegmentDistance(p.X, p.Y, ax, ay, bx, by) < h.Width+p.Radius {
		// One discrete hit, then the invulnerability window keeps the beam
		// from re-hitting faster than InvulnDuration
		ApplyPlayerDamage(w, h.Damage, p.X, p.Y, "beam")
		p.InvulnUntil = w.GameTime + InvulnDuration
	}
	return true
}

func tickPylon(h *Hazard, w *World, dt float64) bool {
	if h.Health <= 0 {
		return false
	}
	h.Elapsed += dt
	if w.GameTime-h.LastFired >= h.FireInterval {
		h.LastFired = w.GameTime
		w.AddProjectile(NewHomingProjectile(h.X, h.Y, h.ID, w))
	}
	return true
}

func tickRift(h *Hazard, w *World, dt float64) bool {
	h.Elapsed += dt
	h.Angle = WrapDegrees(h.Angle + h.RotSpeed*dt)

	ax, ay := h.X, h.Y // anchored to the arena center, not the boss
	bx, by := beamEndpoint(ax, ay, h.Angle, h.Length)

	p := w.Player
	if w.PlayerVulnerable() &&
		PointSegmentDistance(p.X, p.Y, ax, ay, bx, by) < h.Width+p.Radius {
		ApplyPlayerDamage(w, h.Damage*dt, p.X, p.Y, "rift")
	}
	return true
}

func tickWell(h *Hazard, w *World, dt float64) bool {
	h.Elapsed += dt
	p := w.Player
	dist := Distance(p.X, p.Y, h.X, h.Y)
	if dist >= h.PullRadius || dist == 0 {
		return true
	}
	// Pull scales linearly from full strength at the center to zero at the rim
	pull := h.PullStrength * (1 - dist/h.PullRadius)
	nx, ny := Normalize(h.X-p.X, h.Y-p.Y)
	p.X += nx * pull * dt
	p.Y += ny * pull * dt
	return true
}
