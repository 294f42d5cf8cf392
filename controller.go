package main

import "math"

// ControllerState is the mutable bookkeeping one phase controller keeps for
// one boss across an encounter: the current phase, interval-attack trigger
// times, and the hazards the controller owns. One instance per active boss,
// owned exclusively by the controller for the encounter's lifetime.
type ControllerState struct {
	Phase       int
	LastTrigger map[string]float64
	Hazards     []*Hazard
}

// NewControllerState returns fresh state starting in phase 1
func NewControllerState() *ControllerState {
	return &ControllerState{
		Phase:       1,
		LastTrigger: make(map[string]float64),
	}
}

// TriggerReady gates an interval attack against absolute world time. On
// trigger the timestamp is set to the current GameTime (never reset to
// zero), so periodicity stays stable regardless of frame rate.
func (s *ControllerState) TriggerReady(w *World, name string, interval float64) bool {
	if w.GameTime-s.LastTrigger[name] >= interval {
		s.LastTrigger[name] = w.GameTime
		return true
	}
	return false
}

// PhaseController is the behavior of one boss archetype. Implementations
// hold their ControllerState and express per-phase movement intent and
// attack triggers; the generic driver below owns the frame ordering.
type PhaseController interface {
	State() *ControllerState

	// ComputePhase maps a health fraction to the deepest phase whose
	// threshold is satisfied. Implementations may refuse to advance past a
	// gated phase (pylon protection) regardless of health.
	ComputePhase(healthFrac float64) int

	// OnPhaseEnter runs exactly once when the machine first enters a phase
	OnPhaseEnter(phase int, w *World)

	// UpdatePhase runs the current phase's behavior: movement intent and
	// interval-gated attack triggers
	UpdatePhase(w *World, dt float64)
}

// NewBossController builds the controller for an archetype. Called once at
// encounter start; the returned controller owns its state until the
// encounter ends.
func NewBossController(archetype BossArchetype) PhaseController {
	switch archetype {
	case BossVoidmaw:
		return NewVoidmawController()
	default:
		return NewSentinelController()
	}
}

// UpdateBoss advances one boss by one frame in the fixed order: phase
// recompute, one-shot phase entry, phase behavior, hazard lifecycle pass,
// then movement integration. Phase numbers only move forward — a health
// fraction that climbs back above a crossed threshold (heals) never drops
// the phase.
func UpdateBoss(c PhaseController, w *World, dt float64) {
	st := c.State()
	b := w.Boss

	next := c.ComputePhase(b.HealthFraction())
	if next > st.Phase {
		st.Phase = next
		c.OnPhaseEnter(next, w)
	}

	c.UpdatePhase(w, dt)

	st.Hazards = TickHazards(st.Hazards, w, dt)

	b.X, b.Y = MoveActor(w, b.X, b.Y, b.VX, b.VY, b.Radius, dt)
}

// --- movement intents shared by the concrete controllers ---

// steerChase points the boss's velocity straight at a target
func steerChase(b *Boss, tx, ty, speed float64) {
	nx, ny := Normalize(tx-b.X, ty-b.Y)
	b.VX = nx * speed
	b.VY = ny * speed
}

// steerKite keeps the boss near a preferred distance from the player,
// backing off when crowded and closing when the player runs
func steerKite(b *Boss, w *World, preferred, speed float64) {
	p := w.Player
	dist := Distance(b.X, b.Y, p.X, p.Y)
	nx, ny := Normalize(p.X-b.X, p.Y-b.Y)
	// radial: positive approaches, negative retreats
	radial := Clamp((dist-preferred)/(preferred*0.5), -1, 1)
	// drift sideways so the boss orbits instead of jittering in place
	tangent := 0.4 * (1 - math.Abs(radial))
	b.VX = (nx*radial - ny*tangent) * speed
	b.VY = (ny*radial + nx*tangent) * speed
}

// steerHold parks the boss in place
func steerHold(b *Boss) {
	b.VX = 0
	b.VY = 0
}

// ControllerSnapshot is the immutable render-data projection of controller
// internals: the only sanctioned way the presentation layer observes phase
// and hazard state. Built fresh from current values on every call, so
// repeated calls without an intervening update are identical.
type ControllerSnapshot struct {
	Phase   int           `json:"ph" msgpack:"ph"`
	BossX   float64       `json:"bx" msgpack:"bx"`
	BossY   float64       `json:"by" msgpack:"by"`
	Hazards []HazardState `json:"hz" msgpack:"hz"`
}

// BuildControllerSnapshot projects controller state for rendering
func BuildControllerSnapshot(s *ControllerState, b *Boss) ControllerSnapshot {
	snap := ControllerSnapshot{
		Phase: s.Phase,
		BossX: round1(b.X),
		BossY: round1(b.Y),
	}
	if len(s.Hazards) > 0 {
		snap.Hazards = make([]HazardState, 0, len(s.Hazards))
		for _, h := range s.Hazards {
			snap.Hazards = append(snap.Hazards, h.ToState())
		}
	}
	return snap
}
