package main

import "math"

// Voidmaw balance values
const (
	VoidmawKiteDistance = 380.0
	VoidmawShotInterval = 1.8

	VoidmawRiftCount    = 2
	VoidmawRiftLength   = 700.0
	VoidmawRiftWidth    = 12.0
	VoidmawRiftRotSpeed = 25.0 // degrees/s
	VoidmawRiftDPS      = 30.0

	VoidmawMeteorInterval = 3.0
	VoidmawMeteorWarn     = 1.0
	VoidmawMeteorActive   = 1.5
	VoidmawMeteorRadius   = 80.0
	VoidmawMeteorDPS      = 40.0
	VoidmawMeteorScatter  = 160.0 // max offset from the player position

	VoidmawWellRadius   = 250.0
	VoidmawWellStrength = 50.0

	VoidmawArenaStart = 700.0
	VoidmawArenaFloor = 260.0
	VoidmawArenaRate  = 14.0 // pixels/s of radius decay
	VoidmawArenaDPS   = 20.0
	VoidmawArenaPush  = 4.0

	VoidmawHomingInterval = 4.0
	VoidmawMinionInterval = 8.0

	VoidmawTrailInterval = 1.2
	VoidmawTrailRadius   = 48.0
	VoidmawTrailRate     = 16.0
	VoidmawTrailTick     = 0.5
	VoidmawTrailPop      = 12.0
	VoidmawTrailWarn     = 0.4
	VoidmawTrailLife     = 4.0

	VoidmawDrainInterval = 4.0
	VoidmawDrainRange    = 300.0
	VoidmawDrainDamage   = 10.0
	VoidmawDrainHeal     = 30.0
)

// VoidmawController drives the arena-collapse boss. Phases by health
// fraction: 1 above 70%, 2 below 70%, 3 below 40%, 4 below 10%.
type VoidmawController struct {
	st    *ControllerState
	arena ShrinkingArena
}

// NewVoidmawController returns the Voidmaw's controller in phase 1
func NewVoidmawController() *VoidmawController {
	return &VoidmawController{st: NewControllerState()}
}

func (c *VoidmawController) State() *ControllerState { return c.st }

// Arena exposes the shrinking safe circle for snapshot projection
func (c *VoidmawController) Arena() *ShrinkingArena { return &c.arena }

// ComputePhase walks thresholds deepest-first; the Voidmaw has no gate
func (c *VoidmawController) ComputePhase(frac float64) int {
	t := GetBossDef(BossVoidmaw).Thresholds
	switch {
	case frac <= t[2]:
		return 4
	case frac <= t[1]:
		return 3
	case frac <= t[0]:
		return 2
	}
	return 1
}

// OnPhaseEnter performs one-time phase setup
func (c *VoidmawController) OnPhaseEnter(phase int, w *World) {
	cx, cy := w.ArenaCenter()
	switch phase {
	case 2:
		for i := 0; i < VoidmawRiftCount; i++ {
			c.st.Hazards = append(c.st.Hazards, &Hazard{
				ID:       GenerateID(4),
				Kind:     HazardRift,
				X:        cx,
				Y:        cy,
				Angle:    float64(i) * (360.0 / VoidmawRiftCount),
				Length:   VoidmawRiftLength,
				Width:    VoidmawRiftWidth,
				RotSpeed: VoidmawRiftRotSpeed,
				Damage:   VoidmawRiftDPS,
				Stage:    StageActive,
			})
		}
	case 3:
		c.st.Hazards = append(c.st.Hazards, &Hazard{
			ID:           GenerateID(4),
			Kind:         HazardWell,
			X:            cx,
			Y:            cy,
			PullRadius:   VoidmawWellRadius,
			PullStrength: VoidmawWellStrength,
			Stage:        StageActive,
		})
		c.arena = ShrinkingArena{
			Active: true,
			CX:     cx,
			CY:     cy,
			Radius: VoidmawArenaStart,
			Floor:  VoidmawArenaFloor,
			Rate:   VoidmawArenaRate,
			DPS:    VoidmawArenaDPS,
			Push:   VoidmawArenaPush,
		}
	case 4:
		// Enrage: the rifts spin twice as fast from here on
		for _, h := range c.st.Hazards {
			if h.Kind == HazardRift {
				h.RotSpeed *= 2
			}
		}
	}
}

// UpdatePhase dispatches the current phase's movement intent and
// interval-gated attacks
func (c *VoidmawController) UpdatePhase(w *World, dt float64) {
	b := w.Boss
	p := w.Player
	st := c.st

	// The collapse keeps shrinking across phases 3 and 4
	c.arena.Tick(w, dt)

	switch st.Phase {
	case 1:
		steerKite(b, w, VoidmawKiteDistance, b.Speed)
		if st.TriggerReady(w, "shot", VoidmawShotInterval) {
			c.fireAimedShot(w)
		}

	case 2:
		steerKite(b, w, VoidmawKiteDistance, b.Speed)
		if st.TriggerReady(w, "shot", VoidmawShotInterval) {
			c.fireAimedShot(w)
		}
		if st.TriggerReady(w, "meteor", VoidmawMeteorInterval) {
			c.spawnMeteor(w)
		}

	case 3:
		steerKite(b, w, VoidmawKiteDistance*0.8, b.Speed)
		if st.TriggerReady(w, "meteor", VoidmawMeteorInterval) {
			c.spawnMeteor(w)
		}
		if st.TriggerReady(w, "homing", VoidmawHomingInterval) {
			w.AddProjectile(NewHomingProjectile(b.X, b.Y, b.ID, w))
		}
		if st.TriggerReady(w, "minions", VoidmawMinionInterval) {
			w.AddMinion(NewMinion(b.X, b.Y-b.Radius-20))
		}

	case 4:
		steerChase(b, p.X, p.Y, b.Speed*1.2)
		if st.TriggerReady(w, "meteor", VoidmawMeteorInterval) {
			c.spawnMeteor(w)
		}
		if st.TriggerReady(w, "trail", VoidmawTrailInterval) {
			c.spawnTrailPuddle(w)
		}
		if st.TriggerReady(w, "drain", VoidmawDrainInterval) {
			c.drain(w)
		}
	}
}

func (c *VoidmawController) fireAimedShot(w *World) {
	b := w.Boss
	angle := math.Atan2(w.Player.Y-b.Y, w.Player.X-b.X)
	w.AddProjectile(NewBossProjectile(b, angle, w))
}

// spawnMeteor drops a meteor strike near the player, scattered so the
// warning circle is dodgeable
func (c *VoidmawController) spawnMeteor(w *World) {
	p := w.Player
	x := p.X + (randFloat()*2-1)*VoidmawMeteorScatter
	y := p.Y + (randFloat()*2-1)*VoidmawMeteorScatter
	c.st.Hazards = append(c.st.Hazards, &Hazard{
		ID:         GenerateID(4),
		Kind:       HazardVoidZone,
		X:          x,
		Y:          y,
		Radius:     VoidmawMeteorRadius,
		Damage:     VoidmawMeteorDPS,
		WarnTime:   VoidmawMeteorWarn,
		ActiveTime: VoidmawMeteorActive,
		Stage:      StageWarning,
	})
}

// spawnTrailPuddle leaves a puddle at the boss's position
func (c *VoidmawController) spawnTrailPuddle(w *World) {
	b := w.Boss
	c.st.Hazards = append(c.st.Hazards, &Hazard{
		ID:             GenerateID(4),
		Kind:           HazardPuddle,
		X:              b.X,
		Y:              b.Y,
		Radius:         VoidmawTrailRadius,
		Damage:         VoidmawTrailRate,
		PopDamage:      VoidmawTrailPop,
		DamageInterval: VoidmawTrailTick,
		WarnTime:       VoidmawTrailWarn,
		MaxLife:        VoidmawTrailLife,
		Stage:          StageWarning,
	})
}

// drain siphons player health into the boss when in range. The heal can
// raise the health fraction back above a crossed threshold; the phase
// machine stays where it is.
func (c *VoidmawController) drain(w *World) {
	b := w.Boss
	p := w.Player
	if Distance(b.X, b.Y, p.X, p.Y) > VoidmawDrainRange {
		return
	}
	if w.PlayerVulnerable() {
		ApplyPlayerDamage(w, VoidmawDrainDamage, p.X, p.Y, "drain")
	}
	HealBoss(w, VoidmawDrainHeal)
}
