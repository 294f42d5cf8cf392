package main

import "math"

// Sentinel balance values
const (
	SentinelVolleyInterval = 2.5
	SentinelVolleyCount    = 3
	SentinelVolleySpread   = 0.22 // radians between volley shots

	SentinelZoneInterval = 4.0
	SentinelZoneWarn     = 1.2
	SentinelZoneActive   = 3.0
	SentinelZoneRadius   = 70.0
	SentinelZoneDPS      = 25.0

	SentinelPylonCount        = 4
	SentinelPylonHP           = 120.0
	SentinelPylonRing         = 420.0 // spawn distance from arena center
	SentinelPylonRadius       = 22.0
	SentinelPylonFireInterval = 2.5

	SentinelPuddleInterval = 3.5
	SentinelPuddleWarn     = 0.8
	SentinelPuddleLife     = 6.0
	SentinelPuddleRadius   = 60.0
	SentinelPuddleRate     = 18.0 // damage/s, delivered in interval-sized ticks
	SentinelPuddleTick     = 0.5
	SentinelPuddlePop      = 15.0

	SentinelBeamCount    = 3
	SentinelBeamLength   = 800.0
	SentinelBeamWidth    = 10.0
	SentinelBeamRotSpeed = 40.0 // degrees/s
	SentinelBeamDamage   = 15.0

	SentinelMinionInterval = 6.0
	SentinelEnrageVolley   = 1.4
	SentinelEnrageZone     = 2.2
)

// SentinelController drives the pylon boss. Phases by health fraction:
// 1 above 75%, 2 below 75% (gated on pylon destruction), 3 below 50%,
// 4 below 25%.
type SentinelController struct {
	st *ControllerState

	volleyInterval float64
	zoneInterval   float64
}

// NewSentinelController returns the Sentinel's controller in phase 1
func NewSentinelController() *SentinelController {
	return &SentinelController{
		st:             NewControllerState(),
		volleyInterval: SentinelVolleyInterval,
		zoneInterval:   SentinelZoneInterval,
	}
}

func (c *SentinelController) State() *ControllerState { return c.st }

// ComputePhase walks thresholds deepest-first, then applies the pylon gate:
// the machine may not leave phase 2 while any pylon stands, no matter how
// far health has fallen.
func (c *SentinelController) ComputePhase(frac float64) int {
	t := GetBossDef(BossSentinel).Thresholds
	phase := 1
	switch {
	case frac <= t[2]:
		phase = 4
	case frac <= t[1]:
		phase = 3
	case frac <= t[0]:
		phase = 2
	}
	if c.st.Phase >= 2 && phase > 2 && CountPylonsAlive(c.st.Hazards) > 0 {
		phase = 2
	}
	return phase
}

// OnPhaseEnter performs one-time phase setup
func (c *SentinelController) OnPhaseEnter(phase int, w *World) {
	switch phase {
	case 2:
		// Pylon protection: boss cannot be hurt until all pylons fall
		w.Boss.Invulnerable = true
		cx, cy := w.ArenaCenter()
		for i := 0; i < SentinelPylonCount; i++ {
			angle := float64(i) * (360.0 / SentinelPylonCount)
			px, py := beamEndpoint(cx, cy, angle, SentinelPylonRing)
			c.st.Hazards = append(c.st.Hazards, &Hazard{
				ID:           GenerateID(4),
				Kind:         HazardPylon,
				X:            px,
				Y:            py,
				Radius:       SentinelPylonRadius,
				Health:       SentinelPylonHP,
				MaxHealth:    SentinelPylonHP,
				FireInterval: SentinelPylonFireInterval,
				LastFired:    w.GameTime,
				Stage:        StageActive,
			})
		}
	case 3:
		w.Boss.Invulnerable = false
		for i := 0; i < SentinelBeamCount; i++ {
			c.st.Hazards = append(c.st.Hazards, &Hazard{
				ID:       GenerateID(4),
				Kind:     HazardBeam,
				Angle:    float64(i) * (360.0 / SentinelBeamCount),
				Length:   SentinelBeamLength,
				Width:    SentinelBeamWidth,
				RotSpeed: SentinelBeamRotSpeed,
				Damage:   SentinelBeamDamage,
				Stage:    StageActive,
			})
		}
	case 4:
		// The machine can jump 2 -> 4 when the last pylon falls at low
		// health, skipping the phase 3 entry; drop the shield here too
		w.Boss.Invulnerable = false
		c.volleyInterval = SentinelEnrageVolley
		c.zoneInterval = SentinelEnrageZone
	}
}

// UpdatePhase dispatches the current phase's movement intent and
// interval-gated attacks
func (c *SentinelController) UpdatePhase(w *World, dt float64) {
	b := w.Boss
	p := w.Player
	st := c.st

	switch st.Phase {
	case 1:
		steerChase(b, p.X, p.Y, b.Speed)
		if st.TriggerReady(w, "volley", c.volleyInterval) {
			c.fireVolley(w)
		}
		if st.TriggerReady(w, "zone", c.zoneInterval) {
			c.spawnVoidZone(w, p.X, p.Y)
		}

	case 2:
		// Hold the arena center behind the pylon shield
		cx, cy := w.ArenaCenter()
		if Distance(b.X, b.Y, cx, cy) > 24 {
			steerChase(b, cx, cy, b.Speed)
		} else {
			steerHold(b)
		}
		if CountPylonsAlive(st.Hazards) == 0 {
			b.Invulnerable = false
		}
		if st.TriggerReady(w, "puddle", SentinelPuddleInterval) {
			c.spawnPuddle(w, p.X, p.Y)
		}

	case 3:
		steerChase(b, p.X, p.Y, b.Speed*0.8)
		if st.TriggerReady(w, "zone", c.zoneInterval) {
			c.spawnVoidZone(w, p.X, p.Y)
		}
		if st.TriggerReady(w, "puddle", SentinelPuddleInterval) {
			c.spawnPuddle(w, p.X, p.Y)
		}

	case 4:
		steerChase(b, p.X, p.Y, b.Speed*1.3)
		if st.TriggerReady(w, "volley", c.volleyInterval) {
			c.fireVolley(w)
		}
		if st.TriggerReady(w, "zone", c.zoneInterval) {
			c.spawnVoidZone(w, p.X, p.Y)
		}
		if st.TriggerReady(w, "minions", SentinelMinionInterval) {
			w.AddMinion(NewMinion(b.X-b.Radius-20, b.Y))
			w.AddMinion(NewMinion(b.X+b.Radius+20, b.Y))
		}
	}
}

// fireVolley shoots a spread of straight projectiles at the player
func (c *SentinelController) fireVolley(w *World) {
	b := w.Boss
	base := math.Atan2(w.Player.Y-b.Y, w.Player.X-b.X)
	half := float64(SentinelVolleyCount-1) / 2
	for i := 0; i < SentinelVolleyCount; i++ {
		angle := base + (float64(i)-half)*SentinelVolleySpread
		w.AddProjectile(NewBossProjectile(b, angle, w))
	}
}

func (c *SentinelController) spawnVoidZone(w *World, x, y float64) {
	c.st.Hazards = append(c.st.Hazards, &Hazard{
		ID:         GenerateID(4),
		Kind:       HazardVoidZone,
		X:          x,
		Y:          y,
		Radius:     SentinelZoneRadius,
		Damage:     SentinelZoneDPS,
		WarnTime:   SentinelZoneWarn,
		ActiveTime: SentinelZoneActive,
		Stage:      StageWarning,
	})
}

func (c *SentinelController) spawnPuddle(w *World, x, y float64) {
	c.st.Hazards = append(c.st.Hazards, &Hazard{
		ID:             GenerateID(4),
		Kind:           HazardPuddle,
		X:              x,
		Y:              y,
		Radius:         SentinelPuddleRadius,
		Damage:         SentinelPuddleRate,
		PopDamage:      SentinelPuddlePop,
		DamageInterval: SentinelPuddleTick,
		WarnTime:       SentinelPuddleWarn,
		MaxLife:        SentinelPuddleLife,
		Stage:          StageWarning,
	})
}
