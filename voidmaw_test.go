package main

import (
	"math"
	"testing"
)

func newVoidmawFight() (*World, *VoidmawController) {
	p := NewPlayer("p1", "Hero")
	b := NewBoss("b1", BossVoidmaw)
	w := NewWorld(p, b, 1000)
	return w, NewVoidmawController()
}

func TestVoidmawComputePhaseThresholds(t *testing.T) {
	_, c := newVoidmawFight()
	tests := []struct {
		frac float64
		want int
	}{
		{1.00, 1},
		{0.71, 1},
		{0.70, 2},
		{0.41, 2},
		{0.40, 3},
		{0.11, 3},
		{0.10, 4},
		{0.01, 4},
	}
	for _, tt := range tests {
		if got := c.ComputePhase(tt.frac); got != tt.want {
			t.Errorf("ComputePhase(%f) = %d, want %d", tt.frac, got, tt.want)
		}
	}
}

func TestVoidmawPhaseTwoSpawnsRiftsAtCenter(t *testing.T) {
	w, c := newVoidmawFight()
	dt := 1.0 / 60

	// Boss is off wandering; the rifts still anchor to the arena center
	w.Boss.X, w.Boss.Y = 200, 200
	w.Boss.Health = 0.69 * w.Boss.MaxHealth
	UpdateBoss(c, w, dt)

	var rifts []*Hazard
	for _, h := range c.st.Hazards {
		if h.Kind == HazardRift {
			rifts = append(rifts, h)
		}
	}
	if len(rifts) != VoidmawRiftCount {
		t.Fatalf("expected %d rifts, got %d", VoidmawRiftCount, len(rifts))
	}
	cx, cy := w.ArenaCenter()
	for i, h := range rifts {
		if h.X != cx || h.Y != cy {
			t.Errorf("rift %d at (%f, %f), want arena center (%f, %f)", i, h.X, h.Y, cx, cy)
		}
	}
	// Opposing arms: 180 degrees apart (after one frame of equal rotation)
	diff := WrapDegrees(rifts[1].Angle - rifts[0].Angle)
	if math.Abs(diff-180.0) > 1e-6 {
		t.Errorf("rift spacing %f, want 180", diff)
	}
}

func TestVoidmawPhaseThreeStartsCollapseAndWell(t *testing.T) {
	w, c := newVoidmawFight()
	dt := 1.0 / 60

	w.Boss.Health = 0.69 * w.Boss.MaxHealth
	UpdateBoss(c, w, dt)
	w.Boss.Health = 0.39 * w.Boss.MaxHealth
	UpdateBoss(c, w, dt)

	if c.st.Phase != 3 {
		t.Fatalf("expected phase 3, got %d", c.st.Phase)
	}
	a := c.Arena()
	if !a.Active {
		t.Error("arena collapse should activate on phase 3 entry")
	}
	if a.Radius > VoidmawArenaStart {
		t.Errorf("collapse radius %f should start at %f and only shrink", a.Radius, VoidmawArenaStart)
	}
	if a.Floor != VoidmawArenaFloor {
		t.Errorf("collapse floor %f, want %f", a.Floor, VoidmawArenaFloor)
	}

	wells := 0
	for _, h := range c.st.Hazards {
		if h.Kind == HazardWell {
			wells++
		}
	}
	if wells != 1 {
		t.Errorf("expected 1 gravity well, got %d", wells)
	}
}

func TestVoidmawCollapseShrinksOverTime(t *testing.T) {
	w, c := newVoidmawFight()
	dt := 1.0 / 60

	w.Boss.Health = 0.39 * w.Boss.MaxHealth
	UpdateBoss(c, w, dt)
	r0 := c.Arena().Radius
	w.Player.X, w.Player.Y = w.ArenaCenter()
	for i := 0; i < 60; i++ {
		w.GameTime += dt
		UpdateBoss(c, w, dt)
	}
	r1 := c.Arena().Radius
	if r1 >= r0 {
		t.Errorf("collapse radius should shrink, went %f -> %f", r0, r1)
	}
	if math.Abs((r0-r1)-VoidmawArenaRate) > 1.0 {
		t.Errorf("one second of collapse should remove about %f, removed %f", VoidmawArenaRate, r0-r1)
	}
}

func TestVoidmawDrainHealDoesNotRevertPhase(t *testing.T) {
	w, c := newVoidmawFight()
	dt := 1.0 / 60

	w.Boss.Health = 0.39 * w.Boss.MaxHealth
	UpdateBoss(c, w, dt)
	if c.st.Phase != 3 {
		t.Fatalf("expected phase 3, got %d", c.st.Phase)
	}

	// A drain heal can push the health fraction back over the threshold
	HealBoss(w, 0.5*w.Boss.MaxHealth)
	UpdateBoss(c, w, dt)
	if c.st.Phase != 3 {
		t.Errorf("phase must not revert after a heal, got %d", c.st.Phase)
	}
}

func TestVoidmawEnrageDoublesRiftSpin(t *testing.T) {
	w, c := newVoidmawFight()
	dt := 1.0 / 60

	w.Boss.Health = 0.69 * w.Boss.MaxHealth
	UpdateBoss(c, w, dt)
	w.Boss.Health = 0.05 * w.Boss.MaxHealth
	UpdateBoss(c, w, dt)

	if c.st.Phase != 4 {
		t.Fatalf("expected phase 4, got %d", c.st.Phase)
	}
	for _, h := range c.st.Hazards {
		if h.Kind == HazardRift && h.RotSpeed != VoidmawRiftRotSpeed*2 {
			t.Errorf("enraged rift spin %f, want %f", h.RotSpeed, VoidmawRiftRotSpeed*2)
		}
	}
}

func TestVoidmawDrainSiphonsHealthInRange(t *testing.T) {
	w, c := newVoidmawFight()
	w.GameTime = 10.0
	w.Boss.Health = 100
	w.Boss.X, w.Boss.Y = 800, 600
	w.Player.X, w.Player.Y = 900, 600

	c.drain(w)
	if w.Player.Health != PlayerMaxHP-VoidmawDrainDamage {
		t.Errorf("expected player health %f, got %f", PlayerMaxHP-VoidmawDrainDamage, w.Player.Health)
	}
	if w.Boss.Health != 100+VoidmawDrainHeal {
		t.Errorf("expected boss health %f, got %f", 100+VoidmawDrainHeal, w.Boss.Health)
	}
}

func TestVoidmawDrainOutOfRangeNoop(t *testing.T) {
	w, c := newVoidmawFight()
	w.GameTime = 10.0
	w.Boss.Health = 100
	w.Boss.X, w.Boss.Y = 100, 100
	w.Player.X, w.Player.Y = 1400, 1000

	c.drain(w)
	if w.Player.Health != PlayerMaxHP || w.Boss.Health != 100 {
		t.Error("drain beyond range should do nothing")
	}
}

func TestVoidmawDrainHealsEvenWhenPlayerGuarded(t *testing.T) {
	w, c := newVoidmawFight()
	w.GameTime = 1.0
	w.Player.InvulnUntil = 5.0
	w.Boss.Health = 100
	w.Boss.X, w.Boss.Y = 800, 600
	w.Player.X, w.Player.Y = 850, 600

	c.drain(w)
	if w.Player.Health != PlayerMaxHP {
		t.Errorf("guarded player should take no drain damage, got %f", w.Player.Health)
	}
	if w.Boss.Health != 100+VoidmawDrainHeal {
		t.Errorf("the heal side of the drain still lands, got %f", w.Boss.Health)
	}
}
