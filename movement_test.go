package main

import (
	"math"
	"testing"
)

func TestMoveActorFreeMovement(t *testing.T) {
	w := newTestWorld()
	w.Obstacles = nil

	x, y := MoveActor(w, 800, 600, 100, -50, 15, 0.1)
	if math.Abs(x-810) > 1e-9 || math.Abs(y-595) > 1e-9 {
		t.Errorf("free move = (%f, %f), want (810, 595)", x, y)
	}
}

func TestMoveActorBoundsClamp(t *testing.T) {
	w := newTestWorld()
	w.Obstacles = nil
	inset := 15.0 + ArenaPadding

	x, y := MoveActor(w, 20, 600, -5000, 0, 15, 1)
	if x != inset {
		t.Errorf("expected x clamped to %f, got %f", inset, x)
	}
	if y != 600 {
		t.Errorf("y should be untouched, got %f", y)
	}

	x, _ = MoveActor(w, ArenaWidth-20, 600, 5000, 0, 15, 1)
	if x != ArenaWidth-inset {
		t.Errorf("expected x clamped to %f, got %f", ArenaWidth-inset, x)
	}
}

func TestMoveActorObstacleBlocksAxis(t *testing.T) {
	w := newTestWorld()
	w.Obstacles = []Rect{{X: 500, Y: 500, W: 100, H: 100}}

	// Approaching the pillar from the left, moving diagonally down-right:
	// X is blocked, Y keeps the free axis of the motion
	startX, startY := 480.0, 550.0
	x, y := MoveActor(w, startX, startY, 200, 100, 15, 0.5)
	if x != startX {
		t.Errorf("x should revert against the pillar, got %f", x)
	}
	if y <= startY {
		t.Errorf("y should keep moving, got %f", y)
	}
}

func TestMoveActorObstacleBlocksBothAxes(t *testing.T) {
	w := newTestWorld()
	w.Obstacles = []Rect{{X: 500, Y: 500, W: 100, H: 100}}

	// Moving straight into the pillar face: both components revert
	x, y := MoveActor(w, 480, 480, 100, 100, 15, 0.5)
	if x != 480 || y != 480 {
		t.Errorf("move into the corner should fully revert, got (%f, %f)", x, y)
	}
}

func TestShrinkingArenaRadiusFloor(t *testing.T) {
	w := newTestWorld()
	s := &ShrinkingArena{
		Active: true,
		CX:     800, CY: 600,
		Radius: 270,
		Floor:  260,
		Rate:   100,
	}
	w.Player.X, w.Player.Y = 800, 600

	s.Tick(w, 1.0)
	if s.Radius != 260 {
		t.Errorf("radius should stop at the floor, got %f", s.Radius)
	}
	s.Tick(w, 1.0)
	if s.Radius != 260 {
		t.Errorf("radius should stay at the floor, got %f", s.Radius)
	}
}

func TestShrinkingArenaDamagesOutside(t *testing.T) {
	w := newTestWorld()
	s := &ShrinkingArena{
		Active: true,
		CX:     800, CY: 600,
		Radius: 300,
		Floor:  100,
		Rate:   0,
		DPS:    20,
		Push:   4,
	}
	// 100 pixels outside the circle
	w.Player.X, w.Player.Y = 1200, 600

	s.Tick(w, 0.1)
	if w.Player.Health != PlayerMaxHP-2 {
		t.Errorf("expected 2 damage (20 dps * 0.1s), got health %f", w.Player.Health)
	}
	if w.Player.X >= 1200 {
		t.Error("player should be pushed back toward the center")
	}
}

func TestShrinkingArenaSafeInside(t *testing.T) {
	w := newTestWorld()
	s := &ShrinkingArena{
		Active: true,
		CX:     800, CY: 600,
		Radius: 300,
		Floor:  100,
		DPS:    20,
	}
	w.Player.X, w.Player.Y = 850, 600

	s.Tick(w, 0.1)
	if w.Player.Health != PlayerMaxHP {
		t.Errorf("player inside the circle should take no damage, got %f", w.Player.Health)
	}
}

func TestShrinkingArenaRespectsInvuln(t *testing.T) {
	w := newTestWorld()
	w.GameTime = 1.0
	w.Player.InvulnUntil = 5.0
	s := &ShrinkingArena{
		Active: true,
		CX:     800, CY: 600,
		Radius: 100,
		Floor:  50,
		DPS:    20,
		Push:   4,
	}
	w.Player.X, w.Player.Y = 1200, 600

	s.Tick(w, 0.1)
	if w.Player.Health != PlayerMaxHP {
		t.Errorf("collapse damage should respect the invulnerability guard, got %f", w.Player.Health)
	}
}

func TestShrinkingArenaInactiveNoop(t *testing.T) {
	w := newTestWorld()
	s := &ShrinkingArena{Radius: 300, Rate: 100}
	w.Player.X, w.Player.Y = 10, 10

	s.Tick(w, 1.0)
	if s.Radius != 300 {
		t.Error("inactive arena should not shrink")
	}
	if w.Player.Health != PlayerMaxHP {
		t.Error("inactive arena should not damage")
	}
}
