package main

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}
	for _, tt := range tests {
		got := Clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("Clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	d := Distance(0, 0, 3, 4)
	if d != 5 {
		t.Errorf("Distance(0,0,3,4) = %f, want 5", d)
	}
}

func TestDistanceSq(t *testing.T) {
	if d2 := DistanceSq(0, 0, 3, 4); d2 != 25 {
		t.Errorf("DistanceSq(0,0,3,4) = %f, want 25", d2)
	}
	if d2 := DistanceSq(2, 2, 2, 2); d2 != 0 {
		t.Errorf("DistanceSq of identical points = %f, want 0", d2)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	nx, ny := Normalize(0, 0)
	if nx != 0 || ny != 0 {
		t.Errorf("Normalize(0,0) = (%f, %f), want (0, 0)", nx, ny)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	nx, ny := Normalize(3, 4)
	length := math.Sqrt(nx*nx + ny*ny)
	if math.Abs(length-1) > 1e-9 {
		t.Errorf("Normalize(3,4) length = %f, want 1", length)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-30, 330},
		{725, 5},
	}
	for _, tt := range tests {
		got := WrapDegrees(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapDegrees(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestPointSegmentDistancePerpendicular(t *testing.T) {
	// Horizontal segment, point above its middle
	d := PointSegmentDistance(5, 3, 0, 0, 10, 0)
	if math.Abs(d-3) > 1e-9 {
		t.Errorf("distance = %f, want 3", d)
	}
}

func TestPointSegmentDistanceBeyondEndpoint(t *testing.T) {
	// Point past the far endpoint: projection clamps to the endpoint
	d := PointSegmentDistance(13, 4, 0, 0, 10, 0)
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("distance = %f, want 5", d)
	}
}

func TestPointSegmentDistanceDegenerate(t *testing.T) {
	// Zero-length segment falls back to point distance
	d := PointSegmentDistance(3, 4, 7, 7, 7, 7)
	want := Distance(3, 4, 7, 7)
	if math.Abs(d-want) > 1e-9 {
		t.Errorf("distance = %f, want %f", d, want)
	}
}

func TestBeamEndpoint(t *testing.T) {
	x, y := beamEndpoint(100, 200, 0, 50)
	if math.Abs(x-150) > 1e-9 || math.Abs(y-200) > 1e-9 {
		t.Errorf("beamEndpoint 0 deg = (%f, %f), want (150, 200)", x, y)
	}

	x, y = beamEndpoint(100, 200, 90, 50)
	if math.Abs(x-100) > 1e-6 || math.Abs(y-250) > 1e-6 {
		t.Errorf("beamEndpoint 90 deg = (%f, %f), want (100, 250)", x, y)
	}
}

func TestCheckCollision(t *testing.T) {
	if !CheckCollision(0, 0, 10, 15, 0, 10) {
		t.Error("circles at distance 15 with radii 10+10 should overlap")
	}
	if CheckCollision(0, 0, 5, 15, 0, 5) {
		t.Error("circles at distance 15 with radii 5+5 should not overlap")
	}
}

func TestCircleRectOverlap(t *testing.T) {
	rect := Rect{X: 10, Y: 10, W: 20, H: 20}

	if !CircleRectOverlap(5, 20, 6, rect) {
		t.Error("circle touching left edge should overlap")
	}
	if CircleRectOverlap(5, 20, 4, rect) {
		t.Error("circle short of left edge should not overlap")
	}
	if !CircleRectOverlap(20, 20, 1, rect) {
		t.Error("circle inside rect should overlap")
	}
	// Corner case: diagonal distance matters, not axis distance
	if CircleRectOverlap(5, 5, 6, rect) {
		t.Error("circle near corner at diagonal distance ~7.07 should not overlap with radius 6")
	}
	if !CircleRectOverlap(5, 5, 8, rect) {
		t.Error("circle near corner should overlap with radius 8")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !r.Contains(5, 5) {
		t.Error("center point should be contained")
	}
	if !r.Contains(0, 0) || !r.Contains(10, 10) {
		t.Error("edges should be contained")
	}
	if r.Contains(11, 5) {
		t.Error("outside point should not be contained")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	if r.CenterX() != 60 || r.CenterY() != 45 {
		t.Errorf("center = (%f, %f), want (60, 45)", r.CenterX(), r.CenterY())
	}
}
