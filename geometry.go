package main

import "math"

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Distance returns the distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSq returns the squared distance between two points
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Normalize returns the unit vector of (x, y). A zero-length vector
// normalizes to (0, 0) rather than dividing by zero.
func Normalize(x, y float64) (float64, float64) {
	length := math.Sqrt(x*x + y*y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// NormalizeAngle wraps angle to [-PI, PI]
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// WrapDegrees wraps an angle in degrees to [0, 360)
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// CheckCollision checks if two circles overlap
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	radSum := r1 + r2
	return DistanceSq(x1, y1, x2, y2) <= radSum*radSum
}

// PointSegmentDistance returns the distance from point (px,py) to the
// segment (ax,ay)-(bx,by). The projection parameter is clamped to [0,1];
// a degenerate segment (a == b) falls back to plain point distance.
func PointSegmentDistance(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return Distance(px, py, ax, ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / len2
	t = Clamp(t, 0, 1)
	return Distance(px, py, ax+t*dx, ay+t*dy)
}

// beamEndpoint returns the far end of a beam of the given length leaving
// (x, y) at angleDeg degrees.
func beamEndpoint(x, y, angleDeg, length float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return x + math.Cos(rad)*length, y + math.Sin(rad)*length
}

// Rect is an axis-aligned rectangle (X,Y is the top-left corner)
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// CenterX returns the horizontal center of the rectangle
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rectangle
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// CircleRectOverlap checks a circle against an axis-aligned rectangle using
// the standard closest-point clamp test.
func CircleRectOverlap(cx, cy, radius float64, rect Rect) bool {
	nearX := Clamp(cx, rect.X, rect.X+rect.W)
	nearY := Clamp(cy, rect.Y, rect.Y+rect.H)
	dx := cx - nearX
	dy := cy - nearY
	return dx*dx+dy*dy <= radius*radius
}
