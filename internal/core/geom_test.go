package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"negative coordinates", V(-1, -1), V(2, 3), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); !near(got, tc.expected) {
				t.Errorf("Distance() = %v, expected %v", got, tc.expected)
			}
			if got := Distance(tc.b, tc.a); !near(got, tc.expected) {
				t.Errorf("Distance() reversed = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec2
		expected float64
	}{
		{"east", V(0, 0), V(10, 0), 0},
		{"south (y down)", V(0, 0), V(0, 10), math.Pi / 2},
		{"west", V(5, 5), V(-5, 5), math.Pi},
		{"north", V(0, 0), V(0, -1), -math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AngleTo(tc.a, tc.b); !near(got, tc.expected) {
				t.Errorf("AngleTo() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFromPolar(t *testing.T) {
	v := FromPolar(700, math.Pi/2)
	if !near(v.X, 0) || !near(v.Y, 700) {
		t.Errorf("FromPolar(700, pi/2) = %v, expected (0, 700)", v)
	}

	for _, angle := range []float64{0, 0.3, 1, 2.5, -2} {
		if got := FromPolar(12, angle).Len(); !near(got, 12) {
			t.Errorf("FromPolar(12, %v).Len() = %v, expected 12", angle, got)
		}
	}
}

func TestNormalized(t *testing.T) {
	if got := V(0, 0).Normalized(); !got.IsZero() {
		t.Errorf("zero vector normalized = %v, expected zero", got)
	}
	got := V(1, 1).Normalized()
	if !near(got.Len(), 1) || !near(got.X, got.Y) {
		t.Errorf("V(1,1).Normalized() = %v, expected unit diagonal", got)
	}
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c, d Vec2
		expected   bool
	}{
		{"crossing X", V(0, 0), V(10, 10), V(0, 10), V(10, 0), true},
		{"parallel", V(0, 0), V(10, 0), V(0, 5), V(10, 5), false},
		{"collinear overlap", V(0, 0), V(10, 0), V(5, 0), V(15, 0), false},
		{"touching at endpoint", V(0, 0), V(5, 5), V(5, 5), V(10, 0), true},
		{"would cross if extended", V(0, 0), V(4, 4), V(0, 10), V(10, 0), false},
		{"T junction", V(0, 5), V(10, 5), V(5, 0), V(5, 5), true},
		{"zero-length first", V(3, 3), V(3, 3), V(0, 0), V(10, 10), false},
		{"zero-length second", V(0, 0), V(10, 10), V(4, 4), V(4, 4), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentsIntersect(tc.a, tc.b, tc.c, tc.d); got != tc.expected {
				t.Errorf("SegmentsIntersect() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxSegmentCrosses(t *testing.T) {
	box := Box{Center: V(100, 100), HalfW: 95, HalfH: 105}

	tests := []struct {
		name     string
		a, b     Vec2
		expected bool
	}{
		{"passes through", V(-50, 100), V(300, 100), true},
		{"enters from left", V(0, 100), V(100, 100), true},
		{"inside only", V(90, 90), V(110, 110), false},
		{"misses above", V(-50, -50), V(300, -50), false},
		{"diagonal through corner region", V(0, 0), V(200, 210), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := box.SegmentCrosses(tc.a, tc.b); got != tc.expected {
				t.Errorf("SegmentCrosses() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxCorners(t *testing.T) {
	box := Box{Center: V(10, 20), HalfW: 5, HalfH: 8}
	if lo := box.Min(); lo != V(5, 12) {
		t.Errorf("Min() = %v, expected (5, 12)", lo)
	}
	if hi := box.Max(); hi != V(15, 28) {
		t.Errorf("Max() = %v, expected (15, 28)", hi)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{15, 15, true},
		{10, 10, true},
		{29, 29, true},
		{30, 30, false},
		{9, 15, false},
		{15, 30, false},
	}

	for _, tc := range tests {
		if got := r.Contains(tc.x, tc.y); got != tc.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-5.5, 0, 10, 0},
		{15.5, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
