// Package core provides fundamental types and utilities shared by the game
// and its frontends. It contains no external dependencies (especially no
// Bubble Tea or Ebiten) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Vec2) float64 {
	return p2.Sub(p1).Len()
}

// AngleTo returns the angle in radians of the direction from p1 to p2.
func AngleTo(p1, p2 Vec2) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// FromPolar builds a vector of the given length pointing along angle (radians).
func FromPolar(length, angle float64) Vec2 {
	return Vec2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// SegmentsIntersect reports whether segment ab crosses segment cd.
// Parallel (and therefore degenerate, zero-length) segments never intersect.
// Endpoints touching count as an intersection.
func SegmentsIntersect(a, b, c, d Vec2) bool {
	det := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
	if det == 0 {
		return false
	}
	t := ((c.X-a.X)*(d.Y-c.Y) - (c.Y-a.Y)*(d.X-c.X)) / det
	u := ((c.X-a.X)*(b.Y-a.Y) - (c.Y-a.Y)*(b.X-a.X)) / det
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// Box is an axis-aligned box in world space described by its center and
// half extents.
type Box struct {
	Center Vec2
	HalfW  float64
	HalfH  float64
}

// Min returns the top-left corner.
func (b Box) Min() Vec2 {
	return Vec2{X: b.Center.X - b.HalfW, Y: b.Center.Y - b.HalfH}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec2 {
	return Vec2{X: b.Center.X + b.HalfW, Y: b.Center.Y + b.HalfH}
}

// Edges returns the four sides of the box as segment endpoint pairs:
// top, bottom, left, right.
func (b Box) Edges() [4][2]Vec2 {
	lo, hi := b.Min(), b.Max()
	return [4][2]Vec2{
		{{X: lo.X, Y: lo.Y}, {X: hi.X, Y: lo.Y}},
		{{X: lo.X, Y: hi.Y}, {X: hi.X, Y: hi.Y}},
		{{X: lo.X, Y: lo.Y}, {X: lo.X, Y: hi.Y}},
		{{X: hi.X, Y: lo.Y}, {X: hi.X, Y: hi.Y}},
	}
}

// SegmentCrosses reports whether segment ab crosses any edge of the box.
// A segment lying entirely inside the box does not count.
func (b Box) SegmentCrosses(a, c Vec2) bool {
	for _, e := range b.Edges() {
		if SegmentsIntersect(a, c, e[0], e[1]) {
			return true
		}
	}
	return false
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
