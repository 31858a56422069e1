// Package geom provides 2D vector algebra and axis-aligned collision utilities.
package geom

import "math"

// Vec2 is a 2D vector. Passed and returned by value everywhere.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to the zero vector; it never divides by zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Rect is an axis-aligned box. (X, Y) is the top-left corner in world units.
type Rect struct {
	X, Y, W, H float64
}

// Pos returns the top-left corner of r.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Overlaps reports whether a and b intersect on both axes.
// Touching edges do not count as overlap, matching the zero-MTV convention.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W &&
		a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// MTV returns the minimum translation vector that separates mover from other:
// the smallest single-axis displacement of mover that ends the overlap.
// Exactly one component is nonzero, or both are zero when the rectangles do
// not overlap.
func MTV(mover, other Rect) Vec2 {
	var mtv Vec2
	if !Overlaps(mover, other) {
		return mtv
	}

	// Shallowest escape along each axis.
	west := other.X - mover.X - mover.W
	east := other.X + other.W - mover.X
	if math.Abs(west) < math.Abs(east) {
		mtv.X = west
	} else {
		mtv.X = east
	}

	south := other.Y + other.H - mover.Y
	north := other.Y - mover.Y - mover.H
	if math.Abs(south) < math.Abs(north) {
		mtv.Y = south
	} else {
		mtv.Y = north
	}

	// Keep only the axis of least penetration.
	if math.Abs(mtv.X) > math.Abs(mtv.Y) {
		mtv.X = 0
	} else {
		mtv.Y = 0
	}

	return mtv
}
