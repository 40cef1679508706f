// Package core provides fundamental types and utilities for the bricker platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units (x grows right, y grows down).
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Mult scales both components by f.
func (v Vec2) Mult(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector magnitude.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Flipped reflects v across the surface with the given unit normal.
func (v Vec2) Flipped(normal Vec2) Vec2 {
	d := 2 * v.Dot(normal)
	return Vec2{v.X - d*normal.X, v.Y - d*normal.Y}
}

// Box is an axis-aligned bounding box described by its center and size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// Min returns the top-left corner.
func (b Box) Min() Vec2 {
	return Vec2{b.Center.X - b.Size.X/2, b.Center.Y - b.Size.Y/2}
}

// Max returns the bottom-right corner.
func (b Box) Max() Vec2 {
	return Vec2{b.Center.X + b.Size.X/2, b.Center.Y + b.Size.Y/2}
}

// Overlap returns the penetration depth of b into o along each axis.
// Both values are positive only when the boxes intersect.
func (b Box) Overlap(o Box) (dx, dy float64) {
	dx = (b.Size.X+o.Size.X)/2 - math.Abs(b.Center.X-o.Center.X)
	dy = (b.Size.Y+o.Size.Y)/2 - math.Abs(b.Center.Y-o.Center.Y)
	return dx, dy
}

// Rect represents an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
