// Package core provides fundamental types and utilities for the asteroids game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Vec is a 2D vector in playfield units. The y axis grows downward.
type Vec struct {
	X, Y float64
}

// V creates a vector from its components.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Overlaps reports whether two circles collide: the distance between centers
// is strictly less than the sum of radii.
func Overlaps(a Vec, ra float64, b Vec, rb float64) bool {
	return Dist(a, b) < ra+rb
}

// FromAngle returns a vector of the given magnitude pointing along angle a.
// Angle 0 points right and pi/2 points up (toward smaller y).
func FromAngle(a, mag float64) Vec {
	return Vec{X: mag * math.Cos(a), Y: -mag * math.Sin(a)}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg / 180 * math.Pi
}

// WrapRadius wraps a position across the field edges with a radius inset.
// A center that passes w+r reappears at -r (and symmetrically on every edge),
// so the result always lies in [-r, w+r] x [-r, h+r].
func WrapRadius(p Vec, r, w, h float64) Vec {
	if p.X < -r {
		p.X = w + r
	} else if p.X > w+r {
		p.X = -r
	}
	if p.Y < -r {
		p.Y = h + r
	} else if p.Y > h+r {
		p.Y = -r
	}
	return p
}

// WrapTorus wraps a position across the field edges with no inset.
func WrapTorus(p Vec, w, h float64) Vec {
	if p.X < 0 {
		p.X = w
	} else if p.X > w {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = h
	} else if p.Y > h {
		p.Y = 0
	}
	return p
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
