// Package core provides fundamental types and utilities for the tanks game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"math"
)

// ErrDegenerateVector is returned when a direction is requested between two
// identical points.
var ErrDegenerateVector = errors.New("core: degenerate vector")

// Point is an integer position in world pixels.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Translate returns p moved by (dx, dy).
func (p Point) Translate(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Vec {
	return Vec{X: float64(p.X - o.X), Y: float64(p.Y - o.Y)}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return a.Sub(b).Len()
}

// Vec is a floating point displacement.
type Vec struct {
	X, Y float64
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale multiplies both components by f.
func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Normalize returns the unit vector along v.
// A zero vector yields ErrDegenerateVector and a zero result.
func (v Vec) Normalize() (Vec, error) {
	l := v.Len()
	if l == 0 {
		return Vec{}, ErrDegenerateVector
	}
	return Vec{X: v.X / l, Y: v.Y / l}, nil
}

// Trunc converts v to whole pixels, truncating each component toward zero.
func (v Vec) Trunc() (dx, dy int) {
	return int(v.X), int(v.Y)
}

// StepToward returns a vector of length mag pointing from `from` to `to`.
func StepToward(from, to Point, mag float64) (Vec, error) {
	u, err := to.Sub(from).Normalize()
	if err != nil {
		return Vec{}, err
	}
	return u.Scale(mag), nil
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns a w*h rectangle whose center is c.
// Odd sizes put the extra pixel on the right/bottom side.
func RectAround(c Point, w, h int) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Translate returns r shifted by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Encloses reports whether other lies completely inside r.
func (r Rect) Encloses(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y && other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}
