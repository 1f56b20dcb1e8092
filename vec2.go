// Package vec2 provides a single-precision 2D vector value type with the
// standard geometric operations used by game and simulation code.
//
// Vec2 is a plain value: copies are independent, equality is exact
// component-wise comparison, and no operation validates its inputs. Numeric
// edge cases (division by zero, overflow to infinity, NaN) follow IEEE-754
// semantics and propagate through arithmetic rather than raising errors.
package vec2

import (
	"fmt"
	"math"
)

// Vec2 is a pair of single-precision coordinates. Any float32 values,
// including NaN and the infinities, are valid states.
type Vec2 struct {
	X float32
	Y float32
}

// New returns the vector (x, y). The values are stored verbatim.
func New(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero returns (0, 0).
func Zero() Vec2 { return Vec2{} }

// One returns (1, 1).
func One() Vec2 { return Vec2{X: 1, Y: 1} }

// Up returns the unit vector (0, 1). The package uses a +y-up convention.
func Up() Vec2 { return Vec2{Y: 1} }

// Down returns the unit vector (0, -1).
func Down() Vec2 { return Vec2{Y: -1} }

// Left returns the unit vector (-1, 0).
func Left() Vec2 { return Vec2{X: -1} }

// Right returns the unit vector (1, 0).
func Right() Vec2 { return Vec2{X: 1} }

// PositiveInfinity returns the vector with both components set to +Inf.
func PositiveInfinity() Vec2 {
	inf := float32(math.Inf(1))
	return Vec2{X: inf, Y: inf}
}

// NegativeInfinity returns the vector with both components set to -Inf.
func NegativeInfinity() Vec2 {
	inf := float32(math.Inf(-1))
	return Vec2{X: inf, Y: inf}
}

// Set overwrites both components in place.
func (v *Vec2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Component returns the component selected by index: 0 for X, 1 for Y. Any
// other index is a caller bug and panics.
func (v Vec2) Component(index int) float32 {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	panic(fmt.Sprintf("vec2: component index %d out of range", index))
}

// SetComponent assigns the component selected by index: 0 for X, 1 for Y. Any
// other index is a caller bug and panics.
func (v *Vec2) SetComponent(index int, value float32) {
	switch index {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		panic(fmt.Sprintf("vec2: component index %d out of range", index))
	}
}

// String renders the vector as "(x, y)" with default numeric formatting.
func (v Vec2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}
