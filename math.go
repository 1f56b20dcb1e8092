package vec2

import "math"

// normalizeEpsilon is the magnitude at or below which Normalize collapses the
// vector to zero instead of dividing. Downstream numerical compatibility
// depends on this exact constant.
const normalizeEpsilon = 1e-5

// SqrMagnitude returns x² + y². It skips the square root, making it the
// cheaper primitive when only comparing lengths.
func (v Vec2) SqrMagnitude() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns the Euclidean length of the vector.
func (v Vec2) Magnitude() float32 {
	return sqrt32(v.SqrMagnitude())
}

// Normalize rescales the vector to unit length in place, preserving its
// direction. Vectors with magnitude at or below 1e-5 are set to zero instead,
// avoiding division blow-up near zero.
func (v *Vec2) Normalize() {
	mag := v.Magnitude()
	if mag > normalizeEpsilon {
		v.X /= mag
		v.Y /= mag
	} else {
		*v = Zero()
	}
}

// Normalized returns the unit-length counterpart of v without mutating it,
// applying the same near-zero fallback as Normalize.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Lerp linearly interpolates between a and b, clamping t to [0, 1] first so
// the result always lies on the segment between them inclusive.
func Lerp(a, b Vec2, t float32) Vec2 {
	return LerpUnclamped(a, b, clamp01(t))
}

// LerpUnclamped linearly interpolates between a and b without clamping t;
// values outside [0, 1] extrapolate beyond the segment.
func LerpUnclamped(a, b Vec2, t float32) Vec2 {
	return New(a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
}

// MoveTowards steps from current toward target by at most maxDistanceDelta
// along the straight line between them. When the remaining distance is within
// the step, or already zero, it returns target exactly so repeated calls land
// on the target with no residual drift. A negative delta moves away from the
// target; that is not an error.
func MoveTowards(current, target Vec2, maxDistanceDelta float32) Vec2 {
	delta := target.Sub(current)
	dist := delta.Magnitude()
	if dist <= maxDistanceDelta || dist == 0 {
		return target
	}
	return current.Add(delta.DivScalar(dist).MulScalar(maxDistanceDelta))
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float32 {
	return a.Sub(b).Magnitude()
}

// Min returns the component-wise minimum of a and b.
func Min(a, b Vec2) Vec2 {
	return New(min(a.X, b.X), min(a.Y, b.Y))
}

// Max returns the component-wise maximum of a and b.
func Max(a, b Vec2) Vec2 {
	return New(max(a.X, b.X), max(a.Y, b.Y))
}

// ClampMagnitude returns a copy of v with its magnitude capped at maxLength,
// preserving direction. Vectors already within the cap are returned unchanged.
func ClampMagnitude(v Vec2, maxLength float32) Vec2 {
	sqr := v.SqrMagnitude()
	if sqr <= maxLength*maxLength {
		return v
	}
	return v.MulScalar(maxLength / sqrt32(sqr))
}

// Perpendicular returns v rotated 90 degrees counter-clockwise, so that
// Perpendicular of Right is Up.
func (v Vec2) Perpendicular() Vec2 {
	return New(-v.Y, v.X)
}

// Reflect returns inDirection reflected off the surface described by
// inNormal. inNormal is assumed to be unit length.
func Reflect(inDirection, inNormal Vec2) Vec2 {
	factor := -2 * Dot(inNormal, inDirection)
	return New(factor*inNormal.X+inDirection.X, factor*inNormal.Y+inDirection.Y)
}

func clamp01(t float32) float32 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func sqrt32(value float32) float32 {
	return float32(math.Sqrt(float64(value)))
}
