package vec2

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return New(v.X+o.X, v.Y+o.Y)
}

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return New(v.X-o.X, v.Y-o.Y)
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return New(v.X*o.X, v.Y*o.Y)
}

// MulScalar returns v with both components scaled by s.
func (v Vec2) MulScalar(s float32) Vec2 {
	return New(v.X*s, v.Y*s)
}

// Div returns the component-wise quotient of v and o. Dividing by a zero
// component yields an IEEE-754 infinity or NaN rather than an error.
func (v Vec2) Div(o Vec2) Vec2 {
	return New(v.X/o.X, v.Y/o.Y)
}

// DivScalar returns v with both components divided by s.
func (v Vec2) DivScalar(s float32) Vec2 {
	return New(v.X/s, v.Y/s)
}

// Scale multiplies v component-wise by o in place.
func (v *Vec2) Scale(o Vec2) {
	v.X *= o.X
	v.Y *= o.Y
}
