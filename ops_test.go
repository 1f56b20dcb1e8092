package vec2

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := New(2, 2)
	b := New(2, 2)

	cases := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{name: "add", got: a.Add(b), want: New(4, 4)},
		{name: "sub", got: a.Sub(b), want: New(0, 0)},
		{name: "mul", got: a.Mul(b), want: New(4, 4)},
		{name: "div", got: a.Div(b), want: New(1, 1)},
		{name: "mul scalar", got: a.MulScalar(2), want: New(4, 4)},
		{name: "div scalar", got: a.DivScalar(2), want: New(1, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.got)
		})
	}
}

func TestArithmeticCommutes(t *testing.T) {
	a := New(1.25, -3.5)
	b := New(0.75, 2.5)

	require.Equal(t, a.Add(b), b.Add(a))
	require.Equal(t, a.Mul(b), b.Mul(a))
}

func TestSelfInverse(t *testing.T) {
	a := New(1.25, -3.5)
	require.Equal(t, Zero(), a.Sub(a))
	require.Equal(t, One(), a.Div(a))
}

func TestScalarAndVectorMultiplicationAgree(t *testing.T) {
	a := New(1.25, -3.5)
	require.Equal(t, New(2*a.X, 2*a.Y), a.MulScalar(2))
	require.Equal(t, a.Mul(New(2, 2)), a.MulScalar(2))
}

func TestDivisionByZeroFollowsIEEE(t *testing.T) {
	v := One().Div(Zero())
	require.True(t, math.IsInf(float64(v.X), 1))
	require.True(t, math.IsInf(float64(v.Y), 1))

	w := New(-1, 1).DivScalar(0)
	require.True(t, math.IsInf(float64(w.X), -1))
	require.True(t, math.IsInf(float64(w.Y), 1))

	n := Zero().DivScalar(0)
	require.True(t, math.IsNaN(float64(n.X)))
	require.True(t, math.IsNaN(float64(n.Y)))
}

func TestScaleMutates(t *testing.T) {
	v := New(2, 2)
	v.Scale(New(1, 2))
	require.Equal(t, New(2, 4), v)

	w := New(3, 4)
	want := w.Mul(New(0.5, 0.25))
	w.Scale(New(0.5, 0.25))
	require.Equal(t, want, w)
}
