package gosieray

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTuple(t *testing.T) {
	t.Parallel()

	a := NewTuple(4.3, -4.2, 3.1, 1.0)
	assert.Equal(t, 4.3, a.X)
	assert.Equal(t, -4.2, a.Y)
	assert.Equal(t, 3.1, a.Z)
	assert.Equal(t, 1.0, a.W)
	assert.True(t, a.IsPoint())
	assert.False(t, a.IsVector())

	b := NewTuple(4.3, -4.2, 3.1, 0.0)
	assert.False(t, b.IsPoint())
	assert.True(t, b.IsVector())
}

func TestPointAndVectorFactories(t *testing.T) {
	t.Parallel()

	assertTupleEqual(t, NewTuple(4, -4, 3, 1), NewPoint(4, -4, 3))
	assertTupleEqual(t, NewTuple(4, -4, 3, 0), NewVector(4, -4, 3))
}

func TestTupleEqual(t *testing.T) {
	t.Parallel()

	a := NewPoint(0, 1, 2)
	assert.True(t, a.Equal(NewPoint(Epsilon/4, 1-Epsilon/4, 2+Epsilon/4)))
	assert.False(t, a.Equal(NewPoint(Epsilon*4, 1, 2)))
	assert.False(t, a.Equal(NewVector(0, 1, 2)), "w participates in equality")
}

func TestTupleAdd(t *testing.T) {
	t.Parallel()

	p := NewPoint(3, -2, 5)
	v := NewVector(-2, 3, 1)
	assertTupleEqual(t, NewPoint(1, 1, 6), p.Add(v))

	// two points are not rejected, they just stop being a point
	sum := p.Add(p)
	assert.Equal(t, 2.0, sum.W)
	assert.False(t, sum.IsPoint())
}

func TestTupleSub(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		a, b     Tuple
		expected Tuple
	}{
		{"point minus point", NewPoint(3, 2, 1), NewPoint(5, 6, 7), NewVector(-2, -4, -6)},
		{"point minus vector", NewPoint(3, 2, 1), NewVector(5, 6, 7), NewPoint(-2, -4, -6)},
		{"vector minus vector", NewVector(3, 2, 1), NewVector(5, 6, 7), NewVector(-2, -4, -6)},
		{"zero minus vector", NewVector(0, 0, 0), NewVector(1, -2, 3), NewVector(-1, 2, -3)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertTupleEqual(t, tc.expected, tc.a.Sub(tc.b))
		})
	}
}

func TestTupleNegate(t *testing.T) {
	t.Parallel()
	assertTupleEqual(t, NewTuple(-1, 2, -3, 4), NewTuple(1, -2, 3, -4).Negate())
}

func TestTupleScale(t *testing.T) {
	t.Parallel()

	a := NewTuple(1, -2, 3, -4)
	assertTupleEqual(t, NewTuple(3.5, -7, 10.5, -14), a.Mul(3.5))
	assertTupleEqual(t, NewTuple(0.5, -1, 1.5, -2), a.Mul(0.5))
	assertTupleEqual(t, a.Mul(3.5), ScaleTuple(3.5, a))
}

func TestTupleDiv(t *testing.T) {
	t.Parallel()

	assertTupleEqual(t, NewTuple(0.5, -1, 1.5, -2), NewTuple(1, -2, 3, -4).Div(2))

	// division by zero is not guarded
	z := NewTuple(1, -1, 0, 0).Div(0)
	assert.True(t, math.IsInf(z.X, 1))
	assert.True(t, math.IsInf(z.Y, -1))
	assert.True(t, math.IsNaN(z.Z))
	assert.True(t, math.IsNaN(z.W))
}

func TestTupleMagnitude(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		v        Tuple
		expected float64
	}{
		{"unit x", NewVector(1, 0, 0), 1},
		{"unit y", NewVector(0, 1, 0), 1},
		{"unit z", NewVector(0, 0, 1), 1},
		{"positive", NewVector(1, 2, 3), math.Sqrt(14)},
		{"negative", NewVector(-1, -2, -3), math.Sqrt(14)},
		{"includes w", NewTuple(0, 0, 0, 1), 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, ApproxEq(tc.expected, tc.v.Magnitude()), "got %g", tc.v.Magnitude())
		})
	}
}

func TestTupleNormalize(t *testing.T) {
	t.Parallel()

	assertTupleEqual(t, NewVector(1, 0, 0), NewVector(4, 0, 0).Normalize())

	s := math.Sqrt(14)
	assertTupleEqual(t, NewVector(1/s, 2/s, 3/s), NewVector(1, 2, 3).Normalize())

	for _, v := range []Tuple{
		NewVector(1, 2, 3),
		NewVector(-0.001, 500, 7),
		NewTuple(3, 4, 5, 6),
		NewPoint(10, -10, 0.5),
	} {
		assert.True(t, ApproxEq(1, v.Normalize().Magnitude()), "%v", v)
	}
}

func TestTupleNormalizeZero(t *testing.T) {
	t.Parallel()
	n := NewVector(0, 0, 0).Normalize()
	assert.True(t, math.IsNaN(n.X))
	assert.True(t, math.IsNaN(n.W))
}

func TestTupleDot(t *testing.T) {
	t.Parallel()
	assert.True(t, ApproxEq(20, NewVector(1, 2, 3).Dot(NewVector(2, 3, 4))))
	assert.True(t, ApproxEq(2, NewTuple(1, 0, 0, 1).Dot(NewTuple(1, 0, 0, 1))), "w contributes")
}

func TestTupleCross(t *testing.T) {
	t.Parallel()

	a := NewVector(1, 2, 3)
	b := NewVector(2, 3, 4)

	ab, err := a.Cross(b)
	require.NoError(t, err)
	assertTupleEqual(t, NewVector(-1, 2, -1), ab)

	ba, err := b.Cross(a)
	require.NoError(t, err)
	assertTupleEqual(t, NewVector(1, -2, 1), ba)
	assertTupleEqual(t, ab, ba.Negate())
}

func TestTupleCrossAnticommutative(t *testing.T) {
	t.Parallel()

	vs := []Tuple{
		NewVector(1, 0, 0),
		NewVector(0, 1, 0),
		NewVector(-3, 0.5, 9),
		NewVector(7, -2, 1e-3),
	}
	for _, u := range vs {
		for _, v := range vs {
			uv, err := u.Cross(v)
			require.NoError(t, err)
			vu, err := v.Cross(u)
			require.NoError(t, err)
			assertTupleEqual(t, uv, vu.Negate())
			assert.Equal(t, 0.0, uv.W)
		}
	}
}

func TestTupleCrossRejectsPoints(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		a, b Tuple
	}{
		{"point receiver", NewPoint(1, 2, 3), NewVector(2, 3, 4)},
		{"point argument", NewVector(1, 2, 3), NewPoint(2, 3, 4)},
		{"both points", NewPoint(1, 2, 3), NewPoint(2, 3, 4)},
		{"w slightly off zero", NewTuple(1, 2, 3, 2*Epsilon), NewVector(2, 3, 4)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.a.Cross(tc.b)
			assert.ErrorIs(t, err, ErrInvalidOperation)
			assert.Equal(t, Tuple{}, got)
		})
	}
}

func TestTupleVec4RoundTrip(t *testing.T) {
	t.Parallel()

	p := NewPoint(1, 2, 3)
	assert.Equal(t, mgl64.Vec4{1, 2, 3, 1}, p.Vec4())
	assert.Equal(t, p, TupleFromVec4(p.Vec4()))
}

func TestTupleString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "(1, -2.5, 3, 1)", NewPoint(1, -2.5, 3).String())
}
