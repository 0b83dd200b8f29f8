package gosieray

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Tuple is a homogeneous coordinate. W is 1.0 for a point and 0.0 for a
// vector; every operation treats the four fields uniformly.
type Tuple struct {
	X float64
	Y float64
	Z float64
	W float64
}

func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{
		X: x,
		Y: y,
		Z: z,
		W: w,
	}
}

// NewPoint returns a position in space (W = 1).
func NewPoint(x, y, z float64) Tuple {
	return NewTuple(x, y, z, 1.0)
}

// NewVector returns a direction with no position (W = 0).
func NewVector(x, y, z float64) Tuple {
	return NewTuple(x, y, z, 0.0)
}

// TupleFromVec4 converts a mathgl vector into a Tuple.
func TupleFromVec4(v mgl64.Vec4) Tuple {
	return NewTuple(v[0], v[1], v[2], v[3])
}

// Vec4 returns the tuple as a mathgl vector.
func (t Tuple) Vec4() mgl64.Vec4 {
	return mgl64.Vec4{t.X, t.Y, t.Z, t.W}
}

func (t Tuple) IsPoint() bool {
	return ApproxEq(t.W, 1.0)
}

func (t Tuple) IsVector() bool {
	return ApproxEq(t.W, 0.0)
}

// Add sums component-wise. Adding two points is allowed and yields W = 2.
func (t Tuple) Add(o Tuple) Tuple {
	return TupleFromVec4(t.Vec4().Add(o.Vec4()))
}

func (t Tuple) Sub(o Tuple) Tuple {
	return TupleFromVec4(t.Vec4().Sub(o.Vec4()))
}

func (t Tuple) Negate() Tuple {
	return NewTuple(-t.X, -t.Y, -t.Z, -t.W)
}

// Mul scales every component by s.
func (t Tuple) Mul(s float64) Tuple {
	return TupleFromVec4(t.Vec4().Mul(s))
}

// ScaleTuple is Mul with the scalar first.
func ScaleTuple(s float64, t Tuple) Tuple {
	return t.Mul(s)
}

// Div divides every component by s. A zero s follows IEEE 754 and yields
// infinities or NaN.
func (t Tuple) Div(s float64) Tuple {
	return NewTuple(t.X/s, t.Y/s, t.Z/s, t.W/s)
}

// Magnitude is the Euclidean length over all four components.
func (t Tuple) Magnitude() float64 {
	return t.Vec4().Len()
}

// Normalize returns t scaled to unit length. The zero tuple has no
// direction and normalizes to NaN components.
func (t Tuple) Normalize() Tuple {
	return t.Div(t.Magnitude())
}

func (t Tuple) Dot(o Tuple) float64 {
	return t.Vec4().Dot(o.Vec4())
}

// Cross computes the 3D cross product of two vectors. It fails with
// ErrInvalidOperation if either operand is not a vector.
func (t Tuple) Cross(o Tuple) (Tuple, error) {
	if !t.IsVector() || !o.IsVector() {
		return Tuple{}, fmt.Errorf("cross product of %v and %v: %w", t, o, ErrInvalidOperation)
	}
	c := t.Vec4().Vec3().Cross(o.Vec4().Vec3())
	return NewVector(c[0], c[1], c[2]), nil
}

// Equal compares all four components with ApproxEq.
func (t Tuple) Equal(o Tuple) bool {
	return approxEqAll(
		[]float64{t.X, t.Y, t.Z, t.W},
		[]float64{o.X, o.Y, o.Z, o.W},
	)
}

func (t Tuple) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
