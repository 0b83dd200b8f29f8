package gosieray

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Color is an RGB triple. Channels are not clamped; out of range values
// are only limited when the color is quantized for output.
type Color struct {
	Red   float64
	Green float64
	Blue  float64
}

var (
	Black = Color{}
	White = Color{Red: 1, Green: 1, Blue: 1}
)

func NewColor(r, g, b float64) Color {
	return Color{
		Red:   r,
		Green: g,
		Blue:  b,
	}
}

func colorFromVec3(v mgl64.Vec3) Color {
	return NewColor(v[0], v[1], v[2])
}

func (c Color) vec3() mgl64.Vec3 {
	return mgl64.Vec3{c.Red, c.Green, c.Blue}
}

func (c Color) Add(o Color) Color {
	return colorFromVec3(c.vec3().Add(o.vec3()))
}

func (c Color) Sub(o Color) Color {
	return colorFromVec3(c.vec3().Sub(o.vec3()))
}

func (c Color) Negate() Color {
	return NewColor(-c.Red, -c.Green, -c.Blue)
}

// Mul scales every channel by s. See Hadamard for blending two colors.
func (c Color) Mul(s float64) Color {
	return colorFromVec3(c.vec3().Mul(s))
}

// ScaleColor is Mul with the scalar first.
func ScaleColor(s float64, c Color) Color {
	return c.Mul(s)
}

func (c Color) Div(s float64) Color {
	return NewColor(c.Red/s, c.Green/s, c.Blue/s)
}

// Hadamard multiplies the channels pairwise.
func (c Color) Hadamard(o Color) Color {
	return NewColor(c.Red*o.Red, c.Green*o.Green, c.Blue*o.Blue)
}

func (c Color) Equal(o Color) bool {
	return approxEqAll(
		[]float64{c.Red, c.Green, c.Blue},
		[]float64{o.Red, o.Green, o.Blue},
	)
}

// quantize maps a channel to [0, 255]: scale by 255, truncate toward zero,
// then clamp.
func quantize(v float64) int {
	x := v * 255
	if x >= 255 {
		return 255
	}
	// also catches NaN
	if !(x >= 1) {
		return 0
	}
	return int(x)
}

// String renders the color as the three space separated PPM channel values.
func (c Color) String() string {
	return fmt.Sprintf("%d %d %d", quantize(c.Red), quantize(c.Green), quantize(c.Blue))
}

// RGBA implements color.Color using the same quantization as String. The
// color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(quantize(c.Red))
	r |= r << 8
	g = uint32(quantize(c.Green))
	g |= g << 8
	b = uint32(quantize(c.Blue))
	b |= b << 8
	return r, g, b, 0xffff
}
