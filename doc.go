// Package gosieray holds the value types a ray tracer is built on:
// homogeneous tuples (points and vectors), RGB colors and a canvas that
// encodes to the plain-text PPM (P3) image format.
//
// Floating point comparisons go through ApproxEq everywhere; no type in
// this package compares floats exactly.
//
//	c := gosieray.NewCanvas(5, 3)
//	c.WritePixel(0, 0, gosieray.NewColor(1.5, 0, 0))
//	fmt.Print(c.ToPPM())
package gosieray
