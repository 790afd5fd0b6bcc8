package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transform represents a rigid 3D spatial transformation: an orthogonal
// linear part (rotation, possibly with reflection) followed by a translation.
// The zero value of Transform is the identity transform.
type Transform struct {
	// in order to make the zero value of Transform represent the identity
	// transform we store it with the identity matrix subtracted.
	// These diagonal elements are subtracted such that
	//  d00 = x00-1, d11 = x11-1, d22 = x22-1
	d00, x01, x02 float64
	x10, d11, x12 float64
	x20, x21, d22 float64
	t             r3.Vec
}

// Translation returns a Transform that translates by v.
func Translation(v r3.Vec) Transform {
	return Transform{t: v}
}

// RotationX returns a Transform rotating theta radians about the x axis.
func RotationX(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{d11: c - 1, x12: -s, x21: s, d22: c - 1}
}

// RotationY returns a Transform rotating theta radians about the y axis.
func RotationY(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{d00: c - 1, x02: s, x20: -s, d22: c - 1}
}

// RotationZ returns a Transform rotating theta radians about the z axis.
func RotationZ(theta float64) Transform {
	s, c := math.Sincos(theta)
	return Transform{d00: c - 1, x01: -s, x10: s, d11: c - 1}
}

// Transform applies the Transform to the argument vector
// and returns the result.
func (t Transform) Transform(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: (t.d00+1)*v.X + t.x01*v.Y + t.x02*v.Z + t.t.X,
		Y: t.x10*v.X + (t.d11+1)*v.Y + t.x12*v.Z + t.t.Y,
		Z: t.x20*v.X + t.x21*v.Y + (t.d22+1)*v.Z + t.t.Z,
	}
}

// Mul multiplies the Transforms t and b and returns the result,
// equivalent to applying b first and then t.
func (t Transform) Mul(b Transform) Transform {
	if t == (Transform{}) {
		return b
	}
	if b == (Transform{}) {
		return t
	}
	x00, x11, x22 := t.d00+1, t.d11+1, t.d22+1
	y00, y11, y22 := b.d00+1, b.d11+1, b.d22+1
	var m Transform
	m.d00 = x00*y00 + t.x01*b.x10 + t.x02*b.x20 - 1
	m.x01 = x00*b.x01 + t.x01*y11 + t.x02*b.x21
	m.x02 = x00*b.x02 + t.x01*b.x12 + t.x02*y22
	m.x10 = t.x10*y00 + x11*b.x10 + t.x12*b.x20
	m.d11 = t.x10*b.x01 + x11*y11 + t.x12*b.x21 - 1
	m.x12 = t.x10*b.x02 + x11*b.x12 + t.x12*y22
	m.x20 = t.x20*y00 + t.x21*b.x10 + x22*b.x20
	m.x21 = t.x20*b.x01 + t.x21*y11 + x22*b.x21
	m.d22 = t.x20*b.x02 + t.x21*b.x12 + x22*y22 - 1
	m.t = t.Transform(b.t)
	return m
}

// Inv returns the inverse of the transform such that
// t.Inv().Mul(t) is the identity Transform.
func (t Transform) Inv() Transform {
	if t == (Transform{}) {
		return t
	}
	inv := Transform{
		d00: t.d00, x01: t.x10, x02: t.x20,
		x10: t.x01, d11: t.d11, x12: t.x21,
		x20: t.x02, x21: t.x12, d22: t.d22,
	}
	inv.t = r3.Scale(-1, inv.Transform(t.t))
	return inv
}

// ApplyBox transforms a bounding box and resizes it for axis-alignment.
func (t Transform) ApplyBox(box Box) Box {
	if t == (Transform{}) {
		return box
	}
	vs := box.Vertices()
	for i := range vs {
		vs[i] = t.Transform(vs[i])
	}
	return Box{Min: vs.Min(), Max: vs.Max()}
}

// SliceCopy returns a copy of the Transform's data as a 4x4 matrix
// in row major storage format. It returns 16 elements.
func (t Transform) SliceCopy() []float64 {
	return []float64{
		t.d00 + 1, t.x01, t.x02, t.t.X,
		t.x10, t.d11 + 1, t.x12, t.t.Y,
		t.x20, t.x21, t.d22 + 1, t.t.Z,
		0, 0, 0, 1,
	}
}
