package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Transform is a 2D affine transformation restricted to
// orthogonal linear parts (rotations and reflections) plus a translation.
// The zero value of Transform is the identity transform.
type Transform struct {
	// Linear part stored with the identity subtracted so that
	// the zero value is the identity, like d3.Transform.
	d00, x01 float64
	x10, d11 float64
	t        r2.Vec
}

// NewTransform returns the transform with linear part
//  | a b |
//  | c d |
// and translation t. The linear part must be orthogonal.
func NewTransform(a, b, c, d float64, t r2.Vec) Transform {
	return Transform{d00: a - 1, x01: b, x10: c, d11: d - 1, t: t}
}

// Translation returns the translation component of the transform.
func (t Transform) Translation() r2.Vec { return t.t }

// Linear returns the linear component of the transform in row major order.
func (t Transform) Linear() [4]float64 {
	return [4]float64{t.d00 + 1, t.x01, t.x10, t.d11 + 1}
}

// ApplyPos applies the transform to a position.
func (t Transform) ApplyPos(p r2.Vec) r2.Vec {
	if t == (Transform{}) {
		return p
	}
	return r2.Vec{
		X: (t.d00+1)*p.X + t.x01*p.Y + t.t.X,
		Y: t.x10*p.X + (t.d11+1)*p.Y + t.t.Y,
	}
}

// Mul returns the transform equivalent to applying b and then t.
func (t Transform) Mul(b Transform) Transform {
	if t == (Transform{}) {
		return b
	}
	if b == (Transform{}) {
		return t
	}
	a00, a11 := t.d00+1, t.d11+1
	b00, b11 := b.d00+1, b.d11+1
	var m Transform
	m.d00 = a00*b00 + t.x01*b.x10 - 1
	m.x01 = a00*b.x01 + t.x01*b11
	m.x10 = t.x10*b00 + a11*b.x10
	m.d11 = t.x10*b.x01 + a11*b11 - 1
	m.t = t.ApplyPos(b.t)
	return m
}

// Inv returns the inverse transform. Since the linear part is
// orthogonal its inverse is its transpose.
func (t Transform) Inv() Transform {
	if t == (Transform{}) {
		return t
	}
	inv := Transform{d00: t.d00, x01: t.x10, x10: t.x01, d11: t.d11}
	inv.t = r2.Scale(-1, inv.ApplyPos(t.t))
	return inv
}

// ApplyBox transforms a 2d bounding box and resizes for axis-alignment.
func (t Transform) ApplyBox(box Box) Box {
	if t == (Transform{}) {
		return box
	}
	vs := box.Vertices()
	for i := range vs {
		vs[i] = t.ApplyPos(vs[i])
	}
	return Box{Min: vs.Min(), Max: vs.Max()}
}
