package sdf

import (
	"github.com/soypat/sdfhole/internal/d2"
	"github.com/soypat/sdfhole/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform2 is a rigid 2D transform. The zero value is the identity.
type Transform2 struct {
	m d2.Transform
}

// Translate2D returns a transform that translates by v.
func Translate2D(v r2.Vec) Transform2 {
	return Transform2{m: d2.NewTransform(1, 0, 0, 1, v)}
}

// FlipX2D returns the mirror transform across the y axis (x becomes -x).
func FlipX2D() Transform2 {
	return Transform2{m: d2.NewTransform(-1, 0, 0, 1, r2.Vec{})}
}

// FlipY2D returns the mirror transform across the x axis (y becomes -y).
func FlipY2D() Transform2 {
	return Transform2{m: d2.NewTransform(1, 0, 0, -1, r2.Vec{})}
}

// Mul returns the transform that applies b and then a.
func (a Transform2) Mul(b Transform2) Transform2 {
	return Transform2{m: a.m.Mul(b.m)}
}

// Apply transforms a position.
func (a Transform2) Apply(p r2.Vec) r2.Vec {
	return a.m.ApplyPos(p)
}

// Transform3 is a rigid 3D transform. The zero value is the identity.
type Transform3 struct {
	m d3.Transform
}

// Translate3D returns a transform that translates by v.
func Translate3D(v r3.Vec) Transform3 {
	return Transform3{m: d3.Translation(v)}
}

// RotateX returns a transform that rotates by theta radians about the x axis.
func RotateX(theta float64) Transform3 {
	return Transform3{m: d3.RotationX(theta)}
}

// RotateY returns a transform that rotates by theta radians about the y axis.
func RotateY(theta float64) Transform3 {
	return Transform3{m: d3.RotationY(theta)}
}

// RotateZ returns a transform that rotates by theta radians about the z axis.
func RotateZ(theta float64) Transform3 {
	return Transform3{m: d3.RotationZ(theta)}
}

// Mul returns the transform that applies b and then a.
func (a Transform3) Mul(b Transform3) Transform3 {
	return Transform3{m: a.m.Mul(b.m)}
}

// Apply transforms a position.
func (a Transform3) Apply(p r3.Vec) r3.Vec {
	return a.m.Transform(p)
}
