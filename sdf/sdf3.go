package sdf

import (
	"math"
	"strconv"

	"github.com/soypat/sdfhole/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// 3D signed distance utility functions.

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains
	// the SDF3.
	Bounds() r3.Box
}

// revolution3 solid of revolution, SDF2 to SDF3.
type revolution3 struct {
	sdf       SDF2
	facets    int
	half      float64 // half of the facet sector angle
	scale     float64 // maps apothem distance to vertex distance
	convexity int
	bb        r3.Box
}

// Revolve3D returns an SDF3 for a full solid of revolution of the
// x>=0 half of sdf about the z axis. The profile's y axis becomes z.
// When facets>=3 the solid is the polygonal revolution with that many
// flat facets, vertices starting on the x axis. Otherwise it is round.
func Revolve3D(sdf SDF2, facets int) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	if isEmpty(sdf) {
		return empty3{}
	}
	s := revolution3{sdf: sdf}
	if facets >= 3 {
		s.facets = facets
		s.half = pi / float64(facets)
		s.scale = 1 / math.Cos(s.half)
	}
	// work out the bounding box
	bb := sdf.Bounds()
	l := math.Max(math.Abs(bb.Min.X), math.Abs(bb.Max.X))
	s.bb = r3.Box{
		Min: r3.Vec{X: -l, Y: -l, Z: bb.Min.Y},
		Max: r3.Vec{X: l, Y: l, Z: bb.Max.Y},
	}
	return &s
}

// Evaluate returns the minimum distance to a solid of revolution.
func (s *revolution3) Evaluate(p r3.Vec) float64 {
	x := math.Hypot(p.X, p.Y)
	if s.facets != 0 && x > 0 {
		// fold the angle into the sector centered on the nearest facet normal.
		theta := math.Atan2(p.Y, p.X)
		sector := 2 * s.half
		a := theta - sector*math.Floor(theta/sector) - s.half
		x *= math.Cos(a) * s.scale
	}
	return s.sdf.Evaluate(r2.Vec{X: x, Y: p.Z})
}

// Bounds returns the bounding box for a solid of revolution.
func (s *revolution3) Bounds() r3.Box {
	return s.bb
}

// SetConvexity sets the convexity hint used when describing the solid as source.
func (s *revolution3) SetConvexity(n int) { s.convexity = n }

// extrude3 extrudes an SDF2 to an SDF3 between two z planes.
type extrude3 struct {
	sdf       SDF2
	z0, z1    float64
	convexity int
	bb        r3.Box
}

// Extrude3D does a linear extrude on an SDF2, centered on z=0.
func Extrude3D(sdf SDF2, height float64) SDF3 {
	return ExtrudeRange3D(sdf, -height/2, height/2)
}

// ExtrudeRange3D does a linear extrude on an SDF2 spanning z0 to z1.
// A non-positive span results in an empty SDF3.
func ExtrudeRange3D(sdf SDF2, z0, z1 float64) SDF3 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	if z1 <= z0 || isEmpty(sdf) {
		return empty3{}
	}
	s := extrude3{sdf: sdf, z0: z0, z1: z1}
	bb := sdf.Bounds()
	s.bb = r3.Box{
		Min: r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: z0},
		Max: r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: z1},
	}
	return &s
}

// Evaluate returns the minimum distance to an extrusion.
func (s *extrude3) Evaluate(p r3.Vec) float64 {
	// sdf for the projected 2d surface
	a := s.sdf.Evaluate(r2.Vec{X: p.X, Y: p.Y})
	// sdf for the extrusion region: z = [z0, z1]
	b := math.Max(s.z0-p.Z, p.Z-s.z1)
	// return the intersection
	return math.Max(a, b)
}

// Bounds returns the bounding box for an extrusion.
func (s *extrude3) Bounds() r3.Box {
	return s.bb
}

// SetConvexity sets the convexity hint used when describing the solid as source.
func (s *extrude3) SetConvexity(n int) { s.convexity = n }

// transform3 is an SDF3 moved by a rigid transform.
type transform3 struct {
	sdf SDF3
	t   Transform3
	inv d3.Transform
	bb  r3.Box
}

// Transform3D applies a rigid transform to an SDF3.
func Transform3D(sdf SDF3, t Transform3) SDF3 {
	if sdf == nil {
		panic("nil SDF3 argument")
	}
	if isEmpty(sdf) {
		return sdf
	}
	return &transform3{
		sdf: sdf,
		t:   t,
		inv: t.m.Inv(),
		bb:  r3.Box(t.m.ApplyBox(d3.Box(sdf.Bounds()))),
	}
}

// Evaluate returns the minimum distance to a transformed SDF3.
func (s *transform3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(s.inv.Transform(p))
}

// Bounds returns the bounding box of a transformed SDF3.
func (s *transform3) Bounds() r3.Box {
	return s.bb
}

// union3 is a union of SDF3s.
type union3 struct {
	sdf []SDF3
	// compound unions are described as sibling solids.
	compound bool
	bb       r3.Box
}

// Union3D returns the union of multiple SDF3 objects.
// Empty arguments are discarded and Union3D will panic if
// an argument SDF3 is nil.
func Union3D(sdf ...SDF3) SDF3 {
	return newUnion3(false, sdf)
}

// Compound3D returns the union of independent solids. It evaluates
// like Union3D but is described as a list of sibling solids.
func Compound3D(sdf ...SDF3) SDF3 {
	return newUnion3(true, sdf)
}

func newUnion3(compound bool, sdf []SDF3) SDF3 {
	s := union3{compound: compound}
	for i, x := range sdf {
		if x == nil {
			panic("nil sdf argument (" + strconv.Itoa(i) + ") to Union3D")
		}
		if !isEmpty(x) {
			s.sdf = append(s.sdf, x)
		}
	}
	switch {
	case len(s.sdf) == 0:
		return empty3{}
	case len(s.sdf) == 1 && !compound:
		return s.sdf[0]
	}
	// work out the bounding box
	bb := d3.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf[1:] {
		bb = bb.Extend(d3.Box(x.Bounds()))
	}
	s.bb = r3.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to an SDF3 union.
func (s *union3) Evaluate(p r3.Vec) float64 {
	d := math.MaxFloat64
	for _, x := range s.sdf {
		d = math.Min(d, x.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of an SDF3 union.
func (s *union3) Bounds() r3.Box {
	return s.bb
}

// diff3 is the difference of an SDF3 and a set of SDF3s.
type diff3 struct {
	s0 SDF3
	s1 []SDF3
}

// Difference3D returns the difference of SDF3s, s0 - s1[0] - s1[1]...
// Difference3D will panic if one any of the arguments is nil.
func Difference3D(s0 SDF3, s1 ...SDF3) SDF3 {
	if s0 == nil {
		panic("nil argument to Difference3D")
	}
	s := diff3{s0: s0}
	for _, x := range s1 {
		if x == nil {
			panic("nil argument to Difference3D")
		}
		if !isEmpty(x) {
			s.s1 = append(s.s1, x)
		}
	}
	if len(s.s1) == 0 || isEmpty(s0) {
		return s0
	}
	return &s
}

// Evaluate returns the minimum distance to the SDF3 difference.
func (s *diff3) Evaluate(p r3.Vec) float64 {
	d := s.s0.Evaluate(p)
	for _, x := range s.s1 {
		d = math.Max(d, -x.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of the SDF3 difference.
func (s *diff3) Bounds() r3.Box {
	return s.s0.Bounds()
}

// empty3 is the SDF3 with no interior.
type empty3 struct{}

// Empty3D returns an SDF3 that contains no points.
func Empty3D() SDF3 { return empty3{} }

func (empty3) Evaluate(r3.Vec) float64 { return math.MaxFloat64 }

func (empty3) Bounds() r3.Box { return r3.Box{} }

func (empty3) isEmpty() bool { return true }
