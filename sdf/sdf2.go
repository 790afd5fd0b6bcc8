package sdf

import (
	"math"

	"github.com/soypat/sdfhole/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// 2D signed distance function utility functions.

// SDF2 is the interface to a 2d signed distance function object.
type SDF2 interface {
	// Evaluate takes a point in 2D space as input and returns
	// the minimum distance of the SDF2 to the point. The distance
	// is negative if the point is contained within the SDF2.
	Evaluate(p r2.Vec) float64

	// Bounds returns the bounding box that completely contains the SDF2.
	Bounds() r2.Box
}

// transform2 is an SDF2 moved by a rigid transform.
type transform2 struct {
	sdf SDF2
	t   Transform2
	inv d2.Transform
	bb  r2.Box
}

// Transform2D applies a rigid transform to an SDF2.
// Rigid transforms preserve distance.
func Transform2D(sdf SDF2, t Transform2) SDF2 {
	if sdf == nil {
		panic("nil SDF2 argument")
	}
	if isEmpty(sdf) {
		return sdf
	}
	return &transform2{
		sdf: sdf,
		t:   t,
		inv: t.m.Inv(),
		bb:  r2.Box(t.m.ApplyBox(d2.Box(sdf.Bounds()))),
	}
}

// Evaluate returns the minimum distance to a transformed SDF2.
func (s *transform2) Evaluate(p r2.Vec) float64 {
	return s.sdf.Evaluate(s.inv.ApplyPos(p))
}

// Bounds returns the bounding box of a transformed SDF2.
func (s *transform2) Bounds() r2.Box {
	return s.bb
}

// union2 is a union of multiple SDF2 objects.
type union2 struct {
	sdf []SDF2
	bb  r2.Box
}

// Union2D returns the union of multiple SDF2 objects.
// Empty SDF2s are discarded. Union2D panics on nil arguments.
func Union2D(sdf ...SDF2) SDF2 {
	var s union2
	for _, x := range sdf {
		if x == nil {
			panic("nil argument found")
		}
		if !isEmpty(x) {
			s.sdf = append(s.sdf, x)
		}
	}
	switch len(s.sdf) {
	case 0:
		return empty2{}
	case 1:
		return s.sdf[0]
	}
	// work out the bounding box
	bb := d2.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf[1:] {
		bb = bb.Extend(d2.Box(x.Bounds()))
	}
	s.bb = r2.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to the SDF2 union.
func (s *union2) Evaluate(p r2.Vec) float64 {
	// work out the min/max distance for every bounding box
	vs := make([]r2.Vec, len(s.sdf))
	minDist2 := -1.0
	minIndex := 0
	for i := range s.sdf {
		vs[i] = d2.Box(s.sdf[i].Bounds()).MinMaxDist2(p)
		// as we go record the sdf with the minimum minimum d2 value
		if minDist2 < 0 || vs[i].X < minDist2 {
			minDist2 = vs[i].X
			minIndex = i
		}
	}
	d := math.MaxFloat64
	for i := range s.sdf {
		// only an sdf whose min/max distances overlap
		// the minimum box are worthy of consideration
		if i == minIndex || d2.Overlap(vs[minIndex], vs[i]) {
			d = math.Min(d, s.sdf[i].Evaluate(p))
		}
	}
	return d
}

// Bounds returns the bounding box of an SDF2 union.
func (s *union2) Bounds() r2.Box {
	return s.bb
}

// diff2 is the difference of an SDF2 and a set of SDF2s.
type diff2 struct {
	s0 SDF2
	s1 []SDF2
}

// Difference2D returns the difference of SDF2 objects, s0 - s1[0] - s1[1]...
// Empty subtrahends are discarded.
func Difference2D(s0 SDF2, s1 ...SDF2) SDF2 {
	if s0 == nil {
		panic("nil sdf argument")
	}
	s := diff2{s0: s0}
	for _, x := range s1 {
		if x == nil {
			panic("nil sdf argument")
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

// Evaluate returns the minimum distance to the difference of SDF2s.
func (s *diff2) Evaluate(p r2.Vec) float64 {
	d := s.s0.Evaluate(p)
	for _, x := range s.s1 {
		d = math.Max(d, -x.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of the difference of SDF2s.
func (s *diff2) Bounds() r2.Box {
	return s.s0.Bounds()
}

// empty2 is the SDF2 with no interior.
type empty2 struct{}

// Empty2D returns an SDF2 that contains no points.
func Empty2D() SDF2 { return empty2{} }

func (empty2) Evaluate(r2.Vec) float64 { return math.MaxFloat64 }

func (empty2) Bounds() r2.Box { return r2.Box{} }

func (empty2) isEmpty() bool { return true }
