package must3

import (
	"strconv"

	"github.com/soypat/sdfhole/form2/must2"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// cylinder is a cylinder centered on the origin with its axis along z.
type cylinder struct {
	sdf.SDF3
	height float64
	radius float64
	facets int
}

// Cylinder return an SDF3 for a cylinder centered on the origin.
// With facets >= 3 the cross section is the inscribed regular polygon.
func Cylinder(height, radius float64, facets int) *cylinder {
	if height <= 0 {
		panic("height <= 0")
	}
	return &cylinder{
		SDF3:   sdf.Extrude3D(must2.Circle(radius, facets), height),
		height: height,
		radius: radius,
		facets: facets,
	}
}

// AppendSCAD appends the cylinder statement.
func (s *cylinder) AppendSCAD(b []byte) ([]byte, error) {
	b = append(b, "cylinder(h="...)
	b = sdf.AppendFloat(b, s.height)
	b = append(b, ",r="...)
	b = sdf.AppendFloat(b, s.radius)
	return appendTail(b, s.facets), nil
}

// Truncated Cone

// frustum is a truncated cone centered on the origin with its axis along z.
type frustum struct {
	sdf.SDF3
	height float64
	r0     float64 // radius at z=-height/2
	r1     float64 // radius at z=+height/2
	facets int
}

// Frustum returns the SDF3 for a truncated cone of radius r0 at its base
// and r1 at its top. Either radius may be zero but not both.
// With facets >= 3 the solid has flat facets like Cylinder.
func Frustum(height, r0, r1 float64, facets int) *frustum {
	switch {
	case height <= 0:
		panic("height <= 0")
	case r0 < 0 || r1 < 0:
		panic("radius < 0")
	case r0 == 0 && r1 == 0:
		panic("both radii are zero")
	}
	h := height / 2
	profile := must2.Polygon([]r2.Vec{
		{X: 0, Y: -h},
		{X: r0, Y: -h},
		{X: r1, Y: h},
		{X: 0, Y: h},
	})
	return &frustum{
		SDF3:   sdf.Revolve3D(profile, facets),
		height: height,
		r0:     r0,
		r1:     r1,
		facets: facets,
	}
}

// AppendSCAD appends the frustum as an OpenSCAD cylinder statement.
func (s *frustum) AppendSCAD(b []byte) ([]byte, error) {
	b = append(b, "cylinder(h="...)
	b = sdf.AppendFloat(b, s.height)
	b = append(b, ",r1="...)
	b = sdf.AppendFloat(b, s.r0)
	b = append(b, ",r2="...)
	b = sdf.AppendFloat(b, s.r1)
	return appendTail(b, s.facets), nil
}

func appendTail(b []byte, facets int) []byte {
	b = append(b, ",center=true"...)
	if facets > 0 {
		b = append(b, ",$fn="...)
		b = strconv.AppendInt(b, int64(facets), 10)
	}
	return append(b, ");"...)
}
