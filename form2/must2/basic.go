package must2

import (
	"math"

	"github.com/soypat/sdfhole/internal/d2"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// 2D Circle

// circle is the 2d signed distance object for a circle, optionally
// faceted into the regular polygon inscribed in it.
type circle struct {
	radius   float64
	facets   int
	sector   float64 // facet sector angle
	apothem  float64 // distance from center to facet
	halfEdge float64 // half of facet length
	bb       r2.Box
}

// Circle returns the SDF2 for a 2d circle. When facets>=3 the circle is
// the inscribed regular polygon with its first vertex on the +x axis.
func Circle(radius float64, facets int) *circle {
	if radius <= 0 {
		panic("radius <= 0")
	}
	s := circle{radius: radius}
	if facets >= 3 {
		s.facets = facets
		s.sector = 2 * math.Pi / float64(facets)
		sin, cos := math.Sincos(s.sector / 2)
		s.apothem = radius * cos
		s.halfEdge = radius * sin
	}
	d := d2.Elem(radius)
	s.bb = r2.Box{Min: r2.Scale(-1, d), Max: d}
	return &s
}

// Evaluate returns the minimum distance to a 2d circle.
func (s *circle) Evaluate(p r2.Vec) float64 {
	rho := r2.Norm(p)
	if s.facets == 0 {
		return rho - s.radius
	}
	// fold p into the sector of the facet whose normal lies on the +x axis.
	theta := math.Atan2(p.Y, p.X)
	a := theta - s.sector*math.Floor(theta/s.sector) - s.sector/2
	sin, cos := math.Sincos(a)
	qx, qy := rho*cos, rho*sin
	dx := qx - s.apothem
	if dx <= 0 {
		return dx
	}
	dy := qy - sdf.Clamp(qy, -s.halfEdge, s.halfEdge)
	return math.Hypot(dx, dy)
}

// Bounds returns the bounding box of a 2d circle.
func (s *circle) Bounds() r2.Box {
	return s.bb
}

// Radius returns the circumradius of the circle.
func (s *circle) Radius() float64 { return s.radius }

// AppendSCAD appends the circle statement.
func (s *circle) AppendSCAD(b []byte) ([]byte, error) {
	b = append(b, "circle(r="...)
	b = sdf.AppendFloat(b, s.radius)
	if s.facets > 0 {
		b = append(b, ",$fn="...)
		b = sdf.AppendFloat(b, float64(s.facets))
	}
	return append(b, ");"...), nil
}

// 2D Rectangle

// Rectangle side indices. Sides run between consecutive nodes.
const (
	SideLeft = iota
	SideTop
	SideRight
	SideBottom
)

// rectangle is an axis aligned rectangle whose sides may be pushed
// outwards by a small epsilon.
type rectangle struct {
	nodes [4]r2.Vec
	min   r2.Vec
	max   r2.Vec
}

// Rectangle returns a width by depth rectangle with its lower left corner
// at the origin, or centered on it if center is set. Each side flagged in
// extend is pushed out by eps. Sides are indexed left, top, right, bottom.
func Rectangle(width, depth float64, center bool, extend [4]bool, eps float64) *rectangle {
	if width <= 0 || depth <= 0 {
		panic("rectangle size <= 0")
	}
	if eps < 0 {
		panic("eps < 0")
	}
	var o r2.Vec
	if center {
		o = r2.Vec{X: -width / 2, Y: -depth / 2}
	}
	s := rectangle{
		nodes: [4]r2.Vec{
			o,
			r2.Add(o, r2.Vec{Y: depth}),
			r2.Add(o, r2.Vec{X: width, Y: depth}),
			r2.Add(o, r2.Vec{X: width}),
		},
	}
	s.min, s.max = s.nodes[0], s.nodes[2]
	if extend[SideLeft] {
		s.min.X -= eps
	}
	if extend[SideTop] {
		s.max.Y += eps
	}
	if extend[SideRight] {
		s.max.X += eps
	}
	if extend[SideBottom] {
		s.min.Y -= eps
	}
	return &s
}

// Nodes returns the nominal corners of the rectangle, before eps extension,
// in the order (min x, min y), (min x, max y), (max x, max y), (max x, min y).
func (s *rectangle) Nodes() [4]r2.Vec {
	return s.nodes
}

// Evaluate returns the minimum distance to the rectangle.
func (s *rectangle) Evaluate(p r2.Vec) float64 {
	half := r2.Scale(0.5, r2.Sub(s.max, s.min))
	center := r2.Add(s.min, half)
	return sdfBox2d(r2.Sub(p, center), half)
}

// Bounds returns the extended rectangle.
func (s *rectangle) Bounds() r2.Box {
	return r2.Box{Min: s.min, Max: s.max}
}

// AppendSCAD appends the rectangle statement.
func (s *rectangle) AppendSCAD(b []byte) ([]byte, error) {
	if s.min != (r2.Vec{}) {
		b = append(b, "translate("...)
		b = sdf.AppendVec(b, s.min.X, s.min.Y)
		b = append(b, ") "...)
	}
	size := r2.Sub(s.max, s.min)
	b = append(b, "square("...)
	b = sdf.AppendVec(b, size.X, size.Y)
	return append(b, ");"...), nil
}

func sdfBox2d(p, s r2.Vec) float64 {
	p = d2.AbsElem(p)
	d := r2.Sub(p, s)
	k := s.Y - s.X
	if d.X > 0 && d.Y > 0 {
		return r2.Norm(d)
	}
	if p.Y-p.X > k {
		return d.Y
	}
	return d.X
}
