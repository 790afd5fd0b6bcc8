package must2

import (
	"math"

	"github.com/soypat/sdfhole/internal/d2"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

const tolerance = 1e-9

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed set of line segments.
// Repeated consecutive vertices are merged.
func Polygon(vertex []r2.Vec) *polygon {
	s := polygon{}
	for _, v := range vertex {
		if n := len(s.vertex); n > 0 && d2.EqualWithin(v, s.vertex[n-1], tolerance) {
			continue
		}
		s.vertex = append(s.vertex, v)
	}
	n := len(s.vertex)
	if n > 1 && d2.EqualWithin(s.vertex[0], s.vertex[n-1], tolerance) {
		s.vertex = s.vertex[:n-1]
		n--
	}
	if n < 3 {
		panic("number of vertices < 3")
	}
	// Close the loop.
	s.vertex = append(s.vertex, s.vertex[0])

	// allocate pre-calculated line segment info
	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)
	vmin := s.vertex[0]
	vmax := s.vertex[0]
	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		s.vector[i] = r2.Unit(l)
		vmin = d2.MinElem(vmin, s.vertex[i])
		vmax = d2.MaxElem(vmax, s.vertex[i])
	}
	s.bb = r2.Box{Min: vmin, Max: vmax}
	return &s
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	// iterate over the line segments
	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		switch {
		case t < 0:
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		case t > s.length[i]:
			dd = math.Min(dd, r2.Norm2(pb)) // distance to vertex[1] of line
		default:
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y && dn < 0 { // upward crossing, p left of segment
				wn++
			}
		} else if b.Y <= p.Y && dn > 0 { // downward crossing, p right of segment
			wn--
		}
	}

	// normalise d*d to d
	d := math.Sqrt(dd)
	if wn != 0 {
		// p is inside the polygon
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// Vertices returns the polygon's vertices without the closing vertex.
func (s *polygon) Vertices() []r2.Vec {
	return append([]r2.Vec(nil), s.vertex[:len(s.vertex)-1]...)
}

// AppendSCAD appends the polygon statement.
func (s *polygon) AppendSCAD(b []byte) ([]byte, error) {
	b = append(b, "polygon(points=["...)
	for i, v := range s.vertex[:len(s.vertex)-1] {
		if i > 0 {
			b = append(b, ',')
		}
		b = sdf.AppendVec(b, v.X, v.Y)
	}
	return append(b, "]);"...), nil
}
