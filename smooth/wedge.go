package smooth

import (
	"fmt"
	"math"

	"github.com/soypat/sdfhole/form2"
	"github.com/soypat/sdfhole/internal/d2"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// wedge is the region swept counterclockwise from direction a to direction b
// around apex. extA and extB push the faces on a and b outward by eps.
type wedge struct {
	apex       r2.Vec
	a, b       float64 // radians
	extA, extB bool
	eps        float64
}

// sideWedge returns the wedge of p on side s.
func sideWedge(p Params, s Side) (wedge, error) {
	if err := p.validate(); err != nil {
		return wedge{}, err
	}
	e1 := sdf.DtoR(p.NormalAngle - p.InnerAngle/2)
	e2 := sdf.DtoR(p.NormalAngle + p.InnerAngle/2)
	w := wedge{apex: p.Position, eps: p.Context.Eps}
	switch s {
	case SideInner:
		w.a, w.b = e1, e2
		w.extA, w.extB = p.Edge1Extended, p.Edge2Extended
	case SideEdge1:
		w.a, w.b = e2+math.Pi, e1+2*math.Pi
		w.extA = p.Edge2Extended
	case SideEdge2:
		w.a, w.b = e2, e1+math.Pi
		w.extB = p.Edge1Extended
	default:
		return wedge{}, fmt.Errorf("side %v: %w", s, ErrParams)
	}
	return w, nil
}

// half returns half of the opening angle.
func (w wedge) half() float64 { return (w.b - w.a) / 2 }

// tangents returns the points at distance d from the apex along both faces.
func (w wedge) tangents(d float64) (ta, tb r2.Vec) {
	return r2.Add(w.apex, r2.Scale(d, d2.Dir(w.a))), r2.Add(w.apex, r2.Scale(d, d2.Dir(w.b)))
}

// region closes the path from ta to tb through the apex, pushing the
// extended faces outward by eps.
func (w wedge) region(ta r2.Vec, path []r2.Vec, tb r2.Vec) (sdf.SDF2, error) {
	na := r2.Scale(w.eps, d2.Dir(w.a-math.Pi/2))
	nb := r2.Scale(w.eps, d2.Dir(w.b+math.Pi/2))
	apex := w.apex
	vertices := make([]r2.Vec, 0, len(path)+6)
	if w.extA {
		apex = r2.Add(apex, na)
	}
	if w.extB {
		apex = r2.Add(apex, nb)
	}
	vertices = append(vertices, apex)
	if w.extA {
		vertices = append(vertices, r2.Add(ta, na))
	}
	vertices = append(vertices, ta)
	vertices = append(vertices, path...)
	vertices = append(vertices, tb)
	if w.extB {
		vertices = append(vertices, r2.Add(tb, nb))
	}
	return form2.Polygon(vertices)
}
