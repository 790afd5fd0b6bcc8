package smooth

import (
	"fmt"
	"math"

	"github.com/soypat/sdfhole/internal/d2"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// Fillet rounds a corner with an arc of the given radius.
type Fillet struct {
	Radius float64
	Side   Side
}

// CreateSmoothProfiles returns the region between the corner and the arc
// tangent to both faces. It is a negative for SideInner and a positive otherwise.
func (f Fillet) CreateSmoothProfiles(p Params) (negative, positive sdf.SDF2, err error) {
	if f.Radius <= 0 {
		return nil, nil, fmt.Errorf("fillet radius %g: %w", f.Radius, ErrParams)
	}
	w, err := sideWedge(p, f.Side)
	if err != nil {
		return nil, nil, err
	}
	h := w.half()
	ta, tb := w.tangents(f.Radius / math.Tan(h))
	center := r2.Add(w.apex, r2.Scale(f.Radius/math.Sin(h), d2.Dir(w.a+h)))

	// The arc runs clockwise from ta to tb, facing the apex.
	sweep := math.Pi - 2*h
	n := p.Context.Fragments(f.Radius, p.Resolution)
	segs := int(math.Ceil(float64(n) * sweep / (2 * math.Pi)))
	if segs < 1 {
		segs = 1
	}
	start := w.a - math.Pi/2
	arc := make([]r2.Vec, 0, segs-1)
	for i := 1; i < segs; i++ {
		theta := start - sweep*float64(i)/float64(segs)
		arc = append(arc, r2.Add(center, r2.Scale(f.Radius, d2.Dir(theta))))
	}
	region, err := w.region(ta, arc, tb)
	if err != nil {
		return nil, nil, err
	}
	if f.Side == SideInner {
		return region, nil, nil
	}
	return nil, region, nil
}

// IsRough returns false.
func (f Fillet) IsRough() bool { return false }
