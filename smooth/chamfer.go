package smooth

import (
	"fmt"
	"math"

	"github.com/soypat/sdfhole/sdf"
)

// Chamfer bevels a corner with a straight face of length SkewLength.
type Chamfer struct {
	SkewLength float64
	Side       Side
}

// CreateSmoothProfiles returns the triangle cut off by the bevel. It is a
// negative for SideInner and a positive otherwise.
func (c Chamfer) CreateSmoothProfiles(p Params) (negative, positive sdf.SDF2, err error) {
	if c.SkewLength <= 0 {
		return nil, nil, fmt.Errorf("chamfer skew length %g: %w", c.SkewLength, ErrParams)
	}
	w, err := sideWedge(p, c.Side)
	if err != nil {
		return nil, nil, err
	}
	ta, tb := w.tangents(c.SkewLength / (2 * math.Sin(w.half())))
	region, err := w.region(ta, nil, tb)
	if err != nil {
		return nil, nil, err
	}
	if c.Side == SideInner {
		return region, nil, nil
	}
	return nil, region, nil
}

// IsRough returns false.
func (c Chamfer) IsRough() bool { return false }
