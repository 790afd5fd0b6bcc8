package hole

import (
	"fmt"

	"github.com/soypat/sdfhole/sdf"
	"github.com/soypat/sdfhole/smooth"
	"gonum.org/v1/gonum/spatial/r2"
)

// corner is a corner of a cross-section that a profile may smooth.
type corner struct {
	position    r2.Vec
	inner       float64 // degrees
	normal      float64 // degrees, pointing into the section
	ext1, ext2  bool
	profile     smooth.Profile
	description string
}

// applyEdgeProfiles collects the geometry the profiles of corners add to
// and cut from a cross-section.
func applyEdgeProfiles(ctx sdf.Context, res sdf.Resolution, corners ...corner) (negatives, positives []sdf.SDF2, err error) {
	for _, c := range corners {
		neg, pos, err := c.profile.CreateSmoothProfiles(smooth.Params{
			InnerAngle:    c.inner,
			NormalAngle:   c.normal,
			Position:      c.position,
			Edge1Extended: c.ext1,
			Edge2Extended: c.ext2,
			Context:       ctx,
			Resolution:    res,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("%s profile: %w", c.description, err)
		}
		if neg != nil {
			negatives = append(negatives, neg)
		}
		if pos != nil {
			positives = append(positives, pos)
		}
	}
	return negatives, positives, nil
}
