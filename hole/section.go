package hole

import (
	"fmt"
	"math"

	"github.com/soypat/sdfhole/form2"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// crossSection returns the half outline of a bore of radius r and height h
// with the hole axis on x=0 and the bottom face on y=0. Profiles of b are
// applied to the corners on the wall.
func crossSection(ctx sdf.Context, b Base, r, h float64) (sdf.SDF2, error) {
	rect, err := form2.Rectangle(r, h, false, [4]bool{false, b.ExtendTop, b.ExtendBoundary, b.ExtendBottom}, ctx.Eps)
	if err != nil {
		return nil, fmt.Errorf("cross section: %w", err)
	}
	nodes := rect.Nodes()
	return smoothSection(ctx, b.resolution(), rect, r, h,
		corner{
			position: nodes[2],
			inner:    90,
			normal:   225,
			ext1:     b.ExtendTop,
			ext2:     b.ExtendBoundary,
			profile:  b.profileTop(),

			description: "top",
		},
		corner{
			position: nodes[3],
			inner:    90,
			normal:   135,
			ext1:     b.ExtendBoundary,
			ext2:     b.ExtendBottom,
			profile:  b.profileBottom(),

			description: "bottom",
		},
	)
}

// stepSection returns the half outline of the wider part of a compound
// hole: a frustum from the bore radius r up to radius R over height hs,
// topped by a cylinder of radius R and height depth reaching the top face
// at h. The outline reaches eps into the bore below the frustum.
func stepSection(ctx sdf.Context, b Base, r, R, h, depth, hs float64) (sdf.SDF2, error) {
	eps := ctx.Eps
	wall := epsIf(b.ExtendBoundary, eps)
	top := h + epsIf(b.ExtendTop, eps)
	z := h - depth
	zf := z - hs
	outline, err := form2.Polygon([]r2.Vec{
		{X: 0, Y: zf - eps},
		{X: r + wall, Y: zf - eps},
		{X: r + wall, Y: zf},
		{X: R + wall, Y: z},
		{X: R + wall, Y: top},
		{X: 0, Y: top},
	})
	if err != nil {
		return nil, fmt.Errorf("step section: %w", err)
	}
	return smoothSection(ctx, b.resolution(), outline, R, h, stepTopCorner(b, r, R, h, depth, hs))
}

// stepTopCorner returns the corner where the wider part of a compound hole
// meets its top face.
func stepTopCorner(b Base, r, R, h, depth, hs float64) corner {
	c := corner{
		position:    r2.Vec{X: R, Y: h},
		inner:       90,
		normal:      225,
		ext1:        b.ExtendTop,
		ext2:        b.ExtendBoundary,
		profile:     b.profileTop(),
		description: "top",
	}
	if depth == 0 {
		// The top face meets the cone.
		c.inner = sdf.RtoD(math.Atan2(hs, R-r))
		c.normal = 180 + c.inner/2
	}
	return c
}

// smoothSection applies the profiles of corners to outline and trims the
// result to x>=0. width and h bound the outline before eps extension.
func smoothSection(ctx sdf.Context, res sdf.Resolution, outline sdf.SDF2, width, h float64, corners ...corner) (sdf.SDF2, error) {
	eps := ctx.Eps
	negatives, positives, err := applyEdgeProfiles(ctx, res, corners...)
	if err != nil {
		return nil, err
	}
	trim, err := form2.Rectangle(width+eps, h+2*eps, false, [4]bool{true, true, false, true}, eps)
	if err != nil {
		return nil, fmt.Errorf("half plane: %w", err)
	}
	trimmer := sdf.Transform2D(trim, sdf.Translate2D(r2.Vec{X: -width - eps, Y: -eps}))
	return sdf.Difference2D(
		sdf.Union2D(append([]sdf.SDF2{outline}, positives...)...),
		append([]sdf.SDF2{trimmer}, negatives...)...,
	), nil
}
