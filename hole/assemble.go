package hole

import (
	"fmt"
	"math"

	"github.com/soypat/sdfhole/form2"
	"github.com/soypat/sdfhole/form3"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// bore is a round (c2c == 0) or slotted hole with resolved dimensions.
type bore struct {
	Base
	height float64
	radius float64
	c2c    float64
}

func (b *bore) check() error {
	if err := b.Base.check(); err != nil {
		return err
	}
	switch {
	case !(b.height > 0):
		return fmt.Errorf("height %g: %w", b.height, ErrGeometry)
	case !(b.radius > 0):
		return fmt.Errorf("radius %g: %w", b.radius, ErrGeometry)
	case b.c2c < 0:
		return fmt.Errorf("center to center %g: %w", b.c2c, ErrGeometry)
	}
	return nil
}

// usesFastPath reports whether the hole is built by extruding its outline.
// Smoothed holes are swept from their cross-section instead.
func (b *bore) usesFastPath() bool { return b.rough() }

func (b *bore) build(ctx sdf.Context) (sdf.SDF3, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	if b.usesFastPath() {
		return b.buildExtrude(ctx)
	}
	return b.buildSweep(ctx)
}

func (b *bore) section(ctx sdf.Context) (sdf.SDF2, error) {
	if err := b.check(); err != nil {
		return nil, err
	}
	return crossSection(ctx, b.Base, b.radius, b.height)
}

// buildExtrude extrudes the outline of the hole between its aligned faces.
func (b *bore) buildExtrude(ctx sdf.Context) (sdf.SDF3, error) {
	z0, err := b.Alignment.offset(b.height)
	if err != nil {
		return nil, err
	}
	eps := ctx.Eps
	n := b.fragments(ctx, b.radius)
	r := b.radius + epsIf(b.ExtendBoundary, eps)
	z1 := z0 + b.height + epsIf(b.ExtendTop, eps)
	z0 -= epsIf(b.ExtendBottom, eps)
	if b.c2c == 0 {
		cyl, err := form3.Cylinder(z1-z0, r, n)
		if err != nil {
			return nil, err
		}
		return shift(cyl, (z0+z1)/2), nil
	}
	outline, err := stadium(b.radius, b.c2c, n, b.ExtendBoundary, eps)
	if err != nil {
		return nil, err
	}
	return sdf.ExtrudeRange3D(outline, z0, z1), nil
}

// stadium returns two circles of radius r, c2c apart along y, joined by
// their common tangents.
func stadium(r, c2c float64, facets int, extend bool, eps float64) (sdf.SDF2, error) {
	circle, err := form2.Circle(r+epsIf(extend, eps), facets)
	if err != nil {
		return nil, err
	}
	rect, err := form2.Rectangle(2*r, c2c, true, [4]bool{extend, extend, extend, extend}, eps)
	if err != nil {
		return nil, err
	}
	return sdf.Union2D(
		sdf.Transform2D(circle, sdf.Translate2D(r2.Vec{Y: -c2c / 2})),
		rect,
		sdf.Transform2D(circle, sdf.Translate2D(r2.Vec{Y: c2c / 2})),
	), nil
}

// buildSweep revolves and extrudes the cross-section of the hole.
func (b *bore) buildSweep(ctx sdf.Context) (sdf.SDF3, error) {
	z0, err := b.Alignment.offset(b.height)
	if err != nil {
		return nil, err
	}
	profile, err := crossSection(ctx, b.Base, b.radius, b.height)
	if err != nil {
		return nil, err
	}
	return shift(sweep(profile, b.fragments(ctx, b.radius), b.c2c), z0), nil
}

// sweep turns the half cross-section profile into a slot with rounded ends
// c2c apart along y. With c2c == 0 the result is a single revolution.
func sweep(profile sdf.SDF2, facets int, c2c float64) sdf.SDF3 {
	end := sdf.WithConvexity(sdf.Revolve3D(profile, facets), 2)
	if c2c == 0 {
		return end
	}
	mid := sdf.Union2D(profile, sdf.Transform2D(profile, sdf.FlipX2D()))
	straight := sdf.Transform3D(sdf.WithConvexity(sdf.Extrude3D(mid, c2c), 4), sdf.RotateX(math.Pi/2))
	return sdf.Union3D(
		sdf.Transform3D(end, sdf.Translate3D(r3.Vec{Y: -c2c / 2})),
		sdf.Transform3D(end, sdf.Translate3D(r3.Vec{Y: c2c / 2})),
		straight,
	)
}

// shift moves s by dz along the hole axis.
func shift(s sdf.SDF3, dz float64) sdf.SDF3 {
	if dz == 0 {
		return s
	}
	return sdf.Transform3D(s, sdf.Translate3D(r3.Vec{Z: dz}))
}
