package hole

import (
	"fmt"

	"github.com/soypat/sdfhole/form2"
	"github.com/soypat/sdfhole/form3"
	"github.com/soypat/sdfhole/sdf"
	"github.com/soypat/sdfhole/smooth"
)

// compound is a bore widened near its top face by a cylinder of radius
// outer and height depth above a frustum of height taper.
type compound struct {
	Base
	height float64
	radius float64
	c2c    float64
	outer  float64
	depth  float64
	taper  float64
	angle  float64 // full angle of the frustum in degrees, 0 or 180 for a flat step
}

func (c *compound) check() error {
	if err := c.Base.check(); err != nil {
		return err
	}
	if err := c.primary().check(); err != nil {
		return err
	}
	switch {
	case !(c.outer > c.radius):
		return fmt.Errorf("outer radius %g not larger than radius %g: %w", c.outer, c.radius, ErrGeometry)
	case c.angle < 0 || c.angle > 180:
		return fmt.Errorf("angle %g outside [0,180]: %w", c.angle, ErrGeometry)
	case c.depth < 0:
		return fmt.Errorf("depth %g: %w", c.depth, ErrGeometry)
	case c.taper < 0:
		return fmt.Errorf("frustum height %g: %w", c.taper, ErrGeometry)
	case c.depth+c.taper > c.height:
		return fmt.Errorf("depth %g and frustum height %g exceed height %g: %w", c.depth, c.taper, c.height, ErrGeometry)
	case c.depth+c.taper == 0:
		return fmt.Errorf("zero depth and frustum height: %w", ErrGeometry)
	}
	return nil
}

// primary returns the bore through the full height, bottom aligned. Its top
// is extended so it overlaps the wider part.
func (c *compound) primary() *bore {
	b := c.Base
	b.Alignment = Bottom
	b.ProfileTop = smooth.Rough{}
	b.ExtendTop = true
	return &bore{Base: b, height: c.height, radius: c.radius, c2c: c.c2c}
}

// build stacks the wider part on the bore and aligns the result.
func (c *compound) build(ctx sdf.Context) (sdf.SDF3, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	z0, err := c.Alignment.offset(c.height)
	if err != nil {
		return nil, err
	}
	primary, err := c.primary().build(ctx)
	if err != nil {
		return nil, err
	}
	secondary, err := c.secondary(ctx)
	if err != nil {
		return nil, err
	}
	return shift(sdf.Union3D(primary, secondary), z0), nil
}

func (c *compound) secondary(ctx sdf.Context) (sdf.SDF3, error) {
	n := c.fragments(ctx, c.outer)
	if c.c2c == 0 && c.profileTop().IsRough() {
		return c.solidSecondary(ctx, n)
	}
	section, err := stepSection(ctx, c.Base, c.radius, c.outer, c.height, c.depth, c.taper)
	if err != nil {
		return nil, err
	}
	return sweep(section, n, c.c2c), nil
}

// solidSecondary builds the wider part of a round hole from a cylinder and a
// frustum. A zero depth leaves an empty cylinder.
func (c *compound) solidSecondary(ctx sdf.Context, n int) (sdf.SDF3, error) {
	eps := ctx.Eps
	wall := epsIf(c.ExtendBoundary, eps)
	z := c.height - c.depth
	circle, err := form2.Circle(c.outer+wall, n)
	if err != nil {
		return nil, err
	}
	drill := sdf.ExtrudeRange3D(circle, z, c.height+epsIf(c.ExtendTop, eps))
	if c.taper == 0 {
		return drill, nil
	}
	sink, err := form3.Frustum(c.taper, c.radius+wall, c.outer+wall, n)
	if err != nil {
		return nil, err
	}
	return sdf.Union3D(shift(sink, z-c.taper/2), drill), nil
}

func (c *compound) section(ctx sdf.Context) (sdf.SDF2, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	inner, err := c.primary().section(ctx)
	if err != nil {
		return nil, err
	}
	step, err := stepSection(ctx, c.Base, c.radius, c.outer, c.height, c.depth, c.taper)
	if err != nil {
		return nil, err
	}
	return sdf.Union2D(inner, step), nil
}
