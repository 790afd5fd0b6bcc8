package hole

import (
	"github.com/soypat/sdfhole/sdf"
)

// CounterdrilledParams are the dimensions of a counterdrilled hole.
// Exactly one of each radius and diameter pair must be given. At most one
// of CountersinkAngle and CountersinkHeight may be given; with neither the
// countersink angle is 90 degrees. A CountersinkAngle of 0 or 180 degrees or
// a CountersinkHeight of 0 leaves a flat step below the counterdrill, which
// then must have a positive CounterdrillHeight.
type CounterdrilledParams struct {
	Height              *float64
	Radius              *float64
	Diameter            *float64
	CountersinkRadius   *float64
	CountersinkDiameter *float64
	CountersinkAngle    *float64
	CountersinkHeight   *float64
	CounterdrillHeight  *float64
}

// Counterdrilled is a round hole with a countersink below a wider drilled
// section at its top.
type Counterdrilled struct {
	compound
	diameter     float64
	sinkDiameter float64
}

// NewCounterdrilled returns a counterdrilled hole.
func NewCounterdrilled(b Base, p CounterdrilledParams) (*Counterdrilled, error) {
	err := validate(newArgs(
		field{"height", p.Height},
		field{"radius", p.Radius},
		field{"diameter", p.Diameter},
		field{"countersink_radius", p.CountersinkRadius},
		field{"countersink_diameter", p.CountersinkDiameter},
		field{"countersink_angle", p.CountersinkAngle},
		field{"countersink_height", p.CountersinkHeight},
		field{"counterdrill_height", p.CounterdrillHeight},
	),
		exclusive([]string{"radius"}, []string{"diameter"}),
		exclusive([]string{"countersink_radius"}, []string{"countersink_diameter"}),
		exclusive([]string{"countersink_angle"}, []string{"countersink_height"}),
		required([]string{"height", "counterdrill_height"},
			[]string{"radius", "diameter"},
			[]string{"countersink_radius", "countersink_diameter"}),
	)
	if err != nil {
		return nil, err
	}
	if err := b.check(); err != nil {
		return nil, err
	}
	r, d := input(p.Radius), input(p.Diameter)
	R, D := input(p.CountersinkRadius), input(p.CountersinkDiameter)
	angle, taper := input(p.CountersinkAngle), input(p.CountersinkHeight)
	if !angle.ok && !taper.ok {
		angle.set(90)
	}
	err = resolveAll(
		radiusPair(&r, &d, [2]string{"radius", "diameter"}),
		radiusPair(&R, &D, [2]string{"countersink_radius", "countersink_diameter"}),
		frustumPair(&angle, &taper, &r, &R, [2]string{"countersink_angle", "countersink_height"}),
	)
	if err != nil {
		return nil, err
	}
	return &Counterdrilled{
		compound: compound{
			Base:   b,
			height: *p.Height,
			radius: r.v,
			outer:  R.v,
			depth:  *p.CounterdrillHeight,
			taper:  taper.v,
			angle:  angle.v,
		},
		diameter:     d.v,
		sinkDiameter: D.v,
	}, nil
}

// Height returns the depth of the hole.
func (c *Counterdrilled) Height() float64 { return c.height }

// Radius returns the radius of the bore.
func (c *Counterdrilled) Radius() float64 { return c.radius }

// Diameter returns the diameter of the bore.
func (c *Counterdrilled) Diameter() float64 { return c.diameter }

// CountersinkRadius returns the radius at the wide end of the countersink,
// which is also the radius of the counterdrill.
func (c *Counterdrilled) CountersinkRadius() float64 { return c.outer }

// CountersinkDiameter returns twice CountersinkRadius.
func (c *Counterdrilled) CountersinkDiameter() float64 { return c.sinkDiameter }

// CountersinkAngle returns the full angle of the countersink in degrees.
func (c *Counterdrilled) CountersinkAngle() float64 { return c.angle }

// CountersinkHeight returns the height of the countersink cone.
func (c *Counterdrilled) CountersinkHeight() float64 { return c.taper }

// CounterdrillHeight returns the depth of the counterdrill.
func (c *Counterdrilled) CounterdrillHeight() float64 { return c.depth }

// Build returns the negative solid of the hole.
func (c *Counterdrilled) Build(ctx sdf.Context) (sdf.SDF3, error) { return c.build(ctx) }

// Section returns the half cross-section of the hole.
func (c *Counterdrilled) Section(ctx sdf.Context) (sdf.SDF2, error) { return c.section(ctx) }

// CountersunkParams are the dimensions of a countersunk hole, with the same
// rules as CounterdrilledParams.
type CountersunkParams struct {
	Height              *float64
	Radius              *float64
	Diameter            *float64
	CountersinkRadius   *float64
	CountersinkDiameter *float64
	CountersinkAngle    *float64
	CountersinkHeight   *float64
}

// Countersunk is a counterdrilled hole without the drilled section.
type Countersunk struct {
	Counterdrilled
}

// NewCountersunk returns a countersunk hole.
func NewCountersunk(b Base, p CountersunkParams) (*Countersunk, error) {
	c, err := NewCounterdrilled(b, CounterdrilledParams{
		Height:              p.Height,
		Radius:              p.Radius,
		Diameter:            p.Diameter,
		CountersinkRadius:   p.CountersinkRadius,
		CountersinkDiameter: p.CountersinkDiameter,
		CountersinkAngle:    p.CountersinkAngle,
		CountersinkHeight:   p.CountersinkHeight,
		CounterdrillHeight:  Float(0),
	})
	if err != nil {
		return nil, err
	}
	return &Countersunk{Counterdrilled: *c}, nil
}
