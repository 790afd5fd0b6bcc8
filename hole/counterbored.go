package hole

import (
	"github.com/soypat/sdfhole/sdf"
)

// CounterboredSlottedParams are the dimensions of a counterbored slot.
// Exactly one of each radius and diameter pair and exactly one of
// CenterToCenter and OverallLength must be given. A nil, 0 or 180 degree
// CounterboreAngle makes a flat step between the counterbore and the slot.
type CounterboredSlottedParams struct {
	Height              *float64
	Radius              *float64
	Diameter            *float64
	CounterboreRadius   *float64
	CounterboreDiameter *float64
	CounterboreHeight   *float64
	CounterboreAngle    *float64
	CenterToCenter      *float64
	OverallLength       *float64
}

// CounterboredSlotted is a slotted hole widened near its top by a wider
// slot with the same centers.
type CounterboredSlotted struct {
	compound
	diameter      float64
	boreDiameter  float64
	overallLength float64
}

// NewCounterboredSlotted returns a counterbored slot. The overall length
// refers to the narrow slot.
func NewCounterboredSlotted(b Base, p CounterboredSlottedParams) (*CounterboredSlotted, error) {
	err := validate(newArgs(
		field{"height", p.Height},
		field{"radius", p.Radius},
		field{"diameter", p.Diameter},
		field{"counterbore_radius", p.CounterboreRadius},
		field{"counterbore_diameter", p.CounterboreDiameter},
		field{"counterbore_height", p.CounterboreHeight},
		field{"counterbore_angle", p.CounterboreAngle},
		field{"center_to_center", p.CenterToCenter},
		field{"overall_length", p.OverallLength},
	),
		exclusive([]string{"radius"}, []string{"diameter"}),
		exclusive([]string{"counterbore_radius"}, []string{"counterbore_diameter"}),
		exclusive([]string{"center_to_center"}, []string{"overall_length"}),
		required([]string{"height", "counterbore_height"},
			[]string{"radius", "diameter"},
			[]string{"counterbore_radius", "counterbore_diameter"},
			[]string{"center_to_center", "overall_length"}),
	)
	if err != nil {
		return nil, err
	}
	if err := b.check(); err != nil {
		return nil, err
	}
	r, d := input(p.Radius), input(p.Diameter)
	R, D := input(p.CounterboreRadius), input(p.CounterboreDiameter)
	c, l := input(p.CenterToCenter), input(p.OverallLength)
	err = resolveAll(
		radiusPair(&r, &d, [2]string{"radius", "diameter"}),
		radiusPair(&R, &D, [2]string{"counterbore_radius", "counterbore_diameter"}),
		lengthPair(&c, &l, &d),
	)
	if err != nil {
		return nil, err
	}
	s := &CounterboredSlotted{
		compound: compound{
			Base:   b,
			height: *p.Height,
			radius: r.v,
			c2c:    c.v,
			outer:  R.v,
			depth:  *p.CounterboreHeight,
		},
		diameter:      d.v,
		boreDiameter:  D.v,
		overallLength: l.v,
	}
	if p.CounterboreAngle != nil {
		s.angle = *p.CounterboreAngle
		s.taper = frustumHeight(R.v-r.v, s.angle)
	}
	return s, nil
}

// Height returns the depth of the slot.
func (s *CounterboredSlotted) Height() float64 { return s.height }

// Radius returns the radius of the ends of the narrow slot.
func (s *CounterboredSlotted) Radius() float64 { return s.radius }

// Diameter returns the width of the narrow slot.
func (s *CounterboredSlotted) Diameter() float64 { return s.diameter }

// CounterboreRadius returns the radius of the ends of the counterbore.
func (s *CounterboredSlotted) CounterboreRadius() float64 { return s.outer }

// CounterboreDiameter returns the width of the counterbore.
func (s *CounterboredSlotted) CounterboreDiameter() float64 { return s.boreDiameter }

// CounterboreHeight returns the depth of the counterbore.
func (s *CounterboredSlotted) CounterboreHeight() float64 { return s.depth }

// CounterboreAngle returns the full angle of the transition below the
// counterbore in degrees, 0 for a flat step.
func (s *CounterboredSlotted) CounterboreAngle() float64 { return s.angle }

// CenterToCenter returns the distance between the centers of the ends.
func (s *CounterboredSlotted) CenterToCenter() float64 { return s.c2c }

// OverallLength returns the length of the narrow slot from end to end.
func (s *CounterboredSlotted) OverallLength() float64 { return s.overallLength }

// Build returns the negative solid of the counterbored slot.
func (s *CounterboredSlotted) Build(ctx sdf.Context) (sdf.SDF3, error) { return s.build(ctx) }

// Section returns the half cross-section swept around the ends of the slot.
func (s *CounterboredSlotted) Section(ctx sdf.Context) (sdf.SDF2, error) { return s.section(ctx) }
