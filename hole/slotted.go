package hole

import (
	"github.com/soypat/sdfhole/sdf"
)

// HoleParams are the dimensions of a plain round hole.
// Exactly one of Radius and Diameter must be given.
type HoleParams struct {
	Height   *float64
	Radius   *float64
	Diameter *float64
}

// Hole is a plain round hole.
type Hole struct {
	bore
	diameter float64
}

// NewHole returns a round hole.
func NewHole(b Base, p HoleParams) (*Hole, error) {
	err := validate(newArgs(
		field{"height", p.Height},
		field{"radius", p.Radius},
		field{"diameter", p.Diameter},
	),
		exclusive([]string{"radius"}, []string{"diameter"}),
		required([]string{"height"}, []string{"radius", "diameter"}),
	)
	if err != nil {
		return nil, err
	}
	if err := b.check(); err != nil {
		return nil, err
	}
	r, d := input(p.Radius), input(p.Diameter)
	if err := radiusPair(&r, &d, [2]string{"radius", "diameter"}).resolve(); err != nil {
		return nil, err
	}
	return &Hole{
		bore:     bore{Base: b, height: *p.Height, radius: r.v},
		diameter: d.v,
	}, nil
}

// Height returns the depth of the hole.
func (h *Hole) Height() float64 { return h.height }

// Radius returns the radius of the hole.
func (h *Hole) Radius() float64 { return h.radius }

// Diameter returns the diameter of the hole.
func (h *Hole) Diameter() float64 { return h.diameter }

// Build returns the negative solid of the hole.
func (h *Hole) Build(ctx sdf.Context) (sdf.SDF3, error) { return h.build(ctx) }

// Section returns the half cross-section the hole is revolved from.
func (h *Hole) Section(ctx sdf.Context) (sdf.SDF2, error) { return h.section(ctx) }

// SlottedParams are the dimensions of a slotted hole. Exactly one of
// Radius and Diameter and exactly one of CenterToCenter and OverallLength
// must be given.
type SlottedParams struct {
	Height         *float64
	Radius         *float64
	Diameter       *float64
	CenterToCenter *float64
	OverallLength  *float64
}

// Slotted is a stadium shaped hole with its long axis along y.
type Slotted struct {
	bore
	diameter      float64
	overallLength float64
}

// NewSlotted returns a slotted hole. The missing dimensions are derived as
// diameter = 2*radius and overall length = center to center + diameter.
func NewSlotted(b Base, p SlottedParams) (*Slotted, error) {
	err := validate(newArgs(
		field{"height", p.Height},
		field{"radius", p.Radius},
		field{"diameter", p.Diameter},
		field{"center_to_center", p.CenterToCenter},
		field{"overall_length", p.OverallLength},
	),
		exclusive([]string{"radius"}, []string{"diameter"}),
		exclusive([]string{"center_to_center"}, []string{"overall_length"}),
		required([]string{"height"}, []string{"radius", "diameter"}, []string{"center_to_center", "overall_length"}),
	)
	if err != nil {
		return nil, err
	}
	if err := b.check(); err != nil {
		return nil, err
	}
	r, d := input(p.Radius), input(p.Diameter)
	c, l := input(p.CenterToCenter), input(p.OverallLength)
	err = resolveAll(
		radiusPair(&r, &d, [2]string{"radius", "diameter"}),
		lengthPair(&c, &l, &d),
	)
	if err != nil {
		return nil, err
	}
	return &Slotted{
		bore:          bore{Base: b, height: *p.Height, radius: r.v, c2c: c.v},
		diameter:      d.v,
		overallLength: l.v,
	}, nil
}

// Height returns the depth of the slot.
func (s *Slotted) Height() float64 { return s.height }

// Radius returns the radius of the rounded ends.
func (s *Slotted) Radius() float64 { return s.radius }

// Diameter returns the width of the slot.
func (s *Slotted) Diameter() float64 { return s.diameter }

// CenterToCenter returns the distance between the centers of the ends.
func (s *Slotted) CenterToCenter() float64 { return s.c2c }

// OverallLength returns the length of the slot from end to end.
func (s *Slotted) OverallLength() float64 { return s.overallLength }

// Build returns the negative solid of the slot.
func (s *Slotted) Build(ctx sdf.Context) (sdf.SDF3, error) { return s.build(ctx) }

// Section returns the half cross-section swept around the ends of the slot.
func (s *Slotted) Section(ctx sdf.Context) (sdf.SDF2, error) { return s.section(ctx) }
