package hole

import (
	"math"

	"github.com/soypat/sdfhole/sdf"
)

// cell is a value that is either unresolved or resolved exactly once.
type cell struct {
	v  float64
	ok bool
}

func input(p *float64) cell {
	if p == nil {
		return cell{}
	}
	return cell{v: *p, ok: true}
}

func (c *cell) set(v float64) {
	if !c.ok {
		c.v, c.ok = v, true
	}
}

// pair binds two cells where each can be computed from the other.
type pair struct {
	a, b         *cell
	names        [2]string
	forward, inv func(float64) float64
}

// resolve fills whichever cell of p is unresolved.
func (p pair) resolve() error {
	switch {
	case p.a.ok && p.b.ok:
		return &ConfigError{Kind: ErrExclusive, Fields: p.names[:]}
	case p.a.ok:
		p.b.set(p.forward(p.a.v))
	case p.b.ok:
		p.a.set(p.inv(p.b.v))
	default:
		return &ConfigError{Kind: ErrRequired, Fields: []string{joinOr(p.names[:])}}
	}
	return nil
}

func resolveAll(pairs ...pair) error {
	for _, p := range pairs {
		if err := p.resolve(); err != nil {
			return err
		}
	}
	return nil
}

// radiusPair derives the diameter from the radius or vice versa.
func radiusPair(radius, diameter *cell, names [2]string) pair {
	return pair{
		a: radius, b: diameter, names: names,
		forward: func(r float64) float64 { return 2 * r },
		inv:     func(d float64) float64 { return d / 2 },
	}
}

// lengthPair derives the overall length of a slot from its center to center
// distance or vice versa. diameter must be resolved first.
func lengthPair(c2c, overall, diameter *cell) pair {
	return pair{
		a: c2c, b: overall, names: [2]string{"center_to_center", "overall_length"},
		forward: func(c float64) float64 { return c + diameter.v },
		inv:     func(l float64) float64 { return l - diameter.v },
	}
}

// frustumPair relates the full angle (degrees) of a cone to its height,
// given the radii at both of its ends. Both radii must be resolved first.
func frustumPair(angle, height, r0, r1 *cell, names [2]string) pair {
	return pair{
		a: angle, b: height, names: names,
		forward: func(a float64) float64 { return frustumHeight(r1.v-r0.v, a) },
		inv:     func(h float64) float64 { return frustumAngle(r1.v-r0.v, h) },
	}
}

// frustumHeight returns the height of a cone of full angle angle (degrees)
// whose radius grows by dr. At 0 and 180 degrees the cone collapses into a
// flat step of height 0.
func frustumHeight(dr, angle float64) float64 {
	if angle == 0 || angle == 180 {
		return 0
	}
	return dr / math.Tan(sdf.DtoR(angle)/2)
}

// frustumAngle is the inverse of frustumHeight.
func frustumAngle(dr, height float64) float64 {
	if height == 0 {
		return 180
	}
	return 2 * sdf.RtoD(math.Atan2(dr, height))
}

// Float returns a pointer to v, for optional parameters.
func Float(v float64) *float64 { return &v }
