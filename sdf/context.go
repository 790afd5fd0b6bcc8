package sdf

import "math"

// Default values for a Context. Fa and Fs match OpenSCAD's defaults.
const (
	DefaultEps = 1e-2
	DefaultFa  = 12
	DefaultFs  = 2
)

// gridFine is the radius below which circles collapse to triangles.
const gridFine = 0.00000095367431640625

// Context holds the settings shared by every shape built in one pass:
// the epsilon used to extend faces for clean boolean operations and
// the default circle fragmentation policy.
type Context struct {
	// Eps is the distance faces are pushed out by when eps-extended.
	Eps float64
	// Fa is the minimum fragment angle in degrees.
	Fa float64
	// Fs is the minimum fragment length.
	Fs float64
	// Fn, when positive, fixes the number of fragments.
	Fn int
	// Fn4n rounds fragment counts up to a multiple of 4.
	Fn4n bool
}

// DefaultContext returns the context used when none is configured.
func DefaultContext() Context {
	return Context{Eps: DefaultEps, Fa: DefaultFa, Fs: DefaultFs}
}

// Resolution overrides the context's fragmentation policy for one shape.
// Zero fields are inherited from the Context.
type Resolution struct {
	Fa   float64
	Fs   float64
	Fn   int
	Fn4n bool
}

// Fragments returns the number of fragments used to approximate a circle
// of radius r under res, falling back to the Context's policy.
// Fixed counts (Fn) take precedence over Fa and Fs. When Fn4n applies
// the count is rounded up to a multiple of 4 so that vertices land on
// both axes.
func (c Context) Fragments(r float64, res Resolution) int {
	fa := firstPositive(res.Fa, c.Fa, DefaultFa)
	fs := firstPositive(res.Fs, c.Fs, DefaultFs)
	fn := res.Fn
	if fn <= 0 {
		fn = c.Fn
	}
	n := fragments(r, fa, fs, fn)
	if res.Fn4n || (c.Fn4n && res.Fn <= 0) {
		n = 4 * ((n + 3) / 4)
	}
	return n
}

// fragments mirrors OpenSCAD's get_fragments_from_r.
func fragments(r, fa, fs float64, fn int) int {
	if r < gridFine {
		return 3
	}
	if fn > 0 {
		if fn < 3 {
			return 3
		}
		return fn
	}
	return int(math.Ceil(math.Max(math.Min(360/fa, r*tau/fs), 5)))
}

func firstPositive(v ...float64) float64 {
	for _, x := range v {
		if x > 0 {
			return x
		}
	}
	return 0
}
