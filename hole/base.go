// Package hole builds parametric hole features as solids meant to be
// subtracted from a part: plain, slotted, countersunk, counterdrilled and
// counterbored-slotted holes.
//
// Holes are built in a frame where z is the hole axis and a slot runs along y.
package hole

import (
	"github.com/soypat/sdfhole/sdf"
	"github.com/soypat/sdfhole/smooth"
)

// Feature is a hole that can be built into a solid.
type Feature interface {
	// Build returns the negative solid of the hole.
	Build(ctx sdf.Context) (sdf.SDF3, error)
	// Section returns the half cross-section of the hole in the xz plane
	// with z mapped to y, as it is revolved about the hole axis.
	Section(ctx sdf.Context) (sdf.SDF2, error)
}

// Base holds the settings shared by every kind of hole.
type Base struct {
	Alignment Alignment
	// ProfileTop and ProfileBottom smooth the edges the hole leaves on the
	// top and bottom faces of the part. Nil is the same as smooth.Rough.
	ProfileTop    smooth.Profile
	ProfileBottom smooth.Profile
	// ExtendTop, ExtendBottom and ExtendBoundary push the top face, the
	// bottom face and the wall of the hole outward by the context's eps.
	ExtendTop      bool
	ExtendBottom   bool
	ExtendBoundary bool
	// Fragment controls. Zero values inherit from the build context.
	Fa   float64
	Fs   float64
	Fn   int
	Fn4n bool
}

// DefaultBase returns a Base with alignment a that extends the top and
// bottom faces by eps.
func DefaultBase(a Alignment) Base {
	return Base{
		Alignment:    a,
		ExtendTop:    true,
		ExtendBottom: true,
	}
}

func (b Base) check() error {
	if !b.Alignment.valid() {
		return &ConfigError{Kind: ErrAlignment, Fields: []string{"alignment=" + b.Alignment.String()}}
	}
	return nil
}

func (b Base) resolution() sdf.Resolution {
	return sdf.Resolution{Fa: b.Fa, Fs: b.Fs, Fn: b.Fn, Fn4n: b.Fn4n}
}

// fragments returns the facet count of circles of radius r.
func (b Base) fragments(ctx sdf.Context, r float64) int {
	return ctx.Fragments(r, b.resolution())
}

func (b Base) profileTop() smooth.Profile {
	if b.ProfileTop == nil {
		return smooth.Rough{}
	}
	return b.ProfileTop
}

func (b Base) profileBottom() smooth.Profile {
	if b.ProfileBottom == nil {
		return smooth.Rough{}
	}
	return b.ProfileBottom
}

// rough reports whether neither end of the hole is smoothed.
func (b Base) rough() bool {
	return b.profileTop().IsRough() && b.profileBottom().IsRough()
}

func epsIf(ext bool, eps float64) float64 {
	if ext {
		return eps
	}
	return 0
}
