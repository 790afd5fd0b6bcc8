// Package smooth builds the 2D geometry that rounds or bevels a corner of
// a cross-section outline before it is extruded or revolved.
package smooth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrParams is returned for corners or profiles that cannot be smoothed.
var ErrParams = errors.New("invalid smoothing parameters")

// Profile creates the geometry that smooths one corner of an outline.
// The negative, when not nil, is subtracted from the outline and the
// positive, when not nil, is added to it. Both are in the outline's frame.
type Profile interface {
	CreateSmoothProfiles(p Params) (negative, positive sdf.SDF2, err error)
	// IsRough reports whether the profile leaves every corner untouched.
	IsRough() bool
}

// Params describes a corner of an outline.
//
// The two edges of the corner leave Position in the directions
// NormalAngle-InnerAngle/2 (edge 1) and NormalAngle+InnerAngle/2 (edge 2).
type Params struct {
	// InnerAngle is the angle in degrees between the two edges, measured
	// inside the outline.
	InnerAngle float64
	// NormalAngle is the direction in degrees of the bisector of the
	// corner, pointing into the outline.
	NormalAngle float64
	// Position is the corner.
	Position r2.Vec
	// Edge1Extended and Edge2Extended report whether the face of each edge
	// is extended by eps for a clean boolean operation.
	Edge1Extended bool
	Edge2Extended bool
	// Context gives eps and the fragment policy for arcs.
	Context    sdf.Context
	Resolution sdf.Resolution
}

func (p Params) validate() error {
	if !(p.InnerAngle > 0 && p.InnerAngle < 180) {
		return fmt.Errorf("inner angle %g outside (0,180): %w", p.InnerAngle, ErrParams)
	}
	if p.Context.Eps < 0 {
		return fmt.Errorf("negative eps %g: %w", p.Context.Eps, ErrParams)
	}
	return nil
}

// Side selects where a fillet or chamfer is placed relative to a corner.
type Side int

const (
	// SideInner smooths the corner itself by cutting the outline.
	SideInner Side = iota
	// SideEdge1 smooths the corner formed by edge 1 and the extension of
	// edge 2 by adding to the outline.
	SideEdge1
	// SideEdge2 smooths the corner formed by edge 2 and the extension of
	// edge 1 by adding to the outline.
	SideEdge2
)

func (s Side) String() string {
	switch s {
	case SideInner:
		return "inner"
	case SideEdge1:
		return "edge1"
	case SideEdge2:
		return "edge2"
	}
	return "Side(" + strconv.Itoa(int(s)) + ")"
}

// UnmarshalText accepts the names returned by String and the numbers 0, 1 and 2.
func (s *Side) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "inner", "0":
		*s = SideInner
	case "edge1", "1":
		*s = SideEdge1
	case "edge2", "2":
		*s = SideEdge2
	default:
		return fmt.Errorf("unknown side %q: %w", text, ErrParams)
	}
	return nil
}

// Rough leaves corners sharp.
type Rough struct{}

// CreateSmoothProfiles returns no geometry.
func (Rough) CreateSmoothProfiles(Params) (negative, positive sdf.SDF2, err error) {
	return nil, nil, nil
}

// IsRough returns true.
func (Rough) IsRough() bool { return true }

// IsRough reports whether p is nil or a rough profile.
func IsRough(p Profile) bool {
	return p == nil || p.IsRough()
}
