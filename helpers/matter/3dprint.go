package matter

import (
	"fmt"
	"strings"
)

var (
	// PLA (polylactic acid) is the most widely used plastic filament material in 3D printing.
	PLA = ViscousMaterial{name: "pla", shrink: 0.2e-2, pullShrink: .45} // 0.2% shrinkage
	// ABS contracts more than PLA as it cools.
	ABS = ViscousMaterial{name: "abs", shrink: 0.7e-2, pullShrink: .45}
)

// ViscousMaterial models how a printed material shrinks into holes and
// other internal dimensions.
type ViscousMaterial struct {
	name string
	// shrink is the thermal contraction shrinkage of a material once the material
	// cools to room temperature after the heated bed is turned off.
	shrink float64
	// pullShrink takes into account viscoelastic shrinkage.
	pullShrink float64
}

// Lookup returns the material with the given name, ignoring case.
func Lookup(name string) (ViscousMaterial, error) {
	for _, m := range []ViscousMaterial{PLA, ABS} {
		if strings.EqualFold(name, m.name) {
			return m, nil
		}
	}
	return ViscousMaterial{}, fmt.Errorf("unknown material %q", name)
}

// Name returns the lowercase name of m.
func (m ViscousMaterial) Name() string { return m.name }

// InternalDimScale returns the design dimension that prints as an internal
// dimension (a bore diameter, a slot width) of size real.
func (m ViscousMaterial) InternalDimScale(real float64) float64 {
	if real <= 0 {
		panic("InternalDimScale only works for non-zero dimensions")
	}
	return real*(m.shrink+1) + m.pullShrink
}

// InternalRadiusScale is InternalDimScale for a radius. The viscous
// allowance applies to the full diameter.
func (m ViscousMaterial) InternalRadiusScale(real float64) float64 {
	return m.InternalDimScale(2*real) / 2
}
