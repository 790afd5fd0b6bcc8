package form3

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/sdfhole/form3/must3"
	"github.com/soypat/sdfhole/sdf"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

func catch(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

// Cylinder return an SDF3 for a faceted cylinder centered on the origin.
func Cylinder(height, radius float64, facets int) (s sdf.SDF3, err error) {
	defer catch(&err)
	return must3.Cylinder(height, radius, facets), err
}

// Frustum returns the SDF3 for a faceted truncated cone centered on the origin,
// of radius r0 at its base and r1 at its top.
func Frustum(height, r0, r1 float64, facets int) (s sdf.SDF3, err error) {
	defer catch(&err)
	return must3.Frustum(height, r0, r1, facets), err
}
