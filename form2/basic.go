package form2

import (
	"fmt"
	"runtime/debug"

	"github.com/soypat/sdfhole/form2/must2"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// catch converts a panic in a must2 constructor into an error.
func catch(err *error) {
	if a := recover(); a != nil {
		*err = &shapeErr{
			panicObj: a,
			stack:    string(debug.Stack()),
		}
	}
}

// Rect is a rectangle that exposes its nominal corners.
type Rect interface {
	sdf.SDF2
	Nodes() [4]r2.Vec
}

// Circle returns the SDF2 for a 2d circle, faceted when facets >= 3.
func Circle(radius float64, facets int) (s sdf.SDF2, err error) {
	defer catch(&err)
	return must2.Circle(radius, facets), err
}

// Rectangle returns a width by depth rectangle with per-side eps extension.
// See must2.Rectangle.
func Rectangle(width, depth float64, center bool, extend [4]bool, eps float64) (s Rect, err error) {
	defer catch(&err)
	return must2.Rectangle(width, depth, center, extend, eps), err
}

// Polygon returns an SDF2 made from a closed set of line segments.
func Polygon(vertex []r2.Vec) (s sdf.SDF2, err error) {
	defer catch(&err)
	return must2.Polygon(vertex), err
}
