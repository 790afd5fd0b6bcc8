// Package render tessellates solids and writes them as STL files, PNG
// previews and cross-section plots.
package render

import (
	"errors"
	"io"

	sdfxrender "github.com/deadsy/sdfx/render"
	sdfx "github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle with counterclockwise vertices seen from outside.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate reports whether two vertices of t are within tol of each other.
func (t Triangle3) Degenerate(tol float64) bool {
	return r3.Norm(r3.Sub(t.V[0], t.V[1])) <= tol ||
		r3.Norm(r3.Sub(t.V[1], t.V[2])) <= tol ||
		r3.Norm(r3.Sub(t.V[2], t.V[0])) <= tol
}

// Renderer streams the triangles of a tessellated model.
// ReadTriangles returns io.EOF once every triangle has been read.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// ErrEmpty is returned when a model has nothing to tessellate.
var ErrEmpty = errors.New("empty model")

// marchingCubes tessellates an SDF3 with uniform marching cubes on its
// first read.
type marchingCubes struct {
	s         sdf.SDF3
	meshCells int
	done      bool
	unwritten triangleQueue
}

// NewMarchingCubes returns a Renderer that tessellates s with meshCells
// cells along the longest side of its bounding box.
func NewMarchingCubes(s sdf.SDF3, meshCells int) Renderer {
	if meshCells < 2 {
		panic("meshCells must be 2 or larger")
	}
	return &marchingCubes{s: s, meshCells: meshCells}
}

// ReadTriangles writes triangles rendered from the model into dst.
func (m *marchingCubes) ReadTriangles(dst []Triangle3) (int, error) {
	if len(dst) == 0 {
		panic("cannot write to empty triangle slice")
	}
	if !m.done {
		m.done = true
		if sdf.IsEmpty(m.s) {
			return 0, ErrEmpty
		}
		for _, tri := range sdfxrender.ToTriangles(solid{m.s}, sdfxrender.NewMarchingCubesUniform(m.meshCells)) {
			var t Triangle3
			for j := 0; j < 3; j++ {
				v := tri[j]
				t.V[j] = r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
			}
			if t.Degenerate(0) || r3.Norm(r3.Cross(r3.Sub(t.V[1], t.V[0]), r3.Sub(t.V[2], t.V[0]))) == 0 {
				continue
			}
			m.unwritten.push(t)
		}
	}
	if m.unwritten.len() == 0 {
		return 0, io.EOF
	}
	return m.unwritten.pop(dst), nil
}

// solid presents an sdf.SDF3 to the sdfx renderer. The bounding box is
// grown slightly so faces on the bounds are closed.
type solid struct {
	s sdf.SDF3
}

func (s solid) Evaluate(p v3.Vec) float64 {
	return s.s.Evaluate(r3.Vec{X: p.X, Y: p.Y, Z: p.Z})
}

func (s solid) BoundingBox() sdfx.Box3 {
	bb := s.s.Bounds()
	pad := 0.01 * r3.Norm(r3.Sub(bb.Max, bb.Min))
	return sdfx.Box3{
		Min: v3.Vec{X: bb.Min.X - pad, Y: bb.Min.Y - pad, Z: bb.Min.Z - pad},
		Max: v3.Vec{X: bb.Max.X + pad, Y: bb.Max.Y + pad, Z: bb.Max.Z + pad},
	}
}
