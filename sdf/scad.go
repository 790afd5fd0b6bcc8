package sdf

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// SCADAppender is implemented by shapes that can describe themselves
// as OpenSCAD source. AppendSCAD appends a single statement to b.
type SCADAppender interface {
	AppendSCAD(b []byte) ([]byte, error)
}

// ErrNoSCAD is returned when a shape in a tree has no OpenSCAD description.
var ErrNoSCAD = errors.New("shape has no OpenSCAD description")

// AppendSCAD appends the OpenSCAD statement describing s to b.
// Empty shapes append nothing.
func AppendSCAD(b []byte, s any) ([]byte, error) {
	if isEmpty(s) {
		return b, nil
	}
	a, ok := s.(SCADAppender)
	if !ok {
		return b, fmt.Errorf("%T: %w", s, ErrNoSCAD)
	}
	return a.AppendSCAD(b)
}

// WriteSCAD writes s to w as an indented OpenSCAD program.
func WriteSCAD(w io.Writer, s SDF3) error {
	b, err := AppendSCAD(nil, s)
	if err != nil {
		return err
	}
	_, err = w.Write(indentSCAD(b))
	return err
}

// AppendFloat appends the shortest representation of v that OpenSCAD parses back exactly.
func AppendFloat(b []byte, v float64) []byte {
	if v == 0 {
		v = 0 // drop negative zero.
	}
	return strconv.AppendFloat(b, v, 'g', -1, 64)
}

// AppendVec appends an OpenSCAD vector literal.
func AppendVec(b []byte, v ...float64) []byte {
	b = append(b, '[')
	for i := range v {
		if i > 0 {
			b = append(b, ',')
		}
		b = AppendFloat(b, v[i])
	}
	return append(b, ']')
}

// indentSCAD breaks statements and blocks into indented lines.
func indentSCAD(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(src)/4)
	depth := 0
	lineStart := true
	for _, c := range src {
		if c == '}' {
			depth--
		}
		if lineStart {
			for i := 0; i < depth; i++ {
				out = append(out, '\t')
			}
			lineStart = false
		}
		out = append(out, c)
		switch c {
		case '{':
			depth++
			fallthrough
		case ';', '}':
			out = append(out, '\n')
			lineStart = true
		}
	}
	return out
}

func appendBlock[T any](b []byte, op string, children []T) ([]byte, error) {
	var err error
	b = append(b, op...)
	b = append(b, "(){"...)
	for _, c := range children {
		b, err = AppendSCAD(b, c)
		if err != nil {
			return b, err
		}
	}
	return append(b, '}'), nil
}

func (s *transform2) AppendSCAD(b []byte) ([]byte, error) {
	lin := s.t.m.Linear()
	t := s.t.m.Translation()
	switch lin {
	case [4]float64{1, 0, 0, 1}:
		b = append(b, "translate("...)
		b = AppendVec(b, t.X, t.Y)
	case [4]float64{-1, 0, 0, 1}, [4]float64{1, 0, 0, -1}:
		if t != (r2.Vec{}) {
			b = append(b, "translate("...)
			b = AppendVec(b, t.X, t.Y)
			b = append(b, ") "...)
		}
		b = append(b, "mirror("...)
		if lin[0] < 0 {
			b = AppendVec(b, 1, 0)
		} else {
			b = AppendVec(b, 0, 1)
		}
	default:
		b = append(b, "multmatrix(m=["...)
		b = AppendVec(b, lin[0], lin[1], 0, t.X)
		b = append(b, ',')
		b = AppendVec(b, lin[2], lin[3], 0, t.Y)
		b = append(b, ",[0,0,1,0],[0,0,0,1]]"...)
	}
	b = append(b, ") "...)
	return AppendSCAD(b, s.sdf)
}

func (s *union2) AppendSCAD(b []byte) ([]byte, error) {
	return appendBlock(b, "union", s.sdf)
}

func (s *diff2) AppendSCAD(b []byte) ([]byte, error) {
	return appendBlock(b, "difference", append([]SDF2{s.s0}, s.s1...))
}

func (s *transform3) AppendSCAD(b []byte) ([]byte, error) {
	m := s.t.m.SliceCopy()
	for i := range m {
		if math.Abs(m[i]) < tolerance {
			m[i] = 0 // rotations by right angles leave rounding residue.
		}
	}
	if m[0] == 1 && m[5] == 1 && m[10] == 1 && m[1] == 0 && m[2] == 0 &&
		m[4] == 0 && m[6] == 0 && m[8] == 0 && m[9] == 0 {
		b = append(b, "translate("...)
		b = AppendVec(b, m[3], m[7], m[11])
	} else {
		b = append(b, "multmatrix(m=["...)
		for row := 0; row < 4; row++ {
			if row > 0 {
				b = append(b, ',')
			}
			b = AppendVec(b, m[4*row:4*row+4]...)
		}
		b = append(b, ']')
	}
	b = append(b, ") "...)
	return AppendSCAD(b, s.sdf)
}

func (s *extrude3) AppendSCAD(b []byte) ([]byte, error) {
	height := s.z1 - s.z0
	center := s.z0 == -s.z1
	if !center && s.z0 != 0 {
		b = append(b, "translate("...)
		b = AppendVec(b, 0, 0, s.z0)
		b = append(b, ") "...)
	}
	b = append(b, "linear_extrude(height="...)
	b = AppendFloat(b, height)
	if center {
		b = append(b, ",center=true"...)
	}
	if s.convexity > 0 {
		b = append(b, ",convexity="...)
		b = strconv.AppendInt(b, int64(s.convexity), 10)
	}
	b = append(b, ") "...)
	return AppendSCAD(b, s.sdf)
}

func (s *revolution3) AppendSCAD(b []byte) ([]byte, error) {
	b = append(b, "rotate_extrude("...)
	sep := ""
	if s.convexity > 0 {
		b = append(b, "convexity="...)
		b = strconv.AppendInt(b, int64(s.convexity), 10)
		sep = ","
	}
	if s.facets > 0 {
		b = append(b, sep...)
		b = append(b, "$fn="...)
		b = strconv.AppendInt(b, int64(s.facets), 10)
	}
	b = append(b, ") "...)
	return AppendSCAD(b, s.sdf)
}

func (s *union3) AppendSCAD(b []byte) ([]byte, error) {
	if !s.compound {
		return appendBlock(b, "union", s.sdf)
	}
	var err error
	for _, c := range s.sdf {
		b, err = AppendSCAD(b, c)
		if err != nil {
			return b, err
		}
	}
	return b, nil
}

func (s *diff3) AppendSCAD(b []byte) ([]byte, error) {
	return appendBlock(b, "difference", append([]SDF3{s.s0}, s.s1...))
}
