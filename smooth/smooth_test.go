package smooth

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

const tol = 1e-9

func TestRough(t *testing.T) {
	var p Profile = Rough{}
	if !p.IsRough() || !IsRough(p) || !IsRough(nil) {
		t.Fatal("rough profile not reported as rough")
	}
	neg, pos, err := p.CreateSmoothProfiles(Params{InnerAngle: 90, NormalAngle: 45})
	if err != nil || neg != nil || pos != nil {
		t.Fatalf("rough profile returned geometry: %v %v %v", neg, pos, err)
	}
	if IsRough(Fillet{Radius: 1}) || IsRough(Chamfer{SkewLength: 1}) {
		t.Fatal("fillet or chamfer reported as rough")
	}
}

func TestFilletOutsideCorner(t *testing.T) {
	p := Params{
		InnerAngle:  90,
		NormalAngle: 225,
		Position:    r2.Vec{X: 1, Y: 2},
		Context:     sdf.Context{Fn: 64},
	}
	neg, pos, err := Fillet{Radius: 0.5, Side: SideEdge2}.CreateSmoothProfiles(p)
	if err != nil {
		t.Fatal(err)
	}
	if neg != nil || pos == nil {
		t.Fatalf("want positive only, got negative=%v positive=%v", neg, pos)
	}
	bb := pos.Bounds()
	want := r2.Box{Min: r2.Vec{X: 1, Y: 1.5}, Max: r2.Vec{X: 1.5, Y: 2}}
	if !boxEqual(bb, want) {
		t.Errorf("bounds %v, want %v", bb, want)
	}
	if d := pos.Evaluate(r2.Vec{X: 1.05, Y: 1.95}); d >= 0 {
		t.Errorf("point between corner and arc is outside: %g", d)
	}
	if d := pos.Evaluate(r2.Vec{X: 1.4, Y: 1.6}); d <= 0 {
		t.Errorf("point beyond arc is inside: %g", d)
	}
}

func TestChamferInnerCorner(t *testing.T) {
	p := Params{InnerAngle: 90, NormalAngle: 45}
	neg, pos, err := Chamfer{SkewLength: math.Sqrt2, Side: SideInner}.CreateSmoothProfiles(p)
	if err != nil {
		t.Fatal(err)
	}
	if neg == nil || pos != nil {
		t.Fatalf("want negative only, got negative=%v positive=%v", neg, pos)
	}
	want := r2.Box{Max: r2.Vec{X: 1, Y: 1}}
	if !boxEqual(neg.Bounds(), want) {
		t.Errorf("bounds %v, want %v", neg.Bounds(), want)
	}
	for _, test := range []struct {
		p      r2.Vec
		inside bool
	}{
		{p: r2.Vec{X: 0.2, Y: 0.2}, inside: true},
		{p: r2.Vec{X: 0.6, Y: 0.6}, inside: false},
		{p: r2.Vec{X: -0.1, Y: 0.2}, inside: false},
	} {
		if got := neg.Evaluate(test.p) < 0; got != test.inside {
			t.Errorf("point %v inside=%v, want %v", test.p, got, test.inside)
		}
	}
}

func TestChamferEpsExtension(t *testing.T) {
	p := Params{
		InnerAngle:    90,
		NormalAngle:   45,
		Edge1Extended: true,
		Context:       sdf.Context{Eps: 0.1},
	}
	neg, _, err := Chamfer{SkewLength: math.Sqrt2}.CreateSmoothProfiles(p)
	if err != nil {
		t.Fatal(err)
	}
	bb := neg.Bounds()
	want := r2.Box{Min: r2.Vec{Y: -0.1}, Max: r2.Vec{X: 1, Y: 1}}
	if !boxEqual(bb, want) {
		t.Errorf("bounds %v, want %v", bb, want)
	}
	// Edge 2 is not extended.
	if bb.Min.X < -tol {
		t.Errorf("edge 2 extended: %v", bb)
	}
}

func TestChamferSides(t *testing.T) {
	// Corner at the origin with edges along +y (edge 1) and -x (edge 2).
	p := Params{InnerAngle: 90, NormalAngle: 135}
	for _, test := range []struct {
		side Side
		want r2.Box
	}{
		{side: SideInner, want: r2.Box{Min: r2.Vec{X: -1}, Max: r2.Vec{Y: 1}}},
		{side: SideEdge1, want: r2.Box{Max: r2.Vec{X: 1, Y: 1}}},
		{side: SideEdge2, want: r2.Box{Min: r2.Vec{X: -1, Y: -1}}},
	} {
		t.Run(test.side.String(), func(t *testing.T) {
			neg, pos, err := Chamfer{SkewLength: math.Sqrt2, Side: test.side}.CreateSmoothProfiles(p)
			if err != nil {
				t.Fatal(err)
			}
			s := pos
			if test.side == SideInner {
				s = neg
			}
			if !boxEqual(s.Bounds(), test.want) {
				t.Errorf("bounds %v, want %v", s.Bounds(), test.want)
			}
		})
	}
}

func TestInvalidParams(t *testing.T) {
	good := Params{InnerAngle: 90, NormalAngle: 45}
	for name, test := range map[string]struct {
		profile Profile
		params  Params
	}{
		"zero radius":   {profile: Fillet{}, params: good},
		"negative skew": {profile: Chamfer{SkewLength: -1}, params: good},
		"flat corner":   {profile: Fillet{Radius: 1}, params: Params{InnerAngle: 180}},
		"unknown side":  {profile: Chamfer{SkewLength: 1, Side: 7}, params: good},
	} {
		_, _, err := test.profile.CreateSmoothProfiles(test.params)
		if !errors.Is(err, ErrParams) {
			t.Errorf("%s: got %v, want ErrParams", name, err)
		}
	}
}

func TestSideUnmarshalText(t *testing.T) {
	for text, want := range map[string]Side{
		"inner": SideInner,
		"0":     SideInner,
		"edge1": SideEdge1,
		"1":     SideEdge1,
		"Edge2": SideEdge2,
		"2":     SideEdge2,
	} {
		var s Side
		if err := s.UnmarshalText([]byte(text)); err != nil {
			t.Fatal(err)
		}
		if s != want {
			t.Errorf("%q: got %v, want %v", text, s, want)
		}
	}
	var s Side
	if err := s.UnmarshalText([]byte("outer")); !errors.Is(err, ErrParams) {
		t.Errorf("got %v, want ErrParams", err)
	}
}

func boxEqual(a, b r2.Box) bool {
	return math.Abs(a.Min.X-b.Min.X) < tol && math.Abs(a.Min.Y-b.Min.Y) < tol &&
		math.Abs(a.Max.X-b.Max.X) < tol && math.Abs(a.Max.Y-b.Max.Y) < tol
}
