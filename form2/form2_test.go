package form2_test

import (
	"math"
	"testing"

	"github.com/soypat/sdfhole/form2"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestCircle(t *testing.T) {
	round, err := form2.Circle(2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if d := round.Evaluate(r2.Vec{X: 3}); !sdf.EqualFloat64(d, 1, 1e-12) {
		t.Errorf("round distance %g, want 1", d)
	}
	hex, err := form2.Circle(2, 6)
	if err != nil {
		t.Fatal(err)
	}
	if bb := hex.Bounds(); bb.Max.X != 2 || bb.Min.Y != -2 {
		t.Errorf("bounds %v", bb)
	}
	// First vertex on +x.
	if d := hex.Evaluate(r2.Vec{X: 2}); !sdf.EqualFloat64(d, 0, 1e-12) {
		t.Errorf("vertex distance %g, want 0", d)
	}
	apothem := 2 * math.Cos(math.Pi/6)
	p := r2.Vec{X: 2 * math.Cos(math.Pi/6), Y: 2 * math.Sin(math.Pi/6)}
	if d := hex.Evaluate(p); !sdf.EqualFloat64(d, 2-apothem, 1e-12) {
		t.Errorf("mid-facet distance %g, want %g", d, 2-apothem)
	}
	if _, err := form2.Circle(0, 6); err == nil {
		t.Error("expected error for zero radius")
	}
}

func TestRectangle(t *testing.T) {
	const eps = 0.1
	rect, err := form2.Rectangle(2, 3, false, [4]bool{false, true, true, false}, eps)
	if err != nil {
		t.Fatal(err)
	}
	nodes := rect.Nodes()
	want := [4]r2.Vec{{}, {Y: 3}, {X: 2, Y: 3}, {X: 2}}
	if nodes != want {
		t.Errorf("nodes %v, want %v", nodes, want)
	}
	bb := rect.Bounds()
	if bb.Min != (r2.Vec{}) || bb.Max != (r2.Vec{X: 2 + eps, Y: 3 + eps}) {
		t.Errorf("bounds %v", bb)
	}
	if d := rect.Evaluate(r2.Vec{X: 2, Y: 1}); !sdf.EqualFloat64(d, -eps, 1e-12) {
		t.Errorf("extended side distance %g", d)
	}
	if d := rect.Evaluate(r2.Vec{X: 0, Y: 1}); !sdf.EqualFloat64(d, 0, 1e-12) {
		t.Errorf("nominal side distance %g", d)
	}
	centered, err := form2.Rectangle(2, 4, true, [4]bool{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := centered.Nodes(); n[0] != (r2.Vec{X: -1, Y: -2}) || n[2] != (r2.Vec{X: 1, Y: 2}) {
		t.Errorf("centered nodes %v", n)
	}
	for _, tc := range []struct {
		w, d, eps float64
	}{
		{0, 1, 0},
		{1, -1, 0},
		{1, 1, -1},
	} {
		if _, err := form2.Rectangle(tc.w, tc.d, false, [4]bool{}, tc.eps); err == nil {
			t.Errorf("Rectangle(%g, %g, eps=%g): expected error", tc.w, tc.d, tc.eps)
		}
	}
}

func TestPolygonOrientation(t *testing.T) {
	ccw := []r2.Vec{{}, {X: 2}, {X: 2, Y: 1}, {Y: 1}}
	cw := []r2.Vec{{}, {Y: 1}, {X: 2, Y: 1}, {X: 2}}
	for name, verts := range map[string][]r2.Vec{"ccw": ccw, "cw": cw} {
		poly, err := form2.Polygon(verts)
		if err != nil {
			t.Fatal(err)
		}
		if d := poly.Evaluate(r2.Vec{X: 1, Y: .5}); !sdf.EqualFloat64(d, -.5, 1e-12) {
			t.Errorf("%s: inside distance %g, want -0.5", name, d)
		}
		if d := poly.Evaluate(r2.Vec{X: 3, Y: .5}); !sdf.EqualFloat64(d, 1, 1e-12) {
			t.Errorf("%s: outside distance %g, want 1", name, d)
		}
	}
}

func TestPolygonDuplicates(t *testing.T) {
	poly, err := form2.Polygon([]r2.Vec{{}, {}, {X: 1}, {X: 1, Y: 1}, {}})
	if err != nil {
		t.Fatal(err)
	}
	if bb := poly.Bounds(); bb.Max != (r2.Vec{X: 1, Y: 1}) {
		t.Errorf("bounds %v", bb)
	}
	if _, err := form2.Polygon([]r2.Vec{{}, {X: 1}, {X: 1}}); err == nil {
		t.Error("expected error for degenerate polygon")
	}
}
