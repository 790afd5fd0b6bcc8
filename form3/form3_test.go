package form3_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/soypat/sdfhole/form3"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCylinder(t *testing.T) {
	cyl, err := form3.Cylinder(4, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	want := r3.Box{Min: r3.Vec{X: -1, Y: -1, Z: -2}, Max: r3.Vec{X: 1, Y: 1, Z: 2}}
	if cyl.Bounds() != want {
		t.Errorf("bounds %v, want %v", cyl.Bounds(), want)
	}
	if d := cyl.Evaluate(r3.Vec{}); !sdf.EqualFloat64(d, -math.Cos(math.Pi/8), 1e-12) {
		t.Errorf("center distance %g", d)
	}
	var b bytes.Buffer
	if err := sdf.WriteSCAD(&b, cyl); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "cylinder(h=4,r=1,center=true,$fn=8);\n" {
		t.Errorf("got %q", got)
	}
	if _, err := form3.Cylinder(0, 1, 8); err == nil {
		t.Error("expected error for zero height")
	}
	if _, err := form3.Cylinder(1, -1, 8); err == nil {
		t.Error("expected error for negative radius")
	}
}

func TestFrustum(t *testing.T) {
	cone, err := form3.Frustum(2, 2, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := r3.Box{Min: r3.Vec{X: -2, Y: -2, Z: -1}, Max: r3.Vec{X: 2, Y: 2, Z: 1}}
	if cone.Bounds() != want {
		t.Errorf("bounds %v, want %v", cone.Bounds(), want)
	}
	// Radius is 1.5 at mid height.
	if d := cone.Evaluate(r3.Vec{X: 1.4}); d >= 0 {
		t.Errorf("point inside cone evaluated to %g", d)
	}
	if d := cone.Evaluate(r3.Vec{Y: 1.6}); d <= 0 {
		t.Errorf("point outside cone evaluated to %g", d)
	}
	var b bytes.Buffer
	if err := sdf.WriteSCAD(&b, sdf.Transform3D(cone, sdf.Translate3D(r3.Vec{Z: 1}))); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "translate([0,0,1]) cylinder(h=2,r1=2,r2=1,center=true);\n" {
		t.Errorf("got %q", got)
	}
	for _, tc := range [][3]float64{{0, 1, 1}, {1, -1, 1}, {1, 0, 0}} {
		if _, err := form3.Frustum(tc[0], tc[1], tc[2], 0); err == nil {
			t.Errorf("Frustum(%v): expected error", tc)
		}
	}
}
