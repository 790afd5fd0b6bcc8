package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/sdfhole/helpers/matter"
	"github.com/soypat/sdfhole/hole"
	"github.com/soypat/sdfhole/smooth"
)

const sceneTOML = `
material = ""

[context]
eps = 0.05
fn = 32

[[holes]]
kind = "slotted"
alignment = "center"
height = 10.0
diameter = 1.0
center_to_center = 3.0
position = {x = 5.0, y = 0.0, z = 0.0}

[holes.profile_top]
kind = "fillet"
size = 1.0
side = 2

[holes.profile_bottom]
kind = "chamfer"
size = 1.0
side = "edge1"

[[holes]]
kind = "countersunk"
height = 5.0
radius = 1.0
countersink_radius = 2.0
extend_bottom = false
`

const sceneYAML = `
context:
  eps: 0.05
  fn: 32
holes:
  - kind: slotted
    alignment: center
    height: 10
    diameter: 1
    center_to_center: 3
    position: {x: 5, y: 0, z: 0}
    profile_top: {kind: fillet, size: 1, side: edge2}
    profile_bottom: {kind: chamfer, size: 1, side: edge1}
  - kind: countersunk
    height: 5
    radius: 1
    countersink_radius: 2
    extend_bottom: false
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	for _, tc := range []struct {
		name, content string
	}{
		{"scene.toml", sceneTOML},
		{"scene.yaml", sceneYAML},
	} {
		t.Run(tc.name, func(t *testing.T) {
			scene, err := LoadFile(writeFile(t, tc.name, tc.content))
			if err != nil {
				t.Fatal(err)
			}
			if scene.Context.Eps != 0.05 || scene.Context.Fn != 32 {
				t.Errorf("context not decoded: %+v", scene.Context)
			}
			if scene.Context.Fa != Default().Context.Fa {
				t.Errorf("default fa lost: %+v", scene.Context)
			}
			if len(scene.Holes) != 2 {
				t.Fatalf("got %d holes", len(scene.Holes))
			}
			h := scene.Holes[0]
			if h.Alignment != hole.Center {
				t.Errorf("alignment %v", h.Alignment)
			}
			if h.Offset().X != 5 {
				t.Errorf("position %+v", h.Position)
			}
			if h.ProfileTop == nil || h.ProfileTop.Side != smooth.SideEdge2 {
				t.Errorf("profile_top %+v", h.ProfileTop)
			}
			if h.ProfileBottom == nil || h.ProfileBottom.Side != smooth.SideEdge1 {
				t.Errorf("profile_bottom %+v", h.ProfileBottom)
			}
			if h2 := scene.Holes[1]; h2.ExtendBottom == nil || *h2.ExtendBottom || h2.ExtendTop != nil {
				t.Errorf("extend flags %v %v", h2.ExtendTop, h2.ExtendBottom)
			}
			features, err := scene.Features()
			if err != nil {
				t.Fatal(err)
			}
			slot, ok := features[0].(*hole.Slotted)
			if !ok {
				t.Fatalf("got %T, want *hole.Slotted", features[0])
			}
			if slot.OverallLength() != 4 {
				t.Errorf("overall length %g", slot.OverallLength())
			}
			if _, ok := features[1].(*hole.Countersunk); !ok {
				t.Errorf("got %T, want *hole.Countersunk", features[1])
			}
			if _, err := features[0].Build(scene.SDFContext()); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestLoadFileErrors(t *testing.T) {
	for _, tc := range []struct {
		name, file, content, want string
	}{
		{"extension", "scene.json", `{}`, "unsupported"},
		{"unknown key toml", "scene.toml", "bogus = 1\n" + sceneTOML, "unknown key"},
		{"unknown key yaml", "scene.yaml", "bogus: 1\n" + sceneYAML, "failed to parse"},
		{"no holes", "scene.toml", "[context]\neps = 0.1\n", "no holes"},
		{"bad kind", "scene.toml", "[[holes]]\nkind = \"square\"\nheight = 1.0\nradius = 1.0\n", "unknown hole kind"},
		{"bad alignment", "scene.yaml", "holes:\n  - kind: hole\n    alignment: sideways\n    height: 1\n    radius: 1\n", "failed to parse"},
		{"both radius and diameter", "scene.yaml", "holes:\n  - kind: hole\n    height: 1\n    radius: 1\n    diameter: 2\n", "invalid config"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tc.file, tc.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not contain %q", err, tc.want)
			}
		})
	}
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}
}

func TestExclusiveErrorSurvives(t *testing.T) {
	scene := Default()
	scene.Holes = []Hole{{Kind: KindHole, Height: hole.Float(1), Radius: hole.Float(1), Diameter: hole.Float(2)}}
	err := scene.Validate()
	if !errors.Is(err, hole.ErrExclusive) {
		t.Fatalf("got %v, want ErrExclusive", err)
	}
}

func TestMaterialCompensation(t *testing.T) {
	scene := Default()
	scene.Material = "pla"
	scene.Holes = []Hole{
		{Kind: KindHole, Height: hole.Float(4), Diameter: hole.Float(3)},
		{Kind: KindHole, Height: hole.Float(4), Radius: hole.Float(1.5)},
	}
	features, err := scene.Features()
	if err != nil {
		t.Fatal(err)
	}
	want := matter.PLA.InternalDimScale(3)
	for i, f := range features {
		got := f.(*hole.Hole).Diameter()
		if math.Abs(got-want) > 1e-12 {
			t.Errorf("hole %d: diameter %g, want %g", i, got, want)
		}
	}
	// The scene's own dimensions are not modified.
	if *scene.Holes[0].Diameter != 3 {
		t.Error("scene diameter was modified")
	}
	scene.Material = "unobtanium"
	if _, err := scene.Features(); err == nil {
		t.Error("expected unknown material error")
	}
}

func TestValidateContext(t *testing.T) {
	scene := Default()
	scene.Holes = []Hole{{Kind: KindHole, Height: hole.Float(1), Radius: hole.Float(1)}}
	if err := scene.Validate(); err != nil {
		t.Fatal(err)
	}
	scene.Context.Eps = -1
	if err := scene.Validate(); err == nil {
		t.Error("expected negative eps error")
	}
	scene.Context.Eps = 0
	scene.Context.Fa = 0
	if err := scene.Validate(); err == nil {
		t.Error("expected fa error")
	}
	scene.Context.Fn = 16
	if err := scene.Validate(); err != nil {
		t.Errorf("fn should override fa: %v", err)
	}
}

func TestExampleScenes(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no example scenes found")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			scene, err := LoadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			features, err := scene.Features()
			if err != nil {
				t.Fatal(err)
			}
			for i, f := range features {
				if _, err := f.Build(scene.SDFContext()); err != nil {
					t.Errorf("holes[%d]: %v", i, err)
				}
			}
		})
	}
}
