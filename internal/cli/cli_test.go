package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/sdfhole/render"
)

const testScene = `
[context]
eps = 0.05
fn = 16

[[holes]]
kind = "slotted"
height = 10.0
diameter = 1.0
center_to_center = 3.0

[holes.profile_top]
kind = "fillet"
size = 1.0
side = "edge2"

[[holes]]
kind = "counterdrilled"
alignment = "top"
height = 6.0
diameter = 2.0
countersink_diameter = 4.0
counterdrill_height = 1.0
position = {x = 6.0, y = 0.0, z = 0.0}
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.toml")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestSCADCommand(t *testing.T) {
	scene := writeScene(t)
	stdout, _, err := execute(t, "scad", scene)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"rotate_extrude", "multmatrix", "$fn="} {
		if !strings.Contains(stdout, want) {
			t.Errorf("OpenSCAD output missing %q", want)
		}
	}

	out := filepath.Join(t.TempDir(), "out.scad")
	if _, _, err := execute(t, "scad", scene, "-o", out); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != stdout {
		t.Error("file output differs from stdout output")
	}
}

func TestSTLCommand(t *testing.T) {
	scene := writeScene(t)
	_, stderr, err := execute(t, "stl", scene, "--cells", "40", "--verbose")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "wrote STL") || !strings.Contains(stderr, "built hole") {
		t.Errorf("missing log output:\n%s", stderr)
	}
	fp, err := os.Open(strings.TrimSuffix(scene, ".toml") + ".stl")
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	model, err := render.ReadSTL(fp)
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("empty STL")
	}
}

func TestSTLStdout(t *testing.T) {
	scene := writeScene(t)
	stdout, _, err := execute(t, "stl", scene, "--cells", "30", "-o", "-")
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.ReadSTL(strings.NewReader(stdout))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("empty STL on stdout")
	}
	// The file and stdout paths tessellate the same mesh.
	out := filepath.Join(t.TempDir(), "s.stl")
	if _, _, err := execute(t, "stl", scene, "--cells", "30", "-o", out); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte(stdout)) {
		t.Error("stdout STL differs from file STL")
	}
}

func TestQuiet(t *testing.T) {
	scene := writeScene(t)
	out := filepath.Join(t.TempDir(), "q.stl")
	_, stderr, err := execute(t, "stl", scene, "--cells", "20", "-o", out, "--quiet")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("quiet run logged:\n%s", stderr)
	}
}

func TestSectionCommand(t *testing.T) {
	scene := writeScene(t)
	out := filepath.Join(t.TempDir(), "section.png")
	if _, _, err := execute(t, "section", scene, "--index", "1", "--samples", "40", "-o", out); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Fatalf("section plot not written: %v", err)
	}
	if _, _, err := execute(t, "section", scene, "--index", "2"); err == nil {
		t.Error("expected out of range error")
	}
}

func TestPreviewCommand(t *testing.T) {
	scene := writeScene(t)
	out := filepath.Join(t.TempDir(), "preview.png")
	_, _, err := execute(t, "preview", scene, "--cells", "30", "--width", "64", "--height", "48", "-o", out)
	if err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Fatalf("preview not written: %v", err)
	}
}

func TestCommandErrors(t *testing.T) {
	scene := writeScene(t)
	for _, args := range [][]string{
		{"scad"},
		{"scad", filepath.Join(t.TempDir(), "missing.toml")},
		{"stl", scene, "--cells", "1"},
		{"stl", scene, "--verbose", "--quiet"},
		{"preview", scene, "--width", "0"},
	} {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestOutputPath(t *testing.T) {
	for _, tc := range []struct{ out, scene, ext, want string }{
		{"", "a/b.toml", ".stl", "a/b.stl"},
		{"x.stl", "a/b.toml", ".stl", "x.stl"},
		{"", "scene", ".png", "scene.png"},
	} {
		if got := outputPath(tc.out, tc.scene, tc.ext); got != tc.want {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tc.out, tc.scene, tc.ext, got, tc.want)
		}
	}
}
