package render_test

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/sdfhole/hole"
	"github.com/soypat/sdfhole/render"
	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/cmpimg"
)

const meshCells = 40

func countersunk(t testing.TB) sdf.SDF3 {
	t.Helper()
	h, err := hole.NewCountersunk(hole.DefaultBase(hole.Top), hole.CountersunkParams{
		Height:              hole.Float(5),
		Diameter:            hole.Float(2),
		CountersinkDiameter: hole.Float(4),
	})
	if err != nil {
		t.Fatal(err)
	}
	s, err := h.Build(sdf.Context{Eps: 0.1, Fn: 32})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSTLWriteRead(t *testing.T) {
	model := []render.Triangle3{
		{V: [3]r3.Vec{{}, {X: 1}, {Y: 1}}},
		{V: [3]r3.Vec{{}, {Z: 1}, {X: 1}}},
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if b.Len() != 84+50*len(model) {
		t.Fatalf("STL length %d", b.Len())
	}
	got, err := render.ReadSTL(&b)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(model) {
		t.Fatalf("read %d triangles, want %d", len(got), len(model))
	}
	for i := range model {
		if got[i] != model[i] {
			t.Errorf("triangle %d: got %v, want %v", i, got[i], model[i])
		}
	}
	if err := render.WriteSTL(&b, nil); !errors.Is(err, render.ErrEmpty) {
		t.Errorf("empty model: got %v", err)
	}
}

func TestSTLCreateWriteRead(t *testing.T) {
	s := countersunk(t)
	path := filepath.Join(t.TempDir(), "hole.stl")
	if err := render.CreateSTL(path, render.NewMarchingCubes(s, meshCells)); err != nil {
		t.Fatal(err)
	}
	bfile, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	model, err := render.RenderAll(render.NewMarchingCubes(s, meshCells))
	if err != nil {
		t.Fatal(err)
	}
	if len(model) == 0 {
		t.Fatal("no triangles")
	}
	var b bytes.Buffer
	if err := render.WriteSTL(&b, model); err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if !bytes.Equal(b.Bytes(), bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestMeshWithinBounds(t *testing.T) {
	s := countersunk(t)
	model, err := render.RenderAll(render.NewMarchingCubes(s, meshCells))
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	size := r3.Sub(bb.Max, bb.Min)
	slack := 0.05 * r3.Norm(size)
	for _, tri := range model {
		for _, v := range tri.V {
			if v.X < bb.Min.X-slack || v.Y < bb.Min.Y-slack || v.Z < bb.Min.Z-slack ||
				v.X > bb.Max.X+slack || v.Y > bb.Max.Y+slack || v.Z > bb.Max.Z+slack {
				t.Fatalf("vertex %v outside bounds %v", v, bb)
			}
		}
	}
}

func TestEmptyModel(t *testing.T) {
	_, err := render.RenderAll(render.NewMarchingCubes(sdf.Empty3D(), meshCells))
	if !errors.Is(err, render.ErrEmpty) {
		t.Fatalf("got %v, want ErrEmpty", err)
	}
}

func TestPreviewPNG(t *testing.T) {
	dir := t.TempDir()
	stlPath := filepath.Join(dir, "hole.stl")
	if err := render.CreateSTL(stlPath, render.NewMarchingCubes(countersunk(t), meshCells)); err != nil {
		t.Fatal(err)
	}
	view := render.DefaultView
	view.Width, view.Height = 80, 60
	var images [2][]byte
	for i := range images {
		pngPath := filepath.Join(dir, "preview.png")
		if err := render.PreviewPNG(stlPath, pngPath, view); err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(pngPath)
		if err != nil {
			t.Fatal(err)
		}
		images[i] = b
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(images[0]))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Height != 60 {
		t.Errorf("image size %dx%d, want 80x60", cfg.Width, cfg.Height)
	}
	equal, err := cmpimg.EqualApprox("png", images[0], images[1], 0)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("preview is not deterministic")
	}
}

func TestPlotSection(t *testing.T) {
	h, err := hole.NewCounterdrilled(hole.DefaultBase(hole.Bottom), hole.CounterdrilledParams{
		Height:              hole.Float(10),
		Diameter:            hole.Float(1),
		CountersinkDiameter: hole.Float(3),
		CounterdrillHeight:  hole.Float(1.5),
	})
	if err != nil {
		t.Fatal(err)
	}
	section, err := h.Section(sdf.DefaultContext())
	if err != nil {
		t.Fatal(err)
	}
	pts := render.SectionPoints(section, 50)
	if len(pts) == 0 {
		t.Fatal("no points inside section")
	}
	for _, p := range pts {
		if p.X < -1e-9 {
			t.Fatalf("point %v left of the axis", p)
		}
	}
	path := filepath.Join(t.TempDir(), "section.png")
	if err := render.PlotSection(section, "counterdrilled", path, 50); err != nil {
		t.Fatal(err)
	}
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		t.Fatalf("plot not written: %v", err)
	}
}
