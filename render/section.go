package render

import (
	"fmt"

	"github.com/soypat/sdfhole/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SectionPoints samples s on an n by n grid over its bounds and returns the
// points inside it.
func SectionPoints(s sdf.SDF2, n int) plotter.XYs {
	bb := s.Bounds()
	size := r2.Sub(bb.Max, bb.Min)
	var pts plotter.XYs
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			p := r2.Vec{
				X: bb.Min.X + size.X*float64(i)/float64(n),
				Y: bb.Min.Y + size.Y*float64(j)/float64(n),
			}
			if s.Evaluate(p) <= 0 {
				pts = append(pts, plotter.XY{X: p.X, Y: p.Y})
			}
		}
	}
	return pts
}

// PlotSection saves a scatter plot of the inside of s, sampled on an n by
// n grid, to path. The image format follows the extension of path.
func PlotSection(s sdf.SDF2, title, path string, n int) error {
	if n < 2 {
		return fmt.Errorf("plot resolution %d too small", n)
	}
	pts := SectionPoints(s, n)
	if len(pts) == 0 {
		return ErrEmpty
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "radius"
	p.Y.Label.Text = "height"
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(1)
	p.Add(plotter.NewGrid(), scatter)
	return p.Save(4*vg.Inch, 6*vg.Inch, path)
}
