package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Extend returns a box enclosing two 2d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Translate translates a 2d box.
func (a Box) Translate(v r2.Vec) Box {
	return Box{r2.Add(a.Min, v), r2.Add(a.Max, v)}
}

// Vertices returns a set of 2d box vertices.
func (a Box) Vertices() Set {
	return Set{
		a.Min,
		{X: a.Max.X, Y: a.Min.Y},
		{X: a.Min.X, Y: a.Max.Y},
		a.Max,
	}
}

// MinMaxDist2 returns the minimum and maximum dist * dist from a point to a box.
// Points within the box have minimum distance = 0.
func (a Box) MinMaxDist2(p r2.Vec) r2.Vec {
	a = a.Translate(r2.Scale(-1, p))
	var minDist2, maxDist2 float64
	for i, v := range a.Vertices() {
		d2 := r2.Norm2(v)
		if i == 0 || d2 < minDist2 {
			minDist2 = d2
		}
		maxDist2 = math.Max(maxDist2, d2)
	}
	// consider the sides (for the minimum)
	withinX := a.Min.X < 0 && a.Max.X > 0
	withinY := a.Min.Y < 0 && a.Max.Y > 0
	switch {
	case withinX && withinY:
		minDist2 = 0
	case withinX:
		d := math.Min(math.Abs(a.Max.Y), math.Abs(a.Min.Y))
		minDist2 = math.Min(minDist2, d*d)
	case withinY:
		d := math.Min(math.Abs(a.Max.X), math.Abs(a.Min.X))
		minDist2 = math.Min(minDist2, d*d)
	}
	return r2.Vec{X: minDist2, Y: maxDist2}
}
