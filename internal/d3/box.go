package d3

import "gonum.org/v1/gonum/spatial/r3"

// Box is a 3d bounding box.
type Box r3.Box

// Extend returns a box enclosing two 3d boxes.
func (a Box) Extend(b Box) Box {
	return Box{
		Min: MinElem(a.Min, b.Min),
		Max: MaxElem(a.Max, b.Max),
	}
}

// Vertices returns a slice of 3d box corner vertices.
func (a Box) Vertices() Set {
	v := make(Set, 8)
	for i := range v {
		v[i] = a.Min
		if i&1 != 0 {
			v[i].Z = a.Max.Z
		}
		if i&2 != 0 {
			v[i].Y = a.Max.Y
		}
		if i&4 != 0 {
			v[i].X = a.Max.X
		}
	}
	return v
}
