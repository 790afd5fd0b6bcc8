package render

import (
	"errors"
	"io"
)

// RenderAll drains r and returns every triangle it produced. The io.EOF
// that ends the read is not returned.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var model []Triangle3
	buf := make([]Triangle3, trianglesInBuffer)
	for {
		n, err := r.ReadTriangles(buf)
		model = append(model, buf[:n]...)
		switch {
		case errors.Is(err, io.EOF):
			return model, nil
		case err != nil:
			return model, err
		}
	}
}

// triangleQueue holds tessellated triangles until a reader takes them.
type triangleQueue struct {
	pending []Triangle3
}

func (q *triangleQueue) push(t Triangle3) { q.pending = append(q.pending, t) }

// pop moves up to len(dst) triangles into dst.
func (q *triangleQueue) pop(dst []Triangle3) int {
	n := copy(dst, q.pending)
	q.pending = q.pending[n:]
	return n
}

func (q *triangleQueue) len() int { return len(q.pending) }
