// Package render exports joint geometry for inspection: binary STL of
// realized solids, shaded PNG previews, and 2D plots of cross-section
// profiles. Nothing here participates in placement correctness.
package render

import (
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle3 is a 3D triangle.
type Triangle3 struct {
	V [3]r3.Vec
}

// Normal returns the triangle's normal vector, right-hand rule.
func (t Triangle3) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	n := r3.Cross(e1, e2)
	if r3.Norm(n) == 0 {
		return r3.Vec{}
	}
	return r3.Unit(n)
}

// Renderer is a source of model triangles. ReadTriangles follows the
// io.Reader contract, returning io.EOF once the model is exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle3) (int, error)
}

// RenderAll reads the full contents of a Renderer and returns the slice
// read. It does not return error on io.EOF.
func RenderAll(r Renderer) ([]Triangle3, error) {
	var err error
	var nt int
	result := make([]Triangle3, 0, 1<<12)
	buf := make([]Triangle3, 1024)
	for err == nil {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}

// Triangles returns a Renderer backed by an in-memory model.
func Triangles(model []Triangle3) Renderer {
	return &sliceRenderer{buf: model}
}

type sliceRenderer struct {
	buf []Triangle3
}

func (s *sliceRenderer) ReadTriangles(t []Triangle3) (int, error) {
	if len(s.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(t, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}
