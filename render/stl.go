package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"

	"github.com/chewxy/math32"
)

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

// stlTriangle defines the on-disk triangle layout.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // attribute byte count
}

// WriteSTL writes model triangles to a writer in binary STL format.
// Triangles whose float32 representation is degenerate (NaN or Inf in
// any component) are dropped from the output.
func WriteSTL(w io.Writer, model []Triangle3) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	valid := model[:0:0]
	for _, t := range model {
		if !stlDegenerate(t) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return errors.New("all triangles degenerate")
	}
	header := stlHeader{Count: uint32(len(valid))}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	var d stlTriangle
	for _, triangle := range valid {
		n := triangle.Normal()
		d.Normal = [3]float32{float32(n.X), float32(n.Y), float32(n.Z)}
		d.Vertex1 = [3]float32{float32(triangle.V[0].X), float32(triangle.V[0].Y), float32(triangle.V[0].Z)}
		d.Vertex2 = [3]float32{float32(triangle.V[1].X), float32(triangle.V[1].Y), float32(triangle.V[1].Z)}
		d.Vertex3 = [3]float32{float32(triangle.V[2].X), float32(triangle.V[2].Y), float32(triangle.V[2].Z)}
		if err := binary.Write(w, binary.LittleEndian, &d); err != nil {
			return err
		}
	}
	return nil
}

// CreateSTL renders a model to an STL file using a Renderer.
func CreateSTL(path string, r Renderer) error {
	model, err := RenderAll(r)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	if err := WriteSTL(w, model); err != nil {
		return err
	}
	return w.Flush()
}

func stlDegenerate(t Triangle3) bool {
	for _, v := range t.V {
		if nanOrInf(float32(v.X)) || nanOrInf(float32(v.Y)) || nanOrInf(float32(v.Z)) {
			return true
		}
	}
	return false
}

func nanOrInf(f float32) bool {
	return math32.IsNaN(f) || math32.IsInf(f, 0)
}
