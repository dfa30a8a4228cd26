package doc

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab/internal/d3"
)

// NewPlane constructs a reference plane at origin with the given normal.
// The in-plane axes are derived deterministically from the normal so two
// planes with equal normals carry identical frames.
func NewPlane(name string, origin, normal r3.Vec) Plane {
	n := normal
	if r3.Norm(n) != 0 {
		n = r3.Unit(n)
	}
	x, y := d3.Frame(n)
	return Plane{
		Name:   name,
		Origin: origin,
		X:      x,
		Y:      y,
		Z:      n,
	}
}
