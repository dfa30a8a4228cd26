package tubetab

import (
	"fmt"

	"github.com/frk2/tubetab/doc"
)

// radiusTol separates distinct cylindrical radii on the same body.
const radiusTol = 1e-9

// ExtractTube derives a tube's outer radius and wall thickness from its
// cylindrical faces. The outer radius is the largest radius observed;
// when at least two distinct radii exist the wall is their difference,
// otherwise the wall falls back to the fixed defaultWall constant: an
// approximation, not a measurement. The axis fields come from the
// dominant cylindrical face.
func ExtractTube(body doc.Body) (Tube, error) {
	var (
		minR, maxR float64
		distinct   int
	)
	for _, f := range body.Faces() {
		if f.Kind != doc.FaceCylindrical || f.Radius <= 0 {
			continue
		}
		switch {
		case distinct == 0:
			minR, maxR = f.Radius, f.Radius
			distinct = 1
		case f.Radius > maxR+radiusTol:
			maxR = f.Radius
			distinct++
		case f.Radius < minR-radiusTol:
			minR = f.Radius
			distinct++
		}
	}
	if distinct == 0 {
		return Tube{}, fmt.Errorf("extract tube from %s: no cylindrical face: %w",
			body.Name(), ErrSelectionType)
	}
	wall := defaultWall
	if distinct >= 2 {
		wall = maxR - minR
	}
	dir, origin, _ := dominantCylinder(body)
	return Tube{
		AxisOrigin:  origin,
		AxisDir:     dir,
		OuterRadius: maxR,
		Wall:        wall,
	}, nil
}
