package tubetab

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab/doc"
	"github.com/frk2/tubetab/internal/d3"
)

// ResolveAxis finds the construction line a tube body was built to
// follow. The body's dominant cylindrical face gives the axis direction
// and a point on it; candidate lines from the body's own construction
// sub-tree, then from preceding profile features in reverse creation
// order, are tested for near-parallel direction and, when the axis
// origin is known, for passing within axisProximityTol of it. Proximity
// disambiguates parallel tubes running side by side; a direction-only
// match is kept as a fallback.
func ResolveAxis(body doc.Body, d doc.Document) (doc.Line, error) {
	axisDir, axisOrigin, haveAxis := dominantCylinder(body)
	structure := body.Structure()

	if !haveAxis {
		// No cylindrical face: axis direction is unknown. Best effort,
		// return the first line in the construction sub-tree unchecked.
		lines := structure.ProfileLines()
		if len(lines) > 0 {
			return lines[0], nil
		}
		return doc.Line{}, fmt.Errorf("resolve axis of %s: no cylindrical face and no construction line: %w",
			body.Name(), ErrAxisMatchNotFound)
	}

	var (
		fallback    doc.Line
		haveFallback bool
	)
	try := func(l doc.Line) (doc.Line, bool) {
		dir := l.Direction()
		if math.Abs(r3.Dot(dir, axisDir)) < directionCosTol {
			return doc.Line{}, false
		}
		if d3.LineDistance(axisOrigin, l.Start, dir) <= axisProximityTol {
			return l, true
		}
		if !haveFallback {
			fallback = l
			haveFallback = true
		}
		return doc.Line{}, false
	}

	// The tube's own construction sub-tree first.
	for _, l := range structure.ProfileLines() {
		if match, ok := try(l); ok {
			return match, nil
		}
	}
	// Then preceding profile-bearing features, most recent first.
	features := d.Features()
	start := len(features) - 1
	for i, f := range features {
		if f == structure {
			start = i - 1
			break
		}
	}
	for i := start; i >= 0; i-- {
		f := features[i]
		if f == structure {
			continue
		}
		for _, l := range f.ProfileLines() {
			if match, ok := try(l); ok {
				return match, nil
			}
		}
	}

	if haveFallback {
		return fallback, nil
	}
	return doc.Line{}, fmt.Errorf("resolve axis of %s: %w", body.Name(), ErrAxisMatchNotFound)
}

// dominantCylinder returns the axis of the body's largest-area
// cylindrical face.
func dominantCylinder(body doc.Body) (dir, origin r3.Vec, ok bool) {
	bestArea := 0.0
	for _, f := range body.Faces() {
		if f.Kind != doc.FaceCylindrical {
			continue
		}
		if !ok || f.Area > bestArea {
			dir = f.Axis
			origin = f.Origin
			bestArea = f.Area
			ok = true
		}
	}
	return dir, origin, ok
}
