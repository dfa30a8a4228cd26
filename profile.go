package tubetab

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab/doc"
	"github.com/frk2/tubetab/internal/d2"
)

// arcFacets is the number of line facets an arc is discretized into
// when a profile is polygonized.
const arcFacets = 20

// Profile is the closed 2D cross-section boundary of one tab or slot:
// an outer arc, an inner arc with the same angular span, and the two
// straight segments joining their endpoints. Coordinates are local to
// the sketch plane the profile was generated on.
type Profile struct {
	Center      r2.Vec
	OuterRadius float64
	InnerRadius float64
	Start, End  float64 // angular span, radians from the plane X axis
}

// GenerateProfile synthesizes the cross-section profile centered on a
// placement point. The profile straddles the direction of the slot axis
// projected into the plane; the far side points the opposite way around
// the tube. A zero clearance yields the tab boss profile; a positive
// clearance expands the slot variant radially and in arc width so the
// slot is never smaller than the tab.
func GenerateProfile(pl doc.Plane, center r3.Vec, outerRadius, wall float64, slotDir r3.Vec, farSide bool, clearance float64) Profile {
	base := math.Atan2(r3.Dot(slotDir, pl.Y), r3.Dot(slotDir, pl.X))
	if farSide {
		base += math.Pi
	}
	// Arc-length to angle with the small-angle approximation; the
	// chord/arc distinction is below manufacturing tolerance at these
	// radii.
	halfAngle := (tabArcWidth/2 + clearance) / outerRadius
	return Profile{
		Center:      pl.To2D(center),
		OuterRadius: outerRadius + clearance,
		InnerRadius: outerRadius - wall - clearance,
		Start:       base - halfAngle,
		End:         base + halfAngle,
	}
}

// point returns the boundary point at radius r and angle a.
func (p Profile) point(r, a float64) r2.Vec {
	return r2.Add(p.Center, d2.PolarVec(r, a))
}

// Draw emits the profile boundary to a sketch: outer arc, closing
// segment, inner arc traversed backwards, closing segment.
func (p Profile) Draw(s doc.Sketch) {
	s.Arc(p.Center, p.OuterRadius, p.Start, p.End)
	s.Line(p.point(p.OuterRadius, p.End), p.point(p.InnerRadius, p.End))
	s.Arc(p.Center, p.InnerRadius, p.End, p.Start)
	s.Line(p.point(p.InnerRadius, p.Start), p.point(p.OuterRadius, p.Start))
}

// Vertices polygonizes the profile boundary into a closed loop with
// facets segments per arc. The first vertex is repeated at the end.
func (p Profile) Vertices(facets int) []r2.Vec {
	if facets < 1 {
		facets = arcFacets
	}
	verts := make([]r2.Vec, 0, 2*facets+3)
	for i := 0; i <= facets; i++ {
		a := p.Start + (p.End-p.Start)*float64(i)/float64(facets)
		verts = append(verts, p.point(p.OuterRadius, a))
	}
	for i := 0; i <= facets; i++ {
		a := p.End - (p.End-p.Start)*float64(i)/float64(facets)
		verts = append(verts, p.point(p.InnerRadius, a))
	}
	verts = append(verts, verts[0])
	return verts
}

// Bounds returns the axis-aligned bounding box of the polygonized
// boundary.
func (p Profile) Bounds() r2.Box {
	set := d2.Set(p.Vertices(arcFacets))
	return r2.Box{Min: set.Min(), Max: set.Max()}
}
