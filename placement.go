package tubetab

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab/doc"
)

// Placement holds the solved joint placement for one invocation. P1 and
// P2 are the two tab/slot placement points straddling the intersection;
// SlotP1 and SlotP2 are the diagnostic points where the slot axis
// crosses the tab tube's outer surface. The plane fields are filled by
// ApplyPlane and the struct is immutable afterward.
type Placement struct {
	P1, P2         r3.Vec
	SlotP1, SlotP2 r3.Vec
	SlotDir        r3.Vec
	TabDir         r3.Vec

	PlaneNormal      r3.Vec
	PlaneOrigin      r3.Vec
	Offset1, Offset2 float64
	nearIsP1         bool
}

// Near returns the near-side placement point and its signed plane
// offset. Valid after ApplyPlane.
func (p *Placement) Near() (r3.Vec, float64) {
	if p.nearIsP1 {
		return p.P1, p.Offset1
	}
	return p.P2, p.Offset2
}

// Far returns the far-side placement point and its signed plane offset.
// Valid after ApplyPlane.
func (p *Placement) Far() (r3.Vec, float64) {
	if p.nearIsP1 {
		return p.P2, p.Offset2
	}
	return p.P1, p.Offset1
}

// SolvePlacement computes the two joint placement points for a tab tube
// and slot tube crossing at a skew or intersecting angle. It is a pure
// function with no failure modes: exactly parallel axes fall back to a
// projection and near-parallel axes are clamped to produce a finite, if
// physically meaningless, result.
func SolvePlacement(tabAxis, slotAxis doc.Line, tabRadius, slotRadius float64) Placement {
	tabDir := tabAxis.Direction()
	slotDir := slotAxis.Direction()
	mid := closestApproach(tabAxis.Start, tabDir, slotAxis.Start, slotDir)

	sinAngle := r3.Norm(r3.Cross(tabDir, slotDir))
	if sinAngle < sinFloor {
		sinAngle = sinFloor
	}
	// Distance along the slot axis from the closest approach to where
	// that axis pierces the tab tube's outer surface.
	halfLen := tabRadius / sinAngle
	// Corrective shift along the tab axis. The original construction
	// reuses sinAngle here in place of the complement cosine; preserved
	// as-is since changing it would move every non-perpendicular joint.
	tabShift := slotRadius / sinAngle

	p := Placement{
		SlotDir: slotDir,
		TabDir:  tabDir,
		SlotP1:  r3.Add(mid, r3.Scale(-halfLen, slotDir)),
		SlotP2:  r3.Add(mid, r3.Scale(halfLen, slotDir)),
	}
	p.P1 = r3.Sub(p.SlotP1, r3.Scale(tabShift, tabDir))
	p.P2 = r3.Sub(p.SlotP2, r3.Scale(tabShift, tabDir))
	return p
}

// closestApproach returns the midpoint of the closest-approach segment
// between two infinite lines. For exactly parallel lines the second
// line's reference point is projected onto the first.
func closestApproach(p1, d1, p2, d2 r3.Vec) r3.Vec {
	w := r3.Sub(p1, p2)
	a := r3.Dot(d1, d1)
	b := r3.Dot(d1, d2)
	c := r3.Dot(d2, d2)
	d := r3.Dot(d1, w)
	e := r3.Dot(d2, w)
	denom := a*c - b*b
	if denom < 1e-12 {
		// Parallel: project p2 onto the first line.
		t := r3.Dot(r3.Sub(p2, p1), d1)
		c1 := r3.Add(p1, r3.Scale(t, d1))
		return r3.Scale(0.5, r3.Add(c1, p2))
	}
	s := (b*e - c*d) / denom
	t := (a*e - b*d) / denom
	c1 := r3.Add(p1, r3.Scale(s, d1))
	c2 := r3.Add(p2, r3.Scale(t, d2))
	return r3.Scale(0.5, r3.Add(c1, c2))
}
