package tubetab

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab/doc"
)

// ResolvePlane locates the cross-section reference plane perpendicular
// to the tab axis. The tab tube's own construction sub-tree is searched
// first: a plane whose normal is parallel to tabDir is accepted, as is
// one with no computable normal (best-effort default). Failing that,
// the document default plane with the largest absolute alignment to
// tabDir is used. With no plane anywhere the resolution fails.
func ResolvePlane(structure *doc.Feature, tabDir r3.Vec, d doc.Document) (doc.Plane, error) {
	for _, pl := range structure.Planes() {
		if r3.Norm(pl.Z) == 0 {
			return pl, nil
		}
		if math.Abs(r3.Dot(pl.Z, tabDir)) > directionCosTol {
			return pl, nil
		}
	}
	var (
		best      doc.Plane
		bestAlign = -1.0
	)
	for _, pl := range d.DefaultPlanes() {
		align := math.Abs(r3.Dot(pl.Z, tabDir))
		if align > bestAlign {
			best = pl
			bestAlign = align
		}
	}
	if bestAlign < 0 {
		return doc.Plane{}, fmt.Errorf("resolve cross-section plane: %w", ErrPlaneResolutionFailure)
	}
	return best, nil
}

// ApplyPlane expresses the placement points as signed offsets along the
// plane normal and classifies them into near and far sides. The side
// whose offset lies closer to that of the slot-axis crossing segment's
// midpoint becomes near. The planeOffsetComp corrective constant is
// subtracted from both offsets to match the downstream extrusion start
// condition convention.
func (p *Placement) ApplyPlane(pl doc.Plane) {
	p.PlaneNormal = pl.Z
	p.PlaneOrigin = pl.Origin

	off1 := r3.Dot(r3.Sub(p.P1, pl.Origin), pl.Z)
	off2 := r3.Dot(r3.Sub(p.P2, pl.Origin), pl.Z)
	mid := r3.Scale(0.5, r3.Add(p.SlotP1, p.SlotP2))
	midOff := r3.Dot(r3.Sub(mid, pl.Origin), pl.Z)
	p.nearIsP1 = math.Abs(off1-midOff) <= math.Abs(off2-midOff)

	p.Offset1 = off1 - planeOffsetComp
	p.Offset2 = off2 - planeOffsetComp
}
