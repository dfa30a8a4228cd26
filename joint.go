package tubetab

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/frk2/tubetab/doc"
)

// Joint is the configuration for one tab/slot feature-creation run.
// The zero value creates both sides at the default depth.
type Joint struct {
	Mode  Mode
	Depth float64 // tab depth in meters; 0 selects DefaultDepth
	// Observer, when non-nil, receives intermediate placement points.
	Observer Observer
}

// side is one requested placement side, fully determined before any
// feature is created.
type side struct {
	point  r3.Vec
	offset float64
	far    bool
}

// Create runs the full pipeline against a document: resolve both tube
// bodies, solve the joint placement, resolve the cross-section plane,
// then create the tab boss and slot cut features for each requested
// side, in the order near tab, near slot, far tab, far slot. The
// selection is order significant: first the tab tube, then the slot
// tube. Every error is detected before the first feature-creating call,
// so a failed run leaves the document unchanged.
func (j Joint) Create(d doc.Document, selection []doc.Body) error {
	depth := j.Depth
	if depth == 0 {
		depth = DefaultDepth
	}
	if depth < MinDepth || depth > MaxDepth {
		return fmt.Errorf("tab depth %g m outside [%g, %g]", depth, float64(MinDepth), float64(MaxDepth))
	}
	if len(selection) != 2 {
		return fmt.Errorf("got %d selected entities: %w", len(selection), ErrSelectionCount)
	}
	tabBody, slotBody := selection[0], selection[1]
	if tabBody == nil || slotBody == nil {
		return ErrSelectionType
	}

	tabAxis, err := ResolveAxis(tabBody, d)
	if err != nil {
		return err
	}
	slotAxis, err := ResolveAxis(slotBody, d)
	if err != nil {
		return err
	}
	if tabAxis.SameIdentity(slotAxis) {
		return fmt.Errorf("%s and %s: %w", tabBody.Name(), slotBody.Name(), ErrAmbiguousSelection)
	}

	tabTube, err := ExtractTube(tabBody)
	if err != nil {
		return err
	}
	slotTube, err := ExtractTube(slotBody)
	if err != nil {
		return err
	}

	placement := SolvePlacement(tabAxis, slotAxis, tabTube.OuterRadius, slotTube.OuterRadius)
	if j.Observer != nil {
		j.Observer.Points("slot axis crossings", placement.SlotP1, placement.SlotP2)
		j.Observer.Points("placement points", placement.P1, placement.P2)
	}

	plane, err := ResolvePlane(tabBody.Structure(), tabAxis.Direction(), d)
	if err != nil {
		return err
	}
	placement.ApplyPlane(plane)

	var sides []side
	if j.Mode == ModeBoth || j.Mode == ModeNearOnly {
		pt, off := placement.Near()
		sides = append(sides, side{point: pt, offset: off})
	}
	if j.Mode == ModeBoth || j.Mode == ModeFarOnly {
		pt, off := placement.Far()
		sides = append(sides, side{point: pt, offset: off, far: true})
	}

	for _, s := range sides {
		if err := j.createSide(d, plane, placement.SlotDir, s, depth, tabTube, tabBody, slotBody); err != nil {
			return err
		}
	}
	return d.Rebuild()
}

// createSide creates the tab boss then the slot cut for one placement
// side. Both profiles are cross-sections of the tab tube's wall; the
// slot variant carries the fixed clearance expansion.
func (j Joint) createSide(d doc.Document, plane doc.Plane, slotDir r3.Vec, s side, depth float64, tab Tube, tabBody, slotBody doc.Body) error {
	tabProfile := GenerateProfile(plane, s.point, tab.OuterRadius, tab.Wall, slotDir, s.far, 0)
	slotProfile := GenerateProfile(plane, s.point, tab.OuterRadius, tab.Wall, slotDir, s.far, slotClearance)

	sk, err := d.NewSketch(plane)
	if err != nil {
		return err
	}
	tabProfile.Draw(sk)
	if err := d.BossExtrude(sk, tabBody, BuildExtrusion(s.offset, depth, false)); err != nil {
		return err
	}

	sk, err = d.NewSketch(plane)
	if err != nil {
		return err
	}
	slotProfile.Draw(sk)
	return d.CutExtrude(sk, slotBody, BuildExtrusion(s.offset, depth, true))
}
