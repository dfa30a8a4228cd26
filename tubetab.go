// Package tubetab computes where and how to place a tab-and-slot joint
// at the crossing of two cylindrical tubes. Given two tube bodies built
// along construction lines, it recovers each tube's axis and wall
// profile, solves the skew-line placement of the joint, synthesizes the
// arc-and-line cross-section profiles for the tab and its mating slot,
// and applies them as boss-extrude and cut features through a document
// adapter (see the doc package).
//
// All lengths are in meters.
package tubetab

import "gonum.org/v1/gonum/spatial/r3"

const (
	// tabArcWidth is the target arc length of the tab cross-section
	// along the tube wall (5mm). Converted to an angular span with the
	// small-angle arc-length approximation.
	tabArcWidth = 5e-3
	// slotClearance is the radial and arc-length expansion of the slot
	// profile so the tab fits with a gap (0.5mm).
	slotClearance = 0.5e-3
	// planeOffsetComp is the corrective constant subtracted from both
	// signed plane offsets to match the extrusion start condition
	// convention (-5mm).
	planeOffsetComp = -5e-3
	// axisProximityTol is how close a candidate construction line must
	// pass to the body's axis origin to be a dual match (1mm).
	axisProximityTol = 1e-3
	// directionCosTol is the minimum |cos| between a candidate line and
	// the body axis for a direction match.
	directionCosTol = 0.99
	// defaultWall is assumed when a body exposes a single cylindrical
	// radius and the wall cannot be measured (2mm).
	defaultWall = 2e-3
	// sinFloor keeps the placement math finite for near-parallel tubes.
	sinFloor = 1e-10
	// offsetEps is the threshold below which a signed plane offset
	// collapses to an at-plane start condition.
	offsetEps = 1e-8
)

// Tab depth limits and default. Depths outside [MinDepth, MaxDepth] are
// rejected before any feature is created.
const (
	DefaultDepth = 10e-3
	MinDepth     = 1e-3
	MaxDepth     = 50e-3
)

// Tube describes one tubular body: its centerline axis and circular
// wall cross-section. Derived once per body and read-only thereafter.
type Tube struct {
	AxisOrigin  r3.Vec // point on the axis
	AxisDir     r3.Vec // unit axis direction
	OuterRadius float64
	Wall        float64
}

// Mode selects which placement sides receive a tab and slot.
type Mode uint8

const (
	// ModeBoth creates tab and slot features on the near and far side.
	ModeBoth Mode = iota
	// ModeNearOnly creates features on the near side only.
	ModeNearOnly
	// ModeFarOnly creates features on the far side only.
	ModeFarOnly
)

func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeNearOnly:
		return "near"
	case ModeFarOnly:
		return "far"
	}
	return "unknown"
}

// Observer receives intermediate pipeline points for diagnostic
// rendering. It is optional and never influences control flow.
type Observer interface {
	Points(label string, pts ...r3.Vec)
}
