package tubetab

import "errors"

// Pipeline error taxonomy. Every condition below is detected before any
// feature-creating call is issued, so a failed run leaves the document
// untouched. None of them are retryable: they are deterministic results
// of the input geometry.
var (
	// ErrSelectionCount signals a selection that is not exactly two
	// bodies.
	ErrSelectionCount = errors.New("selection must contain exactly two bodies: tab tube then slot tube")
	// ErrSelectionType signals a selected entity that cannot be
	// resolved to a tube body.
	ErrSelectionType = errors.New("selected entity is not a tube body")
	// ErrAxisMatchNotFound signals that no construction line satisfies
	// the direction and proximity test for a tube's axis.
	ErrAxisMatchNotFound = errors.New("no construction line matches the tube axis")
	// ErrAmbiguousSelection signals tab and slot resolving to the
	// identical axis line.
	ErrAmbiguousSelection = errors.New("tab and slot tubes resolve to the same axis line")
	// ErrPlaneResolutionFailure signals that no usable cross-section
	// reference plane was found.
	ErrPlaneResolutionFailure = errors.New("no cross-section reference plane found")
)
