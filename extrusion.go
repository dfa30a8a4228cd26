package tubetab

import (
	"math"

	"github.com/frk2/tubetab/doc"
)

// BuildExtrusion converts a signed plane offset and a depth into blind
// extrusion parameters. Offsets below offsetEps start the extrusion at
// the sketch plane; otherwise it starts offset from the plane, flipped
// to the negative normal side for negative offsets. A boss merges into
// its target body; a cut never merges. Both are scoped exclusively to
// the target body passed alongside the spec.
func BuildExtrusion(signedOffset, depth float64, cut bool) doc.Extrusion {
	x := doc.Extrusion{
		Depth: depth,
		Merge: !cut,
	}
	if math.Abs(signedOffset) < offsetEps {
		x.Start = doc.StartAtPlane
		return x
	}
	x.Start = doc.StartOffset
	x.Offset = math.Abs(signedOffset)
	x.Flip = signedOffset < 0
	return x
}
