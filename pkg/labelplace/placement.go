package labelplace

import "math"

// unbounded is the distance cap used when a strategy leaves MaxDistance nil.
var unbounded = Distance{X: math.Inf(1), Y: math.Inf(1)}

// placementQuery carries one candidate through trySinglePlacement.
type placementQuery struct {
	band     Band
	occ      *BandOccupancy
	anchor   Point
	align    XAlign
	strict   bool
	dims     Size
	maxDist  Distance
	overflow OverflowPolicy
	// strictDist measures the final X bound to the label centre instead
	// of its edge.
	strictDist bool
}

// trySinglePlacement decides whether a label can sit in the candidate band
// without overlapping any occupied range. It returns the placement centre
// and true on success.
//
// The candidate X derives from the alignment: centred on the anchor, right
// edge at the anchor, or left edge at the anchor. An available range must
// contain that X (in non-strict mode the X is first clamped into the band).
// A range narrower than the label only qualifies when it is flush with a
// band edge the overflow policy opens; the label then clings to the range's
// interior edge. The final X is bounded to anchor.X ± (maxDist.X + width/2)
// — the half-width slack is intentional and keeps edge-aligned placements
// near wide labels legal.
func trySinglePlacement(q placementQuery) (Point, bool) {
	w := q.dims.Width
	h := q.dims.Height

	candidateX := q.anchor.X
	switch q.align {
	case XAlignLeftToAnchor:
		candidateX = q.anchor.X - w/2
	case XAlignRightToAnchor:
		candidateX = q.anchor.X + w/2
	}

	searchX := candidateX
	if !q.strict {
		searchX = clamp(candidateX, q.band.Left, q.band.Right)
	}

	var slot *Range
	for i := range q.occ.Available {
		if q.occ.Available[i].contains(searchX) {
			slot = &q.occ.Available[i]
			break
		}
	}
	if slot == nil {
		return Point{}, false
	}

	flushLeft := slot.Start == q.band.Left
	flushRight := slot.End == q.band.Right
	tooNarrow := slot.Width() < w
	overflowLeft := flushLeft && q.overflow.permitsLeft()
	overflowRight := flushRight && q.overflow.permitsRight()

	if tooNarrow && !overflowLeft && !overflowRight {
		return Point{}, false
	}
	if q.strict && (slot.Start > candidateX-w/2 || slot.End < candidateX+w/2) {
		return Point{}, false
	}

	var finalX float64
	switch {
	case overflowLeft && tooNarrow:
		finalX = slot.End - w/2
	case overflowRight && tooNarrow:
		finalX = slot.Start + w/2
	default:
		finalX = clamp(candidateX, slot.Start+w/2, slot.End-w/2)
	}

	finalY := clamp(q.anchor.Y, q.band.Top+h/2, q.band.Bottom-h/2)

	slack := w / 2
	if q.strictDist {
		slack = 0
	}
	finalX = clamp(finalX, q.anchor.X-q.maxDist.X-slack, q.anchor.X+q.maxDist.X+slack)

	return Point{X: finalX, Y: finalY}, true
}
