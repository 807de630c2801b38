package labelplace

import "sort"

// BandOccupancy tracks which horizontal ranges of one band are taken and
// which remain open. Both lists are sorted by Start. After consolidation the
// occupied ranges are pairwise disjoint and non-touching, and Available is
// the exact complement of Occupied within [band.Left, band.Right].
type BandOccupancy struct {
	Occupied  []Range
	Available []Range
}

// clone returns a deep copy so a resolver can mutate occupancy without
// touching the caller's slices.
func (o BandOccupancy) clone() BandOccupancy {
	c := BandOccupancy{
		Occupied:  make([]Range, len(o.Occupied)),
		Available: make([]Range, len(o.Available)),
	}
	copy(c.Occupied, o.Occupied)
	copy(c.Available, o.Available)
	return c
}

// cloneOccupancy deep-copies a whole occupancy list.
func cloneOccupancy(occ []BandOccupancy) []BandOccupancy {
	out := make([]BandOccupancy, len(occ))
	for i, o := range occ {
		out[i] = o.clone()
	}
	return out
}

// ComputeOccupancy derives the initial occupancy of each band from the
// obstacle rectangles. The result is index-aligned with bands.
//
// Obstacles are swept in centre-Y order against the bands in top-to-bottom
// order; an obstacle occupies a band only when it overlaps the band's
// vertical extent with positive area (touching an edge does not count).
// Horizontal extents are clipped to the band before consolidation.
func ComputeOccupancy(bands []Band, obstacles []Rect, chartWidth, chartHeight float64) ([]BandOccupancy, error) {
	if chartWidth <= 0 || chartHeight <= 0 {
		return nil, &InvalidDimensionsError{Width: chartWidth, Height: chartHeight}
	}

	sorted := make([]Rect, len(obstacles))
	copy(sorted, obstacles)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CenterY() < sorted[j].CenterY() })

	out := make([]BandOccupancy, len(bands))
	ptr := 0
	for i, band := range bands {
		// Discard obstacles entirely above this band; bands only move down
		// from here, so they can never occupy a later band either.
		for ptr < len(sorted) && sorted[ptr].MaxY <= band.Top {
			ptr++
		}

		var occupied []Range
		for j := ptr; j < len(sorted); j++ {
			o := sorted[j]
			if o.MinY >= band.Bottom {
				break
			}
			if !(o.MaxY > band.Top && o.MinY < band.Bottom) {
				continue
			}
			start := clamp(o.MinX, band.Left, band.Right)
			end := clamp(o.MaxX, band.Left, band.Right)
			if end < start {
				continue
			}
			occupied = append(occupied, Range{Start: start, End: end, Top: band.Top, Bottom: band.Bottom})
		}

		occupied = consolidate(occupied)
		out[i] = BandOccupancy{
			Occupied:  occupied,
			Available: invert(occupied, band),
		}
	}
	return out, nil
}

// consolidate sorts ranges by Start and merges overlapping or touching
// neighbours. The result is pairwise disjoint and non-touching; applying
// consolidate twice gives the same answer as applying it once.
func consolidate(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	out := make([]Range, 0, len(sorted))
	cur := sorted[0]
	for _, r := range sorted[1:] {
		if cur.End >= r.Start {
			if r.End > cur.End {
				cur.End = r.End
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}
	return append(out, cur)
}

// invert returns the ordered complement of the consolidated occupied list
// within [band.Left, band.Right].
func invert(occupied []Range, band Band) []Range {
	var out []Range
	cursor := band.Left
	for _, r := range occupied {
		if r.Start > cursor {
			out = append(out, Range{Start: cursor, End: r.Start, Top: band.Top, Bottom: band.Bottom})
		}
		if r.End > cursor {
			cursor = r.End
		}
	}
	if cursor < band.Right {
		out = append(out, Range{Start: cursor, End: band.Right, Top: band.Top, Bottom: band.Bottom})
	}
	if out == nil && len(occupied) == 0 {
		// Degenerate band; still expose its (empty-width) availability.
		out = []Range{{Start: band.Left, End: band.Right, Top: band.Top, Bottom: band.Bottom}}
	}
	return out
}

// commit marks r as occupied in the band's occupancy, then restores the
// occupied/available invariants for that band only.
func (o *BandOccupancy) commit(band Band, r Range) {
	r.Top = band.Top
	r.Bottom = band.Bottom
	o.Occupied = consolidate(append(o.Occupied, r))
	o.Available = invert(o.Occupied, band)
}
