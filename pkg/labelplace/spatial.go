package labelplace

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// rtreeLeafPad keeps degenerate (zero-width or zero-height) rectangles
// representable in the R-tree, which rejects non-positive extents. Exactness
// is restored by the post-filter in Search.
const rtreeLeafPad = 1e-9

// Index is an immutable 2D spatial index over a set of axis-aligned
// rectangles. It is bulk-loaded once at construction; inserts and deletes are
// not supported.
//
// The index answers one question: which items intersect a query rectangle?
// Results are independent of item insertion order.
//
// Example:
//
//	idx := labelplace.NewIndex([]labelplace.Rect{
//	    {MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
//	    {MinX: 20, MinY: 20, MaxX: 30, MaxY: 30},
//	})
//	hits := idx.Search(labelplace.Rect{MinX: 5, MinY: 5, MaxX: 25, MaxY: 25})
//	// hits == []int{0, 1}
type Index struct {
	items []Rect
	rtree *rtreego.Rtree
}

// indexEntry adapts one item rectangle to the rtreego.Spatial interface.
type indexEntry struct {
	idx  int
	rect rtreego.Rect
}

func (e indexEntry) Bounds() rtreego.Rect {
	return e.rect
}

// toTreeRect converts a Rect to the R-tree's representation, padding
// degenerate extents so the conversion never fails.
func toTreeRect(r Rect) rtreego.Rect {
	w := r.Width()
	if w <= 0 {
		w = rtreeLeafPad
	}
	h := r.Height()
	if h <= 0 {
		h = rtreeLeafPad
	}
	rect, _ := rtreego.NewRect(rtreego.Point{r.MinX, r.MinY}, []float64{w, h})
	return rect
}

// NewIndex bulk-loads a spatial index over items. The returned index holds a
// copy of the slice; later mutation of the caller's slice has no effect.
func NewIndex(items []Rect) *Index {
	owned := make([]Rect, len(items))
	copy(owned, items)

	spatials := make([]rtreego.Spatial, len(owned))
	for i, r := range owned {
		spatials[i] = indexEntry{idx: i, rect: toTreeRect(r)}
	}

	return &Index{
		items: owned,
		rtree: rtreego.NewTree(2, 25, 50, spatials...),
	}
}

// Len returns the number of indexed items.
func (ix *Index) Len() int {
	return len(ix.items)
}

// Search returns the indices of all items whose rectangles intersect the
// query rectangle. Touching edges count as intersection. Indices are
// returned in ascending order so callers iterate deterministically.
func (ix *Index) Search(query Rect) []int {
	if len(ix.items) == 0 {
		return nil
	}

	// The R-tree over-approximates (padded leaves); the exact test below
	// discards false candidates.
	candidates := ix.rtree.SearchIntersect(toTreeRect(query))

	var hits []int
	for _, c := range candidates {
		entry := c.(indexEntry)
		if ix.items[entry.idx].Intersects(query) {
			hits = append(hits, entry.idx)
		}
	}
	sort.Ints(hits)
	return hits
}
