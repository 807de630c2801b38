package labelplace

import (
	"testing"
)

// searchLinear is the reference implementation Search is checked against.
func searchLinear(items []Rect, query Rect) []int {
	var hits []int
	for i, r := range items {
		if r.Intersects(query) {
			hits = append(hits, i)
		}
	}
	return hits
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// gridRects lays out n rectangles of the given size on a coarse grid.
func gridRects(n int, w, h float64) []Rect {
	rects := make([]Rect, n)
	for i := 0; i < n; i++ {
		x := float64(i%25) * 16
		y := float64(i/25) * 12
		rects[i] = Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
	}
	return rects
}

// TestIndexSearch checks the index against a linear scan over a mix of
// query shapes.
func TestIndexSearch(t *testing.T) {
	items := gridRects(200, 10, 8)
	// A few degenerate items exercise the zero-area path.
	items = append(items,
		Rect{MinX: 33, MinY: 33, MaxX: 33, MaxY: 33},
		Rect{MinX: 50, MinY: 0, MaxX: 50, MaxY: 100},
	)
	idx := NewIndex(items)

	queries := []struct {
		name  string
		query Rect
	}{
		{"small", Rect{MinX: 30, MinY: 30, MaxX: 45, MaxY: 40}},
		{"large", Rect{MinX: 0, MinY: 0, MaxX: 400, MaxY: 120}},
		{"empty region", Rect{MinX: 1000, MinY: 1000, MaxX: 1100, MaxY: 1100}},
		{"degenerate point", Rect{MinX: 33, MinY: 33, MaxX: 33, MaxY: 33}},
		{"thin line", Rect{MinX: 0, MinY: 50, MaxX: 400, MaxY: 50}},
	}

	for _, tt := range queries {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Search(tt.query)
			want := searchLinear(items, tt.query)
			if !sameInts(got, want) {
				t.Errorf("Search(%+v) = %v, want %v", tt.query, got, want)
			}
		})
	}
}

// TestIndexOrderIndependence checks that the result set does not depend on
// item insertion order.
func TestIndexOrderIndependence(t *testing.T) {
	items := gridRects(100, 10, 8)

	reversed := make([]Rect, len(items))
	perm := make([]int, len(items))
	for i := range items {
		reversed[i] = items[len(items)-1-i]
		perm[i] = len(items) - 1 - i
	}

	query := Rect{MinX: 20, MinY: 10, MaxX: 120, MaxY: 60}

	forward := NewIndex(items).Search(query)
	backward := NewIndex(reversed).Search(query)

	// Map the reversed result back to original item identities.
	remapped := make([]int, len(backward))
	for i, idx := range backward {
		remapped[i] = perm[idx]
	}
	forwardSet := make(map[int]bool, len(forward))
	for _, i := range forward {
		forwardSet[i] = true
	}
	if len(remapped) != len(forward) {
		t.Fatalf("result sizes differ: %d vs %d", len(remapped), len(forward))
	}
	for _, i := range remapped {
		if !forwardSet[i] {
			t.Errorf("item %d found in reversed index but not forward", i)
		}
	}
}

// TestIndexEmpty checks the empty index.
func TestIndexEmpty(t *testing.T) {
	idx := NewIndex(nil)
	if idx.Len() != 0 {
		t.Fatalf("Len = %d, want 0", idx.Len())
	}
	if hits := idx.Search(Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}); hits != nil {
		t.Errorf("Search on empty index = %v, want nil", hits)
	}
}
