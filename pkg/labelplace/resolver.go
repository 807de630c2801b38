package labelplace

import (
	"math"
	"sort"
)

// bandContiguityTolerance absorbs float error in caller-supplied band edges.
const bandContiguityTolerance = 1e-6

// Object is a label to place: a caller-supplied unique ID, the anchor point
// the label refers to, and the label's unrotated pixel dimensions.
type Object struct {
	ID         string
	Anchor     Point
	Dimensions Size
}

// Placement is the outcome for one label. Position is the centre of the
// final placement; it is nil (and BandIndex is -1) for labels the resolver
// could not place.
type Placement struct {
	ID         string
	Anchor     Point
	Dimensions Size
	Position   *Point
	BandIndex  int
}

// Input is the resolver's complete configuration. Bands and Occupancy must
// be index-aligned and produced over the same obstacles; that alignment is
// the caller's responsibility and is checked only structurally.
type Input struct {
	Dimensions Size
	Bands      []Band
	Occupancy  []BandOccupancy
	Objects    []Object
	// ClusterDistance, when set, enables proximity clustering over the
	// labels. The clusters are informational and reported in Debug.
	ClusterDistance *Distance
	Strategy        Strategy
}

// Result is the resolver's output. Occupancy is the engine's own mutated
// copy; the caller's input occupancy is never touched.
type Result struct {
	Placements map[string]*Placement
	Failed     map[string]*Placement
	Occupancy  []BandOccupancy
	Debug      Debug
}

// Resolve assigns a position to every label it can, in two passes.
//
// The simple pass walks labels in ascending anchor-Y order and tries each
// strategy mode in turn against the label's home band or a vertical
// neighbour. Labels still unplaced enter the sweep pass, which scans
// candidate X positions outward from the anchor in stepFactor×width
// increments, trying bands in the strategy's vertical search order at each
// step. Every success immediately marks the placed extent occupied, so
// later labels see it.
//
// A label that cannot be placed is not an error: it is returned in Failed
// with a nil Position, and its attempt trace in Debug.Logs explains what was
// tried. Resolve is deterministic — identical inputs produce identical
// results — and never mutates its input.
func Resolve(in Input) (*Result, error) {
	if in.Dimensions.Width <= 0 || in.Dimensions.Height <= 0 {
		return nil, &InvalidDimensionsError{Width: in.Dimensions.Width, Height: in.Dimensions.Height}
	}
	if len(in.Bands) == 0 {
		return nil, &EmptyBandsError{}
	}
	if len(in.Bands) != len(in.Occupancy) {
		return nil, &MisalignedOccupancyError{Bands: len(in.Bands), Occupancy: len(in.Occupancy)}
	}
	for i := 0; i < len(in.Bands)-1; i++ {
		if math.Abs(in.Bands[i].Bottom-in.Bands[i+1].Top) > bandContiguityTolerance {
			return nil, &NonContiguousBandsError{
				Index:   i,
				Bottom:  in.Bands[i].Bottom,
				NextTop: in.Bands[i+1].Top,
			}
		}
	}
	seen := make(map[string]struct{}, len(in.Objects))
	for _, obj := range in.Objects {
		if _, dup := seen[obj.ID]; dup {
			return nil, &DuplicateIDError{ID: obj.ID}
		}
		seen[obj.ID] = struct{}{}
	}

	strategy, err := in.Strategy.withDefaults()
	if err != nil {
		return nil, err
	}
	if err := strategy.validate(); err != nil {
		return nil, err
	}

	r := &resolver{
		bands:    in.Bands,
		occ:      cloneOccupancy(in.Occupancy),
		objects:  in.Objects,
		strategy: strategy,
		result: &Result{
			Placements: make(map[string]*Placement),
			Failed:     make(map[string]*Placement),
		},
	}
	r.result.Debug.Logs = make(map[string][]Attempt, len(in.Objects))

	if in.ClusterDistance != nil {
		dist := *in.ClusterDistance
		objects := in.Objects
		r.result.Debug.Clusters = ClusterByProximity(len(objects), func(i int) Rect {
			return anchorBox(objects[i])
		}, dist)
	}

	remaining := r.simplePass()
	r.sweepPass(remaining)

	r.result.Occupancy = r.occ
	return r.result, nil
}

// anchorBox is the label's bounding box centred on its anchor, used for
// cluster detection.
func anchorBox(obj Object) Rect {
	return Rect{
		MinX: obj.Anchor.X - obj.Dimensions.Width/2,
		MinY: obj.Anchor.Y - obj.Dimensions.Height/2,
		MaxX: obj.Anchor.X + obj.Dimensions.Width/2,
		MaxY: obj.Anchor.Y + obj.Dimensions.Height/2,
	}
}

type resolver struct {
	bands    []Band
	occ      []BandOccupancy
	objects  []Object
	strategy Strategy
	result   *Result
}

// homeBand returns the position of the band whose [Top, Bottom] contains y,
// preferring the first match. Anchors above or below every band map to the
// nearest edge band.
func (r *resolver) homeBand(y float64) int {
	for i, b := range r.bands {
		if b.containsY(y) {
			return i
		}
	}
	if y < r.bands[0].Top {
		return 0
	}
	return len(r.bands) - 1
}

// commit records a successful placement: the label enters Placements and its
// horizontal extent becomes occupied in the target band.
func (r *resolver) commit(obj Object, bandPos int, center Point) {
	band := r.bands[bandPos]
	w := obj.Dimensions.Width
	r.occ[bandPos].commit(band, Range{Start: center.X - w/2, End: center.X + w/2})
	pos := center
	r.result.Placements[obj.ID] = &Placement{
		ID:         obj.ID,
		Anchor:     obj.Anchor,
		Dimensions: obj.Dimensions,
		Position:   &pos,
		BandIndex:  band.Index,
	}
}

// effectiveAnchor applies a phase's anchor offset.
func effectiveAnchor(obj Object, off *Offset) Point {
	a := obj.Anchor
	if off != nil {
		a.X += off.X
		a.Y += off.Y
	}
	return a
}

// distanceOr returns d, or the unbounded distance when d is nil.
func distanceOr(d *Distance) Distance {
	if d == nil {
		return unbounded
	}
	return *d
}

// simplePass tries each strategy mode for every label in ascending anchor-Y
// order. It returns the input positions of labels left unplaced.
func (r *resolver) simplePass() []int {
	fp := r.strategy.FirstPass
	maxDist := distanceOr(fp.MaxDistance)

	order := make([]int, len(r.objects))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return r.objects[order[a]].Anchor.Y < r.objects[order[b]].Anchor.Y
	})
	r.result.Debug.IndicesToTry = order

	var remaining []int
	for _, idx := range order {
		obj := r.objects[idx]
		anchor := effectiveAnchor(obj, fp.Offset)
		home := r.homeBand(anchor.Y)

		placed := false
		for mi, mode := range fp.Modes {
			bandOffset, align := mode.placement()
			target := home + bandOffset
			if target < 0 || target >= len(r.bands) {
				continue
			}

			center, ok := trySinglePlacement(placementQuery{
				band:       r.bands[target],
				occ:        &r.occ[target],
				anchor:     anchor,
				align:      align,
				strict:     false,
				dims:       obj.Dimensions,
				maxDist:    maxDist,
				overflow:   fp.Overflow,
				strictDist: r.strategy.StrictDistance,
			})
			r.log(obj.ID, Attempt{
				Pass:      0,
				Algorithm: algorithmSimple,
				Iteration: mi,
				Mode:      mode,
				Placed:    ok,
			})
			if ok {
				r.commit(obj, target, center)
				placed = true
				break
			}
		}
		if !placed {
			remaining = append(remaining, idx)
		}
	}
	return remaining
}

// sweepCandidate is one precomputed (band, y) pair for the sweep pass.
type sweepCandidate struct {
	bandPos int
	y       float64
}

// sweepPass scans outward from each unplaced label's anchor. Labels are
// processed in ascending anchor-X order for sweep-to-left and descending for
// sweep-to-right, so labels nearest the crowded edge claim space first.
func (r *resolver) sweepPass(remaining []int) {
	sw := r.strategy.Sweep
	maxDist := distanceOr(sw.MaxDistance)

	dir := 1.0
	if sw.Horizontal == SweepToLeft {
		dir = -1.0
	}

	order := make([]int, len(remaining))
	copy(order, remaining)
	// Ties break on original input index, not pass-1 order.
	sort.Ints(order)
	sort.SliceStable(order, func(a, b int) bool {
		ax := r.objects[order[a]].Anchor.X
		bx := r.objects[order[b]].Anchor.X
		if sw.Horizontal == SweepToRight {
			return ax > bx
		}
		return ax < bx
	})

	for _, idx := range order {
		obj := r.objects[idx]
		anchor := effectiveAnchor(obj, sw.Offset)
		w := obj.Dimensions.Width
		h := obj.Dimensions.Height

		if anchor.X < -w {
			r.log(obj.ID, Attempt{
				Pass:      1,
				Algorithm: algorithmSweep,
				Iteration: 0,
				Note:      NotePastLeftEdge,
			})
			r.fail(obj)
			continue
		}

		home := r.homeBand(anchor.Y)
		var candidates []sweepCandidate
		for _, k := range sw.VerticalSearch {
			target := home + k
			if target < 0 || target >= len(r.bands) {
				continue
			}
			band := r.bands[target]
			var y float64
			switch {
			case k == 0:
				y = band.CenterY()
			case k < 0:
				y = band.Bottom - h/2
			default:
				y = band.Top + h/2
			}
			candidates = append(candidates, sweepCandidate{bandPos: target, y: y})
		}

		placed := false
		iteration := 0
	steps:
		for s := 0; s < sw.MaxIterations; s++ {
			x := anchor.X + float64(s)*sw.StepFactor*w*dir
			for _, cand := range candidates {
				if math.Abs(cand.y-anchor.Y) > maxDist.Y {
					continue
				}
				center, ok := trySinglePlacement(placementQuery{
					band:       r.bands[cand.bandPos],
					occ:        &r.occ[cand.bandPos],
					anchor:     Point{X: x, Y: anchor.Y},
					align:      sw.XAlign,
					strict:     false,
					dims:       obj.Dimensions,
					maxDist:    maxDist,
					overflow:   sw.Overflow,
					strictDist: r.strategy.StrictDistance,
				})
				r.log(obj.ID, Attempt{
					Pass:      1,
					Algorithm: algorithmSweep,
					Iteration: iteration,
					Candidate: &Point{X: x, Y: cand.y},
					Placed:    ok,
				})
				iteration++
				if ok {
					r.commit(obj, cand.bandPos, center)
					placed = true
					break steps
				}
			}
		}
		if !placed {
			r.fail(obj)
		}
	}
}

// fail records a label the resolver could not place.
func (r *resolver) fail(obj Object) {
	r.result.Failed[obj.ID] = &Placement{
		ID:         obj.ID,
		Anchor:     obj.Anchor,
		Dimensions: obj.Dimensions,
		Position:   nil,
		BandIndex:  -1,
	}
}

// log appends one attempt to a label's trace.
func (r *resolver) log(id string, a Attempt) {
	r.result.Debug.Logs[id] = append(r.result.Debug.Logs[id], a)
}
