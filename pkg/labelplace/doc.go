// Package labelplace places chart labels so they never overlap each other,
// avoid pre-existing obstacles, and stay as close as possible to their
// anchors, deterministically.
//
// The engine is a pure function of its inputs: given chart dimensions,
// obstacle rectangles already projected into pixel space, labels with known
// dimensions, and a strategy, it returns a position for every label it could
// place and reports the rest. It never backtracks, never globally optimises,
// and recomputes from scratch on every call.
//
// # Workflow
//
// Build bands, derive occupancy, then resolve:
//
//	bands, err := labelplace.BuildBands(dims, bandObstacles,
//	    labelplace.DefaultBandOptions(20, 100))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	occupancy, err := labelplace.ComputeOccupancy(bands, obstacles,
//	    dims.Width, dims.Height)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := labelplace.Resolve(labelplace.Input{
//	    Dimensions: dims,
//	    Bands:      bands,
//	    Occupancy:  occupancy,
//	    Objects:    labels,
//	    Strategy:   labelplace.DefaultStrategy(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for id, p := range result.Placements {
//	    fmt.Printf("%s -> (%.1f, %.1f)\n", id, p.Position.X, p.Position.Y)
//	}
//	for id := range result.Failed {
//	    fmt.Printf("%s could not be placed\n", id)
//	}
//
// Bands partition the chart's vertical extent into horizontal strips that
// avoid obstacle footprints; occupancy tracks which horizontal ranges of
// each band are taken. The resolver runs a simple pass (ordered placement
// modes around each anchor) and then a sweep pass (scanning outward from the
// anchor across bands) for whatever the simple pass could not fit.
//
// # Coordinates
//
// All inputs are pixel coordinates with Y growing downward and the origin at
// the chart area's top-left. Placed positions denote label centres.
//
// # Errors
//
// Invalid inputs (non-positive dimensions, negative padding, misaligned
// occupancy, unknown strategy names) fail with typed errors unwrapping to
// ErrInvalidInput. A label that cannot be placed is a domain outcome, not an
// error: it appears in Result.Failed and its attempt trace in Result.Debug.
//
// # Concurrency
//
// The engine holds no global state. Every Resolve deep-copies the input
// occupancy, so independent resolves may run concurrently as long as they do
// not share input slices mid-call.
package labelplace
