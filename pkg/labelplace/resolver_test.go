package labelplace

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleBandInput builds a one-band chart with the given occupied ranges.
func singleBandInput(width, height float64, occupied ...[2]float64) ([]Band, []BandOccupancy) {
	band := Band{Index: 0, Top: 0, Bottom: height, Left: 0, Right: width}
	return []Band{band}, []BandOccupancy{occupancyFor(band, occupied...)}
}

// uniformBands builds n stacked bands of equal height with the given
// occupied ranges applied to every band.
func uniformBands(width, height float64, n int, occupied ...[2]float64) ([]Band, []BandOccupancy) {
	bands := make([]Band, n)
	occ := make([]BandOccupancy, n)
	step := height / float64(n)
	for i := 0; i < n; i++ {
		bands[i] = Band{
			Index:  i,
			Top:    float64(i) * step,
			Bottom: float64(i+1) * step,
			Left:   0,
			Right:  width,
		}
		occ[i] = occupancyFor(bands[i], occupied...)
	}
	return bands, occ
}

// TestResolveSimplePassLeft is the end-to-end version of the spec's
// simple-pass scenario: one band, left mode, clamped placement at X 170.
func TestResolveSimplePassLeft(t *testing.T) {
	bands, occ := singleBandInput(300, 80, [2]float64{190, 210})

	result, err := Resolve(Input{
		Dimensions: Size{Width: 300, Height: 80},
		Bands:      bands,
		Occupancy:  occ,
		Objects: []Object{
			{ID: "a320", Anchor: Point{X: 200, Y: 50}, Dimensions: Size{Width: 40, Height: 16}},
		},
		Strategy: Strategy{
			FirstPass: FirstPassConfig{Modes: []Mode{ModeLeft}},
		},
	})
	require.NoError(t, err)

	require.Empty(t, result.Failed)
	p := result.Placements["a320"]
	require.NotNil(t, p)
	require.NotNil(t, p.Position)
	assert.Equal(t, 170.0, p.Position.X)
	assert.Equal(t, 50.0, p.Position.Y)
	assert.Equal(t, 0, p.BandIndex)

	// The committed extent is occupied in the result's occupancy.
	assert.Equal(t, [][2]float64{{150, 210}}, startEnds(result.Occupancy[0].Occupied))

	// The caller's occupancy is untouched.
	assert.Equal(t, [][2]float64{{190, 210}}, startEnds(occ[0].Occupied))

	// The debug log records the single successful attempt.
	log := result.Debug.Logs["a320"]
	require.Len(t, log, 1)
	assert.Equal(t, 0, log[0].Pass)
	assert.Equal(t, ModeLeft, log[0].Mode)
	assert.True(t, log[0].Placed)
}

// TestResolveSweepFallback tests the sweep pass: the home band is occupied
// around the anchor, and the first free x-step wins.
func TestResolveSweepFallback(t *testing.T) {
	// Three bands; every band occupied on [0, 130].
	bands, occ := uniformBands(300, 120, 3, [2]float64{0, 130})

	result, err := Resolve(Input{
		Dimensions: Size{Width: 300, Height: 120},
		Bands:      bands,
		Occupancy:  occ,
		Objects: []Object{
			{ID: "a350", Anchor: Point{X: 100, Y: 60}, Dimensions: Size{Width: 60, Height: 16}},
		},
		Strategy: Strategy{
			FirstPass: FirstPassConfig{Modes: []Mode{ModeLeft}},
			Sweep: SweepConfig{
				Horizontal:     SweepToRight,
				VerticalSearch: []int{0, -1, 1},
				StepFactor:     1,
				XAlign:         XAlignCenter,
			},
		},
	})
	require.NoError(t, err)

	require.Empty(t, result.Failed)
	p := result.Placements["a350"]
	require.NotNil(t, p)
	// Steps are 100, 160, ... ; 100 fails everywhere, 160 fits in the
	// home band first.
	assert.Equal(t, 160.0, p.Position.X)
	assert.Equal(t, 1, p.BandIndex)

	// Trace: one failed simple attempt, then sweep attempts ending in a
	// success at (160, home band centre).
	log := result.Debug.Logs["a350"]
	require.NotEmpty(t, log)
	assert.Equal(t, 0, log[0].Pass)
	assert.False(t, log[0].Placed)
	last := log[len(log)-1]
	assert.Equal(t, 1, last.Pass)
	require.NotNil(t, last.Candidate)
	assert.Equal(t, 160.0, last.Candidate.X)
	assert.True(t, last.Placed)
}

// TestResolvePastLeftEdge tests the sweep's rejection of anchors further
// left than the label width.
func TestResolvePastLeftEdge(t *testing.T) {
	// A fully occupied band forces every label into the sweep pass.
	bands, occ := singleBandInput(300, 80, [2]float64{0, 300})

	result, err := Resolve(Input{
		Dimensions: Size{Width: 300, Height: 80},
		Bands:      bands,
		Occupancy:  occ,
		Objects: []Object{
			{ID: "ghost", Anchor: Point{X: -50, Y: 40}, Dimensions: Size{Width: 40, Height: 16}},
		},
		Strategy: Strategy{
			FirstPass: FirstPassConfig{Modes: []Mode{ModeLeft}},
		},
	})
	require.NoError(t, err)

	require.Empty(t, result.Placements)
	p := result.Failed["ghost"]
	require.NotNil(t, p)
	assert.Nil(t, p.Position)
	assert.Equal(t, -1, p.BandIndex)

	log := result.Debug.Logs["ghost"]
	require.NotEmpty(t, log)
	last := log[len(log)-1]
	assert.Equal(t, NotePastLeftEdge, last.Note)
	assert.False(t, last.Placed)
}

// TestResolveNoOverlap packs many labels into a small chart and checks that
// no two placements in the same band overlap and every placement stays
// inside its band.
func TestResolveNoOverlap(t *testing.T) {
	bands, occ := uniformBands(400, 200, 5)

	var objects []Object
	for i := 0; i < 30; i++ {
		objects = append(objects, Object{
			ID:         string(rune('a'+i%26)) + string(rune('0'+i/26)),
			Anchor:     Point{X: float64(20 + (i*37)%360), Y: float64(10 + (i*53)%180)},
			Dimensions: Size{Width: 50, Height: 14},
		})
	}

	result, err := Resolve(Input{
		Dimensions: Size{Width: 400, Height: 200},
		Bands:      bands,
		Occupancy:  occ,
		Objects:    objects,
		Strategy:   DefaultStrategy(),
	})
	require.NoError(t, err)

	byBand := make(map[int][]*Placement)
	for _, p := range result.Placements {
		byBand[p.BandIndex] = append(byBand[p.BandIndex], p)
	}
	for bandIdx, placements := range byBand {
		band := bands[bandIdx]
		for _, p := range placements {
			minX := p.Position.X - p.Dimensions.Width/2
			maxX := p.Position.X + p.Dimensions.Width/2
			minY := p.Position.Y - p.Dimensions.Height/2
			maxY := p.Position.Y + p.Dimensions.Height/2
			assert.GreaterOrEqual(t, minY, band.Top, "%s above band", p.ID)
			assert.LessOrEqual(t, maxY, band.Bottom, "%s below band", p.ID)
			assert.GreaterOrEqual(t, minX, band.Left, "%s past band left", p.ID)
			assert.LessOrEqual(t, maxX, band.Right, "%s past band right", p.ID)
		}
		for i := 0; i < len(placements); i++ {
			for j := i + 1; j < len(placements); j++ {
				a, b := placements[i], placements[j]
				aMin := a.Position.X - a.Dimensions.Width/2
				aMax := a.Position.X + a.Dimensions.Width/2
				bMin := b.Position.X - b.Dimensions.Width/2
				bMax := b.Position.X + b.Dimensions.Width/2
				if aMin < bMax && bMin < aMax {
					t.Errorf("labels %s and %s overlap in band %d", a.ID, b.ID, bandIdx)
				}
			}
		}
	}

	// Everything is accounted for exactly once.
	assert.Equal(t, len(objects), len(result.Placements)+len(result.Failed))
}

// TestResolveDeterminism runs the same resolve twice and requires
// structurally identical results, debug trace included.
func TestResolveDeterminism(t *testing.T) {
	bands, occ := uniformBands(400, 200, 4, [2]float64{100, 180})

	var objects []Object
	for i := 0; i < 20; i++ {
		objects = append(objects, Object{
			ID:         string(rune('a' + i)),
			Anchor:     Point{X: float64(30 + (i*41)%340), Y: float64(5 + (i*67)%190)},
			Dimensions: Size{Width: 44, Height: 12},
		})
	}

	input := Input{
		Dimensions:      Size{Width: 400, Height: 200},
		Bands:           bands,
		Occupancy:       occ,
		Objects:         objects,
		ClusterDistance: &Distance{X: 15, Y: 15},
		Strategy:        DefaultStrategy(),
	}

	first, err := Resolve(input)
	require.NoError(t, err)
	second, err := Resolve(input)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("resolve not deterministic (-first +second):\n%s", diff)
	}
}

// TestResolveClusters tests that cluster detection is reported when
// requested and omitted otherwise.
func TestResolveClusters(t *testing.T) {
	bands, occ := singleBandInput(400, 100)
	objects := []Object{
		{ID: "a", Anchor: Point{X: 50, Y: 50}, Dimensions: Size{Width: 30, Height: 12}},
		{ID: "b", Anchor: Point{X: 60, Y: 50}, Dimensions: Size{Width: 30, Height: 12}},
		{ID: "c", Anchor: Point{X: 300, Y: 50}, Dimensions: Size{Width: 30, Height: 12}},
	}

	input := Input{
		Dimensions: Size{Width: 400, Height: 100},
		Bands:      bands,
		Occupancy:  occ,
		Objects:    objects,
		Strategy:   DefaultStrategy(),
	}

	plain, err := Resolve(input)
	require.NoError(t, err)
	assert.Nil(t, plain.Debug.Clusters)

	input.ClusterDistance = &Distance{X: 20, Y: 20}
	clustered, err := Resolve(input)
	require.NoError(t, err)
	got := sortedClusters(clustered.Debug.Clusters)
	require.Len(t, got, 2)
	assert.Equal(t, []int{0, 1}, got[0])
	assert.Equal(t, []int{2}, got[1])
}

// TestResolveSimplePassOrder tests that labels are attempted in ascending
// anchor-Y order with input-index tie-breaks.
func TestResolveSimplePassOrder(t *testing.T) {
	bands, occ := singleBandInput(400, 100)
	objects := []Object{
		{ID: "low", Anchor: Point{X: 50, Y: 80}, Dimensions: Size{Width: 30, Height: 12}},
		{ID: "high", Anchor: Point{X: 50, Y: 10}, Dimensions: Size{Width: 30, Height: 12}},
		{ID: "mid-b", Anchor: Point{X: 150, Y: 40}, Dimensions: Size{Width: 30, Height: 12}},
		{ID: "mid-a", Anchor: Point{X: 250, Y: 40}, Dimensions: Size{Width: 30, Height: 12}},
	}

	result, err := Resolve(Input{
		Dimensions: Size{Width: 400, Height: 100},
		Bands:      bands,
		Occupancy:  occ,
		Objects:    objects,
		Strategy:   DefaultStrategy(),
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 0}, result.Debug.IndicesToTry)
}

// TestResolveInvalidInput tests boundary validation.
func TestResolveInvalidInput(t *testing.T) {
	bands, occ := singleBandInput(400, 100)

	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero dimensions", func(in *Input) { in.Dimensions = Size{} }},
		{"no bands", func(in *Input) { in.Bands = nil; in.Occupancy = nil }},
		{"misaligned occupancy", func(in *Input) { in.Occupancy = nil }},
		{"non-contiguous bands", func(in *Input) {
			in.Bands = []Band{
				{Index: 0, Top: 0, Bottom: 40, Left: 0, Right: 400},
				{Index: 1, Top: 60, Bottom: 100, Left: 0, Right: 400},
			}
			in.Occupancy = []BandOccupancy{
				occupancyFor(in.Bands[0]),
				occupancyFor(in.Bands[1]),
			}
		}},
		{"duplicate ids", func(in *Input) {
			in.Objects = []Object{
				{ID: "dup", Anchor: Point{X: 10, Y: 10}, Dimensions: Size{Width: 10, Height: 10}},
				{ID: "dup", Anchor: Point{X: 90, Y: 10}, Dimensions: Size{Width: 10, Height: 10}},
			}
		}},
		{"bad strategy", func(in *Input) {
			in.Strategy = DefaultStrategy()
			in.Strategy.Sweep.StepFactor = -1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := Input{
				Dimensions: Size{Width: 400, Height: 100},
				Bands:      bands,
				Occupancy:  occ,
				Strategy:   DefaultStrategy(),
			}
			tt.mutate(&input)
			_, err := Resolve(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput), "want ErrInvalidInput, got %v", err)
		})
	}
}

// TestResolveFailedKeepsOriginalData tests that failed labels carry their
// input anchor and dimensions.
func TestResolveFailedKeepsOriginalData(t *testing.T) {
	bands, occ := singleBandInput(300, 80, [2]float64{0, 300})

	obj := Object{ID: "x", Anchor: Point{X: 150, Y: 40}, Dimensions: Size{Width: 40, Height: 16}}
	result, err := Resolve(Input{
		Dimensions: Size{Width: 300, Height: 80},
		Bands:      bands,
		Occupancy:  occ,
		Objects:    []Object{obj},
		Strategy:   DefaultStrategy(),
	})
	require.NoError(t, err)

	p := result.Failed["x"]
	require.NotNil(t, p)
	assert.Equal(t, obj.Anchor, p.Anchor)
	assert.Equal(t, obj.Dimensions, p.Dimensions)
	assert.Nil(t, p.Position)
}
