package labelplace

import "sort"

// Band is a horizontal strip of the chart area eligible to hold labels.
//
// Bands produced by BuildBands are contiguous in Y (each band's Bottom equals
// the next band's Top), together cover [0, chartHeight), and carry dense
// indices 0..N-1 in top-to-bottom order. Index is assigned only at
// finalisation; it is not stable across the builder's internal phases.
type Band struct {
	Index  int
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Height returns Bottom - Top.
func (b Band) Height() float64 {
	return b.Bottom - b.Top
}

// CenterY returns the vertical centre of the band.
func (b Band) CenterY() float64 {
	return (b.Top + b.Bottom) / 2
}

// containsY reports whether y lies within the closed interval [Top, Bottom].
func (b Band) containsY(y float64) bool {
	return b.Top <= y && y <= b.Bottom
}

// BandObstacle describes one obstacle's vertical footprint for band
// construction: a centre Y and a height. Horizontal extent is irrelevant
// here; bands always span the full chart width.
type BandObstacle struct {
	CenterY float64
	Height  float64
}

// BandOptions configures BuildBands.
//
// MinBandHeight and MaxBandHeight must be positive; if MaxBandHeight is
// smaller than MinBandHeight it is treated as MinBandHeight. PaddingBands
// must be >= 0 and PaddingBandHeight is clamped up to MinBandHeight, so the
// zero value of PaddingBandHeight means "use MinBandHeight".
type BandOptions struct {
	MinBandHeight     float64
	MaxBandHeight     float64
	PaddingBands      int
	PaddingBandHeight float64
}

// DefaultBandOptions returns band options with two padding bands of
// MinBandHeight each, the configuration used by the chart frontend.
func DefaultBandOptions(minBandHeight, maxBandHeight float64) BandOptions {
	return BandOptions{
		MinBandHeight:     minBandHeight,
		MaxBandHeight:     maxBandHeight,
		PaddingBands:      2,
		PaddingBandHeight: minBandHeight,
	}
}

// BuildBands partitions the chart's vertical extent [0, dims.Height) into
// placement bands that avoid the given obstacles.
//
// The build runs in three phases. First, obstacles are sorted by centre Y and
// swept top to bottom, emitting alternating gap bands and obstacle bands;
// every obstacle's footprint uses a single effective height, the maximum of
// all obstacle heights and MinBandHeight. Second, bands taller than
// MaxBandHeight are split into padding bands flush to their top and bottom
// plus one central band, falling back to equal division when the remainder
// would be too small. Third, undersized bands are merged into their smaller
// neighbour until every band reaches MinBandHeight or no neighbour remains.
//
// With no obstacles the result is a single band spanning the full height.
// An obstacle entirely outside the chart area still participates in the
// sweep; its footprint is clipped to the chart.
func BuildBands(dims Size, obstacles []BandObstacle, opts BandOptions) ([]Band, error) {
	if dims.Width <= 0 || dims.Height <= 0 {
		return nil, &InvalidDimensionsError{Width: dims.Width, Height: dims.Height}
	}
	if opts.MinBandHeight <= 0 {
		return nil, &InvalidBandHeightError{Name: "minBandHeight", Value: opts.MinBandHeight}
	}
	if opts.MaxBandHeight <= 0 {
		return nil, &InvalidBandHeightError{Name: "maxBandHeight", Value: opts.MaxBandHeight}
	}
	if opts.PaddingBands < 0 {
		return nil, &InvalidPaddingError{PaddingBands: opts.PaddingBands}
	}
	for _, o := range obstacles {
		if o.Height < 0 {
			return nil, &InvalidBandHeightError{Name: "obstacle height", Value: o.Height}
		}
	}

	if len(obstacles) == 0 {
		return []Band{{Index: 0, Top: 0, Bottom: dims.Height, Left: 0, Right: dims.Width}}, nil
	}

	minH := opts.MinBandHeight
	maxH := opts.MaxBandHeight
	if maxH < minH {
		maxH = minH
	}
	padH := opts.PaddingBandHeight
	if padH < minH {
		padH = minH
	}

	bands := initialBands(dims, obstacles, minH)
	bands = splitBands(bands, minH, maxH, opts.PaddingBands, padH)
	bands = mergeUndersized(bands, minH)

	sort.SliceStable(bands, func(i, j int) bool { return bands[i].Top < bands[j].Top })
	for i := range bands {
		bands[i].Index = i
	}
	return bands, nil
}

// initialBands sweeps obstacles in centre-Y order, emitting gap bands between
// obstacle footprints and obstacle bands over them. Footprints are clipped to
// [0, chartHeight) so the emitted bands tile the chart exactly.
func initialBands(dims Size, obstacles []BandObstacle, minH float64) []Band {
	if len(obstacles) == 0 {
		return []Band{{Top: 0, Bottom: dims.Height, Left: 0, Right: dims.Width}}
	}

	sorted := make([]BandObstacle, len(obstacles))
	copy(sorted, obstacles)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CenterY < sorted[j].CenterY })

	// One clearance height for all obstacles: the maximum.
	effH := minH
	for _, o := range sorted {
		if o.Height > effH {
			effH = o.Height
		}
	}

	var bands []Band
	emit := func(top, bottom float64) {
		if bottom > top {
			bands = append(bands, Band{Top: top, Bottom: bottom, Left: 0, Right: dims.Width})
		}
	}

	cursor := 0.0
	curTop, curBottom := 0.0, 0.0
	open := false
	for _, o := range sorted {
		top := o.CenterY - effH/2
		bottom := o.CenterY + effH/2
		if open && top <= curBottom {
			// Footprint overlaps the current obstacle band; extend downward.
			if bottom > curBottom {
				curBottom = bottom
			}
			continue
		}
		if open {
			emit(clamp(curTop, cursor, dims.Height), clamp(curBottom, cursor, dims.Height))
			cursor = max(cursor, min(curBottom, dims.Height))
		}
		// Gap between the previous obstacle's bottom and the new top.
		emit(cursor, clamp(top, cursor, dims.Height))
		cursor = max(cursor, min(max(top, cursor), dims.Height))
		curTop, curBottom = top, bottom
		open = true
	}
	if open {
		emit(clamp(curTop, cursor, dims.Height), clamp(curBottom, cursor, dims.Height))
		cursor = max(cursor, min(curBottom, dims.Height))
	}
	// Final gap down to the chart bottom.
	emit(cursor, dims.Height)

	if len(bands) == 0 {
		// Every footprint fell outside the chart.
		bands = append(bands, Band{Top: 0, Bottom: dims.Height, Left: 0, Right: dims.Width})
	}
	return bands
}

// splitBands divides bands taller than maxH. The preferred layout reserves
// padCount thin bands flush to the top and bottom so labels anchored near a
// tall gap's edges do not hunt through its centre; when the central remainder
// would undershoot minH, the band is divided equally instead.
func splitBands(bands []Band, minH, maxH float64, padCount int, padH float64) []Band {
	out := make([]Band, 0, len(bands))
	for _, b := range bands {
		h := b.Height()
		if h <= maxH {
			out = append(out, b)
			continue
		}

		central := h - 2*float64(padCount)*padH
		if central >= minH {
			top := b.Top
			for i := 0; i < padCount; i++ {
				out = append(out, Band{Top: top, Bottom: top + padH, Left: b.Left, Right: b.Right})
				top += padH
			}
			out = append(out, Band{Top: top, Bottom: top + central, Left: b.Left, Right: b.Right})
			top += central
			for i := 0; i < padCount; i++ {
				out = append(out, Band{Top: top, Bottom: top + padH, Left: b.Left, Right: b.Right})
				top += padH
			}
			continue
		}

		n := int(h / padH)
		if n < 1 {
			n = 1
		}
		step := h / float64(n)
		for i := 0; i < n; i++ {
			top := b.Top + float64(i)*step
			bottom := top + step
			if i == n-1 {
				bottom = b.Bottom
			}
			out = append(out, Band{Top: top, Bottom: bottom, Left: b.Left, Right: b.Right})
		}
	}
	return out
}

// mergeUndersized repeatedly folds bands shorter than minH into their
// smaller neighbour, re-examining the merged band before moving on. A lone
// undersized band with no neighbours is kept as-is.
func mergeUndersized(bands []Band, minH float64) []Band {
	i := 0
	for i < len(bands) {
		if bands[i].Height() >= minH || len(bands) == 1 {
			i++
			continue
		}

		var into int
		switch {
		case i == 0:
			into = 1
		case i == len(bands)-1:
			into = i - 1
		case bands[i-1].Height() <= bands[i+1].Height():
			into = i - 1
		default:
			into = i + 1
		}

		lo, hi := i, into
		if hi < lo {
			lo, hi = hi, lo
		}
		merged := Band{
			Top:    bands[lo].Top,
			Bottom: bands[hi].Bottom,
			Left:   bands[lo].Left,
			Right:  bands[lo].Right,
		}
		bands = append(bands[:lo], append([]Band{merged}, bands[hi+1:]...)...)
		i = lo
	}
	return bands
}
