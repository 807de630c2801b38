package chartdata

import (
	"github.com/pkg/errors"

	"github.com/kavaeric/airchart/pkg/labelplace"
)

// LinearScale maps a data domain onto a pixel range.
type LinearScale struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// NewLinearScale builds a scale. The domain must have positive extent; the
// range may be inverted (RangeMin > RangeMax), which is how the Y axis puts
// larger values nearer the top of the chart.
func NewLinearScale(domainMin, domainMax, rangeMin, rangeMax float64) (LinearScale, error) {
	if domainMax <= domainMin {
		return LinearScale{}, errors.Errorf("degenerate scale domain [%g, %g]", domainMin, domainMax)
	}
	return LinearScale{
		DomainMin: domainMin,
		DomainMax: domainMax,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}, nil
}

// Scale maps v from the domain into the pixel range. Values outside the
// domain extrapolate linearly.
func (s LinearScale) Scale(v float64) float64 {
	return s.RangeMin + (v-s.DomainMin)*(s.RangeMax-s.RangeMin)/(s.DomainMax-s.DomainMin)
}

// Projection maps aircraft records into chart pixel space: range in km on
// the X axis, passenger capacity on the Y axis with larger capacities
// toward the top.
type Projection struct {
	X LinearScale
	Y LinearScale
}

// FitProjection fits scales to the fleet's data extents, inset by margin
// pixels on every side.
func FitProjection(fleet []Aircraft, width, height, margin float64) (Projection, error) {
	if len(fleet) == 0 {
		return Projection{}, errors.New("cannot fit projection to an empty fleet")
	}
	if width <= 2*margin || height <= 2*margin {
		return Projection{}, errors.Errorf("chart %gx%g too small for margin %g", width, height, margin)
	}

	minRange, maxRange := fleet[0].RangeKm, fleet[0].RangeKm
	minPax, maxPax := fleet[0].PaxTypical, fleet[0].PaxTypical
	for _, a := range fleet[1:] {
		minRange = min(minRange, a.RangeKm)
		maxRange = max(maxRange, a.RangeKm)
		minPax = min(minPax, a.PaxTypical)
		maxPax = max(maxPax, a.PaxTypical)
	}
	if maxRange == minRange {
		maxRange = minRange + 1
	}
	if maxPax == minPax {
		maxPax = minPax + 1
	}

	x, err := NewLinearScale(minRange, maxRange, margin, width-margin)
	if err != nil {
		return Projection{}, err
	}
	// Inverted range: higher capacity sits nearer the top.
	y, err := NewLinearScale(float64(minPax), float64(maxPax), height-margin, margin)
	if err != nil {
		return Projection{}, err
	}
	return Projection{X: x, Y: y}, nil
}

// Anchor returns the marker centre for an aircraft.
func (p Projection) Anchor(a Aircraft) labelplace.Point {
	return labelplace.Point{
		X: p.X.Scale(a.RangeKm),
		Y: p.Y.Scale(float64(a.PaxTypical)),
	}
}

// MarkerRect returns the obstacle rectangle for an aircraft's marker.
func (p Projection) MarkerRect(a Aircraft, radius float64) labelplace.Rect {
	c := p.Anchor(a)
	return labelplace.Rect{
		MinX: c.X - radius,
		MinY: c.Y - radius,
		MaxX: c.X + radius,
		MaxY: c.Y + radius,
	}
}
