package main

import (
	"fmt"
	"log"

	"github.com/kavaeric/airchart/pkg/labelplace"
)

// Two strategies for the same crowded chart: a tight one that gives up
// quickly, and a loose one that sweeps further.
const tightStrategy = `
firstPass:
  modes: [right, left]
  maxDistance: {x: 30, y: 20}
sweep:
  horizontal: sweep-to-right
  verticalSearch: [0]
  stepFactor: 1
  maxIterations: 3
  maxDistance: {x: 30, y: 20}
  xAlign: centre
`

const looseStrategy = `
firstPass:
  modes: [right, left, top-right, bottom-right, top-left, bottom-left]
sweep:
  horizontal: sweep-to-right
  verticalSearch: [0, -1, 1, -2, 2]
  stepFactor: 0.5
  xAlign: centre
`

func main() {
	dims := labelplace.Size{Width: 300, Height: 120}

	bands, err := labelplace.BuildBands(dims, nil, labelplace.DefaultBandOptions(20, 40))
	if err != nil {
		log.Fatal(err)
	}
	occupancy, err := labelplace.ComputeOccupancy(bands, nil, dims.Width, dims.Height)
	if err != nil {
		log.Fatal(err)
	}

	// A pile of same-sized labels sharing one anchor neighbourhood.
	var objects []labelplace.Object
	for i := 0; i < 8; i++ {
		objects = append(objects, labelplace.Object{
			ID:         fmt.Sprintf("label-%d", i),
			Anchor:     labelplace.Point{X: 80 + float64(i)*4, Y: 60},
			Dimensions: labelplace.Size{Width: 70, Height: 14},
		})
	}

	for _, doc := range []struct {
		name string
		yaml string
	}{
		{"tight", tightStrategy},
		{"loose", looseStrategy},
	} {
		strategy, err := labelplace.ParseStrategy([]byte(doc.yaml))
		if err != nil {
			log.Fatal(err)
		}

		result, err := labelplace.Resolve(labelplace.Input{
			Dimensions: dims,
			Bands:      bands,
			Occupancy:  occupancy,
			Objects:    objects,
			Strategy:   strategy,
		})
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s strategy: %d placed, %d failed\n",
			doc.name, len(result.Placements), len(result.Failed))
	}
}
