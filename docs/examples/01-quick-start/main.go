package main

import (
	"fmt"
	"log"

	"github.com/kavaeric/airchart/pkg/labelplace"
)

func main() {
	dims := labelplace.Size{Width: 400, Height: 300}

	// One marker in the middle of the chart.
	bandObstacles := []labelplace.BandObstacle{{CenterY: 150, Height: 10}}
	obstacles := []labelplace.Rect{{MinX: 195, MinY: 145, MaxX: 205, MaxY: 155}}

	// Build bands around the marker.
	bands, err := labelplace.BuildBands(dims, bandObstacles,
		labelplace.DefaultBandOptions(20, 100))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Bands: %d\n", len(bands))

	// Derive what horizontal space each band has left.
	occupancy, err := labelplace.ComputeOccupancy(bands, obstacles, dims.Width, dims.Height)
	if err != nil {
		log.Fatal(err)
	}

	// Place two labels next to the marker.
	result, err := labelplace.Resolve(labelplace.Input{
		Dimensions: dims,
		Bands:      bands,
		Occupancy:  occupancy,
		Objects: []labelplace.Object{
			{ID: "A320neo", Anchor: labelplace.Point{X: 200, Y: 150}, Dimensions: labelplace.Size{Width: 60, Height: 14}},
			{ID: "A350-900", Anchor: labelplace.Point{X: 210, Y: 148}, Dimensions: labelplace.Size{Width: 64, Height: 14}},
		},
		Strategy: labelplace.DefaultStrategy(),
	})
	if err != nil {
		log.Fatal(err)
	}

	for id, p := range result.Placements {
		fmt.Printf("%-10s -> (%.1f, %.1f) in band %d\n", id, p.Position.X, p.Position.Y, p.BandIndex)
	}
	for id := range result.Failed {
		fmt.Printf("%-10s -> not placed\n", id)
	}
}
