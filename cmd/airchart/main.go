// Command airchart renders an SVG chart of airliners (passenger capacity vs
// range) with automatically placed labels.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kavaeric/airchart/internal/chartdata"
	"github.com/kavaeric/airchart/pkg/labelplace"
)

type options struct {
	input        string
	output       string
	strategyFile string
	width        float64
	height       float64
	margin       float64
	markerRadius float64
	minBand      float64
	maxBand      float64
	verbose      bool
}

func main() {
	log := logrus.New()
	opts := options{}

	root := &cobra.Command{
		Use:   "airchart",
		Short: "Render an airliner capacity-vs-range chart with placed labels",
		Long: `airchart reads an airliner dataset (CSV), projects it into pixel
space, runs the label placement engine, and writes the chart as SVG.

The placement strategy can be tuned with a YAML file; see the labelplace
package documentation for the format.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			return run(log, opts)
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.input, "input", "i", "airliners.csv", "input dataset (CSV)")
	flags.StringVarP(&opts.output, "output", "o", "airchart.svg", "output file (SVG)")
	flags.StringVar(&opts.strategyFile, "strategy", "", "placement strategy file (YAML); defaults to the built-in strategy")
	flags.Float64Var(&opts.width, "width", 960, "chart width in pixels")
	flags.Float64Var(&opts.height, "height", 600, "chart height in pixels")
	flags.Float64Var(&opts.margin, "margin", 48, "chart margin in pixels")
	flags.Float64Var(&opts.markerRadius, "marker-radius", 4, "marker radius in pixels")
	flags.Float64Var(&opts.minBand, "min-band-height", 18, "minimum placement band height")
	flags.Float64Var(&opts.maxBand, "max-band-height", 90, "maximum placement band height")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(log *logrus.Logger, opts options) error {
	f, err := os.Open(opts.input)
	if err != nil {
		return err
	}
	defer f.Close()

	fleet, err := chartdata.LoadCSV(f, chartdata.LoadOptions{
		SkipErrors: true,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	log.WithField("aircraft", len(fleet)).Info("dataset loaded")

	strategy := labelplace.DefaultStrategy()
	if opts.strategyFile != "" {
		data, err := os.ReadFile(opts.strategyFile)
		if err != nil {
			return err
		}
		strategy, err = labelplace.ParseStrategy(data)
		if err != nil {
			return err
		}
		log.WithField("file", opts.strategyFile).Debug("strategy loaded")
	}

	proj, err := chartdata.FitProjection(fleet, opts.width, opts.height, opts.margin)
	if err != nil {
		return err
	}

	dims := labelplace.Size{Width: opts.width, Height: opts.height}

	// Markers are the obstacles labels must avoid, both vertically (band
	// construction) and horizontally (occupancy).
	bandObstacles := make([]labelplace.BandObstacle, len(fleet))
	obstacles := make([]labelplace.Rect, len(fleet))
	objects := make([]labelplace.Object, len(fleet))
	for i, a := range fleet {
		anchor := proj.Anchor(a)
		marker := proj.MarkerRect(a, opts.markerRadius)
		bandObstacles[i] = labelplace.BandObstacle{CenterY: anchor.Y, Height: marker.Height()}
		obstacles[i] = marker
		objects[i] = labelplace.Object{
			ID:         a.Label(),
			Anchor:     anchor,
			Dimensions: labelSize(a.Label()),
		}
	}

	bands, err := labelplace.BuildBands(dims, bandObstacles,
		labelplace.DefaultBandOptions(opts.minBand, opts.maxBand))
	if err != nil {
		return err
	}
	log.WithField("bands", len(bands)).Debug("bands built")

	occupancy, err := labelplace.ComputeOccupancy(bands, obstacles, dims.Width, dims.Height)
	if err != nil {
		return err
	}

	result, err := labelplace.Resolve(labelplace.Input{
		Dimensions:      dims,
		Bands:           bands,
		Occupancy:       occupancy,
		Objects:         objects,
		ClusterDistance: &labelplace.Distance{X: 12, Y: 12},
		Strategy:        strategy,
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"placed":   len(result.Placements),
		"failed":   len(result.Failed),
		"clusters": len(result.Debug.Clusters),
	}).Info("labels resolved")
	for id := range result.Failed {
		log.WithField("label", id).Warn("label could not be placed")
	}

	out, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := writeSVG(out, dims, fleet, proj, opts.markerRadius, result); err != nil {
		return err
	}
	log.WithField("file", opts.output).Info("chart written")
	return nil
}

// Approximate text metrics for the default chart font.
const (
	labelCharWidth  = 6.2
	labelLineHeight = 14.0
	labelPadding    = 4.0
)

// labelSize estimates the pixel bounding box of a label's text.
func labelSize(text string) labelplace.Size {
	return labelplace.Size{
		Width:  float64(len(text))*labelCharWidth + 2*labelPadding,
		Height: labelLineHeight,
	}
}
