package main

import (
	"fmt"
	"io"

	"github.com/kavaeric/airchart/internal/chartdata"
	"github.com/kavaeric/airchart/pkg/labelplace"
)

// writeSVG renders markers, leader lines, and placed labels. Hand-rolled:
// the output is a handful of primitives and needs no SVG library.
func writeSVG(w io.Writer, dims labelplace.Size, fleet []chartdata.Aircraft,
	proj chartdata.Projection, markerRadius float64, result *labelplace.Result) error {

	var err error
	p := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format+"\n", args...)
		}
	}

	p(`<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`,
		dims.Width, dims.Height, dims.Width, dims.Height)
	p(`<rect width="%g" height="%g" fill="#ffffff"/>`, dims.Width, dims.Height)

	// Leader lines below everything else.
	p(`<g stroke="#b0b0b0" stroke-width="1">`)
	for _, a := range fleet {
		placement, ok := result.Placements[a.Label()]
		if !ok {
			continue
		}
		anchor := proj.Anchor(a)
		p(`<line x1="%g" y1="%g" x2="%g" y2="%g"/>`,
			anchor.X, anchor.Y, placement.Position.X, placement.Position.Y)
	}
	p(`</g>`)

	p(`<g fill="#2a5db0">`)
	for _, a := range fleet {
		anchor := proj.Anchor(a)
		p(`<circle cx="%g" cy="%g" r="%g"/>`, anchor.X, anchor.Y, markerRadius)
	}
	p(`</g>`)

	p(`<g font-family="sans-serif" font-size="11" text-anchor="middle" dominant-baseline="middle" fill="#222222">`)
	for _, a := range fleet {
		placement, ok := result.Placements[a.Label()]
		if !ok {
			continue
		}
		p(`<text x="%g" y="%g">%s</text>`,
			placement.Position.X, placement.Position.Y, escapeXML(a.Label()))
	}
	p(`</g>`)

	p(`</svg>`)
	return err
}

// escapeXML escapes the characters that matter inside SVG text content.
func escapeXML(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '&':
			out = append(out, []rune("&amp;")...)
		case '<':
			out = append(out, []rune("&lt;")...)
		case '>':
			out = append(out, []rune("&gt;")...)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
