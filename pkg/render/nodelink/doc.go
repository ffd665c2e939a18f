// Package nodelink renders graph documents as Graphviz node-link diagrams.
//
// # Overview
//
// DGML is only viewable inside Visual Studio. This package gives the same
// document a portable rendering: nodes appear as boxes connected by arrows,
// and version-conflict containers become Graphviz clusters holding one box
// per observed version.
//
// # Usage
//
// Convert a graph document to DOT, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output, convert the SVG with the render package:
//
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # DOT Format
//
// The generated DOT uses left-to-right layout (rankdir=LR) with rounded box
// nodes. Solution nodes are filled with their category color and link to
// their projects with dashed edges. Reference edges are solid.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
