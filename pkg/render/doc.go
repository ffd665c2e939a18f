// Package render provides output rendering for slngraph graph documents.
//
// # Overview
//
// Rendering consumes a [graph.Graph] that has already been fully built; no
// renderer sees the source model. The subpackages cover:
//
//   - [dgml]: Directed Graph Markup Language for Visual Studio (the default)
//   - [nodelink]: Graphviz DOT source and in-process SVG rendering
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [graph.Graph]: github.com/matzehuels/slngraph/pkg/graph.Graph
// [dgml]: github.com/matzehuels/slngraph/pkg/render/dgml
// [nodelink]: github.com/matzehuels/slngraph/pkg/render/nodelink
package render
