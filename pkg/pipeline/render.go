package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/slngraph/pkg/graph"
	"github.com/matzehuels/slngraph/pkg/render"
	"github.com/matzehuels/slngraph/pkg/render/dgml"
	"github.com/matzehuels/slngraph/pkg/render/nodelink"
)

// Render generates output artifacts in the requested formats. The DOT
// source and SVG are produced at most once and shared by the formats that
// derive from them.
func Render(ctx context.Context, g *graph.Graph, opts Options) (map[string][]byte, error) {
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	var (
		dot string
		svg []byte
	)
	dotSource := func() string {
		if dot == "" {
			dot = nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed, Flat: opts.Flat})
		}
		return dot
	}
	svgImage := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		var err error
		svg, err = nodelink.RenderSVG(ctx, dotSource())
		return svg, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDGML:
			data, err = dgml.Marshal(g)
		case FormatJSON:
			data, err = graph.MarshalGraph(g)
		case FormatDOT:
			data = []byte(dotSource())
		case FormatSVG:
			data, err = svgImage()
		case FormatPDF:
			if data, err = svgImage(); err == nil {
				data, err = render.ToPDF(ctx, data)
			}
		case FormatPNG:
			if data, err = svgImage(); err == nil {
				data, err = render.ToPNG(ctx, data, opts.PNGScale)
			}
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
