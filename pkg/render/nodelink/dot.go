package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/slngraph/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed appends the node kind to every label.
	Detailed bool
	// Flat disables clusters; version containers are drawn as ordinary
	// nodes linked to their children.
	Flat bool
}

// ToDOT converts a graph document to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(g *graph.Graph, opts Options) string {
	colors := make(map[string]string, len(g.Categories))
	for _, c := range g.Categories {
		colors[c.ID] = dotColor(c.Background)
	}

	// Children of version containers go inside the cluster.
	clustered := make(map[string]string)
	if !opts.Flat {
		for _, l := range g.Links {
			if n, ok := g.Node(l.Source); ok && l.IsContainment() && n.Kind == graph.KindGroup {
				clustered[l.Target] = l.Source
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		if _, inside := clustered[n.ID]; inside {
			continue
		}
		if n.Kind == graph.KindGroup && !opts.Flat {
			writeCluster(&buf, g, n, colors, opts)
			continue
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, colors, opts), ", "))
	}

	buf.WriteString("\n")
	for _, l := range g.Links {
		if _, inside := clustered[l.Target]; inside && l.IsContainment() {
			continue
		}
		if l.IsContainment() {
			fmt.Fprintf(&buf, "  %q -> %q [style=dashed, arrowhead=none];\n", l.Source, l.Target)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", l.Source, l.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeCluster(buf *bytes.Buffer, g *graph.Graph, n graph.Node, colors map[string]string, opts Options) {
	fmt.Fprintf(buf, "  subgraph %q {\n", "cluster_"+n.ID)
	fmt.Fprintf(buf, "    label=%q;\n", fmtLabel(n, opts.Detailed))
	buf.WriteString("    style=\"rounded,dashed\";\n")
	if c := colors[n.Category]; c != "" {
		fmt.Fprintf(buf, "    color=%q;\n", c)
	}
	for _, l := range g.LinksFrom(n.ID) {
		if !l.IsContainment() {
			continue
		}
		child, ok := g.Node(l.Target)
		if !ok {
			continue
		}
		fmt.Fprintf(buf, "    %q [%s];\n", child.ID, strings.Join(fmtAttrs(child, colors, opts), ", "))
	}
	buf.WriteString("  }\n")
}

func fmtLabel(n graph.Node, detailed bool) string {
	if !detailed {
		return n.Label
	}
	return n.Label + "\n" + string(n.Kind)
}

func fmtAttrs(n graph.Node, colors map[string]string, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed))}
	if c := colors[n.Category]; c != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", c))
	}
	if n.Kind == graph.KindSolution {
		attrs = append(attrs, "fontcolor=white", "penwidth=2")
	}
	return attrs
}

// dotColor converts an #AARRGGBB color to Graphviz #RRGGBBAA.
func dotColor(argb string) string {
	hex := strings.TrimPrefix(argb, "#")
	switch len(hex) {
	case 8:
		return "#" + hex[2:] + hex[:2]
	case 6:
		return "#" + hex
	default:
		return ""
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion to PDF or PNG with the render package.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing starts at the origin
// and scales with its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
