// Package dgml serializes graph documents as DGML, the Directed Graph
// Markup Language understood by Visual Studio's graph viewer.
//
// The document has a fixed shape:
//
//	<?xml version="1.0" encoding="utf-8"?>
//	<DirectedGraph Layout="Sugiyama" ZoomLevel="-1" xmlns="http://schemas.microsoft.com/vs/2009/dgml">
//	  <Nodes>...</Nodes>
//	  <Links>...</Links>
//	  <Categories>...</Categories>
//	</DirectedGraph>
//
// All three sections are always present, even when empty. Names and
// versions are XML-escaped, so identifiers containing markup-sensitive
// characters produce well-formed output.
package dgml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/slngraph/pkg/graph"
)

// Namespace is the DGML XML namespace.
const Namespace = "http://schemas.microsoft.com/vs/2009/dgml"

// Header is written before the root element.
const Header = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

type document struct {
	XMLName    xml.Name   `xml:"DirectedGraph"`
	Layout     string     `xml:"Layout,attr"`
	ZoomLevel  string     `xml:"ZoomLevel,attr"`
	Xmlns      string     `xml:"xmlns,attr"`
	Nodes      nodes      `xml:"Nodes"`
	Links      links      `xml:"Links"`
	Categories categories `xml:"Categories"`
}

type nodes struct {
	Node []node `xml:"Node"`
}

type node struct {
	ID       string `xml:"Id,attr"`
	Label    string `xml:"Label,attr"`
	Group    string `xml:"Group,attr,omitempty"`
	Category string `xml:"Category,attr,omitempty"`
}

type links struct {
	Link []link `xml:"Link"`
}

type link struct {
	Source   string `xml:"Source,attr"`
	Target   string `xml:"Target,attr"`
	Category string `xml:"Category,attr,omitempty"`
}

type categories struct {
	Category []category `xml:"Category"`
}

type category struct {
	ID         string `xml:"Id,attr"`
	Label      string `xml:"Label,attr,omitempty"`
	Background string `xml:"Background,attr,omitempty"`
}

func fromGraph(g *graph.Graph) document {
	doc := document{
		Layout:    g.Layout,
		ZoomLevel: strconv.FormatFloat(g.ZoomLevel, 'g', -1, 64),
		Xmlns:     Namespace,
	}
	for _, n := range g.Nodes {
		doc.Nodes.Node = append(doc.Nodes.Node, node{ID: n.ID, Label: n.Label, Group: n.Group, Category: n.Category})
	}
	for _, l := range g.Links {
		doc.Links.Link = append(doc.Links.Link, link{Source: l.Source, Target: l.Target, Category: l.Category})
	}
	for _, c := range g.Categories {
		doc.Categories.Category = append(doc.Categories.Category, category{ID: c.ID, Label: c.Label, Background: c.Background})
	}
	return doc
}

// Write encodes g as an indented DGML document to w.
func Write(w io.Writer, g *graph.Graph) error {
	if _, err := io.WriteString(w, Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(fromGraph(g)); err != nil {
		return fmt.Errorf("encode dgml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode dgml: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal returns g as DGML bytes.
func Marshal(g *graph.Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
