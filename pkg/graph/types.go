package graph

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// NodeKind identifies what a node stands for.
type NodeKind string

// Node kinds.
const (
	KindSolution   NodeKind = "solution"   // a solution file
	KindProject    NodeKind = "project"    // a project file
	KindDependency NodeKind = "dependency" // an unversioned dependency target
	KindVersion    NodeKind = "version"    // a dependency at one version
	KindGroup      NodeKind = "group"      // a version-conflict container
)

// Category IDs declared in every document.
const (
	CategorySolution        = "Solution"
	CategoryVersionConflict = "VersionConflict"
)

// CategoryContains marks containment links (DGML's built-in grouping category).
const CategoryContains = "Contains"

// GroupExpanded marks a node as an expanded container.
const GroupExpanded = "Expanded"

// Layout defaults.
const (
	DefaultLayout    = "Sugiyama"
	DefaultZoomLevel = -1.0
)

// DefaultCategories are the styles for solution and version-conflict nodes.
var DefaultCategories = []Category{
	{ID: CategorySolution, Label: "Solution", Background: "#FF3C7FB1"},
	{ID: CategoryVersionConflict, Label: "Version conflict", Background: "#FFE51400"},
}

// =============================================================================
// Graph Document
// =============================================================================

// Graph is a directed graph document with styling categories.
type Graph struct {
	Layout     string     `json:"layout"`
	ZoomLevel  float64    `json:"zoom_level"`
	Nodes      []Node     `json:"nodes"`
	Links      []Link     `json:"links"`
	Categories []Category `json:"categories"`
}

// Node is a vertex of the document.
type Node struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Kind     NodeKind `json:"kind"`
	Name     string   `json:"name"`
	Version  string   `json:"version,omitempty"`
	Group    string   `json:"group,omitempty"`    // GroupExpanded for containers
	Category string   `json:"category,omitempty"` // Category ID for styling
}

// IsContainer reports whether the node groups other nodes.
func (n Node) IsContainer() bool { return n.Group != "" }

// Link is a directed edge of the document.
type Link struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Category string `json:"category,omitempty"` // CategoryContains for containment
}

// IsContainment reports whether the link nests Target inside Source.
func (l Link) IsContainment() bool { return l.Category == CategoryContains }

// Category styles nodes that reference it.
type Category struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Background string `json:"background"`
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// CountNodes returns the number of nodes of kind.
func (g *Graph) CountNodes(kind NodeKind) int {
	count := 0
	for _, n := range g.Nodes {
		if n.Kind == kind {
			count++
		}
	}
	return count
}

// LinksFrom returns the links whose source is id, in document order.
func (g *Graph) LinksFrom(id string) []Link {
	var out []Link
	for _, l := range g.Links {
		if l.Source == id {
			out = append(out, l)
		}
	}
	return out
}
