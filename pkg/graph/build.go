package graph

import (
	"github.com/matzehuels/slngraph/pkg/deps"
	"github.com/matzehuels/slngraph/pkg/versions"
)

// Options configures document-level settings.
type Options struct {
	Layout    string   // Graph layout algorithm (default: Sugiyama)
	ZoomLevel *float64 // Initial zoom; nil means DefaultZoomLevel (fit)
}

// Zoom returns a pointer to z for [Options.ZoomLevel].
func Zoom(z float64) *float64 { return &z }

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Layout == "" {
		opts.Layout = DefaultLayout
	}
	if opts.ZoomLevel == nil {
		opts.ZoomLevel = Zoom(DefaultZoomLevel)
	}
	return opts
}

// Key derives a node ID from (kind, name, version). Projects, plain
// dependencies and groups intentionally share the bare-name key.
func Key(kind NodeKind, name, version string) string {
	switch kind {
	case KindSolution:
		return "sln:" + name
	case KindVersion:
		return deps.At(name, version).String()
	default:
		return name
	}
}

// Build maps solutions and their version groups to a graph document.
// If groups is nil it is computed from solutions.
//
// Nodes are emitted as solutions, then projects, then dependency targets
// in first-seen declaration order. Links are emitted as solution
// containment, then project references, then group containment. Node IDs
// and links are unique; a repeated node keeps its first label.
func Build(solutions []deps.Solution, groups *versions.Groups, opts Options) *Graph {
	if groups == nil {
		groups = versions.Collect(solutions)
	}
	opts = opts.WithDefaults()

	b := &builder{
		g: &Graph{
			Layout:     opts.Layout,
			ZoomLevel:  *opts.ZoomLevel,
			Nodes:      []Node{},
			Links:      []Link{},
			Categories: append([]Category(nil), DefaultCategories...),
		},
		index:  make(map[string]int),
		linked: make(map[Link]struct{}),
		groups: groups,
	}

	for _, s := range solutions {
		b.addNode(Node{
			ID:       Key(KindSolution, s.Name, ""),
			Label:    s.Name,
			Kind:     KindSolution,
			Name:     s.Name,
			Group:    GroupExpanded,
			Category: CategorySolution,
		})
	}
	for _, s := range solutions {
		for _, p := range s.Projects {
			b.addNode(Node{ID: Key(KindProject, p.Name, ""), Label: p.Name, Kind: KindProject, Name: p.Name})
		}
	}

	var containment, references []Link
	for _, s := range solutions {
		sid := Key(KindSolution, s.Name, "")
		for _, p := range s.Projects {
			containment = append(containment, Link{Source: sid, Target: Key(KindProject, p.Name, ""), Category: CategoryContains})
		}
	}
	for _, s := range solutions {
		for _, p := range s.Projects {
			pid := Key(KindProject, p.Name, "")
			for _, d := range p.Dependencies {
				references = append(references, Link{Source: pid, Target: b.target(d.ID)})
			}
		}
	}

	b.addLinks(containment)
	b.addLinks(references)
	b.addLinks(b.grouped)
	return b.g
}

type builder struct {
	g       *Graph
	index   map[string]int // node ID -> position in g.Nodes
	linked  map[Link]struct{}
	groups  *versions.Groups
	grouped []Link // container -> version links, in emission order
}

// addNode appends n unless its ID exists. An existing node is upgraded to a
// container when n is one, keeping its label.
func (b *builder) addNode(n Node) {
	i, ok := b.index[n.ID]
	if !ok {
		b.index[n.ID] = len(b.g.Nodes)
		b.g.Nodes = append(b.g.Nodes, n)
		return
	}
	if n.IsContainer() && !b.g.Nodes[i].IsContainer() {
		existing := &b.g.Nodes[i]
		existing.Kind = n.Kind
		existing.Group = n.Group
		existing.Category = n.Category
	}
}

func (b *builder) addLinks(links []Link) {
	for _, l := range links {
		if _, dup := b.linked[l]; dup {
			continue
		}
		b.linked[l] = struct{}{}
		b.g.Links = append(b.g.Links, l)
	}
}

// target ensures the node representing id exists and returns its key.
func (b *builder) target(id deps.Identity) string {
	name := id.Name
	switch b.groups.Classify(name) {
	case versions.Conflict:
		b.addGroup(name)
		if id.HasVersion() {
			return Key(KindVersion, name, id.Version)
		}
		return Key(KindGroup, name, "")
	default:
		if id.HasVersion() {
			key := Key(KindVersion, name, id.Version)
			b.addNode(Node{ID: key, Label: id.String(), Kind: KindVersion, Name: name, Version: id.Version})
			return key
		}
		key := Key(KindDependency, name, "")
		b.addNode(Node{ID: key, Label: name, Kind: KindDependency, Name: name})
		return key
	}
}

// addGroup emits a version-conflict container followed by one child per
// version, the first time name is referenced.
func (b *builder) addGroup(name string) {
	gid := Key(KindGroup, name, "")
	if i, ok := b.index[gid]; ok && b.g.Nodes[i].Kind == KindGroup {
		return
	}
	b.addNode(Node{
		ID:       gid,
		Label:    name,
		Kind:     KindGroup,
		Name:     name,
		Group:    GroupExpanded,
		Category: CategoryVersionConflict,
	})
	for _, v := range b.groups.Versions(name) {
		vid := Key(KindVersion, name, v)
		b.addNode(Node{ID: vid, Label: deps.At(name, v).String(), Kind: KindVersion, Name: name, Version: v})
		b.grouped = append(b.grouped, Link{Source: gid, Target: vid, Category: CategoryContains})
	}
}
