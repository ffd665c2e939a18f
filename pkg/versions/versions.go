// Package versions groups dependency occurrences by name and classifies each
// name by how many distinct versions were observed for it.
//
// A name's version set is compared by exact string equality; no semantic
// version ordering or range logic is applied. Project names register with
// an absent version and never count toward the set.
//
//	g := versions.Collect(solutions)
//	switch g.Classify("Util") {
//	case versions.Plain:    // no version ever declared
//	case versions.Single:   // exactly one version
//	case versions.Conflict: // several versions: render as a group
//	}
package versions

import (
	"slices"

	"github.com/matzehuels/slngraph/pkg/deps"
)

// Kind classifies a name by its distinct version count.
type Kind int

const (
	Plain    Kind = iota // no versions: a single unversioned node
	Single               // one version: a single name[version] node
	Conflict             // several versions: a container with one child per version
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Single:
		return "single"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Group is the distinct version set observed for one name.
type Group struct {
	Name     string   // Project or dependency name
	Versions []string // Distinct versions in first-seen order; never includes the absent version
}

// Kind classifies the group.
func (g Group) Kind() Kind {
	switch len(g.Versions) {
	case 0:
		return Plain
	case 1:
		return Single
	default:
		return Conflict
	}
}

// Groups indexes the version groups of a whole model.
// Groups is immutable after [Collect] returns.
type Groups struct {
	order  []string          // names in first-seen order
	groups map[string]*Group // name -> group
	seen   map[deps.Identity]struct{}
}

// Collect builds the version groups for all projects and dependencies in
// solutions. Traversal runs solution by solution, project by project, in
// declaration order; this order only affects the first-seen ordering of
// names and versions, never the distinct sets themselves.
func Collect(solutions []deps.Solution) *Groups {
	g := &Groups{
		groups: make(map[string]*Group),
		seen:   make(map[deps.Identity]struct{}),
	}
	for _, s := range solutions {
		for _, p := range s.Projects {
			g.add(p.ID())
			for _, d := range p.Dependencies {
				g.add(d.ID)
			}
		}
	}
	g.seen = nil
	return g
}

func (g *Groups) add(id deps.Identity) {
	grp, ok := g.groups[id.Name]
	if !ok {
		grp = &Group{Name: id.Name}
		g.groups[id.Name] = grp
		g.order = append(g.order, id.Name)
	}
	if !id.HasVersion() {
		return
	}
	if _, dup := g.seen[id]; dup {
		return
	}
	g.seen[id] = struct{}{}
	grp.Versions = append(grp.Versions, id.Version)
}

// Len returns the number of distinct names.
func (g *Groups) Len() int { return len(g.order) }

// Classify returns the kind of name. Unknown names are Plain.
func (g *Groups) Classify(name string) Kind {
	grp, ok := g.groups[name]
	if !ok {
		return Plain
	}
	return grp.Kind()
}

// Versions returns the distinct versions of name in first-seen order.
func (g *Groups) Versions(name string) []string {
	grp, ok := g.groups[name]
	if !ok {
		return nil
	}
	return slices.Clone(grp.Versions)
}

// Set returns the distinct versions of name sorted lexically. Unlike
// [Groups.Versions] the result does not depend on traversal order.
func (g *Groups) Set(name string) []string {
	vs := g.Versions(name)
	slices.Sort(vs)
	return vs
}

// Conflicts returns every group with more than one version, in first-seen
// name order.
func (g *Groups) Conflicts() []Group {
	var out []Group
	for _, name := range g.order {
		if grp := g.groups[name]; grp.Kind() == Conflict {
			out = append(out, Group{Name: grp.Name, Versions: slices.Clone(grp.Versions)})
		}
	}
	return out
}
