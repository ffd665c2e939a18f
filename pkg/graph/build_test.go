package graph

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/slngraph/pkg/deps"
	"github.com/matzehuels/slngraph/pkg/versions"
)

func roundTripModel() []deps.Solution {
	return []deps.Solution{{Name: "App", Projects: []deps.Project{
		{Name: "Core"},
		{Name: "Web", Dependencies: []deps.Dependency{
			deps.ProjectDependency("Core"),
			deps.PackageDependency("Json", "1.0"),
		}},
	}}}
}

func conflictModel() []deps.Solution {
	return []deps.Solution{
		{Name: "First", Projects: []deps.Project{
			{Name: "Api", Dependencies: []deps.Dependency{deps.PackageDependency("Util", "1.0")}},
		}},
		{Name: "Second", Projects: []deps.Project{
			{Name: "Worker", Dependencies: []deps.Dependency{deps.PackageDependency("Util", "2.0")}},
		}},
	}
}

func TestBuild_Empty(t *testing.T) {
	g := Build(nil, nil, Options{})

	if len(g.Nodes) != 0 {
		t.Errorf("len(Nodes) = %d, want 0", len(g.Nodes))
	}
	if len(g.Links) != 0 {
		t.Errorf("len(Links) = %d, want 0", len(g.Links))
	}
	if g.Nodes == nil || g.Links == nil {
		t.Error("Nodes and Links must be non-nil so sections are always emitted")
	}
	if diff := cmp.Diff(DefaultCategories, g.Categories); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}
	if g.Layout != DefaultLayout || g.ZoomLevel != DefaultZoomLevel {
		t.Errorf("Layout/ZoomLevel = %q/%v, want defaults", g.Layout, g.ZoomLevel)
	}
}

func TestBuild_RoundTrip(t *testing.T) {
	g := Build(roundTripModel(), nil, Options{})

	wantNodes := []Node{
		{ID: "sln:App", Label: "App", Kind: KindSolution, Name: "App", Group: GroupExpanded, Category: CategorySolution},
		{ID: "Core", Label: "Core", Kind: KindProject, Name: "Core"},
		{ID: "Web", Label: "Web", Kind: KindProject, Name: "Web"},
		{ID: "Json[1.0]", Label: "Json[1.0]", Kind: KindVersion, Name: "Json", Version: "1.0"},
	}
	if diff := cmp.Diff(wantNodes, g.Nodes); diff != "" {
		t.Errorf("Nodes mismatch (-want +got):\n%s", diff)
	}

	wantLinks := []Link{
		{Source: "sln:App", Target: "Core", Category: CategoryContains},
		{Source: "sln:App", Target: "Web", Category: CategoryContains},
		{Source: "Web", Target: "Core"},
		{Source: "Web", Target: "Json[1.0]"},
	}
	if diff := cmp.Diff(wantLinks, g.Links); diff != "" {
		t.Errorf("Links mismatch (-want +got):\n%s", diff)
	}

	if got := g.CountNodes(KindGroup); got != 0 {
		t.Errorf("CountNodes(group) = %d, want 0", got)
	}
}

func TestBuild_VersionConflict(t *testing.T) {
	g := Build(conflictModel(), nil, Options{})

	util, ok := g.Node("Util")
	if !ok {
		t.Fatal("container node Util missing")
	}
	if util.Kind != KindGroup || util.Group != GroupExpanded || util.Category != CategoryVersionConflict {
		t.Errorf("Util = %+v, want expanded version-conflict group", util)
	}

	for _, id := range []string{"Util[1.0]", "Util[2.0]"} {
		if _, ok := g.Node(id); !ok {
			t.Errorf("child node %s missing", id)
		}
	}

	wantGroupLinks := []Link{
		{Source: "Util", Target: "Util[1.0]", Category: CategoryContains},
		{Source: "Util", Target: "Util[2.0]", Category: CategoryContains},
	}
	if diff := cmp.Diff(wantGroupLinks, g.LinksFrom("Util")); diff != "" {
		t.Errorf("group links mismatch (-want +got):\n%s", diff)
	}

	wantRefs := map[string]string{"Api": "Util[1.0]", "Worker": "Util[2.0]"}
	for src, dst := range wantRefs {
		links := g.LinksFrom(src)
		if len(links) != 1 || links[0].Target != dst {
			t.Errorf("LinksFrom(%s) = %v, want single link to %s", src, links, dst)
		}
	}
}

func TestBuild_ClassificationTotality(t *testing.T) {
	for k := 0; k <= 4; k++ {
		t.Run(fmt.Sprintf("%d versions", k), func(t *testing.T) {
			var ds []deps.Dependency
			if k == 0 {
				ds = append(ds, deps.UnversionedPackage("Lib"))
			}
			for i := 0; i < k; i++ {
				ds = append(ds, deps.PackageDependency("Lib", fmt.Sprintf("%d.0", i+1)))
			}
			solutions := []deps.Solution{{Name: "S", Projects: []deps.Project{{Name: "P", Dependencies: ds}}}}

			g := Build(solutions, nil, Options{})

			var plain, versioned, groups int
			for _, n := range g.Nodes {
				if n.Name != "Lib" {
					continue
				}
				switch n.Kind {
				case KindDependency:
					plain++
				case KindVersion:
					versioned++
				case KindGroup:
					groups++
				}
			}

			switch {
			case k == 0:
				if plain != 1 || versioned != 0 || groups != 0 {
					t.Errorf("plain/versioned/groups = %d/%d/%d, want 1/0/0", plain, versioned, groups)
				}
			case k == 1:
				if plain != 0 || versioned != 1 || groups != 0 {
					t.Errorf("plain/versioned/groups = %d/%d/%d, want 0/1/0", plain, versioned, groups)
				}
			default:
				if plain != 0 || versioned != k || groups != 1 {
					t.Errorf("plain/versioned/groups = %d/%d/%d, want 0/%d/1", plain, versioned, groups, k)
				}
				if got := len(g.LinksFrom("Lib")); got != k {
					t.Errorf("container links = %d, want %d", got, k)
				}
			}
		})
	}
}

func TestBuild_ContainmentInvariant(t *testing.T) {
	solutions := []deps.Solution{
		{Name: "A", Projects: []deps.Project{{Name: "A1"}, {Name: "A2"}}},
		{Name: "B", Projects: []deps.Project{{Name: "B1"}}},
	}
	g := Build(solutions, nil, Options{})

	for _, s := range solutions {
		sid := Key(KindSolution, s.Name, "")
		counts := map[string]int{}
		for _, l := range g.LinksFrom(sid) {
			if l.IsContainment() {
				counts[l.Target]++
			}
		}
		for _, p := range s.Projects {
			if counts[p.Name] != 1 {
				t.Errorf("%s -> %s containment edges = %d, want 1", s.Name, p.Name, counts[p.Name])
			}
			delete(counts, p.Name)
		}
		if len(counts) != 0 {
			t.Errorf("%s has containment edges to foreign projects: %v", s.Name, counts)
		}
	}
}

func TestBuild_UnversionedReferenceToConflictTargetsContainer(t *testing.T) {
	solutions := conflictModel()
	solutions[1].Projects = append(solutions[1].Projects, deps.Project{
		Name:         "Legacy",
		Dependencies: []deps.Dependency{deps.UnversionedPackage("Util")},
	})

	g := Build(solutions, nil, Options{})
	links := g.LinksFrom("Legacy")
	if len(links) != 1 || links[0].Target != "Util" {
		t.Errorf("LinksFrom(Legacy) = %v, want link to container Util", links)
	}
	if got := g.CountNodes(KindGroup); got != 1 {
		t.Errorf("CountNodes(group) = %d, want 1", got)
	}
}

func TestBuild_ProjectWithConflictingPackageNameBecomesContainer(t *testing.T) {
	solutions := []deps.Solution{{Name: "S", Projects: []deps.Project{
		{Name: "Util"},
		{Name: "A", Dependencies: []deps.Dependency{deps.PackageDependency("Util", "1.0")}},
		{Name: "B", Dependencies: []deps.Dependency{deps.PackageDependency("Util", "2.0")}},
	}}}

	g := Build(solutions, nil, Options{})

	var count int
	for _, n := range g.Nodes {
		if n.ID == "Util" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("nodes with ID Util = %d, want 1", count)
	}
	n, _ := g.Node("Util")
	if !n.IsContainer() || n.Category != CategoryVersionConflict {
		t.Errorf("Util = %+v, want version-conflict container", n)
	}
}

func TestBuild_SharedNamesMergeAcrossSolutions(t *testing.T) {
	solutions := []deps.Solution{
		{Name: "A", Projects: []deps.Project{{Name: "P", Dependencies: []deps.Dependency{deps.PackageDependency("Json", "1.0")}}}},
		{Name: "B", Projects: []deps.Project{{Name: "Q", Dependencies: []deps.Dependency{deps.PackageDependency("Json", "1.0")}}}},
	}

	g := Build(solutions, nil, Options{})
	if got := g.CountNodes(KindVersion); got != 1 {
		t.Errorf("CountNodes(version) = %d, want 1", got)
	}
}

func TestBuild_DuplicateLinksCollapsed(t *testing.T) {
	shared := deps.Project{Name: "Inner", Dependencies: []deps.Dependency{
		deps.PackageDependency("Json", "1.0"),
		deps.PackageDependency("Json", "1.0"),
	}}
	solutions := []deps.Solution{
		{Name: "Outer", Projects: []deps.Project{shared}},
		{Name: "Nested", Projects: []deps.Project{shared}},
	}

	g := Build(solutions, nil, Options{})
	if got := len(g.LinksFrom("Inner")); got != 1 {
		t.Errorf("len(LinksFrom(Inner)) = %d, want 1", got)
	}
	if got := g.CountNodes(KindProject); got != 1 {
		t.Errorf("CountNodes(project) = %d, want 1", got)
	}
}

func TestBuild_SolutionAndProjectWithSameName(t *testing.T) {
	solutions := []deps.Solution{{Name: "App", Projects: []deps.Project{{Name: "App"}}}}

	g := Build(solutions, nil, Options{})
	if len(g.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2", len(g.Nodes))
	}
	want := []Link{{Source: "sln:App", Target: "App", Category: CategoryContains}}
	if diff := cmp.Diff(want, g.Links); diff != "" {
		t.Errorf("Links mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_UsesProvidedGroups(t *testing.T) {
	solutions := roundTripModel()
	groups := versions.Collect(append(solutions, conflictModel()...))

	g := Build(solutions, groups, Options{Layout: "ForceDirected", ZoomLevel: Zoom(1.5)})
	if g.Layout != "ForceDirected" || g.ZoomLevel != 1.5 {
		t.Errorf("Layout/ZoomLevel = %q/%v", g.Layout, g.ZoomLevel)
	}
	if _, ok := g.Node("Json[1.0]"); !ok {
		t.Error("Json[1.0] missing")
	}
}

func TestBuild_ZeroZoomIsKept(t *testing.T) {
	if g := Build(nil, nil, Options{ZoomLevel: Zoom(0)}); g.ZoomLevel != 0 {
		t.Errorf("ZoomLevel = %v, want 0", g.ZoomLevel)
	}
	if g := Build(nil, nil, Options{}); g.ZoomLevel != DefaultZoomLevel {
		t.Errorf("ZoomLevel = %v, want %v", g.ZoomLevel, DefaultZoomLevel)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := Build(conflictModel(), nil, Options{})
	b := Build(conflictModel(), nil, Options{})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Build() not deterministic (-first +second):\n%s", diff)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		kind          NodeKind
		name, version string
		want          string
	}{
		{KindSolution, "App", "", "sln:App"},
		{KindProject, "Core", "", "Core"},
		{KindDependency, "System", "", "System"},
		{KindVersion, "Json", "1.0", "Json[1.0]"},
		{KindGroup, "Util", "", "Util"},
	}

	for _, tt := range tests {
		if got := Key(tt.kind, tt.name, tt.version); got != tt.want {
			t.Errorf("Key(%s, %q, %q) = %q, want %q", tt.kind, tt.name, tt.version, got, tt.want)
		}
	}
}
