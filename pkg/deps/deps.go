package deps

// Origin records where a dependency was declared.
type Origin int

const (
	// ProjectReference is a reference to another project by name.
	// Project references never carry a version.
	ProjectReference Origin = iota
	// PackageReference is a reference to an external package, declared in
	// a project file or in the package manifest beside it.
	PackageReference
)

// String returns a short name for the origin.
func (o Origin) String() string {
	switch o {
	case ProjectReference:
		return "project"
	case PackageReference:
		return "package"
	default:
		return "unknown"
	}
}

// Dependency is a single declared dependency of a project.
// The origin is fixed at construction; use the constructors below.
type Dependency struct {
	ID     Identity
	Origin Origin
}

// ProjectDependency returns a reference to the project called name.
func ProjectDependency(name string) Dependency {
	return Dependency{ID: Named(name), Origin: ProjectReference}
}

// PackageDependency returns a package reference pinned to version.
func PackageDependency(name, version string) Dependency {
	return Dependency{ID: At(name, version), Origin: PackageReference}
}

// UnversionedPackage returns a package reference whose source declared no
// version.
func UnversionedPackage(name string) Dependency {
	return Dependency{ID: Named(name), Origin: PackageReference}
}

// Name returns the dependency's target name.
func (d Dependency) Name() string { return d.ID.Name }

// IsProject reports whether d references another project.
func (d Dependency) IsProject() bool { return d.Origin == ProjectReference }

// String renders the dependency's identity.
func (d Dependency) String() string { return d.ID.String() }

// Project is a build unit and its declared dependencies, project
// references first and package references after, each in declaration
// order.
type Project struct {
	Name         string       // File base name without extension
	Path         string       // Project file path, for diagnostics only
	Dependencies []Dependency // Declared dependencies in source order
}

// ID returns the project's own identity. Projects are never versioned.
func (p Project) ID() Identity { return Named(p.Name) }

// Solution is a named set of projects found beneath one solution file.
type Solution struct {
	Name     string    // File base name without extension
	Path     string    // Solution file path, for diagnostics only
	Projects []Project // Projects in discovery order
}

// Stats summarizes a model for logging and reporting.
type Stats struct {
	Solutions          int
	Projects           int
	ProjectReferences  int
	PackageReferences  int
	DistinctIdentities int
}

// Summarize counts solutions, projects and dependencies across solutions.
func Summarize(solutions []Solution) Stats {
	var st Stats
	seen := make(map[Identity]struct{})
	st.Solutions = len(solutions)
	for _, s := range solutions {
		st.Projects += len(s.Projects)
		for _, p := range s.Projects {
			for _, d := range p.Dependencies {
				if d.IsProject() {
					st.ProjectReferences++
				} else {
					st.PackageReferences++
				}
				seen[d.ID] = struct{}{}
			}
		}
	}
	st.DistinctIdentities = len(seen)
	return st
}
