// Package discovery finds solutions and projects beneath a directory and
// extracts their declared dependencies.
//
// # Association Rule
//
// Every solution file (default "*.sln") found anywhere under the root
// becomes a [deps.Solution]. Its projects are every project file (default
// "*.csproj") found anywhere under the solution file's directory. The
// solution file's content is never read: physical placement is the only
// association rule, so a project in a subdirectory shared by two nested
// solutions belongs to both.
//
// Zero-length project files are treated as stubs and skipped.
//
// # Dependency Sources
//
// Each project's dependency list is assembled in this order:
//
//  1. ProjectReference elements, named by their Name child element or, if
//     absent, by the base name of their Include path
//  2. Reference elements, whose Include attribute is an assembly name with
//     an optional "Version=" token
//  3. PackageReference elements (SDK-style projects)
//  4. package entries in a packages.config file beside the project file
//
// Elements are matched by local name anywhere in the document, so MSBuild
// namespaces do not matter.
//
// # Failure Handling
//
// Discovery is not fault tolerant. An unreadable or malformed project or
// manifest file aborts the whole run with an error from
// [github.com/matzehuels/slngraph/pkg/errors]. A root with no solution
// files yields an empty result and no error.
//
// # Usage
//
//	f := discovery.New(discovery.Options{})
//	solutions, err := f.Find(ctx, "/src/monorepo")
package discovery
