// Package deps defines the build-metadata model that slngraph extracts from
// a source tree.
//
// # Overview
//
// The model is a strict ownership tree:
//
//   - [Solution]: a named group of projects found under one .sln file's directory
//   - [Project]: a named build unit with an ordered list of dependencies
//   - [Dependency]: one declared reference, with its [Identity] and [Origin]
//
// Dependencies never point at other model values directly. They carry an
// [Identity] (name plus optional version), and everything downstream
// (version grouping, graph rendering) joins on identities. This keeps the
// model acyclic even when projects in different solutions reference each
// other.
//
// # Identities
//
// [Identity] is a comparable struct and can be used directly as a map key.
// Two identities are equal iff their names match and their versions match,
// where "no version" is distinct from every version string, including "":
//
//	deps.Named("Core") == deps.Named("Core")           // true
//	deps.At("Json", "1.0") == deps.At("Json", "1.0")   // true
//	deps.Named("Json") == deps.At("Json", "")          // false
//
// Comparison is exact and case-sensitive; no normalization is applied.
//
// # Origins
//
// A dependency is either a [ProjectReference] (another project by name,
// never versioned) or a [PackageReference] (an external package, usually
// versioned). Use [ProjectDependency], [PackageDependency] and
// [UnversionedPackage] to construct them so that the origin/version
// pairing stays consistent.
package deps
