// Package graph builds the renderer-neutral directed graph document that
// slngraph serializes to DGML, DOT and JSON.
//
// # Architecture
//
// The package sits between the build model and the output formats:
//
//   - [github.com/matzehuels/slngraph/pkg/deps]: solutions, projects, dependencies
//   - [github.com/matzehuels/slngraph/pkg/versions]: version groups per name
//   - [Graph] (this package): nodes, links and categories
//   - pkg/render/dgml, pkg/render/nodelink: serializers
//
// [Build] computes the whole document in memory before anything is written.
//
// # Node Keys
//
// Node IDs are derived from (kind, name, version) by [Key]:
//
//	Key(KindSolution, "App", "")    // "sln:App"
//	Key(KindProject, "Core", "")    // "Core"
//	Key(KindVersion, "Json", "1.0") // "Json[1.0]"
//	Key(KindGroup, "Util", "")      // "Util"
//
// Projects, unversioned dependencies and version-group containers share
// the bare-name key space on purpose: a project, every reference to it and
// every package of the same name collapse into one node, which gives the
// "where does this name appear" view across solutions.
//
// # Classification
//
// Each dependency name renders according to its versions.Kind:
//
//   - Plain: one node keyed by name
//   - Single: one node keyed name[version]
//   - Conflict: one container keyed by name, Group "Expanded" and
//     Category "VersionConflict", plus one child per version linked by
//     "Contains"
//
// # Serialization
//
// [MarshalGraph] emits the document as indented JSON for tooling that does
// not speak DGML.
package graph
