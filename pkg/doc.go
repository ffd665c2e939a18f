// Package pkg provides the core libraries for slngraph solution dependency mapping.
//
// # Overview
//
// slngraph scans a source tree for solution and project files and produces a
// DGML document (Visual Studio's Directed Graph Markup Language) showing which
// projects each solution contains, what each project references, and which
// packages are referenced at more than one version. The pkg directory is
// organized into:
//
//  1. [deps] - Domain model (solutions, projects, dependency identities)
//  2. [discovery] - Filesystem scanning and project/manifest parsing
//  3. [versions] - Version grouping and conflict classification
//  4. [graph] - Graph document construction and JSON serialization
//  5. [render] - DGML, DOT, SVG, PDF and PNG output
//  6. [pipeline] - Orchestration (discover → group → build → render)
//
// # Architecture
//
// The typical data flow through slngraph:
//
//	Directory tree (*.sln, *.csproj, packages.config)
//	         ↓
//	    [discovery] package (find solutions, parse projects)
//	         ↓
//	    [versions] package (distinct version set per name)
//	         ↓
//	    [graph] package (nodes, links, categories)
//	         ↓
//	    [render] packages (DGML / DOT / SVG)
//	         ↓
//	    <root>/output.dgml
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Root: dir})
//	if err != nil {
//	    return err
//	}
//	paths, err := result.WriteFiles(dir)
//
// Supporting packages: [errors] (structured error codes), [observability]
// (instrumentation hooks) and [buildinfo] (version stamping).
//
// [deps]: github.com/matzehuels/slngraph/pkg/deps
// [discovery]: github.com/matzehuels/slngraph/pkg/discovery
// [versions]: github.com/matzehuels/slngraph/pkg/versions
// [graph]: github.com/matzehuels/slngraph/pkg/graph
// [render]: github.com/matzehuels/slngraph/pkg/render
// [pipeline]: github.com/matzehuels/slngraph/pkg/pipeline
// [errors]: github.com/matzehuels/slngraph/pkg/errors
// [observability]: github.com/matzehuels/slngraph/pkg/observability
// [buildinfo]: github.com/matzehuels/slngraph/pkg/buildinfo
package pkg
