package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slngraph/pkg/deps"
	"github.com/matzehuels/slngraph/pkg/discovery"
	"github.com/matzehuels/slngraph/pkg/graph"
	"github.com/matzehuels/slngraph/pkg/observability"
	"github.com/matzehuels/slngraph/pkg/versions"
)

// Runner executes the pipeline and reports each stage to the registered
// observability hooks.
//
// The Runner is stateless except for the logger; it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete discover → group → build → render pipeline.
// Nothing is written to disk; see [Result.WriteFiles].
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts:  make(map[string][]byte),
		Formats:    opts.Formats,
		OutputName: opts.OutputName,
	}

	// Stage 1: Discover
	discoverStart := time.Now()
	observability.Pipeline().OnDiscoverStart(ctx, opts.Root)
	solutions, err := r.Discover(ctx, opts)
	result.Stats.DiscoverTime = time.Since(discoverStart)
	result.Stats.Model = deps.Summarize(solutions)
	observability.Pipeline().OnDiscoverComplete(ctx, opts.Root, observability.DiscoverStats{
		Solutions:    result.Stats.Model.Solutions,
		Projects:     result.Stats.Model.Projects,
		Dependencies: result.Stats.Model.ProjectReferences + result.Stats.Model.PackageReferences,
	}, result.Stats.DiscoverTime, err)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	result.Solutions = solutions

	r.Logger.Info("discovered solutions",
		"root", opts.Root,
		"solutions", result.Stats.Model.Solutions,
		"projects", result.Stats.Model.Projects,
		"duration", result.Stats.DiscoverTime)

	// Stage 2: Group
	groupStart := time.Now()
	groups := versions.Collect(solutions)
	result.Groups = groups
	result.Stats.GroupTime = time.Since(groupStart)
	result.Stats.Names = groups.Len()
	result.Stats.Conflicts = len(groups.Conflicts())
	observability.Pipeline().OnGroupComplete(ctx, result.Stats.Names, result.Stats.Conflicts, result.Stats.GroupTime)

	r.Logger.Info("grouped versions",
		"names", result.Stats.Names,
		"conflicts", result.Stats.Conflicts,
		"duration", result.Stats.GroupTime)
	for _, c := range groups.Conflicts() {
		r.Logger.Debug("version conflict", "name", c.Name, "versions", c.Versions)
	}

	// Stage 3: Build
	buildStart := time.Now()
	g := graph.Build(solutions, groups, opts.Graph)
	result.Graph = g
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = len(g.Nodes)
	result.Stats.LinkCount = len(g.Links)
	observability.Pipeline().OnBuildComplete(ctx, result.Stats.NodeCount, result.Stats.LinkCount, result.Stats.BuildTime)

	r.Logger.Info("built graph",
		"nodes", result.Stats.NodeCount,
		"links", result.Stats.LinkCount,
		"duration", result.Stats.BuildTime)

	// Stage 4: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(ctx, g, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Discover runs only the discovery stage. Discovery debug output goes to
// the runner's logger.
func (r *Runner) Discover(ctx context.Context, opts Options) ([]deps.Solution, error) {
	r.applyLogger(&opts)
	dopts := opts.Discovery
	if dopts.Logger == nil {
		logger := opts.Logger
		dopts.Logger = func(format string, args ...any) { logger.Debugf(format, args...) }
	}
	return discovery.New(dopts).Find(ctx, opts.Root)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
