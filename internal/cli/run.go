package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/slngraph/internal/metrics"
	"github.com/matzehuels/slngraph/pkg/errors"
	"github.com/matzehuels/slngraph/pkg/graph"
	"github.com/matzehuels/slngraph/pkg/observability"
	"github.com/matzehuels/slngraph/pkg/pipeline"
)

// ExitCode reports err on the error writer and returns the process exit
// status: 0 for nil, 130 for cancellation, 1 otherwise. At debug level the
// full coded chain is printed.
func (c *CLI) ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return 130
	case c.Logger.GetLevel() <= LogDebug:
		fmt.Fprintln(c.Err, "Error:", err)
	default:
		fmt.Fprintln(c.Err, "Error:", errors.UserMessage(err))
	}
	return 1
}

// run executes the pipeline over dir and writes the outputs into it.
func (c *CLI) run(cmd *cobra.Command, dir string, opts options) error {
	ctx := cmd.Context()

	root, err := filepath.Abs(dir)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", dir)
	}

	cfg, cfgPath, err := resolveConfig(root, opts.configPath)
	if err != nil {
		return err
	}
	if cfgPath != "" {
		c.Logger.Debug("loaded config", "path", cfgPath)
	}

	if opts.metricsFile != "" {
		collector := metrics.New()
		collector.Register()
		defer observability.Reset()
		defer func() {
			if err := collector.WriteFile(opts.metricsFile); err != nil {
				c.Logger.Warn("failed to write metrics", "path", opts.metricsFile, "error", err)
				return
			}
			c.Logger.Debug("wrote metrics", "path", opts.metricsFile)
		}()
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, c.Err, "Scanning "+root+"...")
	if isTerminal(c.Err) {
		spinner.Start()
	}

	result, err := pipeline.NewRunner(c.Logger).Execute(ctx, pipelineOptions(cmd, root, cfg, opts))
	spinner.Stop()
	if err != nil {
		return err
	}

	paths, err := result.WriteFiles(root)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d file(s)", len(paths)))

	c.printSummary(result, paths)
	return nil
}

// printSummary reports what was found and written.
func (c *CLI) printSummary(result *pipeline.Result, paths []string) {
	w := c.Out
	model := result.Stats.Model

	if model.Solutions == 0 {
		printWarning(w, "No solutions found")
	} else {
		printSuccess(w, "Mapped %s", StyleTitle.Render(pluralize(model.Solutions, "solution")))
	}
	printNumber(w, "projects", model.Projects)
	printNumber(w, "references", model.ProjectReferences+model.PackageReferences)
	printNumber(w, "dependencies", dependencyNodes(result.Graph))
	printNumber(w, "conflicts", result.Stats.Conflicts)

	for _, grp := range result.Groups.Conflicts() {
		printWarning(w, "%s has %d versions", grp.Name, len(grp.Versions))
		printDetail(w, "%s", joinVersions(grp.Versions))
	}

	printInfo(w, "Output")
	for _, p := range paths {
		printFile(w, p)
	}
	printKeyValue(w, "total time", result.Stats.Total().String())
	printDone(w)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// dependencyNodes counts the dependency targets in g, including version
// containers and their children.
func dependencyNodes(g *graph.Graph) int {
	return g.CountNodes(graph.KindDependency) + g.CountNodes(graph.KindVersion) + g.CountNodes(graph.KindGroup)
}
