package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/slngraph/pkg/buildinfo"
	"github.com/matzehuels/slngraph/pkg/discovery"
	"github.com/matzehuels/slngraph/pkg/graph"
	"github.com/matzehuels/slngraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and the config file.
	appName = "slngraph"

	// configFileName is looked up in the root directory when --config is not given.
	configFileName = ".slngraph.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// defaultSkipDirs are never descended into during discovery.
var defaultSkipDirs = []string{".git", ".vs", "node_modules"}

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // summary and usage output
	Err    io.Writer // progress spinner output
}

// New creates a new CLI instance. Logs and the spinner go to errw, the
// summary goes to out.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		Out:    out,
		Err:    errw,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// options holds the command's flag values.
type options struct {
	configPath  string
	formats     string
	outputName  string
	metricsFile string
	layout      string
	zoomLevel   float64
	detailed    bool
	flat        bool
}

// RootCommand creates the slngraph command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   appName + " [flags] <directory>",
		Short: "slngraph maps solution and project dependencies to a DGML graph",
		Long: `slngraph scans a directory tree for solution and project files, collects their
project references and package dependencies, and writes a DGML graph document
(output.dgml) to the scanned directory. Packages referenced with more than one
version are grouped into a highlighted container.`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				printUsage(c.Out)
				printDone(c.Out)
				return nil
			}
			return c.run(cmd, args[0], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "TOML config file (default: <directory>/"+configFileName+")")
	flags.StringVarP(&opts.formats, "format", "f", "", "output formats, comma-separated: dgml, json, dot, svg, pdf, png (default: dgml)")
	flags.StringVar(&opts.outputName, "output-name", "", "output file base name (default: "+pipeline.DefaultOutputName+")")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")
	flags.StringVar(&opts.layout, "layout", "", "DGML layout algorithm (default: Sugiyama)")
	flags.Float64Var(&opts.zoomLevel, "zoom", 0, "DGML initial zoom level (default: -1, fit)")
	flags.BoolVar(&opts.detailed, "detailed", false, "include node kinds in DOT labels")
	flags.BoolVar(&opts.flat, "flat", false, "draw version groups as plain nodes in DOT output")

	return root
}

// pipelineOptions merges config file values and explicitly set flags into
// pipeline options. Flags win over the file.
func pipelineOptions(cmd *cobra.Command, root string, cfg Config, opts options) pipeline.Options {
	po := pipeline.Options{
		Root: root,
		Discovery: discovery.Options{
			SolutionExt: cfg.SolutionExt,
			ProjectExt:  cfg.ProjectExt,
			Manifest:    cfg.Manifest,
			SkipDirs:    defaultSkipDirs,
		},
		Formats:    cfg.Formats,
		OutputName: cfg.OutputName,
		PNGScale:   cfg.PNGScale,
		Detailed:   cfg.Detailed,
		Flat:       cfg.Flat,
	}
	po.Graph.Layout = cfg.Layout
	po.Graph.ZoomLevel = cfg.ZoomLevel
	if cfg.SkipDirs != nil {
		po.Discovery.SkipDirs = cfg.SkipDirs
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		po.Formats = pipeline.ParseFormats(opts.formats)
	}
	if flags.Changed("output-name") {
		po.OutputName = opts.outputName
	}
	if flags.Changed("layout") {
		po.Graph.Layout = opts.layout
	}
	if flags.Changed("zoom") {
		po.Graph.ZoomLevel = graph.Zoom(opts.zoomLevel)
	}
	if flags.Changed("detailed") {
		po.Detailed = opts.detailed
	}
	if flags.Changed("flat") {
		po.Flat = opts.flat
	}
	return po
}
