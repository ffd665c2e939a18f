// Package pipeline provides the discovery-to-output pipeline for slngraph.
//
// # Architecture
//
// The pipeline consists of four stages, each consuming the previous
// stage's value:
//
//  1. Discover: find solution and project files under a root directory
//  2. Group: collect the distinct version set of every name
//  3. Build: map the model to a graph document
//  4. Render: serialize the document in each requested format
//
// Everything runs in memory; nothing is written until [Result.WriteFiles]
// is called, so a failing stage leaves no partial output behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Root: dir})
//	if err != nil {
//	    return err
//	}
//	paths, err := result.WriteFiles(dir)
package pipeline

import (
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slngraph/pkg/deps"
	"github.com/matzehuels/slngraph/pkg/discovery"
	"github.com/matzehuels/slngraph/pkg/errors"
	"github.com/matzehuels/slngraph/pkg/graph"
	"github.com/matzehuels/slngraph/pkg/versions"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultOutputName is the base name of every output file.
const DefaultOutputName = "output"

// DefaultPNGScale is the scale factor for PNG output.
const DefaultPNGScale = 2.0

// Format constants for output formats.
const (
	FormatDGML = "dgml"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// DefaultFormats are rendered when none are requested.
var DefaultFormats = []string{FormatDGML}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDGML: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
	FormatPDF:  true,
	FormatPNG:  true,
}

// formatNames lists ValidFormats in display order.
var formatNames = []string{FormatDGML, FormatJSON, FormatDOT, FormatSVG, FormatPDF, FormatPNG}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Root is the directory searched for solutions.
	Root string

	// Discovery options
	Discovery discovery.Options

	// Graph document options
	Graph graph.Options

	// Render options
	Formats    []string // Output formats (default: dgml)
	OutputName string   // Output base name (default: output)
	PNGScale   float64  // PNG scale factor (default: 2)
	Detailed   bool     // Include node kinds in DOT labels
	Flat       bool     // Draw version containers as plain nodes in DOT

	// Logger receives stage progress (default: discard).
	Logger *log.Logger

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Solutions is the discovered model.
	Solutions []deps.Solution

	// Groups holds the version classification of every name.
	Groups *versions.Groups

	// Graph is the built document.
	Graph *graph.Graph

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Formats lists the rendered formats in request order.
	Formats []string

	// OutputName is the base name used by WriteFiles.
	OutputName string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Model        deps.Stats
	Names        int
	Conflicts    int
	NodeCount    int
	LinkCount    int
	DiscoverTime time.Duration
	GroupTime    time.Duration
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// Total returns the summed duration of all stages.
func (s Stats) Total() time.Duration {
	return s.DiscoverTime + s.GroupTime + s.BuildTime + s.RenderTime
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: %s)", format, strings.Join(formatNames, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(list string) []string {
	var out []string
	for _, f := range strings.Split(list, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Root == "" {
		return errors.New(errors.ErrCodeInvalidInput, "root directory is required")
	}
	if err := o.Discovery.Validate(); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = slices.Clone(DefaultFormats)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.OutputName == "" {
		o.OutputName = DefaultOutputName
	}
	if err := errors.ValidateFilename(o.OutputName); err != nil {
		return err
	}
	if o.PNGScale <= 0 {
		o.PNGScale = DefaultPNGScale
	}
	o.Graph = o.Graph.WithDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// =============================================================================
// Output
// =============================================================================

// Filename returns the output file name for format.
func Filename(outputName, format string) string {
	return outputName + "." + format
}

// WriteFiles writes every artifact to dir as <OutputName>.<format>,
// creating or truncating existing files. It returns the written paths in
// format order.
func (r *Result) WriteFiles(dir string) ([]string, error) {
	paths := make([]string, 0, len(r.Formats))
	for _, format := range r.Formats {
		data, ok := r.Artifacts[format]
		if !ok {
			continue
		}
		path := filepath.Join(dir, Filename(r.OutputName, format))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
