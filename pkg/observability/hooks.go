// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about pipeline stages and the files read during discovery.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so library packages never
// import a metrics backend. The slngraph command registers the Prometheus
// collector from internal/metrics when --metrics-file is given.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(collector)
//	    observability.SetFileHooks(collector)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnDiscoverStart(ctx, root)
//	// ... walk the tree ...
//	observability.Pipeline().OnDiscoverComplete(ctx, root, stats, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// DiscoverStats summarizes a completed discovery stage.
type DiscoverStats struct {
	Solutions    int
	Projects     int
	Dependencies int
}

// PipelineHooks receives events from the graph pipeline.
type PipelineHooks interface {
	// Discovery events
	OnDiscoverStart(ctx context.Context, root string)
	OnDiscoverComplete(ctx context.Context, root string, stats DiscoverStats, duration time.Duration, err error)

	// Grouping and graph construction
	OnGroupComplete(ctx context.Context, names, conflicts int, duration time.Duration)
	OnBuildComplete(ctx context.Context, nodes, links int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// File Hooks
// =============================================================================

// File kinds reported to [FileHooks].
const (
	FileSolution = "solution"
	FileProject  = "project"
	FileManifest = "manifest"
)

// FileHooks receives events for each input file discovery reads.
type FileHooks interface {
	// OnFileParsed records a parsed file and the number of dependencies it
	// contributed. err is non-nil when the file could not be parsed.
	OnFileParsed(ctx context.Context, kind, path string, dependencies int, err error)

	// OnFileSkipped records a file ignored because it is empty.
	OnFileSkipped(ctx context.Context, kind, path string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnDiscoverStart(context.Context, string) {}
func (NoopPipelineHooks) OnDiscoverComplete(context.Context, string, DiscoverStats, time.Duration, error) {
}
func (NoopPipelineHooks) OnGroupComplete(context.Context, int, int, time.Duration)         {}
func (NoopPipelineHooks) OnBuildComplete(context.Context, int, int, time.Duration)         {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopFileHooks is a no-op implementation of FileHooks.
type NoopFileHooks struct{}

func (NoopFileHooks) OnFileParsed(context.Context, string, string, int, error) {}
func (NoopFileHooks) OnFileSkipped(context.Context, string, string)            {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	fileHooks     FileHooks     = NoopFileHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetFileHooks registers custom file hooks.
func SetFileHooks(h FileHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fileHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Files returns the registered file hooks.
func Files() FileHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fileHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	fileHooks = NoopFileHooks{}
}
