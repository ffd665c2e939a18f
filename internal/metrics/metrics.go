// Package metrics exports pipeline statistics in the Prometheus text
// exposition format.
//
// A [Collector] implements the observability hooks. Register it at startup
// and call [Collector.WriteFile] after the run to produce a file suitable
// for the node_exporter textfile collector.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/slngraph/pkg/observability"
)

// Stage labels for slngraph_stage_duration_seconds.
const (
	StageDiscover = "discover"
	StageGroup    = "group"
	StageBuild    = "build"
	StageRender   = "render"
)

// Collector records pipeline and file events as Prometheus metrics on a
// private registry.
type Collector struct {
	registry *prometheus.Registry

	stageDuration *prometheus.GaugeVec
	stageErrors   *prometheus.CounterVec
	solutions     prometheus.Gauge
	projects      prometheus.Gauge
	dependencies  prometheus.Gauge
	names         prometheus.Gauge
	conflicts     prometheus.Gauge
	nodes         prometheus.Gauge
	links         prometheus.Gauge
	filesParsed   *prometheus.CounterVec
	filesSkipped  *prometheus.CounterVec
}

var (
	_ observability.PipelineHooks = (*Collector)(nil)
	_ observability.FileHooks     = (*Collector)(nil)
)

// New creates a Collector with all metrics registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		stageDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "slngraph_stage_duration_seconds",
				Help: "Wall time of the last run of each pipeline stage.",
			},
			[]string{"stage"},
		),
		stageErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slngraph_stage_errors_total",
				Help: "Number of failed pipeline stages.",
			},
			[]string{"stage"},
		),
		solutions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slngraph_solutions",
			Help: "Number of solutions discovered.",
		}),
		projects: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slngraph_projects",
			Help: "Number of project entries across all solutions.",
		}),
		dependencies: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slngraph_dependencies",
			Help: "Number of declared dependencies across all projects.",
		}),
		names: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slngraph_names",
			Help: "Number of distinct project and dependency names.",
		}),
		conflicts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slngraph_version_conflicts",
			Help: "Number of names observed with more than one version.",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slngraph_graph_nodes",
			Help: "Number of nodes in the graph document.",
		}),
		links: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slngraph_graph_links",
			Help: "Number of links in the graph document.",
		}),
		filesParsed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slngraph_files_parsed_total",
				Help: "Number of input files read, by kind and result.",
			},
			[]string{"kind", "result"},
		),
		filesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slngraph_files_skipped_total",
				Help: "Number of empty input files ignored, by kind.",
			},
			[]string{"kind"},
		),
	}

	c.registry.MustRegister(
		c.stageDuration,
		c.stageErrors,
		c.solutions,
		c.projects,
		c.dependencies,
		c.names,
		c.conflicts,
		c.nodes,
		c.links,
		c.filesParsed,
		c.filesSkipped,
	)
	return c
}

// Gatherer returns the registry holding the collector's metrics.
func (c *Collector) Gatherer() prometheus.Gatherer { return c.registry }

// Register installs c as the process-wide pipeline and file hooks.
func (c *Collector) Register() {
	observability.SetPipelineHooks(c)
	observability.SetFileHooks(c)
}

// WriteFile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (c *Collector) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

func (c *Collector) stage(name string, d time.Duration, err error) {
	c.stageDuration.WithLabelValues(name).Set(d.Seconds())
	if err != nil {
		c.stageErrors.WithLabelValues(name).Inc()
	}
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

func (c *Collector) OnDiscoverStart(context.Context, string) {}

func (c *Collector) OnDiscoverComplete(_ context.Context, _ string, st observability.DiscoverStats, d time.Duration, err error) {
	c.stage(StageDiscover, d, err)
	if err != nil {
		return
	}
	c.solutions.Set(float64(st.Solutions))
	c.projects.Set(float64(st.Projects))
	c.dependencies.Set(float64(st.Dependencies))
}

func (c *Collector) OnGroupComplete(_ context.Context, names, conflicts int, d time.Duration) {
	c.stage(StageGroup, d, nil)
	c.names.Set(float64(names))
	c.conflicts.Set(float64(conflicts))
}

func (c *Collector) OnBuildComplete(_ context.Context, nodes, links int, d time.Duration) {
	c.stage(StageBuild, d, nil)
	c.nodes.Set(float64(nodes))
	c.links.Set(float64(links))
}

func (c *Collector) OnRenderStart(context.Context, []string) {}

func (c *Collector) OnRenderComplete(_ context.Context, _ []string, d time.Duration, err error) {
	c.stage(StageRender, d, err)
}

// =============================================================================
// File Hooks
// =============================================================================

func (c *Collector) OnFileParsed(_ context.Context, kind, _ string, _ int, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.filesParsed.WithLabelValues(kind, result).Inc()
}

func (c *Collector) OnFileSkipped(_ context.Context, kind, _ string) {
	c.filesSkipped.WithLabelValues(kind).Inc()
}
