package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for one analysis run
type Registry struct {
	// Graph shape
	GraphNodes      prometheus.Gauge
	GraphEdges      prometheus.Gauge
	GraphSectors    prometheus.Gauge
	GraphComponents prometheus.Gauge
	GiantSize       prometheus.Gauge

	// Network statistics
	AverageDegree         prometheus.Gauge
	Diameter              prometheus.Gauge
	AverageClustering     prometheus.Gauge
	AveragePathLength     prometheus.Gauge
	DegreeAssortativity   prometheus.Gauge
	SectorAssortativity   prometheus.Gauge
	ConfigModelClustering prometheus.Gauge
	ReducedGiantSize      prometheus.Gauge
	UndefinedMetrics      *prometheus.CounterVec

	// Pipeline
	StageDuration  *prometheus.HistogramVec
	StagesTotal    *prometheus.CounterVec
	RunTimestamp   prometheus.Gauge
	RunInfo        *prometheus.GaugeVec
	ArtifactsBytes *prometheus.GaugeVec

	// Process
	MemoryAllocBytes prometheus.Gauge
	GoRoutines       prometheus.Gauge

	registry *prometheus.Registry
	mu       sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}

	r.initGraphMetrics()
	r.initPipelineMetrics()
	r.initSystemMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
