package metrics

import (
	"fmt"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stage outcomes.
const (
	StatusOK        = "ok"
	StatusUndefined = "undefined"
	StatusError     = "error"
)

// RecordStage records one pipeline stage with its outcome.
func (r *Registry) RecordStage(stage, status string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
	r.StagesTotal.WithLabelValues(stage, status).Inc()
}

// RecordUndefined notes a metric that has no value for this graph.
func (r *Registry) RecordUndefined(metric string) {
	r.UndefinedMetrics.WithLabelValues(metric).Inc()
}

// SetGraphShape records node, edge, sector and component counts.
func (r *Registry) SetGraphShape(nodes, edges, sectors, components, giant int) {
	r.GraphNodes.Set(float64(nodes))
	r.GraphEdges.Set(float64(edges))
	r.GraphSectors.Set(float64(sectors))
	r.GraphComponents.Set(float64(components))
	r.GiantSize.Set(float64(giant))
}

// SetRunInfo marks the finished run.
func (r *Registry) SetRunInfo(runID, policy string, finished time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.RunInfo.Reset()
	r.RunInfo.WithLabelValues(runID, policy).Set(1)
	r.RunTimestamp.Set(float64(finished.Unix()))
}

// SetArtifactSize records the byte size of a written artifact.
func (r *Registry) SetArtifactSize(artifact string, size int64) {
	r.ArtifactsBytes.WithLabelValues(artifact).Set(float64(size))
}

// UpdateSystemMetrics samples goroutines and heap usage.
func (r *Registry) UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(m.Alloc))
}

// WriteTextfile writes every metric in the text exposition format, for
// node_exporter's textfile collector. The file is replaced atomically.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
