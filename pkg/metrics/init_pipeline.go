package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPipelineMetrics() {
	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "netsci_stage_duration_seconds",
			Help:    "Analysis stage duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"stage"},
	)

	r.StagesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "netsci_stages_total",
			Help: "Analysis stages by outcome",
		},
		[]string{"stage", "status"},
	)

	r.RunTimestamp = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "netsci_last_run_timestamp_seconds",
			Help: "Unix time the last analysis run finished",
		},
	)

	r.RunInfo = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netsci_run_info",
			Help: "Identity of the last analysis run",
		},
		[]string{"run_id", "policy"},
	)

	r.ArtifactsBytes = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "netsci_artifact_bytes",
			Help: "Size of each written artifact",
		},
		[]string{"artifact"},
	)
}
