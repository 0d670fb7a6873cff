package analysis

import (
	"time"

	"github.com/dd0wney/cluso-netsci/pkg/algorithms"
	"github.com/dd0wney/cluso-netsci/pkg/builder"
	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// Report is the full result of one analysis run.
type Report struct {
	RunID     string          `json:"run_id"`
	StartedAt time.Time       `json:"started_at"`
	Duration  time.Duration   `json:"duration_ns"`
	Seed      int64           `json:"seed"`
	Build     *builder.Result `json:"build"`
	Summary   GraphSummary    `json:"graph"`
	Basic     BasicMetrics    `json:"basic"`
	Deep      DeepMetrics     `json:"deep"`
	Stages    []StageResult   `json:"stages"`
	Artifacts []Artifact      `json:"artifacts,omitempty"`

	// graph is the analysed graph, kept for exporters.
	graph *graph.Graph
}

// Graph returns the analysed graph.
func (r *Report) Graph() *graph.Graph {
	return r.graph
}

// Metric is a scalar that may be undefined for a given graph.
type Metric struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
	Reason  string  `json:"reason,omitempty"`
}

// Defined wraps a computed value.
func Defined(v float64) Metric {
	return Metric{Value: v, Defined: true}
}

// Undefined records why a metric has no value.
func Undefined(reason string) Metric {
	return Metric{Reason: reason}
}

// GraphSummary describes the shape of the built graph.
type GraphSummary struct {
	Nodes      int             `json:"nodes"`
	Edges      int             `json:"edges"`
	Density    float64         `json:"density"`
	Components int             `json:"components"`
	GiantSize  int             `json:"giant_size"`
	Isolated   int             `json:"isolated"`
	Sectors    []SectorSummary `json:"sectors"`
}

// SectorSummary counts companies, intra-sector edges and total market cap
// for one sector.
type SectorSummary struct {
	Name      string  `json:"name"`
	Companies int     `json:"companies"`
	Edges     int     `json:"edges"`
	MarketCap float64 `json:"market_cap"`
}

// BasicMetrics holds average degree, diameter, clustering and path length.
// Diameter and path length are measured on the giant component.
type BasicMetrics struct {
	AverageDegree     Metric `json:"average_degree"`
	Diameter          Metric `json:"diameter"`
	AverageClustering Metric `json:"average_clustering"`
	AveragePathLength Metric `json:"average_path_length"`
	Triangles         int    `json:"triangles"`
}

// DeepMetrics holds the degree distribution, hub and bridge rankings,
// robustness, configuration-model and assortativity results.
type DeepMetrics struct {
	Distribution        []algorithms.DegreeBucket        `json:"degree_distribution"`
	Histogram           []algorithms.HistogramBin        `json:"degree_histogram"`
	TopHubs             []Hub                            `json:"top_hubs"`
	Bridges             []algorithms.RankedEdge          `json:"bridges"`
	HubRemoval          *algorithms.RobustnessResult     `json:"hub_removal,omitempty"`
	ConfigModel         *algorithms.ClusteringComparison `json:"configuration_model,omitempty"`
	DegreeAssortativity Metric                           `json:"degree_assortativity"`
	SectorAssortativity Metric                           `json:"sector_assortativity"`
}

// Hub is one of the highest-degree companies.
type Hub struct {
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Sector      string  `json:"sector"`
	Degree      int     `json:"degree"`
	Betweenness float64 `json:"betweenness"`
	Closeness   float64 `json:"closeness"`
}

// StageResult records the outcome of one pipeline stage.
type StageResult struct {
	Name     string        `json:"name"`
	Status   string        `json:"status"`
	Duration time.Duration `json:"duration_ns"`
	Reason   string        `json:"reason,omitempty"`
}

// Artifact is a file produced from the report.
type Artifact struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Bytes    int64  `json:"bytes"`
}
