package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	f := promauto.With(r.registry)

	r.GraphNodes = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_graph_nodes",
		Help: "Number of companies in the graph",
	})
	r.GraphEdges = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_graph_edges",
		Help: "Number of undirected relationships in the graph",
	})
	r.GraphSectors = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_graph_sectors",
		Help: "Number of distinct sectors",
	})
	r.GraphComponents = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_graph_components",
		Help: "Number of connected components",
	})
	r.GiantSize = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_giant_component_nodes",
		Help: "Size of the giant connected component",
	})

	r.AverageDegree = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_average_degree",
		Help: "Mean node degree",
	})
	r.Diameter = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_diameter",
		Help: "Diameter of the giant connected component",
	})
	r.AverageClustering = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_average_clustering",
		Help: "Mean local clustering coefficient over all nodes",
	})
	r.AveragePathLength = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_average_path_length",
		Help: "Mean shortest path length within the giant connected component",
	})
	r.DegreeAssortativity = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_degree_assortativity",
		Help: "Pearson degree assortativity coefficient",
	})
	r.SectorAssortativity = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_sector_assortativity",
		Help: "Categorical assortativity coefficient over sectors",
	})
	r.ConfigModelClustering = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_config_model_clustering",
		Help: "Average clustering of the degree-preserving random graph",
	})
	r.ReducedGiantSize = f.NewGauge(prometheus.GaugeOpts{
		Name: "netsci_hub_removal_giant_component_nodes",
		Help: "Giant component size after removing the top hub",
	})
	r.UndefinedMetrics = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netsci_undefined_metrics_total",
			Help: "Metrics that could not be computed for the graph",
		},
		[]string{"metric"},
	)
}
