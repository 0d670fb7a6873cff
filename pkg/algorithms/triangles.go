package algorithms

import "github.com/dd0wney/cluso-netsci/pkg/graph"

// TriangleCountResult holds triangle counting results including per-node counts,
// global count, clustering coefficients, and their mean.
type TriangleCountResult struct {
	PerNode                map[string]int
	GlobalCount            int
	ClusteringCoefficients map[string]float64
	AverageClustering      float64
}

// CountTriangles counts triangles in the graph.
// For each node u, it iterates over pairs (v,w) in u's neighbor set; if v and w
// are also neighbors, that's a triangle. Each triangle is counted once per
// participating node, so GlobalCount = sum(PerNode) / 3.
// Clustering coefficients are computed in the same pass; nodes with fewer
// than two neighbors get 0.
func CountTriangles(g *graph.Graph) *TriangleCountResult {
	symbols := g.Symbols()

	perNode := make(map[string]int, len(symbols))
	coefficients := make(map[string]float64, len(symbols))
	total := 0
	sum := 0.0

	for _, u := range symbols {
		neighbors := g.Neighbors(u)

		count := 0
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				if g.HasEdge(neighbors[i], neighbors[j]) {
					count++
				}
			}
		}
		perNode[u] = count
		total += count

		k := len(neighbors)
		if k < 2 {
			coefficients[u] = 0.0
			continue
		}
		possible := k * (k - 1) / 2
		coefficients[u] = float64(count) / float64(possible)
		sum += coefficients[u]
	}

	result := &TriangleCountResult{
		PerNode:                perNode,
		GlobalCount:            total / 3,
		ClusteringCoefficients: coefficients,
	}
	if len(symbols) > 0 {
		result.AverageClustering = sum / float64(len(symbols))
	}
	return result
}

// AverageClustering returns the mean local clustering coefficient over all
// nodes, counting nodes of degree < 2 as 0.
func AverageClustering(g *graph.Graph) (float64, error) {
	if g.NodeCount() == 0 {
		return 0, graph.NewError("AverageClustering").Cause(graph.ErrEmptyGraph).Build()
	}
	return CountTriangles(g).AverageClustering, nil
}
