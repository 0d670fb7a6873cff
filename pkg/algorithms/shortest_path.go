package algorithms

import (
	"container/list"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// PathStats summarises all-pairs shortest paths inside the giant component.
type PathStats struct {
	GiantSize         int     `json:"giant_size"`
	Diameter          int     `json:"diameter"`
	AveragePathLength float64 `json:"average_path_length"`
	PairCount         int64   `json:"pair_count"` // ordered distinct pairs
}

// BFSDistances returns the hop distance from source to every reachable node
// (source itself at distance 0).
func BFSDistances(g *graph.Graph, source string) map[string]int {
	distances := make(map[string]int)
	if !g.HasNode(source) {
		return distances
	}
	distances[source] = 0

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		current := queue.Remove(queue.Front()).(string)
		currentDist := distances[current]

		for neighbor := range g.NeighborSet(current) {
			if _, visited := distances[neighbor]; !visited {
				distances[neighbor] = currentDist + 1
				queue.PushBack(neighbor)
			}
		}
	}

	return distances
}

// Eccentricity returns the greatest distance from symbol to any node it can reach.
func Eccentricity(g *graph.Graph, symbol string) int {
	maxDist := 0
	for _, d := range BFSDistances(g, symbol) {
		if d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}

// GiantPathStats runs an exact BFS from every giant-component node and
// returns the diameter and mean shortest-path length over all ordered
// distinct pairs.
func GiantPathStats(g *graph.Graph) (*PathStats, error) {
	giant, err := GiantComponent(g)
	if err != nil {
		return nil, err
	}
	if giant.Size < 2 {
		return nil, graph.NewError("GiantPathStats").Cause(graph.ErrDisconnectedGraph).Build()
	}

	stats := &PathStats{GiantSize: giant.Size}
	var total int64
	for _, source := range giant.Symbols {
		for target, d := range BFSDistances(g, source) {
			if target == source {
				continue
			}
			total += int64(d)
			stats.PairCount++
			if d > stats.Diameter {
				stats.Diameter = d
			}
		}
	}
	stats.AveragePathLength = float64(total) / float64(stats.PairCount)
	return stats, nil
}

// Diameter returns the longest shortest path inside the giant component.
func Diameter(g *graph.Graph) (int, error) {
	stats, err := GiantPathStats(g)
	if err != nil {
		return 0, err
	}
	return stats.Diameter, nil
}

// AveragePathLength returns the mean shortest-path length inside the giant component.
func AveragePathLength(g *graph.Graph) (float64, error) {
	stats, err := GiantPathStats(g)
	if err != nil {
		return 0, err
	}
	return stats.AveragePathLength, nil
}
