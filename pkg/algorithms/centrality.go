package algorithms

import (
	"container/heap"
	"container/list"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// brandesCentrality runs a single O(VE) Brandes pass over the undirected
// graph and returns raw node and edge betweenness. Every unordered pair is
// counted from both ends; callers normalise.
func brandesCentrality(g *graph.Graph) (map[string]float64, map[graph.Edge]float64) {
	symbols := g.Symbols()
	nodeBetweenness := make(map[string]float64, len(symbols))
	edgeBetweenness := make(map[graph.Edge]float64, g.EdgeCount())
	for _, s := range symbols {
		nodeBetweenness[s] = 0
	}

	for _, source := range symbols {
		stack := make([]string, 0, len(symbols))
		predecessors := make(map[string][]string, len(symbols))
		sigma := map[string]float64{source: 1}
		distance := map[string]int{source: 0}

		queue := list.New()
		queue.PushBack(source)

		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(string)
			stack = append(stack, v)

			for _, w := range g.Neighbors(v) {
				if _, seen := distance[w]; !seen {
					queue.PushBack(w)
					distance[w] = distance[v] + 1
				}
				if distance[w] == distance[v]+1 {
					sigma[w] += sigma[v]
					predecessors[w] = append(predecessors[w], v)
				}
			}
		}

		// Back-propagation onto nodes and edges
		delta := make(map[string]float64, len(stack))
		for i := len(stack) - 1; i >= 0; i-- {
			w := stack[i]
			for _, v := range predecessors[w] {
				contribution := (sigma[v] / sigma[w]) * (1.0 + delta[w])
				delta[v] += contribution
				edgeBetweenness[graph.NewEdge(v, w)] += contribution
			}
			if w != source {
				nodeBetweenness[w] += delta[w]
			}
		}
	}

	return nodeBetweenness, edgeBetweenness
}

// BetweennessCentrality computes normalised betweenness for every node:
// the fraction of shortest paths between other node pairs passing through it.
func BetweennessCentrality(g *graph.Graph) map[string]float64 {
	scores, _ := brandesCentrality(g)
	normaliseNodes(scores)
	return scores
}

// normaliseNodes scales raw scores by 1/((n-1)(n-2)). Both orientations of
// every pair were counted, so this equals the undirected 2/((n-1)(n-2)).
func normaliseNodes(scores map[string]float64) {
	n := len(scores)
	if n <= 2 {
		return
	}
	norm := 1.0 / float64((n-1)*(n-2))
	for s := range scores {
		scores[s] *= norm
	}
}

// RankedEdge holds an edge with its betweenness score.
type RankedEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Score  float64 `json:"score"`
}

// EdgeBetweennessCentrality returns normalised betweenness per edge.
func EdgeBetweennessCentrality(g *graph.Graph) map[graph.Edge]float64 {
	_, scores := brandesCentrality(g)
	normaliseEdges(scores, g.NodeCount())
	return scores
}

func normaliseEdges(scores map[graph.Edge]float64, n int) {
	if n < 2 {
		return
	}
	norm := 1.0 / float64(n*(n-1))
	for e := range scores {
		scores[e] *= norm
	}
}

// edgeLess orders edges weakest first: lower score, then later canonical position.
func edgeLess(a, b RankedEdge) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.Source != b.Source {
		return a.Source > b.Source
	}
	return a.Target > b.Target
}

// rankedEdgeHeap is a min-heap; the root is the weakest kept edge.
type rankedEdgeHeap []RankedEdge

func (h rankedEdgeHeap) Len() int           { return len(h) }
func (h rankedEdgeHeap) Less(i, j int) bool { return edgeLess(h[i], h[j]) }
func (h rankedEdgeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedEdgeHeap) Push(x any) {
	*h = append(*h, x.(RankedEdge))
}

func (h *rankedEdgeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopEdges returns the n highest-scoring edges, score descending then
// canonical edge order.
func TopEdges(scores map[graph.Edge]float64, n int) []RankedEdge {
	if n <= 0 {
		return nil
	}
	h := make(rankedEdgeHeap, 0, n)
	heap.Init(&h)

	for e, score := range scores {
		item := RankedEdge{Source: e.A, Target: e.B, Score: score}
		if h.Len() < n {
			heap.Push(&h, item)
		} else if edgeLess(h[0], item) {
			h[0] = item
			heap.Fix(&h, 0)
		}
	}

	out := make([]RankedEdge, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(RankedEdge)
	}
	return out
}

// CentralityResult contains centrality measures for all nodes.
type CentralityResult struct {
	Betweenness map[string]float64 `json:"betweenness"`
	Closeness   map[string]float64 `json:"closeness"`
	Degree      map[string]float64 `json:"degree"`
	// TopBridges are the edges carrying the most shortest paths.
	TopBridges []RankedEdge `json:"top_bridges"`
}

// ComputeAllCentrality computes every centrality measure. Node and edge
// betweenness share one Brandes traversal.
func ComputeAllCentrality(g *graph.Graph, topEdges int) (*CentralityResult, error) {
	if g.NodeCount() == 0 {
		return nil, graph.NewError("ComputeAllCentrality").Cause(graph.ErrEmptyGraph).Build()
	}

	nodeScores, edgeScores := brandesCentrality(g)
	normaliseNodes(nodeScores)
	normaliseEdges(edgeScores, g.NodeCount())

	return &CentralityResult{
		Betweenness: nodeScores,
		Closeness:   ClosenessCentrality(g),
		Degree:      DegreeCentrality(g),
		TopBridges:  TopEdges(edgeScores, topEdges),
	}, nil
}

// ClosenessCentrality computes closeness for every node, scaled by the
// fraction of the graph it can reach so nodes in small components do not
// score as central. Isolated nodes score 0.
func ClosenessCentrality(g *graph.Graph) map[string]float64 {
	symbols := g.Symbols()
	n := len(symbols)
	out := make(map[string]float64, n)

	for _, s := range symbols {
		dist := BFSDistances(g, s)
		reachable := len(dist) - 1
		total := 0
		for _, d := range dist {
			total += d
		}
		if total == 0 || n < 2 {
			out[s] = 0
			continue
		}
		closeness := float64(reachable) / float64(total)
		out[s] = closeness * float64(reachable) / float64(n-1)
	}
	return out
}

// DegreeCentrality is degree / (n - 1).
func DegreeCentrality(g *graph.Graph) map[string]float64 {
	symbols := g.Symbols()
	out := make(map[string]float64, len(symbols))
	for _, s := range symbols {
		if len(symbols) > 1 {
			out[s] = float64(g.Degree(s)) / float64(len(symbols)-1)
		} else {
			out[s] = 0
		}
	}
	return out
}
