package algorithms

import (
	"container/heap"
	"math"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// DegreeBucket is one point of the empirical degree distribution P(k).
type DegreeBucket struct {
	Degree      int     `json:"k"`
	Count       int     `json:"count"`
	Probability float64 `json:"p"`
}

// HistogramBin is a density-normalised bin over a degree range [Low, High).
// The last bin is closed on the right.
type HistogramBin struct {
	Low     float64 `json:"low"`
	High    float64 `json:"high"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// RankedNode represents a node with its rank score.
type RankedNode struct {
	Symbol string        `json:"symbol"`
	Score  float64       `json:"score"`
	Node   graph.Company `json:"-"`
}

// AverageDegree returns sum(degree) / node count.
func AverageDegree(g *graph.Graph) (float64, error) {
	n := g.NodeCount()
	if n == 0 {
		return 0, graph.NewError("AverageDegree").Cause(graph.ErrEmptyGraph).Build()
	}
	sum := 0
	for _, s := range g.Symbols() {
		sum += g.Degree(s)
	}
	return float64(sum) / float64(n), nil
}

// DegreeSequence returns node degrees in canonical symbol order.
func DegreeSequence(g *graph.Graph) []int {
	symbols := g.Symbols()
	seq := make([]int, len(symbols))
	for i, s := range symbols {
		seq[i] = g.Degree(s)
	}
	return seq
}

// DegreeDistribution returns P(k) for every k between the minimum and
// maximum observed degree, including degrees nobody has.
func DegreeDistribution(g *graph.Graph) ([]DegreeBucket, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, graph.NewError("DegreeDistribution").Cause(graph.ErrEmptyGraph).Build()
	}

	seq := DegreeSequence(g)
	minK, maxK := seq[0], seq[0]
	counts := make(map[int]int)
	for _, k := range seq {
		counts[k]++
		if k < minK {
			minK = k
		}
		if k > maxK {
			maxK = k
		}
	}

	buckets := make([]DegreeBucket, 0, maxK-minK+1)
	for k := minK; k <= maxK; k++ {
		buckets = append(buckets, DegreeBucket{
			Degree:      k,
			Count:       counts[k],
			Probability: float64(counts[k]) / float64(n),
		})
	}
	return buckets, nil
}

// DegreeHistogram bins the degree sequence into equal-width bins over
// [min, max] with density normalisation (bin areas sum to 1).
func DegreeHistogram(g *graph.Graph, bins int) ([]HistogramBin, error) {
	if bins <= 0 {
		bins = 1
	}
	seq := DegreeSequence(g)
	if len(seq) == 0 {
		return nil, graph.NewError("DegreeHistogram").Cause(graph.ErrEmptyGraph).Build()
	}

	lo, hi := float64(seq[0]), float64(seq[0])
	for _, k := range seq {
		lo = math.Min(lo, float64(k))
		hi = math.Max(hi, float64(k))
	}
	if hi == lo {
		// Single value: widen so the bin has unit width around it.
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(bins)

	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	for _, k := range seq {
		idx := int((float64(k) - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	for i := range out {
		out[i].Density = float64(out[i].Count) / (float64(len(seq)) * width)
	}
	return out, nil
}

// TopHubs returns the n highest-degree nodes, degree descending then symbol
// ascending.
func TopHubs(g *graph.Graph, n int) []RankedNode {
	if n <= 0 {
		return nil
	}

	// Min-heap of the current top n; the root is the weakest entry.
	h := make(rankedNodeHeap, 0, n)
	heap.Init(&h)

	for _, symbol := range g.Symbols() {
		company, _ := g.Company(symbol)
		rn := RankedNode{
			Symbol: symbol,
			Score:  float64(g.Degree(symbol)),
			Node:   company,
		}

		if h.Len() < n {
			heap.Push(&h, rn)
		} else if ranksBefore(rn, h[0]) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}
	return result
}

// ranksBefore orders by score descending, then symbol ascending.
func ranksBefore(a, b RankedNode) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Symbol < b.Symbol
}

type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int           { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool { return ranksBefore(h[j], h[i]) }
func (h rankedNodeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
