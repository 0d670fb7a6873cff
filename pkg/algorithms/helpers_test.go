package algorithms

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// node is a compact company literal for tests.
type node struct {
	symbol string
	sector string
}

// setupTestGraph builds a graph from nodes and symbol pairs.
func setupTestGraph(t *testing.T, nodes []node, edges [][2]string) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, n := range nodes {
		if err := g.AddCompany(graph.Company{Symbol: n.symbol, Name: n.symbol, Sector: n.sector}); err != nil {
			t.Fatalf("AddCompany(%s) failed: %v", n.symbol, err)
		}
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%s, %s) failed: %v", e[0], e[1], err)
		}
	}
	return g
}

// completeGraph returns K_n with all nodes in one sector.
func completeGraph(t *testing.T, n int, sector string) *graph.Graph {
	t.Helper()
	nodes := make([]node, n)
	for i := range nodes {
		nodes[i] = node{symbol: fmt.Sprintf("N%d", i), sector: sector}
	}
	var edges [][2]string
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]string{nodes[i].symbol, nodes[j].symbol})
		}
	}
	return setupTestGraph(t, nodes, edges)
}

// twoTriangles returns two disjoint fully linked triangles in sectors A and B.
func twoTriangles(t *testing.T) *graph.Graph {
	t.Helper()
	return setupTestGraph(t,
		[]node{
			{"A1", "A"}, {"A2", "A"}, {"A3", "A"},
			{"B1", "B"}, {"B2", "B"}, {"B3", "B"},
		},
		[][2]string{
			{"A1", "A2"}, {"A2", "A3"}, {"A1", "A3"},
			{"B1", "B2"}, {"B2", "B3"}, {"B1", "B3"},
		},
	)
}

// randomGraph builds an Erdos-Renyi G(n, p) graph from seed. It panics
// instead of failing a test so gopter generators can call it.
func randomGraph(n int, p float64, seed int64) *graph.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := graph.New()
	for i := 0; i < n; i++ {
		sector := fmt.Sprintf("S%d", i%3)
		if err := g.AddCompany(graph.Company{Symbol: fmt.Sprintf("C%03d", i), Sector: sector}); err != nil {
			panic(err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				if _, err := g.AddEdge(fmt.Sprintf("C%03d", i), fmt.Sprintf("C%03d", j)); err != nil {
					panic(err)
				}
			}
		}
	}
	return g
}

// relabel returns a copy of g whose symbols are permuted by rng.
func relabel(g *graph.Graph, rng *rand.Rand) *graph.Graph {
	symbols := g.Symbols()
	perm := rng.Perm(len(symbols))
	mapping := make(map[string]string, len(symbols))
	for i, s := range symbols {
		mapping[s] = fmt.Sprintf("R%03d", perm[i])
	}

	out := graph.New()
	for _, c := range g.Companies() {
		c.Symbol = mapping[c.Symbol]
		if err := out.AddCompany(c); err != nil {
			panic(err)
		}
	}
	for _, e := range g.Edges() {
		if _, err := out.AddEdge(mapping[e.A], mapping[e.B]); err != nil {
			panic(err)
		}
	}
	return out
}
