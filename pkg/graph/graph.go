package graph

import (
	"sort"
	"strings"
)

// Graph is a simple, undirected, unweighted company graph backed by an
// adjacency map (symbol -> set of neighbor symbols).
//
// Graph is not safe for concurrent mutation. The analysis pipeline builds
// it once and then only reads it; experiments that need to remove nodes
// work on a copy obtained from Clone or WithoutNode.
type Graph struct {
	nodes     map[string]*Company
	adjacency map[string]map[string]struct{}
	edgeCount int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]*Company),
		adjacency: make(map[string]map[string]struct{}),
	}
}

// AddCompany adds a node. Symbols are trimmed; blank or repeated symbols are rejected.
func (g *Graph) AddCompany(c Company) error {
	c.Symbol = strings.TrimSpace(c.Symbol)
	if c.Symbol == "" {
		return NewError("AddCompany").Node(c.Symbol).Cause(ErrEmptySymbol).Build()
	}
	if _, exists := g.nodes[c.Symbol]; exists {
		return NewError("AddCompany").Node(c.Symbol).Cause(ErrDuplicateSymbol).Build()
	}

	company := c
	g.nodes[c.Symbol] = &company
	g.adjacency[c.Symbol] = make(map[string]struct{})
	return nil
}

// AddEdge links a and b. It reports false without error when the edge
// already exists.
func (g *Graph) AddEdge(a, b string) (bool, error) {
	if a == b {
		return false, NewError("AddEdge").Edge(a, b).Cause(ErrSelfLoop).Build()
	}
	if _, ok := g.nodes[a]; !ok {
		return false, NewError("AddEdge").Node(a).Cause(ErrNodeNotFound).Build()
	}
	if _, ok := g.nodes[b]; !ok {
		return false, NewError("AddEdge").Node(b).Cause(ErrNodeNotFound).Build()
	}
	if _, dup := g.adjacency[a][b]; dup {
		return false, nil
	}

	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}
	g.edgeCount++
	return true, nil
}

// HasNode reports whether symbol is a node of g.
func (g *Graph) HasNode(symbol string) bool {
	_, ok := g.nodes[symbol]
	return ok
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.adjacency[a][b]
	return ok
}

// Company returns the node attributes for symbol.
func (g *Graph) Company(symbol string) (Company, bool) {
	c, ok := g.nodes[symbol]
	if !ok {
		return Company{}, false
	}
	return *c, true
}

// Degree returns the number of neighbors of symbol (0 for unknown symbols).
func (g *Graph) Degree(symbol string) int {
	return len(g.adjacency[symbol])
}

// Neighbors returns the neighbors of symbol in canonical order.
func (g *Graph) Neighbors(symbol string) []string {
	set := g.adjacency[symbol]
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NeighborSet returns the live neighbor set of symbol. Callers must not modify it.
func (g *Graph) NeighborSet(symbol string) map[string]struct{} {
	return g.adjacency[symbol]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// GetStatistics returns node and edge counts.
func (g *Graph) GetStatistics() Statistics {
	return Statistics{NodeCount: len(g.nodes), EdgeCount: g.edgeCount}
}

// Symbols returns every node symbol in canonical (ascending) order.
func (g *Graph) Symbols() []string {
	out := make([]string, 0, len(g.nodes))
	for s := range g.nodes {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Companies returns every node in canonical order.
func (g *Graph) Companies() []Company {
	symbols := g.Symbols()
	out := make([]Company, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, *g.nodes[s])
	}
	return out
}

// Edges returns every edge once, sorted by (A, B).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for a, set := range g.adjacency {
		for b := range set {
			if a < b {
				out = append(out, Edge{A: a, B: b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// Sectors returns the distinct sector labels in ascending order.
func (g *Graph) Sectors() []string {
	seen := make(map[string]struct{})
	for _, c := range g.nodes {
		seen[c.Sector] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	return g.copyExcluding("")
}

// WithoutNode returns a copy of g with symbol and its incident edges removed.
// g itself is left untouched.
func (g *Graph) WithoutNode(symbol string) (*Graph, error) {
	if !g.HasNode(symbol) {
		return nil, NewError("WithoutNode").Node(symbol).Cause(ErrNodeNotFound).Build()
	}
	return g.copyExcluding(symbol), nil
}

func (g *Graph) copyExcluding(excluded string) *Graph {
	cp := &Graph{
		nodes:     make(map[string]*Company, len(g.nodes)),
		adjacency: make(map[string]map[string]struct{}, len(g.adjacency)),
	}
	for sym, c := range g.nodes {
		if sym == excluded {
			continue
		}
		company := *c
		cp.nodes[sym] = &company
	}
	for sym, set := range g.adjacency {
		if sym == excluded {
			continue
		}
		ns := make(map[string]struct{}, len(set))
		for n := range set {
			if n == excluded {
				continue
			}
			ns[n] = struct{}{}
			if sym < n {
				cp.edgeCount++
			}
		}
		cp.adjacency[sym] = ns
	}
	return cp
}
