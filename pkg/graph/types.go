package graph

// Company is a node in the company-relationship graph.
type Company struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Sector    string  `json:"sector"`
	MarketCap float64 `json:"market_cap"`
}

// Edge is an undirected relationship between two companies.
// A is always the lexically smaller symbol.
type Edge struct {
	A string `json:"source"`
	B string `json:"target"`
}

// NewEdge returns the normalised edge between a and b.
func NewEdge(a, b string) Edge {
	if b < a {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Other returns the endpoint opposite to symbol.
func (e Edge) Other(symbol string) string {
	if e.A == symbol {
		return e.B
	}
	return e.A
}

// Component is a maximal set of mutually reachable nodes, in canonical order.
type Component struct {
	ID      int      `json:"id"`
	Symbols []string `json:"symbols"`
	Size    int      `json:"size"`
}

// Statistics holds node and edge counts.
type Statistics struct {
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`
}
