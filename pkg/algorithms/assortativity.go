package algorithms

import (
	"errors"
	"math"
	"sort"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// ErrUndefinedAssortativity is returned when the coefficient has a zero
// denominator: no edges, every edge joining equal-degree nodes, or a
// single attribute value on every endpoint.
var ErrUndefinedAssortativity = errors.New("assortativity undefined")

// AttributeFunc extracts a categorical attribute from a company.
type AttributeFunc func(graph.Company) string

// SectorAttribute is the AttributeFunc for the sector label.
func SectorAttribute(c graph.Company) string { return c.Sector }

// MixingMatrix is the normalised joint distribution of attribute values at
// the two ends of an edge, counting each edge in both orientations.
type MixingMatrix struct {
	Values []string    `json:"values"`
	E      [][]float64 `json:"e"`
}

// DegreeAssortativity returns the Pearson correlation between the degrees
// at either end of every edge. Each undirected edge contributes both
// (deg(u), deg(v)) and (deg(v), deg(u)).
func DegreeAssortativity(g *graph.Graph) (float64, error) {
	if g.NodeCount() == 0 {
		return 0, graph.NewError("DegreeAssortativity").Cause(graph.ErrEmptyGraph).Build()
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return 0, graph.NewError("DegreeAssortativity").Cause(ErrUndefinedAssortativity).Build()
	}

	var sumX, sumXY, sumX2 float64
	n := float64(2 * len(edges))
	for _, e := range edges {
		du := float64(g.Degree(e.A))
		dv := float64(g.Degree(e.B))
		sumX += du + dv
		sumXY += 2 * du * dv
		sumX2 += du*du + dv*dv
	}

	// With both orientations the x and y marginals are identical.
	mean := sumX / n
	cov := sumXY/n - mean*mean
	variance := sumX2/n - mean*mean
	if variance <= 1e-12 {
		return 0, graph.NewError("DegreeAssortativity").Cause(ErrUndefinedAssortativity).Build()
	}
	return cov / variance, nil
}

// AttributeMixing builds the mixing matrix of attr over g's edges.
func AttributeMixing(g *graph.Graph, attr AttributeFunc) *MixingMatrix {
	valueSet := make(map[string]struct{})
	for _, c := range g.Companies() {
		valueSet[attr(c)] = struct{}{}
	}
	values := make([]string, 0, len(valueSet))
	for v := range valueSet {
		values = append(values, v)
	}
	sort.Strings(values)

	index := make(map[string]int, len(values))
	for i, v := range values {
		index[v] = i
	}

	e := make([][]float64, len(values))
	for i := range e {
		e[i] = make([]float64, len(values))
	}

	edges := g.Edges()
	if len(edges) == 0 {
		return &MixingMatrix{Values: values, E: e}
	}
	weight := 1.0 / float64(2*len(edges))
	for _, edge := range edges {
		a, _ := g.Company(edge.A)
		b, _ := g.Company(edge.B)
		i, j := index[attr(a)], index[attr(b)]
		e[i][j] += weight
		e[j][i] += weight
	}
	return &MixingMatrix{Values: values, E: e}
}

// AttributeAssortativity returns Newman's coefficient for a categorical
// attribute: r = (sum e_ii - sum a_i b_i) / (1 - sum a_i b_i).
// r is 1 when every edge joins equal values, 0 when mixing matches the
// null expectation from the marginals, and negative for disassortative mixing.
func AttributeAssortativity(g *graph.Graph, attr AttributeFunc) (float64, error) {
	if g.NodeCount() == 0 {
		return 0, graph.NewError("AttributeAssortativity").Cause(graph.ErrEmptyGraph).Build()
	}
	if g.EdgeCount() == 0 {
		return 0, graph.NewError("AttributeAssortativity").Cause(ErrUndefinedAssortativity).Build()
	}

	m := AttributeMixing(g, attr)
	var trace, expected float64
	for i := range m.E {
		trace += m.E[i][i]
		var a, b float64
		for j := range m.E {
			a += m.E[i][j]
			b += m.E[j][i]
		}
		expected += a * b
	}

	if math.Abs(1-expected) < 1e-12 {
		return 0, graph.NewError("AttributeAssortativity").Cause(ErrUndefinedAssortativity).Build()
	}
	return (trace - expected) / (1 - expected), nil
}

// SectorAssortativity is AttributeAssortativity over the sector label.
func SectorAssortativity(g *graph.Graph) (float64, error) {
	return AttributeAssortativity(g, SectorAttribute)
}
