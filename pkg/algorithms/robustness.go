package algorithms

import "github.com/dd0wney/cluso-netsci/pkg/graph"

// RobustnessResult reports how the giant component reacts to losing its top hub.
type RobustnessResult struct {
	Hub                string  `json:"hub"`
	HubDegree          int     `json:"hub_degree"`
	OriginalGiantSize  int     `json:"original_giant_size"`
	ReducedGiantSize   int     `json:"reduced_giant_size"`
	OriginalComponents int     `json:"original_components"`
	ReducedComponents  int     `json:"reduced_components"`
	RetainedFraction   float64 `json:"retained_fraction"` // reduced / original giant size
	HubWasArticulation bool    `json:"hub_was_articulation"`
}

// HubRemoval removes the highest-degree node (ties to the first symbol in
// canonical order) from a copy of g and recomputes the giant component.
// g is not modified. A single-node graph yields ErrDisconnectedGraph.
func HubRemoval(g *graph.Graph) (*RobustnessResult, error) {
	if g.NodeCount() == 0 {
		return nil, graph.NewError("HubRemoval").Cause(graph.ErrEmptyGraph).Build()
	}
	// Removing the only node leaves no giant component to measure.
	if g.NodeCount() == 1 {
		return nil, graph.NewError("HubRemoval").Cause(graph.ErrDisconnectedGraph).Build()
	}

	hubs := TopHubs(g, 1)
	hub := hubs[0].Symbol
	return NodeRemoval(g, hub)
}

// NodeRemoval measures the giant component before and after removing symbol.
func NodeRemoval(g *graph.Graph, symbol string) (*RobustnessResult, error) {
	before := ConnectedComponents(g)
	reduced, err := g.WithoutNode(symbol)
	if err != nil {
		return nil, err
	}
	after := ConnectedComponents(reduced)

	result := &RobustnessResult{
		Hub:                symbol,
		HubDegree:          g.Degree(symbol),
		OriginalGiantSize:  largest(before.Components),
		ReducedGiantSize:   largest(after.Components),
		OriginalComponents: len(before.Components),
		ReducedComponents:  len(after.Components),
		HubWasArticulation: len(after.Components) > len(before.Components),
	}
	if result.OriginalGiantSize > 0 {
		result.RetainedFraction = float64(result.ReducedGiantSize) / float64(result.OriginalGiantSize)
	}
	return result, nil
}

// IsArticulationPoint reports whether removing symbol splits the
// component that contains it.
func IsArticulationPoint(g *graph.Graph, symbol string) (bool, error) {
	before := len(ConnectedComponents(g).Components)
	reduced, err := g.WithoutNode(symbol)
	if err != nil {
		return false, err
	}
	// Removing an isolated node drops one component, a leaf keeps the
	// count, and only a cut vertex increases it.
	return len(ConnectedComponents(reduced).Components) > before, nil
}

func largest(components []*graph.Component) int {
	maxSize := 0
	for _, c := range components {
		if c.Size > maxSize {
			maxSize = c.Size
		}
	}
	return maxSize
}
