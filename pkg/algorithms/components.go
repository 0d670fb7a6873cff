package algorithms

import (
	"container/list"
	"sort"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// ComponentsResult contains the connected components of a graph.
type ComponentsResult struct {
	Components    []*graph.Component
	NodeComponent map[string]int // symbol -> component ID
}

// ConnectedComponents finds all connected components in the graph.
// Components are discovered by BFS seeded in canonical symbol order, so
// component IDs are stable and component 0 holds the smallest symbol.
func ConnectedComponents(g *graph.Graph) *ComponentsResult {
	symbols := g.Symbols()

	visited := make(map[string]bool, len(symbols))
	nodeComponent := make(map[string]int, len(symbols))
	components := make([]*graph.Component, 0)
	componentID := 0

	for _, start := range symbols {
		if visited[start] {
			continue
		}

		component := &graph.Component{
			ID:      componentID,
			Symbols: make([]string, 0),
		}

		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			symbol, ok := queue.Remove(queue.Front()).(string)
			if !ok {
				continue
			}
			component.Symbols = append(component.Symbols, symbol)
			nodeComponent[symbol] = componentID

			for neighbor := range g.NeighborSet(symbol) {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue.PushBack(neighbor)
				}
			}
		}

		sort.Strings(component.Symbols)
		component.Size = len(component.Symbols)
		components = append(components, component)
		componentID++
	}

	return &ComponentsResult{
		Components:    components,
		NodeComponent: nodeComponent,
	}
}

// GiantComponent returns the largest connected component. Ties go to the
// component discovered first, i.e. the one holding the smallest symbol.
func GiantComponent(g *graph.Graph) (*graph.Component, error) {
	if g.NodeCount() == 0 {
		return nil, graph.NewError("GiantComponent").Cause(graph.ErrEmptyGraph).Build()
	}

	var giant *graph.Component
	for _, c := range ConnectedComponents(g).Components {
		if giant == nil || c.Size > giant.Size {
			giant = c
		}
	}
	return giant, nil
}

// GiantComponentSize returns the node count of the largest component, or 0
// for an empty graph.
func GiantComponentSize(g *graph.Graph) int {
	giant, err := GiantComponent(g)
	if err != nil {
		return 0
	}
	return giant.Size
}

// IsConnected reports whether every node is reachable from every other.
// The empty graph and single nodes count as connected.
func IsConnected(g *graph.Graph) bool {
	return len(ConnectedComponents(g).Components) <= 1
}
