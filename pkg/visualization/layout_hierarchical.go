package visualization

import (
	"github.com/dd0wney/cluso-netsci/pkg/algorithms"
	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// HubHierarchicalLayout arranges nodes in rows by BFS distance from the
// top hub. Nodes unreachable from the hub share the last row.
type HubHierarchicalLayout struct {
	config *LayoutConfig
}

// NewHubHierarchicalLayout creates a new hub-rooted hierarchical layout
func NewHubHierarchicalLayout(config *LayoutConfig) *HubHierarchicalLayout {
	return &HubHierarchicalLayout{config: withDefaults(config)}
}

// ComputeLayout arranges nodes hierarchically
func (hl *HubHierarchicalLayout) ComputeLayout(g *graph.Graph) (map[string]Position, error) {
	positions := make(map[string]Position)
	if g.NodeCount() == 0 {
		return positions, nil
	}

	hubs := algorithms.TopHubs(g, 1)
	dist := algorithms.BFSDistances(g, hubs[0].Symbol)

	maxLevel := 0
	for _, d := range dist {
		if d > maxLevel {
			maxLevel = d
		}
	}

	levels := make([][]string, maxLevel+1)
	var unreachable []string
	for _, sym := range g.Symbols() {
		if d, ok := dist[sym]; ok {
			levels[d] = append(levels[d], sym)
		} else {
			unreachable = append(unreachable, sym)
		}
	}
	if len(unreachable) > 0 {
		levels = append(levels, unreachable)
	}

	levelHeight := (hl.config.Height - 2*hl.config.Padding) / float64(len(levels))
	levelWidth := hl.config.Width - 2*hl.config.Padding

	for levelIdx, level := range levels {
		y := hl.config.Padding + float64(levelIdx)*levelHeight + levelHeight/2
		spacing := levelWidth / float64(len(level)+1)

		for nodeIdx, sym := range level {
			x := hl.config.Padding + spacing*float64(nodeIdx+1)
			positions[sym] = Position{X: x, Y: y}
		}
	}

	return positions, nil
}
