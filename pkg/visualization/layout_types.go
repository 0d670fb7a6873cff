// Package visualization computes 2D node positions and sector colours for
// graph exports.
package visualization

import (
	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width      float64 // Canvas width
	Height     float64 // Canvas height
	Iterations int     // Number of iterations for iterative algorithms
	Padding    float64 // Padding from edges
}

// Layout assigns a position to every node of g.
type Layout interface {
	ComputeLayout(g *graph.Graph) (map[string]Position, error)
}

// Visualization pairs a graph with its layout and node colours.
type Visualization struct {
	Graph     *graph.Graph
	Positions map[string]Position
	Colors    map[string]Color
}

func withDefaults(config *LayoutConfig) *LayoutConfig {
	var c LayoutConfig
	if config != nil {
		c = *config
	}
	if c.Width == 0 {
		c.Width = 1000
	}
	if c.Height == 0 {
		c.Height = 1000
	}
	if c.Padding == 0 {
		c.Padding = 50
	}
	return &c
}
