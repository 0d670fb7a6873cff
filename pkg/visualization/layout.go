package visualization

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// Layout names accepted by NewLayout.
const (
	LayoutSector   = "sector"
	LayoutCircular = "circular"
	LayoutForce    = "force"
	LayoutHub      = "hub"
	LayoutNone     = "none"
)

// NewLayout returns the layout registered under name, or nil for "none".
func NewLayout(name string, config *LayoutConfig, rng *rand.Rand) (Layout, error) {
	switch name {
	case LayoutSector, "":
		return NewSectorCircularLayout(config), nil
	case LayoutCircular:
		return NewCircularLayout(config), nil
	case LayoutForce:
		return NewForceDirectedLayout(config, rng), nil
	case LayoutHub:
		return NewHubHierarchicalLayout(config), nil
	case LayoutNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown layout %q", name)
	}
}

// Build runs layout (which may be nil) and colours nodes by sector.
func Build(g *graph.Graph, layout Layout) (*Visualization, error) {
	v := &Visualization{Graph: g, Colors: NodeColors(g)}
	if layout == nil {
		return v, nil
	}
	positions, err := layout.ComputeLayout(g)
	if err != nil {
		return nil, err
	}
	v.Positions = positions
	return v, nil
}

// ExportJSON exports the visualization as nodes and links for web viewers.
func (v *Visualization) ExportJSON() ([]byte, error) {
	type NodeViz struct {
		ID        string  `json:"id"`
		Name      string  `json:"name"`
		Sector    string  `json:"sector"`
		MarketCap float64 `json:"market_cap"`
		Degree    int     `json:"degree"`
		Color     string  `json:"color"`
		X         float64 `json:"x"`
		Y         float64 `json:"y"`
	}

	type EdgeViz struct {
		Source string `json:"source"`
		Target string `json:"target"`
	}

	type VizData struct {
		Nodes []NodeViz `json:"nodes"`
		Links []EdgeViz `json:"links"`
	}

	data := VizData{
		Nodes: make([]NodeViz, 0, v.Graph.NodeCount()),
		Links: make([]EdgeViz, 0, v.Graph.EdgeCount()),
	}

	for _, sym := range v.Graph.Symbols() {
		c, _ := v.Graph.Company(sym)
		pos := v.Positions[sym]
		data.Nodes = append(data.Nodes, NodeViz{
			ID:        sym,
			Name:      c.Name,
			Sector:    c.Sector,
			MarketCap: c.MarketCap,
			Degree:    v.Graph.Degree(sym),
			Color:     v.Colors[sym].Hex(),
			X:         pos.X,
			Y:         pos.Y,
		})
	}

	for _, e := range v.Graph.Edges() {
		data.Links = append(data.Links, EdgeViz{Source: e.A, Target: e.B})
	}

	return json.Marshal(data)
}
