package visualization

import (
	"fmt"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// Color is an RGB triple.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex renders the colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Qualitative palette; sectors beyond its length wrap around.
var basePalette = []Color{
	{31, 119, 180},
	{255, 127, 14},
	{44, 160, 44},
	{214, 39, 40},
	{148, 103, 189},
	{140, 86, 75},
	{227, 119, 194},
	{127, 127, 127},
	{188, 189, 34},
	{23, 190, 207},
	{174, 199, 232},
	{255, 187, 120},
}

// SectorPalette assigns colours to sectors in ascending sector order, so
// the same set of sectors always receives the same colours.
func SectorPalette(sectors []string) map[string]Color {
	palette := make(map[string]Color, len(sectors))
	for i, s := range sectors {
		palette[s] = basePalette[i%len(basePalette)]
	}
	return palette
}

// NodeColors colours every node by its sector.
func NodeColors(g *graph.Graph) map[string]Color {
	palette := SectorPalette(g.Sectors())
	colors := make(map[string]Color, g.NodeCount())
	for _, sym := range g.Symbols() {
		c, _ := g.Company(sym)
		colors[sym] = palette[c.Sector]
	}
	return colors
}
