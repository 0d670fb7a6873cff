package visualization

import (
	"math"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// CircularLayout arranges nodes in a circle in canonical symbol order
type CircularLayout struct {
	config *LayoutConfig
}

// NewCircularLayout creates a new circular layout
func NewCircularLayout(config *LayoutConfig) *CircularLayout {
	return &CircularLayout{config: withDefaults(config)}
}

// ComputeLayout arranges nodes in a circle
func (cl *CircularLayout) ComputeLayout(g *graph.Graph) (map[string]Position, error) {
	return placeOnCircle(g.Symbols(), cl.config), nil
}

// SectorCircularLayout arranges nodes around a circle grouped by sector,
// sectors in ascending order and symbols ascending within each sector.
// Sectors are separated by one empty slot.
type SectorCircularLayout struct {
	config *LayoutConfig
}

// NewSectorCircularLayout creates a sector-grouped circular layout
func NewSectorCircularLayout(config *LayoutConfig) *SectorCircularLayout {
	return &SectorCircularLayout{config: withDefaults(config)}
}

// ComputeLayout arranges nodes by sector
func (sl *SectorCircularLayout) ComputeLayout(g *graph.Graph) (map[string]Position, error) {
	bySector := make(map[string][]string)
	for _, sym := range g.Symbols() {
		c, _ := g.Company(sym)
		bySector[c.Sector] = append(bySector[c.Sector], sym)
	}

	// An empty string marks a gap slot between sectors.
	var slots []string
	for i, sector := range g.Sectors() {
		if i > 0 {
			slots = append(slots, "")
		}
		slots = append(slots, bySector[sector]...)
	}

	positions := placeOnCircle(slots, sl.config)
	delete(positions, "")
	return positions, nil
}

func placeOnCircle(slots []string, config *LayoutConfig) map[string]Position {
	positions := make(map[string]Position, len(slots))
	if len(slots) == 0 {
		return positions
	}

	centerX := config.Width / 2
	centerY := config.Height / 2
	radius := math.Min(centerX, centerY) - config.Padding

	angleStep := 2 * math.Pi / float64(len(slots))

	for i, sym := range slots {
		angle := float64(i) * angleStep
		positions[sym] = Position{
			X: centerX + radius*math.Cos(angle),
			Y: centerY + radius*math.Sin(angle),
		}
	}
	return positions
}
