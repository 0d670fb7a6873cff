package visualization

import (
	"math"
	"math/rand"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

// ForceDirectedLayout implements a Fruchterman-Reingold style layout.
// Initial positions come from the supplied RNG, so a fixed seed gives a
// fixed layout.
type ForceDirectedLayout struct {
	config *LayoutConfig
	rng    *rand.Rand
}

// NewForceDirectedLayout creates a new force-directed layout
func NewForceDirectedLayout(config *LayoutConfig, rng *rand.Rand) *ForceDirectedLayout {
	c := withDefaults(config)
	if c.Iterations == 0 {
		c.Iterations = 50
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &ForceDirectedLayout{config: c, rng: rng}
}

// ComputeLayout computes positions using force-directed algorithm
func (fdl *ForceDirectedLayout) ComputeLayout(g *graph.Graph) (map[string]Position, error) {
	symbols := g.Symbols()
	cfg := fdl.config

	if len(symbols) == 0 {
		return make(map[string]Position), nil
	}
	if len(symbols) == 1 {
		return map[string]Position{
			symbols[0]: {X: cfg.Width / 2, Y: cfg.Height / 2},
		}, nil
	}

	index := make(map[string]int, len(symbols))
	positions := make([]Position, len(symbols))
	for i, sym := range symbols {
		index[sym] = i
		positions[i] = Position{
			X: fdl.rng.Float64()*(cfg.Width-2*cfg.Padding) + cfg.Padding,
			Y: fdl.rng.Float64()*(cfg.Height-2*cfg.Padding) + cfg.Padding,
		}
	}

	edges := g.Edges()

	k := math.Sqrt((cfg.Width * cfg.Height) / float64(len(symbols))) // Optimal distance
	temperature := cfg.Width / 10.0
	forces := make([]Position, len(symbols))

	for iter := 0; iter < cfg.Iterations; iter++ {
		for i := range forces {
			forces[i] = Position{}
		}

		// Repulsion between all pairs
		for i := range positions {
			for j := i + 1; j < len(positions); j++ {
				dx := positions[i].X - positions[j].X
				dy := positions[i].Y - positions[j].Y
				dist := math.Max(math.Sqrt(dx*dx+dy*dy), 0.01)

				force := (k * k) / dist
				fx := (dx / dist) * force
				fy := (dy / dist) * force

				forces[i].X += fx
				forces[i].Y += fy
				forces[j].X -= fx
				forces[j].Y -= fy
			}
		}

		// Attraction along edges
		for _, e := range edges {
			a, b := index[e.A], index[e.B]
			dx := positions[a].X - positions[b].X
			dy := positions[a].Y - positions[b].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < 0.01 {
				continue
			}

			force := (dist * dist) / k
			fx := (dx / dist) * force
			fy := (dy / dist) * force

			forces[a].X -= fx
			forces[a].Y -= fy
			forces[b].X += fx
			forces[b].Y += fy
		}

		// Apply forces with cooling
		cool := 1.0 - float64(iter)/float64(cfg.Iterations)
		for i, f := range forces {
			force := math.Sqrt(f.X*f.X + f.Y*f.Y)
			if force > 0 {
				step := math.Min(force, temperature) * cool
				positions[i].X += (f.X / force) * step
				positions[i].Y += (f.Y / force) * step
			}
		}

		temperature *= 0.95
	}

	out := make(map[string]Position, len(symbols))
	for i, sym := range symbols {
		out[sym] = positions[i]
	}
	return NormalizePositions(out, cfg.Width, cfg.Height, cfg.Padding), nil
}
