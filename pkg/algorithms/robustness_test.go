package algorithms

import (
	"errors"
	"testing"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

func TestHubRemoval_Star(t *testing.T) {
	g := setupTestGraph(t,
		[]node{{"HUB", "X"}, {"S1", "X"}, {"S2", "X"}, {"S3", "X"}},
		[][2]string{{"HUB", "S1"}, {"HUB", "S2"}, {"HUB", "S3"}},
	)

	result, err := HubRemoval(g)
	if err != nil {
		t.Fatalf("HubRemoval failed: %v", err)
	}

	if result.Hub != "HUB" || result.HubDegree != 3 {
		t.Errorf("Hub = %s (deg %d), want HUB (deg 3)", result.Hub, result.HubDegree)
	}
	if result.OriginalGiantSize != 4 || result.ReducedGiantSize != 1 {
		t.Errorf("Giant sizes = %d -> %d, want 4 -> 1", result.OriginalGiantSize, result.ReducedGiantSize)
	}
	if result.ReducedComponents != 3 {
		t.Errorf("ReducedComponents = %d, want 3", result.ReducedComponents)
	}
	if !result.HubWasArticulation {
		t.Error("Star hub should be an articulation point")
	}

	// Original must be untouched.
	if !g.HasNode("HUB") || g.EdgeCount() != 3 {
		t.Error("HubRemoval mutated the original graph")
	}
}

func TestHubRemoval_TieBreakAndNonArticulation(t *testing.T) {
	// K4: all degree 3, hub is the first symbol; removal leaves K3.
	g := completeGraph(t, 4, "X")

	result, err := HubRemoval(g)
	if err != nil {
		t.Fatalf("HubRemoval failed: %v", err)
	}
	if result.Hub != "N0" {
		t.Errorf("Hub = %s, want N0", result.Hub)
	}
	if result.ReducedGiantSize != 3 {
		t.Errorf("ReducedGiantSize = %d, want 3", result.ReducedGiantSize)
	}
	if result.HubWasArticulation {
		t.Error("K4 vertex is not an articulation point")
	}
	if result.RetainedFraction != 0.75 {
		t.Errorf("RetainedFraction = %f, want 0.75", result.RetainedFraction)
	}
}

func TestHubRemoval_Empty(t *testing.T) {
	if _, err := HubRemoval(graph.New()); !errors.Is(err, graph.ErrEmptyGraph) {
		t.Errorf("Expected ErrEmptyGraph, got %v", err)
	}
}

func TestIsArticulationPoint(t *testing.T) {
	g := setupTestGraph(t,
		[]node{{"A", "X"}, {"B", "X"}, {"C", "X"}, {"ISO", "X"}},
		[][2]string{{"A", "B"}, {"B", "C"}},
	)

	tests := []struct {
		symbol string
		want   bool
	}{
		{"A", false},
		{"B", true},
		{"C", false},
		{"ISO", false},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			got, err := IsArticulationPoint(g, tt.symbol)
			if err != nil {
				t.Fatalf("IsArticulationPoint failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsArticulationPoint(%s) = %v, want %v", tt.symbol, got, tt.want)
			}
		})
	}

	if _, err := IsArticulationPoint(g, "NOPE"); !errors.Is(err, graph.ErrNodeNotFound) {
		t.Errorf("Expected ErrNodeNotFound, got %v", err)
	}
}
