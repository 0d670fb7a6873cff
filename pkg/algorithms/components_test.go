package algorithms

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

func TestConnectedComponents(t *testing.T) {
	g := setupTestGraph(t,
		[]node{{"D", "X"}, {"A", "X"}, {"C", "X"}, {"B", "X"}, {"E", "X"}},
		[][2]string{{"A", "C"}, {"B", "D"}, {"D", "E"}},
	)

	result := ConnectedComponents(g)
	if len(result.Components) != 2 {
		t.Fatalf("Expected 2 components, got %d", len(result.Components))
	}

	// Component 0 is seeded from the smallest symbol.
	if got := result.Components[0].Symbols; !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("Component 0 = %v, want [A C]", got)
	}
	if got := result.Components[1].Symbols; !reflect.DeepEqual(got, []string{"B", "D", "E"}) {
		t.Errorf("Component 1 = %v, want [B D E]", got)
	}
	if result.NodeComponent["E"] != 1 || result.NodeComponent["C"] != 0 {
		t.Errorf("NodeComponent = %v", result.NodeComponent)
	}
}

func TestGiantComponent_TieBreak(t *testing.T) {
	g := twoTriangles(t)

	giant, err := GiantComponent(g)
	if err != nil {
		t.Fatalf("GiantComponent failed: %v", err)
	}
	if giant.Size != 3 {
		t.Errorf("Giant size = %d, want 3", giant.Size)
	}
	if !reflect.DeepEqual(giant.Symbols, []string{"A1", "A2", "A3"}) {
		t.Errorf("Tie should resolve to the sector A triangle, got %v", giant.Symbols)
	}
}

func TestGiantComponent_Empty(t *testing.T) {
	if _, err := GiantComponent(graph.New()); !errors.Is(err, graph.ErrEmptyGraph) {
		t.Errorf("Expected ErrEmptyGraph, got %v", err)
	}
	if size := GiantComponentSize(graph.New()); size != 0 {
		t.Errorf("GiantComponentSize(empty) = %d, want 0", size)
	}
}

func TestIsConnected(t *testing.T) {
	if !IsConnected(graph.New()) {
		t.Error("Empty graph should count as connected")
	}
	if !IsConnected(completeGraph(t, 4, "X")) {
		t.Error("K4 should be connected")
	}
	if IsConnected(twoTriangles(t)) {
		t.Error("Two disjoint triangles should not be connected")
	}
}
