package algorithms

import (
	"errors"
	"math"
	"testing"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

func TestCountTriangles_EmptyGraph(t *testing.T) {
	result := CountTriangles(graph.New())

	if result.GlobalCount != 0 {
		t.Errorf("Expected 0 global triangles, got %d", result.GlobalCount)
	}
	if len(result.PerNode) != 0 {
		t.Errorf("Expected empty PerNode, got %d entries", len(result.PerNode))
	}

	if _, err := AverageClustering(graph.New()); !errors.Is(err, graph.ErrEmptyGraph) {
		t.Errorf("Expected ErrEmptyGraph, got %v", err)
	}
}

func TestCountTriangles_SingleTriangle(t *testing.T) {
	g := setupTestGraph(t,
		[]node{{"A", "X"}, {"B", "X"}, {"C", "X"}},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}},
	)

	result := CountTriangles(g)
	if result.GlobalCount != 1 {
		t.Errorf("Expected 1 global triangle, got %d", result.GlobalCount)
	}

	// Each node has degree 2, 1 triangle, coefficient = 1/(2*1/2) = 1.0
	for _, s := range []string{"A", "B", "C"} {
		if result.PerNode[s] != 1 {
			t.Errorf("Node %s: expected 1 triangle, got %d", s, result.PerNode[s])
		}
		if cc := result.ClusteringCoefficients[s]; math.Abs(cc-1.0) > 0.001 {
			t.Errorf("Node %s: expected clustering coefficient ~1.0, got %f", s, cc)
		}
	}
}

func TestCountTriangles_TwoTrianglesSharedEdge(t *testing.T) {
	// Diamond: A-B-C triangle + A-B-D triangle (shared edge A-B)
	g := setupTestGraph(t,
		[]node{{"A", "X"}, {"B", "X"}, {"C", "X"}, {"D", "X"}},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"B", "D"}, {"D", "A"}},
	)

	result := CountTriangles(g)
	if result.GlobalCount != 2 {
		t.Errorf("Expected 2 global triangles, got %d", result.GlobalCount)
	}

	want := map[string]int{"A": 2, "B": 2, "C": 1, "D": 1}
	for s, n := range want {
		if result.PerNode[s] != n {
			t.Errorf("Node %s: expected %d triangles, got %d", s, n, result.PerNode[s])
		}
	}

	// A has neighbors B, C, D: pairs BC, BD linked, CD not -> 2/3
	if cc := result.ClusteringCoefficients["A"]; math.Abs(cc-2.0/3.0) > 1e-9 {
		t.Errorf("Node A: expected CC 2/3, got %f", cc)
	}
	// mean of (2/3, 2/3, 1, 1)
	if math.Abs(result.AverageClustering-5.0/6.0) > 1e-9 {
		t.Errorf("AverageClustering = %f, want 5/6", result.AverageClustering)
	}
}

func TestCountTriangles_StarNoTriangles(t *testing.T) {
	g := setupTestGraph(t,
		[]node{{"HUB", "X"}, {"S1", "X"}, {"S2", "X"}, {"S3", "X"}},
		[][2]string{{"HUB", "S1"}, {"HUB", "S2"}, {"HUB", "S3"}},
	)

	result := CountTriangles(g)
	if result.GlobalCount != 0 {
		t.Errorf("Expected 0 triangles, got %d", result.GlobalCount)
	}
	if result.ClusteringCoefficients["HUB"] != 0.0 {
		t.Errorf("Hub: expected CC 0.0, got %f", result.ClusteringCoefficients["HUB"])
	}
	// Leaves have degree 1 and contribute 0 by convention.
	if result.AverageClustering != 0.0 {
		t.Errorf("AverageClustering = %f, want 0", result.AverageClustering)
	}
}

func TestCountTriangles_CompleteGraph4(t *testing.T) {
	g := completeGraph(t, 4, "X")

	result := CountTriangles(g)

	// K4 has C(4,3) = 4 triangles
	if result.GlobalCount != 4 {
		t.Errorf("Expected 4 triangles in K4, got %d", result.GlobalCount)
	}
	for _, s := range g.Symbols() {
		if result.PerNode[s] != 3 {
			t.Errorf("Node %s: expected 3 triangles, got %d", s, result.PerNode[s])
		}
	}
	if math.Abs(result.AverageClustering-1.0) > 1e-9 {
		t.Errorf("AverageClustering = %f, want 1.0", result.AverageClustering)
	}
}

func TestAverageClustering_TwoTriangles(t *testing.T) {
	got, err := AverageClustering(twoTriangles(t))
	if err != nil {
		t.Fatalf("AverageClustering failed: %v", err)
	}
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("AverageClustering = %f, want 1.0", got)
	}
}
