package visualization

import (
	"encoding/json"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

func testGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	companies := []graph.Company{
		{Symbol: "AAPL", Name: "Apple", Sector: "Tech"},
		{Symbol: "MSFT", Name: "Microsoft", Sector: "Tech"},
		{Symbol: "NVDA", Name: "Nvidia", Sector: "Tech"},
		{Symbol: "XOM", Name: "Exxon", Sector: "Energy"},
		{Symbol: "CVX", Name: "Chevron", Sector: "Energy"},
		{Symbol: "LONE", Name: "Loner", Sector: "Utilities"},
	}
	for _, c := range companies {
		if err := g.AddCompany(c); err != nil {
			t.Fatalf("AddCompany(%s): %v", c.Symbol, err)
		}
	}
	for _, e := range [][2]string{{"AAPL", "MSFT"}, {"MSFT", "NVDA"}, {"AAPL", "NVDA"}, {"XOM", "CVX"}} {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func assertInBounds(t *testing.T, positions map[string]Position, width, height float64) {
	t.Helper()
	for sym, pos := range positions {
		if pos.X < 0 || pos.X > width || pos.Y < 0 || pos.Y > height {
			t.Errorf("Node %s at (%f, %f) out of bounds", sym, pos.X, pos.Y)
		}
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
			t.Errorf("Node %s has NaN position", sym)
		}
	}
}

func TestForceDirectedLayout(t *testing.T) {
	g := testGraph(t)
	layout := NewForceDirectedLayout(&LayoutConfig{Width: 800, Height: 600, Iterations: 50}, rand.New(rand.NewSource(3)))

	positions, err := layout.ComputeLayout(g)
	if err != nil {
		t.Fatalf("Layout computation failed: %v", err)
	}
	if len(positions) != g.NodeCount() {
		t.Errorf("Expected %d positions, got %d", g.NodeCount(), len(positions))
	}
	assertInBounds(t, positions, 800, 600)
}

func TestForceDirectedLayout_Deterministic(t *testing.T) {
	g := testGraph(t)
	cfg := &LayoutConfig{Width: 500, Height: 500, Iterations: 30}

	a, _ := NewForceDirectedLayout(cfg, rand.New(rand.NewSource(11))).ComputeLayout(g)
	b, _ := NewForceDirectedLayout(cfg, rand.New(rand.NewSource(11))).ComputeLayout(g)

	for sym, pa := range a {
		if pb := b[sym]; pa != pb {
			t.Errorf("Node %s: %v != %v for the same seed", sym, pa, pb)
		}
	}
}

func TestForceDirectedLayout_EmptyAndSingle(t *testing.T) {
	layout := NewForceDirectedLayout(&LayoutConfig{Width: 800, Height: 600}, nil)

	positions, err := layout.ComputeLayout(graph.New())
	if err != nil || len(positions) != 0 {
		t.Errorf("Empty graph: positions=%v err=%v", positions, err)
	}

	g := graph.New()
	_ = g.AddCompany(graph.Company{Symbol: "ONLY", Sector: "X"})
	positions, err = layout.ComputeLayout(g)
	if err != nil {
		t.Fatalf("Single node layout failed: %v", err)
	}
	if pos := positions["ONLY"]; pos.X != 400 || pos.Y != 300 {
		t.Errorf("Single node not centered: (%f, %f)", pos.X, pos.Y)
	}
}

func TestCircularLayout(t *testing.T) {
	g := testGraph(t)
	positions, err := NewCircularLayout(&LayoutConfig{Width: 800, Height: 800}).ComputeLayout(g)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}

	center := Position{X: 400, Y: 400}
	radius := 400.0 - 50
	for sym, pos := range positions {
		if d := distance(pos, center); math.Abs(d-radius) > 1e-6 {
			t.Errorf("Node %s at distance %f, want %f", sym, d, radius)
		}
	}
	// Canonical order starts at angle zero.
	if first := positions["AAPL"]; math.Abs(first.X-750) > 1e-9 || math.Abs(first.Y-400) > 1e-9 {
		t.Errorf("AAPL should sit at angle zero, got %v", first)
	}
}

func TestSectorCircularLayout_GroupsSectors(t *testing.T) {
	g := testGraph(t)
	positions, err := NewSectorCircularLayout(&LayoutConfig{Width: 800, Height: 800}).ComputeLayout(g)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if len(positions) != g.NodeCount() {
		t.Fatalf("Expected %d positions, got %d", g.NodeCount(), len(positions))
	}

	// Same-sector neighbours on the circle are closer than the gap between sectors.
	intra := distance(positions["CVX"], positions["XOM"])
	gap := distance(positions["XOM"], positions["AAPL"])
	if gap <= intra {
		t.Errorf("Expected a gap between sectors: intra=%f gap=%f", intra, gap)
	}
	assertInBounds(t, positions, 800, 800)
}

func TestHubHierarchicalLayout(t *testing.T) {
	g := testGraph(t)
	positions, err := NewHubHierarchicalLayout(&LayoutConfig{Width: 600, Height: 600}).ComputeLayout(g)
	if err != nil {
		t.Fatalf("Layout failed: %v", err)
	}
	if len(positions) != g.NodeCount() {
		t.Fatalf("Expected %d positions, got %d", g.NodeCount(), len(positions))
	}

	// AAPL is the canonical top hub (degree 2, first symbol).
	if positions["AAPL"].Y >= positions["MSFT"].Y {
		t.Errorf("Hub should be on the first row: hub=%v neighbour=%v", positions["AAPL"], positions["MSFT"])
	}
	if positions["XOM"].Y != positions["LONE"].Y {
		t.Errorf("Unreachable nodes should share the last row")
	}
}

func TestNormalizePositions(t *testing.T) {
	in := map[string]Position{
		"A": {X: -100, Y: 5},
		"B": {X: 300, Y: 5},
	}
	out := NormalizePositions(in, 100, 100, 10)

	if out["A"].X != 10 || out["B"].X != 90 {
		t.Errorf("X not scaled to padding bounds: %v", out)
	}
	if out["A"].Y != 50 {
		t.Errorf("Degenerate Y axis should be centred, got %f", out["A"].Y)
	}
}

func TestNewLayout(t *testing.T) {
	for _, name := range []string{LayoutSector, LayoutCircular, LayoutForce, LayoutHub} {
		l, err := NewLayout(name, &LayoutConfig{}, rand.New(rand.NewSource(1)))
		if err != nil || l == nil {
			t.Errorf("NewLayout(%q) = %v, %v", name, l, err)
		}
	}
	if l, err := NewLayout(LayoutNone, &LayoutConfig{}, nil); l != nil || err != nil {
		t.Errorf("NewLayout(none) = %v, %v", l, err)
	}
	if _, err := NewLayout("spiral", &LayoutConfig{}, nil); err == nil {
		t.Error("Expected error for unknown layout")
	}
}

func TestSectorPalette(t *testing.T) {
	p := SectorPalette([]string{"Energy", "Tech"})
	if p["Energy"] == p["Tech"] {
		t.Error("Distinct sectors should get distinct colours")
	}
	if again := SectorPalette([]string{"Energy", "Tech"}); again["Tech"] != p["Tech"] {
		t.Error("Palette must be deterministic")
	}
	if got := (Color{R: 255, G: 0, B: 16}).Hex(); got != "#ff0010" {
		t.Errorf("Hex = %s", got)
	}
}

func TestVisualizationExport(t *testing.T) {
	g := testGraph(t)
	viz, err := Build(g, NewSectorCircularLayout(&LayoutConfig{}))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	data, err := viz.ExportJSON()
	if err != nil {
		t.Fatalf("JSON export failed: %v", err)
	}

	var decoded struct {
		Nodes []map[string]any `json:"nodes"`
		Links []map[string]any `json:"links"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(decoded.Nodes) != g.NodeCount() || len(decoded.Links) != g.EdgeCount() {
		t.Errorf("Exported %d nodes / %d links", len(decoded.Nodes), len(decoded.Links))
	}
	if !strings.Contains(string(data), `"name":"Apple"`) {
		t.Error("JSON export missing node data")
	}
}

func distance(p1, p2 Position) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}
