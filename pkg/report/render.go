// Package report renders an analysis report for terminals and as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-netsci/pkg/analysis"
	"github.com/dd0wney/cluso-netsci/pkg/metrics"
)

// DefaultBarWidth is the width of the longest histogram bar.
const DefaultBarWidth = 40

// Options controls text rendering.
type Options struct {
	NoColor  bool
	BarWidth int
	// Artifacts lists written files at the bottom of the report.
	Artifacts bool
}

// RenderText writes a human-readable report to w.
func RenderText(w io.Writer, rep *analysis.Report, opts Options) error {
	if rep == nil {
		return fmt.Errorf("report is nil")
	}
	if opts.BarWidth <= 0 {
		opts.BarWidth = DefaultBarWidth
	}
	st := newStyles(w, opts.NoColor)

	var b strings.Builder
	b.WriteString(st.title.Render("Company network analysis"))
	b.WriteString("\n")

	summary := st.box.Render(summaryBlock(st, rep))
	basic := st.box.Render(basicBlock(st, rep))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, summary, basic))
	b.WriteString("\n\n")

	b.WriteString(st.hubBox.Render(deepBlock(st, rep)))
	b.WriteString("\n\n")

	b.WriteString(st.header.Render("Degree histogram (density)"))
	b.WriteString("\n")
	b.WriteString(histogramBlock(st, rep, opts.BarWidth))
	b.WriteString("\n")

	b.WriteString(st.header.Render("Sectors"))
	b.WriteString("\n")
	b.WriteString(sectorBlock(rep))
	b.WriteString("\n")

	b.WriteString(st.header.Render("Stages"))
	b.WriteString("\n")
	b.WriteString(stageBlock(st, rep))

	if opts.Artifacts && len(rep.Artifacts) > 0 {
		b.WriteString("\n")
		b.WriteString(st.header.Render("Artifacts"))
		b.WriteString("\n")
		for _, a := range rep.Artifacts {
			fmt.Fprintf(&b, "  %-14s %s (%d bytes)\n", a.Name, a.Location, a.Bytes)
		}
	}

	b.WriteString(st.help.Render(fmt.Sprintf("run %s", rep.RunID)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, rep *analysis.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func row(st styles, label, value string) string {
	return fmt.Sprintf("%s %s\n", st.label.Render(fmt.Sprintf("%-20s", label)), value)
}

// formatMetric prints an undefined metric as n/a.
func formatMetric(m analysis.Metric, format string) string {
	if !m.Defined {
		return "n/a"
	}
	return fmt.Sprintf(format, m.Value)
}

func summaryBlock(st styles, rep *analysis.Report) string {
	var b strings.Builder
	s := rep.Summary
	b.WriteString(st.header.Render("Graph"))
	b.WriteString("\n")
	if rep.Build != nil {
		b.WriteString(row(st, "Policy", rep.Build.PolicyName))
		if rep.Build.PolicyName == "sector" {
			b.WriteString(row(st, "Probability", fmt.Sprintf("%.3f", rep.Build.Probability)))
		}
	}
	b.WriteString(row(st, "Seed", fmt.Sprintf("%d", rep.Seed)))
	b.WriteString(row(st, "Nodes", fmt.Sprintf("%d", s.Nodes)))
	b.WriteString(row(st, "Edges", fmt.Sprintf("%d", s.Edges)))
	b.WriteString(row(st, "Density", fmt.Sprintf("%.4f", s.Density)))
	b.WriteString(row(st, "Components", fmt.Sprintf("%d", s.Components)))
	b.WriteString(row(st, "Giant component", fmt.Sprintf("%d", s.GiantSize)))
	b.WriteString(row(st, "Isolated", fmt.Sprintf("%d", s.Isolated)))
	return strings.TrimRight(b.String(), "\n")
}

func basicBlock(st styles, rep *analysis.Report) string {
	var b strings.Builder
	m := rep.Basic
	b.WriteString(st.header.Render("Basic metrics"))
	b.WriteString("\n")
	b.WriteString(row(st, "Average degree", formatMetric(m.AverageDegree, "%.4f")))
	b.WriteString(row(st, "Diameter", formatMetric(m.Diameter, "%.0f")))
	b.WriteString(row(st, "Average clustering", formatMetric(m.AverageClustering, "%.4f")))
	b.WriteString(row(st, "Average path length", formatMetric(m.AveragePathLength, "%.4f")))
	b.WriteString(row(st, "Triangles", fmt.Sprintf("%d", m.Triangles)))
	return strings.TrimRight(b.String(), "\n")
}

func deepBlock(st styles, rep *analysis.Report) string {
	var b strings.Builder
	d := rep.Deep
	b.WriteString(st.header.Render("Deep metrics"))
	b.WriteString("\n")

	if len(d.TopHubs) > 0 {
		b.WriteString(st.label.Render("Top hubs"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  %-3s %-8s %6s %8s %8s  %-28s %s\n", "#", "Symbol", "Degree", "Betw.", "Close.", "Name", "Sector")
		for i, h := range d.TopHubs {
			fmt.Fprintf(&b, "  %-3d %-8s %6d %8.4f %8.4f  %-28s %s\n",
				i+1, h.Symbol, h.Degree, h.Betweenness, h.Closeness, truncate(h.Name, 28), h.Sector)
		}
	}

	if len(d.Bridges) > 0 {
		b.WriteString(st.label.Render("Bridges (edge betweenness)"))
		b.WriteString("\n")
		for _, e := range d.Bridges {
			fmt.Fprintf(&b, "  %-8s - %-8s %8.4f\n", e.Source, e.Target, e.Score)
		}
	}

	if r := d.HubRemoval; r != nil {
		b.WriteString(row(st, "Hub removed", fmt.Sprintf("%s (degree %d)", r.Hub, r.HubDegree)))
		b.WriteString(row(st, "Giant before/after", fmt.Sprintf("%d -> %d (%.1f%%)", r.OriginalGiantSize, r.ReducedGiantSize, 100*r.RetainedFraction)))
		b.WriteString(row(st, "Components", fmt.Sprintf("%d -> %d", r.OriginalComponents, r.ReducedComponents)))
	}

	if c := d.ConfigModel; c != nil {
		b.WriteString(row(st, "Clustering observed", fmt.Sprintf("%.4f", c.Observed)))
		b.WriteString(row(st, "Clustering random", fmt.Sprintf("%.4f", c.Random)))
		b.WriteString(row(st, "Random avg degree", fmt.Sprintf("%.4f (nominal %.4f, %d loops, %d multi)",
			c.RealisedAvgDegree, c.NominalAvgDegree, c.SelfLoops, c.MultiEdges)))
	}

	b.WriteString(row(st, "Degree assortativity", formatMetric(d.DegreeAssortativity, "%.4f")))
	b.WriteString(row(st, "Sector assortativity", formatMetric(d.SectorAssortativity, "%.4f")))
	return strings.TrimRight(b.String(), "\n")
}

func histogramBlock(st styles, rep *analysis.Report, width int) string {
	bins := rep.Deep.Histogram
	if len(bins) == 0 {
		return "  (no data)\n"
	}

	maxDensity := 0.0
	for _, bin := range bins {
		if bin.Density > maxDensity {
			maxDensity = bin.Density
		}
	}

	var b strings.Builder
	for _, bin := range bins {
		n := 0
		if maxDensity > 0 {
			n = int(bin.Density / maxDensity * float64(width))
		}
		if n == 0 && bin.Count > 0 {
			n = 1
		}
		fmt.Fprintf(&b, "  %6.1f-%-6.1f %s %.4f\n", bin.Low, bin.High,
			st.bar.Render(padRight(strings.Repeat("█", n), width)), bin.Density)
	}
	return b.String()
}

func sectorBlock(rep *analysis.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-32s %9s %9s %14s\n", "Sector", "Companies", "Edges", "Market cap")
	for _, s := range rep.Summary.Sectors {
		fmt.Fprintf(&b, "  %-32s %9d %9d %14.0f\n", truncate(s.Name, 32), s.Companies, s.Edges, s.MarketCap)
	}
	return b.String()
}

func stageBlock(st styles, rep *analysis.Report) string {
	var b strings.Builder
	for _, s := range rep.Stages {
		var status string
		switch s.Status {
		case metrics.StatusOK:
			status = st.ok.Render("ok")
		case metrics.StatusUndefined:
			status = st.warn.Render("undefined")
		default:
			status = st.failure.Render(s.Status)
		}
		fmt.Fprintf(&b, "  %-22s %s %s", s.Name, status, s.Duration.Round(time.Microsecond))
		if s.Reason != "" {
			fmt.Fprintf(&b, "  %s", s.Reason)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
