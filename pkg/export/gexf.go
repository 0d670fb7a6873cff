// Package export writes analysed graphs to GEXF for Gephi-class tools and
// degree data to CSV for external plotting.
package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
	"github.com/dd0wney/cluso-netsci/pkg/visualization"
)

// GEXFOptions controls optional parts of the GEXF document.
type GEXFOptions struct {
	Creator     string
	Description string
	// Modified sets meta/lastmodifieddate; the zero time omits it so output
	// stays byte-stable across runs.
	Modified time.Time
	// Viz supplies viz:position and viz:color per node; nil omits them.
	Viz *visualization.Visualization
}

// WriteGEXF writes g as an undirected, static GEXF 1.2draft document.
// Nodes and edges appear in canonical order; edge ids are their positions.
// Text that is not valid UTF-8 is rejected with ErrDataFormat.
func WriteGEXF(w io.Writer, g *graph.Graph, opts GEXFOptions) error {
	doc := gexfDoc{
		XMLNS:   gexfNamespace,
		Version: gexfVersion,
		Graph: gexfGraph{
			DefaultEdgeType: "undirected",
			Mode:            "static",
			Attributes: []gexfAttributes{{
				Class: "node",
				Mode:  "static",
				Attributes: []gexfAttribute{
					{ID: attrName, Title: titleName, Type: "string"},
					{ID: attrSector, Title: titleSector, Type: "string"},
					{ID: attrMarketCap, Title: titleMarketCap, Type: "double"},
				},
			}},
		},
	}
	if opts.Viz != nil {
		doc.XMLNSViz = gexfVizNamespace
	}
	if opts.Creator != "" || opts.Description != "" || !opts.Modified.IsZero() {
		doc.Meta = &gexfMeta{Creator: opts.Creator, Description: opts.Description}
		if !opts.Modified.IsZero() {
			doc.Meta.LastModified = opts.Modified.UTC().Format("2006-01-02")
		}
	}

	symbols := g.Symbols()
	doc.Graph.Nodes = make([]gexfNode, 0, len(symbols))
	for _, sym := range symbols {
		c, _ := g.Company(sym)
		// encoding/xml replaces invalid bytes with U+FFFD, which would not
		// read back as the same company.
		for _, f := range [...]struct{ name, value string }{{"symbol", sym}, {titleName, c.Name}, {titleSector, c.Sector}} {
			if !utf8.ValidString(f.value) {
				return graph.NewError("WriteGEXF").Node(sym).Field(f.name).
					Cause(fmt.Errorf("invalid UTF-8: %w", graph.ErrDataFormat)).Build()
			}
		}
		label := c.Name
		if label == "" {
			label = sym
		}
		node := gexfNode{
			ID:    sym,
			Label: label,
			AttValues: []gexfAttValue{
				{For: attrName, Value: c.Name},
				{For: attrSector, Value: c.Sector},
				{For: attrMarketCap, Value: strconv.FormatFloat(c.MarketCap, 'g', -1, 64)},
			},
		}
		if opts.Viz != nil {
			if col, ok := opts.Viz.Colors[sym]; ok {
				node.VizColor = &gexfColor{R: col.R, G: col.G, B: col.B}
			}
			if pos, ok := opts.Viz.Positions[sym]; ok {
				node.VizPos = &gexfPosition{X: pos.X, Y: pos.Y}
			}
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, node)
	}

	edges := g.Edges()
	doc.Graph.Edges = make([]gexfEdge, len(edges))
	for i, e := range edges {
		doc.Graph.Edges[i] = gexfEdge{ID: strconv.Itoa(i), Source: e.A, Target: e.B}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write GEXF header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode GEXF: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("failed to write GEXF: %w", err)
	}
	return nil
}

// ReadGEXF parses a GEXF document into a graph. Node attributes are matched
// by title (name, sector, market_cap); a missing name falls back to the label.
// Edges are treated as undirected and duplicates collapse.
func ReadGEXF(r io.Reader) (*graph.Graph, error) {
	var doc gexfDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, graph.NewError("ReadGEXF").Cause(fmt.Errorf("%w: %v", graph.ErrDataFormat, err)).Build()
	}

	titles := make(map[string]string)
	for _, block := range doc.Graph.Attributes {
		if block.Class != "node" {
			continue
		}
		for _, a := range block.Attributes {
			titles[a.ID] = a.Title
		}
	}

	g := graph.New()
	for _, n := range doc.Graph.Nodes {
		c := graph.Company{Symbol: n.ID}
		for _, av := range n.AttValues {
			switch titles[av.For] {
			case titleName:
				c.Name = av.Value
			case titleSector:
				c.Sector = av.Value
			case titleMarketCap:
				v, err := strconv.ParseFloat(av.Value, 64)
				if err != nil {
					return nil, graph.NewError("ReadGEXF").
						Node(n.ID).
						Field(titleMarketCap).
						Cause(fmt.Errorf("%w: %v", graph.ErrDataFormat, err)).
						Build()
				}
				c.MarketCap = v
			}
		}
		if c.Name == "" && n.Label != n.ID {
			c.Name = n.Label
		}
		if err := g.AddCompany(c); err != nil {
			return nil, err
		}
	}

	for _, e := range doc.Graph.Edges {
		if _, err := g.AddEdge(e.Source, e.Target); err != nil {
			return nil, graph.NewError("ReadGEXF").
				Edge(e.Source, e.Target).
				Cause(fmt.Errorf("%w: %v", graph.ErrDataFormat, err)).
				Build()
		}
	}
	return g, nil
}
