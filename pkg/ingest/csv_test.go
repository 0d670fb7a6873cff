package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
)

const sampleNodes = `Symbol,Name,Sector,Market Cap
MMM,3M,Industrials,"60,500,000,000"
AOS,A. O. Smith,Industrials,
ABT,Abbott Laboratories,Health Care,2.0E11
`

func TestReadCompanies(t *testing.T) {
	companies, err := ReadCompanies(strings.NewReader(sampleNodes))
	require.NoError(t, err)
	require.Len(t, companies, 3)

	assert.Equal(t, CompanyRecord{Symbol: "MMM", Name: "3M", Sector: "Industrials", MarketCap: 60.5e9}, companies[0])
	assert.Equal(t, 0.0, companies[1].MarketCap, "blank market cap reads as zero")
	assert.Equal(t, 2.0e11, companies[2].MarketCap)
}

func TestReadCompanies_HeaderVariants(t *testing.T) {
	input := "\ufeffsector, market_cap ,SYMBOL,name,extra\nEnergy,1,XOM,Exxon,ignored\n"
	companies, err := ReadCompanies(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, "XOM", companies[0].Symbol)
	assert.Equal(t, "Energy", companies[0].Sector)
	assert.Equal(t, 1.0, companies[0].MarketCap)
}

func TestReadCompanies_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    int
	}{
		{"missing column", "Symbol,Name,Sector\nA,B,C\n", graph.ErrDataFormat, 0},
		{"no header", "", graph.ErrDataFormat, 0},
		{"header only", "Symbol,Name,Sector,Market Cap\n", graph.ErrEmptyInput, 0},
		{"bad market cap", "Symbol,Name,Sector,Market Cap\nA,Alpha,Tech,12\nB,Beta,Tech,lots\n", graph.ErrDataFormat, 3},
		{"negative market cap", "Symbol,Name,Sector,Market Cap\nA,Alpha,Tech,-5\n", graph.ErrDataFormat, 2},
		{"missing sector", "Symbol,Name,Sector,Market Cap\nA,Alpha,,5\n", graph.ErrDataFormat, 2},
		{"blank symbol", "Symbol,Name,Sector,Market Cap\n,Alpha,Tech,5\n", graph.ErrDataFormat, 2},
		{"latin-1 name", "Symbol,Name,Sector,Market Cap\nA,Alpha,Tech,1\nGLE,Soci\xe9t\xe9 G\xe9n\xe9rale,Financials,5\n", graph.ErrDataFormat, 3},
		{"latin-1 sector", "Symbol,Name,Sector,Market Cap\nA,Alpha,T\xe9ch,1\n", graph.ErrDataFormat, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCompanies(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			if tt.line > 0 {
				var ae *graph.AnalysisError
				require.True(t, errors.As(err, &ae), "expected AnalysisError, got %T", err)
				assert.Equal(t, tt.line, ae.Line)
			}
		})
	}
}

func TestReadCompanies_SkipsBlankRows(t *testing.T) {
	input := "Symbol,Name,Sector,Market Cap\nA,Alpha,Tech,1\n,,,\nB,Beta,Tech,2\n"
	companies, err := ReadCompanies(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, companies, 2)
}

func TestParseMarketCap(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"1,234.5", 1234.5, false},
		{"3e9", 3e9, false},
		{"n/a", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMarketCap(tt.raw)
		if tt.wantErr {
			assert.ErrorIs(t, err, graph.ErrDataFormat, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestReadEdges(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"source target", "Source,Target\nMMM,AOS\nAOS,ABT\n"},
		{"from to", "from,to\nMMM,AOS\nAOS,ABT\n"},
		{"networkx style", "node_1,node_2,weight\nMMM,AOS,1\nAOS,ABT,1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, err := ReadEdges(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, []EdgeRecord{{"MMM", "AOS"}, {"AOS", "ABT"}}, edges)
		})
	}
}

func TestReadEdges_EmptyListIsValid(t *testing.T) {
	edges, err := ReadEdges(strings.NewReader("Source,Target\n"))
	require.NoError(t, err)
	assert.NotNil(t, edges)
	assert.Empty(t, edges)
}

func TestReadEdges_MissingColumn(t *testing.T) {
	_, err := ReadEdges(strings.NewReader("Source,Weight\nA,1\n"))
	assert.ErrorIs(t, err, graph.ErrDataFormat)
}

func TestCSVSource_Load(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "sp500_nodes.csv")
	edges := filepath.Join(dir, "sp500_edges.csv")
	require.NoError(t, os.WriteFile(nodes, []byte(sampleNodes), 0o644))
	require.NoError(t, os.WriteFile(edges, []byte("Source,Target\nMMM,AOS\n"), 0o644))

	ds, err := CSVSource{NodesPath: nodes}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Companies, 3)
	assert.False(t, ds.HasEdgeList)

	ds, err = CSVSource{NodesPath: nodes, EdgesPath: edges}.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, ds.HasEdgeList)
	assert.Len(t, ds.Edges, 1)

	_, err = CSVSource{NodesPath: filepath.Join(dir, "missing.csv")}.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
