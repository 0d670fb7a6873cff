package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, DefaultSeed, c.Build.Seed)
	assert.Equal(t, 0.1, c.Probability())
	assert.Equal(t, "auto", c.Build.Policy)
	assert.Equal(t, "sector", c.Output.Layout)
	assert.Equal(t, 30, c.Analysis.HistogramBins)
	assert.Equal(t, DefaultTopHubs, c.Analysis.TopHubs)
	assert.Equal(t, DefaultSeed, c.ConfigModelSeed())

	// Nodes path is the only required setting.
	assert.Error(t, c.Validate())
	c.Input.Nodes = "sp500_nodes.csv"
	assert.NoError(t, c.Validate())
}

func TestParse(t *testing.T) {
	data := []byte(`
input:
  nodes: data/sp500_nodes.csv
  edges: data/sp500_edges.csv
build:
  seed: 7
  probability: 0
  policy: edgelist
analysis:
  histogram_bins: 20
  config_model_seed: 99
output:
  gexf: out/sp500.gexf.sz
  layout: force
  no_color: true
publish:
  bucket: netsci-artifacts
  prefix: runs/
log_level: debug
`)
	c, err := Parse(data)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "data/sp500_nodes.csv", c.Input.Nodes)
	assert.Equal(t, int64(7), c.Build.Seed)
	assert.Equal(t, 0.0, c.Probability(), "explicit zero probability must survive defaults")
	assert.Equal(t, "edgelist", c.Build.Policy)
	assert.Equal(t, 20, c.Analysis.HistogramBins)
	assert.Equal(t, int64(99), c.ConfigModelSeed())
	assert.Equal(t, "force", c.Output.Layout)
	assert.True(t, c.Output.NoColor)
	assert.Equal(t, "netsci-artifacts", c.Publish.Bucket)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestParse_Empty(t *testing.T) {
	c, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistogramBins, c.Analysis.HistogramBins)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := Parse([]byte("build:\n  sede: 1\n"))
	assert.Error(t, err)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"probability above one", func(c *Config) { c.SetProbability(1.5) }},
		{"unknown policy", func(c *Config) { c.Build.Policy = "random" }},
		{"edgelist without edges", func(c *Config) { c.Build.Policy = "edgelist" }},
		{"unknown layout", func(c *Config) { c.Output.Layout = "spiral" }},
		{"too many bins", func(c *Config) { c.Analysis.HistogramBins = 5000 }},
		{"absolute prefix", func(c *Config) { c.Publish.Bucket = "b"; c.Publish.Prefix = "/runs" }},
		{"bad log level", func(c *Config) { c.LogLevel = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			c.Input.Nodes = "nodes.csv"
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestValidate_PostgresNeedsNoNodesFile(t *testing.T) {
	c := Default()
	c.Input.Postgres.DSN = "postgres://localhost/sp500"
	assert.NoError(t, c.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netsci.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input:\n  nodes: n.csv\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "n.csv", c.Input.Nodes)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheckInputs(t *testing.T) {
	dir := t.TempDir()
	nodes := filepath.Join(dir, "nodes.csv")
	require.NoError(t, os.WriteFile(nodes, []byte("Symbol,Name,Sector,Market Cap\n"), 0o644))

	c := Default()
	c.Input.Nodes = nodes
	assert.NoError(t, c.CheckInputs())

	c.Input.Edges = filepath.Join(dir, "edges.csv")
	assert.ErrorIs(t, c.CheckInputs(), os.ErrNotExist)

	c.Input.Nodes = dir
	c.Input.Edges = ""
	assert.ErrorContains(t, c.CheckInputs(), "is a directory")

	c.Input.Postgres.DSN = "postgres://localhost/sp500"
	assert.NoError(t, c.CheckInputs(), "files are not read when a DSN is set")
}
