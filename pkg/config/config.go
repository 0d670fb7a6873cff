// Package config loads the netsci run configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-netsci/pkg/logging"
	"github.com/dd0wney/cluso-netsci/pkg/validation"
)

// Defaults.
const (
	DefaultSeed          int64 = 42
	DefaultProbability         = 0.1
	DefaultPolicy              = "auto"
	DefaultLayout              = "sector"
	DefaultHistogramBins       = 30
	DefaultTopHubs             = 10
	DefaultLogLevel            = "info"
)

// Config is the full run configuration.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Build    BuildConfig    `yaml:"build"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Publish  PublishConfig  `yaml:"publish"`
	LogLevel string         `yaml:"log_level"`
}

// InputConfig selects the data source. Postgres is used when DSN is set.
type InputConfig struct {
	Nodes    string         `yaml:"nodes"`
	Edges    string         `yaml:"edges"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig selects the database source; a non-empty DSN replaces the CSV inputs.
type PostgresConfig struct {
	DSN            string `yaml:"dsn"`
	CompaniesQuery string `yaml:"companies_query"`
	EdgesQuery     string `yaml:"edges_query"`
}

// BuildConfig controls edge construction. A nil Probability means the default.
type BuildConfig struct {
	Seed        int64    `yaml:"seed"`
	Probability *float64 `yaml:"probability"`
	Policy      string   `yaml:"policy"`
}

// AnalysisConfig tunes the deep metrics.
type AnalysisConfig struct {
	HistogramBins int `yaml:"histogram_bins"`
	TopHubs       int `yaml:"top_hubs"`
	// ConfigSeed seeds the configuration model; 0 reuses Build.Seed.
	ConfigSeed int64 `yaml:"config_model_seed"`
}

// OutputConfig names the local artifacts. Empty paths are skipped.
type OutputConfig struct {
	GEXF         string `yaml:"gexf"`
	Layout       string `yaml:"layout"`
	VizJSON      string `yaml:"viz_json"`
	ReportJSON   string `yaml:"report_json"`
	Distribution string `yaml:"distribution"`
	Histogram    string `yaml:"histogram"`
	MetricsFile  string `yaml:"metrics_file"`
	NoColor      bool   `yaml:"no_color"`
}

// PublishConfig uploads artifacts. An empty Bucket disables S3 and a
// non-empty Dir copies artifacts locally. Endpoint points the S3 client at
// a compatible store such as R2 or MinIO.
type PublishConfig struct {
	Dir      string `yaml:"dir"`
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads path and applies defaults. Callers validate after applying
// any command-line overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, rejecting unknown keys, and applies defaults.
// An empty document yields the defaults.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	c.ApplyDefaults()
	return &c, nil
}

// ApplyDefaults fills zero values.
func (c *Config) ApplyDefaults() {
	c.Build.Seed = validation.DefaultOr(c.Build.Seed, DefaultSeed)
	if c.Build.Probability == nil {
		p := DefaultProbability
		c.Build.Probability = &p
	}
	c.Build.Policy = validation.DefaultOr(c.Build.Policy, DefaultPolicy)
	c.Analysis.HistogramBins = validation.DefaultOr(c.Analysis.HistogramBins, DefaultHistogramBins)
	c.Analysis.TopHubs = validation.DefaultOr(c.Analysis.TopHubs, DefaultTopHubs)
	c.Output.Layout = validation.DefaultOr(c.Output.Layout, DefaultLayout)
	c.LogLevel = validation.DefaultOr(c.LogLevel, DefaultLogLevel)
}

// Probability returns the link probability after defaults.
func (c *Config) Probability() float64 {
	if c.Build.Probability == nil {
		return DefaultProbability
	}
	return *c.Build.Probability
}

// SetProbability overrides the link probability.
func (c *Config) SetProbability(p float64) {
	c.Build.Probability = &p
}

// ConfigModelSeed returns the seed for the configuration model.
func (c *Config) ConfigModelSeed() int64 {
	return validation.DefaultOr(c.Analysis.ConfigSeed, c.Build.Seed)
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	cv := validation.NewConfigValidator("Config")

	cv.When(c.Input.Postgres.DSN == "", func(v *validation.ConfigValidator) {
		v.Required("input.nodes", c.Input.Nodes)
	})
	cv.Probability("build.probability", c.Probability())
	cv.OneOf("build.policy", c.Build.Policy, []string{"auto", "sector", "edgelist"})
	cv.When(c.Build.Policy == "edgelist", func(v *validation.ConfigValidator) {
		v.Custom("input.edges", func() error {
			if c.Input.Edges == "" && c.Input.Postgres.EdgesQuery == "" {
				return errors.New("edgelist policy needs an edge file or edges query")
			}
			return nil
		})
	})
	cv.RangeInt("analysis.histogram_bins", c.Analysis.HistogramBins, 1, 1000)
	cv.Positive("analysis.top_hubs", c.Analysis.TopHubs)
	cv.OneOf("output.layout", c.Output.Layout, []string{"sector", "circular", "force", "hub", "none"})
	cv.Custom("log_level", func() error {
		_, err := logging.ParseLevel(c.LogLevel)
		return err
	})
	cv.When(c.Publish.Bucket != "", func(v *validation.ConfigValidator) {
		v.Custom("publish.prefix", func() error {
			if strings.HasPrefix(c.Publish.Prefix, "/") {
				return errors.New("must not start with '/'")
			}
			return nil
		})
	})

	return cv.Validate()
}

// CheckInputs verifies that the configured CSV inputs exist. It is kept
// apart from Validate so configs can be validated away from their data.
func (c *Config) CheckInputs() error {
	cv := validation.NewConfigValidator("Config")
	cv.When(c.Input.Postgres.DSN == "", func(v *validation.ConfigValidator) {
		v.FileExists("input.nodes", c.Input.Nodes)
		v.FileExists("input.edges", c.Input.Edges)
	})
	return cv.Validate()
}
