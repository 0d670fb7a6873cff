// Command netsci builds a company relationship graph from a CSV or
// PostgreSQL dataset, computes network metrics and exports the result.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-netsci/pkg/analysis"
	"github.com/dd0wney/cluso-netsci/pkg/config"
	"github.com/dd0wney/cluso-netsci/pkg/ingest"
	"github.com/dd0wney/cluso-netsci/pkg/logging"
	"github.com/dd0wney/cluso-netsci/pkg/metrics"
	"github.com/dd0wney/cluso-netsci/pkg/report"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "netsci: %v\n", err)
		return exitUsage
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	logger := logging.NewJSONLogger(stderr, level)
	logging.SetDefaultLogger(logger)
	defer logging.SetDefaultLogger(nil)

	if err := execute(ctx, cfg, logger, stdout); err != nil {
		logger.Error("run failed", logging.Error(err))
		fmt.Fprintf(stderr, "netsci: %v\n", err)
		return exitError
	}
	return exitOK
}

// parseArgs loads the optional config file, applies flags that were set
// explicitly, and validates the result.
func parseArgs(args []string, stderr io.Writer) (*config.Config, error) {
	fs := flag.NewFlagSet("netsci", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML configuration file")
	nodes := fs.String("nodes", "", "company CSV (Symbol, Name, Sector, Market Cap)")
	edges := fs.String("edges", "", "optional edge list CSV (source, target)")
	dsn := fs.String("dsn", "", "PostgreSQL connection string; replaces -nodes")
	seed := fs.Int64("seed", config.DefaultSeed, "random seed for sector linking")
	prob := fs.Float64("p", config.DefaultProbability, "intra-sector link probability")
	policy := fs.String("policy", config.DefaultPolicy, "edge policy: auto, sector or edgelist")
	bins := fs.Int("bins", config.DefaultHistogramBins, "degree histogram bins")
	top := fs.Int("top", config.DefaultTopHubs, "number of hubs to list")
	layout := fs.String("layout", config.DefaultLayout, "GEXF layout: sector, circular, force, hub or none")
	gexf := fs.String("gexf", "", "GEXF output path; a .sz suffix compresses it")
	vizJSON := fs.String("viz-json", "", "nodes/links JSON output path")
	reportJSON := fs.String("report-json", "", "JSON report output path")
	distribution := fs.String("distribution", "", "degree distribution CSV output path")
	histogram := fs.String("histogram", "", "degree histogram CSV output path")
	metricsFile := fs.String("metrics-file", "", "Prometheus textfile output path")
	publishDir := fs.String("publish-dir", "", "copy artifacts into this directory")
	bucket := fs.String("bucket", "", "upload artifacts to this S3 bucket")
	prefix := fs.String("prefix", "", "S3 key prefix")
	noColor := fs.Bool("no-color", false, "disable colour in the text report")
	logLevel := fs.String("log-level", config.DefaultLogLevel, "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if env := os.Getenv(logging.LevelEnv); env != "" {
		cfg.LogLevel = env
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "nodes":
			cfg.Input.Nodes = *nodes
		case "edges":
			cfg.Input.Edges = *edges
		case "dsn":
			cfg.Input.Postgres.DSN = *dsn
		case "seed":
			cfg.Build.Seed = *seed
		case "p":
			cfg.SetProbability(*prob)
		case "policy":
			cfg.Build.Policy = *policy
		case "bins":
			cfg.Analysis.HistogramBins = *bins
		case "top":
			cfg.Analysis.TopHubs = *top
		case "layout":
			cfg.Output.Layout = *layout
		case "gexf":
			cfg.Output.GEXF = *gexf
		case "viz-json":
			cfg.Output.VizJSON = *vizJSON
		case "report-json":
			cfg.Output.ReportJSON = *reportJSON
		case "distribution":
			cfg.Output.Distribution = *distribution
		case "histogram":
			cfg.Output.Histogram = *histogram
		case "metrics-file":
			cfg.Output.MetricsFile = *metricsFile
		case "publish-dir":
			cfg.Publish.Dir = *publishDir
		case "bucket":
			cfg.Publish.Bucket = *bucket
		case "prefix":
			cfg.Publish.Prefix = *prefix
		case "no-color":
			cfg.Output.NoColor = *noColor
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.CheckInputs(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func sourceFor(cfg *config.Config) ingest.Source {
	if cfg.Input.Postgres.DSN != "" {
		return ingest.PostgresSource{
			DSN:            cfg.Input.Postgres.DSN,
			CompaniesQuery: cfg.Input.Postgres.CompaniesQuery,
			EdgesQuery:     cfg.Input.Postgres.EdgesQuery,
		}
	}
	return ingest.CSVSource{NodesPath: cfg.Input.Nodes, EdgesPath: cfg.Input.Edges}
}

func execute(ctx context.Context, cfg *config.Config, logger logging.Logger, stdout io.Writer) error {
	runID := uuid.NewString()
	log := logger.With(logging.RunID(runID))
	reg := metrics.NewRegistry()

	timer := logging.StartTimer(log, "dataset loaded", logging.Stage("load"))
	ds, err := sourceFor(cfg).Load(ctx)
	if err != nil {
		timer.EndError(err)
		reg.RecordStage("load", metrics.StatusError, timer.Elapsed())
		return err
	}
	reg.RecordStage("load", metrics.StatusOK, timer.End(logging.Count(len(ds.Companies))))

	rep, err := analysis.Run(ctx, cfg, ds, analysis.Deps{
		Logger:  logger,
		Metrics: reg,
		RunID:   runID,
	})
	if err != nil {
		return err
	}

	if err := writeArtifacts(ctx, cfg, rep, reg, log); err != nil {
		return err
	}

	return report.RenderText(stdout, rep, report.Options{
		NoColor:   cfg.Output.NoColor,
		Artifacts: true,
	})
}
