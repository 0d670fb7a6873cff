package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/dd0wney/cluso-netsci/pkg/analysis"
	"github.com/dd0wney/cluso-netsci/pkg/config"
	"github.com/dd0wney/cluso-netsci/pkg/export"
	"github.com/dd0wney/cluso-netsci/pkg/logging"
	"github.com/dd0wney/cluso-netsci/pkg/metrics"
	"github.com/dd0wney/cluso-netsci/pkg/publish"
	"github.com/dd0wney/cluso-netsci/pkg/report"
	"github.com/dd0wney/cluso-netsci/pkg/visualization"
)

// Artifact names used in the report and the netsci_artifact_bytes gauge.
const (
	artifactGEXF         = "gexf"
	artifactVizJSON      = "viz_json"
	artifactDistribution = "distribution"
	artifactHistogram    = "histogram"
	artifactReport       = "report_json"
	artifactMetrics      = "metrics"
)

type artifactWriter struct {
	rep   *analysis.Report
	reg   *metrics.Registry
	log   logging.Logger
	files []string
}

func (a *artifactWriter) record(name, path string, size int64) {
	a.rep.Artifacts = append(a.rep.Artifacts, analysis.Artifact{Name: name, Location: path, Bytes: size})
	a.reg.SetArtifactSize(name, size)
	a.files = append(a.files, path)
	a.log.Info("artifact written", logging.String("artifact", name), logging.Path(path), logging.Int64("bytes", size))
}

// writeTo creates path (and its directory) and streams fn's output into it.
func writeTo(path string, fn func(io.Writer) error) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := fn(bw); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return 0, err
	}
	return info.Size(), f.Close()
}

// writeArtifacts writes every configured output, then the metrics textfile,
// then publishes all of them.
func writeArtifacts(ctx context.Context, cfg *config.Config, rep *analysis.Report, reg *metrics.Registry, log logging.Logger) error {
	a := &artifactWriter{rep: rep, reg: reg, log: log}
	out := cfg.Output

	if out.GEXF != "" || out.VizJSON != "" {
		layout, err := visualization.NewLayout(out.Layout, nil, rand.New(rand.NewSource(cfg.Build.Seed)))
		if err != nil {
			return err
		}
		viz, err := visualization.Build(rep.Graph(), layout)
		if err != nil {
			return fmt.Errorf("layout failed: %w", err)
		}

		if out.GEXF != "" {
			if err := os.MkdirAll(filepath.Dir(out.GEXF), 0755); err != nil {
				return err
			}
			n, err := export.WriteFile(out.GEXF, rep.Graph(), export.GEXFOptions{
				Creator:     "netsci",
				Description: fmt.Sprintf("company network, policy %s, seed %d", rep.Build.PolicyName, rep.Seed),
				Viz:         viz,
			})
			if err != nil {
				return err
			}
			a.record(artifactGEXF, out.GEXF, n)
		}

		if out.VizJSON != "" {
			data, err := viz.ExportJSON()
			if err != nil {
				return err
			}
			n, err := writeTo(out.VizJSON, func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			})
			if err != nil {
				return err
			}
			a.record(artifactVizJSON, out.VizJSON, n)
		}
	}

	if out.Distribution != "" {
		n, err := writeTo(out.Distribution, func(w io.Writer) error {
			return export.WriteDistributionCSV(w, rep.Deep.Distribution)
		})
		if err != nil {
			return err
		}
		a.record(artifactDistribution, out.Distribution, n)
	}

	if out.Histogram != "" {
		n, err := writeTo(out.Histogram, func(w io.Writer) error {
			return export.WriteHistogramCSV(w, rep.Deep.Histogram)
		})
		if err != nil {
			return err
		}
		a.record(artifactHistogram, out.Histogram, n)
	}

	if out.ReportJSON != "" {
		n, err := writeTo(out.ReportJSON, func(w io.Writer) error {
			return report.WriteJSON(w, rep)
		})
		if err != nil {
			return err
		}
		a.record(artifactReport, out.ReportJSON, n)
	}

	if out.MetricsFile != "" {
		if err := os.MkdirAll(filepath.Dir(out.MetricsFile), 0755); err != nil {
			return err
		}
		if err := reg.WriteTextfile(out.MetricsFile); err != nil {
			return err
		}
		info, err := os.Stat(out.MetricsFile)
		if err != nil {
			return err
		}
		a.record(artifactMetrics, out.MetricsFile, info.Size())
	}

	return a.publish(ctx, cfg.Publish)
}

func (a *artifactWriter) publish(ctx context.Context, cfg config.PublishConfig) error {
	var pubs []publish.Publisher
	if cfg.Dir != "" {
		pubs = append(pubs, &publish.LocalPublisher{Dir: cfg.Dir})
	}
	if cfg.Bucket != "" {
		s3pub, err := publish.NewS3Publisher(ctx, publish.S3Options{
			Bucket:   cfg.Bucket,
			Prefix:   cfg.Prefix,
			Region:   cfg.Region,
			Endpoint: cfg.Endpoint,
		})
		if err != nil {
			return err
		}
		pubs = append(pubs, s3pub)
	}
	if len(pubs) == 0 || len(a.files) == 0 {
		return nil
	}

	results, err := publish.PublishFiles(ctx, a.log, pubs, a.files)
	if err != nil {
		return err
	}
	for _, r := range results {
		a.rep.Artifacts = append(a.rep.Artifacts, analysis.Artifact{Name: r.Name, Location: r.Location, Bytes: r.Bytes})
	}
	return nil
}
