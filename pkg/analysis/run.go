// Package analysis runs the build and metric stages over a dataset and
// collects the results into a Report.
package analysis

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-netsci/pkg/algorithms"
	"github.com/dd0wney/cluso-netsci/pkg/builder"
	"github.com/dd0wney/cluso-netsci/pkg/config"
	"github.com/dd0wney/cluso-netsci/pkg/graph"
	"github.com/dd0wney/cluso-netsci/pkg/ingest"
	"github.com/dd0wney/cluso-netsci/pkg/logging"
	"github.com/dd0wney/cluso-netsci/pkg/metrics"
)

// Stage names.
const (
	StageBuild        = "build"
	StageSummary      = "summary"
	StageDegree       = "average_degree"
	StagePaths        = "paths"
	StageClustering   = "clustering"
	StageDistribution = "degree_distribution"
	StageCentrality   = "centrality"
	StageHubRemoval   = "hub_removal"
	StageConfigModel  = "configuration_model"
	StageAssortative  = "assortativity"
)

// Deps carries the run's collaborators. Zero values are replaced with
// no-op or fresh instances.
type Deps struct {
	Logger  logging.Logger
	Metrics *metrics.Registry
	RunID   string
	Now     func() time.Time
}

func (d *Deps) fill() {
	if d.Logger == nil {
		d.Logger = logging.NewNopLogger()
	}
	if d.Metrics == nil {
		d.Metrics = metrics.NewRegistry()
	}
	if d.RunID == "" {
		d.RunID = uuid.NewString()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
}

// undefined reports whether err marks a metric with no value on this graph
// rather than a failure.
func undefined(err error) bool {
	return errors.Is(err, graph.ErrDisconnectedGraph) ||
		errors.Is(err, algorithms.ErrUndefinedAssortativity)
}

type runner struct {
	deps   Deps
	log    logging.Logger
	report *Report
}

// stage times fn, logs and records the outcome. Undefined-metric errors are
// recorded and swallowed; any other error aborts the run.
func (r *runner) stage(ctx context.Context, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := logging.StartTimer(r.log, "stage complete", logging.Stage(name))
	err := fn()

	result := StageResult{Name: name, Status: metrics.StatusOK}
	switch {
	case err == nil:
		result.Duration = timer.End()
	case undefined(err):
		result.Status = metrics.StatusUndefined
		result.Reason = err.Error()
		result.Duration = timer.EndWarn(err.Error())
	default:
		result.Status = metrics.StatusError
		result.Reason = err.Error()
		result.Duration = timer.EndError(err)
	}

	r.deps.Metrics.RecordStage(name, result.Status, result.Duration)
	r.report.Stages = append(r.report.Stages, result)

	if result.Status == metrics.StatusError {
		return err
	}
	return nil
}

func (r *runner) markUndefined(metric string, err error) Metric {
	r.deps.Metrics.RecordUndefined(metric)
	return Undefined(err.Error())
}

// Run builds the graph from ds and computes every metric. A metric that is
// undefined for the graph (disconnected, zero variance) is reported as such
// and the run continues; any other error aborts.
func Run(ctx context.Context, cfg *config.Config, ds *ingest.Dataset, deps Deps) (*Report, error) {
	deps.fill()

	policy, err := builder.ParsePolicy(cfg.Build.Policy)
	if err != nil {
		return nil, err
	}

	log := deps.Logger.With(logging.RunID(deps.RunID))
	started := deps.Now()

	r := &runner{
		deps: deps,
		log:  log,
		report: &Report{
			RunID:     deps.RunID,
			StartedAt: started,
			Seed:      cfg.Build.Seed,
		},
	}
	rep := r.report

	log.Info("analysis started",
		logging.Seed(cfg.Build.Seed),
		logging.Float64("probability", cfg.Probability()),
		logging.String("policy", policy.String()),
		logging.Count(len(ds.Companies)),
	)

	var g *graph.Graph
	err = r.stage(ctx, StageBuild, func() error {
		built, res, err := builder.Build(ds,
			builder.WithSeed(cfg.Build.Seed),
			builder.WithProbability(cfg.Probability()),
			builder.WithPolicy(policy),
			builder.WithLogger(log),
		)
		if err != nil {
			return err
		}
		g, rep.Build = built, res
		rep.graph = built
		return nil
	})
	if err != nil {
		return nil, err
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{StageSummary, func() error { return r.summarise(g) }},
		{StageDegree, func() error { return r.averageDegree(g) }},
		{StagePaths, func() error { return r.paths(g) }},
		{StageClustering, func() error { return r.clustering(g) }},
		{StageDistribution, func() error { return r.distribution(g, cfg.Analysis.HistogramBins, cfg.Analysis.TopHubs) }},
		{StageCentrality, func() error { return r.centrality(g, cfg.Analysis.TopHubs) }},
		{StageHubRemoval, func() error { return r.hubRemoval(g) }},
		{StageConfigModel, func() error { return r.configModel(g, cfg.ConfigModelSeed()) }},
		{StageAssortative, func() error { return r.assortativity(g) }},
	}
	for _, s := range steps {
		if err := r.stage(ctx, s.name, s.fn); err != nil {
			return nil, err
		}
	}

	finished := deps.Now()
	rep.Duration = finished.Sub(started)
	deps.Metrics.SetRunInfo(deps.RunID, rep.Build.PolicyName, finished)
	deps.Metrics.UpdateSystemMetrics()

	log.Info("analysis finished", logging.Duration("elapsed", rep.Duration))
	return rep, nil
}

func (r *runner) summarise(g *graph.Graph) error {
	comps := algorithms.ConnectedComponents(g)
	s := &r.report.Summary

	s.Nodes = g.NodeCount()
	s.Edges = g.EdgeCount()
	if s.Nodes > 1 {
		s.Density = 2 * float64(s.Edges) / float64(s.Nodes*(s.Nodes-1))
	}
	s.Components = len(comps.Components)
	for _, c := range comps.Components {
		if c.Size > s.GiantSize {
			s.GiantSize = c.Size
		}
		if c.Size == 1 {
			s.Isolated++
		}
	}

	index := make(map[string]int)
	for _, name := range g.Sectors() {
		index[name] = len(s.Sectors)
		s.Sectors = append(s.Sectors, SectorSummary{Name: name})
	}
	for _, sym := range g.Symbols() {
		c, _ := g.Company(sym)
		sec := &s.Sectors[index[c.Sector]]
		sec.Companies++
		sec.MarketCap += c.MarketCap
	}
	for _, e := range g.Edges() {
		a, _ := g.Company(e.A)
		b, _ := g.Company(e.B)
		if a.Sector == b.Sector {
			s.Sectors[index[a.Sector]].Edges++
		}
	}

	r.deps.Metrics.SetGraphShape(s.Nodes, s.Edges, len(s.Sectors), s.Components, s.GiantSize)
	return nil
}

func (r *runner) averageDegree(g *graph.Graph) error {
	avg, err := algorithms.AverageDegree(g)
	if err != nil {
		return err
	}
	r.report.Basic.AverageDegree = Defined(avg)
	r.deps.Metrics.AverageDegree.Set(avg)
	r.log.Info("average degree", logging.Metric("average_degree", avg))
	return nil
}

func (r *runner) paths(g *graph.Graph) error {
	stats, err := algorithms.GiantPathStats(g)
	if undefined(err) {
		r.report.Basic.Diameter = r.markUndefined("diameter", err)
		r.report.Basic.AveragePathLength = r.markUndefined("average_path_length", err)
		return err
	}
	if err != nil {
		return err
	}
	r.report.Basic.Diameter = Defined(float64(stats.Diameter))
	r.report.Basic.AveragePathLength = Defined(stats.AveragePathLength)
	r.deps.Metrics.Diameter.Set(float64(stats.Diameter))
	r.deps.Metrics.AveragePathLength.Set(stats.AveragePathLength)
	r.log.Info("path statistics",
		logging.Int("giant_size", stats.GiantSize),
		logging.Metric("diameter", float64(stats.Diameter)),
		logging.Metric("average_path_length", stats.AveragePathLength),
	)
	return nil
}

func (r *runner) clustering(g *graph.Graph) error {
	tri := algorithms.CountTriangles(g)
	r.report.Basic.AverageClustering = Defined(tri.AverageClustering)
	r.report.Basic.Triangles = tri.GlobalCount
	r.deps.Metrics.AverageClustering.Set(tri.AverageClustering)
	return nil
}

func (r *runner) distribution(g *graph.Graph, bins, topN int) error {
	dist, err := algorithms.DegreeDistribution(g)
	if err != nil {
		return err
	}
	hist, err := algorithms.DegreeHistogram(g, bins)
	if err != nil {
		return err
	}
	r.report.Deep.Distribution = dist
	r.report.Deep.Histogram = hist

	for _, h := range algorithms.TopHubs(g, topN) {
		r.report.Deep.TopHubs = append(r.report.Deep.TopHubs, Hub{
			Symbol: h.Symbol,
			Name:   h.Node.Name,
			Sector: h.Node.Sector,
			Degree: int(h.Score),
		})
	}
	return nil
}

// centrality fills betweenness and closeness for the listed hubs and
// ranks the edges that carry the most shortest paths.
func (r *runner) centrality(g *graph.Graph, topN int) error {
	c, err := algorithms.ComputeAllCentrality(g, topN)
	if err != nil {
		return err
	}
	for i := range r.report.Deep.TopHubs {
		h := &r.report.Deep.TopHubs[i]
		h.Betweenness = c.Betweenness[h.Symbol]
		h.Closeness = c.Closeness[h.Symbol]
	}
	r.report.Deep.Bridges = c.TopBridges
	return nil
}

func (r *runner) hubRemoval(g *graph.Graph) error {
	res, err := algorithms.HubRemoval(g)
	if err != nil {
		return err
	}
	r.report.Deep.HubRemoval = res
	r.deps.Metrics.ReducedGiantSize.Set(float64(res.ReducedGiantSize))
	r.log.Info("hub removed",
		logging.Symbol(res.Hub),
		logging.Int("degree", res.HubDegree),
		logging.Int("giant_before", res.OriginalGiantSize),
		logging.Int("giant_after", res.ReducedGiantSize),
	)
	return nil
}

func (r *runner) configModel(g *graph.Graph, seed int64) error {
	cmp, err := algorithms.CompareClustering(g, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	r.report.Deep.ConfigModel = cmp
	r.deps.Metrics.ConfigModelClustering.Set(cmp.Random)
	r.log.Info("configuration model",
		logging.Seed(seed),
		logging.Metric("observed_clustering", cmp.Observed),
		logging.Metric("random_clustering", cmp.Random),
		logging.Int("self_loops", cmp.SelfLoops),
		logging.Int("multi_edges", cmp.MultiEdges),
	)
	return nil
}

// assortativity computes both coefficients; if either is undefined the
// stage reports undefined after filling in the other.
func (r *runner) assortativity(g *graph.Graph) error {
	var firstUndefined error

	if v, err := algorithms.DegreeAssortativity(g); err == nil {
		r.report.Deep.DegreeAssortativity = Defined(v)
		r.deps.Metrics.DegreeAssortativity.Set(v)
	} else if undefined(err) {
		r.report.Deep.DegreeAssortativity = r.markUndefined("degree_assortativity", err)
		firstUndefined = err
	} else {
		return err
	}

	if v, err := algorithms.SectorAssortativity(g); err == nil {
		r.report.Deep.SectorAssortativity = Defined(v)
		r.deps.Metrics.SectorAssortativity.Set(v)
	} else if undefined(err) {
		r.report.Deep.SectorAssortativity = r.markUndefined("sector_assortativity", err)
		if firstUndefined == nil {
			firstUndefined = err
		}
	} else {
		return err
	}

	return firstUndefined
}
