// Package builder turns a company dataset into a graph, either from an
// explicit relationship list or by random intra-sector linking.
package builder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dd0wney/cluso-netsci/pkg/graph"
	"github.com/dd0wney/cluso-netsci/pkg/ingest"
	"github.com/dd0wney/cluso-netsci/pkg/logging"
)

// ErrNoEdgeList is returned for PolicyEdgeList when the dataset has none.
var ErrNoEdgeList = fmt.Errorf("edge list required: %w", graph.ErrDataFormat)

// Result describes what Build did.
type Result struct {
	Policy            Policy  `json:"-"`
	PolicyName        string  `json:"policy"`
	Probability       float64 `json:"probability,omitempty"`
	Nodes             int     `json:"nodes"`
	EdgesAdded        int     `json:"edges_added"`
	CandidatePairs    int     `json:"candidate_pairs,omitempty"`
	SelfLoopsDropped  int     `json:"self_loops_dropped,omitempty"`
	DuplicatesDropped int     `json:"duplicates_dropped,omitempty"`
}

// Build creates one node per company and adds edges per the configured policy.
// The dataset is not modified. For a fixed seed the result is deterministic.
func Build(ds *ingest.Dataset, opts ...Option) (*graph.Graph, *Result, error) {
	cfg := newConfig(opts...)

	if ds == nil || len(ds.Companies) == 0 {
		return nil, nil, graph.ErrEmptyInput
	}

	g := graph.New()
	for i, rec := range ds.Companies {
		if err := g.AddCompany(rec.Company()); err != nil {
			return nil, nil, graph.NewError("build").
				Node(rec.Symbol).
				Record(i + 1).
				Cause(err).
				Build()
		}
	}

	policy := cfg.policy
	if policy == PolicyAuto {
		policy = PolicySectorLinking
		if ds.HasEdgeList {
			policy = PolicyEdgeList
		}
	}

	res := &Result{Policy: policy, PolicyName: policy.String(), Nodes: g.NodeCount()}

	var err error
	switch policy {
	case PolicyEdgeList:
		if !ds.HasEdgeList {
			return nil, nil, ErrNoEdgeList
		}
		err = addEdgeList(g, ds.Edges, res)
	default:
		res.Probability = cfg.probability
		err = linkSectors(g, cfg, res)
	}
	if err != nil {
		return nil, nil, err
	}

	cfg.logger.Info("graph built",
		logging.String("policy", res.PolicyName),
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("self_loops_dropped", res.SelfLoopsDropped),
		logging.Int("duplicates_dropped", res.DuplicatesDropped),
	)
	return g, res, nil
}

func addEdgeList(g *graph.Graph, edges []ingest.EdgeRecord, res *Result) error {
	for i, e := range edges {
		added, err := g.AddEdge(e.Source, e.Target)
		switch {
		case errors.Is(err, graph.ErrSelfLoop):
			res.SelfLoopsDropped++
		case err != nil:
			return graph.NewError("build").
				Edge(e.Source, e.Target).
				Record(i + 1).
				Cause(err).
				Build()
		case !added:
			res.DuplicatesDropped++
		default:
			res.EdgesAdded++
		}
	}
	return nil
}

// linkSectors draws one Bernoulli(p) trial per unordered same-sector pair.
// Sectors and members are visited in ascending order so a seed fully
// determines the output.
func linkSectors(g *graph.Graph, cfg *config, res *Result) error {
	members := make(map[string][]string)
	for _, sym := range g.Symbols() {
		c, _ := g.Company(sym)
		members[c.Sector] = append(members[c.Sector], sym)
	}

	sectors := make([]string, 0, len(members))
	for s := range members {
		sectors = append(sectors, s)
	}
	sort.Strings(sectors)

	for _, sector := range sectors {
		syms := members[sector]
		before := res.EdgesAdded
		for i := 0; i < len(syms); i++ {
			for j := i + 1; j < len(syms); j++ {
				res.CandidatePairs++
				if cfg.rng.Float64() >= cfg.probability {
					continue
				}
				if _, err := g.AddEdge(syms[i], syms[j]); err != nil {
					return err
				}
				res.EdgesAdded++
			}
		}
		cfg.logger.Debug("sector linked",
			logging.Sector(sector),
			logging.Int("members", len(syms)),
			logging.Int("edges", res.EdgesAdded-before),
		)
	}
	return nil
}
