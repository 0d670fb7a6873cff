package builder

import (
	"fmt"
	"math/rand"

	"github.com/dd0wney/cluso-netsci/pkg/logging"
)

// DefaultProbability is the intra-sector link probability.
const DefaultProbability = 0.1

// DefaultSeed seeds the link RNG when no WithSeed/WithRand is given.
const DefaultSeed int64 = 42

// Policy selects how edges are created.
type Policy int

const (
	// PolicyAuto uses the explicit edge list when the dataset has one,
	// otherwise sector linking.
	PolicyAuto Policy = iota
	// PolicySectorLinking ignores any edge list and links within sectors.
	PolicySectorLinking
	// PolicyEdgeList requires an explicit edge list.
	PolicyEdgeList
)

func (p Policy) String() string {
	switch p {
	case PolicyAuto:
		return "auto"
	case PolicySectorLinking:
		return "sector"
	case PolicyEdgeList:
		return "edgelist"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a config or flag value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "auto":
		return PolicyAuto, nil
	case "sector":
		return PolicySectorLinking, nil
	case "edgelist":
		return PolicyEdgeList, nil
	default:
		return PolicyAuto, fmt.Errorf("unknown edge policy %q", s)
	}
}

// Option customizes Build.
type Option func(*config)

type config struct {
	rng         *rand.Rand
	probability float64
	policy      Policy
	logger      logging.Logger
}

func newConfig(opts ...Option) *config {
	c := &config{
		probability: DefaultProbability,
		policy:      PolicyAuto,
		logger:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	return c
}

// WithSeed links with a fresh RNG seeded by seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand links with the caller's RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithProbability sets the intra-sector link probability. Panics outside [0, 1].
func WithProbability(p float64) Option {
	if p < 0 || p > 1 || p != p {
		panic(fmt.Sprintf("builder: WithProbability(%v) outside [0,1]", p))
	}
	return func(c *config) {
		c.probability = p
	}
}

// WithPolicy overrides the edge policy.
func WithPolicy(p Policy) Option {
	return func(c *config) {
		c.policy = p
	}
}

// WithLogger sets the logger used for build progress. Panics on nil.
func WithLogger(l logging.Logger) Option {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
