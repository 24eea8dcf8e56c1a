// Package solver configuration: functional options controlling randomness
// and diagnostics.
package solver

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Option customizes a Solver before its first search.
//
// Option constructors never panic at runtime, and ignore nil inputs.
type Option func(cfg *config)

// config holds the configurable parameters of a Solver:
//   - rng: source of randomness (nil means the process-global source).
//   - log: diagnostics sink (defaults to a no-op logger).
type config struct {
	rng *rand.Rand
	log zerolog.Logger
}

// newConfig returns a config initialized with defaults, then applies each
// provided Option in order. Later options override earlier ones.
// Complexity: O(len(opts)) time, O(1) extra space.
func newConfig(opts ...Option) config {
	cfg := config{
		rng: nil,           // process-global randomness
		log: zerolog.Nop(), // silent by default
	}

	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand sets an explicit *rand.Rand source for candidate ordering and
// tie breaking. If rng is nil, this option is a no-op.
// Complexity: O(1) time, O(1) space.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and assigns
// it as the randomness source. Use this for reproducible solves.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the zerolog sink for search diagnostics: solve start and
// finish at debug level, per-branch decisions and backtracks at trace level.
// Complexity: O(1) time, O(1) space.
func WithLogger(log zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.log = log
	}
}
