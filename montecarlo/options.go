package montecarlo

import (
	"time"

	"golang.org/x/exp/rand"
)

// Option customizes a single Estimate call.
type Option func(*estimatorConfig)

type estimatorConfig struct {
	src             rand.Source
	gridResolution  int
	batchSize       int
	confidenceLevel float64
	keepSamples     bool
}

func newEstimatorConfig(opts ...Option) estimatorConfig {
	cfg := estimatorConfig{
		gridResolution:  DefaultGridResolution,
		batchSize:       DefaultBatchSize,
		confidenceLevel: DefaultConfidenceLevel,
		keepSamples:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return cfg
}

// WithSeed draws all points from a fresh source seeded with seed,
// two calls with the same seed produce the same sample points.
func WithSeed(seed uint64) Option {
	return func(c *estimatorConfig) {
		c.src = rand.NewSource(seed)
	}
}

// WithSource draws points from src. The source is advanced by the call,
// so it must not be shared with concurrent estimations. nil is ignored.
func WithSource(src rand.Source) Option {
	return func(c *estimatorConfig) {
		if src != nil {
			c.src = src
		}
	}
}

// WithGridResolution sets the number of grid points used to bound f.
// Non-positive values make Estimate fail with ErrorInvalidGridResolution.
func WithGridResolution(n int) Option {
	return func(c *estimatorConfig) {
		c.gridResolution = n
	}
}

func WithBatchSize(n int) Option {
	return func(c *estimatorConfig) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

// WithConfidenceLevel sets the level of the reported confidence interval, must be in (0, 1).
func WithConfidenceLevel(level float64) Option {
	return func(c *estimatorConfig) {
		c.confidenceLevel = level
	}
}

// WithKeepSamples controls whether the raw sample points are returned.
func WithKeepSamples(keep bool) Option {
	return func(c *estimatorConfig) {
		c.keepSamples = keep
	}
}
