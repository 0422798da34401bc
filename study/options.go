package study

import (
	"runtime"
	"time"

	"github.com/uyouii/montecarlo-integration/montecarlo"
	"golang.org/x/exp/rand"
)

type Option func(*studyConfig)

type studyConfig struct {
	src           rand.Source
	functionName  string
	workers       int
	estimatorOpts []montecarlo.Option
}

func newStudyConfig(opts ...Option) studyConfig {
	cfg := studyConfig{
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return cfg
}

// estimatorOptions draws from src and drops the raw samples unless the
// caller asked for them through WithEstimatorOptions.
func (c studyConfig) estimatorOptions(src rand.Source) []montecarlo.Option {
	opts := []montecarlo.Option{montecarlo.WithKeepSamples(false)}
	opts = append(opts, c.estimatorOpts...)
	return append(opts, montecarlo.WithSource(src))
}

// WithSeed makes the whole study reproducible.
func WithSeed(seed uint64) Option {
	return func(c *studyConfig) {
		c.src = rand.NewSource(seed)
	}
}

func WithSource(src rand.Source) Option {
	return func(c *studyConfig) {
		if src != nil {
			c.src = src
		}
	}
}

// WithFunctionName labels the report and the logs.
func WithFunctionName(name string) Option {
	return func(c *studyConfig) {
		c.functionName = name
	}
}

// WithWorkers bounds the goroutines used by RunStudyParallel.
func WithWorkers(n int) Option {
	return func(c *studyConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithEstimatorOptions forwards options to every estimation, the random
// source is always owned by the study.
func WithEstimatorOptions(opts ...montecarlo.Option) Option {
	return func(c *studyConfig) {
		c.estimatorOpts = append(c.estimatorOpts, opts...)
	}
}
