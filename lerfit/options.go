package lerfit

import (
	"fmt"
	"runtime"
)

// Documented defaults (single source of truth).
const (
	// DefaultBootstrap is the number of bootstrap resamples B.
	DefaultBootstrap = 500

	// DefaultConfidence is the two-sided confidence level of the interval.
	DefaultConfidence = 0.95

	// DefaultSeed seeds the PCG stream when WithSeed is not given, keeping
	// the default configuration reproducible rather than time-derived.
	DefaultSeed uint64 = 1

	// DefaultTolerance is the absolute function-value convergence tolerance
	// of the Nelder-Mead solver.
	DefaultTolerance = 1e-14

	// DefaultMaxIterations bounds the solver's major iterations.
	DefaultMaxIterations = 2000
)

// options collects fitter configuration; mutate only through Option values.
type options struct {
	bootstrap   int
	confidence  float64
	seed        uint64
	tolerance   float64
	maxIter     int
	parallelism int
}

// Option configures Fit and FitPoints.
type Option func(*options)

// WithBootstrap sets the number of bootstrap resamples B (> 0).
func WithBootstrap(b int) Option {
	return func(o *options) { o.bootstrap = b }
}

// WithConfidence sets the two-sided confidence level, strictly in (0,1).
func WithConfidence(c float64) Option {
	return func(o *options) { o.confidence = c }
}

// WithSeed fixes the bootstrap's PCG seed. Identical seed, inputs, and
// options yield an identical Result.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.seed = seed }
}

// WithTolerance sets the solver's absolute convergence tolerance (> 0).
func WithTolerance(tol float64) Option {
	return func(o *options) { o.tolerance = tol }
}

// WithMaxIterations bounds the solver's iteration budget (> 0).
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIter = n }
}

// WithParallelism bounds the bootstrap worker pool; 0 means GOMAXPROCS.
// The result is identical for any worker count.
func WithParallelism(n int) Option {
	return func(o *options) { o.parallelism = n }
}

// gatherOptions applies opts over the defaults and validates eagerly.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		bootstrap:  DefaultBootstrap,
		confidence: DefaultConfidence,
		seed:       DefaultSeed,
		tolerance:  DefaultTolerance,
		maxIter:    DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case o.bootstrap <= 0:
		return o, fmt.Errorf("%w: bootstrap resamples must be > 0, got %d", ErrBadOption, o.bootstrap)
	case o.confidence <= 0 || o.confidence >= 1:
		return o, fmt.Errorf("%w: confidence must be in (0,1), got %g", ErrBadOption, o.confidence)
	case o.tolerance <= 0:
		return o, fmt.Errorf("%w: tolerance must be > 0, got %g", ErrBadOption, o.tolerance)
	case o.maxIter <= 0:
		return o, fmt.Errorf("%w: iteration budget must be > 0, got %d", ErrBadOption, o.maxIter)
	case o.parallelism < 0:
		return o, fmt.Errorf("%w: parallelism must be >= 0, got %d", ErrBadOption, o.parallelism)
	}
	if o.parallelism == 0 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}

	return o, nil
}
