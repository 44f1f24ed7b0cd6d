package lerfit

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// Point is one empirical observation the curve is fit against: the
// logical error fraction Prob measured over Shots repetitions at a given
// round count.
type Point struct {
	Round int
	Prob  float64
	Shots int
}

// Result is the immutable outcome of a fit.
type Result struct {
	// EpsHat is the per-round logical error rate estimate.
	EpsHat float64

	// OffsetHat is the fitted round offset r0.
	OffsetHat float64

	// CI is the bootstrap percentile interval [lower, upper] on ε at the
	// configured confidence level. Zero for FitPoints, which has no raw
	// observations to resample.
	CI [2]float64

	// Confidence is the level CI was computed at; 0 when CI is absent.
	Confidence float64

	// Converged reports that the solver terminated within its budget.
	Converged bool

	// Residuals maps each round count to empirical − fitted probability.
	Residuals map[int]float64

	// Bootstrap holds the sorted converged resample ε estimates backing
	// CI; nil for FitPoints. Exposed for downstream plotting.
	Bootstrap []float64
}

// Initial guesses: one primary, one fixed fallback. Nothing beyond these
// two is ever tried (non-convergence is reported, not guess-hunted).
var (
	primaryGuess  = [2]float64{0.01, 0}
	fallbackGuess = [2]float64{0.1, 0}
)

// Fit estimates (ε, r0) from per-round logical outcome sequences and
// attaches a bootstrap confidence interval. outcomes maps a round count to
// its binary observations, one value per shot.
//
// Errors: ErrInsufficientData (fewer than two distinct round counts, or an
// empty sequence), ErrNonBinaryOutcome, ErrBadOption, ErrFitConvergence.
//
// Complexity: O(solver) + O(B·(shots + solver)) for the bootstrap.
func Fit(outcomes map[int][]uint8, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(outcomes) < 2 {
		return nil, fmt.Errorf("%w: need at least two distinct round counts, got %d", ErrInsufficientData, len(outcomes))
	}

	rounds := make([]int, 0, len(outcomes))
	for r, seq := range outcomes {
		if len(seq) == 0 {
			return nil, fmt.Errorf("%w: empty sequence at round count %d", ErrInsufficientData, r)
		}
		for i, v := range seq {
			if v > 1 {
				return nil, fmt.Errorf("%w: round count %d, shot %d, value %d", ErrNonBinaryOutcome, r, i, v)
			}
		}
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)

	points := make([]Point, len(rounds))
	for i, r := range rounds {
		seq := outcomes[r]
		points[i] = Point{Round: r, Prob: binMean(seq), Shots: len(seq)}
	}

	eps, offset, err := solve(points, o)
	if err != nil {
		return nil, err
	}

	boot, ci, err := bootstrapEps(outcomes, rounds, o)
	if err != nil {
		return nil, err
	}

	return &Result{
		EpsHat:     eps,
		OffsetHat:  offset,
		CI:         ci,
		Confidence: o.confidence,
		Converged:  true,
		Residuals:  residuals(points, eps, offset),
		Bootstrap:  boot,
	}, nil
}

// FitPoints fits (ε, r0) against pre-aggregated empirical probabilities.
// No bootstrap is possible without raw observations, so CI and Bootstrap
// stay empty. Bootstrap-related options are ignored.
func FitPoints(points []Point, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least two points, got %d", ErrInsufficientData, len(points))
	}
	seen := make(map[int]bool, len(points))
	for _, pt := range points {
		if seen[pt.Round] {
			return nil, fmt.Errorf("%w: duplicate round count %d", ErrInsufficientData, pt.Round)
		}
		seen[pt.Round] = true
		if pt.Shots <= 0 {
			return nil, fmt.Errorf("%w: round count %d has no shots", ErrInsufficientData, pt.Round)
		}
		if math.IsNaN(pt.Prob) || pt.Prob < 0 || pt.Prob > 1 {
			return nil, fmt.Errorf("%w: round count %d probability %g", ErrInsufficientData, pt.Round, pt.Prob)
		}
	}

	eps, offset, err := solve(points, o)
	if err != nil {
		return nil, err
	}

	return &Result{
		EpsHat:    eps,
		OffsetHat: offset,
		Converged: true,
		Residuals: residuals(points, eps, offset),
	}, nil
}

// solve runs weighted nonlinear least squares from the primary guess and,
// on non-convergence, exactly once more from the fixed fallback.
func solve(points []Point, o options) (eps, offset float64, err error) {
	eps, offset, ok := minimize(points, primaryGuess, o)
	if ok {
		return eps, offset, nil
	}
	eps, offset, ok = minimize(points, fallbackGuess, o)
	if ok {
		return eps, offset, nil
	}

	return 0, 0, fmt.Errorf("%w: iteration budget %d exhausted from both initial guesses", ErrFitConvergence, o.maxIter)
}

// minimize performs one Nelder-Mead descent of the weighted SSE.
func minimize(points []Point, guess [2]float64, o options) (eps, offset float64, ok bool) {
	problem := optimize.Problem{
		Func: func(x []float64) float64 { return weightedSSE(points, x[0], x[1]) },
	}
	settings := &optimize.Settings{
		MajorIterations: o.maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   o.tolerance,
			Iterations: 50,
		},
	}

	result, err := optimize.Minimize(problem, guess[:], settings, &optimize.NelderMead{})
	if err != nil || result == nil {
		return 0, 0, false
	}
	switch result.Status {
	case optimize.IterationLimit, optimize.FunctionEvaluationLimit, optimize.RuntimeLimit, optimize.NotTerminated, optimize.Failure:
		return 0, 0, false
	}

	return result.X[0], result.X[1], true
}

// weightedSSE is the objective: Wald-weighted squared error of the decay
// model against the empirical points. ε outside [0, ½) is repelled with a
// finite sloped penalty so the simplex walks back into the domain.
func weightedSSE(points []Point, eps, offset float64) float64 {
	if eps < 0 || eps >= 0.5 {
		return 1e12 * (1 + eps*eps)
	}

	sse := 0.0
	for _, pt := range points {
		diff := pt.Prob - LogicalErrorProb(float64(pt.Round), eps, offset)
		sse += diff * diff / waldVariance(pt.Prob, pt.Shots)
	}

	return sse
}

// waldVariance is the binomial variance p(1−p)/n of an empirical
// fraction. Fractions of exactly 0 or 1 take the continuity-corrected
// p̃ = (k+½)/(n+1) so the weight stays finite.
func waldVariance(p float64, n int) float64 {
	if p == 0 || p == 1 {
		k := p * float64(n)
		p = (k + 0.5) / (float64(n) + 1)
	}

	return p * (1 - p) / float64(n)
}

// residuals reports empirical − fitted per round count.
func residuals(points []Point, eps, offset float64) map[int]float64 {
	res := make(map[int]float64, len(points))
	for _, pt := range points {
		res[pt.Round] = pt.Prob - LogicalErrorProb(float64(pt.Round), eps, offset)
	}

	return res
}

// binMean averages a binary sequence via the stat package, keeping the
// aggregation consistent with the quantile computation downstream.
func binMean(seq []uint8) float64 {
	xs := make([]float64, len(seq))
	for i, v := range seq {
		xs[i] = float64(v)
	}

	return stat.Mean(xs, nil)
}
