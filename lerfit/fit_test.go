package lerfit_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qec-tools/qecutil/lerfit"
)

// synthOutcomes draws binary logical outcomes from the decay model at the
// given round counts, deterministically from seed.
func synthOutcomes(rounds []int, eps float64, shots int, seed uint64) map[int][]uint8 {
	rng := rand.New(rand.NewPCG(seed, 0))
	out := make(map[int][]uint8, len(rounds))
	for _, r := range rounds {
		p := lerfit.LogicalErrorProb(float64(r), eps, 0)
		seq := make([]uint8, shots)
		for i := range seq {
			if rng.Float64() < p {
				seq[i] = 1
			}
		}
		out[r] = seq
	}

	return out
}

// TestFit_InsufficientData verifies the unidentifiable-model guards.
func TestFit_InsufficientData(t *testing.T) {
	_, err := lerfit.Fit(map[int][]uint8{1: {0, 1}})
	assert.ErrorIs(t, err, lerfit.ErrInsufficientData, "one round count must error")

	_, err = lerfit.Fit(map[int][]uint8{1: {0, 1}, 5: {}})
	assert.ErrorIs(t, err, lerfit.ErrInsufficientData, "empty sequence must error")
}

// TestFit_NonBinaryOutcome verifies observation validation.
func TestFit_NonBinaryOutcome(t *testing.T) {
	_, err := lerfit.Fit(map[int][]uint8{1: {0, 1}, 5: {0, 2}})
	assert.ErrorIs(t, err, lerfit.ErrNonBinaryOutcome)
}

// TestFit_BadOptions verifies eager option validation.
func TestFit_BadOptions(t *testing.T) {
	data := map[int][]uint8{1: {0, 1}, 5: {0, 1}}
	for _, opt := range []lerfit.Option{
		lerfit.WithBootstrap(0),
		lerfit.WithConfidence(0),
		lerfit.WithConfidence(1),
		lerfit.WithTolerance(0),
		lerfit.WithMaxIterations(0),
		lerfit.WithParallelism(-1),
	} {
		_, err := lerfit.Fit(data, opt)
		assert.ErrorIs(t, err, lerfit.ErrBadOption)
	}
}

// TestFitPoints_NoiselessRecovery verifies that fitting probabilities
// generated exactly from the model recovers ε to solver tolerance.
func TestFitPoints_NoiselessRecovery(t *testing.T) {
	const eps = 0.013
	points := make([]lerfit.Point, 0, 8)
	for _, r := range []int{1, 2, 4, 6, 8, 12, 16, 24} {
		points = append(points, lerfit.Point{
			Round: r,
			Prob:  lerfit.LogicalErrorProb(float64(r), eps, 0),
			Shots: 10000,
		})
	}

	res, err := lerfit.FitPoints(points)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, eps, res.EpsHat, 1e-6, "noiseless data must recover ε exactly")
	assert.InDelta(t, 0, res.OffsetHat, 1e-3)
	for r, resid := range res.Residuals {
		assert.InDelta(t, 0, resid, 1e-8, "round %d residual", r)
	}
}

// TestFitPoints_Validation verifies the pre-aggregated input guards.
func TestFitPoints_Validation(t *testing.T) {
	_, err := lerfit.FitPoints([]lerfit.Point{{Round: 1, Prob: 0.1, Shots: 10}})
	assert.ErrorIs(t, err, lerfit.ErrInsufficientData, "one point must error")

	_, err = lerfit.FitPoints([]lerfit.Point{
		{Round: 1, Prob: 0.1, Shots: 10},
		{Round: 1, Prob: 0.2, Shots: 10},
	})
	assert.ErrorIs(t, err, lerfit.ErrInsufficientData, "duplicate round count must error")

	_, err = lerfit.FitPoints([]lerfit.Point{
		{Round: 1, Prob: 0.1, Shots: 10},
		{Round: 5, Prob: 1.5, Shots: 10},
	})
	assert.ErrorIs(t, err, lerfit.ErrInsufficientData, "probability outside [0,1] must error")
}

// TestFit_SyntheticEstimate verifies the full pipeline on noisy synthetic
// data: the estimate lands near the truth and inside its own interval.
func TestFit_SyntheticEstimate(t *testing.T) {
	const eps = 0.05
	data := synthOutcomes([]int{1, 2, 4, 8, 12, 16}, eps, 2000, 42)

	res, err := lerfit.Fit(data, lerfit.WithSeed(7), lerfit.WithBootstrap(200))
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDelta(t, eps, res.EpsHat, 0.01, "estimate near truth")
	assert.LessOrEqual(t, res.CI[0], res.EpsHat, "interval brackets the estimate")
	assert.GreaterOrEqual(t, res.CI[1], res.EpsHat)
	assert.Greater(t, res.CI[1], res.CI[0], "interval has positive width")
	assert.Equal(t, 0.95, res.Confidence)
}

// TestFit_ExtremeFractionsUseCorrectedVariance verifies a round count with
// an all-zero sequence (empirical p̂ = 0) fits without dividing by zero.
func TestFit_ExtremeFractionsUseCorrectedVariance(t *testing.T) {
	data := map[int][]uint8{
		1: make([]uint8, 200), // all zeros: p̂ = 0
		8: {0, 1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0},
		16: {1, 0, 1, 1, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 1, 0},
	}

	res, err := lerfit.Fit(data, lerfit.WithSeed(3), lerfit.WithBootstrap(50))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(res.EpsHat), "corrected Wald weight must stay finite")
}

// TestFit_ConvergenceFailure verifies an exhausted iteration budget (after
// the single fallback retry) surfaces ErrFitConvergence.
func TestFit_ConvergenceFailure(t *testing.T) {
	data := synthOutcomes([]int{1, 4, 8}, 0.05, 200, 1)

	_, err := lerfit.Fit(data, lerfit.WithMaxIterations(1))
	assert.ErrorIs(t, err, lerfit.ErrFitConvergence)
}

// TestAccuracy verifies the disagreement fraction and its guards.
func TestAccuracy(t *testing.T) {
	got, err := lerfit.Accuracy([]uint8{0, 1, 1}, []uint8{0, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, got, 1e-12)

	_, err = lerfit.Accuracy([]uint8{0, 1}, []uint8{0})
	assert.ErrorIs(t, err, lerfit.ErrLengthMismatch)

	_, err = lerfit.Accuracy(nil, nil)
	assert.ErrorIs(t, err, lerfit.ErrLengthMismatch, "empty input must error")
}

// TestLogicalFidelity_Anchors pins the model at its analytic anchors.
func TestLogicalFidelity_Anchors(t *testing.T) {
	assert.InDelta(t, 1.0, lerfit.LogicalFidelity(5, 0, 0), 1e-15, "ε=0 never decays")
	assert.InDelta(t, 0.5, lerfit.LogicalFidelity(5, 0.5, 0), 1e-15, "ε=½ collapses immediately")
	assert.InDelta(t, 0.5*(1+math.Pow(0.9, 3)), lerfit.LogicalFidelity(3, 0.05, 0), 1e-15)
	assert.InDelta(t,
		lerfit.LogicalErrorProb(3, 0.05, 0),
		1-lerfit.LogicalFidelity(3, 0.05, 0), 1e-15,
		"probability complements fidelity")
}
