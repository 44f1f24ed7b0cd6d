package lerfit

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
)

// bootstrapEps resamples every round count's observation sequence with
// replacement B times, refits each resample, and reads the confidence
// interval off the empirical percentiles of the converged ε estimates.
//
// Each resample derives its own PCG stream from (seed, resample index),
// so the result is identical for any worker-pool size. Resamples whose
// refit does not converge are discarded; if none converge the fit as a
// whole is reported as non-convergent.
func bootstrapEps(outcomes map[int][]uint8, rounds []int, o options) ([]float64, [2]float64, error) {
	estimates := make([]float64, o.bootstrap)
	for i := range estimates {
		estimates[i] = -1 // marker: not converged
	}

	var g errgroup.Group
	g.SetLimit(o.parallelism)
	for i := 0; i < o.bootstrap; i++ {
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(o.seed, uint64(i)))

			points := make([]Point, len(rounds))
			for j, r := range rounds {
				points[j] = Point{Round: r, Prob: resampleMean(outcomes[r], rng), Shots: len(outcomes[r])}
			}
			if eps, _, ok := minimizeResample(points, o); ok {
				estimates[i] = eps
			}

			return nil
		})
	}
	_ = g.Wait() // workers never error; failures are the -1 markers

	kept := make([]float64, 0, len(estimates))
	for _, e := range estimates {
		if e >= 0 {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return nil, [2]float64{}, fmt.Errorf("%w: no bootstrap resample converged", ErrFitConvergence)
	}
	sort.Float64s(kept)

	alpha := (1 - o.confidence) / 2
	ci := [2]float64{
		stat.Quantile(alpha, stat.Empirical, kept, nil),
		stat.Quantile(1-alpha, stat.Empirical, kept, nil),
	}

	return kept, ci, nil
}

// minimizeResample mirrors solve for one resample: primary guess, then
// the single fixed fallback.
func minimizeResample(points []Point, o options) (eps, offset float64, ok bool) {
	if eps, offset, ok = minimize(points, primaryGuess, o); ok {
		return eps, offset, true
	}

	return minimize(points, fallbackGuess, o)
}

// resampleMean draws len(seq) observations from seq with replacement and
// returns their mean.
func resampleMean(seq []uint8, rng *rand.Rand) float64 {
	sum := 0
	for range seq {
		if seq[rng.IntN(len(seq))] == 1 {
			sum++
		}
	}

	return float64(sum) / float64(len(seq))
}
