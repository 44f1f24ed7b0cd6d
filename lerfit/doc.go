// Package lerfit estimates the per-round logical error rate ε of a QEC
// experiment from repeated logical-outcome observations, with bootstrap
// confidence intervals.
//
// 🚀 The model
//
//	Accumulated physical errors randomize the logical state: the logical
//	fidelity decays as
//	  F(r) = ½·(1 + (1−2ε)^(r−r0))
//	so the logical error probability is
//	  p(r) = ½ − ½·(1−2ε)^(r−r0)
//	with ε the per-round error rate and r0 a round offset absorbing state
//	preparation and readout.
//
// ✨ The procedure
//  1. Empirical p̂(r) per round count = mean of its observation sequence.
//  2. Nonlinear least squares (Nelder–Mead) over (ε, r0), each residual
//     weighted by the inverse binomial (Wald) variance p̂(1−p̂)/n; a p̂ of
//     exactly 0 or 1 uses the continuity-corrected (k+½)/(n+1) variance.
//  3. Bootstrap: every observation sequence is resampled with replacement
//     B times, each resample refit, and the confidence interval read off
//     the empirical percentiles of the resampled ε estimates.
//
// Randomness is explicit: the PCG stream is derived from WithSeed and the
// resample index, so results are bit-reproducible regardless of the
// worker count. Resamples fan out over an errgroup-bounded pool.
//
// The solver is retried once from a fixed fallback initial guess; a
// second non-convergence surfaces ErrFitConvergence, never a silent
// guess hunt.
//
// ⚙️ Usage:
//
//	res, err := lerfit.Fit(outcomes,
//	  lerfit.WithSeed(7),
//	  lerfit.WithBootstrap(1000),
//	)
//	// res.EpsHat, res.CI, res.Residuals
package lerfit
