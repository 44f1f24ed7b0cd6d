package lerfit

import "errors"

var (
	// ErrInsufficientData indicates fewer than two distinct round counts,
	// or an empty observation sequence: the two-parameter decay model is
	// unidentifiable.
	ErrInsufficientData = errors.New("lerfit: insufficient data for fit")

	// ErrNonBinaryOutcome indicates an observation outside {0,1}.
	ErrNonBinaryOutcome = errors.New("lerfit: logical outcome is not binary")

	// ErrFitConvergence indicates the nonlinear solver exhausted its
	// iteration budget from both the primary and the single fixed fallback
	// initial guess.
	ErrFitConvergence = errors.New("lerfit: fit did not converge")

	// ErrLengthMismatch indicates Accuracy received slices of unequal length.
	ErrLengthMismatch = errors.New("lerfit: prediction and value lengths differ")

	// ErrBadOption indicates a nonsensical configuration value.
	ErrBadOption = errors.New("lerfit: invalid option value")
)
