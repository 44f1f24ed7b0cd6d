package lerfit

import (
	"fmt"
	"math"
)

// LogicalFidelity evaluates the decay model F(r) = ½·(1 + (1−2ε)^(r−r0)).
// At ε = 0 the fidelity stays 1; at ε → ½ it collapses to ½ immediately.
func LogicalFidelity(round, eps, offset float64) float64 {
	return 0.5 * (1 + math.Pow(1-2*eps, round-offset))
}

// LogicalErrorProb is the complementary error probability
// p(r) = ½ − ½·(1−2ε)^(r−r0), the quantity Fit matches against empirical
// per-round error fractions.
func LogicalErrorProb(round, eps, offset float64) float64 {
	return 1 - LogicalFidelity(round, eps, offset)
}

// Accuracy returns the fraction of positions where predictions and values
// disagree (the mean of their XOR) — the raw decoder-failure fraction fed
// into the per-round sequences.
func Accuracy(predictions, values []uint8) (float64, error) {
	if len(predictions) != len(values) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(predictions), len(values))
	}
	if len(predictions) == 0 {
		return 0, fmt.Errorf("%w: empty sequences", ErrLengthMismatch)
	}

	sum := 0
	for i := range predictions {
		if predictions[i]^values[i] != 0 {
			sum++
		}
	}

	return float64(sum) / float64(len(predictions)), nil
}
