package defect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qec-tools/qecutil/defect"
	"github.com/qec-tools/qecutil/trace"
)

// newTrace is a test helper wrapping trace.New with require.
func newTrace(t *testing.T, sites []string, outcomes [][][]uint8) *trace.Trace {
	t.Helper()
	tr, err := trace.New(sites, outcomes)
	require.NoError(t, err, "test trace must be well-formed")

	return tr
}

// TestExtract_NilTrace verifies both extractors reject a nil trace.
func TestExtract_NilTrace(t *testing.T) {
	_, err := defect.Extract(nil)
	assert.ErrorIs(t, err, defect.ErrNilTrace)

	_, err = defect.ExtractWithReference(nil, nil)
	assert.ErrorIs(t, err, defect.ErrNilTrace)
}

// TestExtract_ThreeRounds checks the reference scenario: site A outcomes
// [0,1,1] across three rounds produce defects [1,0].
func TestExtract_ThreeRounds(t *testing.T) {
	tr := newTrace(t, []string{"A"}, [][][]uint8{
		{{0}, {1}, {1}},
	})

	set, err := defect.Extract(tr)
	require.NoError(t, err)

	assert.Equal(t, 2, set.NumRounds(), "three rounds yield two defect rounds")
	d0, err := set.At(0, 0, 0)
	require.NoError(t, err)
	d1, err := set.At(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), d0, "flip between rounds 0 and 1")
	assert.Equal(t, uint8(0), d1, "no flip between rounds 1 and 2")
}

// TestExtract_RoundCountInvariant checks NumRounds == trace rounds − 1 for
// a spread of trace shapes.
func TestExtract_RoundCountInvariant(t *testing.T) {
	for rounds := 1; rounds <= 6; rounds++ {
		outcomes := make([][][]uint8, 2)
		for s := range outcomes {
			outcomes[s] = make([][]uint8, rounds)
			for r := range outcomes[s] {
				outcomes[s][r] = []uint8{uint8((s + r) % 2), 0}
			}
		}
		tr := newTrace(t, []string{"X1", "Z1"}, outcomes)

		set, err := defect.Extract(tr)
		require.NoError(t, err)
		assert.Equal(t, rounds-1, set.NumRounds(), "rounds=%d", rounds)
	}
}

// TestExtract_SingleRound verifies a single-round trace yields an empty
// set, not an error.
func TestExtract_SingleRound(t *testing.T) {
	tr := newTrace(t, []string{"A"}, [][][]uint8{{{1}}})

	set, err := defect.Extract(tr)
	require.NoError(t, err)
	assert.Equal(t, 0, set.NumRounds(), "single-round trace has no defects")
	assert.Equal(t, []int{0}, set.Counts())
}

// TestExtract_ConstantTrace verifies the double-negation sanity check: a
// constant trace produces an all-zero defect set.
func TestExtract_ConstantTrace(t *testing.T) {
	tr := newTrace(t, []string{"X1", "Z1"}, [][][]uint8{
		{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
		{{1, 0}, {1, 0}, {1, 0}, {1, 0}},
	})

	set, err := defect.Extract(tr)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, set.Counts(), "constant trace must not fire")
}

// TestExtractWithReference_Baseline verifies the round-0 row compares the
// first measurement against the supplied initial state.
func TestExtractWithReference_Baseline(t *testing.T) {
	tr := newTrace(t, []string{"X1", "Z1"}, [][][]uint8{
		{{0, 1}, {0, 1}},
	})

	// Initial state 1 at X1: round 0 outcome 0 is itself a defect.
	set, err := defect.ExtractWithReference(tr, []uint8{1, 1})
	require.NoError(t, err)
	require.Equal(t, 2, set.NumRounds(), "reference form keeps all rounds")

	d, err := set.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), d, "X1 flipped against the baseline")
	d, err = set.At(0, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), d, "Z1 matches the baseline")
	d, err = set.At(0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), d, "constant rounds do not fire")
}

// TestExtractWithReference_NilBaseline verifies a nil reference is the
// all-zero initial state.
func TestExtractWithReference_NilBaseline(t *testing.T) {
	tr := newTrace(t, []string{"A"}, [][][]uint8{{{1}, {1}}})

	set, err := defect.ExtractWithReference(tr, nil)
	require.NoError(t, err)
	d, err := set.At(0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), d, "outcome 1 against implicit zero baseline fires")
}

// TestExtractWithReference_BadReference verifies baseline validation.
func TestExtractWithReference_BadReference(t *testing.T) {
	tr := newTrace(t, []string{"A", "B"}, [][][]uint8{{{0, 0}}})

	_, err := defect.ExtractWithReference(tr, []uint8{0})
	assert.ErrorIs(t, err, defect.ErrReferenceLength, "short baseline must error")

	_, err = defect.ExtractWithReference(tr, []uint8{0, 2})
	assert.ErrorIs(t, err, defect.ErrNonBinaryReference, "non-binary baseline must error")
}

// TestSet_FractionAndCounts verifies aggregate statistics across shots.
func TestSet_FractionAndCounts(t *testing.T) {
	tr := newTrace(t, []string{"A"}, [][][]uint8{
		{{0}, {1}}, // fires
		{{0}, {0}}, // silent
		{{1}, {0}}, // fires
		{{1}, {1}}, // silent
	})

	set, err := defect.Extract(tr)
	require.NoError(t, err)

	assert.Equal(t, []int{2}, set.Counts())
	frac := set.Fraction()
	require.Len(t, frac, 1)
	assert.InDelta(t, 0.5, frac[0][0], 1e-12, "two of four shots fire")
}

// TestSet_OutOfRange verifies Set indexing errors mirror the trace store.
func TestSet_OutOfRange(t *testing.T) {
	tr := newTrace(t, []string{"A"}, [][][]uint8{{{0}, {1}}})
	set, err := defect.Extract(tr)
	require.NoError(t, err)

	_, err = set.At(0, 1, 0)
	assert.ErrorIs(t, err, defect.ErrOutOfRange)
	_, err = set.At(1, 0, 0)
	assert.ErrorIs(t, err, defect.ErrOutOfRange)
}
