package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qec-tools/qecutil/trace"
)

// TestNew_EmptySites verifies that a trace cannot be built without sites.
func TestNew_EmptySites(t *testing.T) {
	_, err := trace.New(nil, [][][]uint8{{{0}}})
	assert.ErrorIs(t, err, trace.ErrNoSites, "nil site list must error")
}

// TestNew_BadSiteLabels verifies empty and duplicate labels are rejected.
func TestNew_BadSiteLabels(t *testing.T) {
	_, err := trace.New([]string{"X1", ""}, [][][]uint8{{{0, 0}}})
	assert.ErrorIs(t, err, trace.ErrEmptySiteLabel, "empty label must error")

	_, err = trace.New([]string{"X1", "X1"}, [][][]uint8{{{0, 0}}})
	assert.ErrorIs(t, err, trace.ErrDuplicateSite, "duplicate label must error")
}

// TestNew_NoShots verifies that an empty outcome array is rejected.
func TestNew_NoShots(t *testing.T) {
	_, err := trace.New([]string{"X1"}, nil)
	assert.ErrorIs(t, err, trace.ErrNoShots, "zero shots must error")
}

// TestNew_RaggedRounds verifies that a shot with a missing round is
// reported as ErrMalformedTrace with the shot coordinate, not padded.
func TestNew_RaggedRounds(t *testing.T) {
	outcomes := [][][]uint8{
		{{0}, {1}},
		{{0}}, // shot 1 is missing a round
	}
	_, err := trace.New([]string{"X1"}, outcomes)
	require.ErrorIs(t, err, trace.ErrMalformedTrace, "missing round must be malformed")

	var ce *trace.CoordError
	require.ErrorAs(t, err, &ce, "error must carry the coordinate")
	assert.Equal(t, 1, ce.Shot, "offending shot")
}

// TestNew_MissingSiteOutcome verifies a short round identifies the first
// missing site.
func TestNew_MissingSiteOutcome(t *testing.T) {
	outcomes := [][][]uint8{
		{{0, 1}, {1}}, // shot 0, round 1 is missing site X2
	}
	_, err := trace.New([]string{"X1", "X2"}, outcomes)
	require.ErrorIs(t, err, trace.ErrMalformedTrace)

	var ce *trace.CoordError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, ce.Shot)
	assert.Equal(t, 1, ce.Round)
	assert.Equal(t, "X2", ce.Site, "first missing site must be named")
}

// TestNew_NonBinaryOutcome verifies values outside {0,1} are rejected with
// their full coordinate.
func TestNew_NonBinaryOutcome(t *testing.T) {
	outcomes := [][][]uint8{
		{{0, 2}},
	}
	_, err := trace.New([]string{"X1", "X2"}, outcomes)
	require.ErrorIs(t, err, trace.ErrMalformedTrace)

	var ce *trace.CoordError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "X2", ce.Site, "offending site")
}

// TestTrace_Accessors verifies dimensions, lookups, and site indexing on a
// well-formed two-shot trace.
func TestTrace_Accessors(t *testing.T) {
	outcomes := [][][]uint8{
		{{0, 1}, {1, 1}, {1, 0}},
		{{1, 0}, {0, 0}, {0, 1}},
	}
	tr, err := trace.New([]string{"X1", "Z1"}, outcomes)
	require.NoError(t, err)

	assert.Equal(t, 2, tr.NumShots())
	assert.Equal(t, 3, tr.NumRounds())
	assert.Equal(t, 2, tr.NumSites())
	assert.Equal(t, []string{"X1", "Z1"}, tr.Sites())

	i, ok := tr.SiteIndex("Z1")
	require.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = tr.SiteIndex("Q9")
	assert.False(t, ok, "unknown label must not resolve")

	v, err := tr.At(1, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, uint8(1), v)

	row, err := tr.Row(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 1}, row)
}

// TestTrace_OutOfRange verifies indexers return ErrOutOfRange, never panic.
func TestTrace_OutOfRange(t *testing.T) {
	tr, err := trace.New([]string{"X1"}, [][][]uint8{{{0}}})
	require.NoError(t, err)

	_, err = tr.At(0, 1, 0)
	assert.ErrorIs(t, err, trace.ErrOutOfRange)
	_, err = tr.At(-1, 0, 0)
	assert.ErrorIs(t, err, trace.ErrOutOfRange)
	_, err = tr.Row(1, 0)
	assert.ErrorIs(t, err, trace.ErrOutOfRange)
}

// TestTrace_Immutable verifies that mutating accessor results does not leak
// into the stored trace.
func TestTrace_Immutable(t *testing.T) {
	sites := []string{"X1", "Z1"}
	tr, err := trace.New(sites, [][][]uint8{{{0, 1}}})
	require.NoError(t, err)

	row, err := tr.Row(0, 0)
	require.NoError(t, err)
	row[0] = 1

	again, err := tr.Row(0, 0)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1}, again, "stored outcomes must be unchanged")

	got := tr.Sites()
	got[0] = "hacked"
	assert.Equal(t, []string{"X1", "Z1"}, tr.Sites(), "site order must be unchanged")
}
