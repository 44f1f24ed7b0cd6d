package layout_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qec-tools/qecutil/layout"
)

// TestSurfaceCode_BadDistance verifies even and non-positive distances
// are rejected.
func TestSurfaceCode_BadDistance(t *testing.T) {
	for _, d := range []int{-1, 0, 2, 4} {
		_, err := layout.SurfaceCode(d)
		assert.ErrorIs(t, err, layout.ErrBadDistance, "d=%d", d)
	}
}

// TestSurfaceCode_Counts verifies the d² data, d²−1 ancilla census for a
// range of distances, split evenly between stabilizer types.
func TestSurfaceCode_Counts(t *testing.T) {
	for _, d := range []int{3, 5, 7} {
		t.Run(fmt.Sprintf("d%d", d), func(t *testing.T) {
			lay, err := layout.SurfaceCode(d)
			require.NoError(t, err)

			assert.Equal(t, d, lay.Distance())
			assert.Len(t, lay.Qubits(layout.WithRole(layout.RoleData)), d*d)
			assert.Len(t, lay.Qubits(layout.WithRole(layout.RoleAnc)), d*d-1)
			assert.Len(t, lay.Qubits(layout.WithStabType(layout.StabX)), (d*d-1)/2)
			assert.Len(t, lay.Qubits(layout.WithStabType(layout.StabZ)), (d*d-1)/2)
		})
	}
}

// TestSurfaceCode_D3Wiring pins a few known d=3 links: X1 sits below the
// first data row and touches D1 and D2.
func TestSurfaceCode_D3Wiring(t *testing.T) {
	lay, err := layout.SurfaceCode(3)
	require.NoError(t, err)

	nbrs, err := lay.Neighbors("X1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"D1", "D2"}, nbrs, "boundary X check weighs two data qubits")

	nbrs, err = lay.Neighbors("X2")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"D2", "D3", "D5", "D6"}, nbrs, "bulk X check weighs four")

	// Reciprocity: every ancilla link appears from the data side too.
	for _, anc := range lay.Qubits(layout.WithRole(layout.RoleAnc)) {
		data, err := lay.Neighbors(anc)
		require.NoError(t, err)
		for _, d := range data {
			back, err := lay.Neighbors(d)
			require.NoError(t, err)
			assert.Contains(t, back, anc, "%s -> %s must be mutual", anc, d)
		}
	}
}

// TestSurfaceCode_FrequencyGroups verifies data rows alternate low/high
// and ancillas sit in mid.
func TestSurfaceCode_FrequencyGroups(t *testing.T) {
	lay, err := layout.SurfaceCode(3)
	require.NoError(t, err)

	assert.Equal(t, []string{"D1", "D2", "D3", "D7", "D8", "D9"},
		lay.Qubits(layout.WithFreqGroup("low")))
	assert.Equal(t, []string{"D4", "D5", "D6"},
		lay.Qubits(layout.WithFreqGroup("high")))
	assert.Len(t, lay.Qubits(layout.WithFreqGroup("mid")), 8)
}

// TestSyndromeSublattice_D3 verifies the X-type detector sublattice of
// the d=3 code forms the expected path X1-X2-X3-X4 through shared data
// qubits.
func TestSyndromeSublattice_D3(t *testing.T) {
	lay, err := layout.SurfaceCode(3)
	require.NoError(t, err)

	sub, err := lay.SyndromeSublattice(layout.StabX)
	require.NoError(t, err)

	assert.Equal(t, layout.StabX, sub.StabType())
	assert.Equal(t, []string{"X1", "X2", "X3", "X4"}, sub.Sites())
	assert.Equal(t, []string{"X2"}, sub.AdjacentSites("X1"), "X1 and X2 share D2")
	assert.ElementsMatch(t, []string{"X1", "X3"}, sub.AdjacentSites("X2"))
	assert.ElementsMatch(t, []string{"X2", "X4"}, sub.AdjacentSites("X3"))
	assert.Equal(t, []string{"X3"}, sub.AdjacentSites("X4"), "X3 and X4 share D8")
	assert.Empty(t, sub.AdjacentSites("Z1"), "foreign sites have no adjacency")
}

// TestSyndromeSublattice_BadType verifies the stabilizer-type guard.
func TestSyndromeSublattice_BadType(t *testing.T) {
	lay, err := layout.SurfaceCode(3)
	require.NoError(t, err)

	_, err = lay.SyndromeSublattice("y_type")
	assert.ErrorIs(t, err, layout.ErrBadStabType)
}
