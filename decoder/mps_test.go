package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tncodes/decoder"
	"github.com/katalvlaran/tncodes/tncode"
)

// chainThree is the wire chain with a second wire hung off another
// five-qubit leg, giving three nodes to place on the plane.
func chainThree(t *testing.T) *tncode.Code {
	t.Helper()
	c1, err := tncode.Contract(fiveCode(t), bellCode(t), [][2]int{{0, 0}}, nil)
	require.NoError(t, err)
	c2, err := tncode.Contract(c1, bellCode(t), [][2]int{{1, 0}}, nil)
	require.NoError(t, err)
	return c2
}

func TestMPSContract_RaggedRows(t *testing.T) {
	c := chainThree(t)
	g := c.Graph()
	require.NoError(t, g.SetCoords(-1, [2]float64{0, 1}))
	require.NoError(t, g.SetCoords(-2, [2]float64{1, 1}))
	require.NoError(t, g.SetCoords(-3, [2]float64{0, 0}))

	_, _, err := decoder.Decode(c, []int{0, 0, 0, 0}, 0.1, decoder.MPSContract(8))
	assert.ErrorIs(t, err, decoder.ErrNotLattice)
}

func TestMPSContract_DiagonalBond(t *testing.T) {
	c := gridCode(t)
	g := c.Graph()
	// Swapping the bottom row scrambles two bonds onto diagonals.
	require.NoError(t, g.SetCoords(-3, [2]float64{1, 0}))
	require.NoError(t, g.SetCoords(-4, [2]float64{0, 0}))

	_, _, err := decoder.Decode(c, []int{0, 0}, 0.1, decoder.MPSContract(8))
	assert.ErrorIs(t, err, decoder.ErrNotLattice)
}

func TestMPSContract_SingleRow(t *testing.T) {
	// A 1xN lattice exercises only the final horizontal fold. Both
	// wires hang off the five-qubit node, so it takes the middle slot.
	c := chainThree(t)
	g := c.Graph()
	require.NoError(t, g.SetCoords(-2, [2]float64{0, 0}))
	require.NoError(t, g.SetCoords(-1, [2]float64{1, 0}))
	require.NoError(t, g.SetCoords(-3, [2]float64{2, 0}))

	for _, syn := range allSyndromes(4) {
		corrB, probB, err := decoder.Decode(c, syn, 0.2, decoder.BasicContract())
		require.NoError(t, err)
		corrM, probM, err := decoder.Decode(c, syn, 0.2, decoder.MPSContract(8))
		require.NoError(t, err)
		assert.Equal(t, corrB, corrM)
		assert.InDelta(t, probB, probM, 1e-9)
	}
}
