package decoder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/decoder"
	"github.com/katalvlaran/tncodes/tncode"
)

func TestOperatorWeights_FiveQubit(t *testing.T) {
	stab, all, err := decoder.OperatorWeights(fiveCode(t))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 0, 0, 15, 0}, stab)
	assert.Equal(t, []int64{1, 0, 0, 30, 15, 18}, all)
}

func TestOperatorWeights_WireChainMatchesFiveQubit(t *testing.T) {
	// Teleporting a leg through a wire relabels qubits but keeps every
	// operator weight, so both histograms carry over unchanged.
	stab, all, err := decoder.OperatorWeights(wireChain(t))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 0, 0, 15, 0}, stab)
	assert.Equal(t, []int64{1, 0, 0, 30, 15, 18}, all)
}

func TestOperatorWeights_TwoFoldSelfContraction(t *testing.T) {
	c, err := tncode.Contract(fiveCode(t), fiveCode(t), [][2]int{{0, 0}, {1, 1}}, nil)
	require.NoError(t, err)

	stab, all, err := decoder.OperatorWeights(c)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 0, 0, 0, 9, 0, 6}, stab)
	assert.Equal(t, []int64{1, 0, 9, 24, 99, 72, 51}, all)

	d, err := decoder.Distance(c)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestOperatorWeights_Bell(t *testing.T) {
	stab, all, err := decoder.OperatorWeights(bellCode(t))
	require.NoError(t, err)
	// With no logical qubits the normalizer is the stabilizer group.
	assert.Equal(t, []int64{1, 0, 3}, stab)
	assert.Equal(t, stab, all)

	_, err = decoder.Distance(bellCode(t))
	assert.ErrorIs(t, err, code.ErrNoLogicals)
}

func TestOperatorWeights_GridSums(t *testing.T) {
	c := gridCode(t)
	simple := c.Simple()
	stab, all, err := decoder.OperatorWeights(c)
	require.NoError(t, err)

	require.Len(t, stab, simple.NumQubits()+1)
	require.Len(t, all, simple.NumQubits()+1)
	assert.EqualValues(t, 1, stab[0])
	assert.EqualValues(t, 1, all[0])

	var stabSum, allSum int64
	for i := range stab {
		stabSum += stab[i]
		allSum += all[i]
	}
	assert.EqualValues(t, 1<<uint(simple.NumStabilizers()), stabSum)
	// Zero-syndrome operators: 4^n / 2^r.
	assert.EqualValues(t, 16, allSum)
}

func TestOperatorWeights_Degenerate(t *testing.T) {
	collapsed, err := tncode.Fusion(fiveCode(t), [][2]int{{0, 1}}, nil)
	require.NoError(t, err)

	_, _, err = decoder.OperatorWeights(collapsed)
	assert.ErrorIs(t, err, tncode.ErrDegenerateGraph)
	_, err = decoder.Distance(collapsed)
	assert.ErrorIs(t, err, tncode.ErrDegenerateGraph)
}

func TestDistance_FiveQubit(t *testing.T) {
	d, err := decoder.Distance(fiveCode(t))
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}
