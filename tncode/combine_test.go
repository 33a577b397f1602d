package tncode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tncodes/pauli"
	"github.com/katalvlaran/tncodes/tncode"
)

func TestCombine(t *testing.T) {
	five, err := tncode.FromSimple(fiveQubitSimple(t))
	require.NoError(t, err)
	bell, err := tncode.FromSimple(bellSimple(t), tncode.WithName("wire"))
	require.NoError(t, err)

	c, err := tncode.Combine(five, bell)
	require.NoError(t, err)
	require.NoError(t, c.Verify())

	s := c.Simple()
	assert.Equal(t, 7, s.NumQubits())
	assert.Equal(t, 6, s.NumStabilizers())
	assert.Equal(t, 1, s.NumLogicalQubits())

	stabs := s.Stabilizers()
	assert.Equal(t, pauli.MustParse("XZZXIII"), stabs[0], "first code keeps its qubits")
	assert.Equal(t, pauli.MustParse("IIIIIXX"), stabs[4], "second code lands at the offset")
	assert.Equal(t, pauli.MustParse("XXXXXII"), s.Logicals()[0])

	g := c.Graph()
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, g.PhysicalNodes())
	assert.Equal(t, []int{-1, -2}, g.VirtualNodes())
	assert.Equal(t, 7, g.NumEdges())

	// The wire's virtual node sits at -2 with its two slots.
	typ, err := g.NodeType(-2)
	require.NoError(t, err)
	assert.Equal(t, "wire", typ)
	indices, err := g.NodeIndices(-2)
	require.NoError(t, err)
	assert.Len(t, indices, 2)

	assert.Len(t, c.SeedNames(), 2)
}

func TestCombine_Self(t *testing.T) {
	five, err := tncode.FromSimple(fiveQubitSimple(t))
	require.NoError(t, err)

	c, err := tncode.Combine(five, five)
	require.NoError(t, err)
	require.NoError(t, c.Verify())

	s := c.Simple()
	assert.Equal(t, 10, s.NumQubits())
	assert.Equal(t, 8, s.NumStabilizers())
	assert.Equal(t, 2, s.NumLogicalQubits())
	assert.Equal(t, pauli.MustParse("IIIIIXZZXI"), s.Stabilizers()[4])

	// Identical content hashes to one registry entry.
	assert.Len(t, c.SeedNames(), 1)
	assert.Equal(t, []int{-1, -2}, c.Graph().VirtualNodes())

	// Mutating the combined graph must not leak back.
	require.NoError(t, c.Graph().SetCoords(0, [2]float64{9, 9}))
	coords, err := five.Graph().NodeCoords(0)
	require.NoError(t, err)
	assert.NotEqual(t, [2]float64{9, 9}, coords)
}
