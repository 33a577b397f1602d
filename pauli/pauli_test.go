package pauli_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tncodes/pauli"
)

// TestProduct_TruthTable verifies the full 4×4 phase-free product table.
func TestProduct_TruthTable(t *testing.T) {
	cases := []struct {
		a, b, want pauli.Pauli
	}{
		{pauli.I, pauli.I, pauli.I},
		{pauli.I, pauli.X, pauli.X},
		{pauli.Y, pauli.I, pauli.Y},
		{pauli.X, pauli.X, pauli.I},
		{pauli.Y, pauli.Y, pauli.I},
		{pauli.Z, pauli.Z, pauli.I},
		{pauli.X, pauli.Y, pauli.Z},
		{pauli.Y, pauli.X, pauli.Z},
		{pauli.X, pauli.Z, pauli.Y},
		{pauli.Z, pauli.X, pauli.Y},
		{pauli.Y, pauli.Z, pauli.X},
		{pauli.Z, pauli.Y, pauli.X},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pauli.Product(tc.a, tc.b),
			"%v * %v", tc.a, tc.b)
	}
}

// TestCommutation_Symbols verifies that symbols anticommute exactly when
// both are non-identity and distinct.
func TestCommutation_Symbols(t *testing.T) {
	all := []pauli.Pauli{pauli.I, pauli.X, pauli.Y, pauli.Z}
	for _, a := range all {
		for _, b := range all {
			want := 0
			if a != pauli.I && b != pauli.I && a != b {
				want = 1
			}
			assert.Equal(t, want, pauli.Commutation(a, b), "%v vs %v", a, b)
		}
	}
}

// TestPow_Parity checks symbol and operator powers for even, odd and
// negative exponents.
func TestPow_Parity(t *testing.T) {
	assert.Equal(t, pauli.I, pauli.Pow(pauli.X, 0))
	assert.Equal(t, pauli.X, pauli.Pow(pauli.X, 1))
	assert.Equal(t, pauli.I, pauli.Pow(pauli.Y, 2))
	assert.Equal(t, pauli.Z, pauli.Pow(pauli.Z, -3))

	op := pauli.MustParse("XYZ")
	assert.Equal(t, pauli.Identity(3), op.Pow(4))
	assert.Equal(t, op, op.Pow(7))
}

// TestOperator_MulCommutationWeight exercises the operator-level algebra
// on the five-qubit-code generators.
func TestOperator_MulCommutationWeight(t *testing.T) {
	a := pauli.MustParse("XZZXI")
	b := pauli.MustParse("IXZZX")

	prod, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, "XYIYX", prod.String())
	assert.Equal(t, 4, prod.Weight())

	c, err := a.Commutation(b)
	require.NoError(t, err)
	assert.Equal(t, 0, c, "stabilizer generators commute")

	errOp := pauli.MustParse("XIIII")
	c, err = errOp.Commutation(a)
	require.NoError(t, err)
	assert.Equal(t, 0, c)
	c, err = errOp.Commutation(pauli.MustParse("ZXIXZ"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

// TestOperator_LengthMismatch checks the sentinel on ragged operands.
func TestOperator_LengthMismatch(t *testing.T) {
	a := pauli.MustParse("XX")
	b := pauli.MustParse("XXX")

	_, err := a.Mul(b)
	assert.True(t, errors.Is(err, pauli.ErrLengthMismatch))

	_, err = a.Commutation(b)
	assert.True(t, errors.Is(err, pauli.ErrLengthMismatch))

	_, err = pauli.ProductPow([]pauli.Operator{a, b}, []int{1, 1})
	assert.True(t, errors.Is(err, pauli.ErrLengthMismatch))
}

// TestProductPow combines generators with binary powers; even powers drop out.
func TestProductPow(t *testing.T) {
	ops := []pauli.Operator{
		pauli.MustParse("XZZXI"),
		pauli.MustParse("IXZZX"),
		pauli.MustParse("XIXZZ"),
	}

	got, err := pauli.ProductPow(ops, []int{1, 0, 1})
	require.NoError(t, err)
	want, err := ops[0].Mul(ops[2])
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = pauli.ProductPow(ops, []int{2, 4, 6})
	require.NoError(t, err)
	assert.True(t, got.IsIdentity())

	_, err = pauli.ProductPow(ops, []int{1, 1})
	assert.True(t, errors.Is(err, pauli.ErrPowerCount))

	empty, err := pauli.ProductPow(nil, nil)
	require.NoError(t, err)
	assert.Len(t, empty, 0)
}

// TestParse_RoundTripAndErrors covers the compact string form.
func TestParse_RoundTripAndErrors(t *testing.T) {
	op, err := pauli.Parse("XIZZY")
	require.NoError(t, err)
	assert.Equal(t, "XIZZY", op.String())

	empty, err := pauli.Parse("")
	require.NoError(t, err)
	assert.Len(t, empty, 0)
	assert.Equal(t, "", empty.String())

	_, err = pauli.Parse("XIQ")
	assert.True(t, errors.Is(err, pauli.ErrBadSymbol))

	assert.Panics(t, func() { pauli.MustParse("B") })
}

// TestSymplectic maps symbols onto the (x|z) halves.
func TestSymplectic(t *testing.T) {
	op := pauli.MustParse("IXYZ")
	assert.Equal(t, []int{0, 1, 1, 0 /* x */, 0, 0, 1, 1 /* z */}, op.Symplectic())
}

// TestRandom_Deterministic pins the explicit-RNG policy: same seed, same draw.
func TestRandom_Deterministic(t *testing.T) {
	a := pauli.Random(rand.New(rand.NewSource(7)), 12)
	b := pauli.Random(rand.New(rand.NewSource(7)), 12)
	assert.Equal(t, a, b)
	assert.Len(t, a, 12)
}
