// Package pauli defines the Pauli symbol type, sentinel errors and the
// single-symbol operations for github.com/katalvlaran/tncodes.
package pauli

import "errors"

// Sentinel errors for pauli operations.
var (
	// ErrLengthMismatch indicates two operators act on different qubit counts.
	ErrLengthMismatch = errors.New("pauli: operator length mismatch")
	// ErrPowerCount indicates ProductPow received fewer or more powers than operators.
	ErrPowerCount = errors.New("pauli: power count does not match operator count")
	// ErrBadSymbol indicates Parse met a rune outside "IXYZ".
	ErrBadSymbol = errors.New("pauli: invalid pauli symbol")
)

// Pauli is a single-qubit Pauli symbol. The zero value is the identity.
type Pauli uint8

const (
	// I is the identity symbol.
	I Pauli = iota
	// X is the bit-flip symbol.
	X
	// Y is the combined bit- and phase-flip symbol.
	Y
	// Z is the phase-flip symbol.
	Z
)

// NumSymbols is the size of the single-qubit symbol alphabet.
// Tensor legs in the decoder are indexed by this dimension.
const NumSymbols = 4

// symbolSum is X+Y+Z; the product of two distinct non-identity symbols
// is the remaining one, recovered by subtraction.
const symbolSum = uint8(X) + uint8(Y) + uint8(Z)

// Product returns the phase-free product of two symbols.
// Each symbol is self-inverse; two distinct non-identity symbols
// multiply to the third.
func Product(a, b Pauli) Pauli {
	switch {
	case a == b:
		return I
	case a == I:
		return b
	case b == I:
		return a
	default:
		return Pauli(symbolSum - uint8(a) - uint8(b))
	}
}

// Commutation returns 1 if the symbols anticommute and 0 if they commute.
// Symbols anticommute exactly when both are non-identity and distinct.
func Commutation(a, b Pauli) int {
	if a == I || b == I || a == b {
		return 0
	}
	return 1
}

// Pow returns a raised to the n-th power. Symbols are self-inverse, so
// only the parity of n matters; negative n is valid.
func Pow(a Pauli, n int) Pauli {
	if n&1 == 0 {
		return I
	}
	return a
}

// Valid reports whether p is one of I, X, Y, Z.
func (p Pauli) Valid() bool { return p <= Z }

// String returns "I", "X", "Y" or "Z", or "?" for out-of-range values.
func (p Pauli) String() string {
	if !p.Valid() {
		return "?"
	}
	return string(symbolRunes[p])
}

var symbolRunes = [NumSymbols]byte{'I', 'X', 'Y', 'Z'}
