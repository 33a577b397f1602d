package pauli

import (
	"math/rand"
	"strings"
)

// Operator is an n-qubit Pauli operator, one symbol per qubit.
type Operator []Pauli

// Identity returns the n-qubit identity operator.
func Identity(n int) Operator {
	return make(Operator, n)
}

// Clone returns an independent copy of p.
func (p Operator) Clone() Operator {
	out := make(Operator, len(p))
	copy(out, p)
	return out
}

// IsIdentity reports whether every symbol of p is I.
func (p Operator) IsIdentity() bool {
	for _, s := range p {
		if s != I {
			return false
		}
	}
	return true
}

// Weight returns the number of non-identity symbols of p.
func (p Operator) Weight() int {
	w := 0
	for _, s := range p {
		if s != I {
			w++
		}
	}
	return w
}

// Mul returns the elementwise product p∘q.
// Returns ErrLengthMismatch if the operators differ in length.
func (p Operator) Mul(q Operator) (Operator, error) {
	if len(p) != len(q) {
		return nil, ErrLengthMismatch
	}
	out := make(Operator, len(p))
	for i := range p {
		out[i] = Product(p[i], q[i])
	}
	return out, nil
}

// mulInto multiplies q into p in place. Callers guarantee equal lengths.
func mulInto(p, q Operator) {
	for i := range p {
		p[i] = Product(p[i], q[i])
	}
}

// Commutation returns 0 if p and q commute and 1 if they anticommute:
// the parity of the number of positions whose symbols anticommute.
// Returns ErrLengthMismatch if the operators differ in length.
func (p Operator) Commutation(q Operator) (int, error) {
	if len(p) != len(q) {
		return 0, ErrLengthMismatch
	}
	total := 0
	for i := range p {
		total += Commutation(p[i], q[i])
	}
	return total & 1, nil
}

// Pow returns p raised to the n-th power: p itself for odd n, the
// identity for even n.
func (p Operator) Pow(n int) Operator {
	if n&1 == 0 {
		return Identity(len(p))
	}
	return p.Clone()
}

// ProductPow returns the product ops[0]^powers[0] ∘ ... ∘ ops[k-1]^powers[k-1].
//
// Returns ErrPowerCount if the list lengths differ and ErrLengthMismatch
// if the operators act on different qubit counts. An empty list yields a
// zero-length identity.
func ProductPow(ops []Operator, powers []int) (Operator, error) {
	if len(ops) != len(powers) {
		return nil, ErrPowerCount
	}
	if len(ops) == 0 {
		return Operator{}, nil
	}
	out := Identity(len(ops[0]))
	for i, op := range ops {
		if len(op) != len(out) {
			return nil, ErrLengthMismatch
		}
		if powers[i]&1 == 1 {
			mulInto(out, op)
		}
	}
	return out, nil
}

// Random returns a uniformly random n-qubit operator drawn from rng.
// The generator must be non-nil; randomness is always threaded
// explicitly through the caller.
func Random(rng *rand.Rand, n int) Operator {
	out := make(Operator, n)
	for i := range out {
		out[i] = Pauli(rng.Intn(NumSymbols))
	}
	return out
}

// String renders p in the compact "XIZZY" form.
func (p Operator) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, s := range p {
		if !s.Valid() {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(symbolRunes[s])
	}
	return b.String()
}

// Parse converts a compact "XIZZY" string into an Operator.
// Returns ErrBadSymbol on any rune outside "IXYZ".
func Parse(s string) (Operator, error) {
	out := make(Operator, 0, len(s))
	for _, r := range s {
		switch r {
		case 'I':
			out = append(out, I)
		case 'X':
			out = append(out, X)
		case 'Y':
			out = append(out, Y)
		case 'Z':
			out = append(out, Z)
		default:
			return nil, ErrBadSymbol
		}
	}
	return out, nil
}

// MustParse is Parse for known-good literals; it panics on bad input.
// Intended for fixed code tables, not for user data.
func MustParse(s string) Operator {
	op, err := Parse(s)
	if err != nil {
		panic("pauli: MustParse: " + s)
	}
	return op
}

// Symplectic returns the binary symplectic form of p as a 2n-bit vector
// (x₁..xₙ | z₁..zₙ): X contributes to the x half, Z to the z half and Y
// to both. External stabilizer toolchains consume this form directly.
func (p Operator) Symplectic() []int {
	n := len(p)
	out := make([]int, 2*n)
	for i, s := range p {
		if s == X || s == Y {
			out[i] = 1
		}
		if s == Z || s == Y {
			out[n+i] = 1
		}
	}
	return out
}
