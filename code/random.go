package code

import (
	"math/rand"

	"github.com/katalvlaran/tncodes/pauli"
)

// DefaultSeed seeds the fallback RNG used when callers pass nil,
// keeping runs reproducible by default.
const DefaultSeed = 1

// samplingAttempts bounds the rejection loop before ErrSampling.
const samplingAttempts = 1 << 20

// RandomStabilizerState samples an [[n,0]] code: n commuting,
// independent stabilizers with matching pure errors and no logicals.
//
// Candidates are drawn uniformly and kept when they commute with the
// set built so far and leave it independent. A nil rng falls back to a
// fresh source seeded with DefaultSeed.
//
// Returns ErrBadSize for n < 1 and ErrSampling when the rejection loop
// exhausts its attempt budget.
func RandomStabilizerState(rng *rand.Rand, n int) (Simple, error) {
	if n < 1 {
		return Simple{}, ErrBadSize
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}

	stabs := make([]pauli.Operator, 0, n)
	for attempts := 0; len(stabs) < n; attempts++ {
		if attempts >= samplingAttempts {
			return Simple{}, ErrSampling
		}
		cand := pauli.Random(rng, n)
		if cand.IsIdentity() {
			continue
		}
		commutes := true
		for _, s := range stabs {
			if com, _ := s.Commutation(cand); com != 0 {
				commutes = false
				break
			}
		}
		if !commutes {
			continue
		}
		if !pauli.AreIndependent(append(stabs, cand)) {
			continue
		}
		stabs = append(stabs, cand)
	}

	pure, err := FindPureErrors(stabs)
	if err != nil {
		return Simple{}, err
	}
	return NewFull(stabs, nil, pure)
}

// RandomCode samples an [[n,k]] code by dropping k stabilizers from a
// random stabilizer state.
//
// Description:
//
//	The first n-k stabilizers of the state survive together with their
//	pure errors. Each dropped stabilizer becomes the Z side of a logical
//	pair and its pure error the X side: the two anticommute with each
//	other and commute with every kept stabilizer. A final symplectic
//	sweep multiplies pair members together until operators of distinct
//	pairs commute.
//
// A nil rng falls back to a fresh source seeded with DefaultSeed.
// Returns ErrBadSize unless 0 <= k <= n with n >= 1, and propagates
// ErrSampling from the state sampler.
func RandomCode(rng *rand.Rand, n, k int) (Simple, error) {
	if n < 1 || k < 0 || k > n {
		return Simple{}, ErrBadSize
	}
	state, err := RandomStabilizerState(rng, n)
	if err != nil {
		return Simple{}, err
	}

	r := n - k
	xs := make([]pauli.Operator, k)
	zs := make([]pauli.Operator, k)
	for i := 0; i < k; i++ {
		xs[i] = state.pureErrors[r+i].Clone()
		zs[i] = state.stabilizers[r+i].Clone()
	}

	// Distinct pure errors may anticommute; fix pair j against every
	// earlier pair i without disturbing already-fixed relations.
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			for _, member := range [...]pauli.Operator{xs[j], zs[j]} {
				if com, _ := member.Commutation(xs[i]); com == 1 {
					mulAssign(member, zs[i])
				}
				if com, _ := member.Commutation(zs[i]); com == 1 {
					mulAssign(member, xs[i])
				}
			}
		}
	}

	logicals := make([]pauli.Operator, 0, 2*k)
	for i := 0; i < k; i++ {
		logicals = append(logicals, xs[i], zs[i])
	}
	return NewFull(state.stabilizers[:r], logicals, state.pureErrors[:r])
}
