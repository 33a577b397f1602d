package code_test

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
)

func testRandomCodeValid(t *rapid.T) {
	n := rapid.IntRange(1, 5).Draw(t, "n")
	k := rapid.IntRange(0, n).Draw(t, "k")
	seed := rapid.Int64().Draw(t, "seed")

	c, err := code.RandomCode(rand.New(rand.NewSource(seed)), n, k)
	if err != nil {
		t.Fatalf("RandomCode(%d, %d): %v", n, k, err)
	}
	if c.NumQubits() != n || c.NumStabilizers() != n-k || c.NumLogicalQubits() != k {
		t.Fatalf("got %d qubits, %d stabilizers, %d logical qubits",
			c.NumQubits(), c.NumStabilizers(), c.NumLogicalQubits())
	}
	if err := c.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func testPermutePreservesSyndromes(t *rapid.T) {
	seed := rapid.Int64().Draw(t, "seed")
	rng := rand.New(rand.NewSource(seed))

	const n = 4
	c, err := code.RandomCode(rng, n, 1)
	if err != nil {
		t.Fatalf("RandomCode: %v", err)
	}
	perm := rng.Perm(n)
	moved, err := c.Permute(perm)
	if err != nil {
		t.Fatalf("Permute(%v): %v", perm, err)
	}

	errOp := pauli.Random(rng, n)
	movedErr := pauli.Identity(n)
	for q, s := range errOp {
		movedErr[perm[q]] = s
	}

	want, err := c.Syndrome(errOp)
	if err != nil {
		t.Fatalf("Syndrome: %v", err)
	}
	got, err := moved.Syndrome(movedErr)
	if err != nil {
		t.Fatalf("Syndrome after permute: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("syndrome changed under relabeling: got %v, want %v", got, want)
		}
	}
}

func testGaugeShrinks(t *rapid.T) {
	seed := rapid.Int64().Draw(t, "seed")
	n := rapid.IntRange(2, 5).Draw(t, "n")
	k := rapid.IntRange(1, n).Draw(t, "k")

	c, err := code.RandomCode(rand.New(rand.NewSource(seed)), n, k)
	if err != nil {
		t.Fatalf("RandomCode: %v", err)
	}

	j := rapid.IntRange(0, k-1).Draw(t, "logicalQubit")
	p := rapid.SampledFrom([]pauli.Pauli{pauli.X, pauli.Y, pauli.Z}).Draw(t, "pauli")

	g, err := c.Gauge(j, p)
	if err != nil {
		t.Fatalf("Gauge(%d, %v): %v", j, p, err)
	}
	if g.NumLogicalQubits() != k-1 || g.NumStabilizers() != n-k+1 {
		t.Fatalf("gauge left %d logical qubits, %d stabilizers",
			g.NumLogicalQubits(), g.NumStabilizers())
	}
	if err := g.Verify(); err != nil {
		t.Fatalf("Verify after gauge: %v", err)
	}
}

func testPurifyState(t *rapid.T) {
	seed := rapid.Int64().Draw(t, "seed")
	n := rapid.IntRange(1, 4).Draw(t, "n")
	k := rapid.IntRange(0, n).Draw(t, "k")

	c, err := code.RandomCode(rand.New(rand.NewSource(seed)), n, k)
	if err != nil {
		t.Fatalf("RandomCode: %v", err)
	}
	p, err := c.Purify()
	if err != nil {
		t.Fatalf("Purify: %v", err)
	}
	if p.NumQubits() != n+k || p.NumLogicalQubits() != 0 {
		t.Fatalf("purified to %d qubits, %d logical qubits", p.NumQubits(), p.NumLogicalQubits())
	}
	if err := p.Verify(); err != nil {
		t.Fatalf("Verify after purify: %v", err)
	}
}

func TestRandomCode_Properties(t *testing.T) { rapid.Check(t, testRandomCodeValid) }

func TestPermute_Properties(t *testing.T) { rapid.Check(t, testPermutePreservesSyndromes) }

func TestGauge_Properties(t *testing.T) { rapid.Check(t, testGaugeShrinks) }

func TestPurify_Properties(t *testing.T) { rapid.Check(t, testPurifyState) }
