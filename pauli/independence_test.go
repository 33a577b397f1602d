package pauli_test

import (
	"testing"

	"github.com/katalvlaran/tncodes/pauli"
)

func ops(ss ...string) []pauli.Operator {
	out := make([]pauli.Operator, len(ss))
	for i, s := range ss {
		out[i] = pauli.MustParse(s)
	}
	return out
}

func TestAreIndependent(t *testing.T) {
	tests := []struct {
		name string
		in   []pauli.Operator
		want bool
	}{
		{"empty list", nil, true},
		{"single generator", ops("XZZXI"), true},
		{"five qubit generators", ops("XZZXI", "IXZZX", "XIXZZ", "ZXIXZ"), true},
		{"pair products", ops("XX", "XI", "IX"), false},
		{"duplicate", ops("XZ", "XZ"), false},
		{"identity alone", ops("II"), false},
		{"identity among generators", ops("XX", "II"), false},
		{"steane x and z sectors", ops(
			"IIIXXXX", "IXXIIXX", "XIXIXIX",
			"IIIZZZZ", "IZZIIZZ", "ZIZIZIZ",
		), true},
		{"hidden dependency", ops("XZZXI", "IXZZX", "XYIYX"), false},
		{"ragged lengths", ops("XX", "XXX"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pauli.AreIndependent(tc.in); got != tc.want {
				t.Fatalf("AreIndependent(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// TestAreIndependent_InputUntouched guards the pure-function contract:
// the sweep works on scratch copies.
func TestAreIndependent_InputUntouched(t *testing.T) {
	in := ops("XZZXI", "IXZZX", "XIXZZ")
	want := ops("XZZXI", "IXZZX", "XIXZZ")

	pauli.AreIndependent(in)

	for i := range in {
		if in[i].String() != want[i].String() {
			t.Fatalf("operator %d mutated: %s", i, in[i])
		}
	}
}
