package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
	"github.com/katalvlaran/tncodes/tncode"
)

// FiveQubit returns the [[5,1,3]] code: four cyclic shifts of XZZXI
// with transversal logicals. The smallest code correcting an arbitrary
// single-qubit error.
func FiveQubit() (*tncode.Code, error) {
	return fixed("five_qubit",
		[]string{"XZZXI", "IXZZX", "XIXZZ", "ZXIXZ"},
		[]string{"XXXXX", "ZZZZZ"})
}

// Steane returns the [[7,1,3]] CSS code: the Hamming [7,4] parity
// checks as X and Z stabilizer copies, with transversal logicals.
func Steane() (*tncode.Code, error) {
	return fixed("steane",
		[]string{
			"IIIXXXX", "IXXIIXX", "XIXIXIX",
			"IIIZZZZ", "IZZIIZZ", "ZIZIZIZ",
		},
		[]string{"XXXXXXX", "ZZZZZZZ"})
}

// Bell returns the [[2,0]] state stabilized by XX and ZZ. Fusing one
// of its legs onto any qubit acts as an identity wire, which is how
// networks are stretched across extra lattice sites.
func Bell() (*tncode.Code, error) {
	return fixed("bell", []string{"XX", "ZZ"}, nil)
}

// fixed parses and wraps one catalog construction. The operator
// strings are static, so parse failures cannot happen.
func fixed(name string, stabilizers, logicals []string) (*tncode.Code, error) {
	stabs := make([]pauli.Operator, len(stabilizers))
	for i, s := range stabilizers {
		stabs[i] = pauli.MustParse(s)
	}
	var logs []pauli.Operator
	for _, s := range logicals {
		logs = append(logs, pauli.MustParse(s))
	}
	s, err := code.New(stabs, logs)
	if err != nil {
		return nil, err
	}
	return tncode.FromSimple(s, tncode.WithName(name))
}

// catalog lists the fixed constructions. The parametric surface
// families are not catalogued.
var catalog = map[string]func() (*tncode.Code, error){
	"bell":               Bell,
	"five_qubit":         FiveQubit,
	"five_qubit_surface": FiveQubitSurface,
	"steane":             Steane,
}

// Names returns the catalog keys in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Named builds the catalog construction registered under name.
func Named(name string) (*tncode.Code, error) {
	build, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCode, name)
	}
	return build()
}
