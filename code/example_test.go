package code_test

import (
	"fmt"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
)

func fiveQubitExample() code.Simple {
	c, err := code.New(
		[]pauli.Operator{
			pauli.MustParse("XZZXI"),
			pauli.MustParse("IXZZX"),
			pauli.MustParse("XIXZZ"),
			pauli.MustParse("ZXIXZ"),
		},
		[]pauli.Operator{pauli.MustParse("XXXXX"), pauli.MustParse("ZZZZZ")},
	)
	if err != nil {
		panic(err)
	}
	return c
}

func ExampleNew() {
	c, err := code.New(
		[]pauli.Operator{
			pauli.MustParse("XZZXI"),
			pauli.MustParse("IXZZX"),
			pauli.MustParse("XIXZZ"),
			pauli.MustParse("ZXIXZ"),
		},
		[]pauli.Operator{pauli.MustParse("XXXXX"), pauli.MustParse("ZZZZZ")},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.NumQubits(), c.NumStabilizers(), c.NumLogicalQubits())

	syndrome, _ := c.Syndrome(pauli.MustParse("IZIII"))
	fmt.Println(syndrome)
	// Output:
	// 5 4 1
	// [0 1 0 1]
}

func ExampleSimple_DistanceLogicals() {
	c := fiveQubitExample()

	d, logicalOps, _ := c.DistanceLogicals()
	fmt.Println(d, len(logicalOps))
	// Output: 3 30
}

func ExampleSimple_Gauge() {
	c := fiveQubitExample()

	g, _ := c.Gauge(0, pauli.Y)
	stabs := g.Stabilizers()
	fmt.Println(g.NumLogicalQubits(), stabs[len(stabs)-1])
	// Output: 0 YYYYY
}

func ExampleSimple_PureError() {
	c := fiveQubitExample()

	rep, _ := c.PureError([]int{0, 0, 0, 1})
	back, _ := c.Syndrome(rep)
	fmt.Println(back)
	// Output: [0 0 0 1]
}
