package decoder_test

import (
	"fmt"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/decoder"
	"github.com/katalvlaran/tncodes/pauli"
	"github.com/katalvlaran/tncodes/tncode"
)

func exampleFive() *tncode.Code {
	s, err := code.New(
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
	c, err := tncode.FromSimple(s, tncode.WithName("five"))
	if err != nil {
		panic(err)
	}
	return c
}

func ExampleDecode() {
	c := exampleFive()

	// An X flip on qubit 0 trips only the last stabilizer.
	errOp := pauli.MustParse("XIIII")
	syn, err := c.Simple().Syndrome(errOp)
	if err != nil {
		panic(err)
	}

	corr, _, err := decoder.Decode(c, syn, 0.1, decoder.BasicContract())
	if err != nil {
		panic(err)
	}
	fmt.Println(syn)
	fmt.Println(corr)
	// Output:
	// [0 0 0 1]
	// XIIII
}

func ExampleDistance() {
	d, err := decoder.Distance(exampleFive())
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 3
}

func ExampleOperatorWeights() {
	stab, all, err := decoder.OperatorWeights(exampleFive())
	if err != nil {
		panic(err)
	}
	fmt.Println(stab)
	fmt.Println(all)
	// Output:
	// [1 0 0 0 15 0]
	// [1 0 0 30 15 18]
}
