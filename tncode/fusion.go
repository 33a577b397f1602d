package tncode

import (
	"fmt"

	"github.com/katalvlaran/tncodes/code"
	"github.com/katalvlaran/tncodes/pauli"
)

// Fusion eliminates pairs of physical qubits by simulating a joint
// XX/ZZ measurement on each pair, returning a new code on the surviving
// qubits with the graph stitched across fresh bond edges.
//
// Steps per pair (i,j):
//
//	1. Annoying operators: for each σ in {X,Y,Z} form the weight-2
//	   operator σσ on {i,j}. Any such operator commuting with every
//	   stabilizer must also commute with every logical, otherwise the
//	   measurement collapses encoded information (ErrFusionLogical).
//	2. Useful stabilizers: a single left-to-right scan picks up to two
//	   stabilizers whose symbols differ across the pair, the second one
//	   only if its difference pattern is independent of the first.
//	3. Make ready: every surviving stabilizer and logical (and, when two
//	   useful stabilizers exist, every surviving pure error) is
//	   multiplied by a combination of the useful stabilizers until it
//	   carries equal symbols on i and j.
//	4. Restrict: positions i and j are dropped from every operator; the
//	   useful stabilizers and their pure errors are consumed.
//	5. With fewer than two useful stabilizers the survivors can turn
//	   dependent, so they are refiltered and pure errors are rederived
//	   from scratch.
//
// Later pairs are renumbered after each fusion to account for the two
// removed qubits; reusing a fused qubit is ErrQubitPair. On the graph,
// the pair's far endpoints are joined by a bond edge carrying a fresh
// tensor index, except for the degenerate self-contraction case where
// both endpoints coincide: the algebra still applies but the graph is
// flagged and refused by the decoder.
//
// A nil opts uses DefaultSurgeryOptions.
func Fusion(c *Code, pairs [][2]int, opts *SurgeryOptions) (*Code, error) {
	options := DefaultSurgeryOptions()
	if opts != nil {
		options = *opts
	}

	out := c.clone()
	work := make([][2]int, len(pairs))
	copy(work, pairs)
	for len(work) > 0 {
		pair := work[0]
		work = work[1:]
		if err := out.fuseOne(pair, options); err != nil {
			return nil, err
		}
		if err := renumberPairs(work, pair); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fuseOne applies one pair fusion in place on a private clone.
func (c *Code) fuseOne(pair [2]int, opts SurgeryOptions) error {
	i, j := pair[0], pair[1]
	if i > j {
		i, j = j, i
	}
	n := c.simple.NumQubits()
	if i < 0 || j >= n || i == j {
		return fmt.Errorf("%w: (%d,%d) on %d qubits", ErrQubitPair, pair[0], pair[1], n)
	}

	stabs := c.simple.Stabilizers()
	logicals := c.simple.Logicals()
	pure := c.simple.PureErrors()

	// 1) Annoying operators.
	for _, sigma := range [...]pauli.Pauli{pauli.X, pauli.Y, pauli.Z} {
		annoying := pauli.Identity(n)
		annoying[i], annoying[j] = sigma, sigma
		if !commutesWithAll(annoying, stabs) {
			continue
		}
		if !commutesWithAll(annoying, logicals) {
			return fmt.Errorf("%w: qubits (%d,%d)", ErrFusionLogical, i, j)
		}
	}

	// 2) Useful scan.
	useful := make([]int, 0, 2)
	for idx, s := range stabs {
		if s[i] == s[j] {
			continue
		}
		if len(useful) == 1 {
			u := stabs[useful[0]]
			if pauli.Product(u[i], s[i]) == pauli.Product(u[j], s[j]) {
				// Difference pattern reachable from the first useful
				// stabilizer; not independent.
				continue
			}
		}
		useful = append(useful, idx)
		if len(useful) == 2 {
			break
		}
	}

	// 3) Make-ready combos.
	var combos [][]pauli.Operator
	switch len(useful) {
	case 1:
		combos = [][]pauli.Operator{{stabs[useful[0]]}}
	case 2:
		u1, u2 := stabs[useful[0]], stabs[useful[1]]
		combos = [][]pauli.Operator{{u1}, {u2}, {u1, u2}}
	}
	makeReady := func(op pauli.Operator) (pauli.Operator, bool) {
		if op[i] == op[j] {
			return op, true
		}
		for _, combo := range combos {
			trial := op.Clone()
			for _, u := range combo {
				mulInto(trial, u)
			}
			if trial[i] == trial[j] {
				return trial, true
			}
		}
		return nil, false
	}

	// 4) Restrict survivors.
	twoUseful := len(useful) == 2
	newStabs := make([]pauli.Operator, 0, len(stabs))
	newPure := make([]pauli.Operator, 0, len(pure))
	for idx, s := range stabs {
		if containsInt(useful, idx) {
			continue
		}
		ready, ok := makeReady(s)
		if !ok {
			return fmt.Errorf("%w: qubits (%d,%d)", ErrFusionLogical, i, j)
		}
		newStabs = append(newStabs, restrict(ready, i, j))
		if twoUseful {
			readyPure, ok := makeReady(pure[idx])
			if !ok {
				return fmt.Errorf("%w: qubits (%d,%d)", ErrFusionLogical, i, j)
			}
			newPure = append(newPure, restrict(readyPure, i, j))
		}
	}
	newLogicals := make([]pauli.Operator, 0, len(logicals))
	for _, l := range logicals {
		ready, ok := makeReady(l)
		if !ok {
			return fmt.Errorf("%w: qubits (%d,%d)", ErrFusionLogical, i, j)
		}
		newLogicals = append(newLogicals, restrict(ready, i, j))
	}

	// 5) Refilter and rebuild pure errors when the pair's symplectic
	// freedom was not fully consumed.
	if !twoUseful {
		kept := newStabs[:0]
		for _, s := range newStabs {
			next := append(kept, s)
			if pauli.AreIndependent(next) {
				kept = next
			}
		}
		newStabs = kept
		rebuilt, err := code.FindPureErrors(newStabs)
		if err != nil {
			return err
		}
		newPure = rebuilt
	}

	simple, err := code.NewFull(newStabs, newLogicals, newPure)
	if err != nil {
		return err
	}
	if err := c.graph.fusePair(i, j, opts); err != nil {
		return err
	}
	c.simple = simple

	if opts.Verbose {
		fmt.Printf("tncode: fused qubits (%d,%d), consumed %d useful stabilizers\n",
			i, j, len(useful))
	}
	return nil
}

// fusePair is the graph half of a fusion: join the far endpoints of the
// two physical edges with a bond index, drop the physical nodes and
// close the label gaps.
func (g *Graph) fusePair(i, j int, opts SurgeryOptions) error {
	vi, oldI, err := g.virtualNeighbor(i)
	if err != nil {
		return err
	}
	vj, oldJ, err := g.virtualNeighbor(j)
	if err != nil {
		return err
	}

	if vi == vj {
		// Both legs hang off the same virtual node: no room for a bond
		// edge. The operator algebra is still exact.
		g.degenerate = true
		if opts.Verbose {
			fmt.Printf("tncode: degenerate self-contraction of node %d (qubits %d,%d)\n", vi, i, j)
		}
	} else {
		x := g.freshIndex()
		e := newEdge(vi, vj)
		ed, ok := g.edges[e]
		if !ok {
			ed = edgeData{typ: TypeBond}
		}
		ed.indices = append(ed.indices, x)
		g.edges[e] = ed
		g.rewriteIndices(vi, oldI, x)
		g.rewriteIndices(vj, oldJ, x)
	}

	g.removeNode(i)
	g.removeNode(j)
	g.renumberAbove(j)
	g.renumberAbove(i)
	return nil
}

// rewriteIndices replaces every occurrence of the old indices with x in
// one node's slot list.
func (g *Graph) rewriteIndices(label int, olds []int, x int) {
	nd := g.nodes[label]
	for k, id := range nd.indices {
		if containsInt(olds, id) {
			nd.indices[k] = x
		}
	}
	g.nodes[label] = nd
}

// renumberPairs rewrites the not-yet-fused pairs after qubits
// fused[0] and fused[1] were removed. Referencing a fused qubit again
// is an error.
func renumberPairs(work [][2]int, fused [2]int) error {
	qi, qj := fused[0], fused[1]
	if qi > qj {
		qi, qj = qj, qi
	}
	for idx := range work {
		for side := 0; side < 2; side++ {
			a := work[idx][side]
			if a == qi || a == qj {
				return fmt.Errorf("%w: qubit %d already fused", ErrQubitPair, a)
			}
			if a > qj {
				a--
			}
			if a > qi {
				a--
			}
			work[idx][side] = a
		}
	}
	return nil
}

func commutesWithAll(op pauli.Operator, ops []pauli.Operator) bool {
	for _, other := range ops {
		if com, _ := op.Commutation(other); com == 1 {
			return false
		}
	}
	return true
}

// restrict drops positions i and j from an operator.
func restrict(op pauli.Operator, i, j int) pauli.Operator {
	out := make(pauli.Operator, 0, len(op)-2)
	for q, s := range op {
		if q == i || q == j {
			continue
		}
		out = append(out, s)
	}
	return out
}

// mulInto multiplies src into dst elementwise, in place.
func mulInto(dst, src pauli.Operator) {
	for q := range dst {
		dst[q] = pauli.Product(dst[q], src[q])
	}
}
