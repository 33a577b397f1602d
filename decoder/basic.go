package decoder

// basicStrategy folds the node tensors one after another in node
// order. Exact for any topology; the intermediate tensor carries every
// bond not yet closed, so memory is exponential in the worst case.
type basicStrategy struct{}

func (basicStrategy) contract(sites []site) (*tensor, error) {
	acc := sites[0].t
	for _, s := range sites[1:] {
		acc = contractPair(acc, s.t)
	}
	return acc, nil
}
