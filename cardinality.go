// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "math/big"

// Cardinality returns the number of satisfying assignments of the
// Boolean function rooted at e, over the forest's full Vars variables.
// Elided levels (a consequence of whichever reduction rules the forest
// enforces) each contribute a factor of 2 per skipped variable, the
// closed-form correction spec.md §4.8 calls out so counting does not
// need to walk the elided levels node by node.
func (f *Forest) Cardinality(e Edge) (*big.Int, error) {
	if err := f.poisonedErr(); err != nil {
		return nil, err
	}
	n, err := f.cardRec(e, f.cfg.Vars+1)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (f *Forest) cardRec(e Edge, expectedLevel int) (*big.Int, error) {
	if e.isTerminal() {
		skipped := expectedLevel - 1
		n := new(big.Int)
		if isOneConstant(e) {
			n.SetInt64(1)
		} else {
			n.SetInt64(0)
		}
		return n.Lsh(n, uint(skipped)), nil
	}

	key := cacheKey{op: opCardinality, level: e.Label.level(), a: e}
	// Cardinality results don't fit Edge, so they bypass opCache and
	// use a dedicated small memo instead, keyed the same way.
	if n, ok := f.cardMemo[key]; ok {
		return skipFactor(n, expectedLevel-1-e.Label.level()), nil
	}

	lvl := e.Label.level()
	children := f.cofactor(e, lvl)

	total := new(big.Int)
	for _, c := range children[:2] { // Boolean cardinality only walks the function dimension
		n, err := f.cardRec(c, lvl)
		if err != nil {
			return nil, err
		}
		total.Add(total, n)
	}

	if f.cardMemo == nil {
		f.cardMemo = make(map[cacheKey]*big.Int)
	}
	f.cardMemo[key] = total

	return skipFactor(total, expectedLevel-1-lvl), nil
}

func skipFactor(n *big.Int, skipped int) *big.Int {
	if skipped <= 0 {
		return n
	}
	out := new(big.Int).Set(n)
	return out.Lsh(out, uint(skipped))
}
