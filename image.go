// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

// PreImage returns the set of states that can reach some state in set
// under relation rel in one step: {x | exists y in set, (x,y) in rel}.
// rel must belong to a Dimension-2 forest; set must belong to a
// Dimension-1 forest over the same Vars and level order.
func (f *Forest) PreImage(setForest *Forest, set, rel Edge) (Edge, error) {
	return f.imageRec(opPreImage, setForest, set, rel, false)
}

// PostImage returns the set of states reachable from some state in set
// under relation rel in one step: {y | exists x in set, (x,y) in rel}.
func (f *Forest) PostImage(setForest *Forest, set, rel Edge) (Edge, error) {
	return f.imageRec(opPostImage, setForest, set, rel, true)
}

// imageRec walks set and rel level by level together. At each level it
// existentially quantifies over the "other" dimension (to-bit for
// PreImage, from-bit for PostImage), unioning the two resulting
// branches of the quantified dimension together before continuing the
// recursion on the remaining level, per spec.md §4.9.
func (f *Forest) imageRec(op opCode, setForest *Forest, set, rel Edge, forward bool) (Edge, error) {
	if err := f.poisonedErr(); err != nil {
		return Edge{}, err
	}

	if isOmega(rel) || isZeroConstant(rel) || isZeroConstant(set) {
		return f.zero, nil
	}
	if set.isTerminal() && rel.isTerminal() {
		if isOneConstant(set) {
			return f.one, nil
		}
		return f.zero, nil
	}

	lvl := f.topLevel(set, rel)
	key := cacheKey{op: op, level: lvl, a: set, b: rel}
	if r, ok := f.cache.lookup(key); ok {
		return r, nil
	}

	setCofs := setForest.cofactor(set, lvl)
	relCofs := f.cofactor(rel, lvl)

	// relCofs ordering is [from0to0, from0to1, from1to0, from1to1].
	// The result is indexed by the kept bit (from-bit for PreImage,
	// to-bit for PostImage); the set supplies the quantified bit.
	var branch [2]Edge
	for keptBit := 0; keptBit < 2; keptBit++ {
		acc := f.zero
		for qBit := 0; qBit < 2; qBit++ {
			var setBit, relChild int
			if forward {
				setBit, relChild = qBit, qBit*2+keptBit
			} else {
				setBit, relChild = qBit, keptBit*2+qBit
			}
			step, err := f.imageRec(op, setForest, setCofs[setBit], relCofs[relChild], forward)
			if err != nil {
				return Edge{}, err
			}
			acc, err = f.Or(acc, step)
			if err != nil {
				return Edge{}, err
			}
		}
		branch[keptBit] = acc
	}

	result, err := f.makeNode(lvl, []Edge{branch[0], branch[1]})
	if err != nil {
		return Edge{}, err
	}
	f.cache.insert(key, result)
	return result, nil
}
