// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// RelationSet is an unordered collection of transition relations used
// by Saturate, one per "event" in the usual saturation formulation
// (each event only touches a contiguous span of levels).
type RelationSet struct {
	Forest    *Forest
	Relations []Edge
}

// partitionByTopLevel groups relations by the top level of the
// variable span they touch, the grouping saturation iterates over
// from the bottom level upward. Grounded on
// npillmayer-gorgo/lr/tables.go's use of gods collections to hold
// parser-table state keyed by a comparable int; redblacktree gives
// saturate.go a level-ordered iteration for free via Keys().
func partitionByTopLevel(rs RelationSet) *redblacktree.Tree {
	tree := redblacktree.NewWith(utils.IntComparator)
	for _, rel := range rs.Relations {
		lvl := rel.Label.level()
		var bucket []Edge
		if v, ok := tree.Get(lvl); ok {
			bucket = v.([]Edge)
		}
		bucket = append(bucket, rel)
		tree.Put(lvl, bucket)
	}
	return tree
}

// Saturate computes the least fixed point of set under repeated
// application of PostImage across every relation in rs. Each pass
// applies every relation, grouped by top level in ascending order,
// and passes repeat until one adds no state; a pass does not skip
// levels whose lower levels are unchanged.
func (f *Forest) Saturate(setForest *Forest, set Edge, rs RelationSet) (Edge, error) {
	if err := f.poisonedErr(); err != nil {
		return Edge{}, err
	}

	tree := partitionByTopLevel(rs)
	levels := tree.Keys()

	current := set
	changed := true
	for changed {
		changed = false
		for _, lvlAny := range levels {
			bucket, _ := tree.Get(lvlAny)
			for _, rel := range bucket.([]Edge) {
				next, err := rs.Forest.PostImage(setForest, current, rel)
				if err != nil {
					return Edge{}, err
				}
				union, err := setForest.Or(current, next)
				if err != nil {
					return Edge{}, err
				}
				if union != current {
					current = union
					changed = true
				}
			}
		}
	}
	return current, nil
}
