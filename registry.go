// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "github.com/bravedd/ddforest/internal/sparse"

// ForestSlot is a small process-wide handle identifying a live Forest
// in the registry below. NewForest takes a slot and Close frees it; no
// operator looks a forest up by slot (Copy is handed its source forest
// directly). At most 256 forests may be registered at
// once, the design note of spec.md §9 accepts this as a deliberate cap
// rather than growing the registry unbounded.
type ForestSlot uint8

// registry is the process-wide table mapping ForestSlot to *Forest,
// backed by sparse.Array256 the way the teacher backs any small
// fixed-capacity lookup table.
type registry struct {
	arr sparse.Array256[*Forest]
}

var globalRegistry registry

func (r *registry) register(f *Forest) (ForestSlot, error) {
	for i := uint(0); i < 256; i++ {
		if _, ok := r.arr.Get(i); !ok {
			r.arr.InsertAt(i, f)
			return ForestSlot(i), nil
		}
	}
	return 0, newExhaustedError("process-wide forest registry is full (256 live forests)")
}

func (r *registry) unregister(slot ForestSlot) {
	r.arr.DeleteAt(uint(slot))
}

func (r *registry) lookup(slot ForestSlot) (*Forest, bool) {
	return r.arr.Get(uint(slot))
}
