// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "github.com/bravedd/ddforest/internal/sparse"

// RootID names one externally held reference into a forest: the handle
// a caller gets back from Pin (or RegisterRoot), and the handle they
// must release when they no longer need that function or relation kept
// alive across garbage collection.
type RootID uint

// rootRegistry pins the set of Edges a forest's callers currently hold,
// so gc.go's mark phase has external roots to start from in addition to
// whatever a caller is actively building. Backed by sparse.Array[Edge]
// the same way the teacher backs any growable sparse-index table.
type rootRegistry struct {
	arr  sparse.Array[Edge]
	next uint
}

func newRootRegistry() *rootRegistry {
	return &rootRegistry{}
}

// pin registers e as a live root and returns the RootID the caller must
// later pass to unpin.
func (r *rootRegistry) pin(e Edge) RootID {
	id := r.next
	r.next++
	r.arr.InsertAt(id, e)
	return RootID(id)
}

func (r *rootRegistry) unpin(id RootID) (Edge, bool) {
	return r.arr.DeleteAt(uint(id))
}

func (r *rootRegistry) get(id RootID) (Edge, bool) {
	return r.arr.Get(uint(id))
}

// all returns every currently pinned root edge, the starting set for a
// mark-and-sweep pass.
func (r *rootRegistry) all() []Edge {
	out := make([]Edge, 0, r.arr.Len())
	for i := 0; i < r.arr.Len(); i++ {
		out = append(out, r.arr.Items[i])
	}
	return out
}
