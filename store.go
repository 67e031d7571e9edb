// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "github.com/cnf/structhash"

// node is the in-arena representation of a decision-diagram node: a
// fixed-arity tuple of child edges, two for a function forest, four for
// a relation forest (§3.1). level is redundant with the arena it lives
// in but kept alongside the children so a node can be hashed and
// compared without consulting its owning level.
type node struct {
	level    int
	children []Edge
	refs     int32 // always zero: no operation counts references; gc.go decides liveness by marking
	marked   bool  // scratch bit for mark-and-sweep (gc.go)
}

func (n *node) equalChildren(other []Edge) bool {
	if len(n.children) != len(other) {
		return false
	}
	for i, e := range n.children {
		if e != other[i] {
			return false
		}
	}
	return true
}

// hashKey is the anonymous struct structhash digests to bucket a node
// in its level's unique table. Grounded on
// npillmayer-gorgo/lr/earley/earley.go's hash helper, which hashes an
// anonymous struct wrapping the item content via structhash.Hash.
type hashKey struct {
	Level    int
	Children []Edge
}

func hashNode(level int, children []Edge) string {
	h, err := structhash.Hash(hashKey{Level: level, Children: children}, 1)
	if err != nil {
		// structhash.Hash only errors on unsupported reflect kinds; Edge
		// is a plain value struct, so this cannot happen.
		panic(err)
	}
	return h
}

// level owns the arena and unique (hash-cons) table for one variable
// level of a forest. Handles are indices into arena+1 so that Handle 0
// can mean "no node."
type level struct {
	arena    []node
	free     []Handle // recycled slots, LIFO
	unique   map[string][]Handle
	arity    int
	growStep int64
}

func newLevel(arity int, growStep int64) *level {
	return &level{
		unique:   make(map[string][]Handle),
		arity:    arity,
		growStep: growStep,
	}
}

func (lv *level) get(h Handle) *node {
	return &lv.arena[h-1]
}

// internOrFind returns the handle of the unique node with these
// children at this level, allocating a fresh arena slot only if no
// structurally equal node already exists (hash-consing, §4.1).
func (lv *level) internOrFind(levelNum int, children []Edge) (Handle, error) {
	key := hashNode(levelNum, children)
	for _, h := range lv.unique[key] {
		if lv.get(h).equalChildren(children) {
			return h, nil
		}
	}

	h, err := lv.allocate()
	if err != nil {
		return 0, err
	}
	n := lv.get(h)
	n.level = levelNum
	n.children = append([]Edge(nil), children...)
	n.refs = 0
	n.marked = false
	lv.unique[key] = append(lv.unique[key], h)
	return h, nil
}

func (lv *level) allocate() (Handle, error) {
	if len(lv.free) > 0 {
		h := lv.free[len(lv.free)-1]
		lv.free = lv.free[:len(lv.free)-1]
		return h, nil
	}
	step := lv.growStep
	if step <= 0 {
		step = 1 << 20
	}
	if n := int64(len(lv.arena)); n >= step && n == int64(cap(lv.arena)) {
		// past the threshold the arena grows by a fixed step of slots
		// instead of by append's proportional growth.
		grown := make([]node, n, n+step)
		copy(grown, lv.arena)
		lv.arena = grown
	}
	lv.arena = append(lv.arena, node{})
	return Handle(len(lv.arena)), nil
}

// release recycles a node's arena slot and removes it from the unique
// table, called only from gc.go's sweep for a node the mark phase did
// not reach.
func (lv *level) release(h Handle) {
	n := lv.get(h)
	key := hashNode(n.level, n.children)
	bucket := lv.unique[key]
	for i, other := range bucket {
		if other == h {
			bucket[i] = bucket[len(bucket)-1]
			lv.unique[key] = bucket[:len(bucket)-1]
			break
		}
	}
	if len(lv.unique[key]) == 0 {
		delete(lv.unique, key)
	}
	n.children = nil
	lv.free = append(lv.free, h)
}

func (lv *level) size() int {
	return len(lv.arena) - len(lv.free)
}
