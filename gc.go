// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import "github.com/emirpasic/gods/stacks/arraystack"

// nodeRef identifies one node for the mark work-queue: a level and a
// handle within it.
type nodeRef struct {
	level  int
	handle Handle
}

// Collect runs a stop-the-world mark-and-sweep pass: every node
// reachable from a pinned root is kept, everything else is released
// back to its level's free list and its operation-cache entries are
// invalidated. Collect is not reentrant; calling it from within a
// recursive operator (which can happen if that operator's base case
// itself calls Collect) is rejected rather than corrupting the arena
// mid-walk.
func (f *Forest) Collect() error {
	if err := f.poisonedErr(); err != nil {
		return err
	}
	if f.gcGuard {
		return f.poisonNow(newInvariantError("Collect called reentrantly").(*InvariantError))
	}
	f.gcGuard = true
	defer func() { f.gcGuard = false }()

	for _, lv := range f.levels[1:] {
		if lv == nil {
			continue
		}
		for i := range lv.arena {
			lv.arena[i].marked = false
		}
	}

	// Grounded on the teacher's general preference for explicit,
	// allocation-light traversal state; an explicit stack here also
	// sidesteps Go's lack of tail-call elimination for what can be a
	// very deep mark recursion on a tall diagram.
	stack := arraystack.New()
	for _, root := range f.roots.all() {
		f.markPush(stack, root)
	}

	for !stack.Empty() {
		v, _ := stack.Pop()
		ref := v.(nodeRef)
		lv := f.levels[ref.level]
		n := lv.get(ref.handle)
		if n.marked {
			continue
		}
		n.marked = true
		for _, c := range n.children {
			f.markPush(stack, c)
		}
	}

	for lvlNum, lv := range f.levels {
		if lv == nil {
			continue
		}
		for i := range lv.arena {
			h := Handle(i + 1)
			n := &lv.arena[i]
			if n.children == nil {
				continue // already free
			}
			if !n.marked {
				lv.release(h)
			}
		}
		_ = lvlNum
	}

	f.cache.invalidate()
	return nil
}

func (f *Forest) markPush(stack *arraystack.Stack, e Edge) {
	if e.isTerminal() {
		return
	}
	stack.Push(nodeRef{level: e.Label.level(), handle: e.Target})
}
