// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

// Package ddforest implements reduced, shared, canonical decision
// diagrams: binary decision diagrams, edge-valued binary decision
// diagrams, and binary matrix diagrams, built on a single
// hash-consing node store with a configurable reduction rule set.
package ddforest

import (
	"math/big"

	"github.com/bravedd/ddforest/internal/value"
)

// Forest is a live instance of a decision-diagram store: one arena and
// unique table per variable level, one operation cache, and a root
// registry of externally held edges. A Forest is not safe for
// concurrent use; spec.md's concurrency model (§5) is single-threaded
// with a stop-the-world collector, so callers serialize their own
// access the same way the teacher's Table methods require external
// serialization for writers.
type Forest struct {
	cfg    Config
	levels []*level // index 1..cfg.Vars; levels[0] unused
	cache  *opCache
	roots  *rootRegistry
	slot   ForestSlot
	poison *InvariantError

	gcGuard bool // reentrancy guard, see gc.go

	zero  Edge
	one   Edge
	omega Edge

	cardMemo map[cacheKey]*big.Int
}

// NewForest validates cfg and allocates a fresh, empty forest whose
// only edges are its terminals.
func NewForest[V any](cfg Config) (*Forest, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	isZST := value.IsZST[V]()
	if cfg.ValueKind == ValueVoid && !isZST {
		return nil, newConfigError("ValueVoid requires a zero-sized Go value type, got a non-ZST type parameter")
	}
	if cfg.ValueKind != ValueVoid && isZST {
		return nil, newConfigError("a zero-sized Go value type requires ValueVoid")
	}

	arity := 2
	if cfg.Dimension == 2 {
		arity = 4
	}

	f := &Forest{
		cfg:    cfg,
		levels: make([]*level, cfg.Vars+1),
		cache:  newOpCache(16),
		roots:  newRootRegistry(),
	}
	for lvl := 1; lvl <= cfg.Vars; lvl++ {
		f.levels[lvl] = newLevel(arity, cfg.growThresholdOr(1<<20))
	}

	slot, err := globalRegistry.register(f)
	if err != nil {
		return nil, err
	}
	f.slot = slot

	f.zero = terminalEdge(termValue, false)
	f.one = Edge{Label: makeTerminalLabel(termValue, false), Value: scalarFromInt64(1)}
	f.omega = terminalEdge(termOmega, false)

	return f, nil
}

// Close releases the forest's slot in the process-wide registry. A
// closed Forest must not be used again.
func (f *Forest) Close() {
	globalRegistry.unregister(f.slot)
}

// Config returns the forest's configuration, as validated at
// NewForest time.
func (f *Forest) Config() Config { return f.cfg }

// Zero returns the constant-false / constant-zero terminal edge.
func (f *Forest) Zero() Edge { return f.zero }

// One returns the constant-true / constant-one terminal edge.
func (f *Forest) One() Edge { return f.one }

// Omega returns the empty-relation / universally-undefined terminal
// edge used by void (set-membership-only) forests.
func (f *Forest) Omega() Edge { return f.omega }

// Pin registers e as an external root so it survives garbage
// collection, returning the RootID the caller must pass to Unpin once
// e is no longer needed.
func (f *Forest) Pin(e Edge) (RootID, error) {
	if err := f.poisonedErr(); err != nil {
		return 0, err
	}
	return f.roots.pin(e), nil
}

// Unpin releases a previously pinned root.
func (f *Forest) Unpin(id RootID) error {
	if err := f.poisonedErr(); err != nil {
		return err
	}
	f.roots.unpin(id)
	return nil
}

// NodeCount returns the number of live (interned, unreleased) nodes
// across every level, for diagnostics and the example CLI's stats
// command.
func (f *Forest) NodeCount() int {
	n := 0
	for _, lv := range f.levels[1:] {
		n += lv.size()
	}
	return n
}

// RegisterRoot is an alias for Pin, named to match the rest of the
// package's Register/Deregister vocabulary for process-wide resources
// (see registry.go).
func (f *Forest) RegisterRoot(e Edge) (RootID, error) { return f.Pin(e) }

// DeregisterRoot is an alias for Unpin.
func (f *Forest) DeregisterRoot(id RootID) error { return f.Unpin(id) }

// GC is an alias for Collect.
func (f *Forest) GC() error { return f.Collect() }

// Stats reports basic size counters for diagnostics and the example
// CLI's stats command.
type Stats struct {
	Nodes    int
	CacheCap int
	Roots    int
}

func (f *Forest) Stats() Stats {
	return Stats{
		Nodes:    f.NodeCount(),
		CacheCap: len(f.cache.slots),
		Roots:    f.roots.arr.Len(),
	}
}

// Constant returns the terminal edge carrying value v.
func (f *Forest) Constant(v Scalar) Edge {
	return f.withValue(v)
}

// Var returns the canonical edge for the projector of the single
// variable at level lvl: the node whose Low child is Zero and whose
// High child is One.
func (f *Forest) Var(lvl int) (Edge, error) {
	if lvl < 1 || lvl > f.cfg.Vars {
		return Edge{}, newUserError("Var: level %d out of range [1,%d]", lvl, f.cfg.Vars)
	}
	return f.makeNode(lvl, []Edge{f.zero, f.one})
}

// Eval evaluates e under a full assignment (length must equal Vars,
// assignment[i] is the value of the variable at level i+1).
func (f *Forest) Eval(e Edge, assignment []bool) (Scalar, error) {
	if len(assignment) != f.cfg.Vars {
		return Scalar{}, newUserError("Eval: assignment has %d bits, forest has %d vars", len(assignment), f.cfg.Vars)
	}
	// Walk every level from the top down, not just cur's own recorded
	// level: a terminal edge can carry an elision rule (reduce.go's
	// tagElidedEdge) that must be re-tested at each level it skips, and
	// cofactor knows how to do that given the right level — jumping
	// straight to cur.Label.level() each step, as a plain node
	// expansion would, loses that retest.
	cur := e
	for lvl := f.cfg.Vars; lvl >= 1; lvl-- {
		if cur.isTerminal() && cur.Label.rule() == RuleNone {
			break
		}
		cofs := f.cofactor(cur, lvl)
		if assignment[lvl-1] {
			cur = cofs[1]
		} else {
			cur = cofs[0]
		}
	}
	return cur.Value, nil
}

// makeNode builds the node with the given children at levelNum,
// running the full reduction algebra (normalize, intern, merge) and
// returning the single canonical Edge that represents it.
func (f *Forest) makeNode(levelNum int, children []Edge) (Edge, error) {
	for i, c := range children {
		children[i] = f.reduceEdge(c)
	}
	e, err := f.reduceNode(levelNum, children)
	if err != nil {
		return Edge{}, err
	}
	return f.reduceEdge(e), nil
}
