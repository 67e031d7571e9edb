// Copyright (c) 2026 ddforest Authors
// SPDX-License-Identifier: MIT

package ddforest

import (
	"encoding/binary"

	"github.com/codahale/kt128"
)

// opCode tags which recursive operator populated a cache entry, so
// operators never collide with each other's entries even when they
// share operand edges.
type opCode uint8

const (
	opAnd opCode = iota
	opOr
	opXor
	opDiff
	opMin
	opMax
	opPlus
	opComplement
	opCopy
	opCardinality
	opPreImage
	opPostImage
	opSaturate
	opRestrict
	opOSM
	opTSM
)

// cacheKey identifies one memoized recursive call: an operator code,
// the level the call is operating at, and up to two operand edges
// (unary operators leave the second zero).
type cacheKey struct {
	op     opCode
	level  int
	a, b   Edge
}

func (k cacheKey) hash() uint64 {
	// Grounded on codahale/thyrse's Protocol.MixStream, which feeds a
	// KT128 hasher through io.Writer and reads a fixed-size digest back
	// out of it.
	h := kt128.NewCustom([]byte("ddforest.opcache"))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(k.op)<<56|uint64(k.level))
	h.Write(buf[:])
	writeEdge(h, k.a)
	writeEdge(h, k.b)
	var digest [8]byte
	h.Read(digest[:])
	return binary.LittleEndian.Uint64(digest[:])
}

func writeEdge(h *kt128.Hasher, e Edge) {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(e.Label))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(e.Target))
	binary.LittleEndian.PutUint64(buf[12:20], e.Value.bits)
	buf[20] = byte(e.Value.kind)
	h.Write(buf[:])
}

type cacheEntry struct {
	key    cacheKey
	result Edge
	valid  bool
}

// opCache is a direct-mapped memo table for recursive operators
// (§4.7): each slot is overwritten on collision rather than chained,
// trading a higher miss rate for O(1) eviction and no allocation on
// insert, and is invalidated wholesale whenever the forest's GC sweeps.
type opCache struct {
	slots []cacheEntry
	mask  uint64
}

func newOpCache(sizeLog2 uint) *opCache {
	size := uint64(1) << sizeLog2
	return &opCache{
		slots: make([]cacheEntry, size),
		mask:  size - 1,
	}
}

func (c *opCache) lookup(k cacheKey) (Edge, bool) {
	slot := &c.slots[k.hash()&c.mask]
	if slot.valid && slot.key == k {
		return slot.result, true
	}
	return Edge{}, false
}

func (c *opCache) insert(k cacheKey, result Edge) {
	slot := &c.slots[k.hash()&c.mask]
	*slot = cacheEntry{key: k, result: result, valid: true}
}

// invalidate clears every slot, called after a GC sweep since sweeping
// can free handles that a stale cache entry still references.
func (c *opCache) invalidate() {
	for i := range c.slots {
		c.slots[i] = cacheEntry{}
	}
}
