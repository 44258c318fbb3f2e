// This file implements the identifier allocator shared by the node and
// edge id spaces.

package core

import "math"

// idAllocator issues 32-bit handles from a monotonic watermark.
//
// Policy: released identifiers are never reissued during the owning
// Graph's lifetime, so handles held outside the store stay unambiguous.
// release therefore only records the free; reuse would require a new
// Graph (or Clear, which restarts the watermark).
type idAllocator struct {
	next  uint32 // watermark: next id to hand out
	freed uint32 // identifiers released by removals
}

// allocate returns a never-before-issued id. O(1).
// Panics with ErrAllocatorExhausted at the uint32 ceiling: the id space is
// spent and continuing would violate identifier uniqueness.
func (a *idAllocator) allocate() uint32 {
	if a.next == math.MaxUint32 {
		panic(ErrAllocatorExhausted)
	}
	id := a.next
	a.next++
	return id
}

// release marks id as structurally unreferenced. The caller must have
// removed every reference first; the id is not reissued.
func (a *idAllocator) release(uint32) {
	a.freed++
}

// reserve claims an externally chosen id (bulk load, decode), bumping the
// watermark past it so future allocate calls cannot collide. Collision
// detection against live ids is the caller's catalog lookup; reserve only
// maintains monotonicity.
func (a *idAllocator) reserve(id uint32) {
	if id == math.MaxUint32 {
		a.next = math.MaxUint32
		return
	}
	if id >= a.next {
		a.next = id + 1
	}
}
