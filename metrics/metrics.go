// SPDX-License-Identifier: MIT

package metrics

import "sync/atomic"

// Op identifies the kind of graph operation a counter cell tracks.
type Op uint8

// Operation kinds. The zero value is OpAddNode; numOps bounds the cell array.
const (
	OpAddNode Op = iota
	OpAddEdge
	OpRemoveNode
	OpRemoveEdge
	OpNodeLookup
	OpEdgeLookup
	OpNeighbors
	OpTraverseStep

	numOps
)

// opNames is indexed by Op; keep in sync with the const block above.
var opNames = [numOps]string{
	"add_node",
	"add_edge",
	"remove_node",
	"remove_edge",
	"node_lookup",
	"edge_lookup",
	"neighbors",
	"traverse_step",
}

// String returns the stable label of op, e.g. "add_node".
func (op Op) String() string {
	if op >= numOps {
		return "unknown"
	}
	return opNames[op]
}

// Counters holds one monotonically increasing 64-bit cell per Op.
// The zero value is ready to use; New is provided for symmetry with the
// rest of the module.
type Counters struct {
	cells [numOps]atomic.Uint64
}

// New returns a fresh Counters with all cells at zero.
func New() *Counters {
	return &Counters{}
}

// Inc adds one to the cell for op. Safe on a nil receiver.
func (c *Counters) Inc(op Op) {
	c.Add(op, 1)
}

// Add adds n to the cell for op. Safe on a nil receiver;
// out-of-range ops are ignored.
func (c *Counters) Add(op Op, n uint64) {
	if c == nil || op >= numOps {
		return
	}
	c.cells[op].Add(n)
}

// Get returns the current count for op. Safe on a nil receiver.
func (c *Counters) Get(op Op) uint64 {
	if c == nil || op >= numOps {
		return 0
	}
	return c.cells[op].Load()
}

// Snapshot returns the current value of every cell, keyed by Op.
// The returned map is a copy; mutating it does not affect the counters.
// A nil receiver yields nil.
func (c *Counters) Snapshot() map[Op]uint64 {
	if c == nil {
		return nil
	}
	out := make(map[Op]uint64, numOps)
	for op := Op(0); op < numOps; op++ {
		out[op] = c.cells[op].Load()
	}
	return out
}

// Reset zeroes every cell. Safe on a nil receiver.
func (c *Counters) Reset() {
	if c == nil {
		return
	}
	for i := range c.cells {
		c.cells[i].Store(0)
	}
}
