// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphio/metrics"
)

// TestCounters_IncGetSnapshot verifies the basic count/read contract.
func TestCounters_IncGetSnapshot(t *testing.T) {
	c := metrics.New()

	c.Inc(metrics.OpAddNode)
	c.Inc(metrics.OpAddNode)
	c.Add(metrics.OpAddEdge, 5)

	require.Equal(t, uint64(2), c.Get(metrics.OpAddNode))
	require.Equal(t, uint64(5), c.Get(metrics.OpAddEdge))
	require.Equal(t, uint64(0), c.Get(metrics.OpRemoveNode))

	snap := c.Snapshot()
	require.Equal(t, uint64(2), snap[metrics.OpAddNode])
	require.Equal(t, uint64(5), snap[metrics.OpAddEdge])

	// Snapshot is a copy; mutating it must not leak back.
	snap[metrics.OpAddNode] = 99
	require.Equal(t, uint64(2), c.Get(metrics.OpAddNode))
}

// TestCounters_Reset verifies that Reset zeroes every cell.
func TestCounters_Reset(t *testing.T) {
	c := metrics.New()
	c.Add(metrics.OpNeighbors, 7)
	c.Add(metrics.OpTraverseStep, 3)

	c.Reset()

	for op, n := range c.Snapshot() {
		require.Zerof(t, n, "op %s not reset", op)
	}
}

// TestCounters_NilReceiver verifies that a nil sink is a usable no-op.
func TestCounters_NilReceiver(t *testing.T) {
	var c *metrics.Counters

	require.NotPanics(t, func() {
		c.Inc(metrics.OpAddNode)
		c.Add(metrics.OpAddEdge, 2)
		c.Reset()
	})
	require.Equal(t, uint64(0), c.Get(metrics.OpAddNode))
	require.Nil(t, c.Snapshot())
}

// TestOp_String verifies stable labels for every known op.
func TestOp_String(t *testing.T) {
	want := map[metrics.Op]string{
		metrics.OpAddNode:      "add_node",
		metrics.OpAddEdge:      "add_edge",
		metrics.OpRemoveNode:   "remove_node",
		metrics.OpRemoveEdge:   "remove_edge",
		metrics.OpNodeLookup:   "node_lookup",
		metrics.OpEdgeLookup:   "edge_lookup",
		metrics.OpNeighbors:    "neighbors",
		metrics.OpTraverseStep: "traverse_step",
	}
	for op, label := range want {
		require.Equal(t, label, op.String())
	}
	require.Equal(t, "unknown", metrics.Op(200).String())
}
