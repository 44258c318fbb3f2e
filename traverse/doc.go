// Package traverse provides breadth-first search over a core.Graph,
// plus directed ancestry queries (roots, leaves, ancestor chains).
//
// BFS explores nodes in increasing distance from a start node, returning
// visit order, depth, and parent links, with optional hooks, depth
// limiting, neighbor filtering, and context cancellation.
//
// The ancestry helpers treat a directed graph as a forest-like hierarchy:
// Roots are nodes with no incoming edges, Leaves have no outgoing edges,
// Ancestors walks the predecessor chain of a node toward a root, and
// OnPath reports whether one node lies on another's ancestor chain. When
// a node has several predecessors the chain follows the smallest NodeID,
// which keeps results deterministic. Cyclic reachability is cut off after
// NodeCount steps rather than looping forever.
//
// When the graph carries a metrics.Counters context, every BFS dequeue
// increments the traverse_step counter.
package traverse
