// File: clone.go
// Role: Deep copies and structural equality for Graph.

package core

import "bytes"

// Clone returns a deep copy of the Graph: flags, nodes, edges, adjacency,
// and allocator watermarks. Payloads are copied, so mutating the clone's
// records never touches the source. The counters and logger collaborators
// are shared by reference. Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	opts := []Option{WithDirected(g.directed)}
	if g.simple {
		opts = append(opts, WithSimple())
	}
	if g.counters != nil {
		opts = append(opts, WithCounters(g.counters))
	}
	if g.log != nil {
		opts = append(opts, WithLogger(g.log))
	}
	out := New(opts...)

	for id, n := range g.nodes {
		out.nodes[id] = &Node{ID: id, Payload: bytes.Clone(n.Payload)}
	}
	for id, e := range g.edges {
		ne := &Edge{ID: id, From: e.From, To: e.To, Payload: bytes.Clone(e.Payload)}
		out.edges[id] = ne
		out.attach(ne)
	}

	// Carry the watermarks so ids issued by the clone never collide with
	// ids already visible through the source.
	out.nodeIDs = g.nodeIDs
	out.edgeIDs = g.edgeIDs

	return out
}

// Equal reports structural equality: identical flags, node and edge sets,
// identifiers, endpoints, and payloads. Allocator bookkeeping beyond the
// live catalogs does not participate. Complexity: O(V + E).
func (g *Graph) Equal(o *Graph) bool {
	if o == nil {
		return false
	}
	if g.directed != o.directed || g.simple != o.simple {
		return false
	}
	if len(g.nodes) != len(o.nodes) || len(g.edges) != len(o.edges) {
		return false
	}
	for id, n := range g.nodes {
		on, ok := o.nodes[id]
		if !ok || !bytes.Equal(n.Payload, on.Payload) {
			return false
		}
	}
	for id, e := range g.edges {
		oe, ok := o.edges[id]
		if !ok || e.From != oe.From || e.To != oe.To || !bytes.Equal(e.Payload, oe.Payload) {
			return false
		}
	}
	return true
}
