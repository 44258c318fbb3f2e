// Package core: Graph method implementations.
//
// This file provides O(1) (amortized) operations for node and edge
// management on the Graph type defined in types.go. Adjacency is stored
// as a nested map, adjacency[from][to][edgeID] = struct{}{}, allowing
// constant-time existence, insertion, and deletion of edges. Directed
// graphs additionally maintain a mirrored incoming index so cascade
// removal and predecessor queries stay proportional to degree.

package core

import (
	"bytes"
	"iter"
	"slices"

	"github.com/katalvlaran/graphio/metrics"
)

// AddNode inserts a new node carrying a copy of payload and returns its
// identifier. Never fails; identifier exhaustion panics with
// ErrAllocatorExhausted. Complexity: O(1) amortized.
func (g *Graph) AddNode(payload []byte) NodeID {
	g.counters.Inc(metrics.OpAddNode)

	id := NodeID(g.nodeIDs.allocate())
	g.nodes[id] = &Node{ID: id, Payload: bytes.Clone(payload)}
	if g.log != nil {
		g.log.Debug("add node", "node", uint32(id), "payload_len", len(payload))
	}
	return id
}

// PutNode inserts a node under a caller-chosen identifier, bumping the
// allocator watermark past it. Intended for bulk load and deserialization.
// Returns ErrIDCollision if the id is already live. Complexity: O(1).
func (g *Graph) PutNode(id NodeID, payload []byte) error {
	g.counters.Inc(metrics.OpAddNode)

	if _, exists := g.nodes[id]; exists {
		return ErrIDCollision
	}
	g.nodeIDs.reserve(uint32(id))
	g.nodes[id] = &Node{ID: id, Payload: bytes.Clone(payload)}
	return nil
}

// HasNode reports whether node id exists. Complexity: O(1).
func (g *Graph) HasNode(id NodeID) bool {
	g.counters.Inc(metrics.OpNodeLookup)
	_, exists := g.nodes[id]
	return exists
}

// Node returns the stored node for id, or ErrNodeNotFound.
// The returned value is the live record; treat it as read-only and use
// SetNodePayload to mutate. Complexity: O(1).
func (g *Graph) Node(id NodeID) (*Node, error) {
	g.counters.Inc(metrics.OpNodeLookup)
	n, exists := g.nodes[id]
	if !exists {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// SetNodePayload replaces the payload of node id with a copy of payload.
// The identifier is unchanged. Returns ErrNodeNotFound if absent.
func (g *Graph) SetNodePayload(id NodeID, payload []byte) error {
	g.counters.Inc(metrics.OpNodeLookup)
	n, exists := g.nodes[id]
	if !exists {
		return ErrNodeNotFound
	}
	n.Payload = bytes.Clone(payload)
	return nil
}

// RemoveNode deletes node id and cascades removal of every incident edge,
// releasing their identifiers. Returns ErrNodeNotFound if absent.
// Complexity: O(deg(id)).
func (g *Graph) RemoveNode(id NodeID) error {
	g.counters.Inc(metrics.OpRemoveNode)

	if _, exists := g.nodes[id]; !exists {
		return ErrNodeNotFound
	}

	// Collect incident edge ids. On undirected graphs the mirrored outgoing
	// index covers everything; directed graphs also contribute incoming.
	// A directed self-loop appears in both indices, hence the set.
	doomed := make(map[EdgeID]struct{})
	for _, set := range g.outgoing[id] {
		for eid := range set {
			doomed[eid] = struct{}{}
		}
	}
	if g.directed {
		for _, set := range g.incoming[id] {
			for eid := range set {
				doomed[eid] = struct{}{}
			}
		}
	}

	for eid := range doomed {
		e := g.edges[eid]
		g.detach(e)
		delete(g.edges, eid)
		g.edgeIDs.release(uint32(eid))
	}

	delete(g.outgoing, id)
	if g.directed {
		delete(g.incoming, id)
	}
	delete(g.nodes, id)
	g.nodeIDs.release(uint32(id))

	if g.log != nil {
		g.log.Debug("remove node", "node", uint32(id), "cascaded_edges", len(doomed))
	}
	return nil
}

// AddEdge creates a new edge from→to carrying a copy of payload and
// returns its identifier.
//
// Returns ErrNodeNotFound if either endpoint is absent, ErrDuplicateEdge
// if the graph is simple and an edge between the endpoints already exists
// (ordered pair when directed, unordered otherwise). Self-loops are always
// permitted. Complexity: O(1).
func (g *Graph) AddEdge(from, to NodeID, payload []byte) (EdgeID, error) {
	g.counters.Inc(metrics.OpAddEdge)

	if _, exists := g.nodes[from]; !exists {
		return 0, ErrNodeNotFound
	}
	if _, exists := g.nodes[to]; !exists {
		return 0, ErrNodeNotFound
	}
	if g.simple && g.pairExists(from, to) {
		return 0, ErrDuplicateEdge
	}

	id := EdgeID(g.edgeIDs.allocate())
	e := &Edge{ID: id, From: from, To: to, Payload: bytes.Clone(payload)}
	g.edges[id] = e
	g.attach(e)

	if g.log != nil {
		g.log.Debug("add edge", "edge", uint32(id), "from", uint32(from), "to", uint32(to))
	}
	return id, nil
}

// PutEdge inserts an edge under a caller-chosen identifier, bumping the
// allocator watermark past it. Intended for bulk load and deserialization.
// Returns ErrIDCollision if the id is live, ErrNodeNotFound if an endpoint
// is absent, ErrDuplicateEdge under the simple-graph policy.
func (g *Graph) PutEdge(id EdgeID, from, to NodeID, payload []byte) error {
	g.counters.Inc(metrics.OpAddEdge)

	if _, exists := g.edges[id]; exists {
		return ErrIDCollision
	}
	if _, exists := g.nodes[from]; !exists {
		return ErrNodeNotFound
	}
	if _, exists := g.nodes[to]; !exists {
		return ErrNodeNotFound
	}
	if g.simple && g.pairExists(from, to) {
		return ErrDuplicateEdge
	}

	g.edgeIDs.reserve(uint32(id))
	e := &Edge{ID: id, From: from, To: to, Payload: bytes.Clone(payload)}
	g.edges[id] = e
	g.attach(e)
	return nil
}

// HasEdge reports whether edge id exists. Complexity: O(1).
func (g *Graph) HasEdge(id EdgeID) bool {
	g.counters.Inc(metrics.OpEdgeLookup)
	_, exists := g.edges[id]
	return exists
}

// HasEdgeBetween reports whether at least one edge joins from and to
// (ordered on directed graphs). Complexity: O(1).
func (g *Graph) HasEdgeBetween(from, to NodeID) bool {
	g.counters.Inc(metrics.OpEdgeLookup)
	return g.pairExists(from, to)
}

// Edge returns the stored edge for id, or ErrEdgeNotFound.
// The returned value is the live record; treat it as read-only and use
// SetEdgePayload to mutate. Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	g.counters.Inc(metrics.OpEdgeLookup)
	e, exists := g.edges[id]
	if !exists {
		return nil, ErrEdgeNotFound
	}
	return e, nil
}

// SetEdgePayload replaces the payload of edge id with a copy of payload.
// The identifier and endpoints are unchanged. Returns ErrEdgeNotFound.
func (g *Graph) SetEdgePayload(id EdgeID, payload []byte) error {
	g.counters.Inc(metrics.OpEdgeLookup)
	e, exists := g.edges[id]
	if !exists {
		return ErrEdgeNotFound
	}
	e.Payload = bytes.Clone(payload)
	return nil
}

// RemoveEdge deletes edge id, detaching it from both endpoints and
// releasing the identifier. Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) RemoveEdge(id EdgeID) error {
	g.counters.Inc(metrics.OpRemoveEdge)

	e, exists := g.edges[id]
	if !exists {
		return ErrEdgeNotFound
	}
	g.detach(e)
	delete(g.edges, id)
	g.edgeIDs.release(uint32(id))

	if g.log != nil {
		g.log.Debug("remove edge", "edge", uint32(id))
	}
	return nil
}

// Neighbors returns a lazy, restartable sequence of the nodes adjacent to
// id, in ascending NodeID order. The sequence is a snapshot of the
// adjacency index at call time: later mutations do not affect it.
// Directed graphs yield successors only; a self-loop yields id itself
// once. Returns ErrNodeNotFound if id is absent.
// Complexity: O(d log d) to snapshot, O(1) per yielded element.
func (g *Graph) Neighbors(id NodeID) (iter.Seq[NodeID], error) {
	g.counters.Inc(metrics.OpNeighbors)

	if _, exists := g.nodes[id]; !exists {
		return nil, ErrNodeNotFound
	}
	ids := sortedKeys(g.outgoing[id])
	return func(yield func(NodeID) bool) {
		for _, v := range ids {
			if !yield(v) {
				return
			}
		}
	}, nil
}

// Predecessors returns the nodes with an edge into id, ascending.
// On undirected graphs this equals the neighbor set. Returns
// ErrNodeNotFound if id is absent.
func (g *Graph) Predecessors(id NodeID) ([]NodeID, error) {
	g.counters.Inc(metrics.OpNeighbors)

	if _, exists := g.nodes[id]; !exists {
		return nil, ErrNodeNotFound
	}
	if !g.directed {
		return sortedKeys(g.outgoing[id]), nil
	}
	return sortedKeys(g.incoming[id]), nil
}

// Degree returns the in- and out-degree of id. On undirected graphs both
// values equal the incident-edge count (self-loops counted once).
// Returns ErrNodeNotFound if id is absent.
func (g *Graph) Degree(id NodeID) (in, out int, err error) {
	if _, exists := g.nodes[id]; !exists {
		return 0, 0, ErrNodeNotFound
	}
	for _, set := range g.outgoing[id] {
		out += len(set)
	}
	if !g.directed {
		return out, out, nil
	}
	for _, set := range g.incoming[id] {
		in += len(set)
	}
	return in, out, nil
}

// Nodes returns all nodes in ascending NodeID order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	slices.SortFunc(out, func(a, b *Node) int { return cmpID(a.ID, b.ID) })
	return out
}

// Edges returns all edges in ascending EdgeID order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Edge) int { return cmpID(a.ID, b.ID) })
	return out
}

// NodeCount returns the number of live nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of live edges. O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports the construction-time orientation flag.
func (g *Graph) Directed() bool { return g.directed }

// Simple reports the construction-time duplicate-edge policy.
func (g *Graph) Simple() bool { return g.simple }

// Counters returns the attached metrics context, or nil.
func (g *Graph) Counters() *metrics.Counters { return g.counters }

// Stats returns a snapshot of configuration flags and catalog sizes.
// Complexity: O(1).
func (g *Graph) Stats() GraphStats {
	return GraphStats{
		Directed:     g.directed,
		Simple:       g.simple,
		NodeCount:    len(g.nodes),
		EdgeCount:    len(g.edges),
		NextNodeID:   NodeID(g.nodeIDs.next),
		NextEdgeID:   EdgeID(g.edgeIDs.next),
		FreedNodeIDs: g.nodeIDs.freed,
		FreedEdgeIDs: g.edgeIDs.freed,
	}
}

// Clear resets the graph to an empty state, preserving flags and
// collaborators. The identifier watermarks restart at zero: handles from
// before Clear must not be used against the cleared store.
func (g *Graph) Clear() {
	g.nodes = make(map[NodeID]*Node)
	g.edges = make(map[EdgeID]*Edge)
	g.outgoing = make(adjacency)
	if g.directed {
		g.incoming = make(adjacency)
	}
	g.nodeIDs = idAllocator{}
	g.edgeIDs = idAllocator{}
}

// Internal helpers:
////////////////////

// pairExists reports a live edge between from and to. The undirected
// mirror makes the unordered check fall out of the same lookup.
func (g *Graph) pairExists(from, to NodeID) bool {
	set, ok := g.outgoing[from][to]
	return ok && len(set) > 0
}

// attach records e in the adjacency indices.
func (g *Graph) attach(e *Edge) {
	ensureBucket(g.outgoing, e.From, e.To)[e.ID] = struct{}{}
	if g.directed {
		ensureBucket(g.incoming, e.To, e.From)[e.ID] = struct{}{}
	} else if e.From != e.To {
		ensureBucket(g.outgoing, e.To, e.From)[e.ID] = struct{}{}
	}
}

// detach removes e from the adjacency indices, pruning empty buckets.
func (g *Graph) detach(e *Edge) {
	dropBucket(g.outgoing, e.From, e.To, e.ID)
	if g.directed {
		dropBucket(g.incoming, e.To, e.From, e.ID)
	} else if e.From != e.To {
		dropBucket(g.outgoing, e.To, e.From, e.ID)
	}
}

// ensureBucket returns index[a][b], creating the nesting as needed.
func ensureBucket(index adjacency, a, b NodeID) map[EdgeID]struct{} {
	inner, ok := index[a]
	if !ok {
		inner = make(map[NodeID]map[EdgeID]struct{})
		index[a] = inner
	}
	set, ok := inner[b]
	if !ok {
		set = make(map[EdgeID]struct{})
		inner[b] = set
	}
	return set
}

// dropBucket deletes id from index[a][b] and prunes the bucket when empty.
func dropBucket(index adjacency, a, b NodeID, id EdgeID) {
	set := index[a][b]
	if set == nil {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(index[a], b)
	}
}

// sortedKeys returns the outer keys of one adjacency row, ascending.
func sortedKeys(row map[NodeID]map[EdgeID]struct{}) []NodeID {
	ids := make([]NodeID, 0, len(row))
	for v := range row {
		ids = append(ids, v)
	}
	slices.Sort(ids)
	return ids
}

// cmpID orders 32-bit handles for slices.SortFunc.
func cmpID[T ~uint32](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
