// File: ancestry.go
// Role: Hierarchy-style queries over directed graphs: roots, leaves,
// ancestor chains, and ancestor-path membership.

package traverse

import "github.com/katalvlaran/graphio/core"

// Roots returns the nodes with no incoming edges, ascending.
// Returns ErrUndirected for undirected graphs. Complexity: O(V).
func Roots(g *core.Graph) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	var out []core.NodeID
	for _, n := range g.Nodes() {
		in, _, err := g.Degree(n.ID)
		if err != nil {
			return nil, err
		}
		if in == 0 {
			out = append(out, n.ID)
		}
	}
	return out, nil
}

// Leaves returns the nodes with no outgoing edges, ascending.
// Returns ErrUndirected for undirected graphs. Complexity: O(V).
func Leaves(g *core.Graph) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	var out []core.NodeID
	for _, n := range g.Nodes() {
		_, deg, err := g.Degree(n.ID)
		if err != nil {
			return nil, err
		}
		if deg == 0 {
			out = append(out, n.ID)
		}
	}
	return out, nil
}

// Ancestors returns the predecessor chain of id, root first, excluding id
// itself. Where a node has several predecessors the chain follows the
// smallest NodeID. Returns core.ErrNodeNotFound for an absent node and
// ErrAncestryDepth when the chain exceeds the node count (cycle).
// Complexity: O(chain length).
func Ancestors(g *core.Graph, id core.NodeID) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirected
	}
	if !g.HasNode(id) {
		return nil, core.ErrNodeNotFound
	}

	var chain []core.NodeID
	cur := id
	for ttl := g.NodeCount(); ; ttl-- {
		if ttl == 0 {
			return nil, ErrAncestryDepth
		}
		preds, err := g.Predecessors(cur)
		if err != nil {
			return nil, err
		}
		if len(preds) == 0 {
			break
		}
		cur = preds[0]
		chain = append(chain, cur)
	}

	// Walked child→root; report root→child like a lineage.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}

// OnPath reports whether to lies on the ancestor chain of from
// (a node is on its own path). Returns core.ErrNodeNotFound when either
// node is absent, ErrUndirected for undirected graphs.
func OnPath(g *core.Graph, from, to core.NodeID) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.Directed() {
		return false, ErrUndirected
	}
	if !g.HasNode(from) || !g.HasNode(to) {
		return false, core.ErrNodeNotFound
	}
	if from == to {
		return true, nil
	}
	chain, err := Ancestors(g, from)
	if err != nil {
		return false, err
	}
	for _, a := range chain {
		if a == to {
			return true, nil
		}
	}
	return false, nil
}
