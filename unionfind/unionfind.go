// Package unionfind provides a disjoint-set structure over core.NodeID,
// answering connectivity queries without walking the graph.
//
// A DSU is populated either element by element (Add/Union) or in one shot
// from a graph via FromGraph, which unites the endpoints of every edge
// and therefore yields the connected components (weakly connected, for
// directed graphs).
package unionfind

import (
	"errors"
	"slices"

	"github.com/katalvlaran/graphio/core"
)

// ErrUnknownElement indicates a query referenced an element never added.
var ErrUnknownElement = errors.New("unionfind: element not present")

// DSU is a disjoint-set forest with path compression.
// The zero value is not usable; call New or FromGraph.
type DSU struct {
	parent map[core.NodeID]core.NodeID
}

// New returns an empty DSU.
func New() *DSU {
	return &DSU{parent: make(map[core.NodeID]core.NodeID)}
}

// FromGraph seeds a DSU with every node of g and unites the endpoints of
// every edge. Complexity: O(V + E α(V)).
func FromGraph(g *core.Graph) *DSU {
	d := New()
	for _, n := range g.Nodes() {
		d.Add(n.ID)
	}
	for _, e := range g.Edges() {
		// Endpoints are guaranteed present; Union cannot fail here.
		_ = d.Union(e.From, e.To)
	}
	return d
}

// Len returns the number of tracked elements.
func (d *DSU) Len() int {
	return len(d.parent)
}

// Add registers x as a singleton set. Adding a known element is a no-op,
// so membership is never reset by a repeated Add.
func (d *DSU) Add(x core.NodeID) {
	if _, ok := d.parent[x]; !ok {
		d.parent[x] = x
	}
}

// Find returns the representative of x's set, compressing the walked
// path. Returns ErrUnknownElement if x was never added.
func (d *DSU) Find(x core.NodeID) (core.NodeID, error) {
	root := x
	for {
		p, ok := d.parent[root]
		if !ok {
			return 0, ErrUnknownElement
		}
		if p == root {
			break
		}
		root = p
	}
	for x != root {
		d.parent[x], x = root, d.parent[x]
	}
	return root, nil
}

// Union merges the sets containing a and b, registering either element
// on first sight. The surviving representative is the smaller of the two
// roots, keeping results deterministic.
func (d *DSU) Union(a, b core.NodeID) error {
	d.Add(a)
	d.Add(b)
	ra, err := d.Find(a)
	if err != nil {
		return err
	}
	rb, err := d.Find(b)
	if err != nil {
		return err
	}
	if ra == rb {
		return nil
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	return nil
}

// Same reports whether a and b belong to one set.
func (d *DSU) Same(a, b core.NodeID) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	return ra == rb, nil
}

// Sets returns every set keyed by its representative, members ascending.
// Complexity: O(n α(n) + n log n).
func (d *DSU) Sets() map[core.NodeID][]core.NodeID {
	out := make(map[core.NodeID][]core.NodeID)
	for x := range d.parent {
		root, _ := d.Find(x)
		out[root] = append(out[root], x)
	}
	for root := range out {
		slices.Sort(out[root])
	}
	return out
}
