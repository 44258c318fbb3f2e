package export

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphio/core"
)

// DOT writes g to w in Graphviz dot syntax. Directed graphs produce a
// digraph with "->" edges, undirected graphs a graph with "--" edges.
// Complexity: O(V log V + E log E).
func DOT(g *core.Graph, w io.Writer) error {
	keyword, op := "graph", "--"
	if g.Directed() {
		keyword, op = "digraph", "->"
	}
	if _, err := fmt.Fprintf(w, "%s {\n", keyword); err != nil {
		return err
	}

	nodes := g.Nodes()
	idx := denseIndex(nodes)
	for i, n := range nodes {
		if _, err := fmt.Fprintf(w, "  %d [label=%q]\n", i, label(n.Payload, "n", i)); err != nil {
			return err
		}
	}
	for i, e := range g.Edges() {
		_, err := fmt.Fprintf(w, "  %d %s %d [label=%q]\n",
			idx[e.From], op, idx[e.To], label(e.Payload, "e", i))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
