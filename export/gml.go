package export

import (
	"fmt"
	"io"

	"github.com/katalvlaran/graphio/core"
)

// GML writes g to w in Graph Modelling Language.
// Complexity: O(V log V + E log E).
func GML(g *core.Graph, w io.Writer) error {
	directed := 0
	if g.Directed() {
		directed = 1
	}
	if _, err := fmt.Fprintf(w, "graph [\n  directed %d\n", directed); err != nil {
		return err
	}

	nodes := g.Nodes()
	idx := denseIndex(nodes)
	for i, n := range nodes {
		_, err := fmt.Fprintf(w, "  node [\n    id %d\n    label %q\n  ]\n",
			i, label(n.Payload, "n", i))
		if err != nil {
			return err
		}
	}
	for i, e := range g.Edges() {
		_, err := fmt.Fprintf(w, "  edge [\n    source %d\n    target %d\n    label %q\n  ]\n",
			idx[e.From], idx[e.To], label(e.Payload, "e", i))
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "]")
	return err
}
