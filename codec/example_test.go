package codec_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/graphio/codec"
	"github.com/katalvlaran/graphio/core"
)

// Example round-trips a small graph through the binary format.
func Example() {
	g := core.New(core.WithDirected(true))
	a := g.AddNode([]byte("start"))
	b := g.AddNode([]byte("finish"))
	g.AddEdge(a, b, []byte("hop"))

	var buf bytes.Buffer
	if err := codec.Encode(g, &buf); err != nil {
		fmt.Println("encode:", err)
		return
	}

	out, err := codec.Decode(&buf)
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	fmt.Println("nodes:", out.NodeCount())
	fmt.Println("edges:", out.EdgeCount())
	fmt.Println("equal:", g.Equal(out))
	// Output:
	// nodes: 2
	// edges: 1
	// equal: true
}
