// Package export_test pins the exact output of both writers: downstream
// tooling parses these dialects, so the text is part of the contract.

package export_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphio/core"
	"github.com/katalvlaran/graphio/export"
)

// sample builds: a("start") -> b("end"), plus payload-less c with an edge
// from b. Node ids carry a gap (a removed node) to prove dense remapping.
func sample(t *testing.T, directed bool) *core.Graph {
	t.Helper()
	g := core.New(core.WithDirected(directed))
	a := g.AddNode([]byte("start"))
	gap := g.AddNode(nil)
	b := g.AddNode([]byte("end"))
	c := g.AddNode([]byte{0xFF, 0xFE}) // not printable
	require.NoError(t, g.RemoveNode(gap))

	_, err := g.AddEdge(a, b, []byte("hop"))
	require.NoError(t, err)
	_, err = g.AddEdge(b, c, nil)
	require.NoError(t, err)
	return g
}

func TestDOT_Directed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.DOT(sample(t, true), &buf))

	want := `digraph {
  0 [label="start"]
  1 [label="end"]
  2 [label="n2"]
  0 -> 1 [label="hop"]
  1 -> 2 [label="e1"]
}
`
	require.Equal(t, want, buf.String())
}

func TestDOT_Undirected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.DOT(sample(t, false), &buf))
	require.Contains(t, buf.String(), "graph {")
	require.Contains(t, buf.String(), "0 -- 1")
}

func TestGML_Directed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.GML(sample(t, true), &buf))

	want := `graph [
  directed 1
  node [
    id 0
    label "start"
  ]
  node [
    id 1
    label "end"
  ]
  node [
    id 2
    label "n2"
  ]
  edge [
    source 0
    target 1
    label "hop"
  ]
  edge [
    source 1
    target 2
    label "e1"
  ]
]
`
	require.Equal(t, want, buf.String())
}

func TestGML_UndirectedFlag(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.GML(sample(t, false), &buf))
	require.Contains(t, buf.String(), "directed 0")
}

// failAfter fails on the (n+1)th write.
type failAfter struct {
	n   int
	err error
}

func (w *failAfter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

func TestWriters_PropagateWriteFailure(t *testing.T) {
	g := sample(t, true)
	cause := errors.New("pipe closed")

	require.ErrorIs(t, export.DOT(g, &failAfter{n: 0, err: cause}), cause)
	require.ErrorIs(t, export.DOT(g, &failAfter{n: 2, err: cause}), cause)
	require.ErrorIs(t, export.GML(g, &failAfter{n: 1, err: cause}), cause)
}

func TestDOT_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.DOT(core.New(), &buf))
	require.Equal(t, "graph {\n}\n", buf.String())
}
