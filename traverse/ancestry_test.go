package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphio/core"
	"github.com/katalvlaran/graphio/traverse"
)

func TestRootsAndLeaves(t *testing.T) {
	g, ids := buildTree(t)

	roots, err := traverse.Roots(g)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{ids[0]}, roots)

	leaves, err := traverse.Leaves(g)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{ids[1], ids[4]}, leaves)
}

func TestRoots_MultipleSources(t *testing.T) {
	g := core.New(core.WithDirected(true))
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	sink := g.AddNode(nil)
	_, err := g.AddEdge(a, sink, nil)
	require.NoError(t, err)
	_, err = g.AddEdge(b, sink, nil)
	require.NoError(t, err)

	roots, err := traverse.Roots(g)
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{a, b}, roots)
}

func TestAncestors(t *testing.T) {
	g, ids := buildTree(t)

	chain, err := traverse.Ancestors(g, ids[4])
	require.NoError(t, err)
	require.Equal(t, []core.NodeID{ids[0], ids[2], ids[3]}, chain)

	chain, err = traverse.Ancestors(g, ids[0])
	require.NoError(t, err)
	require.Empty(t, chain)

	_, err = traverse.Ancestors(g, 99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAncestors_CycleBounded(t *testing.T) {
	g := core.New(core.WithDirected(true))
	a := g.AddNode(nil)
	b := g.AddNode(nil)
	c := g.AddNode(nil)
	for _, pair := range [][2]core.NodeID{{a, b}, {b, c}, {c, a}} {
		_, err := g.AddEdge(pair[0], pair[1], nil)
		require.NoError(t, err)
	}

	_, err := traverse.Ancestors(g, a)
	require.ErrorIs(t, err, traverse.ErrAncestryDepth)
}

func TestOnPath(t *testing.T) {
	g, ids := buildTree(t)

	for _, tc := range []struct {
		from, to core.NodeID
		want     bool
	}{
		{ids[4], ids[0], true},
		{ids[4], ids[3], true},
		{ids[1], ids[0], true},
		{ids[0], ids[0], true},
		{ids[1], ids[2], false},
		{ids[0], ids[4], false}, // ancestry runs upward only
	} {
		got, err := traverse.OnPath(g, tc.from, tc.to)
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "OnPath(%d,%d)", tc.from, tc.to)
	}

	_, err := traverse.OnPath(g, ids[0], 99)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAncestry_RequiresDirected(t *testing.T) {
	g := core.New()
	v := g.AddNode(nil)

	_, err := traverse.Roots(g)
	require.ErrorIs(t, err, traverse.ErrUndirected)
	_, err = traverse.Leaves(g)
	require.ErrorIs(t, err, traverse.ErrUndirected)
	_, err = traverse.Ancestors(g, v)
	require.ErrorIs(t, err, traverse.ErrUndirected)
	_, err = traverse.OnPath(g, v, v)
	require.ErrorIs(t, err, traverse.ErrUndirected)
}
