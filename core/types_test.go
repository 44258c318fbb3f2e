// Package core_test: construction-time configuration contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphio/core"
	"github.com/katalvlaran/graphio/metrics"
)

func TestNew_Defaults(t *testing.T) {
	g := core.New()
	require.False(t, g.Directed())
	require.False(t, g.Simple())
	require.Nil(t, g.Counters())
	require.Zero(t, g.NodeCount())
	require.Zero(t, g.EdgeCount())
}

func TestNew_Options(t *testing.T) {
	c := metrics.New()
	g := core.New(core.WithDirected(true), core.WithSimple(), core.WithCounters(c))
	require.True(t, g.Directed())
	require.True(t, g.Simple())
	require.Same(t, c, g.Counters())
}

func TestNew_OptionsApplyInOrder(t *testing.T) {
	g := core.New(core.WithDirected(true), core.WithDirected(false))
	require.False(t, g.Directed())
}
