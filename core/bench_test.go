package core_test

import (
	"testing"

	"github.com/katalvlaran/graphio/core"
)

// benchGraphSize bounds the node pool used by edge benchmarks.
const benchGraphSize = 1024

func BenchmarkAddNode(b *testing.B) {
	g := core.New()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddNode(nil)
	}
}

func BenchmarkAddEdge(b *testing.B) {
	g := core.New()
	ids := make([]core.NodeID, benchGraphSize)
	for i := range ids {
		ids[i] = g.AddNode(nil)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(ids[i%benchGraphSize], ids[(i+1)%benchGraphSize], nil)
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g := core.New()
	hub := g.AddNode(nil)
	for i := 0; i < 64; i++ {
		other := g.AddNode(nil)
		_, _ = g.AddEdge(hub, other, nil)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, _ := g.Neighbors(hub)
		for range seq {
		}
	}
}
