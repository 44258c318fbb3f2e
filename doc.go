// Package graphio is a compact in-memory graph store with a stable
// binary wire format.
//
// 🚀 What is graphio?
//
//	A small library for building graphs, shipping them over the wire,
//	and getting them back byte-for-byte:
//		• Core store: nodes & edges with opaque payloads, u32 handles
//		• Codec: deterministic binary encode/decode over io.Writer/io.Reader
//		• Traversal: BFS with depth limits, filters and visit hooks
//		• Ancestry: roots, leaves, ancestor chains on directed graphs
//		• Export: DOT and GML writers for external tooling
//		• Union-find: connected components without walking the graph
//		• Metrics: optional per-operation counters, no globals
//
// ✨ Why choose graphio?
//
//   - Predictable identity – identifiers are never reissued after removal
//   - Deterministic output – sorted iteration, byte-stable encoding
//   - Single-writer model – no hidden locks, callers own synchronization
//   - Extensible traversal – OnVisit / Filter hooks for custom logic
//
// Everything is organized under focused subpackages:
//
//	core/      — Graph, Node, Edge types, identifier allocation & mutation
//	codec/     — binary serializer & deserializer
//	traverse/  — BFS and ancestry queries
//	export/    — DOT & GML text writers
//	unionfind/ — disjoint-set connectivity
//	metrics/   — operation counters
//	cmd/       — the graphio CLI (info, export, components)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	four nodes, four edges, one component.
//
//	go get github.com/katalvlaran/graphio
package graphio
