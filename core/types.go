// This file declares NodeID, EdgeID, Node, Edge, Graph, Option,
// sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrNodeNotFound       - requested node does not exist.
//	ErrEdgeNotFound       - requested edge does not exist.
//	ErrDuplicateEdge      - parallel edge rejected on a simple graph.
//	ErrIDCollision        - externally supplied identifier already in use.
//	ErrAllocatorExhausted - identifier space exhausted (panic, never returned).

package core

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/graphio/metrics"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateEdge indicates a parallel edge was attempted on a graph
	// constructed with WithSimple.
	ErrDuplicateEdge = errors.New("core: duplicate edge between endpoints")

	// ErrIDCollision indicates a bulk-load identifier is already in use.
	ErrIDCollision = errors.New("core: identifier already in use")

	// ErrAllocatorExhausted indicates the 32-bit identifier space is spent.
	// It is raised via panic: continuing would break identifier uniqueness.
	ErrAllocatorExhausted = errors.New("core: identifier space exhausted")
)

// NodeID is an opaque handle naming one node within a Graph.
type NodeID uint32

// EdgeID is an opaque handle naming one edge within a Graph.
type EdgeID uint32

// Node is a vertex of the graph.
//
// Payload is an opaque caller-supplied blob; the Graph copies it on insert
// and treats it as uninterpreted bytes. Mutate it only via SetNodePayload.
type Node struct {
	// ID is the unique identifier of this node.
	ID NodeID

	// Payload is the caller-supplied byte blob attached to this node.
	Payload []byte
}

// Edge is a connection between two nodes.
//
// From and To may be equal (self-loop). On undirected graphs the ordering
// of From/To records insertion order only and carries no semantics.
type Edge struct {
	// ID is the unique identifier of this edge.
	ID EdgeID

	// From is the source node.
	From NodeID

	// To is the target node.
	To NodeID

	// Payload is the caller-supplied byte blob attached to this edge.
	Payload []byte
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithDirected sets edge orientation for the whole graph
// (true = directed, false = undirected). Default: undirected.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithSimple rejects parallel edges between the same endpoint pair with
// ErrDuplicateEdge. Default: multigraph (parallel edges permitted).
func WithSimple() Option {
	return func(g *Graph) { g.simple = true }
}

// WithCounters attaches an operation-counter context to the graph.
// A nil Counters is equivalent to no instrumentation.
func WithCounters(c *metrics.Counters) Option {
	return func(g *Graph) { g.counters = c }
}

// WithLogger attaches a structured logger for debug-level mutation
// diagnostics. Log content is not part of the functional contract.
func WithLogger(l *slog.Logger) Option {
	return func(g *Graph) { g.log = l }
}

// adjacency is a nested edge index: adjacency[a][b] holds the ids of edges
// joining a to b. Undirected edges appear under both endpoint orders.
type adjacency map[NodeID]map[NodeID]map[EdgeID]struct{}

// Graph is the owning aggregate of nodes, edges, and adjacency indices.
//
// Construction-time flags (directed, simple) are immutable thereafter.
// The zero Graph is not usable; call New.
type Graph struct {
	// Configuration flags
	directed bool // edge orientation
	simple   bool // reject parallel edges

	// Identifier allocators, one per id space
	nodeIDs idAllocator
	edgeIDs idAllocator

	// Catalogs
	nodes map[NodeID]*Node
	edges map[EdgeID]*Edge

	// outgoing[from][to] holds edge ids leaving from. On undirected graphs
	// edges are mirrored, so outgoing[v] covers everything incident to v.
	outgoing adjacency
	// incoming[to][from] holds edge ids entering to; directed graphs only.
	incoming adjacency

	// Optional collaborators
	counters *metrics.Counters
	log      *slog.Logger
}

// GraphStats is a read-only snapshot of configuration and catalog sizes.
type GraphStats struct {
	Directed  bool
	Simple    bool
	NodeCount int
	EdgeCount int

	// NextNodeID / NextEdgeID are the identifiers the next AddNode/AddEdge
	// would receive.
	NextNodeID NodeID
	NextEdgeID EdgeID

	// FreedNodeIDs / FreedEdgeIDs count identifiers released by removal.
	// Released identifiers are not reissued.
	FreedNodeIDs uint32
	FreedEdgeIDs uint32
}

// New creates an empty Graph with the given options.
// By default the Graph is undirected and permits parallel edges.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:    make(map[NodeID]*Node),
		edges:    make(map[EdgeID]*Edge),
		outgoing: make(adjacency),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.directed {
		g.incoming = make(adjacency)
	}
	return g
}
