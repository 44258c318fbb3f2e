// Package core provides an in-memory graph store with stable integer
// handles and a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Simple vs. multigraph duplicate-edge policy (WithSimple)
//   - Opaque byte payloads on nodes and edges
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to][edgeID] = struct{}{}
//   - Monotonic, collision-free NodeID/EdgeID allocation
//   - Optional per-instance operation counters (WithCounters)
//   - Optional structured diagnostics (WithLogger)
//
// Identity:
//
// NodeID and EdgeID are opaque 32-bit handles, unique within one Graph.
// Identifiers are issued monotonically and are never reissued during the
// Graph's lifetime, even after the node or edge they named is removed, so
// handles held by callers stay stable. Exhausting an identifier space is a
// process-fatal condition: allocation panics with ErrAllocatorExhausted
// rather than continuing with a corrupted id space.
//
// Referential integrity:
//
// After every operation, each adjacency entry names a live edge and both
// endpoints of each live edge are live nodes. RemoveNode cascades: every
// edge incident to the removed node is removed with it.
//
// Concurrency:
//
// A Graph is owned by one logical owner at a time and performs no internal
// locking. Callers that share a Graph across goroutines must supply their
// own mutual exclusion. NodeID and EdgeID values are plain data and may be
// copied freely.
package core
