// Package metrics provides operation counters for graphio stores.
//
// A Counters value is an explicit context object: it is created by the
// caller and handed to a core.Graph via core.WithCounters, so counters
// never leak between unrelated store instances. Every mutating and lookup
// operation on an instrumented graph increments the cell for its Op kind.
//
// Counters are monotonically increasing until Reset, safe for concurrent
// readers, and readable at any time via Snapshot without touching the
// graph itself. A nil *Counters is a valid no-op sink: every method is
// nil-receiver safe, so an uninstrumented graph pays a single pointer
// comparison per operation.
package metrics
