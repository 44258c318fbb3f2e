// Package export renders a core.Graph into common text graph dialects.
//
// Two writers are provided: DOT (Graphviz) and GML. Both remap node
// identifiers densely to 0..n-1 in ascending NodeID order, so the output
// is stable across runs and independent of identifier gaps left by
// removals. Node and edge labels come from the payload when it is
// printable UTF-8; otherwise a positional fallback label is used.
//
// The writers only read the graph; any failure of the destination
// io.Writer is returned to the caller unmodified.
package export
