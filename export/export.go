package export

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/graphio/core"
)

// label renders a payload as a display label, falling back to
// prefix+ordinal when the payload is empty or not printable text.
func label(payload []byte, prefix string, ordinal int) string {
	if printable(payload) {
		return string(payload)
	}
	return fmt.Sprintf("%s%d", prefix, ordinal)
}

// printable reports whether b is non-empty, valid UTF-8, and free of
// control characters.
func printable(b []byte) bool {
	if len(b) == 0 || !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// denseIndex maps every node id to its 0-based position in ascending
// order, mirroring the remapping both writers perform.
func denseIndex(nodes []*core.Node) map[core.NodeID]int {
	idx := make(map[core.NodeID]int, len(nodes))
	for i, n := range nodes {
		idx[n.ID] = i
	}
	return idx
}
