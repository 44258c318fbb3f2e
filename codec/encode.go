// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/graphio/core"
)

// Encode writes g to w in the format documented in doc.go. The graph is
// read, never mutated; records are emitted in ascending identifier order
// so structurally equal graphs serialize identically.
//
// Returns ErrNilGraph, ErrPayloadTooLarge, or a write failure wrapped
// with ErrIO. Complexity: O(V log V + E log E).
func Encode(g *core.Graph, w io.Writer) error {
	if g == nil {
		return ErrNilGraph
	}

	nodes := g.Nodes()
	edges := g.Edges()

	var hdr [headerLen]byte
	copy(hdr[0:4], magic)
	binary.BigEndian.PutUint16(hdr[4:6], Version)
	var flags byte
	if g.Directed() {
		flags |= flagDirected
	}
	if g.Simple() {
		flags |= flagSimple
	}
	hdr[6] = flags
	binary.BigEndian.PutUint32(hdr[7:11], uint32(len(nodes)))
	binary.BigEndian.PutUint32(hdr[11:15], uint32(len(edges)))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("%w: header: %w", ErrIO, err)
	}

	for _, n := range nodes {
		if err := writeU32(w, uint32(n.ID)); err != nil {
			return err
		}
		if err := writeBlob(w, n.Payload); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if err := writeU32(w, uint32(e.ID)); err != nil {
			return err
		}
		if err := writeU32(w, uint32(e.From)); err != nil {
			return err
		}
		if err := writeU32(w, uint32(e.To)); err != nil {
			return err
		}
		if err := writeBlob(w, e.Payload); err != nil {
			return err
		}
	}
	return nil
}

// writeU32 emits one big-endian 32-bit integer.
func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// writeBlob emits a length-prefixed payload.
func writeBlob(w io.Writer, b []byte) error {
	if len(b) > MaxPayloadLen {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(b))
	}
	if err := writeU32(w, uint32(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
