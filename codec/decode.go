// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/graphio/core"
)

// Decode reads one serialized graph from r and reconstructs a validated
// core.Graph, applying opts (e.g. core.WithCounters) on top of the flags
// recovered from the header.
//
// Returns ErrUnsupportedVersion on a format tag or version mismatch,
// ErrCorruptData when the stream is internally inconsistent (see doc.go),
// and ErrIO-wrapped failures for everything the reader itself reports.
// On any error the partial graph is discarded. Complexity: O(V + E).
func Decode(r io.Reader, opts ...core.Option) (*core.Graph, error) {
	var hdr [headerLen]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, readErr("header", err)
	}
	if string(hdr[0:4]) != magic {
		return nil, fmt.Errorf("%w: format tag %q", ErrUnsupportedVersion, hdr[0:4])
	}
	if v := binary.BigEndian.Uint16(hdr[4:6]); v != Version {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, v)
	}
	flags := hdr[6]
	if flags&^flagsKnown != 0 {
		return nil, fmt.Errorf("%w: unknown flag bits %#02x", ErrCorruptData, flags)
	}
	nodeCount := binary.BigEndian.Uint32(hdr[7:11])
	edgeCount := binary.BigEndian.Uint32(hdr[11:15])

	graphOpts := []core.Option{core.WithDirected(flags&flagDirected != 0)}
	if flags&flagSimple != 0 {
		graphOpts = append(graphOpts, core.WithSimple())
	}
	graphOpts = append(graphOpts, opts...)
	g := core.New(graphOpts...)

	for i := uint32(0); i < nodeCount; i++ {
		id, err := readU32(r, "node id")
		if err != nil {
			return nil, err
		}
		payload, err := readBlob(r, "node payload")
		if err != nil {
			return nil, err
		}
		if err := g.PutNode(core.NodeID(id), payload); err != nil {
			return nil, fmt.Errorf("%w: node %d: %w", ErrCorruptData, id, err)
		}
	}

	for i := uint32(0); i < edgeCount; i++ {
		id, err := readU32(r, "edge id")
		if err != nil {
			return nil, err
		}
		from, err := readU32(r, "edge source")
		if err != nil {
			return nil, err
		}
		to, err := readU32(r, "edge target")
		if err != nil {
			return nil, err
		}
		payload, err := readBlob(r, "edge payload")
		if err != nil {
			return nil, err
		}
		err = g.PutEdge(core.EdgeID(id), core.NodeID(from), core.NodeID(to), payload)
		if err != nil {
			// Unknown endpoints, repeated ids, and simple-policy violations
			// all mean the stream lies about its own contents.
			return nil, fmt.Errorf("%w: edge %d: %w", ErrCorruptData, id, err)
		}
	}

	return g, nil
}

// readU32 consumes one big-endian 32-bit integer.
func readU32(r io.Reader, what string) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, readErr(what, err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// readBlob consumes a length-prefixed payload, rejecting lengths above
// MaxPayloadLen before allocating.
func readBlob(r io.Reader, what string) ([]byte, error) {
	n, err := readU32(r, what+" length")
	if err != nil {
		return nil, err
	}
	if n > MaxPayloadLen {
		return nil, fmt.Errorf("%w: %s length %d", ErrCorruptData, what, n)
	}
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, readErr(what, err)
	}
	return buf, nil
}

// readErr classifies a read failure: a stream that ends inside declared
// content is corrupt (its counts lie); anything else is an IO failure.
func readErr(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: truncated %s: %w", ErrCorruptData, what, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, what, err)
}
