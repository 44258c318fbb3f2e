// SPDX-License-Identifier: MIT
//
// File: format.go
// Role: Wire-format constants and sentinel errors shared by encode/decode.

package codec

import "errors"

// Version is the current wire-format version. Decode accepts only streams
// written with the same version.
const Version uint16 = 1

// MaxPayloadLen bounds a single node/edge payload (1 GiB). A declared
// length above it marks the stream corrupt before any allocation happens.
const MaxPayloadLen = 1 << 30

const (
	// magic is the 4-byte format tag opening every stream.
	magic = "GRIO"

	// headerLen = magic + version + flags + node_count + edge_count.
	headerLen = 4 + 2 + 1 + 4 + 4

	flagDirected byte = 1 << 0
	flagSimple   byte = 1 << 1

	// flagsKnown masks the flag bits this version understands.
	flagsKnown = flagDirected | flagSimple
)

// Sentinel errors for serialization.
var (
	// ErrNilGraph is returned when Encode receives a nil graph.
	ErrNilGraph = errors.New("codec: graph is nil")

	// ErrUnsupportedVersion indicates a format tag or version mismatch.
	ErrUnsupportedVersion = errors.New("codec: unsupported format tag or version")

	// ErrCorruptData indicates the stream is internally inconsistent:
	// truncated records, dangling endpoints, repeated identifiers, count
	// mismatches, or out-of-range payload lengths.
	ErrCorruptData = errors.New("codec: corrupt stream")

	// ErrPayloadTooLarge indicates an encode-side payload above MaxPayloadLen.
	ErrPayloadTooLarge = errors.New("codec: payload exceeds format limit")

	// ErrIO wraps a failure of the underlying reader or writer.
	ErrIO = errors.New("codec: io failure")
)
