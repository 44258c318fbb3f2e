// Package codec encodes a core.Graph to a compact binary stream and
// decodes it back, over plain io.Reader/io.Writer.
//
// Wire format (all multi-byte integers big-endian):
//
//	header      = magic "GRIO" (4) | version u16 | flags u8 |
//	              node_count u32 | edge_count u32
//	node record = id u32 | payload_len u32 | payload bytes
//	edge record = id u32 | from u32 | to u32 | payload_len u32 | payload
//
// Flag bits: bit0 = directed, bit1 = simple. Node records are written in
// ascending NodeID order, edge records in ascending EdgeID order, so equal
// graphs always produce identical streams.
//
// Decode validates the header, then rebuilds the store record by record
// and re-checks referential integrity: an edge naming an unknown node, a
// repeated identifier, a record count that does not match the stream, or
// a payload above MaxPayloadLen all yield ErrCorruptData — never a partial
// graph. A format tag or version mismatch yields ErrUnsupportedVersion.
// Underlying reader/writer failures are wrapped with ErrIO and remain
// reachable via errors.Is/errors.As.
//
// Allocator state is not part of the format: after Decode, identifier
// watermarks restart just past the highest stored id, so subsequently
// issued ids never collide with decoded ones but need not match the ids
// the original store would have issued.
package codec
