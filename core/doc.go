// Package core provides the low-level binary CGM reading primitives.
//
// This package implements the token layer of the decoder: a [Reader]
// cursor over a fully buffered byte slice that decodes big-endian
// integers, short-form strings, coordinate pairs, direct colours, real
// precision declarations and command headers. It knows nothing about what
// an element means; the decoder package drives it.
//
// # Command Framing
//
// Every command starts on a 2-byte boundary with a big-endian header word:
//
//	bits 15-12  element class
//	bits 11-5   element id
//	bits 4-0    payload length (31 = extended length follows)
//
// An extended length word carries a partition flag in bit 15 and the length
// in bits 14-0. Partitioned commands fail with [ErrUnsupportedEncoding].
// [Reader.ReadCommandHeader] skips the pad byte that precedes a header at an
// odd offset, so consuming exactly [Command].Length bytes after a header
// always leaves the cursor ready for the next one. [Reader.Payload] splits a
// command's payload off into its own reader for that purpose.
//
// # Element Codes
//
// [Opcode] is the header word with its length bits cleared. The named
// constants (OpBeginMetafile, OpPolyline, ...) cover every element the
// decoder interprets; any other value is skipped by its declared length.
//
// # Errors
//
// Reads fail with [ErrUnexpectedEndOfInput] when the input is exhausted.
// [DecodeError] attaches the offset and opcode of the failing command while
// keeping the sentinel reachable through errors.Is.
package core
