// Package cgmtest builds binary CGM byte streams for tests.
package cgmtest

import (
	"encoding/binary"
	"math"
)

// Builder appends commands to a binary CGM stream.
type Builder struct {
	buf []byte
}

// New returns an empty builder
func New() *Builder {
	return &Builder{}
}

// Command appends a command with the given opcode (class<<12 | id<<5) and
// payload, padding the stream to an even offset first. Payloads of 31 bytes
// or more use the extended length form.
func (b *Builder) Command(op uint16, payload ...[]byte) *Builder {
	return b.command(op, Join(payload...), false)
}

// Partitioned appends a long-form command with the partition flag set.
func (b *Builder) Partitioned(op uint16, payload []byte) *Builder {
	return b.command(op, payload, true)
}

// LongForm appends a command using the extended length word even when the
// payload would fit the short form.
func (b *Builder) LongForm(op uint16, payload []byte) *Builder {
	b.pad()
	b.buf = binary.BigEndian.AppendUint16(b.buf, op&0xFFE0|0x1F)
	b.buf = binary.BigEndian.AppendUint16(b.buf, uint16(len(payload))&0x7FFF)
	b.buf = append(b.buf, payload...)
	return b
}

func (b *Builder) command(op uint16, payload []byte, partitioned bool) *Builder {
	b.pad()
	n := len(payload)
	if n < 0x1F && !partitioned {
		b.buf = binary.BigEndian.AppendUint16(b.buf, op&0xFFE0|uint16(n))
	} else {
		ext := uint16(n) & 0x7FFF
		if partitioned {
			ext |= 0x8000
		}
		b.buf = binary.BigEndian.AppendUint16(b.buf, op&0xFFE0|0x1F)
		b.buf = binary.BigEndian.AppendUint16(b.buf, ext)
	}
	b.buf = append(b.buf, payload...)
	return b
}

func (b *Builder) pad() {
	if len(b.buf)%2 != 0 {
		b.buf = append(b.buf, 0)
	}
}

// Raw appends bytes verbatim, without padding.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

// Bytes returns the stream built so far.
func (b *Builder) Bytes() []byte {
	return append([]byte(nil), b.buf...)
}

// Join concatenates payload fragments.
func Join(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// U16 encodes big-endian 16-bit words.
func U16(v ...uint16) []byte {
	out := make([]byte, 0, 2*len(v))
	for _, x := range v {
		out = binary.BigEndian.AppendUint16(out, x)
	}
	return out
}

// I16 encodes big-endian signed 16-bit words.
func I16(v ...int16) []byte {
	out := make([]byte, 0, 2*len(v))
	for _, x := range v {
		out = binary.BigEndian.AppendUint16(out, uint16(x))
	}
	return out
}

// F32 encodes a big-endian IEEE-754 single.
func F32(f float32) []byte {
	return binary.BigEndian.AppendUint32(nil, math.Float32bits(f))
}

// Str encodes a short-form string.
func Str(s string) []byte {
	return append([]byte{byte(len(s))}, s...)
}

// Pt encodes a point.
func Pt(x, y uint16) []byte {
	return U16(x, y)
}

// RGB encodes a direct colour.
func RGB(r, g, b uint8) []byte {
	return []byte{r, g, b}
}
