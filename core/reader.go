package core

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/cgm/internal/logging"
	"github.com/tsawler/cgm/model"
)

const (
	// longFormLength in the 5-bit length field announces an extended length word.
	longFormLength = 0x1F
	// partitionFlag marks the extended length word of a partitioned command.
	partitionFlag = 0x8000
	// longFormString in a string length byte announces a long-form string.
	longFormString = 0xFF
)

// Reader is a cursor over a fully buffered binary CGM byte slice. It has no
// knowledge of element semantics; every read either advances the cursor by
// the requested width or fails with ErrUnexpectedEndOfInput.
type Reader struct {
	data   []byte
	pos    int
	base   int // offset of data[0] within the whole input
	logger *slog.Logger
}

// NewReader creates a reader over data. A nil logger discards warnings.
func NewReader(data []byte, logger *slog.Logger) *Reader {
	return &Reader{
		data:   data,
		logger: logging.OrNop(logger),
	}
}

// Offset returns the cursor position within the whole input
func (r *Reader) Offset() int { return r.base + r.pos }

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Len returns the total number of bytes the reader covers
func (r *Reader) Len() int { return len(r.data) }

// take returns the next n bytes and advances the cursor
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative read of %d bytes at offset %d: %w", n, r.Offset(), ErrMalformedCommand)
	}
	if r.Remaining() < n {
		return nil, fmt.Errorf("need %d bytes at offset %d, have %d: %w",
			n, r.Offset(), r.Remaining(), ErrUnexpectedEndOfInput)
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Discard consumes and ignores exactly n bytes. n may be zero.
func (r *Reader) Discard(n int) error {
	_, err := r.take(n)
	return err
}

// Payload splits off the next n bytes as a separate reader and advances
// past them. Reads on the returned reader never touch bytes outside the
// payload, so whatever it leaves unread is skipped.
func (r *Reader) Payload(n int) (*Reader, error) {
	start := r.Offset()
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	return &Reader{data: b, base: start, logger: r.logger}, nil
}

// ReadCommandHeader reads the next command header. A pad byte is consumed
// first when the cursor sits on an odd offset.
//
// Header word layout: bits 15-12 class, bits 11-5 element id, bits 4-0
// length. A length of 31 is followed by a second word whose top bit flags
// a partitioned command and whose low 15 bits hold the real length.
func (r *Reader) ReadCommandHeader() (Command, error) {
	if r.Offset()%2 != 0 {
		if err := r.Discard(1); err != nil {
			return Command{}, err
		}
	}

	start := r.Offset()
	word, err := r.ReadUint16()
	if err != nil {
		return Command{}, err
	}

	cmd := Command{
		Opcode:    Opcode(word & 0xFFE0),
		Class:     Class(word >> 12 & 0x0F),
		ElementID: uint8(word >> 5 & 0x7F),
		Length:    int(word & 0x1F),
		Offset:    start,
	}

	if cmd.Length == longFormLength {
		ext, err := r.ReadUint16()
		if err != nil {
			return Command{}, err
		}
		if ext&partitionFlag != 0 {
			return Command{}, fmt.Errorf("%s at offset %d is partitioned: %w", cmd.Opcode, start, ErrUnsupportedEncoding)
		}
		cmd.Length = int(ext &^ partitionFlag)
	}

	return cmd, nil
}

// ReadUint8 reads a single byte
func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a big-endian unsigned 16-bit integer
func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadInt16 reads a big-endian signed 16-bit integer
func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads a big-endian unsigned 32-bit integer
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadInt32 reads a big-endian signed 32-bit integer
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadFloat32 reads a big-endian IEEE-754 single precision value
func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadString reads a short-form string: one length byte followed by that
// many bytes. Long-form strings (length byte 255) are not supported.
func (r *Reader) ReadString() (string, error) {
	start := r.Offset()
	n, err := r.ReadUint8()
	if err != nil {
		return "", err
	}
	if n == longFormString {
		return "", fmt.Errorf("long-form string at offset %d: %w", start, ErrUnsupportedEncoding)
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return decodeText(b), nil
}

// decodeText returns b as UTF-8. Bytes that are not valid UTF-8 are taken
// to be ISO 8859-1, the default CGM G1 set.
func decodeText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// ReadPoint reads an X, Y pair of 16-bit coordinates
func (r *Reader) ReadPoint() (model.Point, error) {
	x, err := r.ReadUint16()
	if err != nil {
		return model.Point{}, err
	}
	y, err := r.ReadUint16()
	if err != nil {
		return model.Point{}, err
	}
	return model.Point{X: x, Y: y}, nil
}

// ReadPoints reads count consecutive points
func (r *Reader) ReadPoints(count int) ([]model.Point, error) {
	if count < 0 {
		return nil, fmt.Errorf("negative point count %d: %w", count, ErrMalformedCommand)
	}
	points := make([]model.Point, count)
	for i := range points {
		p, err := r.ReadPoint()
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

// ReadColour reads a direct RGB colour. Any declared length other than 3 is
// logged, its bytes are discarded, and black is returned so that decoding
// can continue.
func (r *Reader) ReadColour(length int) (model.Colour, error) {
	if length == 3 {
		b, err := r.take(3)
		if err != nil {
			return model.Colour{}, err
		}
		return model.Colour{R: b[0], G: b[1], B: b[2]}, nil
	}

	r.logger.Warn("unexpected colour length, using black",
		slog.Int("length", length),
		slog.Int("offset", r.Offset()))
	if err := r.Discard(length); err != nil {
		return model.Colour{}, err
	}
	return model.Colour{}, nil
}

// precision representation selectors
const (
	precisionFloating = 0
	precisionFixed    = 1
)

// ReadPrecision reads a real precision declaration: a representation
// selector followed by two width fields. Floating point is 32-bit when the
// exponent width is 9; fixed point is 32-bit when the whole part is 16 bits.
func (r *Reader) ReadPrecision() (model.RealFormat, error) {
	repr, err := r.ReadInt16()
	if err != nil {
		return 0, err
	}
	first, err := r.ReadInt16()
	if err != nil {
		return 0, err
	}
	if _, err := r.ReadInt16(); err != nil {
		return 0, err
	}

	if repr == precisionFloating {
		if first == 9 {
			return model.Float32, nil
		}
		return model.Float64, nil
	}
	if first == 16 {
		return model.Fixed32, nil
	}
	return model.Fixed64, nil
}
