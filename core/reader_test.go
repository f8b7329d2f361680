package core

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/cgm/internal/cgmtest"
	"github.com/tsawler/cgm/model"
)

func newTestReader(data []byte) *Reader {
	return NewReader(data, nil)
}

// ============================================================================
// Command header tests
// ============================================================================

func TestReadCommandHeader(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  Command
	}{
		{
			name:  "begin metafile short form",
			input: []byte{0x00, 0x22, 0x01, 'A'},
			want:  Command{Opcode: OpBeginMetafile, Class: ClassDelimiter, ElementID: 1, Length: 2},
		},
		{
			name:  "polyline eight bytes",
			input: []byte{0x40, 0x28},
			want:  Command{Opcode: OpPolyline, Class: ClassPrimitive, ElementID: 1, Length: 8},
		},
		{
			name:  "end picture no payload",
			input: []byte{0x00, 0xA0},
			want:  Command{Opcode: OpEndPicture, Class: ClassDelimiter, ElementID: 5},
		},
		{
			name:  "extended length",
			input: []byte{0x40, 0x3F, 0x01, 0x00},
			want:  Command{Opcode: OpPolyline, Class: ClassPrimitive, ElementID: 1, Length: 256},
		},
		{
			name:  "edge join high element id",
			input: []byte{0x55, 0xA2},
			want:  Command{Opcode: OpEdgeJoin, Class: ClassAttribute, ElementID: 45, Length: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newTestReader(tt.input).ReadCommandHeader()
			if err != nil {
				t.Fatalf("ReadCommandHeader() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadCommandHeader() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadCommandHeaderOddOffsetPadding(t *testing.T) {
	// One byte already consumed, then a pad byte, then the header word.
	r := newTestReader([]byte{0x01, 0xFF, 0x00, 0xA0})
	if err := r.Discard(1); err != nil {
		t.Fatalf("Discard() error = %v", err)
	}

	cmd, err := r.ReadCommandHeader()
	if err != nil {
		t.Fatalf("ReadCommandHeader() error = %v", err)
	}
	if cmd.Opcode != OpEndPicture {
		t.Errorf("Opcode = %v, want EndPicture", cmd.Opcode)
	}
	if cmd.Offset != 2 {
		t.Errorf("Offset = %d, want 2", cmd.Offset)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReadCommandHeaderPartitioned(t *testing.T) {
	data := cgmtest.New().Partitioned(uint16(OpPolyline), make([]byte, 8)).Bytes()

	_, err := newTestReader(data).ReadCommandHeader()
	if !errors.Is(err, ErrUnsupportedEncoding) {
		t.Fatalf("ReadCommandHeader() error = %v, want ErrUnsupportedEncoding", err)
	}
}

func TestReadCommandHeaderTruncated(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"half word", []byte{0x00}},
		{"missing extended length", []byte{0x40, 0x3F}},
		{"extended length cut short", []byte{0x40, 0x3F, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestReader(tt.input).ReadCommandHeader()
			if !errors.Is(err, ErrUnexpectedEndOfInput) {
				t.Errorf("ReadCommandHeader() error = %v, want ErrUnexpectedEndOfInput", err)
			}
		})
	}
}

// Consuming exactly the declared length after every header must leave the
// cursor on the next header, including across pad bytes and long forms.
func TestCommandFraming(t *testing.T) {
	b := cgmtest.New()
	var want []Command
	lengths := []int{0, 1, 2, 3, 5, 8, 30, 31, 33, 64, 7}
	for i, n := range lengths {
		op := MakeOpcode(ClassPrimitive, uint8(i+1))
		b.Command(uint16(op), bytes.Repeat([]byte{0xAB}, n))
		want = append(want, Command{Opcode: op, Class: ClassPrimitive, ElementID: uint8(i + 1), Length: n})
	}
	b.LongForm(uint16(OpEndMetafile), nil)
	want = append(want, Command{Opcode: OpEndMetafile, Class: ClassDelimiter, ElementID: 2})

	r := newTestReader(b.Bytes())
	var got []Command
	for r.Remaining() > 0 {
		cmd, err := r.ReadCommandHeader()
		if err != nil {
			t.Fatalf("ReadCommandHeader() after %d commands: %v", len(got), err)
		}
		if err := r.Discard(cmd.Length); err != nil {
			t.Fatalf("Discard(%d) error = %v", cmd.Length, err)
		}
		cmd.Offset = 0
		got = append(got, cmd)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("framing mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// Integer and real tests
// ============================================================================

func TestReadIntegers(t *testing.T) {
	r := newTestReader([]byte{
		0x12, 0x34, // uint16
		0xFF, 0xFE, // int16 -2
		0xDE, 0xAD, 0xBE, 0xEF, // uint32
		0xFF, 0xFF, 0xFF, 0xFB, // int32 -5
		0x7F, // uint8
	})

	if v, err := r.ReadUint16(); err != nil || v != 0x1234 {
		t.Errorf("ReadUint16() = %#x, %v; want 0x1234", v, err)
	}
	if v, err := r.ReadInt16(); err != nil || v != -2 {
		t.Errorf("ReadInt16() = %d, %v; want -2", v, err)
	}
	if v, err := r.ReadUint32(); err != nil || v != 0xDEADBEEF {
		t.Errorf("ReadUint32() = %#x, %v; want 0xdeadbeef", v, err)
	}
	if v, err := r.ReadInt32(); err != nil || v != -5 {
		t.Errorf("ReadInt32() = %d, %v; want -5", v, err)
	}
	if v, err := r.ReadUint8(); err != nil || v != 0x7F {
		t.Errorf("ReadUint8() = %#x, %v; want 0x7f", v, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestReadIntegersShortInput(t *testing.T) {
	reads := map[string]func(r *Reader) error{
		"uint16":  func(r *Reader) error { _, err := r.ReadUint16(); return err },
		"int16":   func(r *Reader) error { _, err := r.ReadInt16(); return err },
		"uint32":  func(r *Reader) error { _, err := r.ReadUint32(); return err },
		"int32":   func(r *Reader) error { _, err := r.ReadInt32(); return err },
		"float32": func(r *Reader) error { _, err := r.ReadFloat32(); return err },
	}

	for name, read := range reads {
		t.Run(name, func(t *testing.T) {
			r := newTestReader([]byte{0x01})
			if err := read(r); !errors.Is(err, ErrUnexpectedEndOfInput) {
				t.Errorf("error = %v, want ErrUnexpectedEndOfInput", err)
			}
			if r.Offset() != 0 {
				t.Errorf("failed read moved cursor to %d", r.Offset())
			}
		})
	}
}

func TestReadFloat32(t *testing.T) {
	r := newTestReader(cgmtest.F32(2.5))
	v, err := r.ReadFloat32()
	if err != nil {
		t.Fatalf("ReadFloat32() error = %v", err)
	}
	if v != 2.5 {
		t.Errorf("ReadFloat32() = %v, want 2.5", v)
	}
}

func TestReadPrecision(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  model.RealFormat
	}{
		{"float 32", cgmtest.I16(0, 9, 23), model.Float32},
		{"float 64", cgmtest.I16(0, 12, 52), model.Float64},
		{"fixed 32", cgmtest.I16(1, 16, 16), model.Fixed32},
		{"fixed 64", cgmtest.I16(1, 32, 32), model.Fixed64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReader(tt.input)
			got, err := r.ReadPrecision()
			if err != nil {
				t.Fatalf("ReadPrecision() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadPrecision() = %v, want %v", got, tt.want)
			}
			if r.Remaining() != 0 {
				t.Errorf("Remaining() = %d, want 0", r.Remaining())
			}
		})
	}
}

// ============================================================================
// String, point and colour tests
// ============================================================================

func TestReadString(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"ascii", cgmtest.Str("Hello"), "Hello"},
		{"empty", cgmtest.Str(""), ""},
		{"utf8", cgmtest.Str("Grüße"), "Grüße"},
		{"latin1 fallback", []byte{4, 'C', 'a', 'f', 0xE9}, "Café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestReader(tt.input)
			got, err := r.ReadString()
			if err != nil {
				t.Fatalf("ReadString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadString() = %q, want %q", got, tt.want)
			}
			if r.Remaining() != 0 {
				t.Errorf("Remaining() = %d, want 0", r.Remaining())
			}
		})
	}
}

func TestReadStringErrors(t *testing.T) {
	if _, err := newTestReader([]byte{0xFF, 0x01, 0x00}).ReadString(); !errors.Is(err, ErrUnsupportedEncoding) {
		t.Errorf("long-form string error = %v, want ErrUnsupportedEncoding", err)
	}
	if _, err := newTestReader([]byte{5, 'a', 'b'}).ReadString(); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("truncated string error = %v, want ErrUnexpectedEndOfInput", err)
	}
	if _, err := newTestReader(nil).ReadString(); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("empty input error = %v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestReadPoints(t *testing.T) {
	r := newTestReader([]byte{0x00, 0x0A, 0x01, 0x00, 0x7F, 0xFF, 0x00, 0x02})
	got, err := r.ReadPoints(2)
	if err != nil {
		t.Fatalf("ReadPoints() error = %v", err)
	}
	want := []model.Point{{X: 10, Y: 256}, {X: 32767, Y: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadPoints() mismatch (-want +got):\n%s", diff)
	}

	if _, err := newTestReader(cgmtest.Pt(1, 2)).ReadPoints(2); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("short ReadPoints() error = %v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestReadColour(t *testing.T) {
	r := newTestReader([]byte{10, 20, 30})
	got, err := r.ReadColour(3)
	if err != nil {
		t.Fatalf("ReadColour(3) error = %v", err)
	}
	if want := (model.Colour{R: 10, G: 20, B: 30}); got != want {
		t.Errorf("ReadColour(3) = %+v, want %+v", got, want)
	}
}

func TestReadColourUnexpectedLength(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	r := NewReader([]byte{1, 2, 3, 4, 5, 6, 0x00, 0xA0}, logger)

	got, err := r.ReadColour(6)
	if err != nil {
		t.Fatalf("ReadColour(6) error = %v", err)
	}
	if got != model.Black {
		t.Errorf("ReadColour(6) = %+v, want black", got)
	}
	if r.Offset() != 6 {
		t.Errorf("Offset() = %d, want 6", r.Offset())
	}
	if !strings.Contains(logs.String(), "unexpected colour length") {
		t.Errorf("expected a warning, got log %q", logs.String())
	}

	// The cursor is still synchronized with the next command.
	cmd, err := r.ReadCommandHeader()
	if err != nil || cmd.Opcode != OpEndPicture {
		t.Errorf("next header = %v, %v; want EndPicture", cmd, err)
	}
}

func TestReadColourTruncated(t *testing.T) {
	if _, err := newTestReader([]byte{1, 2}).ReadColour(3); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("ReadColour(3) error = %v, want ErrUnexpectedEndOfInput", err)
	}
	if _, err := newTestReader([]byte{1, 2}).ReadColour(6); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("ReadColour(6) error = %v, want ErrUnexpectedEndOfInput", err)
	}
}

// ============================================================================
// Discard and payload tests
// ============================================================================

func TestDiscard(t *testing.T) {
	r := newTestReader([]byte{1, 2, 3})
	if err := r.Discard(0); err != nil {
		t.Fatalf("Discard(0) error = %v", err)
	}
	if r.Offset() != 0 {
		t.Errorf("Discard(0) moved cursor to %d", r.Offset())
	}
	if err := r.Discard(2); err != nil {
		t.Fatalf("Discard(2) error = %v", err)
	}
	if err := r.Discard(2); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("Discard(2) past end error = %v, want ErrUnexpectedEndOfInput", err)
	}
	if err := r.Discard(-1); !errors.Is(err, ErrMalformedCommand) {
		t.Errorf("Discard(-1) error = %v, want ErrMalformedCommand", err)
	}
}

func TestPayload(t *testing.T) {
	r := newTestReader([]byte{0xAA, 0xBB, 0x00, 0x01, 0x00, 0x02, 0xCC})
	if err := r.Discard(2); err != nil {
		t.Fatal(err)
	}

	p, err := r.Payload(4)
	if err != nil {
		t.Fatalf("Payload(4) error = %v", err)
	}
	if r.Offset() != 6 {
		t.Errorf("parent Offset() = %d, want 6", r.Offset())
	}
	if p.Offset() != 2 || p.Len() != 4 {
		t.Errorf("payload Offset() = %d, Len() = %d; want 2, 4", p.Offset(), p.Len())
	}

	v, err := p.ReadUint16()
	if err != nil || v != 1 {
		t.Errorf("payload ReadUint16() = %d, %v; want 1", v, err)
	}
	// Reads stop at the payload boundary even though the parent has more.
	if _, err := p.ReadUint32(); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("read past payload error = %v, want ErrUnexpectedEndOfInput", err)
	}

	if _, err := r.Payload(2); !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("Payload(2) past end error = %v, want ErrUnexpectedEndOfInput", err)
	}
}
