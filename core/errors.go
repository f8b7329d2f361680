package core

import (
	"errors"
	"fmt"
)

// Decode error taxonomy. Every error returned by the reader and the
// decoder matches exactly one of these with errors.Is.
var (
	// ErrUnexpectedEndOfInput indicates fewer bytes remain than a read requires.
	ErrUnexpectedEndOfInput = errors.New("cgm: unexpected end of input")

	// ErrUnsupportedEncoding indicates a partitioned command or a long-form string.
	ErrUnsupportedEncoding = errors.New("cgm: unsupported encoding")

	// ErrUnsupportedColorModel indicates a colour model other than RGB or CMYK.
	ErrUnsupportedColorModel = errors.New("cgm: unsupported colour model")

	// ErrUnsupportedFeature indicates a parameter combination the decoder cannot interpret.
	ErrUnsupportedFeature = errors.New("cgm: unsupported feature")

	// ErrMalformedCommand indicates a payload whose content contradicts its declared length.
	ErrMalformedCommand = errors.New("cgm: malformed command")
)

// DecodeError reports the command that was being decoded when a fatal
// error occurred.
type DecodeError struct {
	Offset int    // offset of the command header, or of the failed read
	Opcode Opcode // zero when the header itself could not be read
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Opcode == OpNoOp {
		return fmt.Sprintf("decode at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("decode %s at offset %d: %v", e.Opcode, e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError wraps err with the command it occurred in. An error that
// is already a *DecodeError is returned unchanged.
func NewDecodeError(cmd Command, err error) error {
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Offset: cmd.Offset, Opcode: cmd.Opcode, Err: err}
}
