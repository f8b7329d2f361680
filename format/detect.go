// Package format provides metafile format detection for the cgm library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a metafile encoding.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Binary indicates a binary-encoded CGM metafile.
	Binary
	// ClearText indicates a clear-text-encoded CGM metafile.
	ClearText
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Binary:
		return "CGM binary"
	case ClearText:
		return "CGM clear text"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Binary, ClearText:
		return ".cgm"
	default:
		return ""
	}
}

// Detect determines file format from filename extension. Both encodings
// share the .cgm extension; Binary is assumed as it is by far the more
// common one.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".cgm":
		return Binary
	default:
		return Unknown
	}
}

// beginMetafile is the binary BEGIN METAFILE opcode (class 0, id 1).
const beginMetafile = 0x0020

// DetectFromMagic checks the leading bytes to determine format.
// A binary metafile opens with a BEGIN METAFILE header word; a clear-text
// metafile opens with the BEGMF keyword.
func DetectFromMagic(data []byte) Format {
	if len(data) >= 2 && (uint16(data[0])<<8|uint16(data[1]))&0xFFE0 == beginMetafile {
		return Binary
	}
	if detectClearTextMagic(data) {
		return ClearText
	}
	return Unknown
}

// detectClearTextMagic checks for the BEGMF keyword. Clear-text keywords
// are case-insensitive and may contain underscores.
func detectClearTextMagic(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) > 32 {
		data = data[:32]
	}
	kw := strings.ToUpper(strings.ReplaceAll(string(data), "_", ""))
	return strings.HasPrefix(kw, "BEGMF")
}

// DetectFromReader inspects the first bytes of r to determine format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 64)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}
