package cgm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tsawler/cgm/core"
	"github.com/tsawler/cgm/decoder"
	"github.com/tsawler/cgm/format"
	"github.com/tsawler/cgm/model"
)

// ErrInputTooLarge is returned when a metafile exceeds the loader's
// maximum input size.
var ErrInputTooLarge = errors.New("cgm: input exceeds maximum size")

// Loader provides a fluent interface for loading a metafile.
// Each configuration method returns a new Loader instance, making it
// safe for concurrent use and allowing method chaining.
type Loader struct {
	// Source (exactly one is set)
	filename string
	src      io.Reader
	data     []byte
	hasData  bool

	// Configuration
	options DecodeOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Loader with a copy of options.
func (l *Loader) clone() *Loader {
	return &Loader{
		filename: l.filename,
		src:      l.src,
		data:     l.data,
		hasData:  l.hasData,
		options:  l.options.clone(),
		err:      l.err,
	}
}

// WithLogger routes diagnostics for this load to logger instead of the
// package logger.
func (l *Loader) WithLogger(logger *slog.Logger) *Loader {
	n := l.clone()
	n.options.logger = logger
	return n
}

// MaxInputSize sets the largest input accepted, in bytes. Values of zero
// or less are recorded as an error returned by Document.
func (l *Loader) MaxInputSize(n int64) *Loader {
	c := l.clone()
	if n <= 0 {
		c.err = fmt.Errorf("invalid maximum input size: %d", n)
		return c
	}
	c.options.maxInputSize = n
	return c
}

// Document reads and decodes the metafile.
func (l *Loader) Document() (*model.Document, error) {
	if l.err != nil {
		return nil, l.err
	}

	data, err := l.read()
	if err != nil {
		return nil, err
	}

	if format.DetectFromMagic(data) == format.ClearText {
		return nil, fmt.Errorf("%s: %w", format.ClearText, core.ErrUnsupportedEncoding)
	}

	doc, err := decoder.New(decoder.Options{Logger: l.logger()}).Decode(data)
	if err != nil {
		if l.filename != "" {
			return nil, fmt.Errorf("failed to decode %s: %w", l.filename, err)
		}
		return nil, err
	}
	return doc, nil
}

// logger returns the loader's logger, falling back to the package logger.
func (l *Loader) logger() *slog.Logger {
	if l.options.logger != nil {
		return l.options.logger
	}
	return Logger()
}

// read loads the whole input, enforcing the size limit.
func (l *Loader) read() ([]byte, error) {
	limit := l.options.maxInputSize

	switch {
	case l.hasData:
		if int64(len(l.data)) > limit {
			return nil, ErrInputTooLarge
		}
		return l.data, nil

	case l.src != nil:
		return readLimited(l.src, limit)

	case l.filename != "":
		return l.readFile(limit)

	default:
		return nil, fmt.Errorf("no input specified")
	}
}

// readFile opens the named file, rejecting clear-text metafiles before the
// body is read.
func (l *Loader) readFile(limit int64) ([]byte, error) {
	if format.Detect(l.filename) != format.Binary {
		l.logger().Warn("unexpected file extension, decoding as binary CGM",
			slog.String("file", l.filename))
	}

	f, err := os.Open(l.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open metafile: %w", err)
	}
	defer f.Close()

	kind, err := format.DetectFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read metafile: %w", err)
	}
	if kind == format.ClearText {
		return nil, fmt.Errorf("%s: %w", format.ClearText, core.ErrUnsupportedEncoding)
	}
	return readLimited(f, limit)
}

// readLimited reads at most limit bytes from r; one byte more means the
// input is too large.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read metafile: %w", err)
	}
	if n > limit {
		return nil, ErrInputTooLarge
	}
	return buf.Bytes(), nil
}
