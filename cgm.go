// Package cgm decodes binary-encoded Computer Graphics Metafiles into an
// in-memory document of pictures, polylines and text.
//
// Basic usage:
//
//	doc, err := cgm.Open("drawing.cgm").Document()
//	if err != nil {
//	    // handle error
//	}
//	for _, pic := range doc.Pictures {
//	    fmt.Println(pic.Name, len(pic.Polylines))
//	}
//
// When the metafile is already in memory:
//
//	doc, err := cgm.Decode(data)
//
// Errors match the sentinels in the core package with errors.Is and carry
// the offending command through *core.DecodeError.
package cgm

import (
	"io"

	"github.com/tsawler/cgm/decoder"
	"github.com/tsawler/cgm/model"
)

// Decode decodes a complete binary metafile held in data. It logs through
// the package logger set with SetLogger.
func Decode(data []byte) (*model.Document, error) {
	return decoder.New(decoder.Options{Logger: Logger()}).Decode(data)
}

// Open returns a Loader that reads the named file.
//
// Example:
//
//	doc, err := cgm.Open("drawing.cgm").Document()
func Open(filename string) *Loader {
	return &Loader{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader returns a Loader that reads the metafile from r.
// The caller is responsible for closing r.
func FromReader(r io.Reader) *Loader {
	return &Loader{
		src:     r,
		options: defaultOptions(),
	}
}

// FromBytes returns a Loader over an in-memory metafile.
func FromBytes(data []byte) *Loader {
	return &Loader{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	doc := cgm.Must(cgm.Open("drawing.cgm").Document())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
