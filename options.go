package cgm

import "log/slog"

// DefaultMaxInputSize is the largest metafile a Loader accepts unless
// configured otherwise.
const DefaultMaxInputSize int64 = 64 << 20

// DecodeOptions holds configuration for loading a metafile.
type DecodeOptions struct {
	// Logger for this load only; nil means the package logger
	logger *slog.Logger

	// Inputs larger than this are rejected with ErrInputTooLarge
	maxInputSize int64
}

// defaultOptions returns the default decode options.
func defaultOptions() DecodeOptions {
	return DecodeOptions{
		logger:       nil, // nil means Logger()
		maxInputSize: DefaultMaxInputSize,
	}
}

// clone creates a copy of DecodeOptions.
func (o DecodeOptions) clone() DecodeOptions {
	return DecodeOptions{
		logger:       o.logger,
		maxInputSize: o.maxInputSize,
	}
}
