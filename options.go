package strpool

import "log/slog"

type options struct {
	converter Converter
	logger    *slog.Logger
}

// Option configures a Pool.
type Option func(*options)

// WithConverter sets the converter used to measure and transcode wide
// strings. If nil is passed, DefaultConverter is used.
func WithConverter(c Converter) Option {
	return func(o *options) {
		if c == nil {
			c = DefaultConverter()
		}
		o.converter = c
	}
}

// WithLogger sets the logger for debug records about fallbacks and clears.
// If nil is passed, log output is discarded.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
