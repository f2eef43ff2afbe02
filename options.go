package dfa

import (
	"log/slog"

	"github.com/geange/dfa/internal/logging"
)

type options struct {
	logger *slog.Logger
}

func newOptions(opts ...Option) *options {
	o := &options{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option configures Prune and Minimize.
type Option func(*options)

// WithLogger traces progress to logger at debug level. A nil logger keeps the default,
// which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
