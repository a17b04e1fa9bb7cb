package options

import (
	"context"
	"log/slog"

	"github.com/go-localauth/localauth/pkg/lacontext"
)

type Options struct {
	Logger     *slog.Logger
	Context    context.Context
	NewContext func() lacontext.Context
}

type Option func(*Options)

func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

func WithContext(ctx context.Context) Option {
	return func(opts *Options) {
		opts.Context = ctx
	}
}

// WithNewContext substitutes the platform context factory. Mainly useful
// for tests that need a scripted authentication context.
func WithNewContext(newContext func() lacontext.Context) Option {
	return func(opts *Options) {
		opts.NewContext = newContext
	}
}

func NewOptions(opts ...Option) *Options {
	oo := &Options{
		Logger:     slog.Default(),
		Context:    context.Background(),
		NewContext: lacontext.New,
	}

	for _, opt := range opts {
		opt(oo)
	}

	return oo
}
