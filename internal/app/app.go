// Package app wires configuration, logging, metrics and vendor clients for the CLI.
package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"saasconnector/internal/config"
	"saasconnector/pkg/metrics"
)

// PasswordReader handles secure password input from users.
type PasswordReader interface {
	ReadPassword(ctx context.Context, prompt string) (string, error)
	IsInteractive() bool
}

// App contains all application dependencies.
type App struct {
	Config *config.Config
	Logger *slog.Logger

	// Registry is owned by the app so repeated runs in one process never collide.
	Registry *prometheus.Registry
	Metrics  *metrics.Collector

	// Clients creates vendor clients on demand.
	Clients *ClientFactory

	PasswordReader PasswordReader
}

type options struct {
	logOutput      io.Writer
	verbose        bool
	passwordReader PasswordReader
}

// Option is a functional option for configuring the App.
type Option func(*options)

// WithLogOutput sends log records to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// WithVerbose forces debug logging regardless of the configured level.
func WithVerbose(verbose bool) Option {
	return func(o *options) {
		o.verbose = verbose
	}
}

// WithPasswordReader replaces the terminal prompt.
func WithPasswordReader(r PasswordReader) Option {
	return func(o *options) {
		o.passwordReader = r
	}
}

// New creates a new App from a loaded configuration.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	o := options{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	return wire(ctx, cfg, o)
}
