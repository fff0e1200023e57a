package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"saasconnector/internal/adapters/terminal"
	"saasconnector/internal/config"
	"saasconnector/internal/logging"
	"saasconnector/pkg/metrics"
)

var _ PasswordReader = (*terminal.Adapter)(nil)

func wire(ctx context.Context, cfg *config.Config, o options) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if o.verbose {
		level = slog.LevelDebug
	}
	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = logging.Format(cfg.LogFormat)
	logCfg.Output = o.logOutput
	logger := logging.NewLogger(logCfg)

	registry := prometheus.NewRegistry()
	collector, err := metrics.NewCollector(registry)
	if err != nil {
		return nil, err
	}

	passwordReader := o.passwordReader
	if passwordReader == nil {
		passwordReader = terminal.NewAdapter(os.Stdin, os.Stderr)
	}

	logger.DebugContext(ctx, "Initializing saasconnector",
		"logLevel", level.String(),
		"logFormat", cfg.LogFormat,
		"timeout", cfg.HTTP.Timeout,
		"rateLimit", cfg.HTTP.RateLimit)

	return &App{
		Config:         cfg,
		Logger:         logger,
		Registry:       registry,
		Metrics:        collector,
		Clients:        NewClientFactory(cfg, collector, passwordReader, logger),
		PasswordReader: passwordReader,
	}, nil
}
