package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"saasconnector/internal/config"
	saaserrors "saasconnector/pkg/errors"
	"saasconnector/pkg/service/courierist"
	"saasconnector/pkg/service/horoshop"
	"saasconnector/pkg/service/inpost"
	"saasconnector/pkg/service/insales"
	"saasconnector/pkg/service/tiu"
	"saasconnector/pkg/transport"
)

// ClientFactory builds vendor clients that share the configured HTTP settings and metrics.
type ClientFactory struct {
	cfg       *config.Config
	observer  transport.Observer
	passwords PasswordReader
	logger    *slog.Logger
}

// NewClientFactory creates a new client factory.
func NewClientFactory(
	cfg *config.Config,
	observer transport.Observer,
	passwords PasswordReader,
	logger *slog.Logger,
) *ClientFactory {
	return &ClientFactory{
		cfg:       cfg,
		observer:  observer,
		passwords: passwords,
		logger:    logger,
	}
}

func (f *ClientFactory) transportOptions() []transport.Option {
	opts := []transport.Option{
		transport.WithTimeout(f.cfg.HTTP.Timeout),
		transport.WithInsecureSkipVerify(f.cfg.HTTP.InsecureSkipVerify),
	}
	if f.observer != nil {
		opts = append(opts, transport.WithObserver(f.observer))
	}
	if f.cfg.HTTP.RateLimit > 0 {
		opts = append(opts, transport.WithRateLimit(f.cfg.HTTP.RateLimit, f.cfg.HTTP.Burst))
	}
	return opts
}

// secret returns value, or prompts for it on an interactive terminal.
func (f *ClientFactory) secret(ctx context.Context, key string, value config.Secret) (string, error) {
	if value != "" {
		return string(value), nil
	}
	if f.passwords == nil || !f.passwords.IsInteractive() {
		return "", missing(key)
	}

	password, err := f.passwords.ReadPassword(ctx, fmt.Sprintf("Enter %s: ", key))
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	if password == "" {
		return "", missing(key)
	}
	return password, nil
}

func missing(key string) error {
	env := config.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return saaserrors.NewConfigurationError(key, "", "is required (set it in the config file or "+env+")", nil)
}

func required(pairs ...[2]string) error {
	for _, p := range pairs {
		if p[1] == "" {
			return missing(p[0])
		}
	}
	return nil
}

// Horoshop creates a Horoshop client. Without a configured token it authenticates first.
func (f *ClientFactory) Horoshop(ctx context.Context) (*horoshop.Client, error) {
	c := f.cfg.Horoshop
	if err := required([2]string{"horoshop.domain", c.Domain}, [2]string{"horoshop.login", c.Login}); err != nil {
		return nil, err
	}
	password, err := f.secret(ctx, "horoshop.password", c.Password)
	if err != nil {
		return nil, err
	}

	opts := []horoshop.Option{
		horoshop.WithLogger(f.logger),
		horoshop.WithTransportOptions(f.transportOptions()...),
	}
	if c.Endpoint != "" {
		opts = append(opts, horoshop.WithEndpoint(c.Endpoint))
	}
	if c.Token != "" {
		opts = append(opts, horoshop.WithToken(string(c.Token)))
	}

	return horoshop.New(ctx, c.Domain, c.Login, password, opts...)
}

// InSales creates an InSales client.
func (f *ClientFactory) InSales(ctx context.Context) (*insales.Client, error) {
	c := f.cfg.InSales
	if err := required([2]string{"insales.domain", c.Domain}, [2]string{"insales.api_key", c.APIKey}); err != nil {
		return nil, err
	}
	password, err := f.secret(ctx, "insales.password", c.Password)
	if err != nil {
		return nil, err
	}

	opts := []insales.Option{
		insales.WithLogger(f.logger),
		insales.WithTransportOptions(f.transportOptions()...),
	}
	if c.Endpoint != "" {
		opts = append(opts, insales.WithEndpoint(c.Endpoint))
	}

	return insales.New(c.Domain, c.APIKey, password, opts...)
}

// Tiu creates a Tiu client.
func (f *ClientFactory) Tiu(ctx context.Context) (*tiu.Client, error) {
	c := f.cfg.Tiu
	if err := required([2]string{"tiu.url", c.URL}); err != nil {
		return nil, err
	}
	token, err := f.secret(ctx, "tiu.token", c.Token)
	if err != nil {
		return nil, err
	}

	return tiu.New(c.URL, token,
		tiu.WithLogger(f.logger),
		tiu.WithTransportOptions(f.transportOptions()...),
	)
}

// InPost creates an InPost client. No credentials are needed.
func (f *ClientFactory) InPost() (*inpost.Client, error) {
	opts := []inpost.Option{
		inpost.WithLogger(f.logger),
		inpost.WithTransportOptions(f.transportOptions()...),
	}
	if f.cfg.InPost.Endpoint != "" {
		opts = append(opts, inpost.WithEndpoint(f.cfg.InPost.Endpoint))
	}
	return inpost.New(opts...)
}

// Courierist creates a Courierist client. Without a configured token it authenticates first.
func (f *ClientFactory) Courierist(ctx context.Context) (*courierist.Client, error) {
	c := f.cfg.Courierist
	if err := required([2]string{"courierist.login", c.Login}); err != nil {
		return nil, err
	}
	password, err := f.secret(ctx, "courierist.password", c.Password)
	if err != nil {
		return nil, err
	}

	opts := []courierist.Option{
		courierist.WithLogger(f.logger),
		courierist.WithTransportOptions(f.transportOptions()...),
	}
	if c.Endpoint != "" {
		opts = append(opts, courierist.WithEndpoint(c.Endpoint))
	}
	if c.Token != "" {
		opts = append(opts, courierist.WithToken(string(c.Token)))
	}

	return courierist.New(ctx, c.Login, password, opts...)
}
