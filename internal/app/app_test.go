package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saasconnector/internal/config"
	"saasconnector/internal/testutil"
	saaserrors "saasconnector/pkg/errors"
	"saasconnector/pkg/metrics"
)

type fakePasswordReader struct {
	interactive bool
	password    string
	prompts     []string
}

func (f *fakePasswordReader) ReadPassword(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.password, nil
}

func (f *fakePasswordReader) IsInteractive() bool {
	return f.interactive
}

func baseConfig() *config.Config {
	return &config.Config{
		LogLevel:  "info",
		LogFormat: "text",
		HTTP:      config.HTTPConfig{Timeout: 5 * time.Second, Burst: 1},
	}
}

func TestNew_WiresDependencies(t *testing.T) {
	var logs bytes.Buffer
	cfg := baseConfig()
	cfg.LogFormat = "json"

	a, err := New(context.Background(), cfg, WithLogOutput(&logs), WithVerbose(true),
		WithPasswordReader(&fakePasswordReader{}))

	require.NoError(t, err)
	assert.Same(t, cfg, a.Config)
	assert.NotNil(t, a.Registry)
	assert.NotNil(t, a.Metrics)
	assert.NotNil(t, a.Clients)

	// Verbose switches to debug, so the init record is written as JSON.
	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.SplitN(logs.Bytes(), []byte("\n"), 2)[0], &record))
	assert.Equal(t, "DEBUG", record["level"])
	assert.Equal(t, "Initializing saasconnector", record["msg"])
}

func TestNew_SeparateRegistries(t *testing.T) {
	first, err := New(context.Background(), baseConfig(), WithPasswordReader(&fakePasswordReader{}))
	require.NoError(t, err)
	second, err := New(context.Background(), baseConfig(), WithPasswordReader(&fakePasswordReader{}))
	require.NoError(t, err)

	assert.NotSame(t, first.Registry, second.Registry)
}

func TestClientFactory_InPostRecordsMetrics(t *testing.T) {
	server, rec := testutil.Server(t, http.StatusOK, `{"city":{"id":1,"name":"Москва"}}`)
	cfg := baseConfig()
	cfg.InPost.Endpoint = server.URL + "/"

	a, err := New(context.Background(), cfg, WithPasswordReader(&fakePasswordReader{}))
	require.NoError(t, err)

	client, err := a.Clients.InPost()
	require.NoError(t, err)

	resp, err := client.CityList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Москва", resp.String("city", "name"))

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "/cities", last.Path)

	counts, err := metrics.RequestCounts(a.Registry)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, counts["inpost"], 0.0001)
}

func TestClientFactory_PromptsForMissingPassword(t *testing.T) {
	server, rec := testutil.Server(t, http.StatusOK, `{"status":"OK","response":{"token":"abc123"}}`)
	cfg := baseConfig()
	cfg.Horoshop = config.HoroshopConfig{Domain: "shop.example.com", Login: "admin", Endpoint: server.URL + "/api/"}
	passwords := &fakePasswordReader{interactive: true, password: "prompted"}

	a, err := New(context.Background(), cfg, WithPasswordReader(passwords))
	require.NoError(t, err)

	client, err := a.Clients.Horoshop(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "abc123", client.Token())
	assert.Equal(t, []string{"Enter horoshop.password: "}, passwords.prompts)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "/api/auth", last.Path)
	assert.Contains(t, string(last.Body), "prompted")
}

func TestClientFactory_MissingCredentials(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		build  func(context.Context, *ClientFactory) error
		field  string
	}{
		{
			name: "horoshop domain",
			build: func(ctx context.Context, f *ClientFactory) error {
				_, err := f.Horoshop(ctx)
				return err
			},
			field: "horoshop.domain",
		},
		{
			name: "horoshop password without terminal",
			mutate: func(c *config.Config) {
				c.Horoshop = config.HoroshopConfig{Domain: "shop.example.com", Login: "admin"}
			},
			build: func(ctx context.Context, f *ClientFactory) error {
				_, err := f.Horoshop(ctx)
				return err
			},
			field: "horoshop.password",
		},
		{
			name: "insales api key",
			mutate: func(c *config.Config) {
				c.InSales.Domain = "shop.myinsales.ru"
			},
			build: func(ctx context.Context, f *ClientFactory) error {
				_, err := f.InSales(ctx)
				return err
			},
			field: "insales.api_key",
		},
		{
			name: "tiu token",
			mutate: func(c *config.Config) {
				c.Tiu.URL = "https://my.tiu.ru/api/v1/"
			},
			build: func(ctx context.Context, f *ClientFactory) error {
				_, err := f.Tiu(ctx)
				return err
			},
			field: "tiu.token",
		},
		{
			name: "courierist login",
			build: func(ctx context.Context, f *ClientFactory) error {
				_, err := f.Courierist(ctx)
				return err
			},
			field: "courierist.login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}
			factory := NewClientFactory(cfg, nil, &fakePasswordReader{}, testutil.Logger())

			err := tt.build(context.Background(), factory)

			require.Error(t, err)
			var cfgErr *saaserrors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestClientFactory_TokensSkipAuth(t *testing.T) {
	cfg := baseConfig()
	cfg.Courierist = config.CourieristConfig{Login: "user", Password: "pass", Token: "preset"}
	cfg.Tiu = config.TiuConfig{URL: "https://my.tiu.ru/api/v1/", Token: "tiu-token"}
	factory := NewClientFactory(cfg, nil, &fakePasswordReader{}, testutil.Logger())

	courieristClient, err := factory.Courierist(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "preset", courieristClient.Token())

	tiuClient, err := factory.Tiu(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tiu-token", tiuClient.Token())
}
