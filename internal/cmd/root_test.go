package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saasconnector/internal/app"
	"saasconnector/internal/testutil"
	saaserrors "saasconnector/pkg/errors"
)

type noTerminal struct{}

func (noTerminal) ReadPassword(context.Context, string) (string, error) { return "", nil }
func (noTerminal) IsInteractive() bool                                   { return false }

// execute runs the CLI with an isolated HOME and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	root := NewRootCommand(app.WithLogOutput(io.Discard), app.WithPasswordReader(noTerminal{}))
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestRootCommand_Structure(t *testing.T) {
	root := NewRootCommand()

	assert.Equal(t, "saasconnector", root.Use)
	assert.False(t, root.Runnable())

	registered := make(map[string]bool)
	for _, c := range root.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range []string{"version", "config", "horoshop", "insales", "tiu", "inpost", "courierist"} {
		assert.True(t, registered[name], "missing command %s", name)
	}

	for _, flag := range []string{"config", "env-file", "verbose", "log-level", "log-format", "timeout", "rate-limit", "insecure"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), "missing flag %s", flag)
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "2024-03-01", "ci")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown", "unknown") })

	// A broken config must not matter for version.
	out, err := execute(t, "version", "--config", "/nonexistent/config.yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "saasconnector version 1.2.3")
	assert.Contains(t, out, "commit: abc")
	assert.Contains(t, out, "built by: ci")
}

func TestConfigShow(t *testing.T) {
	t.Setenv("SAAS_HOROSHOP_LOGIN", "admin")
	t.Setenv("SAAS_HOROSHOP_PASSWORD", "hunter2")

	out, err := execute(t, "config", "show", "--timeout", "5s", "--log-format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, "login: admin")
	assert.Contains(t, out, "timeout: 5s")
	assert.Contains(t, out, "log_format: json")
	assert.NotContains(t, out, "hunter2")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tiu:\n  url: https://my.tiu.ru/api/v1/\n"), 0o600))

	out, err := execute(t, "config", "path", "--config", path)
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))

	_, err = execute(t, "config", "show", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, saaserrors.IsConfiguration(err))
}

func TestInPostCities(t *testing.T) {
	server, rec := testutil.Server(t, http.StatusOK, `{"cities":[{"id":1,"name":"Москва"}]}`)
	t.Setenv("SAAS_INPOST_ENDPOINT", server.URL+"/")

	out, err := execute(t, "inpost", "cities")

	require.NoError(t, err)
	var printed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &printed))
	assert.Contains(t, out, `"name": "Москва"`)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, http.MethodGet, last.Method)
	assert.Equal(t, "/cities", last.Path)
}

func TestInPostCalculate(t *testing.T) {
	server, rec := testutil.Server(t, http.StatusOK, `{"price":"250.00"}`)
	t.Setenv("SAAS_INPOST_ENDPOINT", server.URL+"/")

	_, err := execute(t, "inpost", "calculate", "-p", "city=Москва")
	require.Error(t, err)
	assert.True(t, saaserrors.IsValidation(err))
	assert.Empty(t, rec.Requests())

	out, err := execute(t, "inpost", "calculate", "-p", "city=Москва", "-p", "city_from=Казань", "-p", "cost=1000")
	require.NoError(t, err)
	assert.Contains(t, out, `"price": "250.00"`)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Казань", last.Query.Get("city_from"))
}

func TestRawResponseFailure(t *testing.T) {
	server, _ := testutil.Server(t, http.StatusInternalServerError, `{"error":"maintenance"}`)
	t.Setenv("SAAS_INPOST_ENDPOINT", server.URL+"/")

	out, err := execute(t, "inpost", "parcel-statuses")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, out, "maintenance")
}

func TestTiuOrdersSetStatus(t *testing.T) {
	server, rec := testutil.Server(t, http.StatusOK, `{"processed_ids":[7,8]}`)
	t.Setenv("SAAS_TIU_URL", server.URL+"/api/v1/")
	t.Setenv("SAAS_TIU_TOKEN", "tiu-token")

	_, err := execute(t, "tiu", "orders-set-status", "canceled", "7", "8", "-p", "cancellation_reason=not_available")
	require.NoError(t, err)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/v1/orders/set_status", last.Path)
	assert.Equal(t, "Bearer tiu-token", last.Header.Get("Authorization"))
	assert.JSONEq(t, `{"ids":[7,8],"status":"canceled","cancellation_reason":"not_available"}`, string(last.Body))

	_, err = execute(t, "tiu", "orders-set-status", "canceled", "seven")
	require.Error(t, err)
	assert.True(t, saaserrors.IsValidation(err))
}

func TestTiuMissingToken(t *testing.T) {
	t.Setenv("SAAS_TIU_URL", "https://my.tiu.ru/api/v1/")

	_, err := execute(t, "tiu", "orders")

	require.Error(t, err)
	assert.True(t, saaserrors.IsConfiguration(err))
	assert.Contains(t, err.Error(), "SAAS_TIU_TOKEN")
}

func TestCourieristOrderCost(t *testing.T) {
	server, rec := testutil.Server(t, http.StatusOK, `{"price":350,"distance":12.4,"duration":55}`)
	t.Setenv("SAAS_COURIERIST_ENDPOINT", server.URL+"/api/v1/")
	t.Setenv("SAAS_COURIERIST_LOGIN", "user")
	t.Setenv("SAAS_COURIERIST_PASSWORD", "pass")
	t.Setenv("SAAS_COURIERIST_TOKEN", "tok")

	dataFile := filepath.Join(t.TempDir(), "route.json")
	require.NoError(t, os.WriteFile(dataFile,
		[]byte(`{"locations":[{"address":"Москва, Тверская 1"},{"address":"Москва, Арбат 10"}]}`), 0o600))

	out, err := execute(t, "courierist", "order-cost", "--data", "@"+dataFile)

	require.NoError(t, err)
	assert.Contains(t, out, `"price": 350`)
	assert.Contains(t, out, `"duration": 55`)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "/api/v1/order/cost", last.Path)
	assert.JSONEq(t, `{"locations":[{"address":"Москва, Тверская 1"},{"address":"Москва, Арбат 10"}]}`, string(last.Body))
}

func TestCourieristVendorError(t *testing.T) {
	server, _ := testutil.Server(t, http.StatusNotFound, `{"code":"order_not_found","message":"Order not found"}`)
	t.Setenv("SAAS_COURIERIST_ENDPOINT", server.URL+"/api/v1/")
	t.Setenv("SAAS_COURIERIST_LOGIN", "user")
	t.Setenv("SAAS_COURIERIST_PASSWORD", "pass")
	t.Setenv("SAAS_COURIERIST_TOKEN", "tok")

	_, err := execute(t, "courierist", "order", "42")

	require.Error(t, err)
	assert.True(t, saaserrors.IsNotFound(err))
}

func TestDataFromStdin(t *testing.T) {
	server, rec := testutil.Server(t, http.StatusOK, `{"status":"OK","response":{}}`)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SAAS_HOROSHOP_DOMAIN", "shop.example.com")
	t.Setenv("SAAS_HOROSHOP_LOGIN", "admin")
	t.Setenv("SAAS_HOROSHOP_PASSWORD", "secret")
	t.Setenv("SAAS_HOROSHOP_TOKEN", "abc123")
	t.Setenv("SAAS_HOROSHOP_ENDPOINT", server.URL+"/api/")

	root := NewRootCommand(app.WithLogOutput(io.Discard), app.WithPasswordReader(noTerminal{}))
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(`[{"article":"A-1","quantity":3}]`))
	root.SetArgs([]string{"horoshop", "residues-import", "--data", "-"})

	require.NoError(t, root.ExecuteContext(context.Background()))

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "/api/catalog/importResidues", last.Path)
	assert.Contains(t, string(last.Body), "A-1")
	assert.Contains(t, string(last.Body), "abc123")
}
