package inpost

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"saasconnector/internal/mocks"
	"saasconnector/internal/testutil"
	saaserrors "saasconnector/pkg/errors"
	"saasconnector/pkg/transport"
)

func newTestClient(t *testing.T) (*Client, *mocks.MockRequester) {
	t.Helper()
	requester := mocks.NewMockRequester(t)
	client, err := New(WithRequester(requester), WithLogger(testutil.Logger()))
	require.NoError(t, err)
	return client, requester
}

func TestNew_DefaultEndpoint(t *testing.T) {
	client, err := New()
	require.NoError(t, err)

	tr, ok := client.requester.(*transport.Transport)
	require.True(t, ok)
	assert.Equal(t, "https://api.inpost.ru", tr.Endpoint())
}

func TestClient_ParcelStatusOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/parcels/status", r.URL.Path)
		assert.Equal(t, "5086", r.URL.Query().Get("packcode"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"packcode":"5086","status":"Delivered"}`)
	}))
	defer server.Close()

	client, err := New(WithEndpoint(server.URL))
	require.NoError(t, err)

	resp, err := client.ParcelStatus(context.Background(), "5086")

	require.NoError(t, err)
	assert.Equal(t, "Delivered", resp.String("status"))
}

func TestClient_Operations(t *testing.T) {
	account := map[string]any{"telephonenumber": "9001234567", "password": "secret", "packcodes": 1}
	calc := map[string]any{"city": "Москва", "city_from": "Ростов-на-Дону", "cost": 3500}

	tests := []struct {
		name   string
		call   func(ctx context.Context, c *Client) (*transport.Response, error)
		path   string
		method transport.Method
		params map[string]any
	}{
		{
			name:   "city list",
			call:   func(ctx context.Context, c *Client) (*transport.Response, error) { return c.CityList(ctx) },
			path:   "cities",
			method: transport.MethodGet,
		},
		{
			name:   "parcel status",
			call:   func(ctx context.Context, c *Client) (*transport.Response, error) { return c.ParcelStatus(ctx, "5086") },
			path:   "parcels/status",
			method: transport.MethodGet,
			params: map[string]any{"packcode": "5086"},
		},
		{
			name:   "parcel statuses list",
			call:   func(ctx context.Context, c *Client) (*transport.Response, error) { return c.ParcelStatusesList(ctx) },
			path:   "parcels/statuses",
			method: transport.MethodGet,
		},
		{
			name: "search terminal",
			call: func(ctx context.Context, c *Client) (*transport.Response, error) {
				return c.SearchTerminal(ctx, map[string]any{"postcode": "344000"})
			},
			path:   "machines/search",
			method: transport.MethodGet,
			params: map[string]any{"postcode": "344000"},
		},
		{
			name:   "calculate",
			call:   func(ctx context.Context, c *Client) (*transport.Response, error) { return c.Calculate(ctx, calc) },
			path:   "calculate",
			method: transport.MethodGet,
			params: calc,
		},
		{
			name:   "parcel create",
			call:   func(ctx context.Context, c *Client) (*transport.Response, error) { return c.ParcelCreate(ctx, account) },
			path:   "parcels/create",
			method: transport.MethodPost,
			params: account,
		},
		{
			name:   "parcel printout",
			call:   func(ctx context.Context, c *Client) (*transport.Response, error) { return c.ParcelPrintout(ctx, account) },
			path:   "parcels/sticker",
			method: transport.MethodPost,
			params: account,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requester := newTestClient(t)
			expected := mocks.JSONResponse(http.StatusOK, `{}`)
			requester.On("MakeRequest", mock.Anything, tt.path, tt.method, tt.params, map[string]string(nil)).
				Return(expected, nil).
				Once()

			resp, err := tt.call(context.Background(), client)

			require.NoError(t, err)
			assert.Same(t, expected, resp)
		})
	}
}

func TestClient_RequiredArguments(t *testing.T) {
	tests := []struct {
		name  string
		call  func(ctx context.Context, c *Client) (*transport.Response, error)
		field string
	}{
		{
			name:  "parcel status without packcode",
			call:  func(ctx context.Context, c *Client) (*transport.Response, error) { return c.ParcelStatus(ctx, "") },
			field: "packcode",
		},
		{
			name: "calculate with key only",
			call: func(ctx context.Context, c *Client) (*transport.Response, error) {
				return c.Calculate(ctx, map[string]any{"key": "e388c1c5df4933fa"})
			},
			field: "city,city_from,cost",
		},
		{
			name: "calculate with zero cost",
			call: func(ctx context.Context, c *Client) (*transport.Response, error) {
				return c.Calculate(ctx, map[string]any{"city": "Москва", "city_from": "Ростов-на-Дону", "cost": 0})
			},
			field: "cost",
		},
		{
			name: "parcel create without credentials",
			call: func(ctx context.Context, c *Client) (*transport.Response, error) {
				return c.ParcelCreate(ctx, map[string]any{"parcels": "[]", "packcodes": 1})
			},
			field: "telephonenumber,password",
		},
		{
			name: "parcel printout without password",
			call: func(ctx context.Context, c *Client) (*transport.Response, error) {
				return c.ParcelPrintout(ctx, map[string]any{"telephonenumber": "9001234567"})
			},
			field: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, requester := newTestClient(t)

			_, err := tt.call(context.Background(), client)

			require.Error(t, err)
			assert.True(t, saaserrors.IsValidation(err))
			var validationErr *saaserrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.field, validationErr.Field)
			requester.AssertNumberOfCalls(t, "MakeRequest", 0)
		})
	}
}
