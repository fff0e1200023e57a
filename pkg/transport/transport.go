// Package transport turns a (path, method, parameters, headers) tuple into a single HTTP call
// against a vendor endpoint and normalizes the result into a Response.
package transport

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	saaserrors "saasconnector/pkg/errors"
)

// Method is an HTTP verb supported by vendor APIs.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
	MethodPatch  Method = http.MethodPatch
)

func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		return true
	default:
		return false
	}
}

const (
	headerContentType = "Content-Type"

	// ContentTypeForm is the default body encoding.
	ContentTypeForm = "application/x-www-form-urlencoded"
	// ContentTypeJSON switches the body to JSON when passed as a content-type header override.
	ContentTypeJSON = "application/json"
)

// JSONHeaders is the header override used by calls that send a JSON body.
func JSONHeaders() map[string]string {
	return map[string]string{"content-type": ContentTypeJSON}
}

// Requester is what service clients depend on; *Transport implements it.
type Requester interface {
	MakeRequest(
		ctx context.Context,
		path string,
		method Method,
		params map[string]any,
		headers map[string]string,
	) (*Response, error)
}

// Observer receives one notification per request. statusCode is 0 when the call failed.
type Observer interface {
	ObserveRequest(vendor string, method Method, path string, statusCode int, duration time.Duration)
}

// Transport issues requests against one vendor endpoint using resty.
type Transport struct {
	endpoint string
	vendor   string
	client   *resty.Client
	limiter  *rate.Limiter
	observer Observer
	logger   *slog.Logger
}

// NewTransport creates a transport for endpoint, e.g. "https://shop.example.com/api/".
func NewTransport(endpoint string, opts ...Option) (*Transport, error) {
	endpoint = strings.TrimSpace(endpoint)
	parsed, err := url.Parse(endpoint)
	if endpoint == "" || err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, saaserrors.NewConfigurationError("endpoint", endpoint, "endpoint must be an absolute URL", err)
	}

	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	var client *resty.Client
	if o.httpClient != nil {
		client = resty.NewWithClient(o.httpClient)
	} else {
		client = resty.New()
	}
	client.SetBaseURL(strings.TrimSuffix(endpoint, "/")).
		SetLogger(restyLogger{logger: o.logger})

	if o.timeout > 0 {
		client.SetTimeout(o.timeout)
	}
	if o.insecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: true, //nolint:gosec // User-configurable for staging hosts
		})
	}
	if o.basicUser != "" {
		client.SetBasicAuth(o.basicUser, o.basicPassword)
	}
	if o.authToken != "" {
		client.SetAuthToken(o.authToken)
	}
	for key, value := range o.headers {
		client.SetHeader(key, value)
	}

	t := &Transport{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		vendor:   o.vendor,
		client:   client,
		observer: o.observer,
		logger:   o.logger,
	}

	if o.requestsPerSecond > 0 {
		t.limiter = rate.NewLimiter(rate.Limit(o.requestsPerSecond), o.burst)
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return t.limiter.Wait(req.Context())
		})
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		t.logger.DebugContext(req.Context(), "HTTP request",
			"vendor", t.vendor,
			"method", req.Method,
			"url", req.URL,
		)
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		t.logger.DebugContext(resp.Request.Context(), "HTTP response",
			"vendor", t.vendor,
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"duration", resp.Time(),
		)
		return nil
	})

	return t, nil
}

// Endpoint returns the base URL requests are resolved against.
func (t *Transport) Endpoint() string { return t.endpoint }

// MakeRequest performs exactly one HTTP call. Non-2xx statuses are returned as a Response;
// an error is returned only when arguments are invalid or the call could not complete.
func (t *Transport) MakeRequest(
	ctx context.Context,
	path string,
	method Method,
	params map[string]any,
	headers map[string]string,
) (*Response, error) {
	if strings.TrimSpace(path) == "" {
		return nil, saaserrors.NewValidationError("path", path, "required", "path must be not empty")
	}
	if !method.valid() {
		return nil, saaserrors.NewValidationError("method", string(method), "oneof",
			fmt.Sprintf("unsupported HTTP method %q", method))
	}

	req := t.client.R().SetContext(ctx)

	contentType := ContentTypeForm
	for key, value := range headers {
		if strings.EqualFold(key, headerContentType) {
			contentType = value
			continue
		}
		req.SetHeader(key, value)
	}

	if method == MethodGet {
		if len(params) > 0 {
			req.SetQueryString(EncodeParams(params))
		}
	} else {
		req.SetHeader(headerContentType, contentType)
		if isJSONContentType(contentType) {
			if params == nil {
				params = map[string]any{}
			}
			body, err := json.Marshal(params)
			if err != nil {
				return nil, saaserrors.NewValidationError("params", "", "json", fmt.Sprintf("failed to encode JSON body: %v", err))
			}
			req.SetBody(body)
		} else {
			req.SetBody(EncodeParams(params))
		}
	}

	start := time.Now()
	resp, err := req.Execute(string(method), path)
	if err != nil {
		t.observe(method, path, 0, time.Since(start))
		return nil, saaserrors.NewTransportError(string(method), t.url(path), err)
	}
	t.observe(method, path, resp.StatusCode(), time.Since(start))

	body, err := toUTF8(resp.Header().Get(headerContentType), resp.Body())
	if err != nil {
		return nil, saaserrors.NewTransportError(string(method), t.url(path), err)
	}

	return NewResponse(resp.StatusCode(), resp.Header(), body), nil
}

func (t *Transport) observe(method Method, path string, statusCode int, duration time.Duration) {
	if t.observer != nil {
		t.observer.ObserveRequest(t.vendor, method, path, statusCode, duration)
	}
}

func (t *Transport) url(path string) string {
	return t.endpoint + "/" + strings.TrimPrefix(path, "/")
}

// restyLogger routes resty's internal warnings into slog.
type restyLogger struct {
	logger *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.logger.Error(fmt.Sprintf(format, v...)) }
func (l restyLogger) Warnf(format string, v ...any)  { l.logger.Warn(fmt.Sprintf(format, v...)) }
func (l restyLogger) Debugf(format string, v ...any) { l.logger.Debug(fmt.Sprintf(format, v...)) }
