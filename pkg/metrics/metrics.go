// Package metrics records vendor API calls made through a transport in Prometheus.
//
// Library users attach a Collector with transport.WithObserver and serve it with Handler:
//
//	reg := prometheus.NewRegistry()
//	collector, err := metrics.NewCollector(reg)
//	...
//	client, err := insales.New(domain, key, password,
//		insales.WithTransportOptions(transport.WithObserver(collector)))
//	http.Handle("/metrics", metrics.Handler(reg))
//
// Numeric path segments are recorded as {id}, so per-object calls share one series.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"saasconnector/pkg/transport"
)

const namespace = "saasconnector"

// Collector implements transport.Observer.
type Collector struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ transport.Observer = (*Collector)(nil)

// NewCollector creates the request metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of vendor API requests.",
		}, []string{"vendor", "method", "path", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Histogram of vendor API request durations.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		}, []string{"vendor", "method", "class"}),
	}

	for _, collector := range []prometheus.Collector{c.requests, c.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register request metrics: %w", err)
		}
	}
	return c, nil
}

// ObserveRequest records one request. A zero statusCode marks a call that never got a response.
func (c *Collector) ObserveRequest(
	vendor string,
	method transport.Method,
	path string,
	statusCode int,
	duration time.Duration,
) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	c.requests.WithLabelValues(vendor, string(method), route(path), status).Inc()
	c.duration.WithLabelValues(vendor, string(method), classifyStatus(statusCode)).Observe(duration.Seconds())
}

// Handler exposes the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// RequestCounts sums requests_total per vendor.
func RequestCounts(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, fmt.Errorf("failed to gather metrics: %w", err)
	}

	counts := make(map[string]float64)
	for _, family := range families {
		if family.GetName() != namespace+"_requests_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "vendor" {
					counts[label.GetValue()] += m.GetCounter().GetValue()
				}
			}
		}
	}
	return counts, nil
}

// route replaces ids in path with {id}: "orders/42.json" becomes "orders/{id}.json".
func route(path string) string {
	path, _, _ = strings.Cut(path, "?")
	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		id, _, _ := strings.Cut(segment, ".")
		if isID(id) {
			segments[i] = "{id}" + strings.TrimPrefix(segment, id)
		}
	}
	return strings.Join(segments, "/")
}

func isID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func classifyStatus(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "2xx"
	case statusCode >= 300 && statusCode < 400:
		return "3xx"
	case statusCode >= 400 && statusCode < 500:
		return "4xx"
	case statusCode >= 500 && statusCode < 600:
		return "5xx"
	default:
		return "error"
	}
}
