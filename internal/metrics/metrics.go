// Package metrics registers the Prometheus collectors used by the API.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK        = "ok"
	ResultConflict  = "conflict"
	ResultNotFound  = "not_found"
	ResultRejected  = "rejected"
	ResultError     = "error"
	OperationAdd    = "add"
	OperationRemove = "remove"
)

// Recorder is what services and middleware depend on.
type Recorder interface {
	RecordRelationToggle(kind, operation, result string)
	RecordHTTPRequest(method, path string, status int, duration time.Duration)
	RecordShoppingListBuilt(items int)
}

type Collector struct {
	relationToggles     *prometheus.CounterVec
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	shoppingListItems   prometheus.Histogram
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		relationToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodgram_relation_toggles_total",
			Help: "Favorite, shopping cart and subscription add/remove attempts by outcome",
		}, []string{"kind", "op", "result"}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "foodgram_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "foodgram_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		}, []string{"method", "path"}),
		shoppingListItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "foodgram_shopping_list_items",
			Help:    "Number of aggregated lines per built shopping list",
			Buckets: prometheus.LinearBuckets(0, 10, 10),
		}),
	}

	reg.MustRegister(
		c.relationToggles,
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.shoppingListItems,
	)
	return c
}

func (c *Collector) RecordRelationToggle(kind, operation, result string) {
	c.relationToggles.WithLabelValues(kind, operation, result).Inc()
}

func (c *Collector) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, path, statusLabel(status)).Inc()
	c.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func (c *Collector) RecordShoppingListBuilt(items int) {
	c.shoppingListItems.Observe(float64(items))
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordRelationToggle(string, string, string) {}
func (Nop) RecordHTTPRequest(string, string, int, time.Duration) {}
func (Nop) RecordShoppingListBuilt(int) {}
