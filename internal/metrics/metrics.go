package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ConversionsTotal    *prometheus.CounterVec
	HistoryRefreshTotal *prometheus.CounterVec
	CatalogLoadsTotal   prometheus.Counter
	ThemeChangesTotal   prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"path", "method", "status_code"},
		),

		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path", "method"},
		),

		ConversionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "conversions_total",
				Help: "Total number of conversion requests by outcome",
			},
			[]string{"outcome"},
		),

		HistoryRefreshTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "history_refresh_total",
				Help: "Total number of price history refreshes by result",
			},
			[]string{"result"},
		),

		CatalogLoadsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "catalog_loads_total",
				Help: "Total number of currency catalog fetches",
			},
		),

		ThemeChangesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "theme_changes_total",
				Help: "Total number of persisted theme changes",
			},
		),
	}
}
