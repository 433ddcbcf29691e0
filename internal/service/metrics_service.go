package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the Prometheus collectors the API exposes.
type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration  *prometheus.HistogramVec
	RequestsTotal    *prometheus.CounterVec
	DownloadsTotal   *prometheus.CounterVec
	UploadsTotal     prometheus.Counter
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter
}

func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		DownloadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "note_downloads_total",
			Help: "Note download redirects by kind (single, preview, bulk, curriculum).",
		}, []string{"kind"}),
		UploadsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "note_uploads_total",
			Help: "Successful note uploads.",
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Catalog reads served from Redis.",
		}),
		CacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Catalog reads that fell through to Postgres.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestsTotal,
		m.DownloadsTotal,
		m.UploadsTotal,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
	)

	return m
}
