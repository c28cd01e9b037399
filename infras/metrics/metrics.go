package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tavola"

// Metrics holds the Prometheus collectors for the booking lifecycle.
type Metrics struct {
	registry *prometheus.Registry

	BookingsCreated   prometheus.Counter
	StatusTransitions *prometheus.CounterVec
	BookingsUpdated   prometheus.Counter
	StorageFailures   *prometheus.CounterVec
	BookingsHeld      prometheus.Gauge
	RequestDuration   *prometheus.HistogramVec
}

// New registers the collectors on a private registry so several instances
// can coexist in one process.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total number of bookings created",
		}),

		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_transitions_total",
			Help:      "Status transitions applied to bookings, by target status",
		}, []string{"status"}),

		BookingsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_updated_total",
			Help:      "Partial updates applied to existing bookings",
		}),

		StorageFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_storage_failures_total",
			Help:      "Durable storage failures, by operation",
		}, []string{"operation"}),

		BookingsHeld: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bookings_held",
			Help:      "Bookings currently held by the store",
		}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the private registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
