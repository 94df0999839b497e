package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Drop reasons reported by the standardization pipeline
const (
	ReasonUnrecognized = "unrecognized"
	ReasonInvalid      = "invalid"
	ReasonNonObject    = "non_object"
)

// Metrics groups the collectors exported by the storefront.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry            *prometheus.Registry
	VendorFetchDuration *prometheus.HistogramVec
	VendorFetchFailures *prometheus.CounterVec
	StandardizeDropped  *prometheus.CounterVec
	StandardizeAccepted prometheus.Counter
}

// New creates the collectors and registers them on a fresh registry
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		VendorFetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_vendor_fetch_duration_seconds",
				Help:    "Duration of vendor feed fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		VendorFetchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_vendor_fetch_failures_total",
				Help: "Vendor feed fetches that failed and contributed no products",
			},
			[]string{"provider"},
		),
		StandardizeDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_standardize_dropped_total",
				Help: "Raw records dropped during standardization",
			},
			[]string{"reason"},
		),
		StandardizeAccepted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_standardize_accepted_total",
				Help: "Raw records standardized into canonical products",
			},
		),
	}

	m.registry.MustRegister(
		m.VendorFetchDuration,
		m.VendorFetchFailures,
		m.StandardizeDropped,
		m.StandardizeAccepted,
		prometheus.NewGoCollector(),
	)
	return m
}

// ObserveFetch records one vendor fetch
func (m *Metrics) ObserveFetch(provider string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.VendorFetchDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
	if err != nil {
		m.VendorFetchFailures.WithLabelValues(provider).Inc()
	}
}

// RecordStandardize records the outcome of one standardized batch
func (m *Metrics) RecordStandardize(accepted, unrecognized, invalid, nonObject int) {
	if m == nil {
		return
	}
	m.StandardizeAccepted.Add(float64(accepted))
	m.StandardizeDropped.WithLabelValues(ReasonUnrecognized).Add(float64(unrecognized))
	m.StandardizeDropped.WithLabelValues(ReasonInvalid).Add(float64(invalid))
	m.StandardizeDropped.WithLabelValues(ReasonNonObject).Add(float64(nonObject))
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
