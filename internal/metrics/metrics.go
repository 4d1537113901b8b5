package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "smsbroadcast"

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Provider Metrics
	ProviderRequestDuration *prometheus.HistogramVec

	// Business Metrics
	MessagesTotal    *prometheus.CounterVec
	EventsPublished  *prometheus.CounterVec
	DeliveryLogErrs  prometheus.Counter
	ValidationErrors *prometheus.CounterVec
}

// NewMetrics registers every collector on reg. Tests pass a fresh
// prometheus.NewRegistry so collectors do not clash on the default one.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being served",
			},
		),

		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Duration of SMS Broadcast API calls in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"outcome"},
		),

		MessagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_total",
				Help:      "Total number of per-recipient messages by delivery status",
			},
			[]string{"status"},
		),
		EventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "events_published_total",
				Help:      "Total number of message events published",
			},
			[]string{"type", "outcome"},
		),
		DeliveryLogErrs: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "delivery_log_errors_total",
				Help:      "Total number of deliveries that could not be logged",
			},
		),
		ValidationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Total number of validation errors",
			},
			[]string{"field", "tag"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordProviderRequest(outcome string, duration time.Duration) {
	m.ProviderRequestDuration.WithLabelValues(outcome).Observe(duration.Seconds())
}

func (m *Metrics) RecordMessages(status string, count int) {
	m.MessagesTotal.WithLabelValues(status).Add(float64(count))
}

func (m *Metrics) RecordEventPublished(eventType, outcome string) {
	m.EventsPublished.WithLabelValues(eventType, outcome).Inc()
}

func (m *Metrics) RecordDeliveryLogError() {
	m.DeliveryLogErrs.Inc()
}

func (m *Metrics) RecordValidationError(field, tag string) {
	m.ValidationErrors.WithLabelValues(field, tag).Inc()
}
