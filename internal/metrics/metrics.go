// Package metrics exposes delivery counters for the dispatch pipeline.
// Every call is best-effort: a broken sink must never affect dispatch
// correctness, so push failures are logged and swallowed.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/model"
)

// Sink aggregates dispatch outcome metrics on its own registry.
type Sink struct {
	registry   *prometheus.Registry
	deliveries *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	pending    prometheus.Gauge
	pusher     *push.Pusher // nil when no Pushgateway is configured
}

// NewSink creates a sink. When pushURL is empty, Flush is a no-op and the
// metrics are only served through Handler.
func NewSink(pushURL, job string) *Sink {
	registry := prometheus.NewRegistry()

	deliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "notifyx_deliveries_total",
		Help: "Channel delivery attempts by outcome.",
	}, []string{"channel", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "notifyx_delivery_duration_seconds",
		Help:    "Duration of channel delivery attempts.",
		Buckets: prometheus.DefBuckets,
	}, []string{"channel"})

	pending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "notifyx_pending_deliveries",
		Help: "Delivery jobs enqueued but not yet settled.",
	})

	registry.MustRegister(deliveries, duration, pending)

	var pusher *push.Pusher
	if pushURL != "" {
		pusher = push.New(pushURL, job).Gatherer(registry)
	}

	return &Sink{
		registry:   registry,
		deliveries: deliveries,
		duration:   duration,
		pending:    pending,
		pusher:     pusher,
	}
}

// ObserveDelivery records one channel attempt.
func (s *Sink) ObserveDelivery(channel model.Channel, status string, elapsed time.Duration) {
	s.deliveries.WithLabelValues(string(channel), status).Inc()
	s.duration.WithLabelValues(string(channel)).Observe(elapsed.Seconds())
}

// IncPending bumps the in-flight delivery gauge.
func (s *Sink) IncPending() {
	s.pending.Inc()
}

// DecPending drops the in-flight delivery gauge.
func (s *Sink) DecPending() {
	s.pending.Dec()
}

// Flush pushes the current metric state to the Pushgateway, if configured.
func (s *Sink) Flush() {
	if s.pusher == nil {
		return
	}

	if err := s.pusher.Push(); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to push metrics")
	}
}

// Handler serves the sink's registry in Prometheus exposition format.
func (s *Sink) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
