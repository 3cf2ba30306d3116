// Package metrics exports classification and HTTP metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "intent_router"

// Exporter owns a registry and the collectors recorded by the service.
type Exporter struct {
	registry *prometheus.Registry

	// Classifier metrics
	classifyLatency  prometheus.Histogram
	classifications  *prometheus.CounterVec
	contextBoosts    *prometheus.CounterVec
	disambiguations  prometheus.Counter
	multiIntentTurns prometheus.Counter
	sessions         prometheus.Gauge

	// HTTP metrics
	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec
}

// Config configures the exporter.
type Config struct {
	// Registry to use (if nil, creates a new one)
	Registry *prometheus.Registry

	// Buckets for latency histograms (in seconds)
	LatencyBuckets []float64
}

// DefaultConfig returns buckets sized for an in-memory pipeline.
func DefaultConfig() Config {
	return Config{
		LatencyBuckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	}
}

func New(cfg Config) *Exporter {
	if len(cfg.LatencyBuckets) == 0 {
		cfg.LatencyBuckets = DefaultConfig().LatencyBuckets
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := &Exporter{registry: registry}

	e.classifyLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "classify_latency_seconds",
			Help:      "End-to-end classification latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
	)

	e.classifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "classifications_total",
			Help:      "Total number of classifications by resolved intent",
		},
		[]string{"intent", "agent"},
	)

	e.contextBoosts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "context_boosts_total",
			Help:      "Classifications switched to a recent session intent",
		},
		[]string{"intent"},
	)

	e.disambiguations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "disambiguations_total",
			Help:      "Classifications that needed a clarification prompt",
		},
	)

	e.multiIntentTurns = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "classifier",
			Name:      "multi_intent_total",
			Help:      "Utterances split into more than one sub-intent",
		},
	)

	e.sessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "active",
			Help:      "Number of sessions held in memory",
		},
	)

	e.httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	e.httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_latency_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"method", "route"},
	)

	registry.MustRegister(
		e.classifyLatency,
		e.classifications,
		e.contextBoosts,
		e.disambiguations,
		e.multiIntentTurns,
		e.sessions,
		e.httpRequests,
		e.httpLatency,
	)

	return e
}

// Classification is the outcome of one classify call.
type Classification struct {
	Intent      string
	Agent       string
	Latency     time.Duration
	Boosted     bool
	Ambiguous   bool
	MultiIntent bool
}

func (e *Exporter) RecordClassification(c Classification) {
	e.classifyLatency.Observe(c.Latency.Seconds())
	e.classifications.WithLabelValues(c.Intent, c.Agent).Inc()
	if c.Boosted {
		e.contextBoosts.WithLabelValues(c.Intent).Inc()
	}
	if c.Ambiguous {
		e.disambiguations.Inc()
	}
	if c.MultiIntent {
		e.multiIntentTurns.Inc()
	}
}

func (e *Exporter) SetActiveSessions(n int) {
	e.sessions.Set(float64(n))
}

func (e *Exporter) RecordHTTPRequest(method, route string, status int, latency time.Duration) {
	e.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	e.httpLatency.WithLabelValues(method, route).Observe(latency.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}
