// Package metrics holds the Prometheus collectors for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered on one registry.
type Metrics struct {
	registry        *prometheus.Registry
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	EventsPublished *prometheus.CounterVec
	EventsDropped   *prometheus.CounterVec
}

// New creates collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sport",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sport",
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		EventsPublished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sport",
				Subsystem: "events",
				Name:      "published_total",
				Help:      "Change events by entity, operation and result",
			},
			[]string{"entity", "op", "result"},
		),
		EventsDropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sport",
				Subsystem: "events",
				Name:      "dropped_total",
				Help:      "Change events dropped before publishing",
			},
			[]string{"entity", "op"},
		),
	}

	m.registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.EventsPublished, m.EventsDropped)
	m.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// RecordRequest counts one finished HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordEventPublished counts one change event publish attempt.
func (m *Metrics) RecordEventPublished(entity, op string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.EventsPublished.WithLabelValues(entity, op, result).Inc()
}

// RecordEventDropped counts one change event that never reached a publisher.
func (m *Metrics) RecordEventDropped(entity, op string) {
	m.EventsDropped.WithLabelValues(entity, op).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
