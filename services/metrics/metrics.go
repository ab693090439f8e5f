// Package metricsvc exposes the platform's Prometheus metrics.
package metricsvc

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trezcool/mentorhub/core/material"
	"github.com/trezcool/mentorhub/core/program"
	"github.com/trezcool/mentorhub/core/user"
)

const namespace = "mentorhub"

// Metrics owns its registry so that several servers can live in one process (tests).
type Metrics struct {
	registry         *prometheus.Registry
	requests         *prometheus.CounterVec
	latency          *prometheus.HistogramVec
	logins           *prometheus.CounterVec
	registrations    *prometheus.CounterVec
	lessonsCompleted *prometheus.CounterVec
	downloads        *prometheus.CounterVec
	messagesSent     prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latencies by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Successful logins by role.",
		}, []string{"role"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Successful registrations by role.",
		}, []string{"role"}),
		lessonsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lessons_completed_total",
			Help:      "Program lessons marked as completed.",
		}, []string{"program"}),
		downloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "material_downloads_total",
			Help:      "Material downloads by category.",
		}, []string{"category"}),
		messagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Messages and notes sent.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.latency,
		m.logins,
		m.registrations,
		m.lessonsCompleted,
		m.downloads,
		m.messagesSent,
	)
	return m
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Gatherer is used by tests to inspect collected metrics.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// TrackWorkspaces exposes the number of live workspaces reported by `count`.
func (m *Metrics) TrackWorkspaces(count func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "workspaces",
		Help:      "Live session workspaces.",
	}, func() float64 { return float64(count()) }))
}

func (m *Metrics) ObserveRequest(route, method string, code int, elapsed time.Duration) {
	m.requests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.latency.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (m *Metrics) LoggedIn(role user.Role) {
	m.logins.WithLabelValues(string(role)).Inc()
}

func (m *Metrics) Registered(role user.Role) {
	m.registrations.WithLabelValues(string(role)).Inc()
}

// LessonCompleted is a program.LessonCompletedHook.
func (m *Metrics) LessonCompleted(prog program.Program, _ program.Lesson) {
	m.lessonsCompleted.WithLabelValues(prog.ID).Inc()
}

func (m *Metrics) MessageSent() {
	m.messagesSent.Inc()
}

// Downloads returns a material.Fetcher that counts the fetched files.
func (m *Metrics) Downloads() material.Fetcher {
	return downloadCounter{m.downloads}
}

type downloadCounter struct {
	counter *prometheus.CounterVec
}

func (dc downloadCounter) Fetch(_ context.Context, mat material.Material) error {
	dc.counter.WithLabelValues(mat.Category).Inc()
	return nil
}
