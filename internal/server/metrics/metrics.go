// Package metrics собирает метрики сервера синхронизации в отдельный prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/notekeeper/internal/models"
)

const namespace = "notekeeper"

// Metrics реализует handlers.SyncObserver и middleware.HTTPObserver
type Metrics struct {
	registry          *prometheus.Registry
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	pushRecords       *prometheus.CounterVec
	conflictsResolved *prometheus.CounterVec
}

// New создает registry с метриками процесса и Go runtime
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		pushRecords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "push_records_total",
			Help:      "Pushed records by type and outcome.",
		}, []string{"type", "outcome"}),
		conflictsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sync",
			Name:      "conflicts_resolved_total",
			Help:      "Resolved conflicts by resolution.",
		}, []string{"resolution"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.pushRecords,
		m.conflictsResolved,
	)

	return m
}

// RegisterConnectionsGauge публикует число открытых websocket соединений
func (m *Metrics) RegisterConnectionsGauge(connections func() int) {
	m.registry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "notify",
		Name:      "connections",
		Help:      "Open websocket notification connections.",
	}, func() float64 { return float64(connections()) }))
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObservePushRecord учитывает результат обработки одной записи из push
func (m *Metrics) ObservePushRecord(recordType models.RecordType, outcome string) {
	m.pushRecords.WithLabelValues(string(recordType), outcome).Inc()
}

// ObserveConflictResolved учитывает разрешенный конфликт
func (m *Metrics) ObserveConflictResolved(resolution models.Resolution) {
	m.conflictsResolved.WithLabelValues(string(resolution)).Inc()
}

// Handler отдает метрики в формате prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry для тестов и дополнительных коллекторов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
