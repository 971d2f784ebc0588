// Package metrics Prometheus-метрики бота: HTTP и доставка уведомлений
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Получатели уведомлений
const (
	TargetAdmin    = "admin"
	TargetFallback = "fallback"
	TargetClient   = "client"
)

// Маршруты заявки
const (
	RouteAdmins   = "admins"
	RouteFallback = "fallback"
	RouteUnrouted = "unrouted"
)

const (
	resultOK    = "ok"
	resultError = "error"

	unmatchedPath = "unmatched"
)

type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	httpInflight  prometheus.Gauge
	notifications *prometheus.CounterVec
	routed        *prometheus.CounterVec
	statusChanges *prometheus.CounterVec
	indexEntries  prometheus.Gauge
}

// New регистрирует коллекторы в reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		httpInflight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_inflight",
				Help: "Current number of in-flight HTTP requests.",
			},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autoservice_notifications_total",
				Help: "Outbound notifications by target and result.",
			},
			[]string{"target", "result"},
		),
		routed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autoservice_requests_routed_total",
				Help: "Accepted requests by routing outcome.",
			},
			[]string{"route"},
		),
		statusChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "autoservice_status_changes_total",
				Help: "Request status changes by disposition.",
			},
			[]string{"disposition"},
		),
		indexEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "autoservice_request_index_entries",
				Help: "Entries currently held by the in-memory request index.",
			},
		),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.httpInflight, m.notifications, m.routed, m.statusChanges, m.indexEntries)
	return m
}

// Notification учитывает одну попытку отправки
func (m *Metrics) Notification(target string, err error) {
	if m == nil {
		return
	}
	result := resultOK
	if err != nil {
		result = resultError
	}
	m.notifications.WithLabelValues(target, result).Inc()
}

func (m *Metrics) RequestRouted(route string) {
	if m == nil {
		return
	}
	m.routed.WithLabelValues(route).Inc()
}

func (m *Metrics) StatusChanged(disposition string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(disposition).Inc()
}

// RequestIndexSize текущий размер индекса заявок в памяти
func (m *Metrics) RequestIndexSize(n int) {
	if m == nil {
		return
	}
	m.indexEntries.Set(float64(n))
}

// HTTPMiddleware gin middleware: счётчик, длительность и запросы в полёте.
// path - зарегистрированный маршрут, все незнакомые пути идут под одной меткой
func (m *Metrics) HTTPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.httpInflight.Inc()
		defer m.httpInflight.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedPath
		}
		method := c.Request.Method

		m.httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
