package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database
	DBQueriesTotal     *prometheus.CounterVec
	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec

	// Business
	BookingsTotal *prometheus.CounterVec
	PaymentsTotal *prometheus.CounterVec
}

// New регистрирует метрики в стандартном регистре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном регистре (удобно для тестов)
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),

		DBQueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"pool"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"pool"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"pool"}),

		BookingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_status_changes_total",
			Help:        "Booking status changes by resulting status",
			ConstLabels: constLabels,
		}, []string{"status"}),

		PaymentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "payments_total",
			Help:        "Payment attempts by method and outcome",
			ConstLabels: constLabels,
		}, []string{"method", "outcome"}),
	}
}

// RecordBookingStatus увеличивает счетчик переходов бронирований. Безопасен для nil.
func (m *Metrics) RecordBookingStatus(status string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(status).Inc()
}

// RecordPayment увеличивает счетчик попыток оплаты. Безопасен для nil.
func (m *Metrics) RecordPayment(method, outcome string) {
	if m == nil {
		return
	}
	m.PaymentsTotal.WithLabelValues(method, outcome).Inc()
}

// RecordHTTPRequest учитывает обработанный HTTP запрос. Безопасен для nil.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
