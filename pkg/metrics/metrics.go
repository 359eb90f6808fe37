package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec
	DBWaitCount       *prometheus.GaugeVec
	DBQueryDuration   *prometheus.HistogramVec

	CacheRequestsTotal      *prometheus.CounterVec
	AvailabilityChecks      *prometheus.CounterVec
	BookingConflictsTotal   *prometheus.CounterVec
	TransactionRetriesTotal *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре (его отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBWaitCount: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		CacheRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "cache_requests_total",
			Help:        "Cache lookups by cache name and result (hit, miss, error).",
			ConstLabels: constLabels,
		}, []string{"cache", "result"}),
		AvailabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_checks_total",
			Help:        "Availability engine calls by operation.",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		BookingConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_conflicts_total",
			Help:        "Booking writes rejected because the slot collides.",
			ConstLabels: constLabels,
		}, []string{"operation"}),
		TransactionRetriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_transaction_retries_total",
			Help:        "Serializable transactions retried after a serialization failure.",
			ConstLabels: constLabels,
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.DBWaitCount,
		m.DBQueryDuration,
		m.CacheRequestsTotal,
		m.AvailabilityChecks,
		m.BookingConflictsTotal,
		m.TransactionRetriesTotal,
	)

	return m
}

// IncCache учитывает обращение к кешу. Безопасен для nil.
func (m *Metrics) IncCache(cache, result string) {
	if m == nil {
		return
	}
	m.CacheRequestsTotal.WithLabelValues(cache, result).Inc()
}

// IncAvailability учитывает вызов движка доступности. Безопасен для nil.
func (m *Metrics) IncAvailability(operation string) {
	if m == nil {
		return
	}
	m.AvailabilityChecks.WithLabelValues(operation).Inc()
}

// IncBookingConflict учитывает отказ из-за пересечения. Безопасен для nil.
func (m *Metrics) IncBookingConflict(operation string) {
	if m == nil {
		return
	}
	m.BookingConflictsTotal.WithLabelValues(operation).Inc()
}

// IncTxRetry учитывает повтор сериализуемой транзакции. Безопасен для nil.
func (m *Metrics) IncTxRetry(result string) {
	if m == nil {
		return
	}
	m.TransactionRetriesTotal.WithLabelValues(result).Inc()
}
