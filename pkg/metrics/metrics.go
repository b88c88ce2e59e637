package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	StoreOpsTotal   *prometheus.CounterVec
	SyncEventsTotal *prometheus.CounterVec
}

// New регистрирует и возвращает коллекторы сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		StoreOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "document_store_operations_total",
			Help:        "Total number of document store reads and writes",
			ConstLabels: constLabels,
		}, []string{"operation", "document", "result"}),

		SyncEventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "sync_events_published_total",
			Help:        "Total number of sync events published to the change bus",
			ConstLabels: constLabels,
		}, []string{"kind"}),
	}
}

// ObserveRequest записывает метрики одного HTTP-запроса
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStoreOp записывает метрику одной операции с документом
func (m *Metrics) ObserveStoreOp(operation, document string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.StoreOpsTotal.WithLabelValues(operation, document, result).Inc()
}

// ObserveSyncEvent записывает метрику одного события шины изменений
func (m *Metrics) ObserveSyncEvent(kind string) {
	m.SyncEventsTotal.WithLabelValues(kind).Inc()
}
