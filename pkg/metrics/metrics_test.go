package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// promauto регистрирует коллекторы в глобальном реестре,
// поэтому New вызывается в этом бинаре ровно один раз
var testMetrics = New("metrics-test")

func TestMetrics_ObserveRequest(t *testing.T) {
	testMetrics.ObserveRequest("GET", "/api/v1/slots", 200, 15*time.Millisecond)
	testMetrics.ObserveRequest("GET", "/api/v1/slots", 200, 20*time.Millisecond)
	testMetrics.ObserveRequest("POST", "/api/v1/bookings", 409, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(testMetrics.RequestsTotal.WithLabelValues("GET", "/api/v1/slots", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(testMetrics.RequestsTotal.WithLabelValues("POST", "/api/v1/bookings", "409")))
}

func TestMetrics_ObserveStoreOp(t *testing.T) {
	testMetrics.ObserveStoreOp("get", "bookings", nil)
	testMetrics.ObserveStoreOp("get", "bookings", nil)
	testMetrics.ObserveStoreOp("put", "settings", errors.New("connection refused"))

	assert.Equal(t, 2.0, testutil.ToFloat64(testMetrics.StoreOpsTotal.WithLabelValues("get", "bookings", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(testMetrics.StoreOpsTotal.WithLabelValues("put", "settings", "error")))
}

func TestMetrics_ObserveSyncEvent(t *testing.T) {
	testMetrics.ObserveSyncEvent("bookings")
	testMetrics.ObserveSyncEvent("bookings")
	testMetrics.ObserveSyncEvent("settings")

	assert.Equal(t, 2.0, testutil.ToFloat64(testMetrics.SyncEventsTotal.WithLabelValues("bookings")))
	assert.Equal(t, 1.0, testutil.ToFloat64(testMetrics.SyncEventsTotal.WithLabelValues("settings")))
}
