package syncbus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

func TestBus_PublishToSubscriber(t *testing.T) {
	t.Parallel()

	bus := New()
	events, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(Event{Kind: KindBookings, BookingID: "b-1"})

	got := <-events
	assert.Equal(t, KindBookings, got.Kind)
	assert.Equal(t, "b-1", got.BookingID)
}

func TestBus_PublishToMultipleSubscribers(t *testing.T) {
	t.Parallel()

	bus := New()
	first, cancelFirst := bus.Subscribe()
	defer cancelFirst()
	second, cancelSecond := bus.Subscribe()
	defer cancelSecond()

	bus.Publish(Event{Kind: KindSettings})

	assert.Equal(t, KindSettings, (<-first).Kind)
	assert.Equal(t, KindSettings, (<-second).Kind)
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	bus := New()
	// не должно паниковать и не должно блокироваться
	bus.Publish(Event{Kind: KindBookings})
}

func TestBus_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	t.Parallel()

	bus := New()
	events, cancel := bus.Subscribe()
	defer cancel()

	// переполняем буфер подписчика: Publish обязан не блокироваться
	for i := 0; i < subscriberBuffer*2; i++ {
		bus.Publish(Event{Kind: KindBookings})
	}

	// буфер полон, лишние события отброшены
	assert.Len(t, events, subscriberBuffer)
}

func TestBus_PublishRecordsMetric(t *testing.T) {
	t.Parallel()

	// promauto регистрирует коллекторы в глобальном реестре,
	// поэтому metrics.New вызывается в этом бинаре ровно один раз
	m := metrics.New("syncbus-test")
	bus := New().WithMetrics(m)

	bus.Publish(Event{Kind: KindBookings})
	bus.Publish(Event{Kind: KindBookings})
	bus.Publish(Event{Kind: KindSettings})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SyncEventsTotal.WithLabelValues(string(KindBookings))))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncEventsTotal.WithLabelValues(string(KindSettings))))
}

func TestBus_CancelClosesChannel(t *testing.T) {
	t.Parallel()

	bus := New()
	events, cancel := bus.Subscribe()

	cancel()

	_, open := <-events
	require.False(t, open, "после отписки канал закрыт")

	// после отписки публикация не достигает канала и не паникует
	bus.Publish(Event{Kind: KindBookings})

	// повторная отписка безопасна
	cancel()
}
