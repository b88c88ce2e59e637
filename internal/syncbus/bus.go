// Package syncbus реализует внутрипроцессную шину изменений (Sync Signal).
// Каждая успешная мутация хранилища публикует событие; открытые
// представления подписываются и перечитывают данные.
package syncbus

import (
	"sync"

	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
)

// EventKind вид изменившихся данных
type EventKind string

const (
	KindBookings EventKind = "bookings"
	KindSettings EventKind = "settings"
)

// Event одно уведомление об изменении
type Event struct {
	Kind      EventKind `json:"kind"`
	BookingID string    `json:"bookingId,omitempty"`
}

const subscriberBuffer = 16

// Bus шина публикации/подписки. Publish не блокируется: события для
// медленных подписчиков отбрасываются, подписчик в любом случае
// перечитывает хранилище целиком.
type Bus struct {
	mu      sync.RWMutex
	subs    map[chan Event]struct{}
	metrics *metrics.Metrics
}

// New создает пустую шину
func New() *Bus {
	return &Bus{
		subs: make(map[chan Event]struct{}),
	}
}

// WithMetrics включает учет опубликованных событий
func (b *Bus) WithMetrics(m *metrics.Metrics) *Bus {
	b.metrics = m
	return b
}

// Subscribe возвращает канал событий и функцию отписки.
// После вызова функции отписки канал закрывается.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
		b.mu.Unlock()
	}

	return ch, cancel
}

// Publish рассылает событие всем подписчикам
func (b *Bus) Publish(event Event) {
	if b.metrics != nil {
		b.metrics.ObserveSyncEvent(string(event.Kind))
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subs {
		select {
		case ch <- event:
		default:
			// подписчик не успевает — событие для него пропускается
		}
	}
}
