package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/document"
	"github.com/m04kA/SMC-AppointmentService/internal/syncbus"
)

// Repository репозиторий коллекции бронирований.
//
// Коллекция хранится одним документом и заменяется целиком при каждой
// мутации: прочитать всё, изменить, записать всё. Конкурентные писатели
// из разных процессов работают по принципу last-writer-wins на уровне
// всей коллекции — известное ограничение; версионирование документа
// (compare-and-swap) сюда сознательно не добавлено.
//
// Репозиторий владеет шиной изменений: каждая успешная запись публикует
// событие KindBookings.
type Repository struct {
	store document.Store
	bus   *syncbus.Bus
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store document.Store, bus *syncbus.Bus) *Repository {
	return &Repository{store: store, bus: bus}
}

// ReadAll читает коллекцию бронирований целиком.
// Отсутствие документа означает пустую коллекцию.
func (r *Repository) ReadAll(ctx context.Context) ([]*domain.Booking, error) {
	body, err := r.store.Get(ctx, document.DocBookings)
	if errors.Is(err, document.ErrDocumentNotFound) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ReadAll - read document: %v", ErrStoreUnavailable, err)
	}

	bookings := make([]*domain.Booking, 0)
	if err := json.Unmarshal(body, &bookings); err != nil {
		return nil, fmt.Errorf("%w: ReadAll - unmarshal collection: %v", ErrDecode, err)
	}

	return bookings, nil
}

// WriteAll заменяет коллекцию бронирований целиком.
// При успехе публикует событие изменения, чтобы открытые представления
// перечитали хранилище.
func (r *Repository) WriteAll(ctx context.Context, bookings []*domain.Booking) error {
	body, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("%w: WriteAll - marshal collection: %v", ErrEncode, err)
	}

	if err := r.store.Put(ctx, document.DocBookings, body); err != nil {
		return fmt.Errorf("%w: WriteAll - write document: %v", ErrStoreUnavailable, err)
	}

	r.bus.Publish(syncbus.Event{Kind: syncbus.KindBookings})
	return nil
}
