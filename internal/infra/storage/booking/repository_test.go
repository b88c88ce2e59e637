package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/document"
	"github.com/m04kA/SMC-AppointmentService/internal/syncbus"
)

type failingStore struct {
	getErr error
	putErr error
}

func (s *failingStore) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, s.getErr
}

func (s *failingStore) Put(_ context.Context, _ string, _ []byte) error {
	return s.putErr
}

func testBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		User:      domain.UserIdentity{Name: "Анна", Phone: "+79990001122"},
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Services:  []string{"Маникюр"},
		Status:    domain.StatusPending,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRepository_ReadAll_EmptyWhenDocumentMissing(t *testing.T) {
	t.Parallel()

	repo := NewRepository(document.NewMemoryStore(), syncbus.New())

	bookings, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_WriteAllThenReadAll(t *testing.T) {
	t.Parallel()

	repo := NewRepository(document.NewMemoryStore(), syncbus.New())
	ctx := context.Background()

	original := []*domain.Booking{testBooking("b-1"), testBooking("b-2")}
	require.NoError(t, repo.WriteAll(ctx, original))

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b-1", got[0].ID)
	assert.Equal(t, "b-2", got[1].ID)
	assert.Equal(t, domain.StatusPending, got[0].Status)
	assert.Equal(t, "+79990001122", got[0].User.Phone)
	assert.Equal(t, "10:00", got[0].StartTime.String())
}

func TestRepository_WriteAll_PublishesSyncEvent(t *testing.T) {
	t.Parallel()

	bus := syncbus.New()
	events, cancel := bus.Subscribe()
	defer cancel()

	repo := NewRepository(document.NewMemoryStore(), bus)
	require.NoError(t, repo.WriteAll(context.Background(), []*domain.Booking{testBooking("b-1")}))

	got := <-events
	assert.Equal(t, syncbus.KindBookings, got.Kind)
}

func TestRepository_WriteAll_NoEventOnStoreFailure(t *testing.T) {
	t.Parallel()

	bus := syncbus.New()
	events, cancel := bus.Subscribe()
	defer cancel()

	repo := NewRepository(&failingStore{putErr: errors.New("connection refused")}, bus)

	err := repo.WriteAll(context.Background(), []*domain.Booking{testBooking("b-1")})
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, events, "при неудачной записи событие не публикуется")
}

func TestRepository_ReadAll_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := NewRepository(&failingStore{getErr: errors.New("connection refused")}, syncbus.New())

	_, err := repo.ReadAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
