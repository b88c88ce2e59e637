package moderation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/document"
	settingsstore "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/syncbus"
)

const adminPhone = "+79990000000"

type fakeBookingRepo struct {
	bookings []*domain.Booking
	writes   int
}

func (f *fakeBookingRepo) ReadAll(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, len(f.bookings))
	copy(out, f.bookings)
	return out, nil
}

func (f *fakeBookingRepo) WriteAll(_ context.Context, bookings []*domain.Booking) error {
	f.bookings = bookings
	f.writes++
	return nil
}

type fakeSettingsRepo struct{}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	s := domain.DefaultSettings()
	s.AdminPhone = adminPhone
	return s, nil
}

type fakeNotifier struct{}

func (fakeNotifier) BookingApproved(_ context.Context, _ *domain.Booking) error { return nil }
func (fakeNotifier) BookingCanceled(_ context.Context, _ *domain.Booking) error { return nil }
func (fakeNotifier) BookingPaid(_ context.Context, _ *domain.Booking) error     { return nil }

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func admin() domain.UserIdentity {
	return domain.UserIdentity{Name: "Мария", Phone: adminPhone}
}

func owner() domain.UserIdentity {
	return domain.UserIdentity{Name: "Анна", Phone: "+79990001122"}
}

func stranger() domain.UserIdentity {
	return domain.UserIdentity{Name: "Борис", Phone: "+79990009999"}
}

func testBooking(id string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		User:      owner(),
		Date:      time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    status,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newTestService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: bookings}
	svc := NewService(repo, &fakeSettingsRepo{}, fakeNotifier{}, nopLogger{}).
		WithTimeProvider(&fixedTimeProvider{now: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)})
	return svc, repo
}

func TestApprove_PendingBecomesApproved(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(testBooking("b-1", domain.StatusPending))

	got, err := svc.Approve(context.Background(), "b-1", admin())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, got.Status)
	require.NotNil(t, got.ApprovedAt)
	assert.Equal(t, 1, repo.writes)
	assert.Equal(t, domain.StatusApproved, repo.bookings[0].Status)
}

func TestApprove_AlreadyApprovedIsNoOp(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(testBooking("b-1", domain.StatusApproved))

	got, err := svc.Approve(context.Background(), "b-1", admin())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, got.Status)
	assert.Equal(t, 0, repo.writes, "повторный Approve коллекцию не переписывает")
}

func TestApprove_CanceledIsInvalidTransition(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(testBooking("b-1", domain.StatusCanceledAdmin))

	got, err := svc.Approve(context.Background(), "b-1", admin())
	require.ErrorIs(t, err, ErrInvalidTransition)

	// запись возвращается без изменений, коллекция не переписывается
	assert.Equal(t, domain.StatusCanceledAdmin, got.Status)
	assert.Equal(t, 0, repo.writes)
}

func TestApprove_RequiresAdmin(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(testBooking("b-1", domain.StatusPending))

	_, err := svc.Approve(context.Background(), "b-1", owner())
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, repo.writes)
}

func TestApprove_NotFoundIsNoOp(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(testBooking("b-1", domain.StatusPending))

	_, err := svc.Approve(context.Background(), "missing", admin())
	require.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, 0, repo.writes)
}

func TestCancel_ByAdmin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(testBooking("b-1", domain.StatusApproved))

	got, err := svc.Cancel(context.Background(), "b-1", admin())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCanceledAdmin, got.Status)
	require.NotNil(t, got.CanceledAt)
}

func TestCancel_ByOwner(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(testBooking("b-1", domain.StatusPending))

	got, err := svc.Cancel(context.Background(), "b-1", owner())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCanceledClient, got.Status)
}

func TestCancel_ByStrangerDenied(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(testBooking("b-1", domain.StatusPending))

	_, err := svc.Cancel(context.Background(), "b-1", stranger())
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, repo.writes)
}

func TestCancel_IsMonotonic(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(testBooking("b-1", domain.StatusCanceledClient))

	// повторная отмена терминальной записи ничего не меняет
	got, err := svc.Cancel(context.Background(), "b-1", admin())
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusCanceledClient, got.Status)
	assert.Equal(t, 0, repo.writes)
}

func TestCancel_KeepsPaidFlag(t *testing.T) {
	t.Parallel()

	b := testBooking("b-1", domain.StatusApproved)
	b.Paid = true
	svc, _ := newTestService(b)

	got, err := svc.Cancel(context.Background(), "b-1", admin())
	require.NoError(t, err)

	assert.True(t, got.Paid, "отметка оплаты при отмене не сбрасывается")
}

func TestTogglePaid_Flips(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(testBooking("b-1", domain.StatusPending))
	ctx := context.Background()

	got, err := svc.TogglePaid(ctx, "b-1", admin())
	require.NoError(t, err)
	assert.True(t, got.Paid)

	got, err = svc.TogglePaid(ctx, "b-1", admin())
	require.NoError(t, err)
	assert.False(t, got.Paid)

	assert.Equal(t, 2, repo.writes)
}

func TestTogglePaid_AllowedOnTerminalBooking(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(testBooking("b-1", domain.StatusCanceledAdmin))

	got, err := svc.TogglePaid(context.Background(), "b-1", admin())
	require.NoError(t, err)

	assert.True(t, got.Paid, "отметка оплаты переключается в любом статусе")
	assert.Equal(t, domain.StatusCanceledAdmin, got.Status)
}

func TestTogglePaid_RequiresAdmin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(testBooking("b-1", domain.StatusPending))

	_, err := svc.TogglePaid(context.Background(), "b-1", owner())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestApprove_AdminFromSeededDefaultsOnFreshStore(t *testing.T) {
	t.Parallel()

	// чистая база: документа настроек еще нет, администратор приходит
	// из стартовых настроек конфигурации, а не из ручного Update
	seed := domain.DefaultSettings()
	seed.AdminPhone = adminPhone

	store := document.NewMemoryStore()
	bus := syncbus.New()
	bookings := bookingstore.NewRepository(store, bus)
	settings := settingsstore.NewRepository(store, bus).WithDefaults(seed)

	ctx := context.Background()
	require.NoError(t, bookings.WriteAll(ctx, []*domain.Booking{testBooking("b-1", domain.StatusPending)}))

	svc := NewService(bookings, settings, fakeNotifier{}, nopLogger{})

	got, err := svc.Approve(ctx, "b-1", admin())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)

	// не-администратор по-прежнему отклоняется
	_, err = svc.Approve(ctx, "b-1", owner())
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestModeration_OnlyTargetChanges(t *testing.T) {
	t.Parallel()

	other := testBooking("b-2", domain.StatusPending)
	other.StartTime = "12:00"
	svc, repo := newTestService(testBooking("b-1", domain.StatusPending), other)

	_, err := svc.Approve(context.Background(), "b-1", admin())
	require.NoError(t, err)

	require.Len(t, repo.bookings, 2)
	assert.Equal(t, domain.StatusApproved, repo.bookings[0].Status)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status, "соседние записи не затрагиваются")
}
