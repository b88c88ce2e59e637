package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func admin() domain.UserIdentity {
	return domain.UserIdentity{Name: "Мария", Phone: adminPhone}
}

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func booking(id string, date time.Time, start types.TimeString, created time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		User:      domain.UserIdentity{Name: "Анна Иванова", Phone: "+79990001122"},
		Date:      date,
		StartTime: start,
		Status:    domain.StatusPending,
		CreatedAt: created,
	}
}

func newTestService(bookings ...*domain.Booking) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{bookings: bookings}
	return NewService(repo, &fakeSettingsRepo{}, nopLogger{}), repo
}

func TestList_SortedBySlotThenCreatedAt(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(
		booking("b-late", day(16), "10:00", created),
		booking("b-second", day(15), "12:00", created),
		booking("b-first", day(15), "10:00", created.Add(time.Hour)),
		booking("b-tie-early", day(15), "14:00", created),
		booking("b-tie-late", day(15), "14:00", created.Add(time.Minute)),
	)

	got, err := svc.List(context.Background(), domain.BookingsFilter{}, admin())
	require.NoError(t, err)

	ids := make([]string, len(got))
	for i, b := range got {
		ids[i] = b.ID
	}
	assert.Equal(t, []string{"b-first", "b-second", "b-tie-early", "b-tie-late", "b-late"}, ids)
}

func TestList_FilterByDate(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(
		booking("b-1", day(15), "10:00", created),
		booking("b-2", day(16), "10:00", created),
	)

	target := day(15)
	got, err := svc.List(context.Background(), domain.BookingsFilter{Date: &target}, admin())
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)
}

func TestList_FilterByStatus(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	canceled := booking("b-2", day(15), "12:00", created)
	canceled.Status = domain.StatusCanceledClient

	svc, _ := newTestService(booking("b-1", day(15), "10:00", created), canceled)
	ctx := context.Background()

	got, err := svc.List(ctx, domain.BookingsFilter{Status: "pending"}, admin())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)

	// "all" и пустой статус возвращают всё
	got, err = svc.List(ctx, domain.BookingsFilter{Status: domain.StatusFilterAll}, admin())
	require.NoError(t, err)
	assert.Len(t, got, 2)

	_, err = svc.List(ctx, domain.BookingsFilter{Status: "bogus"}, admin())
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestList_QueryIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	withInstagram := booking("b-2", day(15), "12:00", created)
	withInstagram.User = domain.UserIdentity{
		Name:      "Борис Петров",
		Phone:     "+79990003344",
		Instagram: ptr.Ptr("@Boris_Nails"),
	}

	svc, _ := newTestService(booking("b-1", day(15), "10:00", created), withInstagram)
	ctx := context.Background()

	got, err := svc.List(ctx, domain.BookingsFilter{Query: "анна"}, admin())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b-1", got[0].ID)

	got, err = svc.List(ctx, domain.BookingsFilter{Query: "boris_nails"}, admin())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b-2", got[0].ID)

	got, err = svc.List(ctx, domain.BookingsFilter{Query: "0003344"}, admin())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b-2", got[0].ID)
}

func TestList_RequiresAdmin(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.List(context.Background(), domain.BookingsFilter{},
		domain.UserIdentity{Name: "Анна", Phone: "+79990001122"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExport_PreservesOrderAndLabelsFilter(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(
		booking("b-2", day(15), "12:00", created),
		booking("b-1", day(15), "10:00", created),
	)

	target := day(15)
	view, err := svc.Export(context.Background(), domain.BookingsFilter{
		Date:   &target,
		Status: "pending",
		Query:  "Анна",
	}, admin())
	require.NoError(t, err)

	require.Len(t, view.Records, 2)
	assert.Equal(t, "b-1", view.Records[0].ID, "экспорт сохраняет порядок списка")
	assert.Equal(t, "дата 2026-03-15, статус pending, поиск «Анна»", view.FilterLabel)
}

func TestExport_EmptyFilterLabel(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	view, err := svc.Export(context.Background(), domain.BookingsFilter{}, admin())
	require.NoError(t, err)
	assert.Equal(t, "все записи", view.FilterLabel)
}

func TestPropagateIdentity_RewritesMatchingSnapshots(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	foreign := booking("b-3", day(16), "10:00", created)
	foreign.User = domain.UserIdentity{Name: "Борис", Phone: "+79990003344"}

	svc, repo := newTestService(
		booking("b-1", day(15), "10:00", created),
		booking("b-2", day(16), "12:00", created),
		foreign,
	)

	updated, err := svc.PropagateIdentity(context.Background(), "+79990001122",
		domain.UserIdentity{Name: "Анна Сидорова", Phone: "+79995556677"})
	require.NoError(t, err)

	assert.Equal(t, 2, updated)
	assert.Equal(t, 1, repo.writes)
	assert.Equal(t, "+79995556677", repo.bookings[0].User.Phone)
	assert.Equal(t, "Анна Сидорова", repo.bookings[0].User.Name)
	assert.Equal(t, "+79990003344", repo.bookings[2].User.Phone, "чужие записи не затрагиваются")
}

func TestPropagateIdentity_NoMatchesSkipsWrite(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, repo := newTestService(booking("b-1", day(15), "10:00", created))

	updated, err := svc.PropagateIdentity(context.Background(), "+70000000000",
		domain.UserIdentity{Name: "Кто-то", Phone: "+71111111111"})
	require.NoError(t, err)

	assert.Equal(t, 0, updated)
	assert.Equal(t, 0, repo.writes, "без совпадений коллекция не переписывается")
}

func TestPropagateIdentity_RequiresPhones(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()

	_, err := svc.PropagateIdentity(context.Background(), "",
		domain.UserIdentity{Name: "Анна", Phone: "+79990001122"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = svc.PropagateIdentity(context.Background(), "+79990001122",
		domain.UserIdentity{Name: "Анна"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
