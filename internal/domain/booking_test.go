package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, status := range []BookingStatus{
		StatusPending, StatusApproved, StatusCanceledClient, StatusCanceledAdmin,
	} {
		assert.True(t, status.IsValid(), string(status))
	}

	assert.False(t, BookingStatus("done").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestBooking_StatusPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status     BookingStatus
		active     bool
		terminal   bool
		canApprove bool
		canCancel  bool
	}{
		{StatusPending, true, false, true, true},
		{StatusApproved, true, false, false, true},
		{StatusCanceledClient, false, true, false, false},
		{StatusCanceledAdmin, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.terminal, b.IsTerminal())
			assert.Equal(t, tt.canApprove, b.CanBeApproved())
			assert.Equal(t, tt.canCancel, b.CanBeCanceled())
		})
	}
}

func TestBooking_IsOwnedBy(t *testing.T) {
	t.Parallel()

	b := &Booking{User: UserIdentity{Name: "Анна", Phone: "+79990001122"}}

	// владение сверяется по телефону, имя не участвует
	assert.True(t, b.IsOwnedBy(UserIdentity{Name: "Другое Имя", Phone: "+79990001122"}))
	assert.False(t, b.IsOwnedBy(UserIdentity{Name: "Анна", Phone: "+79990009999"}))
}

func TestSlotKey(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-15 10:00", SlotKey(day, "10:00"))

	b := &Booking{Date: day, StartTime: "10:00"}
	assert.Equal(t, SlotKey(day, "10:00"), b.SlotKey())

	// ключ минутной гранулярности: другой день или другая минута — другой ключ
	assert.NotEqual(t, SlotKey(day, "10:00"), SlotKey(day, "10:01"))
	assert.NotEqual(t, SlotKey(day, "10:00"), SlotKey(day.AddDate(0, 0, 1), "10:00"))
}

func TestSettings_IsAdmin(t *testing.T) {
	t.Parallel()

	s := &Settings{AdminPhone: "+79990000000"}
	assert.True(t, s.IsAdmin(UserIdentity{Phone: "+79990000000"}))
	assert.False(t, s.IsAdmin(UserIdentity{Phone: "+79990001122"}))

	// без настроенного телефона администратора нет
	empty := &Settings{}
	assert.False(t, empty.IsAdmin(UserIdentity{Phone: ""}))
}

func TestSettings_ServiceByName(t *testing.T) {
	t.Parallel()

	s := &Settings{Services: []ServiceItem{
		{Name: "Маникюр", DurationMinutes: 60, Deposit: 500},
	}}

	item := s.ServiceByName("Маникюр")
	if assert.NotNil(t, item) {
		assert.Equal(t, 60, item.DurationMinutes)
	}
	assert.Nil(t, s.ServiceByName("Стрижка"))
}
