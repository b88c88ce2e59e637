package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending        BookingStatus = "pending"
	StatusApproved       BookingStatus = "approved"
	StatusCanceledClient BookingStatus = "canceled_client"
	StatusCanceledAdmin  BookingStatus = "canceled_admin"
)

// IsValid returns true if the value is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCanceledClient, StatusCanceledAdmin:
		return true
	}
	return false
}

// UserIdentity is the client identity snapshot stored on each booking.
// It is copied at booking time and rewritten wholesale when the client
// edits the profile (rename propagation).
type UserIdentity struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
}

// Booking represents a client appointment with the master
type Booking struct {
	ID   string       `json:"id"`
	User UserIdentity `json:"user"`

	Date      time.Time        `json:"date"` // calendar day, midnight local time
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`

	Services []string      `json:"services"`
	Price    *float64      `json:"price,omitempty"`
	Status   BookingStatus `json:"status"`
	Paid     bool          `json:"paid"`

	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	CanceledAt *time.Time `json:"canceledAt,omitempty"`
}

// IsActive returns true if the booking still claims its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsTerminal returns true if the booking reached a terminal status.
// No transition leads out of a terminal status.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCanceledClient || b.Status == StatusCanceledAdmin
}

// CanBeApproved returns true if the booking may transition to approved
func (b *Booking) CanBeApproved() bool {
	return b.Status == StatusPending
}

// CanBeCanceled returns true if the booking may transition to a
// canceled status
func (b *Booking) CanBeCanceled() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// IsOwnedBy returns true if the booking belongs to the given identity.
// Ownership is matched by phone, the stable part of the snapshot.
func (b *Booking) IsOwnedBy(identity UserIdentity) bool {
	return b.User.Phone == identity.Phone
}

// SlotKey returns the minute-granularity key of the booked slot.
// Two bookings claim the same slot iff their keys are equal.
func (b *Booking) SlotKey() string {
	return SlotKey(b.Date, b.StartTime)
}

// SlotKey builds the minute-granularity slot key for a day and a start
// time. Seconds and finer are intentionally not part of the key.
func SlotKey(day time.Time, start types.TimeString) string {
	return day.Format(DateFormat) + " " + start.String()
}

// BookingsFilter фильтр для списков бронирований в админке
type BookingsFilter struct {
	Date   *time.Time // конкретный день (опционально)
	Status string     // точный статус или StatusFilterAll
	Query  string     // поиск по имени, телефону и instagram без учета регистра
}

// StatusFilterAll сентинел "все статусы" для BookingsFilter.Status
const StatusFilterAll = "all"
