package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Default configuration values
const (
	DefaultWorkStart   types.TimeString = "10:00"
	DefaultWorkEnd     types.TimeString = "19:00"
	DefaultSlotMinutes                  = 60
)

// Business validation constants
const (
	MinSlotMinutes        = 5
	MaxSlotMinutes        = 480 // 8 hours
	MaxServiceNameLength  = 100
	MaxServicesPerBooking = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых бронирование удерживает слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// TerminalStatuses список терминальных статусов.
// Из терминального статуса переходов нет.
var TerminalStatuses = []BookingStatus{
	StatusCanceledClient,
	StatusCanceledAdmin,
}
