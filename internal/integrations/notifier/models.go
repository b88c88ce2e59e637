package notifier

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// NotificationEvent тип события уведомления
type NotificationEvent string

const (
	EventBookingCreated  NotificationEvent = "booking_created"
	EventBookingApproved NotificationEvent = "booking_approved"
	EventBookingCanceled NotificationEvent = "booking_canceled"
	EventBookingPaid     NotificationEvent = "booking_paid"
)

// Notification тело запроса к сервису рассылки
type Notification struct {
	Event   NotificationEvent `json:"event"`
	Booking BookingPayload    `json:"booking"`
}

// BookingPayload снимок бронирования для рассылки
type BookingPayload struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     *string  `json:"email,omitempty"`
	Date      string   `json:"date"`      // YYYY-MM-DD
	StartTime string   `json:"startTime"` // HH:MM
	Services  []string `json:"services"`
	Status    string   `json:"status"`
	Paid      bool     `json:"paid"`
	CreatedAt string   `json:"createdAt"` // RFC3339
}

// FromBooking конвертирует доменное бронирование в payload рассылки
func FromBooking(b *domain.Booking) BookingPayload {
	return BookingPayload{
		ID:        b.ID,
		Name:      b.User.Name,
		Phone:     b.User.Phone,
		Email:     b.User.Email,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		Services:  b.Services,
		Status:    string(b.Status),
		Paid:      b.Paid,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
