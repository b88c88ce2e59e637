package handlers

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// BookingView JSON-представление бронирования, общее для всех эндпоинтов
type BookingView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Phone      string   `json:"phone"`
	Email      *string  `json:"email,omitempty"`
	Instagram  *string  `json:"instagram,omitempty"`
	Date       string   `json:"date"`      // YYYY-MM-DD
	StartTime  string   `json:"startTime"` // HH:MM
	EndTime    string   `json:"endTime"`   // HH:MM
	Services   []string `json:"services"`
	Price      *float64 `json:"price,omitempty"`
	Status     string   `json:"status"`
	Paid       bool     `json:"paid"`
	CreatedAt  string   `json:"createdAt"`            // RFC3339
	ApprovedAt *string  `json:"approvedAt,omitempty"` // RFC3339
	CanceledAt *string  `json:"canceledAt,omitempty"` // RFC3339
}

// NewBookingView конвертирует доменное бронирование в JSON-представление
func NewBookingView(b *domain.Booking) BookingView {
	view := BookingView{
		ID:        b.ID,
		Name:      b.User.Name,
		Phone:     b.User.Phone,
		Email:     b.User.Email,
		Instagram: b.User.Instagram,
		Date:      b.Date.Format(domain.DateFormat),
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
		Services:  b.Services,
		Price:     b.Price,
		Status:    string(b.Status),
		Paid:      b.Paid,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}

	if b.ApprovedAt != nil {
		v := b.ApprovedAt.Format(time.RFC3339)
		view.ApprovedAt = &v
	}
	if b.CanceledAt != nil {
		v := b.CanceledAt.Format(time.RFC3339)
		view.CanceledAt = &v
	}

	return view
}

// NewBookingViews конвертирует список бронирований с сохранением порядка
func NewBookingViews(list []*domain.Booking) []BookingView {
	out := make([]BookingView, len(list))
	for i, b := range list {
		out[i] = NewBookingView(b)
	}
	return out
}
