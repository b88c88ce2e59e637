package attempt_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/overlay"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ReadAll(ctx context.Context) ([]*domain.Booking, error)
	WriteAll(ctx context.Context, bookings []*domain.Booking) error
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

// OverlayRegistry реестр сессионных оверлеев "слот в работе"
type OverlayRegistry interface {
	Session(sessionID string) *overlay.Overlay
}

// NotifierClient клиент сервиса рассылки.
// Вызывается fire-and-forget: результат не влияет на исход бронирования.
type NotifierClient interface {
	BookingCreated(ctx context.Context, b *domain.Booking) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
