package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/overlay"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ReadAll читает коллекцию бронирований целиком
	ReadAll(ctx context.Context) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	// Get читает настройки, подставляя значения по умолчанию при отсутствии
	Get(ctx context.Context) (*domain.Settings, error)
}

// OverlayRegistry реестр сессионных оверлеев "слот в работе"
type OverlayRegistry interface {
	Session(sessionID string) *overlay.Overlay
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
