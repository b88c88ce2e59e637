package update_settings

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type SettingsService interface {
	Update(ctx context.Context, updated *domain.Settings, actor domain.UserIdentity) (*domain.Settings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
