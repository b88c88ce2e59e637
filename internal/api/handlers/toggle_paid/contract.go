package toggle_paid

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type ModerationService interface {
	TogglePaid(ctx context.Context, id string, actor domain.UserIdentity) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
