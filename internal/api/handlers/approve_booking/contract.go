package approve_booking

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type ModerationService interface {
	Approve(ctx context.Context, id string, actor domain.UserIdentity) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
