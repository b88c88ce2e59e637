package update_profile

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type BookingsService interface {
	PropagateIdentity(ctx context.Context, oldPhone string, identity domain.UserIdentity) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
