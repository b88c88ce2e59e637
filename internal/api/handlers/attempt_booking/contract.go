package attempt_booking

import (
	"context"

	attemptBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/attempt_booking"
)

type AttemptBookingUseCase interface {
	Execute(ctx context.Context, req *attemptBooking.Request) (*attemptBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
