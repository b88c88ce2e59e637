package attempt_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	attemptBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/attempt_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthenticated    = "для записи необходимо войти"
	msgSlotTaken          = "выбранное время уже занято"
	msgInvalidTimeSlot    = "выбранное время не входит в сетку доступных слотов"
	msgUnknownService     = "выбранной услуги нет в каталоге"
	msgStoreUnavailable   = "не удалось сохранить запись, попробуйте еще раз"
)

type Handler struct {
	useCase AttemptBookingUseCase
	logger  Logger
}

func NewHandler(useCase AttemptBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	sessionID := middleware.SessionIDFromContext(r.Context())

	var req AttemptBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(identity, sessionID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, attemptBooking.ErrUnauthenticated):
			h.logger.Warn("POST /bookings - Unauthenticated booking attempt")
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, attemptBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, attemptBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Off-grid time slot: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, attemptBooking.ErrUnknownService):
			h.logger.Warn("POST /bookings - Unknown service: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, attemptBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		case errors.Is(err, attemptBooking.ErrStoreUnavailable):
			h.logger.Error("POST /bookings - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, phone=%s, slot=%s %s",
		result.ID, result.User.Phone, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
