package approve_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/moderation"
)

const (
	msgNotFound         = "запись не найдена"
	msgForbidden        = "доступ запрещен"
	msgStoreUnavailable = "хранилище временно недоступно, попробуйте позже"
)

type Handler struct {
	service ModerationService
	logger  Logger
}

func NewHandler(service ModerationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.Approve(r.Context(), bookingID, *identity)
	if err != nil {
		switch {
		case errors.Is(err, moderation.ErrInvalidTransition):
			// недопустимый переход — no-op: запись возвращается без изменений
			h.logger.Warn("PATCH /bookings/{id}/approve - Invalid transition: booking_id=%s, status=%s",
				bookingID, result.Status)
			handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingView(result))

		case errors.Is(err, moderation.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/approve - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moderation.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/approve - Access denied: phone=%s", identity.Phone)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, moderation.ErrStoreUnavailable):
			h.logger.Error("PATCH /bookings/{id}/approve - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{id}/approve - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/approve - Approved: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingView(result))
}
