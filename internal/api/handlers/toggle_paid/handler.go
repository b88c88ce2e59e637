package toggle_paid

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

// Handle PATCH /api/v1/bookings/{bookingId}/paid
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.TogglePaid(r.Context(), bookingID, *identity)
	if err != nil {
		switch {
		case errors.Is(err, moderation.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/paid - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moderation.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/paid - Access denied: phone=%s", identity.Phone)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, moderation.ErrStoreUnavailable):
			h.logger.Error("PATCH /bookings/{id}/paid - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{id}/paid - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/paid - Toggled: booking_id=%s, paid=%t", bookingID, result.Paid)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingView(result))
}
