package cancel_booking

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
	msgForbidden        = "отменить запись может только её владелец или администратор"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
// Администратор переводит запись в canceled_admin, владелец — в
// canceled_client; кто инициатор, решает сервис модерации.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, _ := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]

	result, err := h.service.Cancel(r.Context(), bookingID, *identity)
	if err != nil {
		switch {
		case errors.Is(err, moderation.ErrInvalidTransition):
			// запись уже в терминальном статусе — no-op
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid transition: booking_id=%s, status=%s",
				bookingID, result.Status)
			handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingView(result))

		case errors.Is(err, moderation.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moderation.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s, phone=%s",
				bookingID, identity.Phone)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, moderation.ErrStoreUnavailable):
			h.logger.Error("PATCH /bookings/{id}/cancel - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Canceled: booking_id=%s, status=%s",
		bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewBookingView(result))
}
